package models

import (
	"time"
)

// Equipment status values
const (
	EquipmentOperational = "operational"
	EquipmentMaintenance = "maintenance"
	EquipmentBroken      = "broken"
)

// Equipment represents a piece of machinery tracked for maintenance.
// NextMaintenanceDate is always required; LastMaintenanceDate is optional
// and rendered as "N/A" in reports when unset.
type Equipment struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	Name                string     `gorm:"not null" json:"name"`
	Type                string     `gorm:"not null" json:"type"`
	Status              string     `gorm:"not null;default:'operational'" json:"status"` // operational, maintenance, broken
	LastMaintenanceDate *time.Time `json:"lastMaintenanceDate"`
	NextMaintenanceDate time.Time  `gorm:"not null" json:"nextMaintenanceDate"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

// TableName specifies the table name for the Equipment model
func (Equipment) TableName() string {
	return "equipment"
}

// ValidEquipmentStatus reports whether status is in the equipment status
// domain. Transitions between statuses are unconstrained.
func ValidEquipmentStatus(status string) bool {
	switch status {
	case EquipmentOperational, EquipmentMaintenance, EquipmentBroken:
		return true
	}
	return false
}

// EquipmentSummary is the read-only projection of an Equipment embedded in
// resolved work orders and reports.
type EquipmentSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Summary returns the display projection of the equipment.
func (e *Equipment) Summary() *EquipmentSummary {
	return &EquipmentSummary{ID: e.ID, Name: e.Name, Type: e.Type}
}
