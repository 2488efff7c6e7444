package models

import (
	"time"
)

// Work order status values. No transition graph is enforced: any status may
// follow any other through an update.
const (
	WorkOrderPending    = "pending"
	WorkOrderInProgress = "in-progress"
	WorkOrderCompleted  = "completed"
	WorkOrderCancelled  = "cancelled"
)

// Work order priority values
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// WorkOrder represents a unit of requested maintenance work against one
// piece of equipment. References are held by id only; deleting the
// referenced equipment or user leaves the reference dangling.
type WorkOrder struct {
	ID                   uint       `gorm:"primaryKey" json:"id"`
	Title                string     `gorm:"not null" json:"title"`
	EquipmentID          uint       `gorm:"not null;index" json:"equipmentId"`
	Priority             string     `gorm:"not null;default:'medium'" json:"priority"` // low, medium, high, urgent
	Status               string     `gorm:"not null;default:'pending'" json:"status"`  // pending, in-progress, completed, cancelled
	AssignedTechnicianID *uint      `gorm:"index" json:"assignedTechnicianId"`
	Description          string     `gorm:"not null" json:"description"`
	DueDate              time.Time  `gorm:"not null" json:"dueDate"`
	CreatedByID          uint       `gorm:"not null" json:"createdById"` // set once at creation from the authenticated caller
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

// TableName specifies the table name for the WorkOrder model
func (WorkOrder) TableName() string {
	return "work_orders"
}

// ValidWorkOrderStatus reports whether status is in the work order status domain.
func ValidWorkOrderStatus(status string) bool {
	switch status {
	case WorkOrderPending, WorkOrderInProgress, WorkOrderCompleted, WorkOrderCancelled:
		return true
	}
	return false
}

// ValidPriority reports whether priority is in the priority domain.
func ValidPriority(priority string) bool {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Active reports whether the work order counts toward a technician's
// workload (pending or in-progress).
func (w *WorkOrder) Active() bool {
	return w.Status == WorkOrderPending || w.Status == WorkOrderInProgress
}

// ResolvedWorkOrder is a WorkOrder with its references eagerly resolved to
// display summaries. A dangling reference resolves to nil, never to an
// error.
type ResolvedWorkOrder struct {
	WorkOrder
	Equipment          *EquipmentSummary `json:"equipment"`
	AssignedTechnician *UserSummary      `json:"assignedTechnician"`
	CreatedBy          *UserSummary      `json:"createdBy"`
}
