package services

import (
	"time"

	"github.com/mechcorp/maintenance-api/models"
	"gorm.io/gorm"
)

// WorkOrderFilter narrows a work order listing. Zero-valued fields are
// ignored; populated fields intersect.
type WorkOrderFilter struct {
	Status       string
	Statuses     []string
	TechnicianID *uint
	CreatedFrom  *time.Time
	CreatedTo    *time.Time
}

// ListWorkOrders returns the work orders matching the filter, newest
// created first.
func ListWorkOrders(db *gorm.DB, filter WorkOrderFilter) ([]models.WorkOrder, error) {
	query := db.Model(&models.WorkOrder{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", filter.Statuses)
	}
	if filter.TechnicianID != nil {
		query = query.Where("assigned_technician_id = ?", *filter.TechnicianID)
	}
	// Both boundaries are inclusive: a record created exactly at either
	// boundary is part of the result.
	if filter.CreatedFrom != nil && filter.CreatedTo != nil {
		query = query.Where("created_at >= ? AND created_at <= ?", *filter.CreatedFrom, *filter.CreatedTo)
	}

	var orders []models.WorkOrder
	if err := query.Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ResolveWorkOrders eagerly resolves the equipment, assigned technician and
// creator references of each work order into display summaries. Resolution
// is a separate batch fetch rather than a persistence-layer join, and a
// dangling reference yields a nil summary instead of an error: referential
// integrity is not enforced anywhere in the system.
func ResolveWorkOrders(db *gorm.DB, orders []models.WorkOrder) ([]models.ResolvedWorkOrder, error) {
	equipmentIDs := make([]uint, 0, len(orders))
	userIDs := make([]uint, 0, len(orders)*2)
	for _, wo := range orders {
		equipmentIDs = append(equipmentIDs, wo.EquipmentID)
		userIDs = append(userIDs, wo.CreatedByID)
		if wo.AssignedTechnicianID != nil {
			userIDs = append(userIDs, *wo.AssignedTechnicianID)
		}
	}

	equipmentByID := make(map[uint]*models.EquipmentSummary)
	if len(equipmentIDs) > 0 {
		var equipment []models.Equipment
		if err := db.Where("id IN ?", equipmentIDs).Find(&equipment).Error; err != nil {
			return nil, err
		}
		for i := range equipment {
			equipmentByID[equipment[i].ID] = equipment[i].Summary()
		}
	}

	usersByID := make(map[uint]*models.UserSummary)
	if len(userIDs) > 0 {
		var users []models.User
		if err := db.Where("id IN ?", userIDs).Find(&users).Error; err != nil {
			return nil, err
		}
		for i := range users {
			usersByID[users[i].ID] = users[i].Summary()
		}
	}

	resolved := make([]models.ResolvedWorkOrder, 0, len(orders))
	for _, wo := range orders {
		r := models.ResolvedWorkOrder{
			WorkOrder: wo,
			Equipment: equipmentByID[wo.EquipmentID],
			CreatedBy: usersByID[wo.CreatedByID],
		}
		if wo.AssignedTechnicianID != nil {
			r.AssignedTechnician = usersByID[*wo.AssignedTechnicianID]
		}
		resolved = append(resolved, r)
	}
	return resolved, nil
}

// ResolveWorkOrder resolves a single work order's references.
func ResolveWorkOrder(db *gorm.DB, order models.WorkOrder) (*models.ResolvedWorkOrder, error) {
	resolved, err := ResolveWorkOrders(db, []models.WorkOrder{order})
	if err != nil {
		return nil, err
	}
	return &resolved[0], nil
}
