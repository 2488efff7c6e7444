package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/mechcorp/maintenance-api/models"
	"gorm.io/gorm"
)

// EquipmentStatusReportData feeds the equipment status template.
type EquipmentStatusReportData struct {
	GeneratedAt time.Time
	Equipment   []models.Equipment
}

// WorkOrderSummaryParams are the optional filters of the work order summary
// report. StartDate and EndDate only take effect together, as an inclusive
// range over createdAt.
type WorkOrderSummaryParams struct {
	Status    string
	StartDate *time.Time
	EndDate   *time.Time
}

// WorkOrderSummaryReportData feeds the work order summary template.
type WorkOrderSummaryReportData struct {
	GeneratedAt time.Time
	WorkOrders  []models.ResolvedWorkOrder
}

// TechnicianWorkload is one technician's section of the workload report. A
// technician with no active work orders still gets a section with a zero
// count and an empty table.
type TechnicianWorkload struct {
	Technician       models.User
	ActiveWorkOrders int
	WorkOrders       []models.ResolvedWorkOrder
}

// TechnicianWorkloadReportData feeds the technician workload template.
type TechnicianWorkloadReportData struct {
	GeneratedAt time.Time
	Workloads   []TechnicianWorkload
}

// BuildEquipmentStatusHTML fetches all equipment and renders the equipment
// status report document.
func BuildEquipmentStatusHTML(db *gorm.DB) (string, error) {
	var equipment []models.Equipment
	if err := db.Order("created_at DESC").Find(&equipment).Error; err != nil {
		return "", fmt.Errorf("failed to fetch equipment: %w", err)
	}

	data := EquipmentStatusReportData{
		GeneratedAt: time.Now(),
		Equipment:   equipment,
	}
	var buf bytes.Buffer
	if err := equipmentStatusTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render equipment status report: %w", err)
	}
	return buf.String(), nil
}

// BuildWorkOrderSummaryHTML fetches the work orders matching params, resolves
// their references and renders the summary report document.
func BuildWorkOrderSummaryHTML(db *gorm.DB, params WorkOrderSummaryParams) (string, error) {
	filter := WorkOrderFilter{Status: params.Status}
	if params.StartDate != nil && params.EndDate != nil {
		filter.CreatedFrom = params.StartDate
		filter.CreatedTo = params.EndDate
	}

	orders, err := ListWorkOrders(db, filter)
	if err != nil {
		return "", fmt.Errorf("failed to fetch work orders: %w", err)
	}
	resolved, err := ResolveWorkOrders(db, orders)
	if err != nil {
		return "", fmt.Errorf("failed to resolve work order references: %w", err)
	}

	data := WorkOrderSummaryReportData{
		GeneratedAt: time.Now(),
		WorkOrders:  resolved,
	}
	var buf bytes.Buffer
	if err := workOrderSummaryTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render work order summary report: %w", err)
	}
	return buf.String(), nil
}

// BuildTechnicianWorkloadHTML fetches every technician and their active work
// orders, then renders the workload report document. The per-technician
// queries run sequentially with no snapshot across them; a work order
// created between two sub-queries may appear for one technician and not
// another.
func BuildTechnicianWorkloadHTML(db *gorm.DB) (string, error) {
	var technicians []models.User
	if err := db.Where("role = ?", models.RoleTechnician).Order("created_at").Find(&technicians).Error; err != nil {
		return "", fmt.Errorf("failed to fetch technicians: %w", err)
	}

	workloads := make([]TechnicianWorkload, 0, len(technicians))
	for i := range technicians {
		tech := technicians[i]
		orders, err := ListWorkOrders(db, WorkOrderFilter{
			TechnicianID: &tech.ID,
			Statuses:     []string{models.WorkOrderPending, models.WorkOrderInProgress},
		})
		if err != nil {
			return "", fmt.Errorf("failed to fetch work orders for technician %d: %w", tech.ID, err)
		}
		resolved, err := ResolveWorkOrders(db, orders)
		if err != nil {
			return "", fmt.Errorf("failed to resolve work order references: %w", err)
		}
		workloads = append(workloads, TechnicianWorkload{
			Technician:       tech,
			ActiveWorkOrders: len(resolved),
			WorkOrders:       resolved,
		})
	}

	data := TechnicianWorkloadReportData{
		GeneratedAt: time.Now(),
		Workloads:   workloads,
	}
	var buf bytes.Buffer
	if err := technicianWorkloadTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render technician workload report: %w", err)
	}
	return buf.String(), nil
}
