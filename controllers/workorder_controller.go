package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mechcorp/maintenance-api/config"
	"github.com/mechcorp/maintenance-api/middleware"
	"github.com/mechcorp/maintenance-api/models"
	"github.com/mechcorp/maintenance-api/services"
)

// CreateWorkOrderRequest represents the request body for creating a work
// order. The wire names match what clients have always sent: "equipment"
// and "assignedTechnician" carry ids. There is no createdBy field; the
// creator is always the authenticated caller.
type CreateWorkOrderRequest struct {
	Title              string     `json:"title" binding:"required"`
	EquipmentID        uint       `json:"equipment" binding:"required"`
	Priority           string     `json:"priority" binding:"omitempty"`
	Status             string     `json:"status" binding:"omitempty"`
	AssignedTechnician *uint      `json:"assignedTechnician"`
	Description        string     `json:"description" binding:"required"`
	DueDate            *time.Time `json:"dueDate" binding:"required"`
}

// UpdateWorkOrderRequest represents the request body for updating a work
// order. Only the fields present in the payload are overwritten; createdBy
// can never be changed.
type UpdateWorkOrderRequest struct {
	Title              *string    `json:"title"`
	EquipmentID        *uint      `json:"equipment"`
	Priority           *string    `json:"priority"`
	Status             *string    `json:"status"`
	AssignedTechnician *uint      `json:"assignedTechnician"`
	Description        *string    `json:"description"`
	DueDate            *time.Time `json:"dueDate"`
}

// ListWorkOrders handles GET /api/work-orders?status=&technician= and
// returns resolved work orders, newest first.
func ListWorkOrders(c *gin.Context) {
	filter := services.WorkOrderFilter{Status: c.Query("status")}
	if technician := c.Query("technician"); technician != "" {
		id, err := strconv.ParseUint(technician, 10, 64)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "invalid technician id"})
			return
		}
		techID := uint(id)
		filter.TechnicianID = &techID
	}

	db := config.GetDB()
	orders, err := services.ListWorkOrders(db, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	resolved, err := services.ResolveWorkOrders(db, orders)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resolved)
}

// GetWorkOrder handles GET /api/work-orders/:id
func GetWorkOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "invalid work order id"})
		return
	}

	db := config.GetDB()
	var order models.WorkOrder
	if err := db.First(&order, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Work order not found"})
		return
	}

	resolved, err := services.ResolveWorkOrder(db, order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resolved)
}

// CreateWorkOrder handles POST /api/work-orders (supervisor/manager only).
// createdBy is forced to the caller's identity regardless of the payload.
func CreateWorkOrder(c *gin.Context) {
	caller, err := middleware.CurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
		return
	}

	var req CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !models.ValidPriority(priority) {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "invalid priority: " + req.Priority})
		return
	}

	status := req.Status
	if status == "" {
		status = models.WorkOrderPending
	}
	if !models.ValidWorkOrderStatus(status) {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "invalid status: " + req.Status})
		return
	}

	db := config.GetDB()

	// The equipment reference must exist at creation time. Afterwards it
	// may dangle if the equipment is deleted.
	var equipment models.Equipment
	if err := db.First(&equipment, req.EquipmentID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "referenced equipment does not exist"})
		return
	}

	order := models.WorkOrder{
		Title:                req.Title,
		EquipmentID:          req.EquipmentID,
		Priority:             priority,
		Status:               status,
		AssignedTechnicianID: req.AssignedTechnician,
		Description:          req.Description,
		DueDate:              *req.DueDate,
		CreatedByID:          caller.ID,
	}

	if err := db.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	resolved, err := services.ResolveWorkOrder(db, order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resolved)
}

// UpdateWorkOrder handles PUT /api/work-orders/:id. Any authenticated
// caller may update any work order, any field; this lets a technician move
// their assigned work order through its statuses, and no ownership check
// restricts it further. Status transitions are unconstrained.
func UpdateWorkOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "invalid work order id"})
		return
	}

	var req UpdateWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	db := config.GetDB()
	var order models.WorkOrder
	if err := db.First(&order, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Work order not found"})
		return
	}

	if req.Title != nil {
		order.Title = *req.Title
	}
	if req.EquipmentID != nil {
		var equipment models.Equipment
		if err := db.First(&equipment, *req.EquipmentID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "referenced equipment does not exist"})
			return
		}
		order.EquipmentID = *req.EquipmentID
	}
	if req.Priority != nil {
		if !models.ValidPriority(*req.Priority) {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "invalid priority: " + *req.Priority})
			return
		}
		order.Priority = *req.Priority
	}
	if req.Status != nil {
		if !models.ValidWorkOrderStatus(*req.Status) {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "invalid status: " + *req.Status})
			return
		}
		order.Status = *req.Status
	}
	if req.AssignedTechnician != nil {
		order.AssignedTechnicianID = req.AssignedTechnician
	}
	if req.Description != nil {
		order.Description = *req.Description
	}
	if req.DueDate != nil {
		order.DueDate = *req.DueDate
	}

	if err := db.Save(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	resolved, err := services.ResolveWorkOrder(db, order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resolved)
}

// DeleteWorkOrder handles DELETE /api/work-orders/:id (manager only)
func DeleteWorkOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "invalid work order id"})
		return
	}

	db := config.GetDB()
	var order models.WorkOrder
	if err := db.First(&order, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Work order not found"})
		return
	}

	if err := db.Delete(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Work order deleted successfully"})
}
