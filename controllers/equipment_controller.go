package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mechcorp/maintenance-api/config"
	"github.com/mechcorp/maintenance-api/models"
)

// CreateEquipmentRequest represents the request body for registering equipment
type CreateEquipmentRequest struct {
	Name                string     `json:"name" binding:"required"`
	Type                string     `json:"type" binding:"required"`
	Status              string     `json:"status" binding:"omitempty"`
	LastMaintenanceDate *time.Time `json:"lastMaintenanceDate"`
	NextMaintenanceDate *time.Time `json:"nextMaintenanceDate" binding:"required"`
}

// UpdateEquipmentRequest represents the request body for updating equipment.
// Only the fields present in the payload are overwritten.
type UpdateEquipmentRequest struct {
	Name                *string    `json:"name"`
	Type                *string    `json:"type"`
	Status              *string    `json:"status"`
	LastMaintenanceDate *time.Time `json:"lastMaintenanceDate"`
	NextMaintenanceDate *time.Time `json:"nextMaintenanceDate"`
}

// ListEquipment handles GET /api/equipment - returns all equipment, newest first
func ListEquipment(c *gin.Context) {
	db := config.GetDB()

	var equipment []models.Equipment
	if err := db.Order("created_at DESC").Find(&equipment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, equipment)
}

// GetEquipment handles GET /api/equipment/:id
func GetEquipment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "invalid equipment id"})
		return
	}

	db := config.GetDB()
	var equipment models.Equipment
	if err := db.First(&equipment, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Equipment not found"})
		return
	}
	c.JSON(http.StatusOK, equipment)
}

// CreateEquipment handles POST /api/equipment (supervisor/manager only)
func CreateEquipment(c *gin.Context) {
	var req CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	status := req.Status
	if status == "" {
		status = models.EquipmentOperational
	}
	if !models.ValidEquipmentStatus(status) {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "invalid equipment status: " + req.Status})
		return
	}

	equipment := models.Equipment{
		Name:                req.Name,
		Type:                req.Type,
		Status:              status,
		LastMaintenanceDate: req.LastMaintenanceDate,
		NextMaintenanceDate: *req.NextMaintenanceDate,
	}

	db := config.GetDB()
	if err := db.Create(&equipment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, equipment)
}

// UpdateEquipment handles PUT /api/equipment/:id (supervisor/manager only)
func UpdateEquipment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "invalid equipment id"})
		return
	}

	var req UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	db := config.GetDB()
	var equipment models.Equipment
	if err := db.First(&equipment, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Equipment not found"})
		return
	}

	if req.Name != nil {
		equipment.Name = *req.Name
	}
	if req.Type != nil {
		equipment.Type = *req.Type
	}
	if req.Status != nil {
		if !models.ValidEquipmentStatus(*req.Status) {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "invalid equipment status: " + *req.Status})
			return
		}
		equipment.Status = *req.Status
	}
	if req.LastMaintenanceDate != nil {
		equipment.LastMaintenanceDate = req.LastMaintenanceDate
	}
	if req.NextMaintenanceDate != nil {
		equipment.NextMaintenanceDate = *req.NextMaintenanceDate
	}

	if err := db.Save(&equipment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, equipment)
}

// DeleteEquipment handles DELETE /api/equipment/:id (manager only).
// Deletion is unconditional: work orders referencing this equipment keep
// their dangling reference.
func DeleteEquipment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "invalid equipment id"})
		return
	}

	db := config.GetDB()
	var equipment models.Equipment
	if err := db.First(&equipment, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Equipment not found"})
		return
	}

	if err := db.Delete(&equipment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Equipment deleted successfully"})
}
