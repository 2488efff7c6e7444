package controllers

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mechcorp/maintenance-api/config"
	"github.com/mechcorp/maintenance-api/middleware"
	"github.com/mechcorp/maintenance-api/models"
	"github.com/mechcorp/maintenance-api/services"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupControllerTest wires an in-memory database and a test token service
// so handlers can run without the real bootstrap.
func setupControllerTest(t *testing.T) *gorm.DB {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Equipment{}, &models.WorkOrder{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	config.SetDB(db)
	services.SetTokenService(services.NewTokenService("test-secret", time.Hour))
	return db
}

// mockAuthMiddleware injects a caller the way RequireAuth would after
// validating a token.
func mockAuthMiddleware(user *models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetCurrentUser(c, user)
		c.Next()
	}
}

func seedUser(t *testing.T, db *gorm.DB, name, role string) models.User {
	t.Helper()
	user := models.User{
		Name:         name,
		Email:        name + "@mechcorp.test",
		PasswordHash: "x",
		Role:         role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	return user
}

func seedUserWithPassword(t *testing.T, db *gorm.DB, name, role, password string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	user := models.User{
		Name:         name,
		Email:        name + "@mechcorp.test",
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	return user
}

func seedEquipment(t *testing.T, db *gorm.DB, name string) models.Equipment {
	t.Helper()
	equipment := models.Equipment{
		Name:                name,
		Type:                "press",
		Status:              models.EquipmentOperational,
		NextMaintenanceDate: time.Now().Add(30 * 24 * time.Hour),
	}
	if err := db.Create(&equipment).Error; err != nil {
		t.Fatalf("Failed to create equipment: %v", err)
	}
	return equipment
}

func seedWorkOrder(t *testing.T, db *gorm.DB, wo models.WorkOrder) models.WorkOrder {
	t.Helper()
	if wo.Title == "" {
		wo.Title = "work order"
	}
	if wo.Description == "" {
		wo.Description = "description"
	}
	if wo.Priority == "" {
		wo.Priority = models.PriorityMedium
	}
	if wo.Status == "" {
		wo.Status = models.WorkOrderPending
	}
	if wo.DueDate.IsZero() {
		wo.DueDate = time.Now().Add(7 * 24 * time.Hour)
	}
	if err := db.Create(&wo).Error; err != nil {
		t.Fatalf("Failed to create work order: %v", err)
	}
	return wo
}
