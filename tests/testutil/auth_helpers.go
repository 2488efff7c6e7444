package testutil

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mechcorp/maintenance-api/middleware"
	"github.com/mechcorp/maintenance-api/models"
	"github.com/mechcorp/maintenance-api/services"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestJWTSecret signs every token issued during tests.
const TestJWTSecret = "test-secret"

// InstallTestTokenService replaces the active token service with one using
// the test secret.
func InstallTestTokenService() {
	services.SetTokenService(services.NewTokenService(TestJWTSecret, time.Hour))
}

// CreateUser persists an account with the given role. The password is always
// "password123".
func CreateUser(t *testing.T, db *gorm.DB, name, role string) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
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

// IssueToken signs a token for the user with the active token service.
func IssueToken(t *testing.T, user *models.User) string {
	t.Helper()

	token, err := services.GetTokenService().Generate(user)
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}
	return token
}

// MockAuthMiddleware returns a middleware that injects the user as the
// authenticated caller, bypassing token validation.
func MockAuthMiddleware(user *models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetCurrentUser(c, user)
		c.Next()
	}
}
