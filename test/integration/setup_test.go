package integration

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"restro-orders-be/internal/config"
	"restro-orders-be/internal/model"
	"restro-orders-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// requireDB loads the environment and opens the test database. Tests are
// skipped, not failed, when no DB_CONNECTION_STRING is configured so the
// unit suite stays runnable without infrastructure.
func requireDB(t *testing.T) (*gorm.DB, *config.Config) {
	t.Helper()

	if err := godotenv.Load("../../.env"); err != nil {
		t.Logf("Warning: Could not load ../../.env: %v", err)
		os.Setenv("JWT_SECRET", "default_secret")
	}
	cfg := config.Load()

	if cfg.Database.Connection == "" {
		t.Skip("DB_CONNECTION_STRING not set, skipping integration test")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}
	return db, cfg
}

// seedUser inserts a user row directly and registers hard-delete cleanup for
// the user and its dependent rows.
func seedUser(t *testing.T, db *gorm.DB, email, role string, mutate func(*model.User)) uuid.UUID {
	t.Helper()

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	hashStr := string(hash)

	id := uuid.New()
	user := &model.User{
		Id:            id,
		Email:         email,
		PasswordHash:  &hashStr,
		FullName:      "Test " + strings.Split(email, "@")[0],
		Role:          role,
		Status:        "active",
		EmailVerified: true,
		ReferralCode:  fmt.Sprintf("TEST-%04d", uuid.New().ID()%10000),
	}
	if mutate != nil {
		mutate(user)
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to seed user %s: %v", email, err)
	}

	t.Cleanup(func() {
		db.Exec("DELETE FROM points_transactions WHERE user_id = ?", id)
		db.Exec("DELETE FROM referral_rewards WHERE inviter_id = ? OR invitee_id = ?", id, id)
		db.Exec("DELETE FROM subscription_requests WHERE user_id = ?", id)
		db.Exec("DELETE FROM orders WHERE user_id = ?", id)
		db.Exec("DELETE FROM users WHERE id = ?", id)
	})
	return id
}
