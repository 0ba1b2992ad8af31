package integration

import (
	"context"
	"testing"

	"restro-orders-be/internal/apperr"
	"restro-orders-be/internal/dto"
	"restro-orders-be/internal/repository/unitofwork"
	"restro-orders-be/internal/service"
	"restro-orders-be/pkg/database"
	"restro-orders-be/pkg/loyalty"

	"github.com/stretchr/testify/assert"
)

// A store-layer failure during login is an outage, not a bad password. It
// must surface as PersistenceError so callers see a 500, not a 401.
func TestLoginStoreFailureIsNotUnauthorized(t *testing.T) {
	_, cfg := requireDB(t)

	deadDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}
	sqlDB, err := deadDB.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.Close()

	authService := service.NewAuthService(
		unitofwork.NewRepositoryFactory(deadDB),
		nil,
		loyalty.NewEngine(loyalty.NewLedger(), cfg.Loyalty.SignupReward),
		nil,
	)

	_, err = authService.Login(context.Background(), &dto.LoginRequest{
		Email:    "anyone@example.com",
		Password: "whatever",
	}, "127.0.0.1", "test-agent")

	assert.ErrorIs(t, err, apperr.ErrPersistence)
	assert.NotErrorIs(t, err, apperr.ErrUnauthorized)
}
