package integration

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"restro-orders-be/internal/bootstrap"
	"restro-orders-be/internal/dto"
	"restro-orders-be/internal/pkg/serverutils"
	"restro-orders-be/internal/server"

	"github.com/stretchr/testify/assert"
)

func TestOrderLifecycle(t *testing.T) {
	db, cfg := requireDB(t)

	container := bootstrap.NewContainer(db, cfg)
	srv := server.New(cfg, container)
	app := srv.GetApp()

	seedUser(t, db, "orders-admin@example.com", "admin", nil)

	// Login to get an admin token.
	loginBody, _ := json.Marshal(dto.LoginRequest{
		Email:    "orders-admin@example.com",
		Password: "secret123",
	})
	req := httptest.NewRequest("POST", "/api/admin/login", strings.NewReader(string(loginBody)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)

	var loginRes serverutils.APIResponse[dto.LoginResponse]
	json.NewDecoder(resp.Body).Decode(&loginRes)
	token := loginRes.Data.AccessToken
	assert.NotEmpty(t, token, "Admin token should not be empty")

	// Guests can place orders without a token.
	orderBody, _ := json.Marshal(dto.CreateOrderRequest{
		CustomerName:  "Walk In",
		CustomerPhone: "9876543210",
		Address:       "12 Test Lane",
		ItemName:      "Paneer Tikka",
		OrderType:     "delivery",
		Amount:        450,
		Quantity:      2,
		PaymentMode:   "cash",
	})
	req = httptest.NewRequest("POST", "/api/orders", strings.NewReader(string(orderBody)))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var orderRes serverutils.APIResponse[dto.OrderResponse]
	json.NewDecoder(resp.Body).Decode(&orderRes)
	orderId := orderRes.Data.Id
	assert.Equal(t, "pending", orderRes.Data.Status)
	assert.Equal(t, "guest", orderRes.Data.CustomerTier)
	t.Cleanup(func() {
		db.Exec("DELETE FROM orders WHERE id = ?", orderId)
	})

	doTransition := func(status, reason string) int {
		t.Helper()
		body, _ := json.Marshal(dto.TransitionOrderRequest{Status: status, Reason: reason})
		req := httptest.NewRequest("PUT", "/api/admin/orders/"+orderId.String()+"/status", strings.NewReader(string(body)))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		return resp.StatusCode
	}

	t.Run("skipping ahead is refused", func(t *testing.T) {
		assert.Equal(t, 409, doTransition("delivered", ""))
	})

	t.Run("deleting a live order is refused", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/api/admin/orders/"+orderId.String(), nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		assert.Equal(t, 409, resp.StatusCode)
	})

	t.Run("forward walk to delivered", func(t *testing.T) {
		for _, status := range []string{"accepted", "preparing", "ready", "out_for_delivery", "delivered"} {
			assert.Equal(t, 200, doTransition(status, ""), "transition to %s", status)
		}

		var dbStatus string
		db.Raw("SELECT status FROM orders WHERE id = ?", orderId).Scan(&dbStatus)
		assert.Equal(t, "delivered", dbStatus)
	})

	t.Run("terminal orders are frozen", func(t *testing.T) {
		assert.Equal(t, 409, doTransition("preparing", ""))
	})

	t.Run("terminal orders can be deleted", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/api/admin/orders/"+orderId.String(), nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var count int64
		db.Raw("SELECT COUNT(*) FROM orders WHERE id = ?", orderId).Scan(&count)
		assert.Equal(t, int64(0), count)
	})
}

func TestOrderRejectionRequiresReason(t *testing.T) {
	db, cfg := requireDB(t)

	container := bootstrap.NewContainer(db, cfg)
	srv := server.New(cfg, container)
	app := srv.GetApp()

	seedUser(t, db, "reject-admin@example.com", "admin", nil)

	loginBody, _ := json.Marshal(dto.LoginRequest{
		Email:    "reject-admin@example.com",
		Password: "secret123",
	})
	req := httptest.NewRequest("POST", "/api/admin/login", strings.NewReader(string(loginBody)))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req, -1)

	var loginRes serverutils.APIResponse[dto.LoginResponse]
	json.NewDecoder(resp.Body).Decode(&loginRes)
	token := loginRes.Data.AccessToken
	assert.NotEmpty(t, token)

	orderBody, _ := json.Marshal(dto.CreateOrderRequest{
		CustomerName:  "Reason Case",
		CustomerPhone: "9876500000",
		ItemName:      "Masala Dosa",
		OrderType:     "delivery",
		Amount:        120,
		Quantity:      1,
		PaymentMode:   "upi",
	})
	req = httptest.NewRequest("POST", "/api/orders", strings.NewReader(string(orderBody)))
	req.Header.Set("Content-Type", "application/json")
	resp, _ = app.Test(req, -1)

	var orderRes serverutils.APIResponse[dto.OrderResponse]
	json.NewDecoder(resp.Body).Decode(&orderRes)
	orderId := orderRes.Data.Id
	t.Cleanup(func() {
		db.Exec("DELETE FROM orders WHERE id = ?", orderId)
	})

	reject := func(reason string) int {
		body, _ := json.Marshal(dto.TransitionOrderRequest{Status: "rejected", Reason: reason})
		req := httptest.NewRequest("PUT", "/api/admin/orders/"+orderId.String()+"/status", strings.NewReader(string(body)))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, 400, reject(""), "rejection without a reason must fail")
	assert.Equal(t, 200, reject("item out of stock"))

	var reason string
	db.Raw("SELECT reason FROM orders WHERE id = ?", orderId).Scan(&reason)
	assert.Equal(t, "item out of stock", reason)
}
