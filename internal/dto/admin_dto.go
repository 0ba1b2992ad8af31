package dto

import (
	"time"

	"github.com/google/uuid"
)

type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AdminDashboardResponse struct {
	TotalUsers           int   `json:"total_users"`
	ActiveUsers          int   `json:"active_users"`
	Subscribers          int   `json:"subscribers"`
	PendingOrders        int64 `json:"pending_orders"`
	DeliveredOrders      int64 `json:"delivered_orders"`
	PendingSubscriptions int64 `json:"pending_subscriptions"`
}

type AdminUserSummary struct {
	Id             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	Phone          string    `json:"phone"`
	Role           string    `json:"role"`
	Status         string    `json:"status"`
	Points         int       `json:"points"`
	TotalReferrals int       `json:"total_referrals"`
	CreatedAt      time.Time `json:"created_at"`
}

type AdminSearchUsersQuery struct {
	Query  string `query:"q"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}

type AdminUpdateUserStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending active blocked"`
}

type AdminLogsQuery struct {
	Level  string `query:"level"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}
