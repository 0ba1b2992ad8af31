package main

import (
	"log"

	"restro-orders-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SeedNotificationTypes populates the registry mapping event codes to
// notification templates and targets.
func SeedNotificationTypes(db *gorm.DB) {
	types := []model.NotificationType{
		{
			Code:        "USER_LOGIN",
			DisplayName: "Login Activity",
			Template:    "You logged in from {ip_address}",
			TargetType:  "SELF",
			Priority:    "LOW",
			IsActive:    false, // noisy, off by default
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
		{
			Code:        "ORDER_CREATED",
			DisplayName: "New Order",
			Template:    "New {order_type} order from {customer_name}: {item_name} x{quantity}",
			TargetType:  "ADMIN",
			Priority:    "HIGH",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
		{
			Code:        "ORDER_STATUS_CHANGED",
			DisplayName: "Order Update",
			Template:    "Your order for {item_name} is now {status}",
			TargetType:  "SELF",
			Priority:    "HIGH",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web", "email"]`)),
		},
		{
			Code:        "REFERRAL_APPLIED",
			DisplayName: "Referral Reward",
			Template:    "{invitee_email} signed up with your referral code. You earned {reward} points!",
			TargetType:  "SELF",
			Priority:    "MEDIUM",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
		{
			Code:        "POINTS_ADJUSTED",
			DisplayName: "Points Adjusted",
			Template:    "Your points balance was adjusted by an administrator. New balance: {balance}",
			TargetType:  "SELF",
			Priority:    "MEDIUM",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
		{
			Code:        "SUBSCRIPTION_REQUESTED",
			DisplayName: "New Subscription Request",
			Template:    "New {plan} subscription request awaiting review",
			TargetType:  "ADMIN",
			Priority:    "HIGH",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web", "email"]`)),
		},
		{
			Code:        "SUBSCRIPTION_PAID",
			DisplayName: "Subscription Payment Received",
			Template:    "Payment received for a {plan} subscription request",
			TargetType:  "ADMIN",
			Priority:    "HIGH",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
		{
			Code:        "SUBSCRIPTION_APPROVED",
			DisplayName: "Membership Activated",
			Template:    "Your {plan} membership is now active. Welcome to the club!",
			TargetType:  "SELF",
			Priority:    "HIGH",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web", "email"]`)),
		},
		{
			Code:        "SUBSCRIPTION_REJECTED",
			DisplayName: "Membership Request Declined",
			Template:    "Your {plan} membership request was declined. Reason: {reason}",
			TargetType:  "SELF",
			Priority:    "HIGH",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web", "email"]`)),
		},
		{
			Code:        "SYSTEM_BROADCAST",
			DisplayName: "Announcement",
			Template:    "{message}",
			TargetType:  "BROADCAST",
			Priority:    "HIGH",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
	}

	for _, t := range types {
		if err := db.Where("code = ?", t.Code).FirstOrCreate(&t).Error; err != nil {
			log.Printf("Error seeding notification type %s: %v", t.Code, err)
		}
	}
	log.Println("Notification types seeded.")
}
