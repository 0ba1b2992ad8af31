package membership

import (
	"testing"
	"time"

	"restro-orders-be/internal/entity"
)

func TestExpiryFor(t *testing.T) {
	now := time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC)

	t.Run("yearly adds one year", func(t *testing.T) {
		got := ExpiryFor(entity.SubscriptionPlanYearly, now)
		if got == nil {
			t.Fatal("ExpiryFor(yearly) = nil, want a date")
		}
		want := time.Date(2027, 2, 10, 9, 30, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("ExpiryFor(yearly) = %v, want %v", got, want)
		}
	})

	t.Run("lifetime has no expiry", func(t *testing.T) {
		if got := ExpiryFor(entity.SubscriptionPlanLifetime, now); got != nil {
			t.Errorf("ExpiryFor(lifetime) = %v, want nil", got)
		}
	})

	t.Run("yearly across leap day", func(t *testing.T) {
		leap := time.Date(2028, 2, 29, 0, 0, 0, 0, time.UTC)
		got := ExpiryFor(entity.SubscriptionPlanYearly, leap)
		if got == nil {
			t.Fatal("ExpiryFor(yearly) = nil")
		}
		// AddDate normalizes Feb 29 + 1y to Mar 1.
		want := time.Date(2029, 3, 1, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("ExpiryFor(yearly leap) = %v, want %v", got, want)
		}
	})
}

func TestIsExpired(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	past := now.AddDate(0, -1, 0)
	future := now.AddDate(0, 1, 0)

	tests := []struct {
		name   string
		expiry *time.Time
		want   bool
	}{
		{name: "nil expiry means lifetime", expiry: nil, want: false},
		{name: "future expiry", expiry: &future, want: false},
		{name: "past expiry", expiry: &past, want: true},
		{name: "exact boundary not yet expired", expiry: &now, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsExpired(tt.expiry, now); got != tt.want {
				t.Errorf("IsExpired(%v) = %v, want %v", tt.expiry, got, tt.want)
			}
		})
	}
}
