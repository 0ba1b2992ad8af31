package specification

import "gorm.io/gorm"

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

type ByStatusIn struct {
	Statuses []string
}

func (s ByStatusIn) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status IN ?", s.Statuses)
}

type ByOrderType struct {
	OrderType string
}

func (s ByOrderType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("order_type = ?", s.OrderType)
}

// UncreditedDelivered selects delivered orders whose cashback has not been
// applied yet. Used by the startup sweep of the cashback consumer.
type UncreditedDelivered struct{}

func (s UncreditedDelivered) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ? AND points_credited = ?", "delivered", false)
}

type ByIdempotencyKey struct {
	Key string
}

func (s ByIdempotencyKey) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("idempotency_key = ?", s.Key)
}
