package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/example/dinoxe/internal/models"
	"github.com/example/dinoxe/internal/utils"
)

// DefaultCooldown is the admission window applied per customer phone number.
const DefaultCooldown = 60 * time.Second

// RateLimitedError rejects a checkout that arrives inside the cooldown
// window. RetryAfter is whole seconds, never below 1.
type RateLimitedError struct {
	RetryAfter int
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("please wait %d seconds before placing another order", e.RetryAfter)
}

// OrderStore is the persistence surface the admission gate needs.
type OrderStore interface {
	// RecentOrder returns the newest order for the phone created strictly
	// after since, or nil when none exists.
	RecentOrder(phone string, since time.Time) (*models.Order, error)
	// SaveOrder persists the order together with its items as one unit.
	SaveOrder(order *models.Order) error
}

// AdmissionGate enforces the one-order-per-phone cooldown at checkout. It is
// a read-then-write check: two submissions racing inside the same window can
// both pass, which is accepted for a single-node cash-on-delivery shop.
type AdmissionGate struct {
	store    OrderStore
	cooldown time.Duration
	now      func() time.Time
}

// NewAdmissionGate builds a gate over the given store with the given
// cooldown.
func NewAdmissionGate(store OrderStore, cooldown time.Duration) *AdmissionGate {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &AdmissionGate{
		store:    store,
		cooldown: cooldown,
		now:      time.Now,
	}
}

// NewOrderStore returns the database-backed OrderStore.
func NewOrderStore(db *gorm.DB) OrderStore {
	return &gormOrderStore{db: db}
}

// Check looks for a conflicting recent order from the same phone and returns
// a RateLimitedError carrying the remaining wait when one exists.
func (g *AdmissionGate) Check(phone string) error {
	now := g.now()
	recent, err := g.store.RecentOrder(phone, now.Add(-g.cooldown))
	if err != nil {
		return err
	}
	if recent == nil {
		return nil
	}

	elapsed := int(now.Sub(recent.CreatedAt).Seconds())
	remaining := int(g.cooldown.Seconds()) - elapsed
	if remaining < 1 {
		remaining = 1
	}
	return &RateLimitedError{RetryAfter: remaining}
}

// Admit runs the cooldown check, assigns a fresh order identifier and
// persists the order atomically. The identifier is retried on the unlikely
// unique-index collision of the random suffix.
func (g *AdmissionGate) Admit(order *models.Order) error {
	if err := g.Check(order.CustomerPhone); err != nil {
		return err
	}

	for attempt := 0; attempt < 3; attempt++ {
		id, err := utils.GenerateOrderID(g.now())
		if err != nil {
			return err
		}
		order.OrderID = id

		err = g.store.SaveOrder(order)
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		log.Printf("[Order] order id collision on %s, retrying", id)
	}

	return errors.New("could not allocate a unique order id")
}

type gormOrderStore struct {
	db *gorm.DB
}

func (s *gormOrderStore) RecentOrder(phone string, since time.Time) (*models.Order, error) {
	var order models.Order
	err := s.db.Where("customer_phone = ? AND created_at > ?", phone, since).
		Order("created_at desc").
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *gormOrderStore) SaveOrder(order *models.Order) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
}
