package services

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/dinoxe/internal/models"
)

var orderIDPattern = regexp.MustCompile(`^ORD-\d{8}-\d{5}$`)

type fakeOrderStore struct {
	orders  []models.Order
	saveErr error
}

func (s *fakeOrderStore) RecentOrder(phone string, since time.Time) (*models.Order, error) {
	var newest *models.Order
	for i := range s.orders {
		o := &s.orders[i]
		if o.CustomerPhone == phone && o.CreatedAt.After(since) {
			if newest == nil || o.CreatedAt.After(newest.CreatedAt) {
				newest = o
			}
		}
	}
	return newest, nil
}

func (s *fakeOrderStore) SaveOrder(order *models.Order) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.orders = append(s.orders, *order)
	return nil
}

func newTestGate(store *fakeOrderStore, at time.Time) *AdmissionGate {
	return &AdmissionGate{
		store:    store,
		cooldown: DefaultCooldown,
		now:      func() time.Time { return at },
	}
}

func testOrder(phone string) *models.Order {
	return &models.Order{
		CustomerPhone: phone,
		CustomerName:  "Test Customer",
		PaymentMethod: "COD",
		OrderStatus:   models.StatusPending,
		TotalAmount:   1100,
		Items: []models.OrderItem{
			{ProductName: "Fast Charger", ProductPrice: 500, Quantity: 1, Subtotal: 500},
			{ProductName: "USB-C Cable", ProductPrice: 300, Quantity: 2, Subtotal: 600},
		},
	}
}

func Test_AdmitFirstOrder(t *testing.T) {
	store := &fakeOrderStore{}
	t0 := time.Date(2025, 3, 15, 9, 30, 0, 0, time.UTC)
	gate := newTestGate(store, t0)

	order := testOrder("9876543210")
	require.NoError(t, gate.Admit(order))

	assert.Regexp(t, orderIDPattern, order.OrderID)
	assert.Contains(t, order.OrderID, "ORD-20250315-")
	require.Len(t, store.orders, 1)
	assert.Equal(t, order.OrderID, store.orders[0].OrderID)
}

func Test_AdmitWithinCooldown(t *testing.T) {
	store := &fakeOrderStore{}
	t0 := time.Date(2025, 3, 15, 9, 30, 0, 0, time.UTC)

	first := testOrder("9876543210")
	require.NoError(t, newTestGate(store, t0).Admit(first))
	store.orders[0].CreatedAt = t0

	err := newTestGate(store, t0.Add(10*time.Second)).Admit(testOrder("9876543210"))

	var rl *RateLimitedError
	require.ErrorAs(t, err, &rl)
	assert.Equal(t, 50, rl.RetryAfter)
	assert.Contains(t, rl.Error(), "50 seconds")
	assert.Len(t, store.orders, 1)
}

func Test_AdmitAfterCooldown(t *testing.T) {
	store := &fakeOrderStore{}
	t0 := time.Date(2025, 3, 15, 9, 30, 0, 0, time.UTC)

	require.NoError(t, newTestGate(store, t0).Admit(testOrder("9876543210")))
	store.orders[0].CreatedAt = t0

	second := testOrder("9876543210")
	require.NoError(t, newTestGate(store, t0.Add(61*time.Second)).Admit(second))
	assert.Len(t, store.orders, 2)
	assert.Regexp(t, orderIDPattern, second.OrderID)
}

func Test_AdmitExactlyAtWindowEnd(t *testing.T) {
	store := &fakeOrderStore{}
	t0 := time.Date(2025, 3, 15, 9, 30, 0, 0, time.UTC)

	require.NoError(t, newTestGate(store, t0).Admit(testOrder("9876543210")))
	store.orders[0].CreatedAt = t0

	require.NoError(t, newTestGate(store, t0.Add(60*time.Second)).Admit(testOrder("9876543210")))
	assert.Len(t, store.orders, 2)
}

func Test_RemainingWaitNeverBelowOne(t *testing.T) {
	store := &fakeOrderStore{}
	t0 := time.Date(2025, 3, 15, 9, 30, 0, 0, time.UTC)

	require.NoError(t, newTestGate(store, t0).Admit(testOrder("9876543210")))
	store.orders[0].CreatedAt = t0

	err := newTestGate(store, t0.Add(59*time.Second+900*time.Millisecond)).Check("9876543210")

	var rl *RateLimitedError
	require.ErrorAs(t, err, &rl)
	assert.Equal(t, 1, rl.RetryAfter)
}

func Test_CheckDifferentPhonesIndependent(t *testing.T) {
	store := &fakeOrderStore{}
	t0 := time.Date(2025, 3, 15, 9, 30, 0, 0, time.UTC)

	require.NoError(t, newTestGate(store, t0).Admit(testOrder("9876543210")))
	store.orders[0].CreatedAt = t0

	gate := newTestGate(store, t0.Add(5*time.Second))
	assert.Error(t, gate.Check("9876543210"))
	assert.NoError(t, gate.Check("9123456789"))
}

func Test_SaveFailureIsNotRateLimit(t *testing.T) {
	storageDown := errors.New("storage unavailable")
	store := &fakeOrderStore{saveErr: storageDown}
	gate := newTestGate(store, time.Date(2025, 3, 15, 9, 30, 0, 0, time.UTC))

	err := gate.Admit(testOrder("9876543210"))
	require.ErrorIs(t, err, storageDown)

	var rl *RateLimitedError
	assert.False(t, errors.As(err, &rl))
}
