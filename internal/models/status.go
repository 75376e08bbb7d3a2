package models

// Order status vocabulary. Stored as an open string column so support staff
// can be given new values without a migration; anything unrecognized falls
// back to the first delivery step.
const (
	StatusPending       = "Pending"
	StatusDispatched    = "Dispatched"
	StatusDelivered     = "Delivered"
	StatusCompleted     = "Completed"
	StatusRefundPending = "Refund Pending"
	StatusRefunded      = "Refunded"
)

// AllStatuses lists every value the admin dashboard may set.
var AllStatuses = []string{
	StatusPending,
	StatusDispatched,
	StatusDelivered,
	StatusCompleted,
	StatusRefundPending,
	StatusRefunded,
}

// StatusStepInfo describes one step of the customer-facing delivery timeline.
type StatusStepInfo struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// StatusSteps is the normal-path progression shown on the tracking page.
var StatusSteps = []StatusStepInfo{
	{Key: StatusPending, Label: "Order Placed", Description: "Your order has been received"},
	{Key: StatusDispatched, Label: "Preparing", Description: "Your order is being prepared for dispatch"},
	{Key: StatusDelivered, Label: "Out for Delivery", Description: "Your order is on the way"},
	{Key: StatusCompleted, Label: "Delivered", Description: "Your order has been delivered"},
}

var statusStepIndex = map[string]int{
	StatusPending:    0,
	StatusDispatched: 1,
	StatusDelivered:  2,
	StatusCompleted:  3,
}

// StatusStep maps a stored status to its delivery-timeline index. Refund
// statuses and unrecognized values map to 0 rather than erroring, so the
// tracker stays resilient to vocabulary changes.
func StatusStep(status string) int {
	return statusStepIndex[status]
}

// InRefundBranch reports whether the order should be rendered as a refund in
// progress instead of on the delivery timeline.
func InRefundBranch(status string) bool {
	return status == StatusRefundPending || status == StatusRefunded
}
