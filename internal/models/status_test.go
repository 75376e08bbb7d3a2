package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_StatusStep(t *testing.T) {
	assert.Equal(t, 0, StatusStep(StatusPending))
	assert.Equal(t, 1, StatusStep(StatusDispatched))
	assert.Equal(t, 2, StatusStep(StatusDelivered))
	assert.Equal(t, 3, StatusStep(StatusCompleted))
}

func Test_StatusStepRefundStatusesMapToZero(t *testing.T) {
	assert.Equal(t, 0, StatusStep(StatusRefundPending))
	assert.Equal(t, 0, StatusStep(StatusRefunded))
}

func Test_StatusStepUnknownDefaultsToZero(t *testing.T) {
	for _, status := range []string{"", "shipped", "CANCELLED", "On Hold", "pending"} {
		assert.Equal(t, 0, StatusStep(status), "status %q", status)
	}
}

func Test_StatusStepIsPure(t *testing.T) {
	for _, status := range AllStatuses {
		first := StatusStep(status)
		assert.Equal(t, first, StatusStep(status))
	}
}

func Test_InRefundBranch(t *testing.T) {
	assert.True(t, InRefundBranch(StatusRefundPending))
	assert.True(t, InRefundBranch(StatusRefunded))

	for _, status := range []string{StatusPending, StatusDispatched, StatusDelivered, StatusCompleted, "", "refunded"} {
		assert.False(t, InRefundBranch(status), "status %q", status)
	}
}

func Test_StatusStepsProgression(t *testing.T) {
	assert.Len(t, StatusSteps, 4)
	for i, step := range StatusSteps {
		assert.Equal(t, i, StatusStep(step.Key))
		assert.False(t, InRefundBranch(step.Key))
	}
}
