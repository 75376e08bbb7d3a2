package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_FormatPrice(t *testing.T) {
	assert.Equal(t, "₹0", FormatPrice(0))
	assert.Equal(t, "₹999", FormatPrice(999))
	assert.Equal(t, "₹1,100", FormatPrice(1100))
	assert.Equal(t, "₹99,999", FormatPrice(99999))
	assert.Equal(t, "₹1,25,000", FormatPrice(125000))
	assert.Equal(t, "₹12,34,56,789", FormatPrice(123456789))
	assert.Equal(t, "-₹1,100", FormatPrice(-1100))
}
