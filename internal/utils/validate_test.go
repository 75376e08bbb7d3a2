package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("9876543210"))
	assert.True(t, ValidPhone("6000000001"))

	assert.False(t, ValidPhone("5876543210"), "must start with 6-9")
	assert.False(t, ValidPhone("987654321"), "too short")
	assert.False(t, ValidPhone("98765432100"), "too long")
	assert.False(t, ValidPhone("98765abc10"))
	assert.False(t, ValidPhone(""))
}

func Test_ValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("customer@example.com"))
	assert.True(t, ValidEmail("a.b+c@shop.co.in"))

	assert.False(t, ValidEmail("customer@example"))
	assert.False(t, ValidEmail("customer example@x.com"))
	assert.False(t, ValidEmail("@example.com"))
}

func Test_ValidName(t *testing.T) {
	assert.True(t, ValidName("Priya Sharma"))
	assert.True(t, ValidName("Raj"))

	assert.False(t, ValidName("Al"), "below 3 characters")
	assert.False(t, ValidName("R2D2"))
	assert.False(t, ValidName(strings.Repeat("a", 101)))
}

func Test_ValidPincode(t *testing.T) {
	assert.True(t, ValidPincode("560001"))
	assert.False(t, ValidPincode("56001"))
	assert.False(t, ValidPincode("5600011"))
	assert.False(t, ValidPincode("56000a"))
}

func Test_ValidAddress(t *testing.T) {
	assert.True(t, ValidAddress("221B Baker Street, Indiranagar, Bangalore 560038"))

	assert.False(t, ValidAddress("Bangalore 560038"), "too short")
	assert.False(t, ValidAddress("221B Baker Street, Indiranagar, Bangalore"), "no pincode")
}
