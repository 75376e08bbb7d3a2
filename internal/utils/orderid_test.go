package utils

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_GenerateOrderID(t *testing.T) {
	now := time.Date(2025, 3, 15, 23, 45, 0, 0, time.UTC)

	pattern := regexp.MustCompile(`^ORD-20250315-\d{5}$`)
	for i := 0; i < 100; i++ {
		id, err := GenerateOrderID(now)
		require.NoError(t, err)
		assert.Regexp(t, pattern, id)

		suffix, err := strconv.Atoi(strings.TrimPrefix(id, "ORD-20250315-"))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, suffix, 10000)
		assert.LessOrEqual(t, suffix, 99999)
	}
}

func Test_GenerateOrderIDUsesUTCDate(t *testing.T) {
	// Early morning on March 16th in IST is still March 15th in UTC; the id
	// must carry the UTC date.
	ist := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2025, 3, 16, 4, 30, 0, 0, ist)

	id, err := GenerateOrderID(now)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "ORD-20250315-"), id)
}
