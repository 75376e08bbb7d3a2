package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// GenerateOrderID builds a human-facing order identifier in the form
// ORD-YYYYMMDD-NNNNN: the UTC creation date followed by a random 5-digit
// number in [10000, 99999].
func GenerateOrderID(now time.Time) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(90000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("ORD-%s-%d", now.UTC().Format("20060102"), n.Int64()+10000), nil
}
