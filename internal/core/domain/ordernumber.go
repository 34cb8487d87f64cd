package domain

import (
	"fmt"
	"math/rand"
	"time"
)

// NewOrderNumber returns a human-readable order number of the form
// ORD-YYYYMMDD-NNNNN with a uniformly random 5-digit suffix. Uniqueness is
// enforced by the store; callers regenerate on collision.
func NewOrderNumber(now time.Time) string {
	return fmt.Sprintf("ORD-%s-%d", now.Format("20060102"), 10000+rand.Intn(90000))
}
