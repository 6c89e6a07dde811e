package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// LedgerEntry — одно проведённое движение по кассе. После создания не меняется.
type LedgerEntry struct {
	ID             int64
	Direction      string // income / expense
	Amount         float64
	City           string
	Memo           string
	CreatedBy      string
	PaymentPurpose null.String
	CreatedAt      time.Time
}
