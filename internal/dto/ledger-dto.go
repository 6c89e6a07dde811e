package dto

type LedgerEntryDTO struct {
	ID             int64   `json:"id"`
	Direction      string  `json:"direction"`
	Amount         float64 `json:"amount"`
	City           string  `json:"city"`
	Memo           string  `json:"memo"`
	CreatedBy      string  `json:"created_by"`
	PaymentPurpose *string `json:"payment_purpose,omitempty"`
	CreatedAt      string  `json:"created_at"`
}
