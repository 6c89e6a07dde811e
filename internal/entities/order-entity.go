package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Order — единица диспетчерской работы: от приёма заявки до финансового закрытия.
// Производные поля Net и Payout всегда пересчитываются парой на сервере.
type Order struct {
	ID            int64
	CampaignID    null.Int64
	City          string
	ContactName   string
	Phone         string
	ClientName    null.String
	Address       string
	EquipmentType string
	Problem       string
	MeetingAt     null.Time
	OrderType     string

	MasterID null.Int64
	// MasterName заполняется JOIN-ом к справочнику мастеров, в таблице orders не хранится.
	MasterName null.String

	Status string

	Settlement null.Float64
	Expense    null.Float64
	Net        null.Float64
	Payout     null.Float64

	// ClosedAt проставляется один раз — при первом переходе в терминальный статус.
	ClosedAt null.Time

	DocumentReceipt null.String
	DocumentClosing null.String

	CreatedAt time.Time
	UpdatedAt time.Time
}
