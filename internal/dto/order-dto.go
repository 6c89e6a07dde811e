package dto

import (
	"time"

	"repair-system/pkg/types"
)

type CreateOrderDTO struct {
	CampaignID    *int64     `json:"campaign_id,omitempty"`
	City          string     `json:"city" validate:"required,min=2"`
	ContactName   string     `json:"contact_name" validate:"required,min=2"`
	Phone         string     `json:"phone" validate:"required,min=5"`
	ClientName    *string    `json:"client_name,omitempty"`
	Address       string     `json:"address" validate:"required,min=5"`
	EquipmentType string     `json:"equipment_type" validate:"required"`
	Problem       string     `json:"problem" validate:"required,min=3"`
	MeetingAt     *time.Time `json:"meeting_at,omitempty"`
	OrderType     string     `json:"order_type" validate:"required"`
	MasterID      *int64     `json:"master_id,omitempty" validate:"omitempty,gt=0"`
}

// UpdateOrderDTO — белый список полей, которые может менять обновление.
// Поля Net и Payout здесь отсутствуют намеренно: они производные и считаются
// только сервером. Для обнуляемых полей null означает "очистить".
type UpdateOrderDTO struct {
	CampaignID    types.OptInt    `json:"campaign_id"`
	City          *string         `json:"city,omitempty" validate:"omitempty,min=2"`
	ContactName   *string         `json:"contact_name,omitempty" validate:"omitempty,min=2"`
	Phone         *string         `json:"phone,omitempty" validate:"omitempty,min=5"`
	ClientName    types.OptString `json:"client_name"`
	Address       *string         `json:"address,omitempty" validate:"omitempty,min=5"`
	EquipmentType *string         `json:"equipment_type,omitempty"`
	Problem       *string         `json:"problem,omitempty" validate:"omitempty,min=3"`
	MeetingAt     types.OptTime   `json:"meeting_at"`
	OrderType     *string         `json:"order_type,omitempty"`
	MasterID      types.OptInt    `json:"master_id"`

	Status *string `json:"status,omitempty" validate:"omitempty,oneof=PENDING ACCEPTED IN_PROGRESS MODERN DONE REFUSED NOT_ORDERED"`

	Settlement types.OptFloat `json:"settlement"`
	Expense    types.OptFloat `json:"expense"`

	DocumentReceipt types.OptString `json:"document_receipt"`
	DocumentClosing types.OptString `json:"document_closing"`
}

type AssignMasterDTO struct {
	MasterID int64 `json:"master_id" validate:"required,gt=0"`
}

// CloseOrderDTO — ярлык закрытия: статус принудительно становится DONE.
type CloseOrderDTO struct {
	Settlement      *float64 `json:"settlement" validate:"omitempty,gte=0"`
	Expense         *float64 `json:"expense,omitempty" validate:"omitempty,gte=0"`
	DocumentClosing *string  `json:"document_closing,omitempty"`
}

type ShortMasterDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type OrderDTO struct {
	ID            int64           `json:"id"`
	CampaignID    *int64          `json:"campaign_id,omitempty"`
	City          string          `json:"city"`
	ContactName   string          `json:"contact_name"`
	Phone         string          `json:"phone"`
	ClientName    *string         `json:"client_name,omitempty"`
	Address       string          `json:"address"`
	EquipmentType string          `json:"equipment_type"`
	Problem       string          `json:"problem"`
	MeetingAt     *string         `json:"meeting_at,omitempty"`
	OrderType     string          `json:"order_type"`
	Master        *ShortMasterDTO `json:"master,omitempty"`
	Status        string          `json:"status"`

	Settlement *float64 `json:"settlement,omitempty"`
	Expense    *float64 `json:"expense,omitempty"`
	Net        *float64 `json:"net,omitempty"`
	Payout     *float64 `json:"payout,omitempty"`

	ClosedAt *string `json:"closed_at,omitempty"`

	DocumentReceipt *string `json:"document_receipt,omitempty"`
	DocumentClosing *string `json:"document_closing,omitempty"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// OrderUpdateResultDTO — двухфазный результат обновления: сам заказ и исход
// сопутствующей проводки по кассе. Проводка не откатывает заказ и не повторяется,
// её неудача видна клиенту отдельным полем.
type OrderUpdateResultDTO struct {
	Order        OrderDTO `json:"order"`
	LedgerPosted bool     `json:"ledger_posted"`
	LedgerError  string   `json:"ledger_error,omitempty"`
}
