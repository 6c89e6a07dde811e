package services

import (
	"time"

	"github.com/aarondl/null/v8"

	"repair-system/internal/dto"
	"repair-system/internal/entities"
)

func formatNullTime(t null.Time) *string {
	if !t.Valid {
		return nil
	}
	s := t.Time.Format(time.RFC3339)
	return &s
}

func nullFloatPtr(f null.Float64) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}

func nullIntPtr(i null.Int64) *int64 {
	if !i.Valid {
		return nil
	}
	v := i.Int64
	return &v
}

func nullStringPtr(s null.String) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func orderToDTO(ord *entities.Order) dto.OrderDTO {
	out := dto.OrderDTO{
		ID:              ord.ID,
		CampaignID:      nullIntPtr(ord.CampaignID),
		City:            ord.City,
		ContactName:     ord.ContactName,
		Phone:           ord.Phone,
		ClientName:      nullStringPtr(ord.ClientName),
		Address:         ord.Address,
		EquipmentType:   ord.EquipmentType,
		Problem:         ord.Problem,
		MeetingAt:       formatNullTime(ord.MeetingAt),
		OrderType:       ord.OrderType,
		Status:          ord.Status,
		Settlement:      nullFloatPtr(ord.Settlement),
		Expense:         nullFloatPtr(ord.Expense),
		Net:             nullFloatPtr(ord.Net),
		Payout:          nullFloatPtr(ord.Payout),
		ClosedAt:        formatNullTime(ord.ClosedAt),
		DocumentReceipt: nullStringPtr(ord.DocumentReceipt),
		DocumentClosing: nullStringPtr(ord.DocumentClosing),
		CreatedAt:       ord.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       ord.UpdatedAt.Format(time.RFC3339),
	}
	if ord.MasterID.Valid {
		out.Master = &dto.ShortMasterDTO{
			ID:   ord.MasterID.Int64,
			Name: ord.MasterName.String,
		}
	}
	return out
}

func ledgerEntryToDTO(e *entities.LedgerEntry) dto.LedgerEntryDTO {
	return dto.LedgerEntryDTO{
		ID:             e.ID,
		Direction:      e.Direction,
		Amount:         e.Amount,
		City:           e.City,
		Memo:           e.Memo,
		CreatedBy:      e.CreatedBy,
		PaymentPurpose: nullStringPtr(e.PaymentPurpose),
		CreatedAt:      e.CreatedAt.Format(time.RFC3339),
	}
}

func masterToDTO(m *entities.Master) dto.MasterDTO {
	return dto.MasterDTO{
		ID:       m.ID,
		Name:     m.Name,
		Cities:   m.Cities,
		IsActive: m.IsActive,
	}
}
