package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashbookQuery filtros del libro de caja.
type CashbookQuery struct {
	PageRequest
	From      *time.Time
	To        *time.Time
	Direction string
}

// CashbookEntryResponse asiento del libro de caja.
type CashbookEntryResponse struct {
	ID              string          `json:"id"`
	PaymentID       string          `json:"payment"`
	Direction       string          `json:"direction"`
	Source          string          `json:"source"`
	OrderID         string          `json:"order,omitempty"`
	PurchaseOrderID string          `json:"purchase_order,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMethod   string          `json:"payment_method"`
	PaymentDate     time.Time       `json:"payment_date"`
	Note            string          `json:"note,omitempty"`
	CreatedBy       string          `json:"created_by,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// CashbookSummary totales del conjunto filtrado.
type CashbookSummary struct {
	TotalIn  decimal.Decimal `json:"total_in"`
	TotalOut decimal.Decimal `json:"total_out"`
	Balance  decimal.Decimal `json:"balance"`
}

// CashbookListResponse asientos paginados y resumen.
type CashbookListResponse struct {
	Items      []CashbookEntryResponse `json:"items"`
	Pagination Pagination              `json:"pagination"`
	Summary    CashbookSummary         `json:"summary"`
}
