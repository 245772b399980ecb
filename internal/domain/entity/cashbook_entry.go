package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Origen del asiento de caja.
const (
	SourceOrder    = "order"
	SourcePurchase = "purchase"
)

// CashbookEntry asiento del libro de caja; uno por pago. Amount siempre positivo.
type CashbookEntry struct {
	ID              string          `bson:"_id"`
	PaymentID       string          `bson:"payment_id"`
	Direction       string          `bson:"direction"`
	Source          string          `bson:"source"`
	OrderID         string          `bson:"order_id,omitempty"`
	PurchaseOrderID string          `bson:"purchase_order_id,omitempty"`
	Amount          decimal.Decimal `bson:"amount"`
	PaymentMethod   string          `bson:"payment_method"`
	PaymentDate     time.Time       `bson:"payment_date"`
	Note            string          `bson:"note,omitempty"`
	CreatedBy       string          `bson:"created_by,omitempty"`
	CreatedAt       time.Time       `bson:"created_at"`
	UpdatedAt       time.Time       `bson:"updated_at"`
}
