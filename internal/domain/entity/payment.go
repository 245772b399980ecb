package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dirección del flujo de caja.
const (
	DirectionIn  = "in"  // Thu: cobro de pedido
	DirectionOut = "out" // Chi: pago a proveedor
)

// Métodos de pago aceptados.
const (
	MethodCash         = "Cash"
	MethodBankTransfer = "BankTransfer"
)

// Payment pago aplicado a un pedido (in) o a una orden de compra (out). Exactamente uno de los dos.
type Payment struct {
	ID              string          `bson:"_id"`
	OrderID         string          `bson:"order_id,omitempty"`
	PurchaseOrderID string          `bson:"purchase_order_id,omitempty"`
	Direction       string          `bson:"direction"`
	Method          string          `bson:"payment_method"`
	Amount          decimal.Decimal `bson:"amount"`
	PaymentDate     time.Time       `bson:"payment_date"`
	Note            string          `bson:"note,omitempty"`
	IdempotencyKey  string          `bson:"idempotency_key,omitempty"`
	CreatedBy       string          `bson:"created_by,omitempty"`
	CreatedAt       time.Time       `bson:"created_at"`
	UpdatedAt       time.Time       `bson:"updated_at"`
}

// IsValidPaymentMethod indica si m es un método de pago aceptado.
func IsValidPaymentMethod(m string) bool {
	return m == MethodCash || m == MethodBankTransfer
}
