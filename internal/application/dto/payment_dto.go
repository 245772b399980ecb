package dto

import (
	"time"

	"github.com/jhoicas/furnistore-api/internal/domain/payment"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest registra un pago contra un pedido o una orden de compra (exactamente uno).
type CreatePaymentRequest struct {
	OrderID         string          `json:"order"`
	PurchaseOrderID string          `json:"purchase_order"`
	PaymentMethod   string          `json:"payment_method"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentDate     *time.Time      `json:"payment_date"`
	Note            string          `json:"note"`
	IdempotencyKey  string          `json:"idempotency_key"`
}

// UpdatePaymentRequest modificación de un pago; campos nil se conservan.
type UpdatePaymentRequest struct {
	PaymentMethod *string          `json:"payment_method"`
	Amount        *decimal.Decimal `json:"amount"`
	PaymentDate   *time.Time       `json:"payment_date"`
	Note          *string          `json:"note"`
}

// PaymentResponse salida de un pago.
type PaymentResponse struct {
	ID              string          `json:"id"`
	OrderID         string          `json:"order,omitempty"`
	PurchaseOrderID string          `json:"purchase_order,omitempty"`
	Direction       string          `json:"direction"`
	PaymentMethod   string          `json:"payment_method"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentDate     time.Time       `json:"payment_date"`
	Note            string          `json:"note,omitempty"`
	CreatedBy       string          `json:"created_by,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// PaymentResultResponse pago aplicado y estado resultante del documento.
type PaymentResultResponse struct {
	Payment  PaymentResponse `json:"payment"`
	Summary  payment.Summary `json:"summary"`
	Replayed bool            `json:"replayed"`
}

// PaymentListResponse pagos de un documento con su resumen.
type PaymentListResponse struct {
	Items      []PaymentResponse `json:"items"`
	Pagination Pagination        `json:"pagination"`
	Summary    payment.Summary   `json:"summary"`
}
