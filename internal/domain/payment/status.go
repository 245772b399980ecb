// Package payment contiene las reglas puras de conciliación de pagos:
// saldo pendiente, estado de pago y cierre automático de órdenes de compra.
package payment

import (
	"github.com/jhoicas/furnistore-api/internal/domain"
	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Summary estado de pago de un pedido u orden de compra.
type Summary struct {
	Total         decimal.Decimal `json:"total"`
	TotalPaid     decimal.Decimal `json:"total_paid"`
	Remaining     decimal.Decimal `json:"remaining"`
	PaymentStatus string          `json:"payment_status"`
}

// Summarize calcula saldo y estado a partir del total y lo pagado.
// remaining = max(total - paid, 0); Paid si paid >= total, Partial si paid > 0.
func Summarize(total, paid decimal.Decimal) Summary {
	remaining := total.Sub(paid)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	status := entity.PaymentUnpaid
	switch {
	case paid.GreaterThanOrEqual(total) && paid.IsPositive():
		status = entity.PaymentPaid
	case paid.IsPositive():
		status = entity.PaymentPartial
	}
	return Summary{Total: total, TotalPaid: paid, Remaining: remaining, PaymentStatus: status}
}

// CheckNewAmount valida un pago nuevo contra el saldo pendiente.
func CheckNewAmount(amount, remaining decimal.Decimal) error {
	if !amount.IsPositive() {
		return domain.Invalid("amount", "debe ser mayor que cero")
	}
	if !remaining.IsPositive() {
		return domain.ErrAlreadyPaid
	}
	if amount.GreaterThan(remaining) {
		return domain.ErrOverpayment
	}
	return nil
}

// CheckUpdatedAmount valida la modificación de un pago: el tope es total menos los demás pagos.
func CheckUpdatedAmount(amount, total, otherPaid decimal.Decimal) error {
	if !amount.IsPositive() {
		return domain.Invalid("amount", "debe ser mayor que cero")
	}
	if amount.GreaterThan(total.Sub(otherPaid)) {
		return domain.ErrOverpayment
	}
	return nil
}

// CheckInvariant falla si lo pagado supera el total.
func CheckInvariant(total, paid decimal.Decimal) error {
	if paid.IsNegative() || paid.GreaterThan(total) {
		return domain.ErrInvariantViolation
	}
	return nil
}

// CheckLedger falla si los asientos de caja del documento no suman lo mismo que sus pagos.
func CheckLedger(paid, booked decimal.Decimal) error {
	if !paid.Equal(booked) {
		return domain.ErrInvariantViolation
	}
	return nil
}

// PurchaseStatus estado de la orden de compra tras recibir mercancía o conciliar pagos.
// Received + Paid completa la orden; una orden completada que deja de estar pagada vuelve a Pending.
func PurchaseStatus(current, warehouseStatus, paymentStatus string) string {
	if current == entity.PurchaseCancelled {
		return current
	}
	if warehouseStatus == entity.WarehouseReceived && paymentStatus == entity.PaymentPaid {
		return entity.PurchaseCompleted
	}
	return entity.PurchasePending
}
