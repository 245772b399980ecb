package repository

import (
	"context"
	"time"

	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CashbookFilter criterios del libro de caja.
type CashbookFilter struct {
	From      *time.Time // inclusive
	To        *time.Time // inclusive
	Search    string     // nota o método de pago
	Direction string
}

// CashbookTotals entradas y salidas del conjunto filtrado.
type CashbookTotals struct {
	TotalIn  decimal.Decimal
	TotalOut decimal.Decimal
}

// CashbookRepository puerto de persistencia para el libro de caja.
type CashbookRepository interface {
	Create(ctx context.Context, e *entity.CashbookEntry) error
	GetByPaymentID(ctx context.Context, paymentID string) (*entity.CashbookEntry, error)
	Update(ctx context.Context, e *entity.CashbookEntry) error
	DeleteByPaymentID(ctx context.Context, paymentID string) error
	// List ordenado por fecha de pago y creación descendente.
	List(ctx context.Context, f CashbookFilter, page Page) ([]*entity.CashbookEntry, int64, error)
	Totals(ctx context.Context, f CashbookFilter) (CashbookTotals, error)
	// SumByTarget suma los asientos del documento; debe coincidir con la suma de sus pagos.
	SumByTarget(ctx context.Context, target PaymentTarget) (decimal.Decimal, error)
}
