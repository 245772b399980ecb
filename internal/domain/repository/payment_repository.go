package repository

import (
	"context"

	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// PaymentTarget documento al que se aplica un pago: pedido o orden de compra.
type PaymentTarget struct {
	OrderID         string
	PurchaseOrderID string
}

// PaymentRepository puerto de persistencia para pagos.
type PaymentRepository interface {
	Create(ctx context.Context, p *entity.Payment) error
	GetByID(ctx context.Context, id string) (*entity.Payment, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*entity.Payment, error)
	Update(ctx context.Context, p *entity.Payment) error
	Delete(ctx context.Context, id string) error
	// ListByTarget ordenado por fecha de pago descendente; search sobre nota o método.
	ListByTarget(ctx context.Context, target PaymentTarget, search string, page Page) ([]*entity.Payment, int64, error)
	// SumByTarget suma los pagos del documento excluyendo excludeID (vacío = ninguno).
	SumByTarget(ctx context.Context, target PaymentTarget, excludeID string) (decimal.Decimal, error)
	CountByTarget(ctx context.Context, target PaymentTarget) (int64, error)
}
