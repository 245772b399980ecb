package repository

import (
	"context"
	"time"

	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// OrderFilter criterios del listado de pedidos.
type OrderFilter struct {
	Search      string   // transactionId o código
	CustomerIDs []string // clientes cuyo nombre coincide con Search (OR)
	UserID      string
	CustomerID  string
	Status      string
}

// SalesTotals agregado de ventas en un rango.
type SalesTotals struct {
	Count  int64
	Amount decimal.Decimal
}

// OrderRepository puerto de persistencia para pedidos.
type OrderRepository interface {
	Create(ctx context.Context, o *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	Update(ctx context.Context, o *entity.Order) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f OrderFilter, page Page) ([]*entity.Order, int64, error)
	// LastCode mayor código que empieza por prefix; "" si no hay ninguno.
	LastCode(ctx context.Context, prefix string) (string, error)
	// SalesBetween suma pedidos no cancelados creados en [from, to).
	SalesBetween(ctx context.Context, from, to time.Time) (SalesTotals, error)
}
