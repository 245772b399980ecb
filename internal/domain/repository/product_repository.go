package repository

import (
	"context"
	"time"

	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ProductFilter criterios de búsqueda del catálogo. Campos nil/vacíos no filtran.
type ProductFilter struct {
	Search       string // nombre, descripción o SKU (sin distinguir mayúsculas)
	CategoryID   string
	Statuses     []string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	Featured     *bool
	Recommended  *bool
	Bestseller   *bool
	CreatedAfter *time.Time
	IDs          []string
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f ProductFilter, sort string, page Page) ([]*entity.Product, int64, error)
	CountByCategory(ctx context.Context, categoryID string) (int64, error)
	IncrementViewCount(ctx context.Context, id string) error
	// AdjustCounters suma soldDelta a sold y qtyDelta a quantity de forma atómica.
	AdjustCounters(ctx context.Context, id string, soldDelta, qtyDelta int) error
}
