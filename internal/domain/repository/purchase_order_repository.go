package repository

import (
	"context"

	"github.com/jhoicas/furnistore-api/internal/domain/entity"
)

// PurchaseOrderRepository puerto de persistencia para órdenes de compra.
type PurchaseOrderRepository interface {
	Create(ctx context.Context, po *entity.PurchaseOrder) error
	GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error)
	Update(ctx context.Context, po *entity.PurchaseOrder) error
	Delete(ctx context.Context, id string) error
	// List filtra por proveedores cuando supplierIDs no es nil (slice vacío = sin resultados).
	List(ctx context.Context, supplierIDs []string, page Page) ([]*entity.PurchaseOrder, int64, error)
	CountBySupplier(ctx context.Context, supplierID string) (int64, error)
	// LastCode mayor código que empieza por prefix; "" si no hay ninguno.
	LastCode(ctx context.Context, prefix string) (string, error)
}
