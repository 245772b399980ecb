package repository

import (
	"context"

	"github.com/jhoicas/furnistore-api/internal/domain/entity"
)

// WarehouseRepository puerto de persistencia para registros de bodega (uno por producto).
type WarehouseRepository interface {
	GetByProduct(ctx context.Context, productID string) (*entity.WarehouseRecord, error)
	List(ctx context.Context) ([]*entity.WarehouseRecord, error)
	// Upsert crea o reemplaza el registro del producto.
	Upsert(ctx context.Context, rec *entity.WarehouseRecord) error
	// Adjust suma delta a la existencia de forma atómica, creando el registro si no existe.
	// Devuelve el registro resultante.
	Adjust(ctx context.Context, productID string, delta int) (*entity.WarehouseRecord, error)
	DeleteByProduct(ctx context.Context, productID string) error
}
