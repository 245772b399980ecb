package repository

import (
	"context"

	"github.com/jhoicas/furnistore-api/internal/domain/entity"
)

// SupplierRepository puerto de persistencia para proveedores.
type SupplierRepository interface {
	Create(ctx context.Context, s *entity.Supplier) error
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	Update(ctx context.Context, s *entity.Supplier) error
	Delete(ctx context.Context, id string) error
	// List busca en nombre, teléfono, email, dirección y código fiscal.
	List(ctx context.Context, search string, page Page) ([]*entity.Supplier, int64, error)
	FindIDsByName(ctx context.Context, search string) ([]string, error)
	GetByIDs(ctx context.Context, ids []string) ([]*entity.Supplier, error)
}
