package repository

import (
	"context"

	"github.com/jhoicas/furnistore-api/internal/domain/entity"
)

// CustomerRepository puerto de persistencia para clientes.
type CustomerRepository interface {
	Create(ctx context.Context, c *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	GetByEmail(ctx context.Context, email string) (*entity.Customer, error)
	Update(ctx context.Context, c *entity.Customer) error
	Delete(ctx context.Context, id string) error
	// List busca por nombre, teléfono o email.
	List(ctx context.Context, search string, page Page) ([]*entity.Customer, int64, error)
	// FindIDsByName ids de clientes cuyo nombre contiene search.
	FindIDsByName(ctx context.Context, search string) ([]string, error)
	GetByIDs(ctx context.Context, ids []string) ([]*entity.Customer, error)
}
