package repository

import (
	"context"

	"github.com/jhoicas/furnistore-api/internal/domain/entity"
)

// CategoryRepository puerto de persistencia para categorías.
type CategoryRepository interface {
	Create(ctx context.Context, c *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	GetByName(ctx context.Context, name string) (*entity.Category, error)
	Update(ctx context.Context, c *entity.Category) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, search string, page Page) ([]*entity.Category, int64, error)
}
