package repository

import (
	"context"

	"github.com/jhoicas/furnistore-api/internal/domain/entity"
)

// StockMovementRepository historial de existencias.
type StockMovementRepository interface {
	Create(ctx context.Context, m *entity.StockMovement) error
	ListByProduct(ctx context.Context, productID string, page Page) ([]*entity.StockMovement, int64, error)
}
