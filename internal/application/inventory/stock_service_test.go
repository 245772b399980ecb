package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jhoicas/furnistore-api/internal/application/inventory"
	"github.com/jhoicas/furnistore-api/internal/domain"
	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/jhoicas/furnistore-api/internal/domain/repository"
	"github.com/jhoicas/furnistore-api/internal/infrastructure/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingRestore deja pasar los descuentos y falla al devolver existencias.
type failingRestore struct {
	repository.WarehouseRepository
	err error
}

func (f failingRestore) Adjust(ctx context.Context, productID string, delta int) (*entity.WarehouseRecord, error) {
	if delta > 0 {
		return nil, f.err
	}
	return f.WarehouseRepository.Adjust(ctx, productID, delta)
}

func seedStock(t *testing.T, repo repository.Registry, qty int) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, repo.Products.Create(ctx, &entity.Product{ID: "p-1", Name: "Sofá", Quantity: qty}))
	_, err := repo.Warehouse.Adjust(ctx, "p-1", qty)
	require.NoError(t, err)
}

func TestSell_StockInsuficienteCompensa(t *testing.T) {
	repo := memory.NewRegistry(memory.NewStore())
	seedStock(t, repo, 2)
	svc := inventory.NewStockService(repo.Warehouse, repo.Products, repo.Movements)

	err := svc.Sell(context.Background(), "p-1", 3, "ORD-1", "")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	rec, err := repo.Warehouse.GetByProduct(context.Background(), "p-1")
	require.NoError(t, err)
	assert.Equal(t, 2, rec.Quantity)
}

func TestSell_FalloAlCompensarSeDevuelve(t *testing.T) {
	repo := memory.NewRegistry(memory.NewStore())
	seedStock(t, repo, 2)
	boom := errors.New("bodega caída")
	svc := inventory.NewStockService(failingRestore{repo.Warehouse, boom}, repo.Products, repo.Movements)

	err := svc.Sell(context.Background(), "p-1", 3, "ORD-1", "")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.ErrorIs(t, err, boom)
}

func TestAdjust_FalloAlCompensarSeDevuelve(t *testing.T) {
	repo := memory.NewRegistry(memory.NewStore())
	seedStock(t, repo, 1)
	boom := errors.New("bodega caída")
	svc := inventory.NewStockService(failingRestore{repo.Warehouse, boom}, repo.Products, repo.Movements)

	rec, err := svc.Adjust(context.Background(), "p-1", -5, "rotura", "")
	assert.Nil(t, rec)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.ErrorIs(t, err, boom)
}
