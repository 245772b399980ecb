package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jhoicas/furnistore-api/internal/domain"
	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/jhoicas/furnistore-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxRunner_RollbackRestauraEstado(t *testing.T) {
	s := NewStore()
	repos := NewRegistry(s)
	tx := NewTxRunner(s)
	ctx := context.Background()

	boom := errors.New("boom")
	err := tx.Run(ctx, func(ctx context.Context) error {
		require.NoError(t, repos.Suppliers.Create(ctx, &entity.Supplier{ID: "s1", Name: "Gỗ Việt"}))
		_, err := repos.Warehouse.Adjust(ctx, "p1", 5)
		require.NoError(t, err)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	sup, err := repos.Suppliers.GetByID(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, sup, "el proveedor no debe persistir tras el rollback")

	rec, err := repos.Warehouse.GetByProduct(ctx, "p1")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestTxRunner_AnidadoSeUneALaTransaccion(t *testing.T) {
	s := NewStore()
	tx := NewTxRunner(s)
	calls := 0
	err := tx.Run(context.Background(), func(ctx context.Context) error {
		return tx.Run(ctx, func(context.Context) error {
			calls++
			return nil
		})
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestProductRepository_ListFiltraYOrdena(t *testing.T) {
	s := NewStore()
	repo := NewProductRepository(s)
	ctx := context.Background()
	now := time.Now()

	mk := func(id, name string, price int64, status string, age time.Duration) *entity.Product {
		return &entity.Product{
			ID: id, Name: name, SKU: "SKU-" + id, Slug: id, Status: status,
			Price: decimal.NewFromInt(price), CreatedAt: now.Add(-age),
		}
	}
	require.NoError(t, repo.Create(ctx, mk("a", "Sofa da", 900, entity.ProductActive, time.Hour)))
	require.NoError(t, repo.Create(ctx, mk("b", "Bàn trà", 300, entity.ProductActive, 2*time.Hour)))
	require.NoError(t, repo.Create(ctx, mk("c", "Sofa góc", 1500, entity.ProductDraft, 0)))

	list, total, err := repo.List(ctx, repository.ProductFilter{
		Statuses: []string{entity.ProductActive},
	}, repository.SortPriceAsc, repository.Page{Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Equal(t, "b", list[0].ID)

	list, total, err = repo.List(ctx, repository.ProductFilter{Search: "sofa"}, repository.SortNewest, repository.Page{Limit: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, list, 1)
	assert.Equal(t, "c", list[0].ID)

	dup := mk("d", "Otro", 1, entity.ProductActive, 0)
	dup.SKU = "SKU-a"
	assert.ErrorIs(t, repo.Create(ctx, dup), domain.ErrDuplicate)
}

func TestCashbookRepository_TotalesSobreConjuntoFiltrado(t *testing.T) {
	s := NewStore()
	repo := NewCashbookRepository(s)
	ctx := context.Background()
	day := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	entries := []entity.CashbookEntry{
		{ID: "1", PaymentID: "p1", Direction: entity.DirectionIn, Amount: decimal.NewFromInt(500), PaymentMethod: entity.MethodCash, PaymentDate: day},
		{ID: "2", PaymentID: "p2", Direction: entity.DirectionOut, Amount: decimal.NewFromInt(200), PaymentMethod: entity.MethodBankTransfer, PaymentDate: day.AddDate(0, 0, 1)},
		{ID: "3", PaymentID: "p3", Direction: entity.DirectionIn, Amount: decimal.NewFromInt(100), PaymentMethod: entity.MethodCash, PaymentDate: day.AddDate(0, 0, 10)},
	}
	for i := range entries {
		require.NoError(t, repo.Create(ctx, &entries[i]))
	}

	to := day.AddDate(0, 0, 2)
	f := repository.CashbookFilter{From: &day, To: &to}
	list, total, err := repo.List(ctx, f, repository.Page{Limit: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Equal(t, "p2", list[0].PaymentID, "orden por fecha de pago descendente")

	totals, err := repo.Totals(ctx, f)
	require.NoError(t, err)
	assert.True(t, totals.TotalIn.Equal(decimal.NewFromInt(500)))
	assert.True(t, totals.TotalOut.Equal(decimal.NewFromInt(200)))
}
