package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/jhoicas/furnistore-api/internal/application/analytics"
	"github.com/jhoicas/furnistore-api/internal/application/inventory"
	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/jhoicas/furnistore-api/internal/infrastructure/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSummary(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRegistry(memory.NewStore())
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.Local)

	orders := []entity.Order{
		{ID: "o1", Code: "ORD-1", Amount: decimal.NewFromInt(1000), Status: entity.OrderNotProcessed, CreatedAt: now.Add(-time.Hour)},
		{ID: "o2", Code: "ORD-2", Amount: decimal.NewFromInt(500), Status: entity.OrderDelivered, CreatedAt: now.AddDate(0, 0, -5)},
		{ID: "o3", Code: "ORD-3", Amount: decimal.NewFromInt(9000), Status: entity.OrderCancelled, CreatedAt: now.Add(-time.Hour)},
		{ID: "o4", Code: "ORD-4", Amount: decimal.NewFromInt(700), Status: entity.OrderDelivered, CreatedAt: now.AddDate(0, -1, 0)},
	}
	for i := range orders {
		require.NoError(t, repo.Orders.Create(ctx, &orders[i]))
	}
	require.NoError(t, repo.Cashbook.Create(ctx, &entity.CashbookEntry{ID: "e1", PaymentID: "p1", Direction: entity.DirectionIn, Amount: decimal.NewFromInt(800), PaymentDate: now}))
	require.NoError(t, repo.Cashbook.Create(ctx, &entity.CashbookEntry{ID: "e2", PaymentID: "p2", Direction: entity.DirectionOut, Amount: decimal.NewFromInt(300), PaymentDate: now.AddDate(0, 0, -2)}))
	require.NoError(t, repo.Products.Create(ctx, &entity.Product{ID: "p1", Name: "Sofá", SKU: "S1", Slug: "sofa", Price: decimal.NewFromInt(100), Status: entity.ProductActive, Sold: 3, Quantity: 2, Reorder: 5}))
	require.NoError(t, repo.Warehouse.Upsert(ctx, &entity.WarehouseRecord{ID: "w1", ProductID: "p1", Quantity: 2}))

	uc := analytics.NewDashboardUseCase(repo.Orders, repo.Products, repo.Cashbook,
		inventory.NewReplenishmentUseCase(repo.Products, repo.Warehouse))
	out, err := uc.GetSummary(ctx, now)
	require.NoError(t, err)

	assert.True(t, out.TodaySales.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, int64(1), out.TodayOrders)
	assert.True(t, out.MonthlySales.Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, int64(2), out.MonthOrders)
	assert.True(t, out.CashBalance.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, 1, out.LowStockCount)
	require.Len(t, out.TopProducts, 1)
	assert.True(t, out.TopProducts[0].Revenue.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, "03/2026", out.DateLabel)
}
