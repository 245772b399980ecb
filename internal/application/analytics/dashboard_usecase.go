// Package analytics contiene los casos de uso para reportes de negocio y el
// resumen del panel de administración.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/furnistore-api/internal/application/dto"
	"github.com/jhoicas/furnistore-api/internal/application/inventory"
	"github.com/jhoicas/furnistore-api/internal/domain/catalog"
	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/jhoicas/furnistore-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

const dashboardTopProducts = 5 // productos en el widget del dashboard

// DashboardUseCase genera el resumen de ventas y caja del día y del mes en curso.
type DashboardUseCase struct {
	orders        repository.OrderRepository
	products      repository.ProductRepository
	cashbook      repository.CashbookRepository
	replenishment *inventory.ReplenishmentUseCase
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	cashbook repository.CashbookRepository,
	replenishment *inventory.ReplenishmentUseCase,
) *DashboardUseCase {
	return &DashboardUseCase{orders: orders, products: products, cashbook: cashbook, replenishment: replenishment}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Cinco consultas en paralelo:
//  1. SalesBetween(hoy)    → TodaySales + TodayOrders
//  2. SalesBetween(mes)    → MonthlySales + MonthOrders
//  3. Totals(caja del mes) → CashIn + CashOut
//  4. LowStock             → LowStockCount
//  5. List(sold desc)      → TopProducts
func (uc *DashboardUseCase) GetSummary(ctx context.Context, now time.Time) (*dto.DashboardSummaryDTO, error) {
	// ── Rangos de fecha ────────────────────────────────────────────────────────
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.AddDate(0, 0, 1)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	cashTo := todayEnd.Add(-time.Nanosecond)

	// ── Goroutines para paralelizar las consultas ─────────────────────────────
	type salesResult struct {
		totals repository.SalesTotals
		err    error
	}
	type cashResult struct {
		totals repository.CashbookTotals
		err    error
	}
	type lowStockResult struct {
		count int
		err   error
	}
	type topResult struct {
		products []dto.TopProductDTO
		err      error
	}

	todayCh := make(chan salesResult, 1)
	monthCh := make(chan salesResult, 1)
	cashCh := make(chan cashResult, 1)
	lowCh := make(chan lowStockResult, 1)
	topCh := make(chan topResult, 1)

	go func() {
		t, err := uc.orders.SalesBetween(ctx, todayStart, todayEnd)
		todayCh <- salesResult{t, err}
	}()
	go func() {
		t, err := uc.orders.SalesBetween(ctx, monthStart, todayEnd)
		monthCh <- salesResult{t, err}
	}()
	go func() {
		t, err := uc.cashbook.Totals(ctx, repository.CashbookFilter{From: &monthStart, To: &cashTo})
		cashCh <- cashResult{t, err}
	}()
	go func() {
		items, err := uc.replenishment.LowStock(ctx)
		lowCh <- lowStockResult{len(items), err}
	}()
	go func() {
		p, err := uc.topProducts(ctx)
		topCh <- topResult{p, err}
	}()

	today := <-todayCh
	month := <-monthCh
	cash := <-cashCh
	low := <-lowCh
	top := <-topCh

	if today.err != nil {
		return nil, fmt.Errorf("dashboard: ventas de hoy: %w", today.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("dashboard: ventas del mes: %w", month.err)
	}
	if cash.err != nil {
		return nil, fmt.Errorf("dashboard: caja del mes: %w", cash.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("dashboard: bajo stock: %w", low.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: más vendidos: %w", top.err)
	}

	return &dto.DashboardSummaryDTO{
		TodaySales:    today.totals.Amount,
		TodayOrders:   today.totals.Count,
		MonthlySales:  month.totals.Amount,
		MonthOrders:   month.totals.Count,
		CashIn:        cash.totals.TotalIn,
		CashOut:       cash.totals.TotalOut,
		CashBalance:   cash.totals.TotalIn.Sub(cash.totals.TotalOut),
		LowStockCount: low.count,
		TopProducts:   top.products,
		DateLabel:     now.Format("01/2006"),
	}, nil
}

func (uc *DashboardUseCase) topProducts(ctx context.Context) ([]dto.TopProductDTO, error) {
	list, _, err := uc.products.List(ctx, repository.ProductFilter{
		Statuses: []string{entity.ProductActive, entity.ProductInactive, entity.ProductDiscontinued},
	}, repository.SortSoldDesc, repository.Page{Limit: dashboardTopProducts})
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopProductDTO, 0, len(list))
	for _, p := range list {
		if p.Sold == 0 {
			continue
		}
		price := catalog.DiscountedPrice(p.Price, p.Discount)
		out = append(out, dto.TopProductDTO{
			ProductID: p.ID,
			SKU:       p.SKU,
			Name:      p.Name,
			Sold:      p.Sold,
			Revenue:   price.Mul(decimal.NewFromInt(int64(p.Sold))),
		})
	}
	return out, nil
}
