package inventory

import (
	"context"
	"sort"

	"github.com/jhoicas/furnistore-api/internal/application/dto"
	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/jhoicas/furnistore-api/internal/domain/inventory"
	"github.com/jhoicas/furnistore-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ReplenishmentUseCase lista los productos en o bajo su nivel de reorden
// con la cantidad sugerida de pedido al proveedor.
type ReplenishmentUseCase struct {
	products  repository.ProductRepository
	warehouse repository.WarehouseRepository
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(products repository.ProductRepository, warehouse repository.WarehouseRepository) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{products: products, warehouse: warehouse}
}

// LowStock productos vendibles (no descontinuados) con existencia <= reorden,
// ordenados por mayor déficit.
func (uc *ReplenishmentUseCase) LowStock(ctx context.Context) ([]dto.LowStockItemDTO, error) {
	products, _, err := uc.products.List(ctx, repository.ProductFilter{
		Statuses: []string{entity.ProductActive, entity.ProductInactive, entity.ProductDraft},
	}, repository.SortNewest, repository.Page{})
	if err != nil {
		return nil, err
	}
	records, err := uc.warehouse.List(ctx)
	if err != nil {
		return nil, err
	}
	byProduct := make(map[string]*entity.WarehouseRecord, len(records))
	for _, r := range records {
		byProduct[r.ProductID] = r
	}

	items := make([]dto.LowStockItemDTO, 0)
	for _, p := range products {
		stock, location := p.Quantity, ""
		if rec, ok := byProduct[p.ID]; ok {
			stock, location = rec.Quantity, rec.Location
		}
		if !inventory.IsLowStock(p.Reorder, stock) {
			continue
		}
		qty := inventory.SuggestedReorderQty(p.Reorder, stock)
		items = append(items, dto.LowStockItemDTO{
			ProductID:         p.ID,
			SKU:               p.SKU,
			ProductName:       p.Name,
			CurrentStock:      stock,
			ReorderLevel:      p.Reorder,
			SuggestedOrderQty: qty,
			UnitCost:          p.Cost,
			EstimatedCost:     p.Cost.Mul(decimal.NewFromInt(int64(qty))),
			Location:          location,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		di := items[i].ReorderLevel - items[i].CurrentStock
		dj := items[j].ReorderLevel - items[j].CurrentStock
		if di != dj {
			return di > dj
		}
		return items[i].ProductName < items[j].ProductName
	})
	return items, nil
}
