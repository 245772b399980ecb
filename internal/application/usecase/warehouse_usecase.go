package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/furnistore-api/internal/application/dto"
	"github.com/jhoicas/furnistore-api/internal/application/inventory"
	"github.com/jhoicas/furnistore-api/internal/application/ports"
	"github.com/jhoicas/furnistore-api/internal/domain"
	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/jhoicas/furnistore-api/internal/domain/repository"
)

// WarehouseUseCase consulta y ajuste de existencias por producto.
type WarehouseUseCase struct {
	tx        ports.TxRunner
	repo      repository.WarehouseRepository
	products  repository.ProductRepository
	movements repository.StockMovementRepository
	stock     *inventory.StockService
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(
	tx ports.TxRunner,
	repo repository.WarehouseRepository,
	products repository.ProductRepository,
	movements repository.StockMovementRepository,
	stock *inventory.StockService,
) *WarehouseUseCase {
	return &WarehouseUseCase{tx: tx, repo: repo, products: products, movements: movements, stock: stock}
}

// List todos los registros de bodega con el resumen de su producto.
func (uc *WarehouseUseCase) List(ctx context.Context) ([]dto.WarehouseRecordResponse, error) {
	records, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ProductID)
	}
	byID := map[string]*entity.Product{}
	if len(ids) > 0 {
		products, _, err := uc.products.List(ctx, repository.ProductFilter{IDs: ids}, repository.SortNewest, repository.Page{})
		if err != nil {
			return nil, err
		}
		for _, p := range products {
			byID[p.ID] = p
		}
	}
	out := make([]dto.WarehouseRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, toWarehouseRecordResponse(r, byID[r.ProductID]))
	}
	return out, nil
}

// GetByProduct registro de bodega de un producto.
func (uc *WarehouseUseCase) GetByProduct(ctx context.Context, productID string) (*dto.WarehouseRecordResponse, error) {
	rec, err := uc.repo.GetByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	p, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	out := toWarehouseRecordResponse(rec, p)
	return &out, nil
}

// Upsert fija ubicación y, si llega, la cantidad; la diferencia queda como ADJUSTMENT.
func (uc *WarehouseUseCase) Upsert(ctx context.Context, userID string, in dto.WarehouseUpsertRequest) (*dto.WarehouseRecordResponse, error) {
	in.ProductID = strings.TrimSpace(in.ProductID)
	if in.ProductID == "" {
		return nil, domain.Invalid("product", "es obligatorio")
	}
	var out dto.WarehouseRecordResponse
	err := uc.tx.Run(ctx, func(ctx context.Context) error {
		p, err := uc.products.GetByID(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		rec, err := uc.stock.Set(ctx, p.ID, in.Quantity, strings.TrimSpace(in.Location), "ajuste de bodega", userID)
		if err != nil {
			return err
		}
		if in.Quantity != nil {
			p.Quantity = rec.Quantity
		}
		out = toWarehouseRecordResponse(rec, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Adjust suma delta a la existencia; no puede quedar negativa.
func (uc *WarehouseUseCase) Adjust(ctx context.Context, userID string, in dto.WarehouseAdjustRequest) (*dto.WarehouseRecordResponse, error) {
	in.ProductID = strings.TrimSpace(in.ProductID)
	if in.ProductID == "" {
		return nil, domain.Invalid("product", "es obligatorio")
	}
	var out dto.WarehouseRecordResponse
	err := uc.tx.Run(ctx, func(ctx context.Context) error {
		p, err := uc.products.GetByID(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		rec, err := uc.stock.Adjust(ctx, p.ID, in.Delta, strings.TrimSpace(in.Notes), userID)
		if err != nil {
			return err
		}
		p.Quantity += in.Delta
		out = toWarehouseRecordResponse(rec, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Movements historial de existencias de un producto, más reciente primero.
func (uc *WarehouseUseCase) Movements(ctx context.Context, productID string, page dto.PageRequest) (*dto.StockMovementListResponse, error) {
	page.Normalize(20, 100)
	list, total, err := uc.movements.ListByProduct(ctx, productID, repository.Page{Limit: page.Limit, Offset: page.Offset()})
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockMovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.StockMovementResponse{
			ID:        m.ID,
			ProductID: m.ProductID,
			Type:      m.Type,
			Quantity:  m.Quantity,
			Balance:   m.Balance,
			Reference: m.Reference,
			Notes:     m.Notes,
			CreatedBy: m.CreatedBy,
			CreatedAt: m.CreatedAt,
		})
	}
	return &dto.StockMovementListResponse{Items: items, Pagination: dto.NewPagination(total, page.Page, page.Limit)}, nil
}

func toWarehouseRecordResponse(r *entity.WarehouseRecord, p *entity.Product) dto.WarehouseRecordResponse {
	out := dto.WarehouseRecordResponse{
		ID:          r.ID,
		ProductID:   r.ProductID,
		Quantity:    r.Quantity,
		Location:    r.Location,
		LastUpdated: r.LastUpdated,
	}
	if p != nil {
		out.Product = toProductSummary(p)
	}
	return out
}

func toProductSummary(p *entity.Product) *dto.ProductSummary {
	s := &dto.ProductSummary{ID: p.ID, Name: p.Name, SKU: p.SKU, Price: p.Price, Quantity: p.Quantity}
	if len(p.Images) > 0 {
		s.Image = p.Images[0]
	}
	return s
}
