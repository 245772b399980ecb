package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/jhoicas/furnistore-api/internal/domain/repository"
)

var (
	_ repository.WarehouseRepository     = (*WarehouseRepository)(nil)
	_ repository.StockMovementRepository = (*StockMovementRepository)(nil)
)

// WarehouseRepository registros de bodega en memoria, indexados por producto.
type WarehouseRepository struct{ s *Store }

// NewWarehouseRepository construye el repositorio.
func NewWarehouseRepository(s *Store) *WarehouseRepository { return &WarehouseRepository{s: s} }

func (r *WarehouseRepository) GetByProduct(_ context.Context, productID string) (*entity.WarehouseRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rec, ok := r.s.warehouse[productID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (r *WarehouseRepository) List(_ context.Context) ([]*entity.WarehouseRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.WarehouseRecord, 0, len(r.s.warehouse))
	for _, rec := range r.s.warehouse {
		rec := rec
		out = append(out, &rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastUpdated.After(out[j].LastUpdated) })
	return out, nil
}

func (r *WarehouseRepository) Upsert(_ context.Context, rec *entity.WarehouseRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if existing, ok := r.s.warehouse[rec.ProductID]; ok {
		rec.ID = existing.ID
		rec.CreatedAt = existing.CreatedAt
	}
	r.s.warehouse[rec.ProductID] = *rec
	return nil
}

func (r *WarehouseRepository) Adjust(_ context.Context, productID string, delta int) (*entity.WarehouseRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	now := time.Now()
	rec, ok := r.s.warehouse[productID]
	if !ok {
		rec = entity.WarehouseRecord{ID: uuid.NewString(), ProductID: productID, CreatedAt: now}
	}
	rec.Quantity += delta
	rec.LastUpdated = now
	rec.UpdatedAt = now
	r.s.warehouse[productID] = rec
	return &rec, nil
}

func (r *WarehouseRepository) DeleteByProduct(_ context.Context, productID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.warehouse, productID)
	return nil
}

// StockMovementRepository historial de existencias en memoria.
type StockMovementRepository struct{ s *Store }

// NewStockMovementRepository construye el repositorio.
func NewStockMovementRepository(s *Store) *StockMovementRepository {
	return &StockMovementRepository{s: s}
}

func (r *StockMovementRepository) Create(_ context.Context, m *entity.StockMovement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.movements = append(r.s.movements, *m)
	return nil
}

func (r *StockMovementRepository) ListByProduct(_ context.Context, productID string, page repository.Page) ([]*entity.StockMovement, int64, error) {
	r.s.mu.RLock()
	items := make([]entity.StockMovement, 0)
	for i := len(r.s.movements) - 1; i >= 0; i-- {
		if r.s.movements[i].ProductID == productID {
			items = append(items, r.s.movements[i])
		}
	}
	r.s.mu.RUnlock()

	out := make([]*entity.StockMovement, 0)
	for _, m := range window(items, page.Limit, page.Offset) {
		m := m
		out = append(out, &m)
	}
	return out, int64(len(items)), nil
}
