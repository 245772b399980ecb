package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/furnistore-api/internal/domain"
	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/jhoicas/furnistore-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepository)(nil)

// SupplierRepository proveedores en memoria.
type SupplierRepository struct{ s *Store }

// NewSupplierRepository construye el repositorio.
func NewSupplierRepository(s *Store) *SupplierRepository { return &SupplierRepository{s: s} }

func (r *SupplierRepository) Create(_ context.Context, sup *entity.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.suppliers[sup.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.suppliers[sup.ID] = *sup
	return nil
}

func (r *SupplierRepository) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sup, ok := r.s.suppliers[id]
	if !ok {
		return nil, nil
	}
	return &sup, nil
}

func (r *SupplierRepository) Update(_ context.Context, sup *entity.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.suppliers[sup.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.suppliers[sup.ID] = *sup
	return nil
}

func (r *SupplierRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.suppliers[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.suppliers, id)
	return nil
}

func (r *SupplierRepository) List(_ context.Context, search string, page repository.Page) ([]*entity.Supplier, int64, error) {
	r.s.mu.RLock()
	items := make([]entity.Supplier, 0)
	for _, sup := range r.s.suppliers {
		if search == "" || anyContainsFold(search, sup.Name, sup.Phone, sup.Email, sup.Address, sup.TaxCode) {
			items = append(items, sup)
		}
	}
	r.s.mu.RUnlock()
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })

	out := make([]*entity.Supplier, 0)
	for _, sup := range window(items, page.Limit, page.Offset) {
		sup := sup
		out = append(out, &sup)
	}
	return out, int64(len(items)), nil
}

func (r *SupplierRepository) FindIDsByName(_ context.Context, search string) ([]string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	ids := []string{}
	for _, sup := range r.s.suppliers {
		if containsFold(sup.Name, search) {
			ids = append(ids, sup.ID)
		}
	}
	return ids, nil
}

func (r *SupplierRepository) GetByIDs(_ context.Context, ids []string) ([]*entity.Supplier, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Supplier, 0, len(ids))
	for _, id := range ids {
		if sup, ok := r.s.suppliers[id]; ok {
			out = append(out, &sup)
		}
	}
	return out, nil
}
