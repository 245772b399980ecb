package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/furnistore-api/internal/domain"
	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/jhoicas/furnistore-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepository)(nil)

// ProductRepository productos en memoria.
type ProductRepository struct{ s *Store }

// NewProductRepository construye el repositorio.
func NewProductRepository(s *Store) *ProductRepository { return &ProductRepository{s: s} }

func (r *ProductRepository) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[p.ID]; ok {
		return domain.ErrDuplicate
	}
	for _, other := range r.s.products {
		if other.SKU == p.SKU || other.Slug == p.Slug {
			return domain.ErrDuplicate
		}
	}
	r.s.products[p.ID] = cloneProduct(*p)
	return nil
}

func (r *ProductRepository) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	out := cloneProduct(p)
	return &out, nil
}

func (r *ProductRepository) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	return r.findOne(func(p entity.Product) bool { return p.SKU == sku }), nil
}

func (r *ProductRepository) GetBySlug(_ context.Context, slug string) (*entity.Product, error) {
	return r.findOne(func(p entity.Product) bool { return p.Slug == slug }), nil
}

func (r *ProductRepository) findOne(match func(entity.Product) bool) *entity.Product {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.products {
		if match(p) {
			out := cloneProduct(p)
			return &out
		}
	}
	return nil
}

func (r *ProductRepository) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, other := range r.s.products {
		if id != p.ID && (other.SKU == p.SKU || other.Slug == p.Slug) {
			return domain.ErrDuplicate
		}
	}
	r.s.products[p.ID] = cloneProduct(*p)
	return nil
}

func (r *ProductRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.products, id)
	return nil
}

func (r *ProductRepository) List(_ context.Context, f repository.ProductFilter, sortBy string, page repository.Page) ([]*entity.Product, int64, error) {
	r.s.mu.RLock()
	matched := make([]entity.Product, 0)
	for _, p := range r.s.products {
		if matchProduct(p, f) {
			matched = append(matched, cloneProduct(p))
		}
	}
	r.s.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool { return lessProduct(matched[i], matched[j], sortBy) })

	total := int64(len(matched))
	out := make([]*entity.Product, 0)
	for _, p := range window(matched, page.Limit, page.Offset) {
		p := p
		out = append(out, &p)
	}
	return out, total, nil
}

func matchProduct(p entity.Product, f repository.ProductFilter) bool {
	if f.Search != "" && !anyContainsFold(f.Search, p.Name, p.Description, p.SKU) {
		return false
	}
	if f.CategoryID != "" && p.CategoryID != f.CategoryID {
		return false
	}
	if len(f.Statuses) > 0 && !inSet(p.Status, f.Statuses) {
		return false
	}
	if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
		return false
	}
	if f.Featured != nil && p.IsFeatured != *f.Featured {
		return false
	}
	if f.Recommended != nil && p.IsRecommended != *f.Recommended {
		return false
	}
	if f.Bestseller != nil && p.IsBestseller != *f.Bestseller {
		return false
	}
	if f.CreatedAfter != nil && p.CreatedAt.Before(*f.CreatedAfter) {
		return false
	}
	if f.IDs != nil && !inSet(p.ID, f.IDs) {
		return false
	}
	return true
}

func lessProduct(a, b entity.Product, sortBy string) bool {
	switch sortBy {
	case repository.SortOldest:
		return a.CreatedAt.Before(b.CreatedAt)
	case repository.SortPopular, repository.SortSoldDesc:
		return a.Sold > b.Sold
	case repository.SortPriceAsc:
		return a.Price.LessThan(b.Price)
	case repository.SortPriceDesc:
		return a.Price.GreaterThan(b.Price)
	case repository.SortRating:
		if a.RatingAverage != b.RatingAverage {
			return a.RatingAverage > b.RatingAverage
		}
		return len(a.Reviews) > len(b.Reviews)
	default:
		return a.CreatedAt.After(b.CreatedAt)
	}
}

func (r *ProductRepository) CountByCategory(_ context.Context, categoryID string) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var n int64
	for _, p := range r.s.products {
		if p.CategoryID == categoryID || p.SubCategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (r *ProductRepository) IncrementViewCount(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.ViewCount++
	r.s.products[id] = p
	return nil
}

func (r *ProductRepository) AdjustCounters(_ context.Context, id string, soldDelta, qtyDelta int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Sold += soldDelta
	p.Quantity += qtyDelta
	r.s.products[id] = p
	return nil
}
