package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/furnistore-api/internal/domain"
	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/jhoicas/furnistore-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepository)(nil)

// CategoryRepository categorías en memoria.
type CategoryRepository struct{ s *Store }

// NewCategoryRepository construye el repositorio.
func NewCategoryRepository(s *Store) *CategoryRepository { return &CategoryRepository{s: s} }

func (r *CategoryRepository) Create(_ context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[c.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.categories[c.ID] = *c
	return nil
}

func (r *CategoryRepository) GetByID(_ context.Context, id string) (*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CategoryRepository) GetByName(_ context.Context, name string) (*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.categories {
		if strings.EqualFold(c.Name, name) {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (r *CategoryRepository) Update(_ context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[c.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.categories[c.ID] = *c
	return nil
}

func (r *CategoryRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.categories, id)
	return nil
}

func (r *CategoryRepository) List(_ context.Context, search string, page repository.Page) ([]*entity.Category, int64, error) {
	r.s.mu.RLock()
	items := make([]entity.Category, 0)
	for _, c := range r.s.categories {
		if search == "" || containsFold(c.Name, search) {
			items = append(items, c)
		}
	}
	r.s.mu.RUnlock()
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })

	out := make([]*entity.Category, 0)
	for _, c := range window(items, page.Limit, page.Offset) {
		c := c
		out = append(out, &c)
	}
	return out, int64(len(items)), nil
}
