package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/furnistore-api/internal/domain"
	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/jhoicas/furnistore-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepository)(nil)

// CustomerRepository clientes en memoria.
type CustomerRepository struct{ s *Store }

// NewCustomerRepository construye el repositorio.
func NewCustomerRepository(s *Store) *CustomerRepository { return &CustomerRepository{s: s} }

func (r *CustomerRepository) Create(_ context.Context, c *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.customers[c.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.customers[c.ID] = *c
	return nil
}

func (r *CustomerRepository) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.customers[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// GetByEmail prioriza el cliente registrado si hay varios con el mismo email.
func (r *CustomerRepository) GetByEmail(_ context.Context, email string) (*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var found *entity.Customer
	for _, c := range r.s.customers {
		if strings.EqualFold(c.Email, email) {
			c := c
			if found == nil || (c.IsRegistered && !found.IsRegistered) {
				found = &c
			}
		}
	}
	return found, nil
}

func (r *CustomerRepository) Update(_ context.Context, c *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.customers[c.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.customers[c.ID] = *c
	return nil
}

func (r *CustomerRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.customers[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.customers, id)
	return nil
}

func (r *CustomerRepository) List(_ context.Context, search string, page repository.Page) ([]*entity.Customer, int64, error) {
	r.s.mu.RLock()
	items := make([]entity.Customer, 0)
	for _, c := range r.s.customers {
		if search == "" || anyContainsFold(search, c.FullName, c.PhoneNumber, c.Email) {
			items = append(items, c)
		}
	}
	r.s.mu.RUnlock()
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })

	out := make([]*entity.Customer, 0)
	for _, c := range window(items, page.Limit, page.Offset) {
		c := c
		out = append(out, &c)
	}
	return out, int64(len(items)), nil
}

func (r *CustomerRepository) FindIDsByName(_ context.Context, search string) ([]string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	ids := []string{}
	for _, c := range r.s.customers {
		if containsFold(c.FullName, search) {
			ids = append(ids, c.ID)
		}
	}
	return ids, nil
}

func (r *CustomerRepository) GetByIDs(_ context.Context, ids []string) ([]*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Customer, 0, len(ids))
	for _, id := range ids {
		if c, ok := r.s.customers[id]; ok {
			out = append(out, &c)
		}
	}
	return out, nil
}
