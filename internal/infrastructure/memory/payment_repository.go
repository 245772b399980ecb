package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/furnistore-api/internal/domain"
	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/jhoicas/furnistore-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var (
	_ repository.PaymentRepository  = (*PaymentRepository)(nil)
	_ repository.CashbookRepository = (*CashbookRepository)(nil)
)

// PaymentRepository pagos en memoria.
type PaymentRepository struct{ s *Store }

// NewPaymentRepository construye el repositorio.
func NewPaymentRepository(s *Store) *PaymentRepository { return &PaymentRepository{s: s} }

func (r *PaymentRepository) Create(_ context.Context, p *entity.Payment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, other := range r.s.payments {
		if other.ID == p.ID || (p.IdempotencyKey != "" && other.IdempotencyKey == p.IdempotencyKey) {
			return domain.ErrDuplicate
		}
	}
	r.s.payments[p.ID] = *p
	return nil
}

func (r *PaymentRepository) GetByID(_ context.Context, id string) (*entity.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.payments[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *PaymentRepository) GetByIdempotencyKey(_ context.Context, key string) (*entity.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.payments {
		if p.IdempotencyKey == key {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

func (r *PaymentRepository) Update(_ context.Context, p *entity.Payment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.payments[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.payments[p.ID] = *p
	return nil
}

func (r *PaymentRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.payments[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.payments, id)
	return nil
}

func matchTarget(p entity.Payment, t repository.PaymentTarget) bool {
	if t.OrderID != "" {
		return p.OrderID == t.OrderID
	}
	return t.PurchaseOrderID != "" && p.PurchaseOrderID == t.PurchaseOrderID
}

func (r *PaymentRepository) ListByTarget(_ context.Context, t repository.PaymentTarget, search string, page repository.Page) ([]*entity.Payment, int64, error) {
	r.s.mu.RLock()
	items := make([]entity.Payment, 0)
	for _, p := range r.s.payments {
		if matchTarget(p, t) && (search == "" || anyContainsFold(search, p.Note, p.Method)) {
			items = append(items, p)
		}
	}
	r.s.mu.RUnlock()
	sort.Slice(items, func(i, j int) bool {
		if !items[i].PaymentDate.Equal(items[j].PaymentDate) {
			return items[i].PaymentDate.After(items[j].PaymentDate)
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	out := make([]*entity.Payment, 0)
	for _, p := range window(items, page.Limit, page.Offset) {
		p := p
		out = append(out, &p)
	}
	return out, int64(len(items)), nil
}

func (r *PaymentRepository) SumByTarget(_ context.Context, t repository.PaymentTarget, excludeID string) (decimal.Decimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sum := decimal.Zero
	for _, p := range r.s.payments {
		if p.ID != excludeID && matchTarget(p, t) {
			sum = sum.Add(p.Amount)
		}
	}
	return sum, nil
}

func (r *PaymentRepository) CountByTarget(_ context.Context, t repository.PaymentTarget) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var n int64
	for _, p := range r.s.payments {
		if matchTarget(p, t) {
			n++
		}
	}
	return n, nil
}

// CashbookRepository libro de caja en memoria, indexado por pago.
type CashbookRepository struct{ s *Store }

// NewCashbookRepository construye el repositorio.
func NewCashbookRepository(s *Store) *CashbookRepository { return &CashbookRepository{s: s} }

func (r *CashbookRepository) Create(_ context.Context, e *entity.CashbookEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.cashbook[e.PaymentID]; ok {
		return domain.ErrDuplicate
	}
	r.s.cashbook[e.PaymentID] = *e
	return nil
}

func (r *CashbookRepository) GetByPaymentID(_ context.Context, paymentID string) (*entity.CashbookEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	e, ok := r.s.cashbook[paymentID]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *CashbookRepository) Update(_ context.Context, e *entity.CashbookEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.cashbook[e.PaymentID]; !ok {
		return domain.ErrNotFound
	}
	r.s.cashbook[e.PaymentID] = *e
	return nil
}

func (r *CashbookRepository) DeleteByPaymentID(_ context.Context, paymentID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.cashbook, paymentID)
	return nil
}

func (r *CashbookRepository) SumByTarget(_ context.Context, t repository.PaymentTarget) (decimal.Decimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sum := decimal.Zero
	for _, e := range r.s.cashbook {
		if matchTarget(entity.Payment{OrderID: e.OrderID, PurchaseOrderID: e.PurchaseOrderID}, t) {
			sum = sum.Add(e.Amount)
		}
	}
	return sum, nil
}

func (r *CashbookRepository) filtered(f repository.CashbookFilter) []entity.CashbookEntry {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	items := make([]entity.CashbookEntry, 0)
	for _, e := range r.s.cashbook {
		if f.From != nil && e.PaymentDate.Before(*f.From) {
			continue
		}
		if f.To != nil && e.PaymentDate.After(*f.To) {
			continue
		}
		if f.Direction != "" && e.Direction != f.Direction {
			continue
		}
		if f.Search != "" && !anyContainsFold(f.Search, e.Note, e.PaymentMethod) {
			continue
		}
		items = append(items, e)
	}
	return items
}

func (r *CashbookRepository) List(_ context.Context, f repository.CashbookFilter, page repository.Page) ([]*entity.CashbookEntry, int64, error) {
	items := r.filtered(f)
	sort.Slice(items, func(i, j int) bool {
		if !items[i].PaymentDate.Equal(items[j].PaymentDate) {
			return items[i].PaymentDate.After(items[j].PaymentDate)
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	out := make([]*entity.CashbookEntry, 0)
	for _, e := range window(items, page.Limit, page.Offset) {
		e := e
		out = append(out, &e)
	}
	return out, int64(len(items)), nil
}

func (r *CashbookRepository) Totals(_ context.Context, f repository.CashbookFilter) (repository.CashbookTotals, error) {
	totals := repository.CashbookTotals{TotalIn: decimal.Zero, TotalOut: decimal.Zero}
	for _, e := range r.filtered(f) {
		if e.Direction == entity.DirectionIn {
			totals.TotalIn = totals.TotalIn.Add(e.Amount)
		} else {
			totals.TotalOut = totals.TotalOut.Add(e.Amount)
		}
	}
	return totals, nil
}
