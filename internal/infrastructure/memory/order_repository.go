package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/furnistore-api/internal/domain"
	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/jhoicas/furnistore-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var (
	_ repository.OrderRepository         = (*OrderRepository)(nil)
	_ repository.PurchaseOrderRepository = (*PurchaseOrderRepository)(nil)
)

// OrderRepository pedidos en memoria.
type OrderRepository struct{ s *Store }

// NewOrderRepository construye el repositorio.
func NewOrderRepository(s *Store) *OrderRepository { return &OrderRepository{s: s} }

func (r *OrderRepository) Create(_ context.Context, o *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, other := range r.s.orders {
		if other.ID == o.ID || other.Code == o.Code {
			return domain.ErrDuplicate
		}
	}
	r.s.orders[o.ID] = cloneOrder(*o)
	return nil
}

func (r *OrderRepository) GetByID(_ context.Context, id string) (*entity.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	out := cloneOrder(o)
	return &out, nil
}

func (r *OrderRepository) Update(_ context.Context, o *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.orders[o.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.orders[o.ID] = cloneOrder(*o)
	return nil
}

func (r *OrderRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.orders[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.orders, id)
	return nil
}

func (r *OrderRepository) List(_ context.Context, f repository.OrderFilter, page repository.Page) ([]*entity.Order, int64, error) {
	r.s.mu.RLock()
	items := make([]entity.Order, 0)
	for _, o := range r.s.orders {
		if matchOrder(o, f) {
			items = append(items, cloneOrder(o))
		}
	}
	r.s.mu.RUnlock()
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })

	out := make([]*entity.Order, 0)
	for _, o := range window(items, page.Limit, page.Offset) {
		o := o
		out = append(out, &o)
	}
	return out, int64(len(items)), nil
}

func matchOrder(o entity.Order, f repository.OrderFilter) bool {
	if f.UserID != "" && o.UserID != f.UserID {
		return false
	}
	if f.CustomerID != "" && o.CustomerID != f.CustomerID {
		return false
	}
	if f.Status != "" && o.Status != f.Status {
		return false
	}
	if f.Search != "" {
		if !anyContainsFold(f.Search, o.TransactionID, o.Code) && !inSet(o.CustomerID, f.CustomerIDs) {
			return false
		}
	}
	return true
}

func (r *OrderRepository) LastCode(_ context.Context, prefix string) (string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	last := ""
	for _, o := range r.s.orders {
		if strings.HasPrefix(o.Code, prefix) && o.Code > last {
			last = o.Code
		}
	}
	return last, nil
}

func (r *OrderRepository) SalesBetween(_ context.Context, from, to time.Time) (repository.SalesTotals, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	totals := repository.SalesTotals{Amount: decimal.Zero}
	for _, o := range r.s.orders {
		if o.Status == entity.OrderCancelled || o.CreatedAt.Before(from) || !o.CreatedAt.Before(to) {
			continue
		}
		totals.Count++
		totals.Amount = totals.Amount.Add(o.Amount)
	}
	return totals, nil
}

// PurchaseOrderRepository órdenes de compra en memoria.
type PurchaseOrderRepository struct{ s *Store }

// NewPurchaseOrderRepository construye el repositorio.
func NewPurchaseOrderRepository(s *Store) *PurchaseOrderRepository {
	return &PurchaseOrderRepository{s: s}
}

func (r *PurchaseOrderRepository) Create(_ context.Context, po *entity.PurchaseOrder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, other := range r.s.purchaseOrders {
		if other.ID == po.ID || other.Code == po.Code {
			return domain.ErrDuplicate
		}
	}
	r.s.purchaseOrders[po.ID] = clonePurchaseOrder(*po)
	return nil
}

func (r *PurchaseOrderRepository) GetByID(_ context.Context, id string) (*entity.PurchaseOrder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	po, ok := r.s.purchaseOrders[id]
	if !ok {
		return nil, nil
	}
	out := clonePurchaseOrder(po)
	return &out, nil
}

func (r *PurchaseOrderRepository) Update(_ context.Context, po *entity.PurchaseOrder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.purchaseOrders[po.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.purchaseOrders[po.ID] = clonePurchaseOrder(*po)
	return nil
}

func (r *PurchaseOrderRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.purchaseOrders[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.purchaseOrders, id)
	return nil
}

func (r *PurchaseOrderRepository) List(_ context.Context, supplierIDs []string, page repository.Page) ([]*entity.PurchaseOrder, int64, error) {
	r.s.mu.RLock()
	items := make([]entity.PurchaseOrder, 0)
	for _, po := range r.s.purchaseOrders {
		if supplierIDs == nil || inSet(po.SupplierID, supplierIDs) {
			items = append(items, clonePurchaseOrder(po))
		}
	}
	r.s.mu.RUnlock()
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })

	out := make([]*entity.PurchaseOrder, 0)
	for _, po := range window(items, page.Limit, page.Offset) {
		po := po
		out = append(out, &po)
	}
	return out, int64(len(items)), nil
}

func (r *PurchaseOrderRepository) CountBySupplier(_ context.Context, supplierID string) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var n int64
	for _, po := range r.s.purchaseOrders {
		if po.SupplierID == supplierID {
			n++
		}
	}
	return n, nil
}

func (r *PurchaseOrderRepository) LastCode(_ context.Context, prefix string) (string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	last := ""
	for _, po := range r.s.purchaseOrders {
		if strings.HasPrefix(po.Code, prefix) && po.Code > last {
			last = po.Code
		}
	}
	return last, nil
}
