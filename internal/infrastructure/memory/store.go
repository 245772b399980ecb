// Package memory implementa los repositorios en memoria. Se usa en tests y con
// DB_DRIVER=memory para desarrollo sin MongoDB.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/jhoicas/furnistore-api/internal/domain/entity"
)

// Store guarda copias de las entidades protegidas por un RWMutex.
type Store struct {
	mu             sync.RWMutex
	txMu           sync.Mutex
	users          map[string]entity.User
	customers      map[string]entity.Customer
	categories     map[string]entity.Category
	products       map[string]entity.Product
	warehouse      map[string]entity.WarehouseRecord // por product_id
	movements      []entity.StockMovement
	orders         map[string]entity.Order
	payments       map[string]entity.Payment
	cashbook       map[string]entity.CashbookEntry // por payment_id
	suppliers      map[string]entity.Supplier
	purchaseOrders map[string]entity.PurchaseOrder
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		users:          map[string]entity.User{},
		customers:      map[string]entity.Customer{},
		categories:     map[string]entity.Category{},
		products:       map[string]entity.Product{},
		warehouse:      map[string]entity.WarehouseRecord{},
		orders:         map[string]entity.Order{},
		payments:       map[string]entity.Payment{},
		cashbook:       map[string]entity.CashbookEntry{},
		suppliers:      map[string]entity.Supplier{},
		purchaseOrders: map[string]entity.PurchaseOrder{},
	}
}

type snapshot struct {
	users          map[string]entity.User
	customers      map[string]entity.Customer
	categories     map[string]entity.Category
	products       map[string]entity.Product
	warehouse      map[string]entity.WarehouseRecord
	movements      []entity.StockMovement
	orders         map[string]entity.Order
	payments       map[string]entity.Payment
	cashbook       map[string]entity.CashbookEntry
	suppliers      map[string]entity.Supplier
	purchaseOrders map[string]entity.PurchaseOrder
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	products := make(map[string]entity.Product, len(s.products))
	for k, v := range s.products {
		products[k] = cloneProduct(v)
	}
	orders := make(map[string]entity.Order, len(s.orders))
	for k, v := range s.orders {
		orders[k] = cloneOrder(v)
	}
	pos := make(map[string]entity.PurchaseOrder, len(s.purchaseOrders))
	for k, v := range s.purchaseOrders {
		pos[k] = clonePurchaseOrder(v)
	}
	return snapshot{
		users:          copyMap(s.users),
		customers:      copyMap(s.customers),
		categories:     copyMap(s.categories),
		products:       products,
		warehouse:      copyMap(s.warehouse),
		movements:      append([]entity.StockMovement(nil), s.movements...),
		orders:         orders,
		payments:       copyMap(s.payments),
		cashbook:       copyMap(s.cashbook),
		suppliers:      copyMap(s.suppliers),
		purchaseOrders: pos,
	}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = snap.users
	s.customers = snap.customers
	s.categories = snap.categories
	s.products = snap.products
	s.warehouse = snap.warehouse
	s.movements = snap.movements
	s.orders = snap.orders
	s.payments = snap.payments
	s.cashbook = snap.cashbook
	s.suppliers = snap.suppliers
	s.purchaseOrders = snap.purchaseOrders
}

type txKey struct{}

// TxRunner serializa las transacciones y restaura el estado previo si fn falla.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre el almacén.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// Run ejecuta fn de forma atómica. Una llamada anidada se une a la transacción en curso.
func (r *TxRunner) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}
	r.s.txMu.Lock()
	defer r.s.txMu.Unlock()

	snap := r.s.snapshot()
	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneProduct(p entity.Product) entity.Product {
	p.Images = append([]string(nil), p.Images...)
	p.Tags = append([]string(nil), p.Tags...)
	p.Reviews = append([]entity.Review(nil), p.Reviews...)
	p.Furniture.Colors = append([]entity.ColorStock(nil), p.Furniture.Colors...)
	p.Furniture.Style = append([]string(nil), p.Furniture.Style...)
	p.Furniture.Features = append([]string(nil), p.Furniture.Features...)
	p.Furniture.Care = append([]string(nil), p.Furniture.Care...)
	p.Furniture.Material.Secondary = append([]string(nil), p.Furniture.Material.Secondary...)
	p.SEO.Keywords = append([]string(nil), p.SEO.Keywords...)
	return p
}

func cloneOrder(o entity.Order) entity.Order {
	o.Details = append([]entity.OrderDetail(nil), o.Details...)
	return o
}

func clonePurchaseOrder(po entity.PurchaseOrder) entity.PurchaseOrder {
	po.Details = append([]entity.PurchaseOrderDetail(nil), po.Details...)
	return po
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func anyContainsFold(sub string, fields ...string) bool {
	for _, f := range fields {
		if containsFold(f, sub) {
			return true
		}
	}
	return false
}

// window aplica limit/offset sobre un slice ya ordenado.
func window[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}

func inSet(id string, ids []string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
