package memory

import "github.com/jhoicas/furnistore-api/internal/domain/repository"

// NewRegistry devuelve todos los repositorios respaldados por s.
func NewRegistry(s *Store) repository.Registry {
	return repository.Registry{
		Users:          NewUserRepository(s),
		Customers:      NewCustomerRepository(s),
		Categories:     NewCategoryRepository(s),
		Products:       NewProductRepository(s),
		Warehouse:      NewWarehouseRepository(s),
		Movements:      NewStockMovementRepository(s),
		Orders:         NewOrderRepository(s),
		Payments:       NewPaymentRepository(s),
		Cashbook:       NewCashbookRepository(s),
		Suppliers:      NewSupplierRepository(s),
		PurchaseOrders: NewPurchaseOrderRepository(s),
	}
}
