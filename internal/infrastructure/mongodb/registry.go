package mongodb

import (
	"github.com/jhoicas/furnistore-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/mongo"
)

// NewRegistry devuelve todos los repositorios sobre db.
func NewRegistry(db *mongo.Database) repository.Registry {
	return repository.Registry{
		Users:          NewUserRepository(db),
		Customers:      NewCustomerRepository(db),
		Categories:     NewCategoryRepository(db),
		Products:       NewProductRepository(db),
		Warehouse:      NewWarehouseRepository(db),
		Movements:      NewStockMovementRepository(db),
		Orders:         NewOrderRepository(db),
		Payments:       NewPaymentRepository(db),
		Cashbook:       NewCashbookRepository(db),
		Suppliers:      NewSupplierRepository(db),
		PurchaseOrders: NewPurchaseOrderRepository(db),
	}
}
