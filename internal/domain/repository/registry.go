package repository

// Registry agrupa los repositorios de un mismo backend de almacenamiento.
type Registry struct {
	Users          UserRepository
	Customers      CustomerRepository
	Categories     CategoryRepository
	Products       ProductRepository
	Warehouse      WarehouseRepository
	Movements      StockMovementRepository
	Orders         OrderRepository
	Payments       PaymentRepository
	Cashbook       CashbookRepository
	Suppliers      SupplierRepository
	PurchaseOrders PurchaseOrderRepository
}
