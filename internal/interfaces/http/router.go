package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/furnistore-api/internal/application/analytics"
	"github.com/jhoicas/furnistore-api/internal/application/auth"
	"github.com/jhoicas/furnistore-api/internal/application/inventory"
	"github.com/jhoicas/furnistore-api/internal/application/payments"
	"github.com/jhoicas/furnistore-api/internal/application/usecase"
	"github.com/jhoicas/furnistore-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	CustomerAuthUC  *auth.CustomerAuthUseCase
	CategoryUC      *usecase.CategoryUseCase
	ProductUC       *usecase.ProductUseCase
	UploadUC        *usecase.UploadUseCase
	SitemapUC       *usecase.SitemapUseCase
	CustomerUC      *usecase.CustomerUseCase
	SupplierUC      *usecase.SupplierUseCase
	WarehouseUC     *usecase.WarehouseUseCase
	Replenishment   *inventory.ReplenishmentUseCase
	OrderUC         *usecase.OrderUseCase
	POSUC           *usecase.POSUseCase
	Payments        *payments.Service
	CashbookUC      *usecase.CashbookUseCase
	PurchaseOrderUC *usecase.PurchaseOrderUseCase
	DashboardUC     *appanalytics.DashboardUseCase
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	authn := AuthMiddleware(deps.JWTSecret)
	staff := RequireStaff()
	customer := CustomerAuthMiddleware(deps.JWTSecret)
	optional := OptionalAuth(deps.JWTSecret)

	app.Get("/sitemap.xml", NewSitemapHandler(deps.SitemapUC).Get)

	api := app.Group("/api")

	// Auth del personal
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", optional, authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/users", authn, RequireRole(entity.RoleAdmin), authHandler.Users)
	authGroup.Get("/me", authn, staff, authHandler.Me)

	// Auth de clientes
	customerAuth := NewCustomerAuthHandler(deps.CustomerAuthUC)
	customerGroup := api.Group("/customer")
	customerGroup.Post("/signup", customerAuth.Signup)
	customerGroup.Post("/signin", customerAuth.Signin)
	customerGroup.Get("/profile", customer, customerAuth.Profile)

	// Categorías: lectura pública, escritura del personal
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories := api.Group("/category")
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", authn, staff, categoryHandler.Create)
	categories.Put("/:id", authn, staff, categoryHandler.Update)
	categories.Delete("/:id", authn, staff, categoryHandler.Delete)

	// Productos: rutas fijas antes de /:id
	productHandler := NewProductHandler(deps.ProductUC)
	products := api.Group("/product")
	products.Get("/", productHandler.List)
	products.Get("/featured", productHandler.Featured)
	products.Get("/new-products", productHandler.NewProducts)
	products.Get("/bestsellers", productHandler.Bestsellers)
	products.Get("/top-rated", productHandler.TopRated)
	products.Get("/slug/:slug", productHandler.GetBySlug)
	products.Post("/by-category", productHandler.ByCategory)
	products.Post("/by-price", productHandler.ByPrice)
	products.Post("/cart-products", productHandler.ByIDs)
	products.Post("/wish-products", productHandler.ByIDs)
	products.Get("/admin/list", authn, staff, productHandler.AdminList)
	products.Get("/admin/:id", authn, staff, productHandler.GetAdmin)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", authn, staff, productHandler.Create)
	products.Put("/:id", authn, staff, productHandler.Update)
	products.Delete("/:id", authn, staff, productHandler.Delete)
	products.Post("/:id/reviews", customer, productHandler.AddReview)
	products.Delete("/:id/reviews/:reviewId", authn, productHandler.DeleteReview)

	api.Post("/upload", authn, staff, NewUploadHandler(deps.UploadUC).Upload)

	// Clientes (back-office)
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers := api.Group("/customers", authn, staff)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Post("/", customerHandler.Create)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Proveedores
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers := api.Group("/suppliers", authn, staff)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Bodega
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC, deps.Replenishment)
	warehouse := api.Group("/warehouse", authn, staff)
	warehouse.Get("/", warehouseHandler.List)
	warehouse.Get("/low-stock", warehouseHandler.LowStock)
	warehouse.Get("/product/:productId", warehouseHandler.GetByProduct)
	warehouse.Get("/product/:productId/movements", warehouseHandler.Movements)
	warehouse.Post("/upsert", warehouseHandler.Upsert)
	warehouse.Post("/adjust", warehouseHandler.Adjust)

	// Pedidos
	orderHandler := NewOrderHandler(deps.OrderUC, deps.POSUC)
	orders := api.Group("/order")
	orders.Post("/checkout", optional, orderHandler.Checkout)
	orders.Get("/", authn, staff, orderHandler.List)
	orders.Get("/my", customer, orderHandler.My)
	orders.Get("/user/:userId", authn, staff, orderHandler.ByUser)
	orders.Get("/:id/receipt.pdf", authn, orderHandler.Receipt)
	orders.Get("/:id", authn, orderHandler.GetByID)
	orders.Put("/:id/status", authn, staff, orderHandler.UpdateStatus)
	orders.Delete("/:id", authn, staff, orderHandler.Delete)

	api.Post("/pos/order", authn, staff, orderHandler.POSCreate)

	// Pagos y libro de caja
	paymentHandler := NewPaymentHandler(deps.Payments)
	paymentsGroup := api.Group("/payments", authn, staff)
	paymentsGroup.Post("/", paymentHandler.Create)
	paymentsGroup.Get("/order/:orderId", paymentHandler.ByOrder)
	paymentsGroup.Get("/purchase-order/:purchaseOrderId", paymentHandler.ByPurchaseOrder)
	paymentsGroup.Put("/:id", paymentHandler.Update)
	paymentsGroup.Delete("/:id", paymentHandler.Delete)

	api.Get("/cashbook", authn, staff, NewCashbookHandler(deps.CashbookUC).List)

	// Órdenes de compra
	poHandler := NewPurchaseOrderHandler(deps.PurchaseOrderUC)
	purchaseOrders := api.Group("/purchase-orders", authn, staff)
	purchaseOrders.Get("/", poHandler.List)
	purchaseOrders.Get("/:id/pdf", poHandler.PDF)
	purchaseOrders.Get("/:id", poHandler.GetByID)
	purchaseOrders.Post("/", poHandler.Create)
	purchaseOrders.Put("/:id/receive", poHandler.Receive)
	purchaseOrders.Put("/:id/cancel", poHandler.Cancel)
	purchaseOrders.Put("/:id", poHandler.Update)
	purchaseOrders.Delete("/:id", poHandler.Delete)

	api.Get("/dashboard/summary", authn, staff, NewDashboardHandler(deps.DashboardUC).GetSummary)
}
