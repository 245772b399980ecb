package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/jhoicas/furnistore-api/internal/application/dto"
	"github.com/jhoicas/furnistore-api/internal/application/inventory"
	"github.com/jhoicas/furnistore-api/internal/application/payments"
	"github.com/jhoicas/furnistore-api/internal/application/usecase"
	"github.com/jhoicas/furnistore-api/internal/domain"
	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/jhoicas/furnistore-api/internal/domain/repository"
	"github.com/jhoicas/furnistore-api/internal/infrastructure/memory"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type env struct {
	repo       repository.Registry
	categories *usecase.CategoryUseCase
	products   *usecase.ProductUseCase
	orders     *usecase.OrderUseCase
	pos        *usecase.POSUseCase
	purchases  *usecase.PurchaseOrderUseCase
	suppliers  *usecase.SupplierUseCase
	warehouse  *usecase.WarehouseUseCase
	cashbook   *usecase.CashbookUseCase
	payments   *payments.Service
}

func newEnv(t *testing.T) *env {
	t.Helper()
	store := memory.NewStore()
	repo := memory.NewRegistry(store)
	tx := memory.NewTxRunner(store)
	stock := inventory.NewStockService(repo.Warehouse, repo.Products, repo.Movements)
	pay := payments.NewService(tx, repo.Payments, repo.Cashbook, repo.Orders, repo.PurchaseOrders, zerolog.Nop())
	return &env{
		repo:       repo,
		categories: usecase.NewCategoryUseCase(repo.Categories, repo.Products),
		products:   usecase.NewProductUseCase(tx, repo.Products, repo.Categories, repo.Customers, repo.Orders, stock),
		orders:     usecase.NewOrderUseCase(tx, repo.Orders, repo.Products, repo.Customers, stock, pay, nil),
		pos:        usecase.NewPOSUseCase(tx, repo.Orders, repo.Products, repo.Customers, stock, pay),
		purchases:  usecase.NewPurchaseOrderUseCase(tx, repo.PurchaseOrders, repo.Suppliers, repo.Products, stock, pay, nil),
		suppliers:  usecase.NewSupplierUseCase(repo.Suppliers, repo.PurchaseOrders),
		warehouse:  usecase.NewWarehouseUseCase(tx, repo.Warehouse, repo.Products, repo.Movements, stock),
		cashbook:   usecase.NewCashbookUseCase(repo.Cashbook),
		payments:   pay,
	}
}

func intp(i int) *int { return &i }

func (e *env) category(t *testing.T) string {
	t.Helper()
	c, err := e.categories.Create(context.Background(), dto.CategoryRequest{Name: "Sofás"})
	require.NoError(t, err)
	return c.ID
}

func (e *env) product(t *testing.T, categoryID, name string, price int64, qty int) *dto.AdminProductResponse {
	t.Helper()
	p, err := e.products.Create(context.Background(), "staff-1", dto.ProductRequest{
		Name:        name,
		Description: "Mueble de prueba",
		Price:       decimal.NewFromInt(price),
		Quantity:    intp(qty),
		CategoryID:  categoryID,
		Status:      "Active",
	})
	require.NoError(t, err)
	return p
}

func (e *env) stockOf(t *testing.T, productID string) int {
	t.Helper()
	rec, err := e.repo.Warehouse.GetByProduct(context.Background(), productID)
	require.NoError(t, err)
	require.NotNil(t, rec)
	return rec.Quantity
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_GeneraSKUSlugYBodega(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	cat := e.category(t)

	p := e.product(t, cat, "Ghế Sofa Gỗ Sồi", 1000, 7)
	assert.Regexp(t, `^FURN-\d{6}-\d{3}$`, p.SKU)
	assert.Equal(t, "ghe-sofa-go-soi", p.Slug)
	assert.Equal(t, entity.ProductActive, p.Status)
	assert.Equal(t, entity.DefaultReorderLevel, p.Reorder)
	assert.True(t, p.IsNewProduct)
	assert.Equal(t, 7, e.stockOf(t, p.ID))

	// mismo nombre: slug con sufijo
	other := e.product(t, cat, "Ghế Sofa Gỗ Sồi", 1000, 1)
	assert.Equal(t, "ghe-sofa-go-soi-2", other.Slug)

	moves, total, err := e.repo.Movements.ListByProduct(ctx, p.ID, repository.Page{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, entity.MovementTypeAdjust, moves[0].Type)
}

func TestProductCreate_Validaciones(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	cat := e.category(t)
	base := dto.ProductRequest{Name: "Mesa", Description: "d", Price: decimal.NewFromInt(10), Quantity: intp(1), CategoryID: cat, Status: "active"}

	bad := base
	bad.Price = decimal.Zero
	_, err := e.products.Create(ctx, "", bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	bad = base
	bad.Status = "vendido"
	_, err = e.products.Create(ctx, "", bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	bad = base
	bad.CategoryID = "no-existe"
	_, err = e.products.Create(ctx, "", bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	bad = base
	bad.Discount = decimal.NewFromInt(120)
	_, err = e.products.Create(ctx, "", bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	withSKU := base
	withSKU.SKU = "SKU-1"
	_, err = e.products.Create(ctx, "", withSKU)
	require.NoError(t, err)
	_, err = e.products.Create(ctx, "", withSKU)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductList_SoloActivosYPrecioConDescuento(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	cat := e.category(t)
	e.product(t, cat, "Sofá", 1000, 1)
	_, err := e.products.Create(ctx, "", dto.ProductRequest{
		Name: "Borrador", Description: "d", Price: decimal.NewFromInt(5), Quantity: intp(0), CategoryID: cat, Status: "draft",
	})
	require.NoError(t, err)
	_, err = e.products.Create(ctx, "", dto.ProductRequest{
		Name: "Rebajado", Description: "d", Price: decimal.NewFromInt(2000), Discount: decimal.NewFromInt(25),
		Quantity: intp(1), CategoryID: cat, Status: "active",
	})
	require.NoError(t, err)

	list, err := e.products.List(ctx, dto.ProductListQuery{Sort: "price-high"})
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "Rebajado", list.Items[0].Name)
	assert.True(t, list.Items[0].DiscountedPrice.Equal(decimal.NewFromInt(1500)))
	assert.True(t, list.Items[0].IsOnSale)
	assert.Equal(t, 12, list.Pagination.Limit)

	_, err = e.products.List(ctx, dto.ProductListQuery{Sort: "aleatorio"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCategoryDelete_ConProductosEsConflicto(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	cat := e.category(t)
	p := e.product(t, cat, "Sofá", 1000, 1)

	assert.ErrorIs(t, e.categories.Delete(ctx, cat), domain.ErrConflict)
	require.NoError(t, e.products.Delete(ctx, p.ID))
	require.NoError(t, e.categories.Delete(ctx, cat))
	assert.ErrorIs(t, e.categories.Delete(ctx, cat), domain.ErrNotFound)
}

func TestReviews_ActualizanCalificacion(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	cat := e.category(t)
	p := e.product(t, cat, "Sofá", 1000, 1)
	for _, id := range []string{"c1", "c2"} {
		require.NoError(t, e.repo.Customers.Create(ctx, &entity.Customer{ID: id, FullName: "Cliente " + id, Email: id + "@x.com"}))
	}

	r1, err := e.products.AddReview(ctx, p.ID, "c1", dto.ReviewRequest{Rating: 5, Review: "Excelente"})
	require.NoError(t, err)
	_, err = e.products.AddReview(ctx, p.ID, "c2", dto.ReviewRequest{Rating: 4, Review: "Bueno"})
	require.NoError(t, err)
	_, err = e.products.AddReview(ctx, p.ID, "c1", dto.ReviewRequest{Rating: 1, Review: "Otra"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	_, err = e.products.AddReview(ctx, p.ID, "c1", dto.ReviewRequest{Rating: 6, Review: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := e.products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.5, got.AverageRating)
	assert.Equal(t, 2, got.ReviewCount)
	assert.Equal(t, 1, got.ViewCount)

	assert.ErrorIs(t, e.products.DeleteReview(ctx, p.ID, r1.ID, "c2", false), domain.ErrForbidden)
	require.NoError(t, e.products.DeleteReview(ctx, p.ID, r1.ID, "c1", false))
	adm, err := e.products.GetAdmin(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, adm.AverageRating)
	assert.Equal(t, 1, adm.ReviewCount)
}

// ──────────────────────────────────────────────────────────────────────────────
// Pedidos
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckout_DescuentaStockYCongelaPrecio(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	cat := e.category(t)
	p := e.product(t, cat, "Sofá", 1000, 5)

	out, err := e.orders.Checkout(ctx, "", "", dto.CheckoutRequest{
		Items:    []dto.OrderItemRequest{{ProductID: p.ID, Quantity: 2}, {ProductID: p.ID, Quantity: 1}},
		Address:  "Calle 1",
		Phone:    "0900",
		Customer: &dto.InlineCustomerRequest{FullName: "Ana", PhoneNumber: "0900"},
	})
	require.NoError(t, err)
	assert.Regexp(t, `^ORD-\d{8}-0001$`, out.Code)
	require.Len(t, out.Details, 1)
	assert.Equal(t, 3, out.Details[0].Quantity)
	assert.True(t, out.Amount.Equal(decimal.NewFromInt(3000)))
	assert.Equal(t, entity.OrderNotProcessed, out.Status)
	assert.Equal(t, entity.PaymentUnpaid, out.PaymentStatus)
	require.NotNil(t, out.Customer)
	assert.Equal(t, entity.GuestEmail, out.Customer.Email)

	assert.Equal(t, 2, e.stockOf(t, p.ID))
	prod, err := e.repo.Products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, prod.Sold)
	assert.Equal(t, 2, prod.Quantity)
}

func TestCheckout_StockInsuficienteNoDejaRastro(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	cat := e.category(t)
	a := e.product(t, cat, "Sofá", 1000, 5)
	b := e.product(t, cat, "Mesa", 500, 1)

	_, err := e.orders.Checkout(ctx, "", "", dto.CheckoutRequest{
		Items:   []dto.OrderItemRequest{{ProductID: a.ID, Quantity: 2}, {ProductID: b.ID, Quantity: 2}},
		Address: "Calle 1",
		Phone:   "0900",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 5, e.stockOf(t, a.ID))
	assert.Equal(t, 1, e.stockOf(t, b.ID))
	_, total, err := e.repo.Orders.List(ctx, repository.OrderFilter{}, repository.Page{})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestCheckout_Validaciones(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	cat := e.category(t)
	p := e.product(t, cat, "Sofá", 1000, 5)

	_, err := e.orders.Checkout(ctx, "", "", dto.CheckoutRequest{Items: []dto.OrderItemRequest{{ProductID: p.ID, Quantity: 1}}, Phone: "1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = e.orders.Checkout(ctx, "", "", dto.CheckoutRequest{Items: []dto.OrderItemRequest{{ProductID: p.ID, Quantity: 0}}, Address: "a", Phone: "1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = e.orders.Checkout(ctx, "", "", dto.CheckoutRequest{Items: []dto.OrderItemRequest{{ProductID: p.ID, Quantity: 1}}, Address: "a", Phone: "1", CustomerID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateStatus_CancelarReponeYBloquea(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	cat := e.category(t)
	p := e.product(t, cat, "Sofá", 1000, 5)
	o, err := e.orders.Checkout(ctx, "", "", dto.CheckoutRequest{
		Items: []dto.OrderItemRequest{{ProductID: p.ID, Quantity: 2}}, Address: "a", Phone: "1",
	})
	require.NoError(t, err)

	_, err = e.orders.UpdateStatus(ctx, o.ID, "staff", dto.OrderStatusRequest{Status: "Enviado"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := e.orders.UpdateStatus(ctx, o.ID, "staff", dto.OrderStatusRequest{Status: entity.OrderCancelled})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCancelled, got.Status)
	assert.Equal(t, 5, e.stockOf(t, p.ID))

	_, err = e.orders.UpdateStatus(ctx, o.ID, "staff", dto.OrderStatusRequest{Status: entity.OrderProcessing})
	assert.ErrorIs(t, err, domain.ErrOrderLocked)
}

func TestDeleteOrder_ConPagosEsConflicto(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	cat := e.category(t)
	p := e.product(t, cat, "Sofá", 1000, 5)
	o, err := e.orders.Checkout(ctx, "", "", dto.CheckoutRequest{
		Items: []dto.OrderItemRequest{{ProductID: p.ID, Quantity: 1}}, Address: "a", Phone: "1",
	})
	require.NoError(t, err)
	_, err = e.payments.Create(ctx, dto.CreatePaymentRequest{OrderID: o.ID, PaymentMethod: entity.MethodCash, Amount: decimal.NewFromInt(100)}, "")
	require.NoError(t, err)

	assert.ErrorIs(t, e.orders.Delete(ctx, o.ID, "staff"), domain.ErrConflict)
}

func TestCheckout_CodigoNoSeRepiteTrasBorrar(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	cat := e.category(t)
	p := e.product(t, cat, "Sofá", 1000, 10)
	checkout := func() *dto.OrderResponse {
		o, err := e.orders.Checkout(ctx, "", "", dto.CheckoutRequest{
			Items: []dto.OrderItemRequest{{ProductID: p.ID, Quantity: 1}}, Address: "a", Phone: "1",
		})
		require.NoError(t, err)
		return o
	}
	checkout()
	second := checkout()
	checkout()
	require.NoError(t, e.orders.Delete(ctx, second.ID, "staff"))

	assert.Regexp(t, `^ORD-\d{8}-0004$`, checkout().Code)
	assert.Regexp(t, `^ORD-\d{8}-0005$`, checkout().Code)
}

func TestOrderList_BuscaPorNombreDeCliente(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	cat := e.category(t)
	p := e.product(t, cat, "Sofá", 1000, 10)
	for _, name := range []string{"Nguyễn Văn An", "Lê Thị Bình"} {
		_, err := e.orders.Checkout(ctx, "", "", dto.CheckoutRequest{
			Items: []dto.OrderItemRequest{{ProductID: p.ID, Quantity: 1}}, Address: "a", Phone: "1",
			Customer: &dto.InlineCustomerRequest{FullName: name, PhoneNumber: "1"},
		})
		require.NoError(t, err)
	}
	list, err := e.orders.List(ctx, dto.PageRequest{Q: "bình"}, "")
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Lê Thị Bình", list.Items[0].Customer.FullName)
}

// ──────────────────────────────────────────────────────────────────────────────
// POS
// ──────────────────────────────────────────────────────────────────────────────

func TestPOS_EntregadoYPagadoEnCaja(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	cat := e.category(t)
	p := e.product(t, cat, "Sofá", 1000, 3)

	out, err := e.pos.Create(ctx, "staff-1", dto.POSOrderRequest{
		Items:         []dto.OrderItemRequest{{ProductID: p.ID, Quantity: 2}},
		PaymentMethod: entity.MethodCash,
	})
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, entity.OrderDelivered, out.Order.Status)
	assert.Equal(t, entity.ChannelPOS, out.Order.Channel)
	assert.Regexp(t, `^POS-\d+$`, out.Order.TransactionID)
	assert.Equal(t, entity.PaymentPaid, out.Order.PaymentStatus)
	assert.True(t, out.PaymentSummary.Remaining.IsZero())
	assert.Equal(t, 1, e.stockOf(t, p.ID))

	cash, err := e.cashbook.List(ctx, dto.CashbookQuery{})
	require.NoError(t, err)
	assert.True(t, cash.Summary.TotalIn.Equal(decimal.NewFromInt(2000)))
	assert.True(t, cash.Summary.Balance.Equal(decimal.NewFromInt(2000)))
}

func TestPOS_MetodoInvalidoYStockInsuficiente(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	cat := e.category(t)
	p := e.product(t, cat, "Sofá", 1000, 1)

	_, err := e.pos.Create(ctx, "s", dto.POSOrderRequest{Items: []dto.OrderItemRequest{{ProductID: p.ID, Quantity: 1}}, PaymentMethod: "Card"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = e.pos.Create(ctx, "s", dto.POSOrderRequest{Items: []dto.OrderItemRequest{{ProductID: p.ID, Quantity: 2}}, PaymentMethod: entity.MethodCash})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	totals, err := e.repo.Cashbook.Totals(ctx, repository.CashbookFilter{})
	require.NoError(t, err)
	assert.True(t, totals.TotalIn.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Órdenes de compra
// ──────────────────────────────────────────────────────────────────────────────

func (e *env) supplier(t *testing.T) string {
	t.Helper()
	s, err := e.suppliers.Create(context.Background(), dto.SupplierRequest{Name: "Gỗ Việt", Phone: "1", Email: "a@b.com", Address: "HCM"})
	require.NoError(t, err)
	return s.ID
}

func TestPurchaseOrder_PagoInicialRecepcionYCierre(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	cat := e.category(t)
	p := e.product(t, cat, "Sofá", 1000, 10)
	prod, err := e.repo.Products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	prod.Cost = decimal.NewFromInt(400)
	require.NoError(t, e.repo.Products.Update(ctx, prod))
	sup := e.supplier(t)

	po, err := e.purchases.Create(ctx, "staff", dto.PurchaseOrderRequest{
		SupplierID: sup,
		Items: []dto.PurchaseItemRequest{
			{ProductID: p.ID, Quantity: 10, Price: decimal.NewFromInt(700)},
			{ProductID: "borrado", Quantity: 1, Price: decimal.NewFromInt(1)},
		},
		Payment: &dto.InitialPaymentRequest{Amount: decimal.NewFromInt(3000), PaymentMethod: entity.MethodBankTransfer},
	})
	require.NoError(t, err)
	assert.Regexp(t, `^PO-\d{8}-0001$`, po.Code)
	assert.Len(t, po.Details, 1)
	assert.True(t, po.TotalAmount.Equal(decimal.NewFromInt(7000)))
	assert.Equal(t, entity.PaymentPartial, po.PaymentStatus)
	assert.True(t, po.TotalPaid.Equal(decimal.NewFromInt(3000)))

	// no se puede bajar el total por debajo de lo pagado
	low := decimal.NewFromInt(2000)
	_, err = e.purchases.Update(ctx, po.ID, dto.PurchaseOrderRequest{TotalAmount: &low})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := e.purchases.MarkReceived(ctx, po.ID, "staff")
	require.NoError(t, err)
	assert.Equal(t, entity.WarehouseReceived, got.WarehouseStatus)
	assert.Equal(t, entity.PurchasePending, got.Status)
	assert.Equal(t, 20, e.stockOf(t, p.ID))
	prod, err = e.repo.Products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, prod.Cost.Equal(decimal.NewFromInt(550)), prod.Cost.String())

	_, err = e.purchases.MarkReceived(ctx, po.ID, "staff")
	assert.ErrorIs(t, err, domain.ErrAlreadyReceived)

	_, err = e.payments.Create(ctx, dto.CreatePaymentRequest{PurchaseOrderID: po.ID, PaymentMethod: entity.MethodCash, Amount: decimal.NewFromInt(4000)}, "")
	require.NoError(t, err)
	got, err = e.purchases.GetByID(ctx, po.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseCompleted, got.Status)
	assert.Equal(t, entity.PaymentPaid, got.PaymentStatus)

	cash, err := e.cashbook.List(ctx, dto.CashbookQuery{Direction: "out"})
	require.NoError(t, err)
	assert.True(t, cash.Summary.TotalOut.Equal(decimal.NewFromInt(7000)))
	assert.True(t, cash.Summary.Balance.Equal(decimal.NewFromInt(-7000)))
}

func TestPurchaseOrder_CancelarYBorrar(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	cat := e.category(t)
	p := e.product(t, cat, "Sofá", 1000, 1)
	sup := e.supplier(t)
	items := []dto.PurchaseItemRequest{{ProductID: p.ID, Quantity: 1, Price: decimal.NewFromInt(100)}}

	paid, err := e.purchases.Create(ctx, "s", dto.PurchaseOrderRequest{
		SupplierID: sup, Items: items,
		Payment: &dto.InitialPaymentRequest{Amount: decimal.NewFromInt(50), PaymentMethod: entity.MethodCash},
	})
	require.NoError(t, err)
	_, err = e.purchases.Cancel(ctx, paid.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.ErrorIs(t, e.purchases.Delete(ctx, paid.ID), domain.ErrConflict)
	assert.ErrorIs(t, e.suppliers.Delete(ctx, sup), domain.ErrConflict)

	free, err := e.purchases.Create(ctx, "s", dto.PurchaseOrderRequest{SupplierID: sup, Items: items})
	require.NoError(t, err)
	got, err := e.purchases.Cancel(ctx, free.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseCancelled, got.Status)
	_, err = e.payments.Create(ctx, dto.CreatePaymentRequest{PurchaseOrderID: free.ID, PaymentMethod: entity.MethodCash, Amount: decimal.NewFromInt(1)}, "")
	assert.ErrorIs(t, err, domain.ErrConflict)
	require.NoError(t, e.purchases.Delete(ctx, free.ID))

	_, err = e.purchases.Create(ctx, "s", dto.PurchaseOrderRequest{SupplierID: "no-existe", Items: items})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPurchaseOrder_CodigoNoSeRepiteTrasBorrar(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	cat := e.category(t)
	p := e.product(t, cat, "Sofá", 1000, 1)
	sup := e.supplier(t)
	req := dto.PurchaseOrderRequest{
		SupplierID: sup,
		Items:      []dto.PurchaseItemRequest{{ProductID: p.ID, Quantity: 1, Price: decimal.NewFromInt(100)}},
	}
	first, err := e.purchases.Create(ctx, "s", req)
	require.NoError(t, err)
	_, err = e.purchases.Create(ctx, "s", req)
	require.NoError(t, err)
	require.NoError(t, e.purchases.Delete(ctx, first.ID))

	next, err := e.purchases.Create(ctx, "s", req)
	require.NoError(t, err)
	assert.Regexp(t, `^PO-\d{8}-0003$`, next.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Bodega y caja
// ──────────────────────────────────────────────────────────────────────────────

func TestWarehouse_AjusteNoQuedaNegativo(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	cat := e.category(t)
	p := e.product(t, cat, "Sofá", 1000, 2)

	_, err := e.warehouse.Adjust(ctx, "s", dto.WarehouseAdjustRequest{ProductID: p.ID, Delta: -3})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 2, e.stockOf(t, p.ID))

	rec, err := e.warehouse.Adjust(ctx, "s", dto.WarehouseAdjustRequest{ProductID: p.ID, Delta: 4, Notes: "conteo"})
	require.NoError(t, err)
	assert.Equal(t, 6, rec.Quantity)
	require.NotNil(t, rec.Product)
	assert.Equal(t, 6, rec.Product.Quantity)

	up, err := e.warehouse.Upsert(ctx, "s", dto.WarehouseUpsertRequest{ProductID: p.ID, Location: "B-2"})
	require.NoError(t, err)
	assert.Equal(t, 6, up.Quantity)
	assert.Equal(t, "B-2", up.Location)

	moves, err := e.warehouse.Movements(ctx, p.ID, dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), moves.Pagination.Total)

	_, err = e.warehouse.GetByProduct(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCashbook_FiltroPorFechas(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	cat := e.category(t)
	p := e.product(t, cat, "Sofá", 1000, 5)
	o, err := e.orders.Checkout(ctx, "", "", dto.CheckoutRequest{
		Items: []dto.OrderItemRequest{{ProductID: p.ID, Quantity: 2}}, Address: "a", Phone: "1",
	})
	require.NoError(t, err)
	old := time.Now().AddDate(0, 0, -10)
	_, err = e.payments.Create(ctx, dto.CreatePaymentRequest{OrderID: o.ID, PaymentMethod: entity.MethodCash, Amount: decimal.NewFromInt(500), PaymentDate: &old}, "")
	require.NoError(t, err)
	_, err = e.payments.Create(ctx, dto.CreatePaymentRequest{OrderID: o.ID, PaymentMethod: entity.MethodCash, Amount: decimal.NewFromInt(700)}, "")
	require.NoError(t, err)

	from := time.Now().AddDate(0, 0, -1)
	list, err := e.cashbook.List(ctx, dto.CashbookQuery{From: &from})
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)
	assert.True(t, list.Summary.TotalIn.Equal(decimal.NewFromInt(700)))

	to := time.Now().AddDate(0, 0, -2)
	_, err = e.cashbook.List(ctx, dto.CashbookQuery{From: &from, To: &to})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes y proveedores
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomer_CRUDYBusqueda(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	uc := usecase.NewCustomerUseCase(e.repo.Customers)

	_, err := uc.Create(ctx, "staff", dto.CustomerRequest{FullName: "Lan", PhoneNumber: "0900", Email: "no-es-correo", Address: "Hà Nội"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	c, err := uc.Create(ctx, "staff", dto.CustomerRequest{FullName: " Lan Nguyễn ", PhoneNumber: "0900", Email: "LAN@Correo.test", Address: "Hà Nội"})
	require.NoError(t, err)
	assert.Equal(t, "Lan Nguyễn", c.FullName)
	assert.Equal(t, "lan@correo.test", c.Email)
	assert.False(t, c.IsRegistered)

	_, err = uc.Create(ctx, "staff", dto.CustomerRequest{FullName: "Minh", PhoneNumber: "0911", Email: "minh@correo.test", Address: "HCM"})
	require.NoError(t, err)

	list, err := uc.List(ctx, dto.PageRequest{Q: "lan"})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, c.ID, list.Items[0].ID)

	upd, err := uc.Update(ctx, c.ID, dto.CustomerRequest{FullName: "Lan", PhoneNumber: "0999", Email: "lan@correo.test", Address: "Đà Nẵng"})
	require.NoError(t, err)
	assert.Equal(t, "Đà Nẵng", upd.Address)

	require.NoError(t, uc.Delete(ctx, c.ID))
	_, err = uc.GetByID(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, c.ID), domain.ErrNotFound)
}

func TestSupplier_CRUD(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.suppliers.Create(ctx, dto.SupplierRequest{Name: "Gỗ Việt"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	id := e.supplier(t)
	upd, err := e.suppliers.Update(ctx, id, dto.SupplierRequest{Name: "Gỗ Việt 2", Phone: "2", Email: "B@C.com", Address: "HCM"})
	require.NoError(t, err)
	assert.Equal(t, "Gỗ Việt 2", upd.Name)
	assert.Equal(t, "b@c.com", upd.Email)

	list, err := e.suppliers.List(ctx, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)

	require.NoError(t, e.suppliers.Delete(ctx, id), "sin órdenes de compra se puede borrar")
	_, err = e.suppliers.GetByID(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
