package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/furnistore-api/internal/application/analytics"
	"github.com/jhoicas/furnistore-api/internal/application/auth"
	"github.com/jhoicas/furnistore-api/internal/application/dto"
	"github.com/jhoicas/furnistore-api/internal/application/inventory"
	"github.com/jhoicas/furnistore-api/internal/application/payments"
	"github.com/jhoicas/furnistore-api/internal/application/usecase"
	"github.com/jhoicas/furnistore-api/internal/domain"
	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/jhoicas/furnistore-api/internal/infrastructure/memory"
	"github.com/jhoicas/furnistore-api/internal/infrastructure/sitemap"
	apphttp "github.com/jhoicas/furnistore-api/internal/interfaces/http"
)

type fakeUploader struct {
	url string
	err error
}

func (f fakeUploader) Upload(_ context.Context, _ string, r io.Reader) (string, error) {
	_, _ = io.Copy(io.Discard, r)
	return f.url, f.err
}

type apiEnv struct {
	app   *fiber.App
	admin string
}

func newAPI(t *testing.T, uploader fakeUploader) *apiEnv {
	t.Helper()
	store := memory.NewStore()
	repo := memory.NewRegistry(store)
	tx := memory.NewTxRunner(store)
	jwtCfg := auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 60, Issuer: testIssuer}

	stock := inventory.NewStockService(repo.Warehouse, repo.Products, repo.Movements)
	pay := payments.NewService(tx, repo.Payments, repo.Cashbook, repo.Orders, repo.PurchaseOrders, zerolog.Nop())
	replenishment := inventory.NewReplenishmentUseCase(repo.Products, repo.Warehouse)
	authUC := auth.NewAuthUseCase(repo.Users, jwtCfg)

	app := fiber.New()
	app.Use(requestid.New())
	app.Use(apphttp.RequestLogger(zerolog.Nop()))
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:          authUC,
		CustomerAuthUC:  auth.NewCustomerAuthUseCase(repo.Customers, jwtCfg),
		CategoryUC:      usecase.NewCategoryUseCase(repo.Categories, repo.Products),
		ProductUC:       usecase.NewProductUseCase(tx, repo.Products, repo.Categories, repo.Customers, repo.Orders, stock),
		UploadUC:        usecase.NewUploadUseCase(uploader, 1024),
		SitemapUC:       usecase.NewSitemapUseCase(repo.Products, repo.Categories, sitemap.Encoder{}, "https://tienda.test"),
		CustomerUC:      usecase.NewCustomerUseCase(repo.Customers),
		SupplierUC:      usecase.NewSupplierUseCase(repo.Suppliers, repo.PurchaseOrders),
		WarehouseUC:     usecase.NewWarehouseUseCase(tx, repo.Warehouse, repo.Products, repo.Movements, stock),
		Replenishment:   replenishment,
		OrderUC:         usecase.NewOrderUseCase(tx, repo.Orders, repo.Products, repo.Customers, stock, pay, nil),
		POSUC:           usecase.NewPOSUseCase(tx, repo.Orders, repo.Products, repo.Customers, stock, pay),
		Payments:        pay,
		CashbookUC:      usecase.NewCashbookUseCase(repo.Cashbook),
		PurchaseOrderUC: usecase.NewPurchaseOrderUseCase(tx, repo.PurchaseOrders, repo.Suppliers, repo.Products, stock, pay, nil),
		DashboardUC:     appanalytics.NewDashboardUseCase(repo.Orders, repo.Products, repo.Cashbook, replenishment),
		JWTSecret:       testJWTSecret,
	})

	_, err := authUC.CreateAdmin(context.Background(), "admin@tienda.test", "secreto123", "Admin")
	require.NoError(t, err)
	e := &apiEnv{app: app}
	var login dto.LoginResponse
	e.call(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "admin@tienda.test", Password: "secreto123"}, http.StatusOK, &login)
	e.admin = "Bearer " + login.Token
	return e
}

// call envía body como JSON, comprueba el status y decodifica la respuesta en out (si no es nil).
func (e *apiEnv) call(t *testing.T, method, path, token string, body interface{}, wantStatus int, out interface{}, headers ...string) []byte {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, wantStatus, resp.StatusCode, "%s %s → %s", method, path, string(raw))
	if out != nil {
		require.NoError(t, json.Unmarshal(raw, out))
	}
	return raw
}

func errorCode(t *testing.T, raw []byte) string {
	t.Helper()
	var e dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &e))
	return e.Code
}

// seedProduct crea categoría y producto vía API y devuelve el producto.
func (e *apiEnv) seedProduct(t *testing.T, name string, price int64, qty int) dto.AdminProductResponse {
	t.Helper()
	var cat dto.CategoryResponse
	e.call(t, http.MethodPost, "/api/category", e.admin, dto.CategoryRequest{Name: "Cat " + name}, http.StatusCreated, &cat)
	var p dto.AdminProductResponse
	e.call(t, http.MethodPost, "/api/product", e.admin, dto.ProductRequest{
		Name:        name,
		Description: "Mueble de prueba",
		Price:       decimal.NewFromInt(price),
		Quantity:    &qty,
		CategoryID:  cat.ID,
		Status:      "active",
	}, http.StatusCreated, &p)
	return p
}

func TestRouter_AuthStaff(t *testing.T) {
	e := newAPI(t, fakeUploader{})

	var me dto.UserResponse
	e.call(t, http.MethodGet, "/api/auth/me", e.admin, nil, http.StatusOK, &me)
	assert.Equal(t, "admin@tienda.test", me.Email)
	assert.Equal(t, entity.RoleAdmin, me.Role)

	// sin token ya no se puede registrar: existe un admin
	raw := e.call(t, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{Email: "x@tienda.test", Password: "secreto123"}, http.StatusForbidden, nil)
	assert.Equal(t, "FORBIDDEN", errorCode(t, raw))

	var staff dto.UserResponse
	e.call(t, http.MethodPost, "/api/auth/register", e.admin, dto.RegisterRequest{Email: "staff@tienda.test", Password: "secreto123", Name: "Staff"}, http.StatusCreated, &staff)
	assert.Equal(t, entity.RoleStaff, staff.Role)

	raw = e.call(t, http.MethodPost, "/api/auth/register", e.admin, dto.RegisterRequest{Email: "staff@tienda.test", Password: "secreto123"}, http.StatusConflict, nil)
	assert.Equal(t, "EMAIL_EXISTS", errorCode(t, raw))

	raw = e.call(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "staff@tienda.test", Password: "incorrecta"}, http.StatusUnauthorized, nil)
	assert.Equal(t, "UNAUTHORIZED", errorCode(t, raw))

	var login dto.LoginResponse
	e.call(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "staff@tienda.test", Password: "secreto123"}, http.StatusOK, &login)
	staffToken := "Bearer " + login.Token

	// /users solo admin
	e.call(t, http.MethodGet, "/api/auth/users", staffToken, nil, http.StatusForbidden, nil)
	var users []dto.UserResponse
	e.call(t, http.MethodGet, "/api/auth/users", e.admin, nil, http.StatusOK, &users)
	assert.Len(t, users, 2)
}

func TestRouter_ClienteSignupPerfilYPermisos(t *testing.T) {
	e := newAPI(t, fakeUploader{})

	var signup dto.CustomerAuthResponse
	e.call(t, http.MethodPost, "/api/customer/signup", "", dto.CustomerSignupRequest{
		FullName: "Lan", Email: "lan@correo.test", Password: "secreto123", PhoneNumber: "0900",
	}, http.StatusCreated, &signup)
	require.True(t, signup.Success)
	customerToken := "Bearer " + signup.Token

	var profile dto.CustomerResponse
	e.call(t, http.MethodGet, "/api/customer/profile", customerToken, nil, http.StatusOK, &profile)
	assert.Equal(t, "lan@correo.test", profile.Email)
	assert.True(t, profile.IsRegistered)

	// el perfil exige sesión de cliente y las rutas del personal la rechazan
	e.call(t, http.MethodGet, "/api/customer/profile", e.admin, nil, http.StatusForbidden, nil)
	e.call(t, http.MethodGet, "/api/customers", customerToken, nil, http.StatusForbidden, nil)
	e.call(t, http.MethodGet, "/api/customers", "", nil, http.StatusUnauthorized, nil)

	raw := e.call(t, http.MethodPost, "/api/customer/signup", "", dto.CustomerSignupRequest{
		FullName: "Lan", Email: "lan@correo.test", Password: "secreto123", PhoneNumber: "0900",
	}, http.StatusConflict, nil)
	assert.Equal(t, "EMAIL_EXISTS", errorCode(t, raw))

	e.call(t, http.MethodPost, "/api/customer/signin", "", dto.LoginRequest{Email: "lan@correo.test", Password: "mala-clave"}, http.StatusUnauthorized, nil)
}

func TestRouter_CatalogoPublico(t *testing.T) {
	e := newAPI(t, fakeUploader{})
	p := e.seedProduct(t, "Sofá Roble", 1500, 4)

	// escritura sin token
	e.call(t, http.MethodPost, "/api/category", "", dto.CategoryRequest{Name: "X"}, http.StatusUnauthorized, nil)

	var list dto.ProductListResponse
	e.call(t, http.MethodGet, "/api/product?sort=price-low", "", nil, http.StatusOK, &list)
	require.Len(t, list.Items, 1)
	assert.Equal(t, p.ID, list.Items[0].ID)

	raw := e.call(t, http.MethodGet, "/api/product?min_price=abc", "", nil, http.StatusBadRequest, nil)
	assert.Equal(t, "VALIDATION", errorCode(t, raw))

	var bySlug dto.ProductResponse
	e.call(t, http.MethodGet, "/api/product/slug/"+p.Slug, "", nil, http.StatusOK, &bySlug)
	assert.Equal(t, p.ID, bySlug.ID)

	var got dto.ProductResponse
	e.call(t, http.MethodGet, "/api/product/"+p.ID, "", nil, http.StatusOK, &got)
	assert.Equal(t, 1, got.ViewCount)

	raw = e.call(t, http.MethodGet, "/api/product/no-existe", "", nil, http.StatusNotFound, nil)
	assert.Equal(t, "NOT_FOUND", errorCode(t, raw))

	var cart []dto.ProductResponse
	e.call(t, http.MethodPost, "/api/product/cart-products", "", dto.ProductIDsRequest{ProductIDs: []string{p.ID, "otro"}}, http.StatusOK, &cart)
	assert.Len(t, cart, 1)

	body := e.call(t, http.MethodGet, "/sitemap.xml", "", nil, http.StatusOK, nil)
	assert.Contains(t, string(body), "https://tienda.test/product/"+p.Slug)
}

func TestRouter_CheckoutPagosYCaja(t *testing.T) {
	e := newAPI(t, fakeUploader{})
	p := e.seedProduct(t, "Mesa Comedor", 1000, 2)

	checkout := dto.CheckoutRequest{
		Items:    []dto.OrderItemRequest{{ProductID: p.ID, Quantity: 3}},
		Address:  "Calle 1",
		Phone:    "0900",
		Customer: &dto.InlineCustomerRequest{FullName: "Invitado", PhoneNumber: "0900"},
	}
	raw := e.call(t, http.MethodPost, "/api/order/checkout", "", checkout, http.StatusConflict, nil)
	assert.Equal(t, "INSUFFICIENT_STOCK", errorCode(t, raw))

	var wh dto.WarehouseRecordResponse
	e.call(t, http.MethodGet, "/api/warehouse/product/"+p.ID, e.admin, nil, http.StatusOK, &wh)
	assert.Equal(t, 2, wh.Quantity, "el rechazo no descuenta existencias")

	checkout.Items[0].Quantity = 2
	var order dto.OrderResponse
	e.call(t, http.MethodPost, "/api/order/checkout", "", checkout, http.StatusCreated, &order)
	assert.True(t, order.Amount.Equal(decimal.NewFromInt(2000)))
	assert.Equal(t, entity.PaymentUnpaid, order.PaymentStatus)

	pay := dto.CreatePaymentRequest{OrderID: order.ID, PaymentMethod: entity.MethodCash, Amount: decimal.NewFromInt(500)}
	var first dto.PaymentResultResponse
	e.call(t, http.MethodPost, "/api/payments", e.admin, pay, http.StatusCreated, &first, apphttp.HeaderIdempotencyKey, "k-1")
	assert.False(t, first.Replayed)
	assert.True(t, first.Summary.Remaining.Equal(decimal.NewFromInt(1500)))

	var replay dto.PaymentResultResponse
	e.call(t, http.MethodPost, "/api/payments", e.admin, pay, http.StatusOK, &replay, apphttp.HeaderIdempotencyKey, "k-1")
	assert.True(t, replay.Replayed)
	assert.Equal(t, first.Payment.ID, replay.Payment.ID)

	conflict := pay
	conflict.Amount = decimal.NewFromInt(600)
	raw = e.call(t, http.MethodPost, "/api/payments", e.admin, conflict, http.StatusConflict, nil, apphttp.HeaderIdempotencyKey, "k-1")
	assert.Equal(t, "IDEMPOTENCY_CONFLICT", errorCode(t, raw))

	over := pay
	over.Amount = decimal.NewFromInt(1600)
	raw = e.call(t, http.MethodPost, "/api/payments", e.admin, over, http.StatusBadRequest, nil)
	assert.Equal(t, "OVERPAYMENT", errorCode(t, raw))

	var list dto.PaymentListResponse
	e.call(t, http.MethodGet, "/api/payments/order/"+order.ID, e.admin, nil, http.StatusOK, &list)
	assert.Len(t, list.Items, 1)
	assert.Equal(t, entity.PaymentPartial, list.Summary.PaymentStatus)

	var cash dto.CashbookListResponse
	e.call(t, http.MethodGet, "/api/cashbook?direction=in", e.admin, nil, http.StatusOK, &cash)
	assert.Len(t, cash.Items, 1)
	assert.True(t, cash.Summary.TotalIn.Equal(decimal.NewFromInt(500)))
	assert.True(t, cash.Summary.Balance.Equal(decimal.NewFromInt(500)))

	e.call(t, http.MethodGet, "/api/cashbook?from=ayer", e.admin, nil, http.StatusBadRequest, nil)

	// con pagos el pedido no se puede eliminar
	e.call(t, http.MethodDelete, "/api/order/"+order.ID, e.admin, nil, http.StatusConflict, nil)

	var summary dto.DashboardSummaryDTO
	e.call(t, http.MethodGet, "/api/dashboard/summary", e.admin, nil, http.StatusOK, &summary)
}

func TestRouter_Upload(t *testing.T) {
	multipartBody := func(field, filename string, size int) (io.Reader, string) {
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		if field != "" {
			fw, err := w.CreateFormFile(field, filename)
			require.NoError(t, err)
			_, _ = fw.Write([]byte(strings.Repeat("x", size)))
		}
		require.NoError(t, w.Close())
		return &buf, w.FormDataContentType()
	}
	send := func(e *apiEnv, field, filename string, size int) (int, string) {
		body, ct := multipartBody(field, filename, size)
		req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
		req.Header.Set("Content-Type", ct)
		req.Header.Set("Authorization", e.admin)
		resp, err := e.app.Test(req, -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		raw, _ := io.ReadAll(resp.Body)
		return resp.StatusCode, string(raw)
	}

	ok := newAPI(t, fakeUploader{url: "https://img.test/a.png"})
	status, body := send(ok, "image", "a.png", 10)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "https://img.test/a.png")

	status, body = send(ok, "", "", 0)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body, "MISSING_FILE")

	status, body = send(ok, "image", "a.png", 2048)
	assert.Equal(t, http.StatusRequestEntityTooLarge, status)
	assert.Contains(t, body, "FILE_TOO_LARGE")

	upstream := newAPI(t, fakeUploader{err: domain.ErrUpstream})
	status, body = send(upstream, "image", "a.png", 10)
	assert.Equal(t, http.StatusBadGateway, status)
	assert.Contains(t, body, "UPSTREAM_ERROR")
}
