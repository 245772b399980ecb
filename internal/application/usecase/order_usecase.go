package usecase

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/furnistore-api/internal/application/dto"
	"github.com/jhoicas/furnistore-api/internal/application/inventory"
	"github.com/jhoicas/furnistore-api/internal/application/payments"
	"github.com/jhoicas/furnistore-api/internal/application/ports"
	"github.com/jhoicas/furnistore-api/internal/domain"
	"github.com/jhoicas/furnistore-api/internal/domain/catalog"
	"github.com/jhoicas/furnistore-api/internal/domain/document"
	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/jhoicas/furnistore-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// orderBuilder arma pedidos de tienda y de mostrador: cliente, líneas con precio congelado y código.
type orderBuilder struct {
	orders    repository.OrderRepository
	products  repository.ProductRepository
	customers repository.CustomerRepository
	stock     *inventory.StockService
}

// resolveCustomer: cliente del token, customerID existente, cliente creado al vuelo o ninguno.
func (b *orderBuilder) resolveCustomer(ctx context.Context, tokenCustomerID, customerID string, inline *dto.InlineCustomerRequest, createdBy string) (*entity.Customer, error) {
	id := firstNonEmpty(tokenCustomerID, strings.TrimSpace(customerID))
	if id != "" {
		c, err := b.customers.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, domain.Invalid("customer_id", "el cliente no existe")
		}
		return c, nil
	}
	if inline == nil {
		return nil, nil
	}
	name := strings.TrimSpace(inline.FullName)
	phone := strings.TrimSpace(inline.PhoneNumber)
	if name == "" || phone == "" {
		return nil, domain.Invalid("customer", "full_name y phone_number son obligatorios")
	}
	email := strings.ToLower(strings.TrimSpace(inline.Email))
	if email == "" {
		email = entity.GuestEmail
	} else if _, err := mail.ParseAddress(email); err != nil {
		return nil, domain.Invalid("customer.email", "formato inválido")
	}
	now := time.Now()
	c := &entity.Customer{
		ID:          uuid.NewString(),
		UserID:      createdBy,
		FullName:    name,
		PhoneNumber: phone,
		Email:       email,
		Address:     strings.TrimSpace(inline.Address),
		TaxCode:     strings.TrimSpace(inline.TaxCode),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := b.customers.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// lines valida los ítems, agrupa productos repetidos y congela el precio con descuento.
func (b *orderBuilder) lines(ctx context.Context, items []dto.OrderItemRequest) ([]entity.OrderDetail, decimal.Decimal, error) {
	if len(items) == 0 {
		return nil, decimal.Zero, domain.Invalid("items", "el pedido no tiene productos")
	}
	qty := map[string]int{}
	order := make([]string, 0, len(items))
	for i, it := range items {
		id := strings.TrimSpace(it.ProductID)
		if id == "" {
			return nil, decimal.Zero, domain.Invalid(fmt.Sprintf("items[%d].product_id", i), "es obligatorio")
		}
		if it.Quantity < 1 {
			return nil, decimal.Zero, domain.Invalid(fmt.Sprintf("items[%d].quantity", i), "debe ser al menos 1")
		}
		if _, seen := qty[id]; !seen {
			order = append(order, id)
		}
		qty[id] += it.Quantity
	}

	details := make([]entity.OrderDetail, 0, len(order))
	total := decimal.Zero
	for _, id := range order {
		p, err := b.products.GetByID(ctx, id)
		if err != nil {
			return nil, decimal.Zero, err
		}
		if p == nil {
			return nil, decimal.Zero, domain.Invalid("items", "el producto "+id+" no existe")
		}
		if !catalog.IsPurchasable(p) {
			return nil, decimal.Zero, domain.Invalid("items", "el producto "+p.Name+" no está disponible")
		}
		price := catalog.DiscountedPrice(p.Price, p.Discount)
		line := price.Mul(decimal.NewFromInt(int64(qty[id])))
		details = append(details, entity.OrderDetail{
			ProductID:    p.ID,
			ProductName:  p.Name,
			ProductImage: p.ThumbnailImage,
			ProductPrice: price,
			Quantity:     qty[id],
			TotalPrice:   line,
		})
		total = total.Add(line)
	}
	return details, total, nil
}

func (b *orderBuilder) nextCode(ctx context.Context, now time.Time) (string, error) {
	last, err := b.orders.LastCode(ctx, document.DayPrefix(document.PrefixOrder, now))
	if err != nil {
		return "", err
	}
	return document.NextCode(document.PrefixOrder, now, last), nil
}

// place inserta el pedido y descuenta existencias; debe correr dentro de una transacción.
func (b *orderBuilder) place(ctx context.Context, o *entity.Order, userID string) error {
	code, err := b.nextCode(ctx, o.CreatedAt)
	if err != nil {
		return err
	}
	o.Code = code
	if err := b.orders.Create(ctx, o); err != nil {
		return err
	}
	for _, d := range o.Details {
		if err := b.stock.Sell(ctx, d.ProductID, d.Quantity, o.Code, userID); err != nil {
			if err == domain.ErrInsufficientStock {
				return fmt.Errorf("%s: %w", d.ProductName, err)
			}
			return err
		}
	}
	return nil
}

// OrderUseCase pedidos de la tienda: checkout, consulta, cambio de estado y comprobante.
type OrderUseCase struct {
	orderBuilder
	tx       ports.TxRunner
	payments *payments.Service
	pdf      ports.PDFGenerator
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	tx ports.TxRunner,
	orders repository.OrderRepository,
	products repository.ProductRepository,
	customers repository.CustomerRepository,
	stock *inventory.StockService,
	paymentSvc *payments.Service,
	pdf ports.PDFGenerator,
) *OrderUseCase {
	return &OrderUseCase{
		orderBuilder: orderBuilder{orders: orders, products: products, customers: customers, stock: stock},
		tx:           tx,
		payments:     paymentSvc,
		pdf:          pdf,
	}
}

// Checkout crea el pedido, el cliente si llega en línea y descuenta existencias en una transacción.
// tokenCustomerID es el cliente autenticado; staffUserID el usuario del back-office si lo hay.
func (uc *OrderUseCase) Checkout(ctx context.Context, tokenCustomerID, staffUserID string, in dto.CheckoutRequest) (*dto.OrderResponse, error) {
	in.Address = strings.TrimSpace(in.Address)
	in.Phone = strings.TrimSpace(in.Phone)
	if in.Address == "" {
		return nil, domain.Invalid("address", "es obligatoria")
	}
	if in.Phone == "" {
		return nil, domain.Invalid("phone", "es obligatorio")
	}
	if len(in.Items) == 0 {
		return nil, domain.Invalid("items", "el pedido no tiene productos")
	}

	var (
		o        *entity.Order
		customer *entity.Customer
	)
	err := uc.tx.Run(ctx, func(ctx context.Context) error {
		details, total, err := uc.lines(ctx, in.Items)
		if err != nil {
			return err
		}
		customer, err = uc.resolveCustomer(ctx, tokenCustomerID, in.CustomerID, in.Customer, staffUserID)
		if err != nil {
			return err
		}
		now := time.Now()
		o = &entity.Order{
			ID:            uuid.NewString(),
			Channel:       entity.ChannelWeb,
			UserID:        staffUserID,
			Details:       details,
			Amount:        total,
			TransactionID: strings.TrimSpace(in.TransactionID),
			Address:       in.Address,
			Phone:         in.Phone,
			Status:        entity.OrderNotProcessed,
			PaymentStatus: entity.PaymentUnpaid,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if customer != nil {
			o.CustomerID = customer.ID
		}
		return uc.place(ctx, o, staffUserID)
	})
	if err != nil {
		return nil, err
	}
	return ToOrderResponse(o, customer), nil
}

// GetByID pedido con su cliente.
func (uc *OrderUseCase) GetByID(ctx context.Context, id string) (*dto.OrderResponse, error) {
	o, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	c, err := uc.customerOf(ctx, o)
	if err != nil {
		return nil, err
	}
	return ToOrderResponse(o, c), nil
}

// GetForCustomer pedido solo si pertenece al cliente; si no, 404.
func (uc *OrderUseCase) GetForCustomer(ctx context.Context, id, customerID string) (*dto.OrderResponse, error) {
	out, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if out.CustomerID != customerID {
		return nil, domain.ErrNotFound
	}
	return out, nil
}

func (uc *OrderUseCase) customerOf(ctx context.Context, o *entity.Order) (*entity.Customer, error) {
	if o.CustomerID == "" {
		return nil, nil
	}
	return uc.customers.GetByID(ctx, o.CustomerID)
}

// List pedidos paginados; q busca en transactionId, código o nombre del cliente.
func (uc *OrderUseCase) List(ctx context.Context, page dto.PageRequest, status string) (*dto.OrderListResponse, error) {
	page.Normalize(20, 100)
	f := repository.OrderFilter{Search: strings.TrimSpace(page.Q), Status: strings.TrimSpace(status)}
	if f.Status != "" && !entity.IsValidOrderStatus(f.Status) {
		return nil, domain.Invalid("status", "estado desconocido")
	}
	if f.Search != "" {
		ids, err := uc.customers.FindIDsByName(ctx, f.Search)
		if err != nil {
			return nil, err
		}
		f.CustomerIDs = ids
	}
	return uc.list(ctx, f, page)
}

// ListByCustomer pedidos del cliente autenticado.
func (uc *OrderUseCase) ListByCustomer(ctx context.Context, customerID string, page dto.PageRequest) (*dto.OrderListResponse, error) {
	page.Normalize(20, 100)
	return uc.list(ctx, repository.OrderFilter{CustomerID: customerID}, page)
}

// ListByUser pedidos registrados por un usuario, o del cliente con ese id.
func (uc *OrderUseCase) ListByUser(ctx context.Context, userID string, page dto.PageRequest) (*dto.OrderListResponse, error) {
	page.Normalize(20, 100)
	out, err := uc.list(ctx, repository.OrderFilter{UserID: userID}, page)
	if err != nil || out.Pagination.Total > 0 {
		return out, err
	}
	return uc.list(ctx, repository.OrderFilter{CustomerID: userID}, page)
}

func (uc *OrderUseCase) list(ctx context.Context, f repository.OrderFilter, page dto.PageRequest) (*dto.OrderListResponse, error) {
	list, total, err := uc.orders.List(ctx, f, repository.Page{Limit: page.Limit, Offset: page.Offset()})
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(list))
	for _, o := range list {
		if o.CustomerID != "" {
			ids = append(ids, o.CustomerID)
		}
	}
	byID := map[string]*entity.Customer{}
	if len(ids) > 0 {
		customers, err := uc.customers.GetByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, c := range customers {
			byID[c.ID] = c
		}
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *ToOrderResponse(o, byID[o.CustomerID]))
	}
	return &dto.OrderListResponse{Items: items, Pagination: dto.NewPagination(total, page.Page, page.Limit)}, nil
}

// UpdateStatus cambia el estado. Entregado y cancelado son finales;
// cancelar devuelve las existencias en la misma transacción.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, id, userID string, in dto.OrderStatusRequest) (*dto.OrderResponse, error) {
	status := strings.TrimSpace(in.Status)
	if !entity.IsValidOrderStatus(status) {
		return nil, domain.Invalid("status", "estado desconocido")
	}
	var o *entity.Order
	err := uc.tx.Run(ctx, func(ctx context.Context) error {
		var err error
		o, err = uc.orders.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if o == nil {
			return domain.ErrNotFound
		}
		if o.Status == entity.OrderDelivered || o.Status == entity.OrderCancelled {
			return domain.ErrOrderLocked
		}
		if o.Status == status {
			return nil
		}
		if status == entity.OrderCancelled {
			if err := uc.restock(ctx, o, userID); err != nil {
				return err
			}
		}
		o.Status = status
		o.UpdatedAt = time.Now()
		return uc.orders.Update(ctx, o)
	})
	if err != nil {
		return nil, err
	}
	c, err := uc.customerOf(ctx, o)
	if err != nil {
		return nil, err
	}
	return ToOrderResponse(o, c), nil
}

func (uc *OrderUseCase) restock(ctx context.Context, o *entity.Order, userID string) error {
	for _, d := range o.Details {
		if err := uc.stock.Restock(ctx, d.ProductID, d.Quantity, o.Code, userID); err != nil {
			return err
		}
	}
	return nil
}

// Delete elimina un pedido sin pagos. Si la mercancía no salió (ni entregado ni cancelado) se repone.
func (uc *OrderUseCase) Delete(ctx context.Context, id, userID string) error {
	return uc.tx.Run(ctx, func(ctx context.Context) error {
		o, err := uc.orders.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if o == nil {
			return domain.ErrNotFound
		}
		has, err := uc.payments.HasPayments(ctx, repository.PaymentTarget{OrderID: id})
		if err != nil {
			return err
		}
		if has {
			return fmt.Errorf("el pedido tiene pagos registrados: %w", domain.ErrConflict)
		}
		if o.Status != entity.OrderDelivered && o.Status != entity.OrderCancelled {
			if err := uc.restock(ctx, o, userID); err != nil {
				return err
			}
		}
		return uc.orders.Delete(ctx, id)
	})
}

// Receipt comprobante PDF del pedido con su estado de pago.
func (uc *OrderUseCase) Receipt(ctx context.Context, id string) ([]byte, string, error) {
	o, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if o == nil {
		return nil, "", domain.ErrNotFound
	}
	c, err := uc.customerOf(ctx, o)
	if err != nil {
		return nil, "", err
	}
	summary, err := uc.payments.Summary(ctx, repository.PaymentTarget{OrderID: o.ID}, o.Amount)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.pdf.OrderReceiptPDF(ctx, ports.OrderReceipt{Order: o, Customer: c, Summary: summary})
	if err != nil {
		return nil, "", fmt.Errorf("generar comprobante: %w", err)
	}
	return pdf, o.Code + ".pdf", nil
}

// ToOrderResponse mapea el pedido y, si se conoce, su cliente.
func ToOrderResponse(o *entity.Order, c *entity.Customer) *dto.OrderResponse {
	details := make([]dto.OrderDetailResponse, 0, len(o.Details))
	for _, d := range o.Details {
		details = append(details, dto.OrderDetailResponse{
			ProductID:    d.ProductID,
			ProductName:  d.ProductName,
			ProductImage: d.ProductImage,
			ProductPrice: d.ProductPrice,
			Quantity:     d.Quantity,
			TotalPrice:   d.TotalPrice,
		})
	}
	return &dto.OrderResponse{
		ID:            o.ID,
		Code:          o.Code,
		Channel:       o.Channel,
		CustomerID:    o.CustomerID,
		Customer:      ToCustomerResponse(c),
		UserID:        o.UserID,
		Details:       details,
		Amount:        o.Amount,
		TransactionID: o.TransactionID,
		Address:       o.Address,
		Phone:         o.Phone,
		Status:        o.Status,
		PaymentStatus: o.PaymentStatus,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}
