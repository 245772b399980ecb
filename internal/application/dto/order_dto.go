package dto

import (
	"time"

	"github.com/jhoicas/furnistore-api/internal/domain/payment"
	"github.com/shopspring/decimal"
)

// OrderItemRequest producto y cantidad solicitados.
type OrderItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// InlineCustomerRequest cliente creado al vuelo en checkout o POS.
type InlineCustomerRequest struct {
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	TaxCode     string `json:"tax_code"`
}

// CheckoutRequest pedido desde la tienda.
type CheckoutRequest struct {
	Items         []OrderItemRequest     `json:"items"`
	Address       string                 `json:"address"`
	Phone         string                 `json:"phone"`
	TransactionID string                 `json:"transaction_id"`
	CustomerID    string                 `json:"customer_id"`
	Customer      *InlineCustomerRequest `json:"customer"`
}

// OrderStatusRequest cambio de estado.
type OrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderDetailResponse línea del pedido.
type OrderDetailResponse struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	ProductImage string          `json:"product_image,omitempty"`
	ProductPrice decimal.Decimal `json:"product_price"`
	Quantity     int             `json:"quantity"`
	TotalPrice   decimal.Decimal `json:"total_price"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID            string                `json:"id"`
	Code          string                `json:"code"`
	Channel       string                `json:"channel"`
	CustomerID    string                `json:"customer_id,omitempty"`
	Customer      *CustomerResponse     `json:"customer,omitempty"`
	UserID        string                `json:"user_id,omitempty"`
	Details       []OrderDetailResponse `json:"details"`
	Amount        decimal.Decimal       `json:"amount"`
	TransactionID string                `json:"transaction_id,omitempty"`
	Address       string                `json:"address"`
	Phone         string                `json:"phone"`
	Status        string                `json:"status"`
	PaymentStatus string                `json:"payment_status"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// OrderListResponse lista paginada de pedidos.
type OrderListResponse struct {
	Items      []OrderResponse `json:"items"`
	Pagination Pagination      `json:"pagination"`
}

// POSPaymentInfo datos opcionales del cobro en mostrador.
type POSPaymentInfo struct {
	PaymentDate *time.Time `json:"payment_date"`
	Note        string     `json:"note"`
}

// POSOrderRequest venta en mostrador.
type POSOrderRequest struct {
	Items         []OrderItemRequest     `json:"items"`
	CustomerID    string                 `json:"customer_id"`
	Customer      *InlineCustomerRequest `json:"customer"`
	PaymentMethod string                 `json:"payment_method"`
	Payment       POSPaymentInfo         `json:"payment"`
	Address       string                 `json:"address"`
	Phone         string                 `json:"phone"`
}

// POSOrderResponse resultado de la venta en mostrador.
type POSOrderResponse struct {
	Success        bool              `json:"success"`
	Order          OrderResponse     `json:"order"`
	Payment        PaymentResponse   `json:"payment"`
	PaymentSummary payment.Summary   `json:"payment_summary"`
	Customer       *CustomerResponse `json:"customer,omitempty"`
}
