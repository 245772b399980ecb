package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del pedido.
const (
	OrderNotProcessed = "Not processed"
	OrderProcessing   = "Processing"
	OrderShipped      = "Shipped"
	OrderDelivered    = "Delivered"
	OrderCancelled    = "Cancelled"
)

// Canales de venta.
const (
	ChannelWeb = "web"
	ChannelPOS = "pos"
)

// Estados de pago (pedidos y órdenes de compra).
const (
	PaymentUnpaid  = "Unpaid"
	PaymentPartial = "Partial"
	PaymentPaid    = "Paid"
)

// Order pedido de venta (tienda o POS). Details es una copia de los productos al momento de la compra.
type Order struct {
	ID            string          `bson:"_id"`
	Code          string          `bson:"code"` // ORD-YYYYMMDD-NNNN
	Channel       string          `bson:"channel"`
	CustomerID    string          `bson:"customer_id,omitempty"`
	UserID        string          `bson:"user_id,omitempty"`
	Details       []OrderDetail   `bson:"details"`
	Amount        decimal.Decimal `bson:"amount"`
	TransactionID string          `bson:"transaction_id,omitempty"`
	Address       string          `bson:"address"`
	Phone         string          `bson:"phone"`
	Status        string          `bson:"status"`
	PaymentStatus string          `bson:"payment_status"`
	CreatedAt     time.Time       `bson:"created_at"`
	UpdatedAt     time.Time       `bson:"updated_at"`
}

// OrderDetail línea del pedido.
type OrderDetail struct {
	ProductID    string          `bson:"product_id"`
	ProductName  string          `bson:"product_name"`
	ProductImage string          `bson:"product_image,omitempty"`
	ProductPrice decimal.Decimal `bson:"product_price"`
	Quantity     int             `bson:"quantity"`
	TotalPrice   decimal.Decimal `bson:"total_price"`
}

// IsValidOrderStatus indica si s es un estado de pedido conocido.
func IsValidOrderStatus(s string) bool {
	switch s {
	case OrderNotProcessed, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}
