package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de la orden de compra.
const (
	PurchasePending   = "Pending"
	PurchaseCompleted = "Completed"
	PurchaseCancelled = "Cancelled"
)

// Estados de bodega de la orden de compra.
const (
	WarehouseNotReceived = "NotReceived"
	WarehouseReceived    = "Received"
)

// PurchaseOrder pedido a proveedor para reponer inventario.
type PurchaseOrder struct {
	ID              string                `bson:"_id"`
	Code            string                `bson:"code"` // PO-YYYYMMDD-NNNN
	SupplierID      string                `bson:"supplier_id"`
	Details         []PurchaseOrderDetail `bson:"details"`
	TotalAmount     decimal.Decimal       `bson:"total_amount"`
	Status          string                `bson:"status"`
	WarehouseStatus string                `bson:"warehouse_status"`
	PaymentStatus   string                `bson:"payment_status"`
	ReceivedAt      *time.Time            `bson:"received_at,omitempty"`
	CreatedBy       string                `bson:"created_by,omitempty"`
	CreatedAt       time.Time             `bson:"created_at"`
	UpdatedAt       time.Time             `bson:"updated_at"`
}

// PurchaseOrderDetail línea de la orden de compra (copia del producto).
type PurchaseOrderDetail struct {
	ProductID    string          `bson:"product_id"`
	ProductName  string          `bson:"product_name"`
	ProductImage string          `bson:"product_image,omitempty"`
	ProductPrice decimal.Decimal `bson:"product_price"` // costo unitario pactado
	Quantity     int             `bson:"quantity"`
	TotalPrice   decimal.Decimal `bson:"total_price"`
}
