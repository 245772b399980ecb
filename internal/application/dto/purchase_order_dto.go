package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseItemRequest línea de la orden de compra.
type PurchaseItemRequest struct {
	ProductID string          `json:"product"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// InitialPaymentRequest pago inicial al crear la orden de compra.
type InitialPaymentRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	PaymentDate   *time.Time      `json:"payment_date"`
	Note          string          `json:"note"`
}

// PurchaseOrderRequest alta o modificación de orden de compra.
type PurchaseOrderRequest struct {
	SupplierID  string                 `json:"supplier"`
	Items       []PurchaseItemRequest  `json:"items"`
	TotalAmount *decimal.Decimal       `json:"total_amount"`
	Payment     *InitialPaymentRequest `json:"payment"`
}

// PurchaseOrderDetailResponse línea de la orden de compra.
type PurchaseOrderDetailResponse struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	ProductImage string          `json:"product_image,omitempty"`
	ProductPrice decimal.Decimal `json:"product_price"`
	Quantity     int             `json:"quantity"`
	TotalPrice   decimal.Decimal `json:"total_price"`
}

// PurchaseOrderResponse salida de una orden de compra.
type PurchaseOrderResponse struct {
	ID              string                        `json:"id"`
	Code            string                        `json:"code"`
	SupplierID      string                        `json:"supplier_id"`
	Supplier        *SupplierResponse             `json:"supplier,omitempty"`
	Details         []PurchaseOrderDetailResponse `json:"details"`
	TotalAmount     decimal.Decimal               `json:"total_amount"`
	TotalPaid       decimal.Decimal               `json:"total_paid"`
	Status          string                        `json:"status"`
	WarehouseStatus string                        `json:"warehouse_status"`
	PaymentStatus   string                        `json:"payment_status"`
	ReceivedAt      *time.Time                    `json:"received_at,omitempty"`
	CreatedAt       time.Time                     `json:"created_at"`
	UpdatedAt       time.Time                     `json:"updated_at"`
}

// PurchaseOrderListResponse lista paginada.
type PurchaseOrderListResponse struct {
	Items      []PurchaseOrderResponse `json:"items"`
	Pagination Pagination              `json:"pagination"`
}
