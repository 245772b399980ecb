package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// WarehouseUpsertRequest crea o modifica el registro de bodega de un producto.
type WarehouseUpsertRequest struct {
	ProductID string `json:"product"`
	Quantity  *int   `json:"quantity"`
	Location  string `json:"location"`
}

// WarehouseAdjustRequest ajuste relativo de existencia.
type WarehouseAdjustRequest struct {
	ProductID string `json:"product"`
	Delta     int    `json:"delta"`
	Notes     string `json:"notes"`
}

// ProductSummary resumen de producto embebido en otras respuestas.
type ProductSummary struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	SKU      string          `json:"sku"`
	Image    string          `json:"image,omitempty"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// WarehouseRecordResponse registro de bodega con resumen del producto.
type WarehouseRecordResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	Product     *ProductSummary `json:"product,omitempty"`
	Quantity    int             `json:"quantity"`
	Location    string          `json:"location"`
	LastUpdated time.Time       `json:"last_updated"`
}

// StockMovementResponse línea del historial.
type StockMovementResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"`
	Balance   int       `json:"balance"`
	Reference string    `json:"reference,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedBy string    `json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// StockMovementListResponse historial paginado.
type StockMovementListResponse struct {
	Items      []StockMovementResponse `json:"items"`
	Pagination Pagination              `json:"pagination"`
}

// LowStockItemDTO producto bajo el nivel de reorden.
type LowStockItemDTO struct {
	ProductID         string          `json:"product_id"`
	SKU               string          `json:"sku"`
	ProductName       string          `json:"product_name"`
	CurrentStock      int             `json:"current_stock"`
	ReorderLevel      int             `json:"reorder_level"`
	SuggestedOrderQty int             `json:"suggested_order_qty"`
	UnitCost          decimal.Decimal `json:"unit_cost"`
	EstimatedCost     decimal.Decimal `json:"estimated_cost"`
	Location          string          `json:"location,omitempty"`
}
