package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	TodaySales   decimal.Decimal `json:"today_sales"`
	TodayOrders  int64           `json:"today_orders"`
	MonthlySales decimal.Decimal `json:"monthly_sales"`
	MonthOrders  int64           `json:"month_orders"`

	// Flujo de caja del mes
	CashIn      decimal.Decimal `json:"cash_in"`
	CashOut     decimal.Decimal `json:"cash_out"`
	CashBalance decimal.Decimal `json:"cash_balance"`

	LowStockCount int             `json:"low_stock_count"`
	TopProducts   []TopProductDTO `json:"top_products"`

	DateLabel string `json:"date_label"` // ej: "03/2026"
}

// TopProductDTO producto más vendido.
type TopProductDTO struct {
	ProductID string          `json:"product_id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Sold      int             `json:"sold"`
	Revenue   decimal.Decimal `json:"revenue"` // sold * precio con descuento vigente
}
