package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/jhoicas/furnistore-api/internal/application/ports"
	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/jhoicas/furnistore-api/internal/domain/payment"
	"github.com/jhoicas/furnistore-api/pkg/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var store = config.StoreConfig{Name: "Furnistore", Address: "12 Lê Lợi, Q1", Phone: "028 1234", Email: "ventas@furnistore.vn"}

func TestOrderReceiptPDF(t *testing.T) {
	g := NewMarotoPDFGenerator(store)
	o := &entity.Order{
		ID:        "o1",
		Code:      "ORD-20260315-0001",
		Status:    entity.OrderDelivered,
		CreatedAt: time.Now(),
		Details: []entity.OrderDetail{
			{ProductName: "Sofá roble", ProductPrice: decimal.NewFromInt(1500000), Quantity: 2, TotalPrice: decimal.NewFromInt(3000000)},
		},
		Amount: decimal.NewFromInt(3000000),
	}
	summary := payment.Summarize(o.Amount, decimal.NewFromInt(1000000))

	out, err := g.OrderReceiptPDF(context.Background(), ports.OrderReceipt{Order: o, Summary: summary})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))

	out, err = g.OrderReceiptPDF(context.Background(), ports.OrderReceipt{
		Order:    o,
		Customer: &entity.Customer{FullName: "Ana", Email: "ana@x.vn", PhoneNumber: "0900"},
		Summary:  summary,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestPurchaseOrderPDF_SinProveedor(t *testing.T) {
	g := NewMarotoPDFGenerator(store)
	po := &entity.PurchaseOrder{
		ID:              "po1",
		Code:            "PO-20260315-0001",
		Status:          entity.PurchasePending,
		WarehouseStatus: entity.WarehouseNotReceived,
		CreatedAt:       time.Now(),
		TotalAmount:     decimal.NewFromInt(500000),
	}
	out, err := g.PurchaseOrderPDF(context.Background(), ports.PurchaseOrderDocument{
		PurchaseOrder: po,
		Summary:       payment.Summarize(po.TotalAmount, decimal.Zero),
	})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestVND(t *testing.T) {
	assert.Equal(t, "1.250.000 VND", vnd(decimal.NewFromInt(1250000)))
	assert.Equal(t, "a | c", joinNonEmpty(" | ", "a", " ", "c"))
}
