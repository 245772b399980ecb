package ports

import (
	"context"

	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/jhoicas/furnistore-api/internal/domain/payment"
)

// OrderReceipt datos necesarios para imprimir el comprobante de un pedido.
type OrderReceipt struct {
	Order    *entity.Order
	Customer *entity.Customer // nil para pedidos de invitado sin datos
	Summary  payment.Summary
}

// PurchaseOrderDocument datos necesarios para imprimir una orden de compra.
type PurchaseOrderDocument struct {
	PurchaseOrder *entity.PurchaseOrder
	Supplier      *entity.Supplier
	Summary       payment.Summary
}

// PDFGenerator genera documentos imprimibles.
type PDFGenerator interface {
	OrderReceiptPDF(ctx context.Context, r OrderReceipt) ([]byte, error)
	PurchaseOrderPDF(ctx context.Context, d PurchaseOrderDocument) ([]byte, error)
}
