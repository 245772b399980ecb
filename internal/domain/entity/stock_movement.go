package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIn     = "IN"         // recepción de orden de compra
	MovementTypeOut    = "OUT"        // venta web o POS
	MovementTypeAdjust = "ADJUSTMENT" // ajuste manual de bodega
	MovementTypeReturn = "RETURN"     // devolución por cancelación de pedido
)

// StockMovement es una línea del historial de existencias de un producto.
type StockMovement struct {
	ID        string    `bson:"_id"`
	ProductID string    `bson:"product_id"`
	Type      string    `bson:"type"`
	Quantity  int       `bson:"quantity"`            // con signo: negativo para salidas
	Balance   int       `bson:"balance"`             // existencia después del movimiento
	Reference string    `bson:"reference,omitempty"` // código de pedido u orden de compra
	Notes     string    `bson:"notes,omitempty"`
	CreatedBy string    `bson:"created_by,omitempty"`
	CreatedAt time.Time `bson:"created_at"`
}
