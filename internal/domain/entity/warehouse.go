package entity

import "time"

// WarehouseRecord es la existencia y ubicación de un producto (un registro por producto).
type WarehouseRecord struct {
	ID          string    `bson:"_id"`
	ProductID   string    `bson:"product_id"`
	Quantity    int       `bson:"quantity"`
	Location    string    `bson:"location"`
	LastUpdated time.Time `bson:"last_updated"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}
