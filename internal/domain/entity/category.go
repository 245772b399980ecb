package entity

import "time"

// Estados de categoría.
const (
	CategoryActive   = "active"
	CategoryInactive = "inactive"
)

// Category agrupa productos del catálogo (sofás, mesas, camas...).
type Category struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	Description string    `bson:"description"`
	Image       string    `bson:"image"`
	Status      string    `bson:"status"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}
