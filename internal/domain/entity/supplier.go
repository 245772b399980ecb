package entity

import "time"

// Supplier proveedor de mercancía.
type Supplier struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Phone     string    `bson:"phone"`
	Email     string    `bson:"email"`
	Address   string    `bson:"address"`
	TaxCode   string    `bson:"tax_code,omitempty"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}
