package entity

import "time"

// GuestEmail se usa cuando el pedido crea un cliente sin email.
const GuestEmail = "guest@example.com"

// Customer representa un cliente: invitado creado en checkout/POS o registrado en la tienda.
type Customer struct {
	ID           string     `bson:"_id"`
	UserID       string     `bson:"user_id,omitempty"` // personal que lo creó
	FullName     string     `bson:"full_name"`
	PhoneNumber  string     `bson:"phone_number"`
	Email        string     `bson:"email"`
	Address      string     `bson:"address"`
	TaxCode      string     `bson:"tax_code,omitempty"`
	PasswordHash string     `bson:"password_hash,omitempty"` // solo clientes registrados
	IsRegistered bool       `bson:"is_registered"`
	LastLogin    *time.Time `bson:"last_login,omitempty"`
	CreatedAt    time.Time  `bson:"created_at"`
	UpdatedAt    time.Time  `bson:"updated_at"`
}
