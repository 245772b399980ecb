package entity

import "time"

// Roles del personal de back-office.
const (
	RoleAdmin    = "admin"
	RoleStaff    = "staff"
	RoleCustomer = "CUSTOMER" // rol del token de cliente, no se persiste en users
)

// Estados de usuario.
const (
	UserActive   = "active"
	UserInactive = "inactive"
)

// User representa un usuario del back-office.
type User struct {
	ID           string    `bson:"_id"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"` // bcrypt
	Name         string    `bson:"name"`
	Role         string    `bson:"role"`
	Status       string    `bson:"status"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}
