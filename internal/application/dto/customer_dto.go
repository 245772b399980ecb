package dto

import "time"

// CustomerRequest alta o modificación de cliente desde el back-office.
type CustomerRequest struct {
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	TaxCode     string `json:"tax_code"`
}

// CustomerResponse salida de un cliente (sin hash de contraseña).
type CustomerResponse struct {
	ID           string     `json:"id"`
	FullName     string     `json:"full_name"`
	PhoneNumber  string     `json:"phone_number"`
	Email        string     `json:"email"`
	Address      string     `json:"address"`
	TaxCode      string     `json:"tax_code,omitempty"`
	IsRegistered bool       `json:"is_registered"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// CustomerListResponse lista paginada de clientes.
type CustomerListResponse struct {
	Items      []CustomerResponse `json:"items"`
	Pagination Pagination         `json:"pagination"`
}
