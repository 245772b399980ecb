package usecase

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/furnistore-api/internal/application/dto"
	"github.com/jhoicas/furnistore-api/internal/domain"
	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/jhoicas/furnistore-api/internal/domain/repository"
)

// CustomerUseCase gestión de clientes desde el back-office.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

func validateCustomer(in *dto.CustomerRequest) error {
	in.FullName = strings.TrimSpace(in.FullName)
	in.PhoneNumber = strings.TrimSpace(in.PhoneNumber)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Address = strings.TrimSpace(in.Address)
	in.TaxCode = strings.TrimSpace(in.TaxCode)
	switch {
	case in.FullName == "":
		return domain.Invalid("full_name", "es obligatorio")
	case in.PhoneNumber == "":
		return domain.Invalid("phone_number", "es obligatorio")
	case in.Email == "":
		return domain.Invalid("email", "es obligatorio")
	case in.Address == "":
		return domain.Invalid("address", "es obligatorio")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return domain.Invalid("email", "formato inválido")
	}
	return nil
}

// Create registra un cliente; userID es el usuario del back-office que lo crea.
func (uc *CustomerUseCase) Create(ctx context.Context, userID string, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	if err := validateCustomer(&in); err != nil {
		return nil, err
	}
	now := time.Now()
	c := &entity.Customer{
		ID:          uuid.NewString(),
		UserID:      userID,
		FullName:    in.FullName,
		PhoneNumber: in.PhoneNumber,
		Email:       in.Email,
		Address:     in.Address,
		TaxCode:     in.TaxCode,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return ToCustomerResponse(c), nil
}

// GetByID obtiene un cliente.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return ToCustomerResponse(c), nil
}

// Update modifica los datos de contacto; no toca credenciales.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	if err := validateCustomer(&in); err != nil {
		return nil, err
	}
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	c.FullName = in.FullName
	c.PhoneNumber = in.PhoneNumber
	c.Email = in.Email
	c.Address = in.Address
	c.TaxCode = in.TaxCode
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return ToCustomerResponse(c), nil
}

// Delete elimina un cliente.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// List lista clientes con búsqueda por nombre, teléfono o email.
func (uc *CustomerUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.CustomerListResponse, error) {
	page.Normalize(20, 100)
	list, total, err := uc.repo.List(ctx, strings.TrimSpace(page.Q), repository.Page{Limit: page.Limit, Offset: page.Offset()})
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *ToCustomerResponse(c))
	}
	return &dto.CustomerListResponse{Items: items, Pagination: dto.NewPagination(total, page.Page, page.Limit)}, nil
}

// ToCustomerResponse mapea el cliente sin exponer el hash de contraseña.
func ToCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:           c.ID,
		FullName:     c.FullName,
		PhoneNumber:  c.PhoneNumber,
		Email:        c.Email,
		Address:      c.Address,
		TaxCode:      c.TaxCode,
		IsRegistered: c.IsRegistered,
		LastLogin:    c.LastLogin,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
