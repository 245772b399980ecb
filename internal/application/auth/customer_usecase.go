package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/furnistore-api/internal/application/dto"
	"github.com/jhoicas/furnistore-api/internal/application/usecase"
	"github.com/jhoicas/furnistore-api/internal/domain"
	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/jhoicas/furnistore-api/internal/domain/repository"
	"github.com/jhoicas/furnistore-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// CustomerAuthUseCase registro e inicio de sesión de clientes de la tienda.
type CustomerAuthUseCase struct {
	customers repository.CustomerRepository
	jwtCfg    JWTConfig
}

// NewCustomerAuthUseCase construye el caso de uso.
func NewCustomerAuthUseCase(customers repository.CustomerRepository, jwtCfg JWTConfig) *CustomerAuthUseCase {
	return &CustomerAuthUseCase{customers: customers, jwtCfg: jwtCfg}
}

// Signup registra al cliente. Un cliente invitado con el mismo email se convierte en registrado.
func (uc *CustomerAuthUseCase) Signup(ctx context.Context, in dto.CustomerSignupRequest) (*dto.CustomerAuthResponse, error) {
	email, err := validateCredentials(in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.FullName)
	phone := strings.TrimSpace(in.PhoneNumber)
	if name == "" {
		return nil, domain.Invalid("full_name", "es obligatorio")
	}
	if phone == "" {
		return nil, domain.Invalid("phone_number", "es obligatorio")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	c, err := uc.customers.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	switch {
	case c != nil && c.IsRegistered:
		return nil, domain.ErrEmailAlreadyExists
	case c != nil:
		c.FullName = name
		c.PhoneNumber = phone
		if addr := strings.TrimSpace(in.Address); addr != "" {
			c.Address = addr
		}
		c.PasswordHash = string(hash)
		c.IsRegistered = true
		c.LastLogin = &now
		c.UpdatedAt = now
		if err := uc.customers.Update(ctx, c); err != nil {
			return nil, err
		}
	default:
		c = &entity.Customer{
			ID:           uuid.NewString(),
			FullName:     name,
			PhoneNumber:  phone,
			Email:        email,
			Address:      strings.TrimSpace(in.Address),
			PasswordHash: string(hash),
			IsRegistered: true,
			LastLogin:    &now,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := uc.customers.Create(ctx, c); err != nil {
			return nil, err
		}
	}
	return uc.issue(c)
}

// Signin valida credenciales de un cliente registrado y actualiza lastLogin.
func (uc *CustomerAuthUseCase) Signin(ctx context.Context, in dto.LoginRequest) (*dto.CustomerAuthResponse, error) {
	c, err := uc.customers.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if c == nil || !c.IsRegistered || c.PasswordHash == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	now := time.Now()
	c.LastLogin = &now
	c.UpdatedAt = now
	if err := uc.customers.Update(ctx, c); err != nil {
		return nil, err
	}
	return uc.issue(c)
}

// Profile perfil del cliente autenticado.
func (uc *CustomerAuthUseCase) Profile(ctx context.Context, customerID string) (*dto.CustomerResponse, error) {
	c, err := uc.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return usecase.ToCustomerResponse(c), nil
}

func (uc *CustomerAuthUseCase) issue(c *entity.Customer) (*dto.CustomerAuthResponse, error) {
	exp := uc.jwtCfg.CustomerExpMinutes
	if exp <= 0 {
		exp = uc.jwtCfg.ExpMinutes
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, c.ID, entity.RoleCustomer, jwt.KindCustomer, uc.jwtCfg.Issuer, exp)
	if err != nil {
		return nil, err
	}
	return &dto.CustomerAuthResponse{Success: true, Token: token, Customer: *usecase.ToCustomerResponse(c)}, nil
}
