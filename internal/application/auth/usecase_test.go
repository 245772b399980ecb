package auth_test

import (
	"context"
	"testing"

	"github.com/jhoicas/furnistore-api/internal/application/auth"
	"github.com/jhoicas/furnistore-api/internal/application/dto"
	"github.com/jhoicas/furnistore-api/internal/domain"
	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/jhoicas/furnistore-api/internal/infrastructure/memory"
	"github.com/jhoicas/furnistore-api/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

var jwtCfg = auth.JWTConfig{Secret: secret, ExpMinutes: 60, CustomerExpMinutes: 120, Issuer: "furnistore"}

func TestRegisterUser_PrimerUsuarioYLuegoSoloAdmin(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRegistry(memory.NewStore())
	uc := auth.NewAuthUseCase(repo.Users, jwtCfg)

	// sin admins cualquiera puede registrar
	u, err := uc.RegisterUser(ctx, "", dto.RegisterRequest{Email: "Jefe@Tienda.vn", Password: "12345678", Role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, "jefe@tienda.vn", u.Email)
	assert.Equal(t, entity.RoleAdmin, u.Role)

	_, err = uc.RegisterUser(ctx, entity.RoleStaff, dto.RegisterRequest{Email: "b@tienda.vn", Password: "12345678"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	staff, err := uc.RegisterUser(ctx, entity.RoleAdmin, dto.RegisterRequest{Email: "b@tienda.vn", Password: "12345678"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStaff, staff.Role)

	_, err = uc.RegisterUser(ctx, entity.RoleAdmin, dto.RegisterRequest{Email: "b@tienda.vn", Password: "12345678"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	_, err = uc.RegisterUser(ctx, entity.RoleAdmin, dto.RegisterRequest{Email: "c@tienda.vn", Password: "corta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RegisterUser(ctx, entity.RoleAdmin, dto.RegisterRequest{Email: "c@tienda.vn", Password: "12345678", Role: "root"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_TokenDePersonal(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRegistry(memory.NewStore())
	uc := auth.NewAuthUseCase(repo.Users, jwtCfg)
	_, err := uc.CreateAdmin(ctx, "admin@tienda.vn", "12345678", "Admin")
	require.NoError(t, err)

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "admin@tienda.vn", Password: "12345678"})
	require.NoError(t, err)
	claims, err := jwt.Parse(secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, claims.UserID)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
	assert.Equal(t, jwt.KindStaff, claims.Kind)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "admin@tienda.vn", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@tienda.vn", Password: "12345678"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	users, err := uc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestCustomerSignup_ConvierteInvitado(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRegistry(memory.NewStore())
	uc := auth.NewCustomerAuthUseCase(repo.Customers, jwtCfg)
	require.NoError(t, repo.Customers.Create(ctx, &entity.Customer{ID: "guest-1", FullName: "Invitado", Email: "ana@x.vn", Address: "Hà Nội"}))

	out, err := uc.Signup(ctx, dto.CustomerSignupRequest{FullName: "Ana", Email: "ana@x.vn", Password: "12345678", PhoneNumber: "0900"})
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, "guest-1", out.Customer.ID)
	assert.True(t, out.Customer.IsRegistered)
	assert.Equal(t, "Hà Nội", out.Customer.Address)

	claims, err := jwt.Parse(secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, jwt.KindCustomer, claims.Kind)
	assert.Equal(t, entity.RoleCustomer, claims.Role)

	_, err = uc.Signup(ctx, dto.CustomerSignupRequest{FullName: "Ana", Email: "ana@x.vn", Password: "12345678", PhoneNumber: "0900"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestCustomerSignin(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRegistry(memory.NewStore())
	uc := auth.NewCustomerAuthUseCase(repo.Customers, jwtCfg)
	require.NoError(t, repo.Customers.Create(ctx, &entity.Customer{ID: "guest-1", FullName: "Invitado", Email: "guest@x.vn"}))

	// invitado sin contraseña
	_, err := uc.Signin(ctx, dto.LoginRequest{Email: "guest@x.vn", Password: "12345678"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Signup(ctx, dto.CustomerSignupRequest{FullName: "Bình", Email: "binh@x.vn", Password: "12345678", PhoneNumber: "1"})
	require.NoError(t, err)
	out, err := uc.Signin(ctx, dto.LoginRequest{Email: "BINH@x.vn", Password: "12345678"})
	require.NoError(t, err)
	require.NotNil(t, out.Customer.LastLogin)

	profile, err := uc.Profile(ctx, out.Customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bình", profile.FullName)

	_, err = uc.Signin(ctx, dto.LoginRequest{Email: "binh@x.vn", Password: "mala-clave"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
