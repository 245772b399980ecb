package auth

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
	"github.com/jhoicas/furnistore-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 8

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret             string
	ExpMinutes         int
	CustomerExpMinutes int
	Issuer             string
}

// AuthUseCase casos de uso de autenticación del personal: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

func validateCredentials(email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil || email == "" {
		return "", domain.Invalid("email", "formato inválido")
	}
	if len(password) < minPasswordLen {
		return "", domain.Invalid("password", "mínimo 8 caracteres")
	}
	return email, nil
}

// RegisterUser crea un usuario del back-office: hashea password con bcrypt y persiste.
// Una vez existe un admin, solo un admin (actorRole) puede registrar usuarios.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, actorRole string, in dto.RegisterRequest) (*dto.UserResponse, error) {
	admins, err := uc.userRepo.CountByRole(ctx, entity.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if admins > 0 && actorRole != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return uc.create(ctx, in)
}

// CreateAdmin alta directa de un administrador (arranque desde la CLI).
func (uc *AuthUseCase) CreateAdmin(ctx context.Context, email, password, name string) (*dto.UserResponse, error) {
	return uc.create(ctx, dto.RegisterRequest{Email: email, Password: password, Name: name, Role: entity.RoleAdmin})
}

func (uc *AuthUseCase) create(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	email, err := validateCredentials(in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	role := strings.ToLower(strings.TrimSpace(in.Role))
	switch role {
	case "":
		role = entity.RoleStaff
	case entity.RoleAdmin, entity.RoleStaff:
	default:
		return nil, domain.Invalid("role", "debe ser admin o staff")
	}
	existing, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		Status:       entity.UserActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != entity.UserActive {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, jwt.KindStaff, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// Me usuario autenticado.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// ListUsers usuarios del back-office.
func (uc *AuthUseCase) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
