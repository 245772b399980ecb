package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/furnistore-api/internal/application/dto"
	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/jhoicas/furnistore-api/pkg/jwt"
)

// Locals keys con los claims del token en Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
	LocalKind   = "kind"
)

// bearerToken extrae el token del header Authorization. present=false si el header falta.
func bearerToken(c *fiber.Ctx) (token string, present bool, errCode, errMsg string) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", false, "MISSING_TOKEN", "Authorization header requerido"
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", true, "INVALID_TOKEN", "formato: Bearer <token>"
	}
	token = strings.TrimSpace(parts[1])
	if token == "" {
		return "", true, "MISSING_TOKEN", "token vacío"
	}
	return token, true, "", ""
}

func setClaims(c *fiber.Ctx, claims *jwt.Claims) {
	c.Locals(LocalUserID, claims.UserID)
	c.Locals(LocalRole, claims.Role)
	c.Locals(LocalKind, claims.Kind)
}

// AuthMiddleware valida el Bearer Token JWT y carga user_id, role y kind en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, _, code, msg := bearerToken(c)
		if code != "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: code, Message: msg})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		setClaims(c, claims)
		return c.Next()
	}
}

// OptionalAuth carga los claims si llega un token válido; sin token deja pasar como invitado.
// Un token presente pero inválido responde 401.
func OptionalAuth(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, present, code, msg := bearerToken(c)
		if !present {
			return c.Next()
		}
		if code != "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: code, Message: msg})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		setClaims(c, claims)
		return c.Next()
	}
}

// RequireRole autoriza solo los roles indicados. Debe ir después de AuthMiddleware.
//   - 401 MISSING_ROLE si el token no trae rol.
//   - 403 FORBIDDEN si el rol no está permitido.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no incluye rol"})
		}
		if _, ok := allowed[role]; !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para este recurso"})
		}
		return c.Next()
	}
}

// RequireStaff atajo para rutas del back-office (admin o staff).
func RequireStaff() fiber.Handler {
	return RequireRole(entity.RoleAdmin, entity.RoleStaff)
}

// CustomerAuthMiddleware exige un token de cliente de la tienda (kind=customer).
func CustomerAuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, _, code, msg := bearerToken(c)
		if code != "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: code, Message: msg})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		if claims.Kind != jwt.KindCustomer {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "se requiere sesión de cliente"})
		}
		setClaims(c, claims)
		return c.Next()
	}
}

// GetUserID devuelve el sujeto del token (usuario o cliente).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetRole devuelve el rol del token.
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}

// GetKind devuelve el tipo de sujeto del token (staff | customer).
func GetKind(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalKind).(string)
	return s
}

// IsStaff indica si la petición viene del back-office.
func IsStaff(c *fiber.Ctx) bool {
	return GetKind(c) == jwt.KindStaff && (GetRole(c) == entity.RoleAdmin || GetRole(c) == entity.RoleStaff)
}

// GetCustomerID devuelve el id del cliente cuando el token es de cliente.
func GetCustomerID(c *fiber.Ctx) string {
	if GetKind(c) != jwt.KindCustomer {
		return ""
	}
	return GetUserID(c)
}
