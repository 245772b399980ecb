package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/furnistore-api/internal/application/auth"
	"github.com/jhoicas/furnistore-api/internal/application/dto"
)

// AuthHandler maneja registro y login del personal.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuario del back-office
// @Description  Una vez existe un admin, solo un token admin puede registrar usuarios.
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "name, email, password, role"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Email == "" || in.Password == "" {
		return badRequest(c, "VALIDATION", "email y password son requeridos")
	}
	user, err := h.uc.RegisterUser(c.UserContext(), GetRole(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login godoc
// @Summary      Iniciar sesión (personal)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Email == "" || in.Password == "" {
		return badRequest(c, "VALIDATION", "email y password son requeridos")
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Users godoc
// @Summary      Listar usuarios del back-office
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.UserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/auth/users [get]
func (h *AuthHandler) Users(c *fiber.Ctx) error {
	out, err := h.uc.ListUsers(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Me godoc
// @Summary      Usuario autenticado
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(c.UserContext(), GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// CustomerAuthHandler registro e inicio de sesión de clientes de la tienda.
type CustomerAuthHandler struct {
	uc *auth.CustomerAuthUseCase
}

// NewCustomerAuthHandler construye el handler.
func NewCustomerAuthHandler(uc *auth.CustomerAuthUseCase) *CustomerAuthHandler {
	return &CustomerAuthHandler{uc: uc}
}

// Signup godoc
// @Summary      Registro de cliente
// @Description  Un cliente invitado con el mismo email se convierte en registrado.
// @Tags         customer-auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CustomerSignupRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.CustomerAuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/customer/signup [post]
func (h *CustomerAuthHandler) Signup(c *fiber.Ctx) error {
	var in dto.CustomerSignupRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Signup(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Signin godoc
// @Summary      Inicio de sesión de cliente
// @Tags         customer-auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.CustomerAuthResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/customer/signin [post]
func (h *CustomerAuthHandler) Signin(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Email == "" || in.Password == "" {
		return badRequest(c, "VALIDATION", "email y password son requeridos")
	}
	out, err := h.uc.Signin(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Profile godoc
// @Summary      Perfil del cliente autenticado
// @Tags         customer-auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CustomerResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/customer/profile [get]
func (h *CustomerAuthHandler) Profile(c *fiber.Ctx) error {
	out, err := h.uc.Profile(c.UserContext(), GetCustomerID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
