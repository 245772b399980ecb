package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/furnistore-api/internal/application/dto"
	"github.com/jhoicas/furnistore-api/internal/application/usecase"
	"github.com/jhoicas/furnistore-api/internal/domain"
)

// OrderHandler pedidos de la tienda y del mostrador.
type OrderHandler struct {
	uc  *usecase.OrderUseCase
	pos *usecase.POSUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase, pos *usecase.POSUseCase) *OrderHandler {
	return &OrderHandler{uc: uc, pos: pos}
}

// Checkout godoc
// @Summary      Crear pedido desde la tienda
// @Description  Token opcional: con token de cliente el pedido queda a su nombre; sin token se acepta invitado.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "items, address, phone, customer"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/order/checkout [post]
func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	staffID := ""
	if IsStaff(c) {
		staffID = GetUserID(c)
	}
	out, err := h.uc.Checkout(c.UserContext(), GetCustomerID(c), staffID, in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar pedidos
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        page    query  int     false  "Página"  default(1)
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        q       query  string  false  "Transacción, código o nombre del cliente"
// @Param        status  query  string  false  "Estado"
// @Success      200     {object}  dto.OrderListResponse
// @Router       /api/order [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), pageQuery(c), c.Query("status"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// My godoc
// @Summary      Pedidos del cliente autenticado
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        page   query  int  false  "Página"  default(1)
// @Param        limit  query  int  false  "Límite"  default(20)
// @Success      200    {object}  dto.OrderListResponse
// @Router       /api/order/my [get]
func (h *OrderHandler) My(c *fiber.Ctx) error {
	out, err := h.uc.ListByCustomer(c.UserContext(), GetCustomerID(c), pageQuery(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// ByUser godoc
// @Summary      Pedidos registrados por un usuario del back-office
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        userId  path   string  true   "ID del usuario"
// @Param        page    query  int     false  "Página"  default(1)
// @Param        limit   query  int     false  "Límite"  default(20)
// @Success      200     {object}  dto.OrderListResponse
// @Router       /api/order/user/{userId} [get]
func (h *OrderHandler) ByUser(c *fiber.Ctx) error {
	out, err := h.uc.ListByUser(c.UserContext(), c.Params("userId"), pageQuery(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// load pedido visible para el solicitante: el personal ve todos, el cliente solo los suyos.
func (h *OrderHandler) load(c *fiber.Ctx) (*dto.OrderResponse, error) {
	if IsStaff(c) {
		return h.uc.GetByID(c.UserContext(), c.Params("id"))
	}
	customerID := GetCustomerID(c)
	if customerID == "" {
		return nil, domain.ErrForbidden
	}
	return h.uc.GetForCustomer(c.UserContext(), c.Params("id"), customerID)
}

// GetByID godoc
// @Summary      Obtener pedido
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/order/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.load(c)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado del pedido
// @Description  Un pedido entregado o cancelado no cambia; cancelar devuelve el stock.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del pedido"
// @Param        body  body  dto.OrderStatusRequest  true  "status"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/order/{id}/status [put]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.OrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), c.Params("id"), GetUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar pedido
// @Description  Rechazado si el pedido tiene pagos.
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/order/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id"), GetUserID(c)); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "pedido eliminado"})
}

// Receipt godoc
// @Summary      Comprobante PDF del pedido
// @Tags         orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/order/{id}/receipt.pdf [get]
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	if _, err := h.load(c); err != nil {
		return fail(c, err)
	}
	pdf, filename, err := h.uc.Receipt(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return sendPDF(c, pdf, filename)
}

// POSCreate godoc
// @Summary      Venta en mostrador
// @Description  Crea el pedido entregado, descuenta stock y registra el pago completo en una transacción.
// @Tags         pos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.POSOrderRequest  true  "items, cliente, payment_method"
// @Success      201   {object}  dto.POSOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pos/order [post]
func (h *OrderHandler) POSCreate(c *fiber.Ctx) error {
	var in dto.POSOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.pos.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func sendPDF(c *fiber.Ctx, pdf []byte, filename string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(pdf)
}
