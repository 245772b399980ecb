package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/furnistore-api/internal/application/dto"
	"github.com/jhoicas/furnistore-api/internal/application/inventory"
	"github.com/jhoicas/furnistore-api/internal/application/usecase"
)

// WarehouseHandler existencias por producto, movimientos y reposición.
type WarehouseHandler struct {
	uc            *usecase.WarehouseUseCase
	replenishment *inventory.ReplenishmentUseCase
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(uc *usecase.WarehouseUseCase, replenishment *inventory.ReplenishmentUseCase) *WarehouseHandler {
	return &WarehouseHandler{uc: uc, replenishment: replenishment}
}

// List godoc
// @Summary      Listar registros de bodega
// @Tags         warehouse
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.WarehouseRecordResponse
// @Router       /api/warehouse [get]
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetByProduct godoc
// @Summary      Registro de bodega de un producto
// @Tags         warehouse
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200        {object}  dto.WarehouseRecordResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Router       /api/warehouse/product/{productId} [get]
func (h *WarehouseHandler) GetByProduct(c *fiber.Ctx) error {
	out, err := h.uc.GetByProduct(c.UserContext(), c.Params("productId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Upsert godoc
// @Summary      Crear o modificar registro de bodega
// @Description  Fija ubicación y, si se indica, la cantidad absoluta (registra movimiento ADJUST).
// @Tags         warehouse
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WarehouseUpsertRequest  true  "product, quantity, location"
// @Success      200   {object}  dto.WarehouseRecordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/warehouse/upsert [post]
func (h *WarehouseHandler) Upsert(c *fiber.Ctx) error {
	var in dto.WarehouseUpsertRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Upsert(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Adjust godoc
// @Summary      Ajustar existencia
// @Description  Incremento atómico; rechaza dejar la existencia negativa.
// @Tags         warehouse
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WarehouseAdjustRequest  true  "product, delta, notes"
// @Success      200   {object}  dto.WarehouseRecordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/warehouse/adjust [post]
func (h *WarehouseHandler) Adjust(c *fiber.Ctx) error {
	var in dto.WarehouseAdjustRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Adjust(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Movements godoc
// @Summary      Movimientos de stock de un producto
// @Tags         warehouse
// @Security     Bearer
// @Produce      json
// @Param        productId  path   string  true   "ID del producto"
// @Param        page       query  int     false  "Página"  default(1)
// @Param        limit      query  int     false  "Límite"  default(20)
// @Success      200        {object}  dto.StockMovementListResponse
// @Router       /api/warehouse/product/{productId}/movements [get]
func (h *WarehouseHandler) Movements(c *fiber.Ctx) error {
	out, err := h.uc.Movements(c.UserContext(), c.Params("productId"), pageQuery(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Productos bajo el nivel de reorden
// @Tags         warehouse
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LowStockItemDTO
// @Router       /api/warehouse/low-stock [get]
func (h *WarehouseHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.replenishment.LowStock(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
