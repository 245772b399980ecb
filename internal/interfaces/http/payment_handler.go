package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/furnistore-api/internal/application/dto"
	"github.com/jhoicas/furnistore-api/internal/application/payments"
	"github.com/jhoicas/furnistore-api/internal/application/usecase"
)

// HeaderIdempotencyKey header opcional para reintentos seguros de POST /api/payments.
const HeaderIdempotencyKey = "Idempotency-Key"

// PaymentHandler pagos de pedidos y órdenes de compra.
type PaymentHandler struct {
	svc *payments.Service
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(svc *payments.Service) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

// Create godoc
// @Summary      Registrar pago
// @Description  Con Idempotency-Key, un reintento con los mismos datos devuelve el pago original (200, replayed=true).
// @Tags         payments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header  string                    false  "Clave de idempotencia"
// @Param        body             body    dto.CreatePaymentRequest  true   "order | purchase_order, payment_method, amount"
// @Success      201  {object}  dto.PaymentResultResponse
// @Success      200  {object}  dto.PaymentResultResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/payments [post]
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if key := strings.TrimSpace(c.Get(HeaderIdempotencyKey)); key != "" {
		in.IdempotencyKey = key
	}
	out, err := h.svc.Create(c.UserContext(), in, GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	if out.Replayed {
		return c.JSON(out)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Modificar pago
// @Tags         payments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del pago"
// @Param        body  body  dto.UpdatePaymentRequest  true  "payment_method, amount, payment_date, note"
// @Success      200   {object}  dto.PaymentResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/payments/{id} [put]
func (h *PaymentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.svc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar pago
// @Description  Elimina también el asiento de caja y recalcula el estado de pago del documento.
// @Tags         payments
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pago"
// @Success      200  {object}  payment.Summary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payments/{id} [delete]
func (h *PaymentHandler) Delete(c *fiber.Ctx) error {
	summary, err := h.svc.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(summary)
}

// ByOrder godoc
// @Summary      Pagos de un pedido
// @Tags         payments
// @Security     Bearer
// @Produce      json
// @Param        orderId  path   string  true   "ID del pedido"
// @Param        page     query  int     false  "Página"  default(1)
// @Param        limit    query  int     false  "Límite"  default(10)
// @Param        q        query  string  false  "Nota o método"
// @Success      200      {object}  dto.PaymentListResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/payments/order/{orderId} [get]
func (h *PaymentHandler) ByOrder(c *fiber.Ctx) error {
	out, err := h.svc.ListByOrder(c.UserContext(), c.Params("orderId"), pageQuery(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// ByPurchaseOrder godoc
// @Summary      Pagos de una orden de compra
// @Tags         payments
// @Security     Bearer
// @Produce      json
// @Param        purchaseOrderId  path   string  true   "ID de la orden de compra"
// @Param        page             query  int     false  "Página"  default(1)
// @Param        limit            query  int     false  "Límite"  default(10)
// @Param        q                query  string  false  "Nota o método"
// @Success      200              {object}  dto.PaymentListResponse
// @Failure      404              {object}  dto.ErrorResponse
// @Router       /api/payments/purchase-order/{purchaseOrderId} [get]
func (h *PaymentHandler) ByPurchaseOrder(c *fiber.Ctx) error {
	out, err := h.svc.ListByPurchaseOrder(c.UserContext(), c.Params("purchaseOrderId"), pageQuery(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// CashbookHandler libro de caja.
type CashbookHandler struct {
	uc *usecase.CashbookUseCase
}

// NewCashbookHandler construye el handler.
func NewCashbookHandler(uc *usecase.CashbookUseCase) *CashbookHandler {
	return &CashbookHandler{uc: uc}
}

// parseDay acepta RFC3339 o YYYY-MM-DD; con endOfDay una fecha sin hora cubre el día completo.
func parseDay(raw string, endOfDay bool) (*time.Time, bool) {
	if raw == "" {
		return nil, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, true
	}
	t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return nil, false
	}
	if endOfDay {
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return &t, true
}

// List godoc
// @Summary      Libro de caja
// @Description  El resumen cubre todo el conjunto filtrado, no solo la página.
// @Tags         cashbook
// @Security     Bearer
// @Produce      json
// @Param        from       query  string  false  "Desde (YYYY-MM-DD o RFC3339, inclusive)"
// @Param        to         query  string  false  "Hasta (YYYY-MM-DD o RFC3339, inclusive)"
// @Param        direction  query  string  false  "in | out"
// @Param        q          query  string  false  "Nota o método"
// @Param        page       query  int     false  "Página"  default(1)
// @Param        limit      query  int     false  "Límite"  default(20)
// @Success      200        {object}  dto.CashbookListResponse
// @Failure      400        {object}  dto.ErrorResponse
// @Router       /api/cashbook [get]
func (h *CashbookHandler) List(c *fiber.Ctx) error {
	from, ok := parseDay(c.Query("from"), false)
	if !ok {
		return badRequest(c, "VALIDATION", "from: fecha inválida")
	}
	to, ok := parseDay(c.Query("to"), true)
	if !ok {
		return badRequest(c, "VALIDATION", "to: fecha inválida")
	}
	out, err := h.uc.List(c.UserContext(), dto.CashbookQuery{
		PageRequest: pageQuery(c),
		From:        from,
		To:          to,
		Direction:   c.Query("direction"),
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
