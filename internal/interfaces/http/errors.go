package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/furnistore-api/internal/application/dto"
	"github.com/jhoicas/furnistore-api/internal/application/usecase"
	"github.com/jhoicas/furnistore-api/internal/domain"
	"github.com/rs/zerolog/log"
)

// errorMapping relación error de dominio → status y código HTTP.
// El orden importa: los errores que envuelven a otros van primero.
var errorMapping = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrEmailAlreadyExists, fiber.StatusConflict, "EMAIL_EXISTS"},
	{domain.ErrInsufficientStock, fiber.StatusConflict, "INSUFFICIENT_STOCK"},
	{domain.ErrOrderLocked, fiber.StatusConflict, "ORDER_LOCKED"},
	{domain.ErrIdempotencyConflict, fiber.StatusConflict, "IDEMPOTENCY_CONFLICT"},
	{domain.ErrAlreadyPaid, fiber.StatusBadRequest, "ALREADY_PAID"},
	{domain.ErrOverpayment, fiber.StatusBadRequest, "OVERPAYMENT"},
	{domain.ErrAlreadyReceived, fiber.StatusBadRequest, "ALREADY_RECEIVED"},
	{usecase.ErrFileTooLarge, fiber.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrUserNotFound, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{domain.ErrUpstream, fiber.StatusBadGateway, "UPSTREAM_ERROR"},
}

// fail traduce un error de caso de uso a la respuesta HTTP correspondiente.
func fail(c *fiber.Ctx, err error) error {
	for _, m := range errorMapping {
		if errors.Is(err, m.err) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: err.Error()})
		}
	}
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

func badRequest(c *fiber.Ctx, code, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

// pageQuery lee page, limit y q de la query string.
func pageQuery(c *fiber.Ctx) dto.PageRequest {
	return dto.PageRequest{
		Page:  c.QueryInt("page", 1),
		Limit: c.QueryInt("limit", 0),
		Q:     c.Query("q"),
	}
}
