package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrUserNotFound        = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists  = errors.New("el email ya está registrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
	ErrConflict            = errors.New("conflicto con el estado actual")
	ErrInsufficientStock   = errors.New("stock insuficiente")
	ErrAlreadyPaid         = errors.New("el documento ya está totalmente pagado")
	ErrOverpayment         = errors.New("el monto supera el saldo pendiente")
	ErrAlreadyReceived     = errors.New("la orden de compra ya fue recibida")
	ErrOrderLocked         = errors.New("la orden entregada o cancelada no puede modificarse")
	ErrIdempotencyConflict = errors.New("la clave de idempotencia ya se usó con otros datos")
	ErrInvariantViolation  = errors.New("invariante de pagos violada")
	ErrUpstream            = errors.New("el servicio externo respondió con error")
)

// ValidationError describe un campo inválido; Is(ErrInvalidInput) es verdadero.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Invalid construye un ValidationError.
func Invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}
