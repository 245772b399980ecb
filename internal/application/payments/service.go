// Package payments aplica pagos a pedidos y órdenes de compra y mantiene
// conciliados el libro de caja y los estados de pago.
package payments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/furnistore-api/internal/application/dto"
	"github.com/jhoicas/furnistore-api/internal/application/ports"
	"github.com/jhoicas/furnistore-api/internal/domain"
	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/jhoicas/furnistore-api/internal/domain/payment"
	"github.com/jhoicas/furnistore-api/internal/domain/repository"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Service casos de uso de pagos. Cada operación de escritura corre en una transacción:
// pago, asiento de caja y estado del documento se confirman juntos.
type Service struct {
	tx       ports.TxRunner
	payments repository.PaymentRepository
	cashbook repository.CashbookRepository
	orders   repository.OrderRepository
	pos      repository.PurchaseOrderRepository
	log      zerolog.Logger
}

// NewService construye el servicio de pagos.
func NewService(
	tx ports.TxRunner,
	payments repository.PaymentRepository,
	cashbook repository.CashbookRepository,
	orders repository.OrderRepository,
	pos repository.PurchaseOrderRepository,
	log zerolog.Logger,
) *Service {
	return &Service{tx: tx, payments: payments, cashbook: cashbook, orders: orders, pos: pos, log: log}
}

// target documento cargado al que se aplica el pago.
type target struct {
	ref   repository.PaymentTarget
	order *entity.Order
	po    *entity.PurchaseOrder
}

func (t *target) total() decimal.Decimal {
	if t.order != nil {
		return t.order.Amount
	}
	return t.po.TotalAmount
}

func (t *target) cancelled() bool {
	if t.order != nil {
		return t.order.Status == entity.OrderCancelled
	}
	return t.po.Status == entity.PurchaseCancelled
}

func (t *target) direction() string {
	if t.order != nil {
		return entity.DirectionIn
	}
	return entity.DirectionOut
}

func (t *target) source() string {
	if t.order != nil {
		return entity.SourceOrder
	}
	return entity.SourcePurchase
}

func (s *Service) loadTarget(ctx context.Context, ref repository.PaymentTarget) (*target, error) {
	switch {
	case ref.OrderID != "" && ref.PurchaseOrderID != "", ref.OrderID == "" && ref.PurchaseOrderID == "":
		return nil, domain.Invalid("order", "indique exactamente uno de order o purchase_order")
	case ref.OrderID != "":
		o, err := s.orders.GetByID(ctx, ref.OrderID)
		if err != nil {
			return nil, err
		}
		if o == nil {
			return nil, domain.ErrNotFound
		}
		return &target{ref: ref, order: o}, nil
	default:
		po, err := s.pos.GetByID(ctx, ref.PurchaseOrderID)
		if err != nil {
			return nil, err
		}
		if po == nil {
			return nil, domain.ErrNotFound
		}
		return &target{ref: ref, po: po}, nil
	}
}

// Create registra un pago. Con idempotency key, un reintento con los mismos datos devuelve
// el pago existente (Replayed=true) y con datos distintos ErrIdempotencyConflict.
func (s *Service) Create(ctx context.Context, in dto.CreatePaymentRequest, userID string) (*dto.PaymentResultResponse, error) {
	in.IdempotencyKey = strings.TrimSpace(in.IdempotencyKey)
	if !entity.IsValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.Invalid("payment_method", "debe ser Cash o BankTransfer")
	}
	if !in.Amount.IsPositive() {
		return nil, domain.Invalid("amount", "debe ser mayor que cero")
	}

	var out *dto.PaymentResultResponse
	err := s.tx.Run(ctx, func(ctx context.Context) error {
		if in.IdempotencyKey != "" {
			replay, err := s.replay(ctx, in)
			if err != nil || replay != nil {
				out = replay
				return err
			}
		}
		res, err := s.apply(ctx, in, userID)
		out = res
		return err
	})
	if errors.Is(err, domain.ErrDuplicate) && in.IdempotencyKey != "" {
		// otra petición con la misma clave se confirmó primero
		return s.replay(ctx, in)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) replay(ctx context.Context, in dto.CreatePaymentRequest) (*dto.PaymentResultResponse, error) {
	existing, err := s.payments.GetByIdempotencyKey(ctx, in.IdempotencyKey)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	if existing.OrderID != in.OrderID || existing.PurchaseOrderID != in.PurchaseOrderID ||
		existing.Method != in.PaymentMethod || !existing.Amount.Equal(in.Amount) {
		return nil, domain.ErrIdempotencyConflict
	}
	t, err := s.loadTarget(ctx, repository.PaymentTarget{OrderID: existing.OrderID, PurchaseOrderID: existing.PurchaseOrderID})
	if err != nil {
		return nil, err
	}
	paid, err := s.payments.SumByTarget(ctx, t.ref, "")
	if err != nil {
		return nil, err
	}
	return &dto.PaymentResultResponse{
		Payment:  ToPaymentResponse(existing),
		Summary:  payment.Summarize(t.total(), paid),
		Replayed: true,
	}, nil
}

// apply inserta pago y asiento y concilia el documento; se ejecuta dentro de la transacción del caller.
func (s *Service) apply(ctx context.Context, in dto.CreatePaymentRequest, userID string) (*dto.PaymentResultResponse, error) {
	t, err := s.loadTarget(ctx, repository.PaymentTarget{OrderID: in.OrderID, PurchaseOrderID: in.PurchaseOrderID})
	if err != nil {
		return nil, err
	}
	if t.cancelled() {
		return nil, fmt.Errorf("documento cancelado: %w", domain.ErrConflict)
	}
	paid, err := s.payments.SumByTarget(ctx, t.ref, "")
	if err != nil {
		return nil, err
	}
	before := payment.Summarize(t.total(), paid)
	if err := payment.CheckNewAmount(in.Amount, before.Remaining); err != nil {
		return nil, err
	}

	now := time.Now()
	date := now
	if in.PaymentDate != nil && !in.PaymentDate.IsZero() {
		date = *in.PaymentDate
	}
	p := &entity.Payment{
		ID:              uuid.NewString(),
		OrderID:         in.OrderID,
		PurchaseOrderID: in.PurchaseOrderID,
		Direction:       t.direction(),
		Method:          in.PaymentMethod,
		Amount:          in.Amount,
		PaymentDate:     date,
		Note:            strings.TrimSpace(in.Note),
		IdempotencyKey:  in.IdempotencyKey,
		CreatedBy:       userID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, err
	}
	if err := s.cashbook.Create(ctx, cashbookEntryFor(p, t.source())); err != nil {
		return nil, fmt.Errorf("asiento de caja: %w", err)
	}
	summary, err := s.reconcile(ctx, t)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("payment_id", p.ID).
		Str("direction", p.Direction).
		Str("order_id", p.OrderID).
		Str("purchase_order_id", p.PurchaseOrderID).
		Str("amount", p.Amount.String()).
		Str("payment_status", summary.PaymentStatus).
		Msg("pago aplicado")

	return &dto.PaymentResultResponse{Payment: ToPaymentResponse(p), Summary: summary}, nil
}

// Update modifica un pago; el nuevo monto no puede superar total - otros pagos.
func (s *Service) Update(ctx context.Context, id string, in dto.UpdatePaymentRequest) (*dto.PaymentResultResponse, error) {
	if in.PaymentMethod != nil && !entity.IsValidPaymentMethod(*in.PaymentMethod) {
		return nil, domain.Invalid("payment_method", "debe ser Cash o BankTransfer")
	}
	var out *dto.PaymentResultResponse
	err := s.tx.Run(ctx, func(ctx context.Context) error {
		p, err := s.payments.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		t, err := s.loadTarget(ctx, repository.PaymentTarget{OrderID: p.OrderID, PurchaseOrderID: p.PurchaseOrderID})
		if err != nil {
			return err
		}
		if t.cancelled() {
			return fmt.Errorf("documento cancelado: %w", domain.ErrConflict)
		}

		if in.Amount != nil {
			others, err := s.payments.SumByTarget(ctx, t.ref, p.ID)
			if err != nil {
				return err
			}
			if err := payment.CheckUpdatedAmount(*in.Amount, t.total(), others); err != nil {
				return err
			}
			p.Amount = *in.Amount
		}
		if in.PaymentMethod != nil {
			p.Method = *in.PaymentMethod
		}
		if in.PaymentDate != nil && !in.PaymentDate.IsZero() {
			p.PaymentDate = *in.PaymentDate
		}
		if in.Note != nil {
			p.Note = strings.TrimSpace(*in.Note)
		}
		p.UpdatedAt = time.Now()
		if err := s.payments.Update(ctx, p); err != nil {
			return err
		}

		entry, err := s.cashbook.GetByPaymentID(ctx, p.ID)
		if err != nil {
			return err
		}
		if entry == nil {
			if err := s.cashbook.Create(ctx, cashbookEntryFor(p, t.source())); err != nil {
				return fmt.Errorf("asiento de caja: %w", err)
			}
		} else {
			entry.Amount = p.Amount
			entry.PaymentMethod = p.Method
			entry.PaymentDate = p.PaymentDate
			entry.Note = p.Note
			entry.UpdatedAt = p.UpdatedAt
			if err := s.cashbook.Update(ctx, entry); err != nil {
				return fmt.Errorf("asiento de caja: %w", err)
			}
		}

		summary, err := s.reconcile(ctx, t)
		if err != nil {
			return err
		}
		out = &dto.PaymentResultResponse{Payment: ToPaymentResponse(p), Summary: summary}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina el pago y su asiento y recalcula el estado del documento.
func (s *Service) Delete(ctx context.Context, id string) (*payment.Summary, error) {
	var out payment.Summary
	err := s.tx.Run(ctx, func(ctx context.Context) error {
		p, err := s.payments.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		if err := s.payments.Delete(ctx, p.ID); err != nil {
			return err
		}
		if err := s.cashbook.DeleteByPaymentID(ctx, p.ID); err != nil {
			return fmt.Errorf("asiento de caja: %w", err)
		}
		t, err := s.loadTarget(ctx, repository.PaymentTarget{OrderID: p.OrderID, PurchaseOrderID: p.PurchaseOrderID})
		if errors.Is(err, domain.ErrNotFound) {
			// documento ya eliminado: nada que conciliar
			return nil
		}
		if err != nil {
			return err
		}
		out, err = s.reconcile(ctx, t)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// reconcile recalcula lo pagado, verifica paid <= total y que la caja cuadre con los
// pagos, y persiste el estado de pago (y el estado de la orden de compra).
// El documento se escribe siempre, aunque el estado no cambie: dos transacciones que
// pagan el mismo documento chocan en esa escritura y una de ellas se reintenta.
func (s *Service) reconcile(ctx context.Context, t *target) (payment.Summary, error) {
	paid, err := s.payments.SumByTarget(ctx, t.ref, "")
	if err != nil {
		return payment.Summary{}, err
	}
	if err := payment.CheckInvariant(t.total(), paid); err != nil {
		return payment.Summary{}, err
	}
	booked, err := s.cashbook.SumByTarget(ctx, t.ref)
	if err != nil {
		return payment.Summary{}, err
	}
	if err := payment.CheckLedger(paid, booked); err != nil {
		return payment.Summary{}, fmt.Errorf("caja %s, pagos %s: %w", booked, paid, err)
	}
	summary := payment.Summarize(t.total(), paid)
	now := time.Now()

	if t.order != nil {
		t.order.PaymentStatus = summary.PaymentStatus
		t.order.UpdatedAt = now
		if err := s.orders.Update(ctx, t.order); err != nil {
			return payment.Summary{}, fmt.Errorf("actualizar pedido: %w", err)
		}
		return summary, nil
	}

	t.po.PaymentStatus = summary.PaymentStatus
	t.po.Status = payment.PurchaseStatus(t.po.Status, t.po.WarehouseStatus, summary.PaymentStatus)
	t.po.UpdatedAt = now
	if err := s.pos.Update(ctx, t.po); err != nil {
		return payment.Summary{}, fmt.Errorf("actualizar orden de compra: %w", err)
	}
	return summary, nil
}

// Reconcile recalcula y persiste el estado de pago de un documento después de cambiar
// su total o su recepción en bodega.
func (s *Service) Reconcile(ctx context.Context, ref repository.PaymentTarget) (payment.Summary, error) {
	var out payment.Summary
	err := s.tx.Run(ctx, func(ctx context.Context) error {
		t, err := s.loadTarget(ctx, ref)
		if err != nil {
			return err
		}
		out, err = s.reconcile(ctx, t)
		return err
	})
	return out, err
}

// Summary estado de pago actual de un documento con el total dado.
func (s *Service) Summary(ctx context.Context, ref repository.PaymentTarget, total decimal.Decimal) (payment.Summary, error) {
	paid, err := s.payments.SumByTarget(ctx, ref, "")
	if err != nil {
		return payment.Summary{}, err
	}
	return payment.Summarize(total, paid), nil
}

// HasPayments indica si el documento tiene pagos registrados.
func (s *Service) HasPayments(ctx context.Context, ref repository.PaymentTarget) (bool, error) {
	n, err := s.payments.CountByTarget(ctx, ref)
	return n > 0, err
}

// ListByOrder pagos de un pedido con su resumen.
func (s *Service) ListByOrder(ctx context.Context, orderID string, page dto.PageRequest) (*dto.PaymentListResponse, error) {
	return s.list(ctx, repository.PaymentTarget{OrderID: orderID}, page)
}

// ListByPurchaseOrder pagos de una orden de compra con su resumen.
func (s *Service) ListByPurchaseOrder(ctx context.Context, poID string, page dto.PageRequest) (*dto.PaymentListResponse, error) {
	return s.list(ctx, repository.PaymentTarget{PurchaseOrderID: poID}, page)
}

func (s *Service) list(ctx context.Context, ref repository.PaymentTarget, page dto.PageRequest) (*dto.PaymentListResponse, error) {
	page.Normalize(10, 100)
	t, err := s.loadTarget(ctx, ref)
	if err != nil {
		return nil, err
	}
	list, total, err := s.payments.ListByTarget(ctx, ref, strings.TrimSpace(page.Q), repository.Page{Limit: page.Limit, Offset: page.Offset()})
	if err != nil {
		return nil, err
	}
	summary, err := s.Summary(ctx, ref, t.total())
	if err != nil {
		return nil, err
	}
	items := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		items = append(items, ToPaymentResponse(p))
	}
	return &dto.PaymentListResponse{
		Items:      items,
		Pagination: dto.NewPagination(total, page.Page, page.Limit),
		Summary:    summary,
	}, nil
}

func cashbookEntryFor(p *entity.Payment, source string) *entity.CashbookEntry {
	return &entity.CashbookEntry{
		ID:              uuid.NewString(),
		PaymentID:       p.ID,
		Direction:       p.Direction,
		Source:          source,
		OrderID:         p.OrderID,
		PurchaseOrderID: p.PurchaseOrderID,
		Amount:          p.Amount.Abs(),
		PaymentMethod:   p.Method,
		PaymentDate:     p.PaymentDate,
		Note:            p.Note,
		CreatedBy:       p.CreatedBy,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// ToPaymentResponse mapea la entidad a DTO.
func ToPaymentResponse(p *entity.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:              p.ID,
		OrderID:         p.OrderID,
		PurchaseOrderID: p.PurchaseOrderID,
		Direction:       p.Direction,
		PaymentMethod:   p.Method,
		Amount:          p.Amount,
		PaymentDate:     p.PaymentDate,
		Note:            p.Note,
		CreatedBy:       p.CreatedBy,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
