package payments_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jhoicas/furnistore-api/internal/application/dto"
	"github.com/jhoicas/furnistore-api/internal/application/payments"
	"github.com/jhoicas/furnistore-api/internal/domain"
	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/jhoicas/furnistore-api/internal/domain/repository"
	"github.com/jhoicas/furnistore-api/internal/infrastructure/memory"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc  *payments.Service
	repo repository.Registry
	tx   *memory.TxRunner
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	store := memory.NewStore()
	repo := memory.NewRegistry(store)
	tx := memory.NewTxRunner(store)
	svc := payments.NewService(tx, repo.Payments, repo.Cashbook, repo.Orders, repo.PurchaseOrders, zerolog.Nop())
	return fixture{svc: svc, repo: repo, tx: tx}
}

func (f fixture) order(t *testing.T, amount int64) *entity.Order {
	t.Helper()
	now := time.Now()
	o := &entity.Order{
		ID:            "ord-1",
		Code:          "ORD-20260101-0001",
		Channel:       entity.ChannelWeb,
		Amount:        decimal.NewFromInt(amount),
		Status:        entity.OrderNotProcessed,
		PaymentStatus: entity.PaymentUnpaid,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	require.NoError(t, f.repo.Orders.Create(context.Background(), o))
	return o
}

func (f fixture) purchase(t *testing.T, total int64, warehouseStatus string) *entity.PurchaseOrder {
	t.Helper()
	now := time.Now()
	po := &entity.PurchaseOrder{
		ID:              "po-1",
		Code:            "PO-20260101-0001",
		SupplierID:      "sup-1",
		TotalAmount:     decimal.NewFromInt(total),
		Status:          entity.PurchasePending,
		WarehouseStatus: warehouseStatus,
		PaymentStatus:   entity.PaymentUnpaid,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	require.NoError(t, f.repo.PurchaseOrders.Create(context.Background(), po))
	return po
}

func pay(orderID string, amount int64, key string) dto.CreatePaymentRequest {
	return dto.CreatePaymentRequest{
		OrderID:        orderID,
		PaymentMethod:  entity.MethodCash,
		Amount:         decimal.NewFromInt(amount),
		IdempotencyKey: key,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_PagoParcialYTotal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.order(t, 1000)

	res, err := f.svc.Create(ctx, pay("ord-1", 400, ""), "user-1")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPartial, res.Summary.PaymentStatus)
	assert.True(t, res.Summary.Remaining.Equal(decimal.NewFromInt(600)))
	assert.Equal(t, entity.DirectionIn, res.Payment.Direction)

	res, err = f.svc.Create(ctx, pay("ord-1", 600, ""), "user-1")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPaid, res.Summary.PaymentStatus)

	o, err := f.repo.Orders.GetByID(ctx, "ord-1")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPaid, o.PaymentStatus)

	totals, err := f.repo.Cashbook.Totals(ctx, repository.CashbookFilter{})
	require.NoError(t, err)
	assert.True(t, totals.TotalIn.Equal(decimal.NewFromInt(1000)))
	assert.True(t, totals.TotalOut.IsZero())
}

func TestCreate_RechazaSobrepagoYYaPagado(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.order(t, 1000)

	_, err := f.svc.Create(ctx, pay("ord-1", 1001, ""), "")
	assert.ErrorIs(t, err, domain.ErrOverpayment)

	_, err = f.svc.Create(ctx, pay("ord-1", 1000, ""), "")
	require.NoError(t, err)

	_, err = f.svc.Create(ctx, pay("ord-1", 1, ""), "")
	assert.ErrorIs(t, err, domain.ErrAlreadyPaid)

	n, err := f.repo.Payments.CountByTarget(ctx, repository.PaymentTarget{OrderID: "ord-1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestCreate_ValidaEntrada(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.order(t, 1000)

	_, err := f.svc.Create(ctx, pay("ord-1", 0, ""), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req := pay("ord-1", 10, "")
	req.PaymentMethod = "Cheque"
	_, err = f.svc.Create(ctx, req, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.svc.Create(ctx, pay("", 10, ""), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.svc.Create(ctx, pay("no-existe", 10, ""), "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_PedidoCanceladoEsConflicto(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	o := f.order(t, 1000)
	o.Status = entity.OrderCancelled
	require.NoError(t, f.repo.Orders.Update(ctx, o))

	_, err := f.svc.Create(ctx, pay("ord-1", 100, ""), "")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCreate_IdempotenciaRepiteSinDuplicar(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.order(t, 1000)

	first, err := f.svc.Create(ctx, pay("ord-1", 300, "key-1"), "")
	require.NoError(t, err)
	assert.False(t, first.Replayed)

	again, err := f.svc.Create(ctx, pay("ord-1", 300, "key-1"), "")
	require.NoError(t, err)
	assert.True(t, again.Replayed)
	assert.Equal(t, first.Payment.ID, again.Payment.ID)
	assert.True(t, again.Summary.TotalPaid.Equal(decimal.NewFromInt(300)))

	_, err = f.svc.Create(ctx, pay("ord-1", 500, "key-1"), "")
	assert.ErrorIs(t, err, domain.ErrIdempotencyConflict)
	otherMethod := pay("ord-1", 300, "key-1")
	otherMethod.PaymentMethod = entity.MethodBankTransfer
	_, err = f.svc.Create(ctx, otherMethod, "")
	assert.ErrorIs(t, err, domain.ErrIdempotencyConflict)

	n, err := f.repo.Payments.CountByTarget(ctx, repository.PaymentTarget{OrderID: "ord-1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestCreate_RollbackSiFallaLaTransaccion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.order(t, 1000)
	boom := errors.New("fallo posterior")

	err := f.tx.Run(ctx, func(ctx context.Context) error {
		if _, err := f.svc.Create(ctx, pay("ord-1", 400, ""), ""); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	n, err := f.repo.Payments.CountByTarget(ctx, repository.PaymentTarget{OrderID: "ord-1"})
	require.NoError(t, err)
	assert.Zero(t, n)
	o, err := f.repo.Orders.GetByID(ctx, "ord-1")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentUnpaid, o.PaymentStatus)
	entries, total, err := f.repo.Cashbook.List(ctx, repository.CashbookFilter{}, repository.Page{})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, entries)
}

func TestCreate_CajaDescuadradaEsViolacionDeInvariante(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.order(t, 1000)
	first, err := f.svc.Create(ctx, pay("ord-1", 100, ""), "")
	require.NoError(t, err)
	require.NoError(t, f.repo.Cashbook.DeleteByPaymentID(ctx, first.Payment.ID))

	_, err = f.svc.Create(ctx, pay("ord-1", 100, ""), "")
	assert.ErrorIs(t, err, domain.ErrInvariantViolation)

	n, err := f.repo.Payments.CountByTarget(ctx, repository.PaymentTarget{OrderID: "ord-1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n, "el segundo pago se revierte")
}

func TestCreate_EscribeElDocumentoAunqueNoCambieElEstado(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.order(t, 1000)
	_, err := f.svc.Create(ctx, pay("ord-1", 100, ""), "")
	require.NoError(t, err)

	o, err := f.repo.Orders.GetByID(ctx, "ord-1")
	require.NoError(t, err)
	stale := time.Now().Add(-time.Hour)
	o.UpdatedAt = stale
	require.NoError(t, f.repo.Orders.Update(ctx, o))

	res, err := f.svc.Create(ctx, pay("ord-1", 100, ""), "")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPartial, res.Summary.PaymentStatus)

	o, err = f.repo.Orders.GetByID(ctx, "ord-1")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPartial, o.PaymentStatus)
	assert.True(t, o.UpdatedAt.After(stale), "el pedido se reescribe en cada pago")
}

// ──────────────────────────────────────────────────────────────────────────────
// Órdenes de compra
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_OrdenDeCompraRecibidaSeCompletaAlPagar(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.purchase(t, 500, entity.WarehouseReceived)

	res, err := f.svc.Create(ctx, dto.CreatePaymentRequest{
		PurchaseOrderID: "po-1",
		PaymentMethod:   entity.MethodBankTransfer,
		Amount:          decimal.NewFromInt(500),
	}, "")
	require.NoError(t, err)
	assert.Equal(t, entity.DirectionOut, res.Payment.Direction)

	po, err := f.repo.PurchaseOrders.GetByID(ctx, "po-1")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPaid, po.PaymentStatus)
	assert.Equal(t, entity.PurchaseCompleted, po.Status)

	// al borrar el pago vuelve a pendiente
	_, err = f.svc.Delete(ctx, res.Payment.ID)
	require.NoError(t, err)
	po, err = f.repo.PurchaseOrders.GetByID(ctx, "po-1")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentUnpaid, po.PaymentStatus)
	assert.Equal(t, entity.PurchasePending, po.Status)

	totals, err := f.repo.Cashbook.Totals(ctx, repository.CashbookFilter{})
	require.NoError(t, err)
	assert.True(t, totals.TotalOut.IsZero())
}

func TestCreate_OrdenDeCompraNoRecibidaQuedaPendiente(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.purchase(t, 500, entity.WarehouseNotReceived)

	_, err := f.svc.Create(ctx, dto.CreatePaymentRequest{
		PurchaseOrderID: "po-1",
		PaymentMethod:   entity.MethodCash,
		Amount:          decimal.NewFromInt(500),
	}, "")
	require.NoError(t, err)

	po, err := f.repo.PurchaseOrders.GetByID(ctx, "po-1")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPaid, po.PaymentStatus)
	assert.Equal(t, entity.PurchasePending, po.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / List
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_TopeEsTotalMenosOtrosPagos(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.order(t, 1000)

	a, err := f.svc.Create(ctx, pay("ord-1", 300, ""), "")
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, pay("ord-1", 500, ""), "")
	require.NoError(t, err)

	tooMuch := decimal.NewFromInt(501)
	_, err = f.svc.Update(ctx, a.Payment.ID, dto.UpdatePaymentRequest{Amount: &tooMuch})
	assert.ErrorIs(t, err, domain.ErrOverpayment)

	exact := decimal.NewFromInt(500)
	note := "ajuste"
	res, err := f.svc.Update(ctx, a.Payment.ID, dto.UpdatePaymentRequest{Amount: &exact, Note: &note})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPaid, res.Summary.PaymentStatus)
	assert.Equal(t, "ajuste", res.Payment.Note)

	entry, err := f.repo.Cashbook.GetByPaymentID(ctx, a.Payment.ID)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.True(t, entry.Amount.Equal(exact))
	assert.Equal(t, "ajuste", entry.Note)

	_, err = f.svc.Update(ctx, "no-existe", dto.UpdatePaymentRequest{Amount: &exact})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_QuitaAsientoYRecalculaPedido(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.order(t, 1000)
	a, err := f.svc.Create(ctx, pay("ord-1", 400, ""), "")
	require.NoError(t, err)
	b, err := f.svc.Create(ctx, pay("ord-1", 600, ""), "")
	require.NoError(t, err)
	require.Equal(t, entity.PaymentPaid, b.Summary.PaymentStatus)

	summary, err := f.svc.Delete(ctx, b.Payment.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPartial, summary.PaymentStatus)
	assert.True(t, summary.Remaining.Equal(decimal.NewFromInt(600)))

	entry, err := f.repo.Cashbook.GetByPaymentID(ctx, b.Payment.ID)
	require.NoError(t, err)
	assert.Nil(t, entry)
	o, err := f.repo.Orders.GetByID(ctx, "ord-1")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPartial, o.PaymentStatus)

	summary, err = f.svc.Delete(ctx, a.Payment.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentUnpaid, summary.PaymentStatus)
	o, err = f.repo.Orders.GetByID(ctx, "ord-1")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentUnpaid, o.PaymentStatus)
	totals, err := f.repo.Cashbook.Totals(ctx, repository.CashbookFilter{})
	require.NoError(t, err)
	assert.True(t, totals.TotalIn.IsZero())

	_, err = f.svc.Delete(ctx, a.Payment.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_OrdenDeCompraCompletadaVuelveAPendiente(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.purchase(t, 500, entity.WarehouseReceived)
	ids := make([]string, 0, 2)
	for _, amount := range []int64{200, 300} {
		res, err := f.svc.Create(ctx, dto.CreatePaymentRequest{
			PurchaseOrderID: "po-1",
			PaymentMethod:   entity.MethodCash,
			Amount:          decimal.NewFromInt(amount),
		}, "")
		require.NoError(t, err)
		ids = append(ids, res.Payment.ID)
	}
	po, err := f.repo.PurchaseOrders.GetByID(ctx, "po-1")
	require.NoError(t, err)
	require.Equal(t, entity.PurchaseCompleted, po.Status)

	summary, err := f.svc.Delete(ctx, ids[1])
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPartial, summary.PaymentStatus)

	po, err = f.repo.PurchaseOrders.GetByID(ctx, "po-1")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPartial, po.PaymentStatus)
	assert.Equal(t, entity.PurchasePending, po.Status)
	entry, err := f.repo.Cashbook.GetByPaymentID(ctx, ids[1])
	require.NoError(t, err)
	assert.Nil(t, entry)
	totals, err := f.repo.Cashbook.Totals(ctx, repository.CashbookFilter{})
	require.NoError(t, err)
	assert.True(t, totals.TotalOut.Equal(decimal.NewFromInt(200)))
}

func TestListByOrder_IncluyeResumen(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.order(t, 1000)
	for _, amount := range []int64{100, 200, 300} {
		_, err := f.svc.Create(ctx, pay("ord-1", amount, ""), "")
		require.NoError(t, err)
	}

	list, err := f.svc.ListByOrder(ctx, "ord-1", dto.PageRequest{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, list.Items, 2)
	assert.Equal(t, int64(3), list.Pagination.Total)
	assert.Equal(t, 2, list.Pagination.Pages)
	assert.True(t, list.Summary.TotalPaid.Equal(decimal.NewFromInt(600)))
	assert.Equal(t, entity.PaymentPartial, list.Summary.PaymentStatus)

	_, err = f.svc.ListByOrder(ctx, "no-existe", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
