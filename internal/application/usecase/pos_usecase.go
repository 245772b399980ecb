package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/furnistore-api/internal/application/dto"
	"github.com/jhoicas/furnistore-api/internal/application/inventory"
	"github.com/jhoicas/furnistore-api/internal/application/payments"
	"github.com/jhoicas/furnistore-api/internal/application/ports"
	"github.com/jhoicas/furnistore-api/internal/domain"
	"github.com/jhoicas/furnistore-api/internal/domain/document"
	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/jhoicas/furnistore-api/internal/domain/repository"
)

// POSUseCase venta en mostrador: pedido entregado y cobrado en una sola transacción.
type POSUseCase struct {
	orderBuilder
	tx       ports.TxRunner
	payments *payments.Service
}

// NewPOSUseCase construye el caso de uso.
func NewPOSUseCase(
	tx ports.TxRunner,
	orders repository.OrderRepository,
	products repository.ProductRepository,
	customers repository.CustomerRepository,
	stock *inventory.StockService,
	paymentSvc *payments.Service,
) *POSUseCase {
	return &POSUseCase{
		orderBuilder: orderBuilder{orders: orders, products: products, customers: customers, stock: stock},
		tx:           tx,
		payments:     paymentSvc,
	}
}

// Create registra la venta, descuenta existencias y aplica el pago total.
func (uc *POSUseCase) Create(ctx context.Context, userID string, in dto.POSOrderRequest) (*dto.POSOrderResponse, error) {
	if !entity.IsValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.Invalid("payment_method", "debe ser Cash o BankTransfer")
	}
	if len(in.Items) == 0 {
		return nil, domain.Invalid("items", "el pedido no tiene productos")
	}

	var out *dto.POSOrderResponse
	err := uc.tx.Run(ctx, func(ctx context.Context) error {
		details, total, err := uc.lines(ctx, in.Items)
		if err != nil {
			return err
		}
		customer, err := uc.resolveCustomer(ctx, "", in.CustomerID, in.Customer, userID)
		if err != nil {
			return err
		}
		now := time.Now()
		o := &entity.Order{
			ID:            uuid.NewString(),
			Channel:       entity.ChannelPOS,
			UserID:        userID,
			Details:       details,
			Amount:        total,
			TransactionID: document.POSTransactionID(now),
			Address:       strings.TrimSpace(in.Address),
			Phone:         strings.TrimSpace(in.Phone),
			Status:        entity.OrderDelivered,
			PaymentStatus: entity.PaymentUnpaid,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if customer != nil {
			o.CustomerID = customer.ID
			if o.Address == "" {
				o.Address = customer.Address
			}
			if o.Phone == "" {
				o.Phone = customer.PhoneNumber
			}
		}
		if err := uc.place(ctx, o, userID); err != nil {
			return err
		}

		paid, err := uc.payments.Create(ctx, dto.CreatePaymentRequest{
			OrderID:       o.ID,
			PaymentMethod: in.PaymentMethod,
			Amount:        total,
			PaymentDate:   in.Payment.PaymentDate,
			Note:          firstNonEmpty(strings.TrimSpace(in.Payment.Note), "Venta POS "+o.TransactionID),
		}, userID)
		if err != nil {
			return err
		}
		o.PaymentStatus = paid.Summary.PaymentStatus

		out = &dto.POSOrderResponse{
			Success:        true,
			Order:          *ToOrderResponse(o, customer),
			Payment:        paid.Payment,
			PaymentSummary: paid.Summary,
			Customer:       ToCustomerResponse(customer),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
