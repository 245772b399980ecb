package usecase

import (
	"context"
	"fmt"
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
	"github.com/shopspring/decimal"
)

// PurchaseOrderUseCase órdenes de compra a proveedores: alta con pago inicial,
// recepción en bodega, cancelación y documento PDF.
type PurchaseOrderUseCase struct {
	tx        ports.TxRunner
	repo      repository.PurchaseOrderRepository
	suppliers repository.SupplierRepository
	products  repository.ProductRepository
	stock     *inventory.StockService
	payments  *payments.Service
	pdf       ports.PDFGenerator
}

// NewPurchaseOrderUseCase construye el caso de uso.
func NewPurchaseOrderUseCase(
	tx ports.TxRunner,
	repo repository.PurchaseOrderRepository,
	suppliers repository.SupplierRepository,
	products repository.ProductRepository,
	stock *inventory.StockService,
	paymentSvc *payments.Service,
	pdf ports.PDFGenerator,
) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{tx: tx, repo: repo, suppliers: suppliers, products: products, stock: stock, payments: paymentSvc, pdf: pdf}
}

func (uc *PurchaseOrderUseCase) supplier(ctx context.Context, id string) (*entity.Supplier, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.Invalid("supplier", "es obligatorio")
	}
	s, err := uc.suppliers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.Invalid("supplier", "el proveedor no existe")
	}
	return s, nil
}

// details arma las líneas; los productos inexistentes se omiten.
func (uc *PurchaseOrderUseCase) details(ctx context.Context, items []dto.PurchaseItemRequest) ([]entity.PurchaseOrderDetail, decimal.Decimal, error) {
	if len(items) == 0 {
		return nil, decimal.Zero, domain.Invalid("items", "la orden no tiene productos")
	}
	out := make([]entity.PurchaseOrderDetail, 0, len(items))
	total := decimal.Zero
	for i, it := range items {
		if it.Quantity < 1 {
			return nil, decimal.Zero, domain.Invalid(fmt.Sprintf("items[%d].quantity", i), "debe ser al menos 1")
		}
		if it.Price.IsNegative() {
			return nil, decimal.Zero, domain.Invalid(fmt.Sprintf("items[%d].price", i), "no puede ser negativo")
		}
		p, err := uc.products.GetByID(ctx, strings.TrimSpace(it.ProductID))
		if err != nil {
			return nil, decimal.Zero, err
		}
		if p == nil {
			continue
		}
		line := it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		out = append(out, entity.PurchaseOrderDetail{
			ProductID:    p.ID,
			ProductName:  p.Name,
			ProductImage: p.ThumbnailImage,
			ProductPrice: it.Price,
			Quantity:     it.Quantity,
			TotalPrice:   line,
		})
		total = total.Add(line)
	}
	if len(out) == 0 {
		return nil, decimal.Zero, domain.Invalid("items", "ninguno de los productos existe")
	}
	return out, total, nil
}

// Create registra la orden y, si llega, el pago inicial en la misma transacción.
func (uc *PurchaseOrderUseCase) Create(ctx context.Context, userID string, in dto.PurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	if in.TotalAmount != nil && in.TotalAmount.IsNegative() {
		return nil, domain.Invalid("total_amount", "no puede ser negativo")
	}
	var (
		po       *entity.PurchaseOrder
		supplier *entity.Supplier
		paid     = decimal.Zero
	)
	err := uc.tx.Run(ctx, func(ctx context.Context) error {
		var err error
		supplier, err = uc.supplier(ctx, in.SupplierID)
		if err != nil {
			return err
		}
		details, total, err := uc.details(ctx, in.Items)
		if err != nil {
			return err
		}
		if in.TotalAmount != nil {
			total = *in.TotalAmount
		}
		now := time.Now()
		last, err := uc.repo.LastCode(ctx, document.DayPrefix(document.PrefixPurchase, now))
		if err != nil {
			return err
		}
		po = &entity.PurchaseOrder{
			ID:              uuid.NewString(),
			Code:            document.NextCode(document.PrefixPurchase, now, last),
			SupplierID:      supplier.ID,
			Details:         details,
			TotalAmount:     total,
			Status:          entity.PurchasePending,
			WarehouseStatus: entity.WarehouseNotReceived,
			PaymentStatus:   entity.PaymentUnpaid,
			CreatedBy:       userID,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := uc.repo.Create(ctx, po); err != nil {
			return err
		}
		if in.Payment == nil || in.Payment.Amount.IsZero() {
			return nil
		}
		res, err := uc.payments.Create(ctx, dto.CreatePaymentRequest{
			PurchaseOrderID: po.ID,
			PaymentMethod:   in.Payment.PaymentMethod,
			Amount:          in.Payment.Amount,
			PaymentDate:     in.Payment.PaymentDate,
			Note:            firstNonEmpty(strings.TrimSpace(in.Payment.Note), "Pago inicial "+po.Code),
		}, userID)
		if err != nil {
			return err
		}
		po.PaymentStatus = res.Summary.PaymentStatus
		paid = res.Summary.TotalPaid
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ToPurchaseOrderResponse(po, supplier, paid), nil
}

// GetByID orden con proveedor y total pagado.
func (uc *PurchaseOrderUseCase) GetByID(ctx context.Context, id string) (*dto.PurchaseOrderResponse, error) {
	po, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.response(ctx, po)
}

func (uc *PurchaseOrderUseCase) load(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	po, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, domain.ErrNotFound
	}
	return po, nil
}

func (uc *PurchaseOrderUseCase) response(ctx context.Context, po *entity.PurchaseOrder) (*dto.PurchaseOrderResponse, error) {
	s, err := uc.suppliers.GetByID(ctx, po.SupplierID)
	if err != nil {
		return nil, err
	}
	summary, err := uc.payments.Summary(ctx, repository.PaymentTarget{PurchaseOrderID: po.ID}, po.TotalAmount)
	if err != nil {
		return nil, err
	}
	return ToPurchaseOrderResponse(po, s, summary.TotalPaid), nil
}

// List órdenes paginadas; q filtra por nombre de proveedor.
func (uc *PurchaseOrderUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.PurchaseOrderListResponse, error) {
	page.Normalize(20, 100)
	var supplierIDs []string
	if q := strings.TrimSpace(page.Q); q != "" {
		ids, err := uc.suppliers.FindIDsByName(ctx, q)
		if err != nil {
			return nil, err
		}
		supplierIDs = append([]string{}, ids...)
	}
	list, total, err := uc.repo.List(ctx, supplierIDs, repository.Page{Limit: page.Limit, Offset: page.Offset()})
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(list))
	for _, po := range list {
		ids = append(ids, po.SupplierID)
	}
	byID := map[string]*entity.Supplier{}
	if len(ids) > 0 {
		suppliers, err := uc.suppliers.GetByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, s := range suppliers {
			byID[s.ID] = s
		}
	}
	items := make([]dto.PurchaseOrderResponse, 0, len(list))
	for _, po := range list {
		summary, err := uc.payments.Summary(ctx, repository.PaymentTarget{PurchaseOrderID: po.ID}, po.TotalAmount)
		if err != nil {
			return nil, err
		}
		items = append(items, *ToPurchaseOrderResponse(po, byID[po.SupplierID], summary.TotalPaid))
	}
	return &dto.PurchaseOrderListResponse{Items: items, Pagination: dto.NewPagination(total, page.Page, page.Limit)}, nil
}

// Update modifica proveedor, líneas o total mientras la orden no se haya recibido ni cancelado.
// El total no puede quedar por debajo de lo ya pagado.
func (uc *PurchaseOrderUseCase) Update(ctx context.Context, id string, in dto.PurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	var po *entity.PurchaseOrder
	err := uc.tx.Run(ctx, func(ctx context.Context) error {
		var err error
		po, err = uc.load(ctx, id)
		if err != nil {
			return err
		}
		if po.Status == entity.PurchaseCancelled {
			return fmt.Errorf("orden cancelada: %w", domain.ErrConflict)
		}
		if po.WarehouseStatus == entity.WarehouseReceived {
			return domain.ErrAlreadyReceived
		}
		if strings.TrimSpace(in.SupplierID) != "" {
			s, err := uc.supplier(ctx, in.SupplierID)
			if err != nil {
				return err
			}
			po.SupplierID = s.ID
		}
		if len(in.Items) > 0 {
			details, total, err := uc.details(ctx, in.Items)
			if err != nil {
				return err
			}
			po.Details = details
			po.TotalAmount = total
		}
		if in.TotalAmount != nil {
			if in.TotalAmount.IsNegative() {
				return domain.Invalid("total_amount", "no puede ser negativo")
			}
			po.TotalAmount = *in.TotalAmount
		}
		summary, err := uc.payments.Summary(ctx, repository.PaymentTarget{PurchaseOrderID: po.ID}, po.TotalAmount)
		if err != nil {
			return err
		}
		if po.TotalAmount.LessThan(summary.TotalPaid) {
			return domain.Invalid("total_amount", "no puede ser menor que lo pagado")
		}
		po.UpdatedAt = time.Now()
		if err := uc.repo.Update(ctx, po); err != nil {
			return err
		}
		_, err = uc.payments.Reconcile(ctx, repository.PaymentTarget{PurchaseOrderID: po.ID})
		return err
	})
	if err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// MarkReceived ingresa la mercancía a bodega con costo promedio ponderado y
// completa la orden si ya está pagada.
func (uc *PurchaseOrderUseCase) MarkReceived(ctx context.Context, id, userID string) (*dto.PurchaseOrderResponse, error) {
	err := uc.tx.Run(ctx, func(ctx context.Context) error {
		po, err := uc.load(ctx, id)
		if err != nil {
			return err
		}
		if po.WarehouseStatus == entity.WarehouseReceived {
			return domain.ErrAlreadyReceived
		}
		if po.Status == entity.PurchaseCancelled {
			return fmt.Errorf("orden cancelada: %w", domain.ErrConflict)
		}
		for _, d := range po.Details {
			p, err := uc.products.GetByID(ctx, d.ProductID)
			if err != nil {
				return err
			}
			if p == nil {
				continue
			}
			if err := uc.stock.Receive(ctx, p, d.Quantity, d.ProductPrice, po.Code, userID); err != nil {
				return err
			}
		}
		now := time.Now()
		po.WarehouseStatus = entity.WarehouseReceived
		po.ReceivedAt = &now
		po.UpdatedAt = now
		if err := uc.repo.Update(ctx, po); err != nil {
			return err
		}
		_, err = uc.payments.Reconcile(ctx, repository.PaymentTarget{PurchaseOrderID: po.ID})
		return err
	})
	if err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// Cancel solo para órdenes no recibidas y sin pagos.
func (uc *PurchaseOrderUseCase) Cancel(ctx context.Context, id string) (*dto.PurchaseOrderResponse, error) {
	err := uc.tx.Run(ctx, func(ctx context.Context) error {
		po, err := uc.load(ctx, id)
		if err != nil {
			return err
		}
		if po.Status == entity.PurchaseCancelled {
			return nil
		}
		if po.WarehouseStatus == entity.WarehouseReceived {
			return domain.ErrAlreadyReceived
		}
		has, err := uc.payments.HasPayments(ctx, repository.PaymentTarget{PurchaseOrderID: id})
		if err != nil {
			return err
		}
		if has {
			return fmt.Errorf("la orden tiene pagos registrados: %w", domain.ErrConflict)
		}
		po.Status = entity.PurchaseCancelled
		po.UpdatedAt = time.Now()
		return uc.repo.Update(ctx, po)
	})
	if err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// Delete solo para órdenes no recibidas y sin pagos.
func (uc *PurchaseOrderUseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(ctx context.Context) error {
		po, err := uc.load(ctx, id)
		if err != nil {
			return err
		}
		if po.WarehouseStatus == entity.WarehouseReceived {
			return domain.ErrAlreadyReceived
		}
		has, err := uc.payments.HasPayments(ctx, repository.PaymentTarget{PurchaseOrderID: id})
		if err != nil {
			return err
		}
		if has {
			return fmt.Errorf("la orden tiene pagos registrados: %w", domain.ErrConflict)
		}
		return uc.repo.Delete(ctx, id)
	})
}

// PDF documento imprimible de la orden de compra.
func (uc *PurchaseOrderUseCase) PDF(ctx context.Context, id string) ([]byte, string, error) {
	po, err := uc.load(ctx, id)
	if err != nil {
		return nil, "", err
	}
	s, err := uc.suppliers.GetByID(ctx, po.SupplierID)
	if err != nil {
		return nil, "", err
	}
	summary, err := uc.payments.Summary(ctx, repository.PaymentTarget{PurchaseOrderID: po.ID}, po.TotalAmount)
	if err != nil {
		return nil, "", err
	}
	out, err := uc.pdf.PurchaseOrderPDF(ctx, ports.PurchaseOrderDocument{PurchaseOrder: po, Supplier: s, Summary: summary})
	if err != nil {
		return nil, "", fmt.Errorf("generar orden de compra: %w", err)
	}
	return out, po.Code + ".pdf", nil
}

// ToPurchaseOrderResponse mapea la orden con su proveedor y lo pagado.
func ToPurchaseOrderResponse(po *entity.PurchaseOrder, s *entity.Supplier, paid decimal.Decimal) *dto.PurchaseOrderResponse {
	details := make([]dto.PurchaseOrderDetailResponse, 0, len(po.Details))
	for _, d := range po.Details {
		details = append(details, dto.PurchaseOrderDetailResponse{
			ProductID:    d.ProductID,
			ProductName:  d.ProductName,
			ProductImage: d.ProductImage,
			ProductPrice: d.ProductPrice,
			Quantity:     d.Quantity,
			TotalPrice:   d.TotalPrice,
		})
	}
	return &dto.PurchaseOrderResponse{
		ID:              po.ID,
		Code:            po.Code,
		SupplierID:      po.SupplierID,
		Supplier:        ToSupplierResponse(s),
		Details:         details,
		TotalAmount:     po.TotalAmount,
		TotalPaid:       paid,
		Status:          po.Status,
		WarehouseStatus: po.WarehouseStatus,
		PaymentStatus:   po.PaymentStatus,
		ReceivedAt:      po.ReceivedAt,
		CreatedAt:       po.CreatedAt,
		UpdatedAt:       po.UpdatedAt,
	}
}
