package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/furnistore-api/internal/domain"
	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/jhoicas/furnistore-api/internal/domain/inventory"
	"github.com/jhoicas/furnistore-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// StockService aplica movimientos de existencias sobre el registro de bodega,
// los contadores del producto y el historial. Debe invocarse con el ctx de una
// transacción (ports.TxRunner) para que todo se confirme o descarte junto.
type StockService struct {
	warehouse repository.WarehouseRepository
	products  repository.ProductRepository
	movements repository.StockMovementRepository
}

// NewStockService construye el servicio.
func NewStockService(
	warehouse repository.WarehouseRepository,
	products repository.ProductRepository,
	movements repository.StockMovementRepository,
) *StockService {
	return &StockService{warehouse: warehouse, products: products, movements: movements}
}

// Sell (OUT) descuenta qty de la bodega, suma a sold y resta de quantity del producto.
// Devuelve ErrInsufficientStock si la existencia quedaría negativa.
func (s *StockService) Sell(ctx context.Context, productID string, qty int, reference, userID string) error {
	if qty <= 0 {
		return domain.Invalid("quantity", "debe ser mayor que cero")
	}
	rec, err := s.warehouse.Adjust(ctx, productID, -qty)
	if err != nil {
		return fmt.Errorf("descontar bodega: %w", err)
	}
	if rec.Quantity < 0 {
		// sin transacción no hay rollback: se compensa antes de fallar
		return s.compensate(ctx, productID, qty, domain.ErrInsufficientStock)
	}
	if err := s.products.AdjustCounters(ctx, productID, qty, -qty); err != nil {
		return fmt.Errorf("contadores de producto: %w", err)
	}
	return s.record(ctx, productID, entity.MovementTypeOut, -qty, rec.Quantity, reference, "", userID)
}

// compensate deshace un ajuste de bodega y devuelve cause; si la compensación
// también falla, ambos errores viajan juntos.
func (s *StockService) compensate(ctx context.Context, productID string, delta int, cause error) error {
	if _, err := s.warehouse.Adjust(ctx, productID, delta); err != nil {
		return errors.Join(cause, fmt.Errorf("compensar bodega de %s: %w", productID, err))
	}
	return cause
}

// Restock (RETURN) revierte una venta cancelada.
func (s *StockService) Restock(ctx context.Context, productID string, qty int, reference, userID string) error {
	if qty <= 0 {
		return nil
	}
	rec, err := s.warehouse.Adjust(ctx, productID, qty)
	if err != nil {
		return fmt.Errorf("reponer bodega: %w", err)
	}
	if err := s.products.AdjustCounters(ctx, productID, -qty, qty); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("contadores de producto: %w", err)
	}
	return s.record(ctx, productID, entity.MovementTypeReturn, qty, rec.Quantity, reference, "", userID)
}

// Receive (IN) ingresa mercancía de una orden de compra y recalcula el costo promedio ponderado.
func (s *StockService) Receive(ctx context.Context, product *entity.Product, qty int, unitCost decimal.Decimal, reference, userID string) error {
	if qty <= 0 {
		return nil
	}
	before, err := s.warehouse.GetByProduct(ctx, product.ID)
	if err != nil {
		return err
	}
	current := 0
	if before != nil {
		current = before.Quantity
	}
	rec, err := s.warehouse.Adjust(ctx, product.ID, qty)
	if err != nil {
		return fmt.Errorf("ingresar a bodega: %w", err)
	}

	product.Cost = inventory.WeightedAverageCost(current, product.Cost, qty, unitCost)
	product.Quantity += qty
	product.UpdatedAt = time.Now()
	if err := s.products.Update(ctx, product); err != nil {
		return fmt.Errorf("actualizar producto: %w", err)
	}
	return s.record(ctx, product.ID, entity.MovementTypeIn, qty, rec.Quantity, reference, "", userID)
}

// Adjust (ADJUSTMENT) suma delta manualmente; la existencia no puede quedar negativa.
func (s *StockService) Adjust(ctx context.Context, productID string, delta int, notes, userID string) (*entity.WarehouseRecord, error) {
	if delta == 0 {
		return nil, domain.Invalid("delta", "no puede ser cero")
	}
	rec, err := s.warehouse.Adjust(ctx, productID, delta)
	if err != nil {
		return nil, fmt.Errorf("ajustar bodega: %w", err)
	}
	if rec.Quantity < 0 {
		return nil, s.compensate(ctx, productID, -delta, domain.ErrInsufficientStock)
	}
	if err := s.products.AdjustCounters(ctx, productID, 0, delta); err != nil {
		return nil, fmt.Errorf("contadores de producto: %w", err)
	}
	if err := s.record(ctx, productID, entity.MovementTypeAdjust, delta, rec.Quantity, "", notes, userID); err != nil {
		return nil, err
	}
	return rec, nil
}

// Set fija la existencia de un producto (alta de producto o upsert de bodega) y registra la diferencia.
func (s *StockService) Set(ctx context.Context, productID string, quantity *int, location, notes, userID string) (*entity.WarehouseRecord, error) {
	now := time.Now()
	current, err := s.warehouse.GetByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	rec := &entity.WarehouseRecord{ID: uuid.NewString(), ProductID: productID, CreatedAt: now}
	if current != nil {
		*rec = *current
	}
	prev := rec.Quantity
	if quantity != nil {
		if *quantity < 0 {
			return nil, domain.Invalid("quantity", "no puede ser negativa")
		}
		rec.Quantity = *quantity
	}
	if location != "" {
		rec.Location = location
	}
	rec.LastUpdated = now
	rec.UpdatedAt = now
	if err := s.warehouse.Upsert(ctx, rec); err != nil {
		return nil, fmt.Errorf("guardar bodega: %w", err)
	}

	if delta := rec.Quantity - prev; delta != 0 {
		product, err := s.products.GetByID(ctx, productID)
		if err != nil {
			return nil, err
		}
		if product != nil {
			product.Quantity = rec.Quantity
			product.UpdatedAt = now
			if err := s.products.Update(ctx, product); err != nil {
				return nil, fmt.Errorf("actualizar producto: %w", err)
			}
		}
		if err := s.record(ctx, productID, entity.MovementTypeAdjust, delta, rec.Quantity, "", notes, userID); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

func (s *StockService) record(ctx context.Context, productID, typ string, qty, balance int, reference, notes, userID string) error {
	m := &entity.StockMovement{
		ID:        uuid.NewString(),
		ProductID: productID,
		Type:      typ,
		Quantity:  qty,
		Balance:   balance,
		Reference: reference,
		Notes:     notes,
		CreatedBy: userID,
		CreatedAt: time.Now(),
	}
	if err := s.movements.Create(ctx, m); err != nil {
		return fmt.Errorf("registrar movimiento: %w", err)
	}
	return nil
}

// Forget elimina el registro de bodega de un producto borrado; el historial se conserva.
func (s *StockService) Forget(ctx context.Context, productID string) error {
	if err := s.warehouse.DeleteByProduct(ctx, productID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("eliminar registro de bodega: %w", err)
	}
	return nil
}
