package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/furnistore-api/internal/application/dto"
	"github.com/jhoicas/furnistore-api/internal/domain"
	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/jhoicas/furnistore-api/internal/domain/repository"
)

// SupplierUseCase gestión de proveedores.
type SupplierUseCase struct {
	repo      repository.SupplierRepository
	purchases repository.PurchaseOrderRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, purchases repository.PurchaseOrderRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, purchases: purchases}
}

func validateSupplier(in *dto.SupplierRequest) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Address = strings.TrimSpace(in.Address)
	in.TaxCode = strings.TrimSpace(in.TaxCode)
	switch {
	case in.Name == "":
		return domain.Invalid("name", "es obligatorio")
	case in.Phone == "":
		return domain.Invalid("phone", "es obligatorio")
	case in.Email == "":
		return domain.Invalid("email", "es obligatorio")
	case in.Address == "":
		return domain.Invalid("address", "es obligatorio")
	}
	return nil
}

// Create registra un proveedor.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	if err := validateSupplier(&in); err != nil {
		return nil, err
	}
	now := time.Now()
	s := &entity.Supplier{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		Address:   in.Address,
		TaxCode:   in.TaxCode,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return ToSupplierResponse(s), nil
}

// GetByID obtiene un proveedor.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id string) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return ToSupplierResponse(s), nil
}

// Update modifica un proveedor.
func (uc *SupplierUseCase) Update(ctx context.Context, id string, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	if err := validateSupplier(&in); err != nil {
		return nil, err
	}
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	s.Name, s.Phone, s.Email, s.Address, s.TaxCode = in.Name, in.Phone, in.Email, in.Address, in.TaxCode
	s.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return ToSupplierResponse(s), nil
}

// Delete elimina el proveedor si no tiene órdenes de compra.
func (uc *SupplierUseCase) Delete(ctx context.Context, id string) error {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	n, err := uc.purchases.CountBySupplier(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("el proveedor tiene %d órdenes de compra: %w", n, domain.ErrConflict)
	}
	return uc.repo.Delete(ctx, id)
}

// List lista proveedores con búsqueda libre.
func (uc *SupplierUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.SupplierListResponse, error) {
	page.Normalize(20, 100)
	list, total, err := uc.repo.List(ctx, strings.TrimSpace(page.Q), repository.Page{Limit: page.Limit, Offset: page.Offset()})
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *ToSupplierResponse(s))
	}
	return &dto.SupplierListResponse{Items: items, Pagination: dto.NewPagination(total, page.Page, page.Limit)}, nil
}

// ToSupplierResponse mapea la entidad a DTO.
func ToSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		Phone:     s.Phone,
		Email:     s.Email,
		Address:   s.Address,
		TaxCode:   s.TaxCode,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
