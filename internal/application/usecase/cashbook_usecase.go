package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/furnistore-api/internal/application/dto"
	"github.com/jhoicas/furnistore-api/internal/domain"
	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/jhoicas/furnistore-api/internal/domain/repository"
)

// CashbookUseCase consulta del libro de caja (Thu = entradas, Chi = salidas).
type CashbookUseCase struct {
	repo repository.CashbookRepository
}

// NewCashbookUseCase construye el caso de uso.
func NewCashbookUseCase(repo repository.CashbookRepository) *CashbookUseCase {
	return &CashbookUseCase{repo: repo}
}

// List asientos filtrados por rango de fechas, dirección y texto, con totales del filtro.
func (uc *CashbookUseCase) List(ctx context.Context, q dto.CashbookQuery) (*dto.CashbookListResponse, error) {
	q.Normalize(20, 100)
	if q.From != nil && q.To != nil && q.From.After(*q.To) {
		return nil, domain.Invalid("from", "no puede ser posterior a to")
	}
	dir := strings.ToLower(strings.TrimSpace(q.Direction))
	if dir != "" && dir != entity.DirectionIn && dir != entity.DirectionOut {
		return nil, domain.Invalid("direction", "debe ser in u out")
	}
	f := repository.CashbookFilter{From: q.From, To: q.To, Search: strings.TrimSpace(q.Q), Direction: dir}

	list, total, err := uc.repo.List(ctx, f, repository.Page{Limit: q.Limit, Offset: q.Offset()})
	if err != nil {
		return nil, err
	}
	totals, err := uc.repo.Totals(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CashbookEntryResponse, 0, len(list))
	for _, e := range list {
		items = append(items, ToCashbookEntryResponse(e))
	}
	return &dto.CashbookListResponse{
		Items:      items,
		Pagination: dto.NewPagination(total, q.Page, q.Limit),
		Summary: dto.CashbookSummary{
			TotalIn:  totals.TotalIn,
			TotalOut: totals.TotalOut,
			Balance:  totals.TotalIn.Sub(totals.TotalOut),
		},
	}, nil
}

// ToCashbookEntryResponse mapea el asiento a DTO.
func ToCashbookEntryResponse(e *entity.CashbookEntry) dto.CashbookEntryResponse {
	return dto.CashbookEntryResponse{
		ID:              e.ID,
		PaymentID:       e.PaymentID,
		Direction:       e.Direction,
		Source:          e.Source,
		OrderID:         e.OrderID,
		PurchaseOrderID: e.PurchaseOrderID,
		Amount:          e.Amount,
		PaymentMethod:   e.PaymentMethod,
		PaymentDate:     e.PaymentDate,
		Note:            e.Note,
		CreatedBy:       e.CreatedBy,
		CreatedAt:       e.CreatedAt,
	}
}
