// Package reporting agrupa los trabajos periódicos que publican información fuera de la API.
package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/furnistore-api/internal/application/ports"
	"github.com/jhoicas/furnistore-api/internal/domain/document"
	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/jhoicas/furnistore-api/internal/domain/repository"
)

// CashbookExportUseCase exporta los asientos de caja de un día.
type CashbookExportUseCase struct {
	cashbook repository.CashbookRepository
	exporter ports.CashbookExporter
}

// NewCashbookExportUseCase construye el caso de uso.
func NewCashbookExportUseCase(cashbook repository.CashbookRepository, exporter ports.CashbookExporter) *CashbookExportUseCase {
	return &CashbookExportUseCase{cashbook: cashbook, exporter: exporter}
}

// ExportDay envía los asientos con fecha de pago en el día de `day`. Devuelve cuántos exportó.
func (uc *CashbookExportUseCase) ExportDay(ctx context.Context, day time.Time) (int, error) {
	from, to := document.DayBounds(day)
	to = to.Add(-time.Nanosecond)
	entries, _, err := uc.cashbook.List(ctx, repository.CashbookFilter{From: &from, To: &to}, repository.Page{})
	if err != nil {
		return 0, err
	}
	if len(entries) == 0 {
		return 0, nil
	}
	// la hoja se lee en orden cronológico
	ordered := make([]*entity.CashbookEntry, len(entries))
	for i, e := range entries {
		ordered[len(entries)-1-i] = e
	}
	if err := uc.exporter.ExportCashbook(ctx, ordered); err != nil {
		return 0, fmt.Errorf("exportar libro de caja: %w", err)
	}
	return len(ordered), nil
}
