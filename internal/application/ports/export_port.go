package ports

import (
	"context"

	"github.com/jhoicas/furnistore-api/internal/domain/entity"
)

// CashbookExporter envía asientos del libro de caja a un destino externo (hoja de cálculo).
type CashbookExporter interface {
	ExportCashbook(ctx context.Context, entries []*entity.CashbookEntry) error
}
