package scheduler

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/jhoicas/furnistore-api/internal/application/dto"
	"github.com/jhoicas/furnistore-api/pkg/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLowStock struct{ items []dto.LowStockItemDTO }

func (f fakeLowStock) LowStock(context.Context) ([]dto.LowStockItemDTO, error) { return f.items, nil }

type fakeExporter struct{ day time.Time }

func (f *fakeExporter) ExportDay(_ context.Context, day time.Time) (int, error) {
	f.day = day
	return 3, nil
}

var cfg = config.SchedulerConfig{LowStockCron: "0 8 * * *", CashbookExportCron: "30 0 * * *", Timezone: "UTC"}

func TestNew_ZonaHorariaInvalida(t *testing.T) {
	bad := cfg
	bad.Timezone = "Marte/Olympus"
	_, err := New(bad, fakeLowStock{}, nil, zerolog.Nop())
	assert.Error(t, err)
}

func TestStart_ExpresionInvalida(t *testing.T) {
	bad := cfg
	bad.LowStockCron = "cada mañana"
	s, err := New(bad, fakeLowStock{}, nil, zerolog.Nop())
	require.NoError(t, err)
	assert.Error(t, s.Start())
}

func TestStart_SinExportadorSoloBajoStock(t *testing.T) {
	s, err := New(cfg, fakeLowStock{}, nil, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, s.Start())
	defer s.Stop()
	assert.Len(t, s.cron.Entries(), 1)
}

func TestReportLowStock_LogPorProducto(t *testing.T) {
	var buf bytes.Buffer
	s, err := New(cfg, fakeLowStock{items: []dto.LowStockItemDTO{
		{ProductID: "p1", SKU: "FURN-1", CurrentStock: 2, ReorderLevel: 20, SuggestedOrderQty: 28},
	}}, nil, zerolog.New(&buf))
	require.NoError(t, err)

	s.reportLowStock()
	assert.Contains(t, buf.String(), `"sku":"FURN-1"`)
	assert.Contains(t, buf.String(), `"suggested":28`)
}

func TestExportCashbook_ExportaAyer(t *testing.T) {
	exp := &fakeExporter{}
	s, err := New(cfg, fakeLowStock{}, exp, zerolog.Nop())
	require.NoError(t, err)
	today := time.Date(2026, 3, 15, 0, 30, 0, 0, time.UTC)
	s.now = func() time.Time { return today }

	s.exportCashbook()
	assert.Equal(t, 14, exp.day.Day())
}
