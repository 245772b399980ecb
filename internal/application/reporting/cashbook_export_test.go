package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/jhoicas/furnistore-api/internal/infrastructure/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExporter struct {
	got []*entity.CashbookEntry
	err error
}

func (f *fakeExporter) ExportCashbook(_ context.Context, entries []*entity.CashbookEntry) error {
	f.got = entries
	return f.err
}

func TestExportDay_SoloElDiaEnOrdenCronologico(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRegistry(memory.NewStore())
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	for id, h := range map[string]int{"a": 9, "b": 15, "c": 26} {
		require.NoError(t, repo.Cashbook.Create(ctx, &entity.CashbookEntry{
			ID:          id,
			PaymentID:   id,
			Direction:   entity.DirectionIn,
			Amount:      decimal.NewFromInt(100),
			PaymentDate: day.Add(time.Duration(h) * time.Hour),
		}))
	}
	exp := &fakeExporter{}
	uc := NewCashbookExportUseCase(repo.Cashbook, exp)

	n, err := uc.ExportDay(ctx, day.Add(12*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, exp.got, 2)
	assert.True(t, exp.got[0].PaymentDate.Before(exp.got[1].PaymentDate))
}

func TestExportDay_SinAsientosNoLlamaAlExportador(t *testing.T) {
	exp := &fakeExporter{err: errors.New("no debería llamarse")}
	uc := NewCashbookExportUseCase(memory.NewRegistry(memory.NewStore()).Cashbook, exp)
	n, err := uc.ExportDay(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Nil(t, exp.got)
}
