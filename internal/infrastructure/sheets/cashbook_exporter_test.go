package sheets

import (
	"context"
	"testing"
	"time"

	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCashbookRow(t *testing.T) {
	row := cashbookRow(&entity.CashbookEntry{
		PaymentID:       "pay-1",
		Direction:       entity.DirectionOut,
		Source:          entity.SourcePurchase,
		PurchaseOrderID: "po-1",
		Amount:          decimal.RequireFromString("2500000.4"),
		PaymentMethod:   entity.MethodBankTransfer,
		PaymentDate:     time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Note:            "anticipo",
	})
	require.Len(t, row, 8)
	assert.Equal(t, []interface{}{"2026-03-14 09:30", "Chi", "purchase", "po-1", "BankTransfer", "2500000", "anticipo", "pay-1"}, row)
}

func TestExportCashbook_SinAsientosNoLlamaALaAPI(t *testing.T) {
	e := &CashbookExporter{}
	assert.NoError(t, e.ExportCashbook(context.Background(), nil))
}
