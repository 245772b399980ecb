package document

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	day := time.Date(2026, 3, 7, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "PO-20260307-0001", Code(PrefixPurchase, day, 1))
	assert.Equal(t, "ORD-20260307-0123", Code(PrefixOrder, day, 123))
}

func TestDayBounds(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	start, end := DayBounds(time.Date(2026, 3, 7, 23, 59, 0, 0, loc))
	assert.Equal(t, time.Date(2026, 3, 7, 0, 0, 0, 0, loc), start)
	assert.Equal(t, 24*time.Hour, end.Sub(start))
}

func TestPOSTransactionID(t *testing.T) {
	assert.Equal(t, "POS-1700000000000", POSTransactionID(time.UnixMilli(1700000000000)))
}

func TestNextCode(t *testing.T) {
	day := time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "ORD-20260307-", DayPrefix(PrefixOrder, day))
	assert.Equal(t, "ORD-20260307-0001", NextCode(PrefixOrder, day, ""))
	assert.Equal(t, "ORD-20260307-0004", NextCode(PrefixOrder, day, "ORD-20260307-0003"))
	assert.Equal(t, "ORD-20260307-0001", NextCode(PrefixOrder, day, "ORD-20260306-0009"), "otro día reinicia")
	assert.Equal(t, "PO-20260307-0001", NextCode(PrefixPurchase, day, "ORD-20260307-0007"))
}
