// Package document genera los códigos legibles de pedidos y órdenes de compra.
package document

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Prefijos de documento.
const (
	PrefixOrder    = "ORD"
	PrefixPurchase = "PO"
	PrefixPOS      = "POS"
)

// Code formatea PREFIJO-YYYYMMDD-NNNN donde seq es el consecutivo del día (desde 1).
func Code(prefix string, day time.Time, seq int64) string {
	return fmt.Sprintf("%s-%s-%04d", prefix, day.Format("20060102"), seq)
}

// DayPrefix parte fija de los códigos de un día: PREFIJO-YYYYMMDD-.
func DayPrefix(prefix string, day time.Time) string {
	return fmt.Sprintf("%s-%s-", prefix, day.Format("20060102"))
}

// NextCode código siguiente a last, el mayor emitido en el día; vacío inicia en 0001.
// Un documento borrado no libera su número.
func NextCode(prefix string, day time.Time, last string) string {
	var seq int64
	if rest, ok := strings.CutPrefix(last, DayPrefix(prefix, day)); ok {
		if n, err := strconv.ParseInt(rest, 10, 64); err == nil {
			seq = n
		}
	}
	return Code(prefix, day, seq+1)
}

// DayBounds devuelve [inicio, fin) del día de t en su zona horaria.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

// POSTransactionID identificador de transacción de una venta en mostrador.
func POSTransactionID(now time.Time) string {
	return fmt.Sprintf("%s-%d", PrefixPOS, now.UnixMilli())
}
