// Package money formatea importes para documentos impresos.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Vietnamese)

// FormatVND formatea un importe entero con separador de miles vietnamita: 1.250.000 ₫
func FormatVND(amount decimal.Decimal) string {
	return printer.Sprintf("%d", amount.Round(0).IntPart()) + " ₫"
}
