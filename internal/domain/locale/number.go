// Package locale normalizza i numeri in formato italiano (virgola come
// separatore decimale) verso decimal.Decimal.
package locale

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Decimal converte un valore grezzo di cella in decimale: trim, virgola→punto,
// parse. Un valore vuoto o non interpretabile normalizza a zero: è una
// politica di tolleranza dell'import, non un errore.
func Decimal(raw string) decimal.Decimal {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Quantity interpreta una quantità inserita dall'utente (virgola o punto).
// A differenza di Decimal, un valore non interpretabile o non positivo
// è un errore: la quantità di un movimento deve essere strettamente > 0.
func Quantity(raw string) (decimal.Decimal, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsPositive() {
		return decimal.Zero, false
	}
	return d, true
}
