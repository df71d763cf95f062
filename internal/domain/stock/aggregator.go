// Package stock calcola la giacenza attuale a partire dal libro movimenti.
// La giacenza non è mai materializzata: ogni lettura la ricalcola come
// giacenza iniziale + somma con segno dei movimenti del codice.
package stock

import (
	"github.com/shopspring/decimal"

	"github.com/Rive3FY/magazzino-app/internal/domain/entity"
)

// Compute restituisce la giacenza attuale di un codice: initialQty più la
// somma con segno dei movimenti che lo riguardano (IN positivo, OUT negativo).
// I movimenti di altri codici vengono ignorati. La somma è indipendente
// dall'ordine della slice.
func Compute(code string, initialQty decimal.Decimal, movements []*entity.Movement) decimal.Decimal {
	total := initialQty
	for _, m := range movements {
		if m.Code != code {
			continue
		}
		total = total.Add(m.Signed())
	}
	return total
}

// ComputeAll calcola la giacenza per ogni articolo dato. Equivale a invocare
// Compute per ciascun codice in modo indipendente: nessuna interazione tra
// codici diversi. Articoli assenti dai movimenti restano alla giacenza iniziale.
func ComputeAll(items []*entity.Item, movements []*entity.Movement) map[string]decimal.Decimal {
	delta := make(map[string]decimal.Decimal, len(items))
	for _, m := range movements {
		delta[m.Code] = delta[m.Code].Add(m.Signed())
	}
	out := make(map[string]decimal.Decimal, len(items))
	for _, it := range items {
		out[it.Code] = it.InitialQty.Add(delta[it.Code])
	}
	return out
}
