package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipi di movimento di magazzino.
const (
	MovementKindIN  = "IN"  // entrata
	MovementKindOUT = "OUT" // uscita
)

// ValidMovementKind indica se kind è uno dei tipi ammessi.
func ValidMovementKind(kind string) bool {
	return kind == MovementKindIN || kind == MovementKindOUT
}

// Movement rappresenta un movimento di magazzino (entrata o uscita).
// Quantity è sempre > 0: la direzione la porta solo Kind, mai il segno.
// I movimenti non vengono mai aggiornati; la cancellazione è riservata all'admin.
type Movement struct {
	ID             string
	Code           string // riferimento a Item.Code
	Kind           string // IN, OUT
	Quantity       decimal.Decimal
	Note           string
	CreatedAt      time.Time
	CreatedBy      string // UserID, vuoto se non disponibile
	CreatedByLabel string // email o nome visualizzato dell'utente
}

// Signed restituisce la quantità con segno: positiva per IN, negativa per OUT.
func (m *Movement) Signed() decimal.Decimal {
	if m.Kind == MovementKindOUT {
		return m.Quantity.Neg()
	}
	return m.Quantity
}
