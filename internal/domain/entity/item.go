package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item rappresenta un articolo dell'anagrafica di magazzino (una riga per codice materiale).
// InitialQty è la giacenza di partenza letta dalla colonna TOTALE all'import;
// la giacenza attuale si ricalcola sempre dai movimenti, mai da colonne denormalizzate.
type Item struct {
	Code          string // Materiale, chiave univoca
	Name          string // Descrizione Materiale
	UM            string
	Division      string
	DivisionDesc  string
	Warehouse     string
	WarehouseDesc string
	GroupDesc     string
	QtyFree       decimal.Decimal // Qnt. a Mag. Libero (informativa)
	QtyBlocked    decimal.Decimal // Qnt. a Mag. bloccato (informativa)
	QtyQuality    decimal.Decimal // Controllo Qualità Magazzino (informativa)
	InitialQty    decimal.Decimal // TOTALE, sovrascritta a ogni re-import
	ImportedAt    time.Time
}
