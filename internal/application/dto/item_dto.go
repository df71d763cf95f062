package dto

import (
	"github.com/shopspring/decimal"

	"github.com/Rive3FY/magazzino-app/internal/domain/entity"
)

// ItemResponse rappresentazione JSON di un articolo dell'anagrafica.
type ItemResponse struct {
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	UM            string          `json:"um,omitempty"`
	Division      string          `json:"division,omitempty"`
	DivisionDesc  string          `json:"division_desc,omitempty"`
	Warehouse     string          `json:"warehouse,omitempty"`
	WarehouseDesc string          `json:"warehouse_desc,omitempty"`
	GroupDesc     string          `json:"group_desc,omitempty"`
	QtyFree       decimal.Decimal `json:"qty_free"`
	QtyBlocked    decimal.Decimal `json:"qty_blocked"`
	QtyQuality    decimal.Decimal `json:"qty_quality"`
	InitialQty    decimal.Decimal `json:"initial_qty"`
}

// ToItemResponse converte l'entità in DTO.
func ToItemResponse(it *entity.Item) ItemResponse {
	return ItemResponse{
		Code:          it.Code,
		Name:          it.Name,
		UM:            it.UM,
		Division:      it.Division,
		DivisionDesc:  it.DivisionDesc,
		Warehouse:     it.Warehouse,
		WarehouseDesc: it.WarehouseDesc,
		GroupDesc:     it.GroupDesc,
		QtyFree:       it.QtyFree,
		QtyBlocked:    it.QtyBlocked,
		QtyQuality:    it.QtyQuality,
		InitialQty:    it.InitialQty,
	}
}

// SuggestionResponse voce della ricerca incrementale (codice + descrizione).
type SuggestionResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// StockRow articolo con giacenza calcolata (vista giacenze).
type StockRow struct {
	ItemResponse
	Stock decimal.Decimal `json:"stock"`
}

// ImportResponse esito dell'import anagrafica.
type ImportResponse struct {
	Imported int `json:"imported"` // righe valide caricate
	Skipped  int `json:"skipped"`  // righe scartate (codice o descrizione vuoti)
}
