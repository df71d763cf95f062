package spreadsheet

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Rive3FY/magazzino-app/internal/application/dto"
	"github.com/Rive3FY/magazzino-app/internal/application/export"
)

var _ export.StockWriter = (*ExcelWriter)(nil)

// Intestazioni del file di export giacenze, nell'ordine della vista.
var exportHeaders = []string{
	"Materiale", "Descrizione Materiale", "Magazzino", "UM",
	"Qnt. a Mag. Libero", "Qnt. a Mag. bloccato", "Controllo Qualità Magazzino",
	"TOTALE", "Giacenza",
}

// ExcelWriter produce il file xlsx delle giacenze visualizzate.
type ExcelWriter struct{}

// NewExcelWriter costruisce lo scrittore.
func NewExcelWriter() *ExcelWriter {
	return &ExcelWriter{}
}

// WriteStock scrive le righe di giacenza in un foglio "Giacenze" e
// restituisce i byte del file. I campi riesportati fanno round-trip con le
// intestazioni riconosciute dall'import.
func (e *ExcelWriter) WriteStock(rows []dto.StockRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Giacenze"
	f.SetSheetName(f.GetSheetName(0), sheet)

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("scrittura intestazione: %w", err)
		}
	}

	for i, r := range rows {
		warehouse := r.Warehouse
		if r.WarehouseDesc != "" {
			if warehouse != "" {
				warehouse += " - "
			}
			warehouse += r.WarehouseDesc
		}
		values := []interface{}{
			r.Code, r.Name, warehouse, r.UM,
			r.QtyFree.String(), r.QtyBlocked.String(), r.QtyQuality.String(),
			r.InitialQty.String(), r.Stock.String(),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("scrittura riga %d: %w", i+1, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("serializzazione xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
