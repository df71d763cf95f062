// Package spreadsheet legge e scrive file Excel (.xlsx) con excelize.
// Le righe vengono esposte come mappe intestazione→valore grezzo: la
// validazione e la coercizione dei tipi restano al normalizzatore di import.
package spreadsheet

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/Rive3FY/magazzino-app/internal/application/importer"
)

var _ importer.RowReader = (*ExcelReader)(nil)

// ExcelReader legge il primo foglio di un file xlsx.
type ExcelReader struct{}

// NewExcelReader costruisce il lettore.
func NewExcelReader() *ExcelReader {
	return &ExcelReader{}
}

// Rows restituisce le righe del primo foglio come mappe intestazione→valore.
// La prima riga è l'intestazione; le celle mancanti in coda valgono stringa
// vuota, come le celle vuote.
func (e *ExcelReader) Rows(r io.Reader) ([]map[string]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("apertura file excel: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("file excel senza fogli")
	}
	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("lettura foglio %q: %w", sheets[0], err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	headers := raw[0]
	rows := make([]map[string]string, 0, len(raw)-1)
	for _, cells := range raw[1:] {
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if h == "" {
				continue
			}
			if i < len(cells) {
				row[h] = cells[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
