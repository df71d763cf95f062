package export

import (
	"context"
	"time"

	"github.com/Rive3FY/magazzino-app/internal/application/dto"
	"github.com/Rive3FY/magazzino-app/internal/application/inventory"
)

// Limite di righe per un export: abbastanza ampio da coprire l'anagrafica
// tipica senza caricare tabelle arbitrariamente grandi in memoria.
const maxExportRows = 5000

// StockWriter produce un file Excel dalle righe di giacenza visualizzate.
type StockWriter interface {
	WriteStock(rows []dto.StockRow) ([]byte, error)
}

// ReportGenerator produce il report PDF delle giacenze.
type ReportGenerator interface {
	StockReport(rows []dto.StockRow, generatedAt time.Time) ([]byte, error)
}

// UseCase esporta la vista giacenze corrente (stesso filtro della pagina)
// in Excel o PDF. Le giacenze sono ricalcolate al momento dell'export:
// il file riflette il libro movimenti, non valori memorizzati.
type UseCase struct {
	stockUC *inventory.StockUseCase
	xlsx    StockWriter
	pdf     ReportGenerator
}

// NewUseCase costruisce il caso d'uso di export.
func NewUseCase(stockUC *inventory.StockUseCase, xlsx StockWriter, pdf ReportGenerator) *UseCase {
	return &UseCase{stockUC: stockUC, xlsx: xlsx, pdf: pdf}
}

// StockXLSX esporta le righe filtrate in un file Excel.
func (uc *UseCase) StockXLSX(ctx context.Context, filter string) ([]byte, error) {
	rows, _, err := uc.stockUC.StockPage(ctx, filter, maxExportRows, 0)
	if err != nil {
		return nil, err
	}
	return uc.xlsx.WriteStock(rows)
}

// StockPDF esporta le righe filtrate in un report PDF.
func (uc *UseCase) StockPDF(ctx context.Context, filter string) ([]byte, error) {
	rows, _, err := uc.stockUC.StockPage(ctx, filter, maxExportRows, 0)
	if err != nil {
		return nil, err
	}
	return uc.pdf.StockReport(rows, time.Now())
}
