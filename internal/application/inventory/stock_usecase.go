package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Rive3FY/magazzino-app/internal/application/dto"
	"github.com/Rive3FY/magazzino-app/internal/domain/repository"
	"github.com/Rive3FY/magazzino-app/internal/domain/stock"
)

// StockUseCase calcola le giacenze attuali. Nessuno stato: ogni lettura
// ricarica anagrafica e movimenti dallo store e ricalcola la somma.
type StockUseCase struct {
	itemRepo repository.ItemRepository
	movRepo  repository.MovementRepository
}

// NewStockUseCase costruisce il caso d'uso.
func NewStockUseCase(itemRepo repository.ItemRepository, movRepo repository.MovementRepository) *StockUseCase {
	return &StockUseCase{itemRepo: itemRepo, movRepo: movRepo}
}

// StockByCode restituisce la giacenza attuale di un singolo codice.
// Se il codice non ha un articolo in anagrafica la base è zero, non un errore.
func (uc *StockUseCase) StockByCode(ctx context.Context, code string) (decimal.Decimal, error) {
	initial := decimal.Zero
	item, err := uc.itemRepo.GetByCode(ctx, code)
	if err != nil {
		return decimal.Zero, err
	}
	if item != nil {
		initial = item.InitialQty
	}
	movs, err := uc.movRepo.ListByCodes(ctx, []string{code})
	if err != nil {
		return decimal.Zero, err
	}
	return stock.Compute(code, initial, movs), nil
}

// StockPage restituisce una pagina di anagrafica con la giacenza calcolata
// per i soli codici della pagina, più il totale delle righe filtrate.
func (uc *StockUseCase) StockPage(ctx context.Context, filter string, limit, offset int) ([]dto.StockRow, int, error) {
	items, total, err := uc.itemRepo.ListPage(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	if len(items) == 0 {
		return []dto.StockRow{}, total, nil
	}

	codes := make([]string, 0, len(items))
	for _, it := range items {
		codes = append(codes, it.Code)
	}
	movs, err := uc.movRepo.ListByCodes(ctx, codes)
	if err != nil {
		return nil, 0, err
	}

	levels := stock.ComputeAll(items, movs)
	rows := make([]dto.StockRow, 0, len(items))
	for _, it := range items {
		rows = append(rows, dto.StockRow{
			ItemResponse: dto.ToItemResponse(it),
			Stock:        levels[it.Code],
		})
	}
	return rows, total, nil
}
