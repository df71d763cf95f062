package catalog

import (
	"context"

	"github.com/Rive3FY/magazzino-app/internal/domain/entity"
	"github.com/Rive3FY/magazzino-app/internal/domain/repository"
)

// Numero massimo di voci nella finestra della ricerca incrementale.
const maxSuggestions = 12

// UseCase letture dell'anagrafica articoli (listato paginato e ricerca
// incrementale). Le scritture passano solo dall'import.
type UseCase struct {
	itemRepo repository.ItemRepository
}

// NewUseCase costruisce il caso d'uso.
func NewUseCase(itemRepo repository.ItemRepository) *UseCase {
	return &UseCase{itemRepo: itemRepo}
}

// ListPage restituisce una pagina di anagrafica e il totale filtrato.
func (uc *UseCase) ListPage(ctx context.Context, filter string, limit, offset int) ([]*entity.Item, int, error) {
	return uc.itemRepo.ListPage(ctx, filter, limit, offset)
}

// Suggest restituisce al massimo 12 articoli per la ricerca incrementale.
// Query vuota: nessun risultato, come nella casella di ricerca.
func (uc *UseCase) Suggest(ctx context.Context, query string) ([]*entity.Item, error) {
	if query == "" {
		return nil, nil
	}
	return uc.itemRepo.Suggest(ctx, query, maxSuggestions)
}
