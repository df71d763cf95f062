package repository

import (
	"context"

	"github.com/Rive3FY/magazzino-app/internal/domain/entity"
)

// ItemRepository definisce la porta di persistenza per l'anagrafica articoli (DIP).
type ItemRepository interface {
	GetByCode(ctx context.Context, code string) (*entity.Item, error)
	// ListPage restituisce una pagina ordinata per codice e il totale delle
	// righe che soddisfano il filtro (case-insensitive su codice o descrizione).
	ListPage(ctx context.Context, filter string, limit, offset int) ([]*entity.Item, int, error)
	// Suggest restituisce al massimo limit articoli il cui codice o descrizione
	// contiene il testo cercato (per la ricerca incrementale).
	Suggest(ctx context.Context, query string, limit int) ([]*entity.Item, error)
	// UpsertMany inserisce o sostituisce integralmente gli articoli per codice
	// (last-import-wins). Gli articoli non presenti nel batch restano invariati.
	UpsertMany(ctx context.Context, items []*entity.Item) error
}
