package repository

import (
	"context"

	"github.com/Rive3FY/magazzino-app/internal/domain/entity"
)

// MovementRepository definisce la porta di persistenza per il libro movimenti (DIP).
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	GetByID(ctx context.Context, id string) (*entity.Movement, error)
	// ListByCodes restituisce tutti i movimenti dei codici indicati, senza
	// paginazione: servono interi per il ricalcolo della giacenza.
	ListByCodes(ctx context.Context, codes []string) ([]*entity.Movement, error)
	// ListRecent restituisce gli ultimi movimenti (più recenti prima),
	// opzionalmente filtrati per codice.
	ListRecent(ctx context.Context, code string, limit, offset int) ([]*entity.Movement, error)
	DeleteByID(ctx context.Context, id string) error
}
