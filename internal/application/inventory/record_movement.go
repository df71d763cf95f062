package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Rive3FY/magazzino-app/internal/application/dto"
	"github.com/Rive3FY/magazzino-app/internal/domain"
	"github.com/Rive3FY/magazzino-app/internal/domain/entity"
	"github.com/Rive3FY/magazzino-app/internal/domain/locale"
	"github.com/Rive3FY/magazzino-app/internal/domain/repository"
)

// Actor identifica l'utente che esegue l'operazione (per i campi di audit).
type Actor struct {
	UserID string
	Label  string // email o nome visualizzato
}

// RecordMovementUseCase valida e registra un movimento di magazzino.
// Per le uscite ricalcola la giacenza al momento della chiamata e rifiuta
// quelle che la porterebbero sotto zero. Il controllo non è serializzato
// rispetto ad altri registratori concorrenti: due uscite simultanee possono
// superare entrambe la verifica sulla stessa lettura.
type RecordMovementUseCase struct {
	itemRepo repository.ItemRepository
	movRepo  repository.MovementRepository
	stockUC  *StockUseCase
}

// NewRecordMovementUseCase costruisce il caso d'uso.
func NewRecordMovementUseCase(
	itemRepo repository.ItemRepository,
	movRepo repository.MovementRepository,
	stockUC *StockUseCase,
) *RecordMovementUseCase {
	return &RecordMovementUseCase{itemRepo: itemRepo, movRepo: movRepo, stockUC: stockUC}
}

// Record valida l'input, applica il vincolo di giacenza non negativa per le
// uscite e appende il movimento. Unico effetto osservabile: una riga in più
// nel libro movimenti; l'anagrafica non viene toccata.
func (uc *RecordMovementUseCase) Record(ctx context.Context, actor Actor, in dto.RecordMovementRequest) (*entity.Movement, error) {
	if in.Code == "" || !entity.ValidMovementKind(in.Kind) {
		return nil, domain.ErrInvalidInput
	}
	qty, ok := locale.Quantity(in.Quantity)
	if !ok {
		return nil, domain.ErrInvalidInput
	}

	item, err := uc.itemRepo.GetByCode(ctx, in.Code)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}

	if in.Kind == entity.MovementKindOUT {
		current, err := uc.stockUC.StockByCode(ctx, in.Code)
		if err != nil {
			return nil, err
		}
		resulting := current.Sub(qty)
		if resulting.IsNegative() {
			return nil, &domain.InsufficientStockError{
				Code:      in.Code,
				Current:   current,
				Resulting: resulting,
			}
		}
	}

	mov := &entity.Movement{
		ID:             uuid.New().String(),
		Code:           in.Code,
		Kind:           in.Kind,
		Quantity:       qty,
		Note:           in.Note,
		CreatedAt:      time.Now(),
		CreatedBy:      actor.UserID,
		CreatedByLabel: actor.Label,
	}
	if err := uc.movRepo.Create(ctx, mov); err != nil {
		return nil, err
	}
	return mov, nil
}

// ListRecent restituisce lo storico movimenti (più recenti prima),
// opzionalmente filtrato per codice. Il default riflette la vista storica:
// ultime 200 righe.
func (uc *RecordMovementUseCase) ListRecent(ctx context.Context, code string, limit, offset int) ([]*entity.Movement, error) {
	if limit <= 0 || limit > 200 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}
	return uc.movRepo.ListRecent(ctx, code, limit, offset)
}

// Delete elimina un movimento dal libro. Nessun effetto a cascata: la
// giacenza si riallinea automaticamente alla lettura successiva.
// L'autorizzazione admin è verificata a monte, una volta per operazione.
func (uc *RecordMovementUseCase) Delete(ctx context.Context, id string) error {
	mov, err := uc.movRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if mov == nil {
		return domain.ErrNotFound
	}
	return uc.movRepo.DeleteByID(ctx, id)
}
