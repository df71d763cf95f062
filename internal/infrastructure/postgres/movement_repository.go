package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Rive3FY/magazzino-app/internal/domain/entity"
	"github.com/Rive3FY/magazzino-app/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementazione di MovementRepository su PostgreSQL (usabile con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository costruisce l'adapter del libro movimenti. Passare pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id, code, kind, quantity, note, created_at, created_by, created_by_label`

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	var createdBy, label *string
	err := row.Scan(&m.ID, &m.Code, &m.Kind, &m.Quantity, &m.Note, &m.CreatedAt, &createdBy, &label)
	if err != nil {
		return nil, err
	}
	if createdBy != nil {
		m.CreatedBy = *createdBy
	}
	if label != nil {
		m.CreatedByLabel = *label
	}
	return &m, nil
}

// Create persiste un movimento. I movimenti non vengono mai aggiornati.
func (r *MovementRepo) Create(ctx context.Context, movement *entity.Movement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	createdBy := (*string)(nil)
	if movement.CreatedBy != "" {
		createdBy = &movement.CreatedBy
	}
	_, err := r.q.Exec(ctx, query,
		movement.ID, movement.Code, movement.Kind, movement.Quantity,
		movement.Note, movement.CreatedAt, createdBy, movement.CreatedByLabel,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// GetByID restituisce un movimento per ID, nil se assente.
func (r *MovementRepo) GetByID(ctx context.Context, id string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE id = $1`
	m, err := scanMovement(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// ListByCodes restituisce tutti i movimenti dei codici indicati, senza
// paginazione: il ricalcolo della giacenza li richiede interi.
func (r *MovementRepo) ListByCodes(ctx context.Context, codes []string) ([]*entity.Movement, error) {
	if len(codes) == 0 {
		return nil, nil
	}
	query := `SELECT ` + movementColumns + ` FROM movements WHERE code = ANY($1)`
	rows, err := r.q.Query(ctx, query, codes)
	if err != nil {
		return nil, fmt.Errorf("list movements by codes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// ListRecent restituisce i movimenti più recenti prima, opzionalmente
// filtrati per codice (code vuoto = tutti).
func (r *MovementRepo) ListRecent(ctx context.Context, code string, limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT ` + movementColumns + ` FROM movements
		WHERE $1 = '' OR code = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, code, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// DeleteByID elimina un movimento dal libro. Nessun effetto a cascata.
func (r *MovementRepo) DeleteByID(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM movements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	return nil
}
