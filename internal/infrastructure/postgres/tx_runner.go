package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Rive3FY/magazzino-app/internal/application/importer"
	"github.com/Rive3FY/magazzino-app/internal/domain/repository"
)

var _ importer.TxRunner = (*TxRunner)(nil)

// TxRunner esegue callback dentro una transazione PostgreSQL.
// L'upsert massivo dell'import passa da qui: o entra tutto il batch o niente.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner costruisce il runner con il pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run apre una transazione, esegue fn con un repository legato alla tx e fa
// Commit, oppure Rollback se fn fallisce.
func (r *TxRunner) Run(ctx context.Context, fn func(itemRepo repository.ItemRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewItemRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
