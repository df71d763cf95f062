package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Rive3FY/magazzino-app/internal/domain/entity"
	"github.com/Rive3FY/magazzino-app/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementazione di ItemRepository su PostgreSQL (usabile con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository costruisce l'adapter di persistenza per l'anagrafica.
// Passare pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `code, name, um, division, division_desc, warehouse, warehouse_desc,
	group_desc, qty_free, qty_blocked, qty_quality, initial_qty, imported_at`

func scanItem(row pgx.Row) (*entity.Item, error) {
	var it entity.Item
	err := row.Scan(
		&it.Code, &it.Name, &it.UM, &it.Division, &it.DivisionDesc,
		&it.Warehouse, &it.WarehouseDesc, &it.GroupDesc,
		&it.QtyFree, &it.QtyBlocked, &it.QtyQuality, &it.InitialQty, &it.ImportedAt,
	)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// GetByCode restituisce l'articolo con il codice dato, nil se assente.
func (r *ItemRepo) GetByCode(ctx context.Context, code string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE code = $1`
	it, err := scanItem(r.q.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return it, nil
}

// ListPage restituisce una pagina ordinata per codice e il totale delle righe
// filtrate. Il filtro cerca case-insensitive su codice o descrizione.
func (r *ItemRepo) ListPage(ctx context.Context, filter string, limit, offset int) ([]*entity.Item, int, error) {
	pattern := "%" + filter + "%"

	var total int
	countQuery := `
		SELECT count(*) FROM items
		WHERE $1 = '' OR code ILIKE $2 OR name ILIKE $2`
	if err := r.q.QueryRow(ctx, countQuery, filter, pattern).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count items: %w", err)
	}

	query := `
		SELECT ` + itemColumns + ` FROM items
		WHERE $1 = '' OR code ILIKE $2 OR name ILIKE $2
		ORDER BY code ASC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, filter, pattern, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var list []*entity.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, it)
	}
	return list, total, rows.Err()
}

// Suggest restituisce al massimo limit articoli per la ricerca incrementale.
func (r *ItemRepo) Suggest(ctx context.Context, query string, limit int) ([]*entity.Item, error) {
	pattern := "%" + query + "%"
	sql := `
		SELECT ` + itemColumns + ` FROM items
		WHERE code ILIKE $1 OR name ILIKE $1
		ORDER BY code ASC
		LIMIT $2`
	rows, err := r.q.Query(ctx, sql, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("suggest items: %w", err)
	}
	defer rows.Close()

	var list []*entity.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// UpsertMany inserisce o sostituisce integralmente gli articoli per codice
// in un unico batch pgx. Ogni colonna viene sovrascritta: nessun merge di
// campi dal record precedente (last-import-wins).
func (r *ItemRepo) UpsertMany(ctx context.Context, items []*entity.Item) error {
	batch := &pgx.Batch{}
	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (code) DO UPDATE SET
			name = EXCLUDED.name,
			um = EXCLUDED.um,
			division = EXCLUDED.division,
			division_desc = EXCLUDED.division_desc,
			warehouse = EXCLUDED.warehouse,
			warehouse_desc = EXCLUDED.warehouse_desc,
			group_desc = EXCLUDED.group_desc,
			qty_free = EXCLUDED.qty_free,
			qty_blocked = EXCLUDED.qty_blocked,
			qty_quality = EXCLUDED.qty_quality,
			initial_qty = EXCLUDED.initial_qty,
			imported_at = EXCLUDED.imported_at`
	for _, it := range items {
		batch.Queue(query,
			it.Code, it.Name, it.UM, it.Division, it.DivisionDesc,
			it.Warehouse, it.WarehouseDesc, it.GroupDesc,
			it.QtyFree, it.QtyBlocked, it.QtyQuality, it.InitialQty, it.ImportedAt,
		)
	}
	br := r.q.SendBatch(ctx, batch)
	defer br.Close()
	for range items {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("upsert items: %w", err)
		}
	}
	return nil
}
