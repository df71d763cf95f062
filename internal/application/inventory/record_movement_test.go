package inventory_test

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rive3FY/magazzino-app/internal/application/dto"
	"github.com/Rive3FY/magazzino-app/internal/application/inventory"
	"github.com/Rive3FY/magazzino-app/internal/domain"
	"github.com/Rive3FY/magazzino-app/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake in memoria delle porte di persistenza
// ──────────────────────────────────────────────────────────────────────────────

type fakeItemRepo struct {
	items map[string]*entity.Item
}

func newFakeItemRepo(items ...*entity.Item) *fakeItemRepo {
	r := &fakeItemRepo{items: map[string]*entity.Item{}}
	for _, it := range items {
		r.items[it.Code] = it
	}
	return r
}

func (r *fakeItemRepo) GetByCode(_ context.Context, code string) (*entity.Item, error) {
	return r.items[code], nil
}

func (r *fakeItemRepo) ListPage(_ context.Context, filter string, limit, offset int) ([]*entity.Item, int, error) {
	var all []*entity.Item
	for _, it := range r.items {
		if filter == "" ||
			strings.Contains(strings.ToLower(it.Code), strings.ToLower(filter)) ||
			strings.Contains(strings.ToLower(it.Name), strings.ToLower(filter)) {
			all = append(all, it)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Code < all[j].Code })
	total := len(all)
	if offset >= len(all) {
		return nil, total, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, total, nil
}

func (r *fakeItemRepo) Suggest(ctx context.Context, query string, limit int) ([]*entity.Item, error) {
	items, _, err := r.ListPage(ctx, query, limit, 0)
	return items, err
}

func (r *fakeItemRepo) UpsertMany(_ context.Context, items []*entity.Item) error {
	for _, it := range items {
		r.items[it.Code] = it
	}
	return nil
}

type fakeMovementRepo struct {
	movements []*entity.Movement
}

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.Movement) error {
	r.movements = append(r.movements, m)
	return nil
}

func (r *fakeMovementRepo) GetByID(_ context.Context, id string) (*entity.Movement, error) {
	for _, m := range r.movements {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeMovementRepo) ListByCodes(_ context.Context, codes []string) ([]*entity.Movement, error) {
	want := map[string]bool{}
	for _, c := range codes {
		want[c] = true
	}
	var out []*entity.Movement
	for _, m := range r.movements {
		if want[m.Code] {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) ListRecent(_ context.Context, code string, limit, offset int) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for i := len(r.movements) - 1; i >= 0; i-- {
		if code == "" || r.movements[i].Code == code {
			out = append(out, r.movements[i])
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeMovementRepo) DeleteByID(_ context.Context, id string) error {
	for i, m := range r.movements {
		if m.ID == id {
			r.movements = append(r.movements[:i], r.movements[i+1:]...)
			return nil
		}
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helper
// ──────────────────────────────────────────────────────────────────────────────

func itemWithInitial(code string, initial string) *entity.Item {
	return &entity.Item{
		Code:       code,
		Name:       "Articolo " + code,
		InitialQty: decimal.RequireFromString(initial),
	}
}

func buildRecorder(itemRepo *fakeItemRepo, movRepo *fakeMovementRepo) (*inventory.RecordMovementUseCase, *inventory.StockUseCase) {
	stockUC := inventory.NewStockUseCase(itemRepo, movRepo)
	return inventory.NewRecordMovementUseCase(itemRepo, movRepo, stockUC), stockUC
}

var testActor = inventory.Actor{UserID: "u-1", Label: "mario.rossi@example.it"}

// ──────────────────────────────────────────────────────────────────────────────
// Test registrazione movimenti
// ──────────────────────────────────────────────────────────────────────────────

func TestRecord_CaricoAumentaLaGiacenza(t *testing.T) {
	itemRepo := newFakeItemRepo(itemWithInitial("A100", "50"))
	movRepo := &fakeMovementRepo{}
	uc, stockUC := buildRecorder(itemRepo, movRepo)

	mov, err := uc.Record(context.Background(), testActor, dto.RecordMovementRequest{
		Code: "A100", Kind: entity.MovementKindIN, Quantity: "10",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, mov.ID)
	assert.Equal(t, testActor.UserID, mov.CreatedBy)
	assert.Equal(t, testActor.Label, mov.CreatedByLabel)

	level, err := stockUC.StockByCode(context.Background(), "A100")
	require.NoError(t, err)
	assert.True(t, level.Equal(decimal.RequireFromString("60")), "giacenza attesa 60, ottenuta %s", level)
}

func TestRecord_QuantitaConVirgola(t *testing.T) {
	itemRepo := newFakeItemRepo(itemWithInitial("A100", "0"))
	movRepo := &fakeMovementRepo{}
	uc, stockUC := buildRecorder(itemRepo, movRepo)

	_, err := uc.Record(context.Background(), testActor, dto.RecordMovementRequest{
		Code: "A100", Kind: entity.MovementKindIN, Quantity: "12,5",
	})
	require.NoError(t, err)

	level, err := stockUC.StockByCode(context.Background(), "A100")
	require.NoError(t, err)
	assert.True(t, level.Equal(decimal.RequireFromString("12.5")))
}

func TestRecord_QuantitaNonValida(t *testing.T) {
	itemRepo := newFakeItemRepo(itemWithInitial("A100", "50"))
	uc, _ := buildRecorder(itemRepo, &fakeMovementRepo{})

	for _, qty := range []string{"", "abc", "0", "-5", "0,0"} {
		_, err := uc.Record(context.Background(), testActor, dto.RecordMovementRequest{
			Code: "A100", Kind: entity.MovementKindIN, Quantity: qty,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "quantità %q deve essere rifiutata", qty)
	}
}

func TestRecord_TipoNonValido(t *testing.T) {
	itemRepo := newFakeItemRepo(itemWithInitial("A100", "50"))
	uc, _ := buildRecorder(itemRepo, &fakeMovementRepo{})

	_, err := uc.Record(context.Background(), testActor, dto.RecordMovementRequest{
		Code: "A100", Kind: "TRANSFER", Quantity: "1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecord_ArticoloInesistente(t *testing.T) {
	uc, _ := buildRecorder(newFakeItemRepo(), &fakeMovementRepo{})

	_, err := uc.Record(context.Background(), testActor, dto.RecordMovementRequest{
		Code: "SCONOSCIUTO", Kind: entity.MovementKindIN, Quantity: "1",
	})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

// L'uscita che porta la giacenza esattamente a zero è lecita.
func TestRecord_UscitaAZeroConsentita(t *testing.T) {
	itemRepo := newFakeItemRepo(itemWithInitial("A100", "10"))
	movRepo := &fakeMovementRepo{}
	uc, stockUC := buildRecorder(itemRepo, movRepo)

	_, err := uc.Record(context.Background(), testActor, dto.RecordMovementRequest{
		Code: "A100", Kind: entity.MovementKindOUT, Quantity: "10",
	})
	require.NoError(t, err)

	level, err := stockUC.StockByCode(context.Background(), "A100")
	require.NoError(t, err)
	assert.True(t, level.IsZero())
}

// L'uscita che porterebbe la giacenza sotto zero è rifiutata con il dettaglio
// di giacenza attuale e risultante; nessun movimento viene registrato.
func TestRecord_UscitaSottoZeroRifiutata(t *testing.T) {
	itemRepo := newFakeItemRepo(itemWithInitial("A100", "10"))
	movRepo := &fakeMovementRepo{}
	uc, _ := buildRecorder(itemRepo, movRepo)

	_, err := uc.Record(context.Background(), testActor, dto.RecordMovementRequest{
		Code: "A100", Kind: entity.MovementKindOUT, Quantity: "11",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insuff *domain.InsufficientStockError
	require.ErrorAs(t, err, &insuff)
	assert.Equal(t, "A100", insuff.Code)
	assert.True(t, insuff.Current.Equal(decimal.RequireFromString("10")))
	assert.True(t, insuff.Resulting.Equal(decimal.RequireFromString("-1")))

	assert.Empty(t, movRepo.movements, "il movimento rifiutato non deve essere registrato")
}

// Il carico non ha limite superiore.
func TestRecord_CaricoSenzaLimite(t *testing.T) {
	itemRepo := newFakeItemRepo(itemWithInitial("A100", "0"))
	uc, stockUC := buildRecorder(itemRepo, &fakeMovementRepo{})

	_, err := uc.Record(context.Background(), testActor, dto.RecordMovementRequest{
		Code: "A100", Kind: entity.MovementKindIN, Quantity: "1000000",
	})
	require.NoError(t, err)

	level, err := stockUC.StockByCode(context.Background(), "A100")
	require.NoError(t, err)
	assert.True(t, level.Equal(decimal.RequireFromString("1000000")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Test eliminazione movimenti
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_RiallineaLaGiacenza(t *testing.T) {
	itemRepo := newFakeItemRepo(itemWithInitial("A100", "50"))
	movRepo := &fakeMovementRepo{}
	uc, stockUC := buildRecorder(itemRepo, movRepo)

	mov, err := uc.Record(context.Background(), testActor, dto.RecordMovementRequest{
		Code: "A100", Kind: entity.MovementKindOUT, Quantity: "20",
	})
	require.NoError(t, err)

	level, _ := stockUC.StockByCode(context.Background(), "A100")
	assert.True(t, level.Equal(decimal.RequireFromString("30")))

	require.NoError(t, uc.Delete(context.Background(), mov.ID))

	level, _ = stockUC.StockByCode(context.Background(), "A100")
	assert.True(t, level.Equal(decimal.RequireFromString("50")),
		"dopo l'eliminazione la giacenza deve tornare al valore precedente")
}

func TestDelete_MovimentoInesistente(t *testing.T) {
	uc, _ := buildRecorder(newFakeItemRepo(), &fakeMovementRepo{})
	err := uc.Delete(context.Background(), "id-inesistente")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Scenario completo: import → carico → scarico → guardia di giacenza
// ──────────────────────────────────────────────────────────────────────────────

func TestScenarioCompleto_A100(t *testing.T) {
	ctx := context.Background()
	itemRepo := newFakeItemRepo()
	movRepo := &fakeMovementRepo{}
	uc, stockUC := buildRecorder(itemRepo, movRepo)

	// L'import porta A100 con giacenza iniziale 50.
	require.NoError(t, itemRepo.UpsertMany(ctx, []*entity.Item{itemWithInitial("A100", "50")}))

	// Carico 10 → 60.
	_, err := uc.Record(ctx, testActor, dto.RecordMovementRequest{
		Code: "A100", Kind: entity.MovementKindIN, Quantity: "10",
	})
	require.NoError(t, err)

	// Scarico 15 → 45.
	_, err = uc.Record(ctx, testActor, dto.RecordMovementRequest{
		Code: "A100", Kind: entity.MovementKindOUT, Quantity: "15",
	})
	require.NoError(t, err)

	level, err := stockUC.StockByCode(ctx, "A100")
	require.NoError(t, err)
	assert.True(t, level.Equal(decimal.RequireFromString("45")), "giacenza attesa 45, ottenuta %s", level)

	// Scarico 46 → rifiutato: risulterebbe -1.
	_, err = uc.Record(ctx, testActor, dto.RecordMovementRequest{
		Code: "A100", Kind: entity.MovementKindOUT, Quantity: "46",
	})
	var insuff *domain.InsufficientStockError
	require.ErrorAs(t, err, &insuff)
	assert.True(t, insuff.Current.Equal(decimal.RequireFromString("45")))
	assert.True(t, insuff.Resulting.Equal(decimal.RequireFromString("-1")))

	// La giacenza resta 45.
	level, err = stockUC.StockByCode(ctx, "A100")
	require.NoError(t, err)
	assert.True(t, level.Equal(decimal.RequireFromString("45")))
}

// Un re-import che sovrascrive la giacenza iniziale non tocca il libro
// movimenti: la giacenza riparte dalla nuova base più i movimenti esistenti.
func TestScenario_ReimportConservaIMovimenti(t *testing.T) {
	ctx := context.Background()
	itemRepo := newFakeItemRepo(itemWithInitial("A100", "50"))
	movRepo := &fakeMovementRepo{}
	uc, stockUC := buildRecorder(itemRepo, movRepo)

	_, err := uc.Record(ctx, testActor, dto.RecordMovementRequest{
		Code: "A100", Kind: entity.MovementKindOUT, Quantity: "5",
	})
	require.NoError(t, err)

	// Re-import: nuova base 100.
	require.NoError(t, itemRepo.UpsertMany(ctx, []*entity.Item{itemWithInitial("A100", "100")}))

	level, err := stockUC.StockByCode(ctx, "A100")
	require.NoError(t, err)
	assert.True(t, level.Equal(decimal.RequireFromString("95")))
}
