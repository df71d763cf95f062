package importer

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Rive3FY/magazzino-app/internal/application/dto"
	"github.com/Rive3FY/magazzino-app/internal/domain"
	"github.com/Rive3FY/magazzino-app/internal/domain/entity"
	"github.com/Rive3FY/magazzino-app/internal/domain/locale"
	"github.com/Rive3FY/magazzino-app/internal/domain/repository"
)

// Intestazioni riconosciute del file di anagrafica (esatte, case-sensitive,
// come esportate dal gestionale).
const (
	HeaderCode          = "Materiale"
	HeaderName          = "Descrizione Materiale"
	HeaderDivision      = "Divisione"
	HeaderDivisionDesc  = "Descrizione Divisione"
	HeaderWarehouse     = "Magazzino"
	HeaderWarehouseDesc = "Descrizione Magazzino"
	HeaderQtyFree       = "Qnt. a Mag. Libero"
	HeaderQtyBlocked    = "Qnt. a Mag. bloccato"
	HeaderQtyQuality    = "Controllo Qualità Magazzino"
	HeaderGroupDesc     = "Descrizione Gruppo Merci"
	HeaderUM            = "UM"
	HeaderTotal         = "TOTALE"
)

// UseCase normalizza le righe del file Excel in articoli e li riversa
// nell'anagrafica con un unico upsert transazionale per codice.
type UseCase struct {
	reader   RowReader
	txRunner TxRunner
}

// NewUseCase costruisce il caso d'uso di import.
func NewUseCase(reader RowReader, txRunner TxRunner) *UseCase {
	return &UseCase{reader: reader, txRunner: txRunner}
}

// Normalize trasforma le righe grezze in articoli candidati. Una riga viene
// scartata in silenzio se, dopo il trim, codice o descrizione sono vuoti.
// I campi numerici non interpretabili valgono zero (politica di tolleranza).
// Trasformazione pura: nessun effetto collaterale.
func Normalize(rows []map[string]string, now time.Time) (items []*entity.Item, skipped int) {
	for _, r := range rows {
		code := strings.TrimSpace(r[HeaderCode])
		name := strings.TrimSpace(r[HeaderName])
		if code == "" || name == "" {
			skipped++
			continue
		}
		items = append(items, &entity.Item{
			Code:          code,
			Name:          name,
			UM:            strings.TrimSpace(r[HeaderUM]),
			Division:      strings.TrimSpace(r[HeaderDivision]),
			DivisionDesc:  strings.TrimSpace(r[HeaderDivisionDesc]),
			Warehouse:     strings.TrimSpace(r[HeaderWarehouse]),
			WarehouseDesc: strings.TrimSpace(r[HeaderWarehouseDesc]),
			GroupDesc:     strings.TrimSpace(r[HeaderGroupDesc]),
			QtyFree:       locale.Decimal(r[HeaderQtyFree]),
			QtyBlocked:    locale.Decimal(r[HeaderQtyBlocked]),
			QtyQuality:    locale.Decimal(r[HeaderQtyQuality]),
			InitialQty:    locale.Decimal(r[HeaderTotal]), // giacenza iniziale da TOTALE
			ImportedAt:    now,
		})
	}
	return items, skipped
}

// Import legge il file, normalizza le righe e fa l'upsert per codice in una
// sola transazione. Una riga esistente con lo stesso codice viene sostituita
// integralmente (last-import-wins); gli articoli fuori dal batch restano.
// Se nessuna riga è valida restituisce ErrEmptyImport: probabile file con
// intestazioni sbagliate.
func (uc *UseCase) Import(ctx context.Context, file io.Reader) (dto.ImportResponse, error) {
	rows, err := uc.reader.Rows(file)
	if err != nil {
		return dto.ImportResponse{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	items, skipped := Normalize(rows, time.Now())
	if len(items) == 0 {
		return dto.ImportResponse{Skipped: skipped}, domain.ErrEmptyImport
	}

	err = uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository) error {
		return itemRepo.UpsertMany(ctx, items)
	})
	if err != nil {
		return dto.ImportResponse{}, err
	}
	return dto.ImportResponse{Imported: len(items), Skipped: skipped}, nil
}
