package importer

import (
	"context"
	"io"

	"github.com/Rive3FY/magazzino-app/internal/domain/repository"
)

// RowReader legge un file tabellare e restituisce le righe come mappe
// intestazione→valore grezzo (stringa). Le intestazioni sono quelle della
// prima riga del primo foglio, confrontate in modo esatto e case-sensitive.
type RowReader interface {
	Rows(r io.Reader) ([]map[string]string, error)
}

// TxRunner esegue una funzione dentro una transazione di DB, passando un
// repository legato a quella transazione. Garantisce che l'upsert massivo
// dell'import sia tutto-o-niente.
type TxRunner interface {
	Run(ctx context.Context, fn func(itemRepo repository.ItemRepository) error) error
}
