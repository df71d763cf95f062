package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errori di dominio (senza dipendenze esterne).
var (
	ErrNotFound           = errors.New("risorsa non trovata")
	ErrItemNotFound       = errors.New("articolo non trovato")
	ErrUserNotFound       = errors.New("utente non trovato")
	ErrEmailAlreadyExists = errors.New("email già registrata")
	ErrInvalidInput       = errors.New("dati non validi")
	ErrDuplicate          = errors.New("risorsa duplicata")
	ErrUnauthorized       = errors.New("non autorizzato")
	ErrForbidden          = errors.New("accesso negato")
	ErrInsufficientStock  = errors.New("giacenza insufficiente")
	ErrEmptyImport        = errors.New("nessuna riga valida trovata")
)

// InsufficientStockError riporta la giacenza attuale e quella che
// risulterebbe dall'uscita rifiutata. errors.Is(err, ErrInsufficientStock)
// continua a funzionare via Unwrap.
type InsufficientStockError struct {
	Code      string
	Current   decimal.Decimal
	Resulting decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("uscita non possibile per %s: giacenza %s diventerebbe %s",
		e.Code, e.Current, e.Resulting)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

