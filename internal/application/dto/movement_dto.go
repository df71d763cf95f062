package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Rive3FY/magazzino-app/internal/domain/entity"
)

// RecordMovementRequest body per POST /api/movements.
// Quantity arriva come stringa: accettiamo sia la virgola che il punto
// come separatore decimale (input da tastiera italiana).
type RecordMovementRequest struct {
	Code     string `json:"code"`
	Kind     string `json:"kind"` // IN | OUT
	Quantity string `json:"quantity"`
	Note     string `json:"note,omitempty"`
}

// MovementResponse rappresentazione JSON di un movimento.
type MovementResponse struct {
	ID             string          `json:"id"`
	Code           string          `json:"code"`
	Kind           string          `json:"kind"`
	Quantity       decimal.Decimal `json:"quantity"`
	Note           string          `json:"note,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	CreatedByLabel string          `json:"created_by_label,omitempty"`
}

// ToMovementResponse converte l'entità in DTO.
func ToMovementResponse(m *entity.Movement) MovementResponse {
	return MovementResponse{
		ID:             m.ID,
		Code:           m.Code,
		Kind:           m.Kind,
		Quantity:       m.Quantity,
		Note:           m.Note,
		CreatedAt:      m.CreatedAt,
		CreatedByLabel: m.CreatedByLabel,
	}
}

// InsufficientStockResponse dettaglio dell'errore di giacenza insufficiente:
// riporta la giacenza attuale e quella che risulterebbe dall'uscita.
type InsufficientStockResponse struct {
	Code      string          `json:"code"`
	Message   string          `json:"message"`
	Current   decimal.Decimal `json:"current_stock"`
	Resulting decimal.Decimal `json:"resulting_stock"`
}
