package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Rive3FY/magazzino-app/internal/application/dto"
	"github.com/Rive3FY/magazzino-app/internal/application/inventory"
	"github.com/Rive3FY/magazzino-app/internal/domain"
)

// MovementHandler gestisce il libro movimenti.
type MovementHandler struct {
	uc *inventory.RecordMovementUseCase
}

// NewMovementHandler costruisce l'handler.
func NewMovementHandler(uc *inventory.RecordMovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Record godoc
// @Summary      Registra un movimento di carico (IN) o scarico (OUT)
// @Description  La quantità è una stringa: virgola e punto sono entrambi
// @Description  accettati come separatore decimale. Le uscite che porterebbero
// @Description  la giacenza sotto zero sono rifiutate con 409.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        movement  body      dto.RecordMovementRequest  true  "movimento"
// @Success      201  {object}  dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.InsufficientStockResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Record(c *fiber.Ctx) error {
	var req dto.RecordMovementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "body non valido"})
	}

	actor := inventory.Actor{UserID: GetUserID(c), Label: GetLabel(c)}
	mov, err := h.uc.Record(c.Context(), actor, req)
	if err != nil {
		var insuff *domain.InsufficientStockError
		switch {
		case errors.As(err, &insuff):
			return c.Status(fiber.StatusConflict).JSON(dto.InsufficientStockResponse{
				Code:      insuff.Code,
				Message:   insuff.Error(),
				Current:   insuff.Current,
				Resulting: insuff.Resulting,
			})
		case errors.Is(err, domain.ErrItemNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ITEM_NOT_FOUND", Message: "articolo non presente in anagrafica"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo o quantità non validi"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "errore interno"})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToMovementResponse(mov))
}

// List godoc
// @Summary      Storico movimenti, più recenti prima
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        code    query  string  false  "filtro per codice materiale"
// @Param        limit   query  int     false  "righe (default e max 200)"
// @Param        offset  query  int     false  "offset"
// @Success      200  {array}  dto.MovementResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	movs, err := h.uc.ListRecent(c.Context(), c.Query("code"), c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "errore interno"})
	}
	out := make([]dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, dto.ToMovementResponse(m))
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Elimina un movimento (solo admin)
// @Description  La giacenza si riallinea alla lettura successiva, senza
// @Description  ricalcoli a cascata.
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "id movimento"
// @Success      204  "eliminato"
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [delete]
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimento non trovato"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "errore interno"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
