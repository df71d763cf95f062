package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Rive3FY/magazzino-app/internal/application/dto"
	"github.com/Rive3FY/magazzino-app/internal/application/importer"
	"github.com/Rive3FY/magazzino-app/internal/domain"
)

// ImportHandler carica il file Excel di anagrafica (solo admin).
type ImportHandler struct {
	uc *importer.UseCase
}

// NewImportHandler costruisce l'handler.
func NewImportHandler(uc *importer.UseCase) *ImportHandler {
	return &ImportHandler{uc: uc}
}

// Import godoc
// @Summary      Importa l'anagrafica articoli da file Excel (solo admin)
// @Description  Il file deve avere le intestazioni esatte dell'export del
// @Description  gestionale. Le righe senza codice o descrizione vengono
// @Description  scartate; i codici già presenti vengono sovrascritti.
// @Tags         import
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "file .xlsx"
// @Success      200  {object}  dto.ImportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/import [post]
func (h *ImportHandler) Import(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "campo 'file' mancante"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "file non leggibile"})
	}
	defer f.Close()

	res, err := h.uc.Import(c.Context(), f)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyImport) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_IMPORT", Message: "nessuna riga valida nel file"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "formato file non riconosciuto"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "errore interno"})
	}
	return c.JSON(res)
}
