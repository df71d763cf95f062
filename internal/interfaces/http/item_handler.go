package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Rive3FY/magazzino-app/internal/application/catalog"
	"github.com/Rive3FY/magazzino-app/internal/application/dto"
)

// ItemHandler gestisce le letture dell'anagrafica articoli (protetto).
type ItemHandler struct {
	uc *catalog.UseCase
}

// NewItemHandler costruisce l'handler.
func NewItemHandler(uc *catalog.UseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// List godoc
// @Summary      Lista paginata dell'anagrafica articoli
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "filtro su codice o descrizione"
// @Param        limit   query  int     false  "righe per pagina (default 25, max 100)"
// @Param        offset  query  int     false  "offset"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parametri di pagina non validi"})
	}
	page.DefaultPage()

	items, total, err := h.uc.ListPage(c.Context(), c.Query("q"), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "errore interno"})
	}

	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.ToItemResponse(it))
	}
	return c.JSON(fiber.Map{
		"items": out,
		"page":  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	})
}

// Suggest godoc
// @Summary      Ricerca incrementale articoli (max 12 risultati)
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  true  "testo cercato"
// @Success      200  {array}  dto.SuggestionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/items/suggest [get]
func (h *ItemHandler) Suggest(c *fiber.Ctx) error {
	items, err := h.uc.Suggest(c.Context(), c.Query("q"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "errore interno"})
	}
	out := make([]dto.SuggestionResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.SuggestionResponse{Code: it.Code, Name: it.Name})
	}
	return c.JSON(out)
}
