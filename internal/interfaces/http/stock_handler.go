package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Rive3FY/magazzino-app/internal/application/dto"
	"github.com/Rive3FY/magazzino-app/internal/application/inventory"
)

// StockHandler espone le giacenze calcolate (protetto).
type StockHandler struct {
	uc *inventory.StockUseCase
}

// NewStockHandler costruisce l'handler.
func NewStockHandler(uc *inventory.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Page godoc
// @Summary      Vista giacenze: pagina di anagrafica con giacenza calcolata
// @Description  La giacenza è ricalcolata a ogni lettura come giacenza
// @Description  iniziale + somma con segno dei movimenti del codice.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "filtro su codice o descrizione"
// @Param        limit   query  int     false  "righe per pagina (default 25, max 100)"
// @Param        offset  query  int     false  "offset"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *StockHandler) Page(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parametri di pagina non validi"})
	}
	page.DefaultPage()

	rows, total, err := h.uc.StockPage(c.Context(), c.Query("q"), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "errore interno"})
	}
	return c.JSON(fiber.Map{
		"rows": rows,
		"page": dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	})
}

// ByCode godoc
// @Summary      Giacenza attuale di un singolo codice
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "codice materiale"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/stock/{code} [get]
func (h *StockHandler) ByCode(c *fiber.Ctx) error {
	code := c.Params("code")
	level, err := h.uc.StockByCode(c.Context(), code)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "errore interno"})
	}
	return c.JSON(fiber.Map{"code": code, "stock": level})
}
