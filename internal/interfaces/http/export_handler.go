package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Rive3FY/magazzino-app/internal/application/dto"
	"github.com/Rive3FY/magazzino-app/internal/application/export"
)

// ExportHandler scarica la vista giacenze in Excel o PDF.
type ExportHandler struct {
	uc *export.UseCase
}

// NewExportHandler costruisce l'handler.
func NewExportHandler(uc *export.UseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// StockXLSX godoc
// @Summary      Esporta le giacenze filtrate in un file Excel
// @Tags         export
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        q  query  string  false  "filtro su codice o descrizione"
// @Success      200  {file}  binary
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/export/stock.xlsx [get]
func (h *ExportHandler) StockXLSX(c *fiber.Ctx) error {
	data, err := h.uc.StockXLSX(c.Context(), c.Query("q"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "errore interno"})
	}
	name := fmt.Sprintf("giacenze_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Send(data)
}

// StockPDF godoc
// @Summary      Esporta le giacenze filtrate in un report PDF
// @Tags         export
// @Security     Bearer
// @Produce      application/pdf
// @Param        q  query  string  false  "filtro su codice o descrizione"
// @Success      200  {file}  binary
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/export/stock.pdf [get]
func (h *ExportHandler) StockPDF(c *fiber.Ctx) error {
	data, err := h.uc.StockPDF(c.Context(), c.Query("q"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "errore interno"})
	}
	name := fmt.Sprintf("giacenze_%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Send(data)
}
