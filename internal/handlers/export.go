// internal/handlers/export.go
package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/tealeg/xlsx/v3"

	"github.com/ammerola/shopstock-be/internal/core/domain"
	"github.com/ammerola/shopstock-be/internal/core/ports"
)

// ExportHandler serves report downloads
type ExportHandler struct {
	inventory ports.InventoryService
	logger    *slog.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(inventory ports.InventoryService, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		inventory: inventory,
		logger:    logger.With(slog.String("handler", "export")),
	}
}

// ExportValuation handles GET /api/v1/reports/valuation/export and
// streams the valuation report as an .xlsx workbook.
func (h *ExportHandler) ExportValuation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	report, err := h.inventory.GetValuation(ctx)
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}

	data, err := h.generateWorkbook(report)
	if err != nil {
		respondError(w, h.logger, r, fmt.Errorf("failed to generate workbook: %w", err))
		return
	}

	filename := fmt.Sprintf("valuation_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	if _, err := w.Write(data); err != nil {
		h.logger.ErrorContext(ctx, "failed to write export response", "err", err)
		return
	}

	h.logger.InfoContext(ctx, "valuation export completed",
		slog.Int("lines", len(report.Lines)),
		slog.String("filename", filename))
}

func (h *ExportHandler) generateWorkbook(report *domain.ValuationReport) ([]byte, error) {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet("Valuation")
	if err != nil {
		return nil, fmt.Errorf("failed to add worksheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, header := range []string{"Product", "Variant", "Quantity", "Selling Price", "Total Value"} {
		cell := headerRow.AddCell()
		cell.Value = header
		cell.GetStyle().Font.Bold = true
	}

	for _, line := range report.Lines {
		row := sheet.AddRow()
		row.AddCell().Value = line.ProductName
		row.AddCell().Value = line.VariantHandle
		row.AddCell().SetInt(line.Quantity)
		row.AddCell().Value = line.SellingPrice.StringFixed(2)
		row.AddCell().Value = line.TotalValue.StringFixed(2)
	}

	totalRow := sheet.AddRow()
	totalCell := totalRow.AddCell()
	totalCell.Value = "Total"
	totalCell.GetStyle().Font.Bold = true
	totalRow.AddCell()
	totalRow.AddCell().SetInt(report.TotalUnits)
	totalRow.AddCell()
	totalRow.AddCell().Value = report.TotalValue.StringFixed(2)

	for i := 0; i < 5; i++ {
		sheet.SetColWidth(i, i, 18)
	}

	var buffer bytes.Buffer
	if err := file.Write(&buffer); err != nil {
		return nil, fmt.Errorf("failed to write workbook to buffer: %w", err)
	}
	return buffer.Bytes(), nil
}
