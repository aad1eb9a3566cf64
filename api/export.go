package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"financas/database"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler exportação do ledger
type ExportHandler struct{}

// NewExportHandler cria o handler de exportação
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

var exportHeaders = []string{"ID", "Data", "Descrição", "Valor", "Categoria", "Origem"}

// ExportCSV exporta o ledger completo como CSV
// @Summary Exportar CSV
// @Description Gera um dump delimitado do ledger completo, com todas as colunas.
// @Tags exportação
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {file} file "arquivo CSV"
// @Failure 401 {object} Response "não autorizado"
// @Router /api/v1/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	txs, err := database.LoadAll()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "falha ao carregar o ledger"))
		return
	}

	buf := new(bytes.Buffer)
	// BOM para o Excel reconhecer UTF-8
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)

	if err := writer.Write(exportHeaders); err != nil {
		InternalError(c, "falha ao gerar o CSV")
		return
	}

	for _, tx := range txs {
		row := []string{
			fmt.Sprintf("%d", tx.ID),
			tx.Date.Format("2006-01-02"),
			tx.Description,
			fmt.Sprintf("%.2f", tx.Amount),
			tx.Category,
			tx.SourceFile,
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "falha ao gerar o CSV")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "falha ao gerar o CSV")
		return
	}

	filename := fmt.Sprintf("extrato_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportExcel exporta o ledger completo como planilha xlsx
// @Summary Exportar Excel
// @Description Gera uma planilha xlsx do ledger completo, com linha de totais.
// @Tags exportação
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file "planilha xlsx"
// @Failure 401 {object} Response "não autorizado"
// @Router /api/v1/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	txs, err := database.LoadAll()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "falha ao carregar o ledger"))
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Extrato"
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"047857"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	f.SetColWidth(sheetName, "A", "A", 10)
	f.SetColWidth(sheetName, "B", "B", 14)
	f.SetColWidth(sheetName, "C", "C", 40)
	f.SetColWidth(sheetName, "D", "D", 14)
	f.SetColWidth(sheetName, "E", "E", 22)
	f.SetColWidth(sheetName, "F", "F", 28)

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	var total float64
	for i, tx := range txs {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), tx.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), tx.Date.Format("2006-01-02"))
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), tx.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), tx.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), tx.Category)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), tx.SourceFile)

		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("F%d", row), dataStyle)
		total += tx.Amount
	}

	// linha de totais
	summaryRow := len(txs) + 2
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "Saldo")
	f.MergeCell(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("C%d", summaryRow))
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", summaryRow), total)
	f.SetCellValue(sheetName, fmt.Sprintf("E%d", summaryRow), fmt.Sprintf("%d lançamentos", len(txs)))
	f.MergeCell(sheetName, fmt.Sprintf("E%d", summaryRow), fmt.Sprintf("F%d", summaryRow))
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("F%d", summaryRow), summaryStyle)

	filename := fmt.Sprintf("extrato_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", filename))

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "falha ao gerar a planilha")
		return
	}
}
