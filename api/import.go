package api

import (
	"errors"
	"fmt"
	"mime/multipart"

	"financas/database"
	"financas/models"
	"financas/service"

	"github.com/gin-gonic/gin"
)

// ImportHandler importação de extratos OFX
type ImportHandler struct{}

// NewImportHandler cria o handler de importação
func NewImportHandler() *ImportHandler {
	return &ImportHandler{}
}

// ImportPreviewResponse prévia de um extrato categorizado
type ImportPreviewResponse struct {
	SourceFile   string               `json:"source_file"`
	Count        int                  `json:"count"`
	Transactions []models.Transaction `json:"transactions"`
}

// Preview lê o extrato e devolve a prévia categorizada, sem gravar
// @Summary Prévia da importação
// @Description Faz o parse do extrato OFX enviado e devolve as transações categorizadas para conferência antes de salvar. Um arquivo já importado é rejeitado antes do parse.
// @Tags importação
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "arquivo OFX"
// @Success 200 {object} Response{data=ImportPreviewResponse} "prévia gerada"
// @Failure 400 {object} Response "arquivo ausente ou ilegível"
// @Failure 409 {object} Response "arquivo já importado"
// @Router /api/v1/import/preview [post]
func (h *ImportHandler) Preview(c *gin.Context) {
	file, filename, ok := h.openUpload(c)
	if !ok {
		return
	}
	defer file.Close()

	txs, ok := h.parseUpload(c, file, filename)
	if !ok {
		return
	}

	Success(c, ImportPreviewResponse{
		SourceFile:   filename,
		Count:        len(txs),
		Transactions: txs,
	})
}

// Save importa o extrato para o ledger
// @Summary Confirmar importação
// @Description Faz o parse do extrato OFX e grava as transações categorizadas no ledger, marcadas com o nome do arquivo.
// @Tags importação
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "arquivo OFX"
// @Success 200 {object} Response{data=ImportPreviewResponse} "transações salvas"
// @Failure 400 {object} Response "arquivo ausente ou ilegível"
// @Failure 409 {object} Response "arquivo já importado"
// @Router /api/v1/import [post]
func (h *ImportHandler) Save(c *gin.Context) {
	file, filename, ok := h.openUpload(c)
	if !ok {
		return
	}
	defer file.Close()

	txs, ok := h.parseUpload(c, file, filename)
	if !ok {
		return
	}

	count, err := database.AppendMany(txs)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "falha ao gravar as transações"))
		return
	}

	SuccessWithMessage(c, fmt.Sprintf("%d transações salvas", count), ImportPreviewResponse{
		SourceFile:   filename,
		Count:        int(count),
		Transactions: txs,
	})
}

// openUpload extrai o arquivo do formulário e roda a checagem de
// duplicidade — a sondagem barata vem antes do parse caro.
func (h *ImportHandler) openUpload(c *gin.Context) (multipart.File, string, bool) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		BadRequest(c, "envie o extrato OFX no campo 'file'")
		return nil, "", false
	}

	exists, err := database.FileExists(header.Filename)
	if err != nil {
		file.Close()
		InternalError(c, SafeErrorMessage(err, "falha ao consultar o ledger"))
		return nil, "", false
	}
	if exists {
		file.Close()
		Conflict(c, fmt.Sprintf("o arquivo %q já foi importado anteriormente", header.Filename))
		return nil, "", false
	}

	return file, header.Filename, true
}

// parseUpload converte o upload em transações categorizadas. Um arquivo
// ilegível degrada para "nenhuma transação detectada", nunca para um
// erro interno.
func (h *ImportHandler) parseUpload(c *gin.Context, file multipart.File, filename string) ([]models.Transaction, bool) {
	txs, err := service.ImportStatement(file, filename)
	if err != nil {
		var parseErr *service.ParseError
		if errors.As(err, &parseErr) {
			BadRequest(c, "não foi possível ler o arquivo OFX: nenhuma transação detectada")
			return nil, false
		}
		InternalError(c, SafeErrorMessage(err, "falha ao processar o extrato"))
		return nil, false
	}
	return txs, true
}
