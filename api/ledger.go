package api

import (
	"fmt"
	"strconv"

	"financas/database"
	"financas/models"
	"financas/service"

	"github.com/gin-gonic/gin"
)

// LedgerHandler operações diretas sobre o ledger
type LedgerHandler struct{}

// NewLedgerHandler cria o handler do ledger
func NewLedgerHandler() *LedgerHandler {
	return &LedgerHandler{}
}

// LedgerResponse listagem completa do ledger
type LedgerResponse struct {
	Total        int                  `json:"total"`
	Transactions []models.Transaction `json:"transactions"`
}

// ReconcileRequest visão original da grade + change-set a aplicar
type ReconcileRequest struct {
	Original []models.Transaction `json:"original"`
	Changes  service.ChangeSet    `json:"changes"`
}

// List devolve o ledger completo
// @Summary Listar transações
// @Description Devolve todas as transações do ledger, da mais recente à mais antiga. É esta ordenação que serve de visão original para a grade editável.
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=LedgerResponse} "ledger carregado"
// @Failure 401 {object} Response "não autorizado"
// @Router /api/v1/transactions [get]
func (h *LedgerHandler) List(c *gin.Context) {
	txs, err := database.LoadAll()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "falha ao carregar o ledger"))
		return
	}

	Success(c, LedgerResponse{
		Total:        len(txs),
		Transactions: txs,
	})
}

// Reconcile aplica as edições da grade sobre o ledger
// @Summary Salvar edições da grade
// @Description Aplica o change-set (exclusões, linhas novas, edições campo a campo) produzido pela grade editável. As posições referem-se à visão original enviada no corpo. Sem atomicidade entre operações: uma falha deixa o ledger no estado parcial e a resposta nomeia a operação que falhou.
// @Tags ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ReconcileRequest true "visão original e change-set"
// @Success 200 {object} Response "alterações aplicadas"
// @Failure 400 {object} Response "requisição inválida"
// @Failure 500 {object} Response "falha em uma das operações"
// @Router /api/v1/transactions/reconcile [post]
func (h *LedgerHandler) Reconcile(c *gin.Context) {
	var req ReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "requisição inválida: "+err.Error())
		return
	}

	if err := service.Reconcile(req.Original, req.Changes); err != nil {
		// a mensagem nomeia a operação que falhou; o estado parcial fica
		InternalError(c, err.Error())
		return
	}

	SuccessWithMessage(c, "alterações salvas", gin.H{
		"deleted": len(req.Changes.Deleted),
		"added":   len(req.Changes.Added),
		"edited":  len(req.Changes.Edited),
	})
}

// DeletePeriod apaga as transações de um período
// @Summary Excluir período
// @Description Remove todas as transações do ano (ou ano+mês) informado e devolve quantas linhas saíram.
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Param year query int true "ano"
// @Param month query int false "mês 1-12; omita para o ano todo"
// @Success 200 {object} Response "transações removidas"
// @Failure 400 {object} Response "período inválido"
// @Router /api/v1/transactions/period [delete]
func (h *LedgerHandler) DeletePeriod(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year <= 0 {
		BadRequest(c, "informe o ano do período a excluir")
		return
	}
	month, _ := strconv.Atoi(c.Query("month"))
	if month < 0 || month > 12 {
		BadRequest(c, "mês inválido, use 1-12")
		return
	}

	count, err := database.DeletePeriod(year, month)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "falha ao excluir o período"))
		return
	}

	SuccessWithMessage(c, fmt.Sprintf("%d transações removidas", count), gin.H{
		"deleted": count,
	})
}

// Clear esvazia o ledger
// @Summary Limpar banco de dados
// @Description Remove todas as transações do ledger e devolve quantas linhas existiam.
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response "ledger esvaziado"
// @Failure 401 {object} Response "não autorizado"
// @Router /api/v1/transactions [delete]
func (h *LedgerHandler) Clear(c *gin.Context) {
	count, err := database.ClearAll()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "falha ao limpar o banco"))
		return
	}

	SuccessWithMessage(c, fmt.Sprintf("banco reiniciado, %d transações removidas", count), gin.H{
		"deleted": count,
	})
}
