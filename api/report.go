package api

import (
	"fmt"
	"strconv"

	"financas/config"
	"financas/database"
	"financas/service"

	"github.com/gin-gonic/gin"
)

// nomes dos meses para o rótulo do período
var monthNames = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril",
	"Maio", "Junho", "Julho", "Agosto",
	"Setembro", "Outubro", "Novembro", "Dezembro",
}

// ReportHandler envio do resumo do período por e-mail
type ReportHandler struct {
	cfg          *config.Config
	emailService *service.EmailService
}

// NewReportHandler cria o handler de relatório
func NewReportHandler(cfg *config.Config) *ReportHandler {
	return &ReportHandler{
		cfg:          cfg,
		emailService: service.NewEmailService(&cfg.Email),
	}
}

// SendEmail envia o resumo do período para o e-mail configurado
// @Summary Enviar relatório por e-mail
// @Description Calcula o resumo do período e o envia para o destinatário configurado em email.to.
// @Tags relatório
// @Produce json
// @Security BearerAuth
// @Param year query int true "ano"
// @Param month query int false "mês 1-12; omita para o ano todo"
// @Success 200 {object} Response "relatório enviado"
// @Failure 400 {object} Response "período inválido ou sem movimento"
// @Failure 500 {object} Response "falha no envio"
// @Router /api/v1/report/email [post]
func (h *ReportHandler) SendEmail(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year <= 0 {
		BadRequest(c, "informe o ano do relatório")
		return
	}
	month, _ := strconv.Atoi(c.Query("month"))
	if month < 0 || month > 12 {
		BadRequest(c, "mês inválido, use 1-12")
		return
	}

	txs, err := database.LoadAll()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "falha ao carregar o ledger"))
		return
	}

	subset := service.FilterPeriod(txs, service.Period{Year: year, Month: month})
	if len(subset) == 0 {
		BadRequest(c, "nenhum movimento no período selecionado")
		return
	}

	label := fmt.Sprintf("Ano de %d", year)
	if month > 0 {
		label = fmt.Sprintf("%s de %d", monthNames[month-1], year)
	}

	metrics := service.ComputeMetrics(subset)
	byCategory := service.ExpenseByCategory(subset)

	if err := h.emailService.SendPeriodReport(h.cfg.Email.To, label, metrics, byCategory); err != nil {
		InternalError(c, SafeErrorMessage(err, "falha ao enviar o relatório"))
		return
	}

	SuccessWithMessage(c, "relatório enviado", gin.H{
		"period": label,
		"to":     h.cfg.Email.To,
	})
}
