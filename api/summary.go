package api

import (
	"strconv"

	"financas/database"
	"financas/service"

	"github.com/gin-gonic/gin"
)

// SummaryHandler resumos financeiros por período
type SummaryHandler struct{}

// NewSummaryHandler cria o handler de resumo
func NewSummaryHandler() *SummaryHandler {
	return &SummaryHandler{}
}

// SummaryResponse resumo de um período
type SummaryResponse struct {
	Empty             bool                    `json:"empty"`
	Year              int                     `json:"year"`
	Month             int                     `json:"month"`
	AvailableYears    []int                   `json:"available_years"`
	AvailableMonths   []int                   `json:"available_months"`
	Metrics           service.Metrics         `json:"metrics"`
	ExpenseByCategory []service.CategoryTotal `json:"expense_by_category"`
	DailyFlow         []service.DailyFlow     `json:"daily_flow"`
}

// GetSummary calcula os indicadores do período
// @Summary Resumo do período
// @Description Indicadores (receitas, despesas, investimento líquido, saldo), despesas por categoria e fluxo de caixa diário do ano ou ano+mês selecionado. Sem parâmetros, usa o ano mais recente com movimento.
// @Tags resumo
// @Produce json
// @Security BearerAuth
// @Param year query int false "ano (ex.: 2025)"
// @Param month query int false "mês 1-12; omita para o ano todo"
// @Success 200 {object} Response{data=SummaryResponse} "resumo calculado"
// @Failure 401 {object} Response "não autorizado"
// @Router /api/v1/summary [get]
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	year, _ := strconv.Atoi(c.Query("year"))
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

	// ledger vazio: estado zero, sem invocar o agregador
	if len(txs) == 0 {
		Success(c, SummaryResponse{
			Empty:             true,
			AvailableYears:    []int{},
			AvailableMonths:   []int{},
			ExpenseByCategory: []service.CategoryTotal{},
			DailyFlow:         []service.DailyFlow{},
		})
		return
	}

	years := service.AvailableYears(txs)
	if year == 0 {
		year = years[0]
	}

	subset := service.FilterPeriod(txs, service.Period{Year: year, Month: month})

	Success(c, SummaryResponse{
		Year:              year,
		Month:             month,
		AvailableYears:    years,
		AvailableMonths:   service.AvailableMonths(txs, year),
		Metrics:           service.ComputeMetrics(subset),
		ExpenseByCategory: service.ExpenseByCategory(subset),
		DailyFlow:         service.DailyNetFlow(subset),
	})
}
