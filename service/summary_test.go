package service

import (
	"testing"
	"time"

	"financas/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func sampleLedger() []models.Transaction {
	return []models.Transaction{
		{ID: 1, Date: day(2025, 10, 1), Description: "Aplicação RDB", Amount: -50, Category: models.CategoryInvestimento},
		{ID: 2, Date: day(2025, 10, 5), Description: "Resgate RDB", Amount: 20, Category: models.CategoryResgateInvestimento},
		{ID: 3, Date: day(2025, 10, 10), Description: "Mercado", Amount: -30, Category: models.CategoryAlimentacao},
		{ID: 4, Date: day(2025, 10, 15), Description: "Salário", Amount: 1000, Category: models.CategoryReceita},
	}
}

func TestComputeMetrics(t *testing.T) {
	subset := FilterPeriod(sampleLedger(), Period{Year: 2025, Month: 10})
	require.Len(t, subset, 4)

	m := ComputeMetrics(subset)
	assert.InDelta(t, 30.0, m.InvestmentsNet, 1e-9)
	assert.InDelta(t, 1000.0, m.Income, 1e-9)
	assert.InDelta(t, -30.0, m.Expense, 1e-9)
	assert.InDelta(t, 940.0, m.Balance, 1e-9)
}

func TestComputeMetrics_BalanceIsUnconditionalSum(t *testing.T) {
	// o saldo é a soma bruta dos valores, independente de categoria
	txs := sampleLedger()
	var sum float64
	for _, tx := range txs {
		sum += tx.Amount
	}
	m := ComputeMetrics(txs)
	assert.InDelta(t, sum, m.Balance, 1e-9)
}

func TestComputeMetrics_Empty(t *testing.T) {
	m := ComputeMetrics(nil)
	assert.Zero(t, m.Income)
	assert.Zero(t, m.Expense)
	assert.Zero(t, m.InvestmentsNet)
	assert.Zero(t, m.Balance)
	assert.Empty(t, ExpenseByCategory(nil))
	assert.Empty(t, DailyNetFlow(nil))
}

func TestFilterPeriod(t *testing.T) {
	txs := append(sampleLedger(),
		models.Transaction{ID: 5, Date: day(2025, 9, 30), Amount: -10, Category: models.CategoryOutros},
		models.Transaction{ID: 6, Date: day(2024, 10, 1), Amount: -10, Category: models.CategoryOutros},
	)

	assert.Len(t, FilterPeriod(txs, Period{Year: 2025, Month: 10}), 4)
	assert.Len(t, FilterPeriod(txs, Period{Year: 2025}), 5)
	assert.Len(t, FilterPeriod(txs, Period{Year: 2024}), 1)
	assert.Empty(t, FilterPeriod(txs, Period{Year: 2023}))
}

func TestAvailablePeriods(t *testing.T) {
	txs := append(sampleLedger(),
		models.Transaction{ID: 5, Date: day(2025, 2, 1), Amount: 1},
		models.Transaction{ID: 6, Date: day(2023, 7, 1), Amount: 1},
	)

	// anos em ordem decrescente
	assert.Equal(t, []int{2025, 2023}, AvailableYears(txs))

	// cascata: só meses com movimento no ano selecionado, em ordem crescente
	assert.Equal(t, []int{2, 10}, AvailableMonths(txs, 2025))
	assert.Equal(t, []int{7}, AvailableMonths(txs, 2023))
	assert.Empty(t, AvailableMonths(txs, 2024))
}

func TestExpenseByCategory(t *testing.T) {
	txs := append(sampleLedger(),
		models.Transaction{ID: 5, Date: day(2025, 10, 20), Description: "Uber", Amount: -45, Category: models.CategoryTransporte},
	)

	byCat := ExpenseByCategory(txs)
	// Investimento (-50) fica de fora; valores em módulo, ordem decrescente
	require.Len(t, byCat, 2)
	assert.Equal(t, CategoryTotal{Category: models.CategoryTransporte, Total: 45}, byCat[0])
	assert.Equal(t, CategoryTotal{Category: models.CategoryAlimentacao, Total: 30}, byCat[1])
}

func TestDailyNetFlow(t *testing.T) {
	txs := append(sampleLedger(),
		models.Transaction{ID: 5, Date: day(2025, 10, 1), Amount: -25, Category: models.CategoryOutros},
	)

	flow := DailyNetFlow(txs)
	require.Len(t, flow, 4)
	// agrupado por dia, em ordem crescente
	assert.Equal(t, DailyFlow{Date: "2025-10-01", Total: -75}, flow[0])
	assert.Equal(t, DailyFlow{Date: "2025-10-15", Total: 1000}, flow[3])
}
