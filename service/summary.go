package service

import (
	"math"
	"sort"

	"financas/models"
)

// Period delimita a agregação: um ano, ou um ano+mês (Month = 0 cobre o
// ano inteiro).
type Period struct {
	Year  int
	Month int
}

// Metrics são os quatro indicadores do período. Expense preserva o sinal
// negativo; Balance é a soma incondicional dos valores.
type Metrics struct {
	Income         float64 `json:"income"`
	Expense        float64 `json:"expense"`
	InvestmentsNet float64 `json:"investments_net"`
	Balance        float64 `json:"balance"`
}

// CategoryTotal total de despesa de uma categoria, em valor absoluto.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// DailyFlow soma dos valores de um dia (fluxo de caixa diário).
type DailyFlow struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

// FilterPeriod devolve o subconjunto de transações dentro do período.
func FilterPeriod(txs []models.Transaction, p Period) []models.Transaction {
	subset := []models.Transaction{}
	for _, t := range txs {
		if t.Date.Year() != p.Year {
			continue
		}
		if p.Month > 0 && int(t.Date.Month()) != p.Month {
			continue
		}
		subset = append(subset, t)
	}
	return subset
}

// AvailableYears anos presentes no ledger, do mais recente ao mais antigo.
func AvailableYears(txs []models.Transaction) []int {
	seen := map[int]bool{}
	years := []int{}
	for _, t := range txs {
		if y := t.Date.Year(); !seen[y] {
			seen[y] = true
			years = append(years, y)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// AvailableMonths meses com movimento dentro do ano, em ordem crescente.
// É o filtro em cascata: o usuário só escolhe meses que existem no ano
// selecionado.
func AvailableMonths(txs []models.Transaction, year int) []int {
	seen := map[int]bool{}
	months := []int{}
	for _, t := range txs {
		if t.Date.Year() != year {
			continue
		}
		if m := int(t.Date.Month()); !seen[m] {
			seen[m] = true
			months = append(months, m)
		}
	}
	sort.Ints(months)
	return months
}

// ComputeMetrics calcula os quatro indicadores sobre o subconjunto do
// período. Cada transação entra em no máximo um balde por indicador:
//   - aplicações em Investimento saem como valor negativo no extrato, por
//     isso entram em módulo; resgates voltam positivos e são subtraídos;
//   - Resgate Investimento não é receita (é dinheiro já investido voltando
//     para a conta — contá-lo duplicaria a receita);
//   - Investimento não é despesa (já está em InvestmentsNet).
func ComputeMetrics(subset []models.Transaction) Metrics {
	var m Metrics
	for _, t := range subset {
		m.Balance += t.Amount

		switch t.Category {
		case models.CategoryInvestimento:
			m.InvestmentsNet += math.Abs(t.Amount)
		case models.CategoryResgateInvestimento:
			m.InvestmentsNet -= t.Amount
		}

		if t.Amount > 0 && t.Category != models.CategoryResgateInvestimento {
			m.Income += t.Amount
		}
		if t.Amount < 0 && t.Category != models.CategoryInvestimento {
			m.Expense += t.Amount
		}
	}
	return m
}

// ExpenseByCategory partição das despesas de consumo por categoria, em
// valor absoluto, da maior para a menor. Usa o mesmo predicado do
// indicador Expense.
func ExpenseByCategory(subset []models.Transaction) []CategoryTotal {
	totals := map[string]float64{}
	for _, t := range subset {
		if t.Amount < 0 && t.Category != models.CategoryInvestimento {
			totals[t.Category] += math.Abs(t.Amount)
		}
	}

	result := make([]CategoryTotal, 0, len(totals))
	for cat, total := range totals {
		result = append(result, CategoryTotal{Category: cat, Total: total})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Total != result[j].Total {
			return result[i].Total > result[j].Total
		}
		return result[i].Category < result[j].Category
	})
	return result
}

// DailyNetFlow soma dos valores agrupada por dia, em ordem crescente de
// data.
func DailyNetFlow(subset []models.Transaction) []DailyFlow {
	totals := map[string]float64{}
	for _, t := range subset {
		totals[t.Date.Format("2006-01-02")] += t.Amount
	}

	result := make([]DailyFlow, 0, len(totals))
	for day, total := range totals {
		result = append(result, DailyFlow{Date: day, Total: total})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result
}
