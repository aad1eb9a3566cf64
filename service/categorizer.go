package service

import (
	"strings"

	"financas/models"
)

// Regras de categorização por palavra-chave, em ordem de precedência.
// A primeira regra que casar vence; a ordem é um requisito de correção,
// não um detalhe ("posto via pix" é Transporte, não Transferência).
var categoryRules = []struct {
	keywords []string
	category string
}{
	{[]string{"uber", "99", "posto"}, models.CategoryTransporte},
	{[]string{"ifood", "restaurante", "mercado"}, models.CategoryAlimentacao},
	{[]string{"pix"}, models.CategoryTransferencia},
	{[]string{"aplicação rdb"}, models.CategoryInvestimento},
	{[]string{"resgate rdb"}, models.CategoryResgateInvestimento},
}

// Categorize mapeia a descrição de uma transação para uma das categorias
// fixas. Função pura e total: descrição vazia ou sem regra casada resolve
// para Outros, nunca para vazio.
func Categorize(description string) string {
	desc := strings.ToLower(strings.TrimSpace(description))
	if desc == "" {
		return models.CategoryOutros
	}

	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(desc, kw) {
				return rule.category
			}
		}
	}
	return models.CategoryOutros
}
