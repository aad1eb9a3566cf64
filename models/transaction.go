package models

import (
	"time"
)

// Transaction é um lançamento do extrato bancário persistido no ledger.
// O campo Amount é sempre assinado: negativo = saída, positivo = entrada.
type Transaction struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Date        time.Time `json:"date" gorm:"type:date;not null;index"`
	Description string    `json:"description" gorm:"size:255"`
	Amount      float64   `json:"amount" gorm:"type:decimal(10,2);not null"`
	Category    string    `json:"category" gorm:"size:50;not null"`
	SourceFile  string    `json:"source_file" gorm:"size:255;not null;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName define o nome da tabela
func (Transaction) TableName() string {
	return "transactions"
}

// SourceManual identifica lançamentos criados pela grade editável,
// em vez de importados de um arquivo de extrato.
const SourceManual = "Manual"

// Categorias fixas de classificação
const (
	CategoryAlimentacao         = "Alimentação"
	CategoryTransporte          = "Transporte"
	CategoryMoradia             = "Moradia"
	CategoryLazer               = "Lazer"
	CategorySaude               = "Saúde"
	CategoryEducacao            = "Educação"
	CategoryReceita             = "Receita"
	CategoryInvestimento        = "Investimento"
	CategoryResgateInvestimento = "Resgate Investimento"
	CategoryTransferencia       = "Transferência"
	CategoryOutros              = "Outros"
)

// GetCategories devolve todas as categorias válidas.
func GetCategories() []string {
	return []string{
		CategoryAlimentacao,
		CategoryTransporte,
		CategoryMoradia,
		CategoryLazer,
		CategorySaude,
		CategoryEducacao,
		CategoryReceita,
		CategoryInvestimento,
		CategoryResgateInvestimento,
		CategoryTransferencia,
		CategoryOutros,
	}
}

// ValidCategory informa se o nome pertence ao conjunto fechado de categorias.
func ValidCategory(name string) bool {
	for _, c := range GetCategories() {
		if c == name {
			return true
		}
	}
	return false
}
