package database

import (
	"errors"
	"fmt"
	"time"

	"financas/models"

	"gorm.io/gorm"
)

// Colunas que a grade editável pode alterar. O id nunca é editável e o
// source_file só muda pelos caminhos de importação/inserção manual.
var editableColumns = map[string]bool{
	"date":        true,
	"description": true,
	"amount":      true,
	"category":    true,
}

// FileExists verifica se um arquivo de extrato já foi importado.
// É a sondagem barata que roda antes de qualquer parse, sobre o índice
// de source_file.
func FileExists(sourceFile string) (bool, error) {
	var tx models.Transaction
	err := DB.Select("id").Where("source_file = ?", sourceFile).First(&tx).Error
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

// AppendMany grava um lote de transações e devolve quantas foram salvas.
func AppendMany(txs []models.Transaction) (int64, error) {
	if len(txs) == 0 {
		return 0, nil
	}
	res := DB.Create(&txs)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// LoadAll carrega o ledger completo, do lançamento mais recente ao mais
// antigo. A ordenação é estável: é sobre ela que a grade editável resolve
// as posições de linha.
func LoadAll() ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := DB.Order("date DESC, id DESC").Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

// DeletePeriod remove todas as transações de um ano ou de um ano+mês
// (month = 0 apaga o ano inteiro) e devolve quantas linhas saíram.
func DeletePeriod(year, month int) (int64, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(1, 0, 0)
	if month > 0 {
		start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
		end = start.AddDate(0, 1, 0)
	}

	res := DB.Where("date >= ? AND date < ?", start, end).Delete(&models.Transaction{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// DeleteByID remove um único lançamento.
func DeleteByID(id uint) error {
	res := DB.Delete(&models.Transaction{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("registro %d não encontrado", id)
	}
	return nil
}

// Insert grava um lançamento avulso; o banco atribui o id, que nunca é
// reutilizado.
func Insert(t *models.Transaction) error {
	if !models.ValidCategory(t.Category) {
		return fmt.Errorf("categoria inválida: %q", t.Category)
	}
	return DB.Create(t).Error
}

// UpdateField atualiza uma única coluna de um único registro.
func UpdateField(id uint, field string, value interface{}) error {
	if !editableColumns[field] {
		return fmt.Errorf("campo não editável: %q", field)
	}
	if field == "category" {
		name, ok := value.(string)
		if !ok || !models.ValidCategory(name) {
			return fmt.Errorf("categoria inválida: %v", value)
		}
	}

	// Sem checagem de RowsAffected: o MySQL devolve 0 também quando o
	// valor novo é igual ao atual.
	return DB.Model(&models.Transaction{}).Where("id = ?", id).Update(field, value).Error
}

// ClearAll esvazia o ledger e devolve quantas linhas existiam.
func ClearAll() (int64, error) {
	res := DB.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Transaction{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
