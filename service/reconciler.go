package service

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"financas/database"
	"financas/models"
)

// ChangeSet é o diff produzido pela grade editável contra a visão
// original: posições excluídas, linhas novas e edições campo a campo.
// Todas as posições referem-se à ordenação da visão original — é o único
// espaço de coordenadas válido para resolver ids.
type ChangeSet struct {
	Deleted []int                          `json:"deleted"`
	Added   []map[string]interface{}       `json:"added"`
	Edited  map[int]map[string]interface{} `json:"edited"`
}

// Valores padrão para campos ausentes em linhas novas.
const defaultDescription = "(sem descrição)"

// Reconcile aplica o change-set sobre o ledger, na ordem exclusão →
// inserção → edição. A aplicação é por operação, sem rollback: em caso de
// falha o ledger fica no estado parcial e o erro nomeia a operação que
// falhou (limitação documentada; o modelo é de um único escritor).
func Reconcile(original []models.Transaction, cs ChangeSet) error {
	// 1. Exclusões
	for _, pos := range cs.Deleted {
		if pos < 0 || pos >= len(original) {
			return fmt.Errorf("exclusão inválida: linha %d fora da visão original", pos)
		}
		id := original[pos].ID
		if err := database.DeleteByID(id); err != nil {
			return fmt.Errorf("falha ao excluir a linha %d (id=%d): %w", pos, id, err)
		}
	}

	// 2. Inserções (linhas novas nascem sem id; o banco atribui um novo)
	for i, fields := range cs.Added {
		t, err := newManualTransaction(fields)
		if err != nil {
			return fmt.Errorf("linha nova %d inválida: %w", i, err)
		}
		if err := database.Insert(t); err != nil {
			return fmt.Errorf("falha ao inserir a linha nova %d: %w", i, err)
		}
	}

	// 3. Edições, em ordem estável de posição e de campo
	positions := make([]int, 0, len(cs.Edited))
	for pos := range cs.Edited {
		positions = append(positions, pos)
	}
	sort.Ints(positions)

	for _, pos := range positions {
		if pos < 0 || pos >= len(original) {
			return fmt.Errorf("edição inválida: linha %d fora da visão original", pos)
		}
		id := original[pos].ID

		fields := cs.Edited[pos]
		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			column, value, err := coerceField(name, fields[name])
			if err != nil {
				return fmt.Errorf("falha ao editar a linha %d (id=%d): %w", pos, id, err)
			}
			if err := database.UpdateField(id, column, value); err != nil {
				return fmt.Errorf("falha ao editar a linha %d (id=%d), campo %q: %w", pos, id, name, err)
			}
		}
	}

	return nil
}

// newManualTransaction monta um lançamento manual a partir do mapa de
// campos da grade, preenchendo os ausentes com os padrões de política.
func newManualTransaction(fields map[string]interface{}) (*models.Transaction, error) {
	now := time.Now()
	t := &models.Transaction{
		Date:        time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local),
		Description: defaultDescription,
		Amount:      0.0,
		Category:    models.CategoryOutros,
		SourceFile:  models.SourceManual,
	}

	for name, raw := range fields {
		column, value, err := coerceField(name, raw)
		if err != nil {
			return nil, err
		}
		switch column {
		case "date":
			t.Date = value.(time.Time)
		case "description":
			t.Description = value.(string)
		case "amount":
			t.Amount = value.(float64)
		case "category":
			t.Category = value.(string)
		}
	}
	return t, nil
}

// coerceField valida o nome do campo e converte o valor vindo do JSON da
// grade para o tipo da coluna.
func coerceField(name string, raw interface{}) (string, interface{}, error) {
	switch name {
	case "date":
		s, ok := raw.(string)
		if !ok {
			return "", nil, fmt.Errorf("data inválida: %v", raw)
		}
		d, err := parseDate(s)
		if err != nil {
			return "", nil, fmt.Errorf("data inválida: %q", s)
		}
		return "date", d, nil

	case "description":
		s, ok := raw.(string)
		if !ok {
			return "", nil, fmt.Errorf("descrição inválida: %v", raw)
		}
		return "description", s, nil

	case "amount":
		switch v := raw.(type) {
		case float64:
			return "amount", v, nil
		case string:
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return "", nil, fmt.Errorf("valor inválido: %q", v)
			}
			return "amount", f, nil
		default:
			return "", nil, fmt.Errorf("valor inválido: %v", raw)
		}

	case "category":
		s, ok := raw.(string)
		if !ok || !models.ValidCategory(s) {
			return "", nil, fmt.Errorf("categoria inválida: %v", raw)
		}
		return "category", s, nil

	default:
		return "", nil, fmt.Errorf("campo não editável: %q", name)
	}
}

func parseDate(s string) (time.Time, error) {
	if d, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return d, nil
	}
	d, err := time.ParseInLocation(time.RFC3339, s, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.Local), nil
}
