package service

import (
	"fmt"
	"io"
	"time"

	"financas/models"

	"github.com/aclindsa/ofxgo"
)

// ParseError indica um extrato OFX ilegível ou malformado. O chamador
// decide como degradar: a camada HTTP o traduz em "nenhuma transação
// detectada" em vez de derrubar a sessão.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("arquivo OFX inválido: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// StatementEntry é um lançamento normalizado extraído do extrato:
// data (sem hora), descrição e valor assinado.
type StatementEntry struct {
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
}

// ParseOFX lê um extrato OFX (conta corrente e cartão) e devolve os
// lançamentos na ordem do arquivo.
func ParseOFX(r io.Reader) ([]StatementEntry, error) {
	resp, err := ofxgo.ParseResponse(r)
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	var entries []StatementEntry
	messages := append(append([]ofxgo.Message{}, resp.Bank...), resp.CreditCard...)
	for _, msg := range messages {
		var list *ofxgo.TransactionList
		switch stmt := msg.(type) {
		case *ofxgo.StatementResponse:
			list = stmt.BankTranList
		case *ofxgo.CCStatementResponse:
			list = stmt.BankTranList
		}
		if list == nil {
			continue
		}

		for _, tx := range list.Transactions {
			amount, _ := tx.TrnAmt.Float64()
			desc := string(tx.Memo)
			if desc == "" {
				desc = string(tx.Name)
			}
			d := tx.DtPosted.Time
			entries = append(entries, StatementEntry{
				Date:        time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.Local),
				Description: desc,
				Amount:      amount,
			})
		}
	}
	return entries, nil
}

// ImportStatement converte um extrato OFX em transações categorizadas,
// prontas para o ledger, marcadas com o arquivo de origem.
func ImportStatement(r io.Reader, sourceFile string) ([]models.Transaction, error) {
	entries, err := ParseOFX(r)
	if err != nil {
		return nil, err
	}

	txs := make([]models.Transaction, 0, len(entries))
	for _, e := range entries {
		txs = append(txs, models.Transaction{
			Date:        e.Date,
			Description: e.Description,
			Amount:      e.Amount,
			Category:    Categorize(e.Description),
			SourceFile:  sourceFile,
		})
	}
	return txs, nil
}
