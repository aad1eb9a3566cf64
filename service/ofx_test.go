package service

import (
	"strings"
	"testing"
	"time"

	"financas/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleOFX = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<?OFX OFXHEADER="200" VERSION="202" SECURITY="NONE" OLDFILEUID="NONE" NEWFILEUID="NONE"?>
<OFX>
  <SIGNONMSGSRSV1>
    <SONRS>
      <STATUS><CODE>0</CODE><SEVERITY>INFO</SEVERITY></STATUS>
      <DTSERVER>20251101120000</DTSERVER>
      <LANGUAGE>POR</LANGUAGE>
    </SONRS>
  </SIGNONMSGSRSV1>
  <BANKMSGSRSV1>
    <STMTTRNRS>
      <TRNUID>1</TRNUID>
      <STATUS><CODE>0</CODE><SEVERITY>INFO</SEVERITY></STATUS>
      <STMTRS>
        <CURDEF>BRL</CURDEF>
        <BANKACCTFROM>
          <BANKID>0260</BANKID>
          <ACCTID>123456-7</ACCTID>
          <ACCTTYPE>CHECKING</ACCTTYPE>
        </BANKACCTFROM>
        <BANKTRANLIST>
          <DTSTART>20251001</DTSTART>
          <DTEND>20251031</DTEND>
          <STMTTRN>
            <TRNTYPE>DEBIT</TRNTYPE>
            <DTPOSTED>20251001</DTPOSTED>
            <TRNAMT>-50.00</TRNAMT>
            <FITID>1001</FITID>
            <MEMO>Aplicação RDB</MEMO>
          </STMTTRN>
          <STMTTRN>
            <TRNTYPE>CREDIT</TRNTYPE>
            <DTPOSTED>20251015</DTPOSTED>
            <TRNAMT>1000.00</TRNAMT>
            <FITID>1002</FITID>
            <MEMO>Pix recebido - Salário</MEMO>
          </STMTTRN>
          <STMTTRN>
            <TRNTYPE>DEBIT</TRNTYPE>
            <DTPOSTED>20251020</DTPOSTED>
            <TRNAMT>-33.90</TRNAMT>
            <FITID>1003</FITID>
            <MEMO>IFOOD *PEDIDO</MEMO>
          </STMTTRN>
        </BANKTRANLIST>
        <LEDGERBAL>
          <BALAMT>916.10</BALAMT>
          <DTASOF>20251031</DTASOF>
        </LEDGERBAL>
      </STMTRS>
    </STMTTRNRS>
  </BANKMSGSRSV1>
</OFX>
`

func TestParseOFX(t *testing.T) {
	entries, err := ParseOFX(strings.NewReader(sampleOFX))
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// ordem do arquivo preservada, data sem componente de hora
	assert.Equal(t, time.Date(2025, 10, 1, 0, 0, 0, 0, time.Local), entries[0].Date)
	assert.Equal(t, "Aplicação RDB", entries[0].Description)
	assert.InDelta(t, -50.0, entries[0].Amount, 1e-9)

	assert.InDelta(t, 1000.0, entries[1].Amount, 1e-9)
	assert.Equal(t, "IFOOD *PEDIDO", entries[2].Description)
}

func TestParseOFX_Malformed(t *testing.T) {
	_, err := ParseOFX(strings.NewReader("isto não é um extrato OFX"))
	require.Error(t, err)

	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestImportStatement(t *testing.T) {
	txs, err := ImportStatement(strings.NewReader(sampleOFX), "extrato_out.ofx")
	require.NoError(t, err)
	require.Len(t, txs, 3)

	// categorização aplicada registro a registro, origem marcada
	assert.Equal(t, models.CategoryInvestimento, txs[0].Category)
	assert.Equal(t, models.CategoryTransferencia, txs[1].Category)
	assert.Equal(t, models.CategoryAlimentacao, txs[2].Category)
	for _, tx := range txs {
		assert.Equal(t, "extrato_out.ofx", tx.SourceFile)
		assert.Zero(t, tx.ID)
	}
}
