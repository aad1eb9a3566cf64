package api

import (
	"net/http/httptest"
	"testing"
	"time"

	"financas/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportHandler_ExportCSV(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `transactions`").
		WillReturnRows(sqlmock.NewRows(ledgerColumns).
			AddRow(1, time.Date(2025, 10, 5, 0, 0, 0, 0, time.Local), "Padaria São João", -12.5, models.CategoryAlimentacao, "extrato_out.ofx", now, now))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/export/csv", NewExportHandler().ExportCSV)

	req := httptest.NewRequest("GET", "/export/csv", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Body.String(), "Descrição")
	assert.Contains(t, w.Body.String(), "Padaria São João")
	assert.Contains(t, w.Body.String(), "-12.50")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportHandler_ExportCSV_EmptyLedger(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `transactions`").
		WillReturnRows(sqlmock.NewRows(ledgerColumns))

	router := gin.New()
	router.GET("/export/csv", NewExportHandler().ExportCSV)

	req := httptest.NewRequest("GET", "/export/csv", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// ledger vazio ainda exporta o cabeçalho
	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "ID,Data,Descrição,Valor,Categoria,Origem")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportHandler_ExportExcel(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `transactions`").
		WillReturnRows(sqlmock.NewRows(ledgerColumns).
			AddRow(1, time.Date(2025, 10, 15, 0, 0, 0, 0, time.Local), "Pix recebido", 1500.0, models.CategoryTransferencia, "extrato_out.ofx", now, now))

	router := gin.New()
	router.GET("/export/excel", NewExportHandler().ExportExcel)

	req := httptest.NewRequest("GET", "/export/excel", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	assert.NotEmpty(t, w.Body.Bytes())
	require.NoError(t, mock.ExpectationsWereMet())
}
