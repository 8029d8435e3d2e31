package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"ohlc_backend/internal/feature/symbollist/domain/entity"
)

// mockSymbolUsecase はSymbolUsecaseインターフェースのモック実装です。
type mockSymbolUsecase struct {
	ListActiveSymbolsFunc func(ctx context.Context, sector string) ([]entity.Symbol, error)
}

func (m *mockSymbolUsecase) ListActiveSymbols(ctx context.Context, sector string) ([]entity.Symbol, error) {
	if m.ListActiveSymbolsFunc != nil {
		return m.ListActiveSymbolsFunc(ctx, sector)
	}
	return nil, nil
}

func TestNewSymbolHandler(t *testing.T) {
	t.Parallel()

	handler := NewSymbolHandler(&mockSymbolUsecase{})

	assert.NotNil(t, handler, "handler should not be nil")
	assert.NotNil(t, handler.uc, "usecase should not be nil")
}

// TestSymbolHandler_List はListハンドラーの各種シナリオをテーブル駆動テストで検証します。
func TestSymbolHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		query          string
		wantSector     string
		symbols        []entity.Symbol
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: returns list of symbols",
			symbols: []entity.Symbol{
				{ID: 1, Code: "TCS", Name: "Tata Consultancy Services", Sector: "it", Ticker: "TCS.NS"},
				{ID: 2, Code: "SBIN", Name: "State Bank of India", Sector: "banks", Ticker: "SBIN.NS"},
			},
			expectedStatus: http.StatusOK,
			expectedBody: `[{"code":"TCS","name":"Tata Consultancy Services","sector":"it","ticker":"TCS.NS"},` +
				`{"code":"SBIN","name":"State Bank of India","sector":"banks","ticker":"SBIN.NS"}]`,
		},
		{
			name:           "success: passes sector filter",
			query:          "?sector=pharma",
			wantSector:     "pharma",
			symbols:        []entity.Symbol{{Code: "CIPLA", Name: "Cipla", Sector: "pharma", Ticker: "CIPLA.NS"}},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"code":"CIPLA","name":"Cipla","sector":"pharma","ticker":"CIPLA.NS"}]`,
		},
		{
			name:           "success: returns empty list when no symbols",
			symbols:        []entity.Symbol{},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name:           "failure: usecase returns error",
			err:            errors.New("database connection failed"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Failed to list symbols"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockSymbolUsecase{
				ListActiveSymbolsFunc: func(ctx context.Context, sector string) ([]entity.Symbol, error) {
					assert.Equal(t, tt.wantSector, sector)
					return tt.symbols, tt.err
				},
			}
			router := gin.New()
			router.GET("/api/symbols", NewSymbolHandler(uc).List)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/symbols"+tt.query, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
