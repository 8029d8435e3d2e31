package router

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	historyentity "ohlc_backend/internal/feature/history/domain/entity"
	historyhandler "ohlc_backend/internal/feature/history/transport/handler"
	symbolentity "ohlc_backend/internal/feature/symbollist/domain/entity"
	symbollisthandler "ohlc_backend/internal/feature/symbollist/transport/handler"
	platformhandler "ohlc_backend/internal/platform/http/handler"
)

type stubHistory struct{}

func (stubHistory) GetHistory(_ context.Context, symbol, _, _ string) ([]historyentity.Bar, error) {
	return []historyentity.Bar{{Time: time.Unix(1700000000, 0), Open: 1, High: 2, Low: 0.5, Close: 1.5}}, nil
}

type stubSymbols struct{}

func (stubSymbols) ListActiveSymbols(context.Context, string) ([]symbolentity.Symbol, error) {
	return []symbolentity.Symbol{{Code: "TCS", Name: "Tata Consultancy Services", Sector: "it", Ticker: "TCS.NS"}}, nil
}

func newTestRouter(withSymbols bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := Handlers{
		Health:  platformhandler.NewHealthHandler("yahoo", nil),
		History: historyhandler.NewHistoryHandler(stubHistory{}),
	}
	if withSymbols {
		h.Symbols = symbollisthandler.NewSymbolHandler(stubSymbols{})
	}
	return NewRouter(slog.New(slog.NewTextHandler(io.Discard, nil)), h)
}

func TestNewRouter_Routes(t *testing.T) {
	r := newTestRouter(true)

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodHead, "/healthz", http.StatusOK},
		{http.MethodOptions, "/healthz", http.StatusNoContent},
		{http.MethodGet, "/api/history?symbol=AAPL", http.StatusOK},
		{http.MethodGet, "/api/history", http.StatusBadRequest},
		{http.MethodGet, "/api/symbols", http.StatusOK},
		{http.MethodGet, "/api/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.status, w.Code)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}

func TestNewRouter_HistoryBody(t *testing.T) {
	r := newTestRouter(false)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/history?symbol=AAPL", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"symbol":"AAPL","data":[{"x":1700000000000,"o":1,"h":2,"l":0.5,"c":1.5}]}`, w.Body.String())
}

func TestNewRouter_SymbolsOmittedWithoutCatalog(t *testing.T) {
	r := newTestRouter(false)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/symbols", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewRouter_CORS(t *testing.T) {
	r := newTestRouter(false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/history?symbol=AAPL", nil)
	req.Header.Set("Origin", "http://localhost:8080")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewRouter_CORSPreflight(t *testing.T) {
	r := newTestRouter(false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/history", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
