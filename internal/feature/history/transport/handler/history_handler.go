// Package handler はhistoryフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ohlc_backend/internal/api"
	"ohlc_backend/internal/feature/history/domain"
	"ohlc_backend/internal/feature/history/domain/entity"
	"ohlc_backend/internal/feature/history/domain/timeframe"
)

// クライアントに返すエラーメッセージ
const (
	msgNoSymbol        = "No symbol provided"
	msgNoData          = "No data found for symbol"
	msgInvalidPeriod   = "Invalid period"
	msgInvalidInterval = "Invalid interval"
	msgTimeout         = "Provider timed out"
	msgProviderFailure = "Failed to fetch history"
)

// HistoryUsecase は過去の価格データ取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type HistoryUsecase interface {
	GetHistory(ctx context.Context, symbol, period, interval string) ([]entity.Bar, error)
}

// HistoryHandler は価格履歴のHTTPリクエストを処理します。
type HistoryHandler struct {
	uc HistoryUsecase
}

// NewHistoryHandler は指定されたusecaseでHistoryHandlerの新しいインスタンスを生成します。
func NewHistoryHandler(uc HistoryUsecase) *HistoryHandler {
	return &HistoryHandler{uc: uc}
}

// GetHistory は銘柄コード・期間・間隔を受け取り、OHLCデータをJSONで返します。
//
// エンドポイント例:
// GET /api/history?symbol=AAPL&period=5y&interval=1d
func (h *HistoryHandler) GetHistory(c *gin.Context) {
	symbol := strings.TrimSpace(c.Query("symbol"))
	if symbol == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: msgNoSymbol})
		return
	}
	period := c.DefaultQuery("period", timeframe.DefaultPeriod)
	interval := c.DefaultQuery("interval", timeframe.DefaultInterval)

	bars, err := h.uc.GetHistory(c.Request.Context(), symbol, period, interval)
	if err != nil {
		status, msg := classify(err)
		if status >= http.StatusInternalServerError {
			slog.Error("history fetch failed", "symbol", symbol, "period", period, "interval", interval, "error", err)
		} else {
			slog.Info("history request rejected", "symbol", symbol, "status", status, "error", err)
		}
		c.JSON(status, api.ErrorResponse{Error: msg})
		return
	}

	c.JSON(http.StatusOK, NewHistoryResponse(symbol, bars))
}

// classify はusecaseのエラーをHTTPステータスとクライアント向けメッセージに変換します。
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrSymbolRequired):
		return http.StatusBadRequest, msgNoSymbol
	case errors.Is(err, domain.ErrInvalidPeriod):
		return http.StatusBadRequest, msgInvalidPeriod
	case errors.Is(err, domain.ErrInvalidInterval), errors.Is(err, domain.ErrUnsupportedInterval):
		return http.StatusBadRequest, msgInvalidInterval
	case errors.Is(err, domain.ErrNoData):
		return http.StatusNotFound, msgNoData
	case isTimeout(err):
		return http.StatusGatewayTimeout, msgTimeout
	default:
		return http.StatusBadGateway, msgProviderFailure
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// NewHistoryResponse は価格データを順序を保ったままチャート用のレスポンス形式に変換します。
func NewHistoryResponse(symbol string, bars []entity.Bar) api.HistoryResponse {
	out := make([]api.OHLCPoint, 0, len(bars))
	for _, b := range bars {
		out = append(out, api.OHLCPoint{
			X: b.EpochMillis(),
			O: b.Open,
			H: b.High,
			L: b.Low,
			C: b.Close,
		})
	}
	return api.HistoryResponse{Symbol: symbol, Data: out}
}
