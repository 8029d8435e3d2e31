// Package usecase は過去の価格データ取得のビジネスロジックを提供します。
package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ohlc_backend/internal/feature/history/domain"
	"ohlc_backend/internal/feature/history/domain/entity"
	"ohlc_backend/internal/feature/history/domain/timeframe"
)

// HistoryUsecase はリクエストのデフォルト値を補完し、取得処理をMarketRepositoryに委譲します。
type HistoryUsecase struct {
	market  MarketRepository
	timeout time.Duration
}

// NewHistoryUsecase はHistoryUsecaseの新しいインスタンスを生成します。
// timeoutが0の場合、プロバイダー呼び出しは呼び出し元のcontextのみで制限されます。
func NewHistoryUsecase(market MarketRepository, timeout time.Duration) *HistoryUsecase {
	return &HistoryUsecase{market: market, timeout: timeout}
}

// GetHistory は銘柄の価格データを返します。
// periodとintervalが空の場合はtimeframe.DefaultPeriodとtimeframe.DefaultIntervalを使用します。
func (hu *HistoryUsecase) GetHistory(ctx context.Context, symbol, period, interval string) ([]entity.Bar, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return nil, domain.ErrSymbolRequired
	}
	if period == "" {
		period = timeframe.DefaultPeriod
	}
	if interval == "" {
		interval = timeframe.DefaultInterval
	}
	if !timeframe.ValidPeriod(period) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPeriod, period)
	}
	if !timeframe.ValidInterval(interval) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidInterval, interval)
	}

	if hu.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, hu.timeout)
		defer cancel()
	}

	bars, err := hu.market.GetHistory(ctx, symbol, period, interval)
	if err != nil {
		return nil, fmt.Errorf("get history %s: %w", symbol, err)
	}
	if len(bars) == 0 {
		return nil, domain.ErrNoData
	}
	return bars, nil
}
