package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"ohlc_backend/internal/feature/history/domain"
	"ohlc_backend/internal/feature/history/domain/entity"
	"ohlc_backend/internal/feature/history/usecase"
)

// errProvider is a sentinel shared between the mock and the expectations.
var errProvider = errors.New("provider unavailable")

func sampleBars() []entity.Bar {
	return []entity.Bar{
		{Time: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Open: 100, High: 110, Low: 95, Close: 105},
		{Time: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), Open: 105, High: 112, Low: 101, Close: 111},
	}
}

func TestHistoryUsecase_GetHistory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		symbol       string
		period       string
		interval     string
		wantSymbol   string
		wantPeriod   string
		wantInterval string
		returnBars   []entity.Bar
		returnErr    error
		wantErr      error
		wantLen      int
	}{
		{
			name:   "success: all parameters specified",
			symbol: "AAPL", period: "1y", interval: "1wk",
			wantSymbol: "AAPL", wantPeriod: "1y", wantInterval: "1wk",
			returnBars: sampleBars(),
			wantLen:    2,
		},
		{
			name:   "success: defaults applied when period and interval are empty",
			symbol: "RELIANCE.NS",
			wantSymbol: "RELIANCE.NS", wantPeriod: "5y", wantInterval: "1d",
			returnBars: sampleBars(),
			wantLen:    2,
		},
		{
			name:   "success: symbol is trimmed",
			symbol: "  TCS.NS ", period: "max", interval: "1mo",
			wantSymbol: "TCS.NS", wantPeriod: "max", wantInterval: "1mo",
			returnBars: sampleBars()[:1],
			wantLen:    1,
		},
		{
			name:   "error: provider returns no rows",
			symbol: "NOPE", wantSymbol: "NOPE", wantPeriod: "5y", wantInterval: "1d",
			returnBars: []entity.Bar{},
			wantErr:    domain.ErrNoData,
		},
		{
			name:   "error: provider reports unknown symbol",
			symbol: "NOPE", wantSymbol: "NOPE", wantPeriod: "5y", wantInterval: "1d",
			returnErr: domain.ErrNoData,
			wantErr:   domain.ErrNoData,
		},
		{
			name:   "error: provider failure is wrapped",
			symbol: "AAPL", wantSymbol: "AAPL", wantPeriod: "5y", wantInterval: "1d",
			returnErr: errProvider,
			wantErr:   errProvider,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			market := NewMockMarketRepository(ctrl)
			market.EXPECT().
				GetHistory(gomock.Any(), tt.wantSymbol, tt.wantPeriod, tt.wantInterval).
				Return(tt.returnBars, tt.returnErr).
				Times(1)

			uc := usecase.NewHistoryUsecase(market, 0)
			bars, err := uc.GetHistory(t.Context(), tt.symbol, tt.period, tt.interval)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, bars)
				return
			}
			require.NoError(t, err)
			assert.Len(t, bars, tt.wantLen)
		})
	}
}

func TestHistoryUsecase_GetHistory_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		symbol   string
		period   string
		interval string
		wantErr  error
	}{
		{"empty symbol", "", "", "", domain.ErrSymbolRequired},
		{"blank symbol", "   ", "1y", "1d", domain.ErrSymbolRequired},
		{"unknown period", "AAPL", "7y", "1d", domain.ErrInvalidPeriod},
		{"unknown interval", "AAPL", "1y", "1day", domain.ErrInvalidInterval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// No EXPECT: the provider must not be called.
			ctrl := gomock.NewController(t)
			market := NewMockMarketRepository(ctrl)

			uc := usecase.NewHistoryUsecase(market, time.Second)
			_, err := uc.GetHistory(t.Context(), tt.symbol, tt.period, tt.interval)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHistoryUsecase_GetHistory_PreservesOrder(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	market := NewMockMarketRepository(ctrl)
	bars := sampleBars()
	market.EXPECT().GetHistory(gomock.Any(), "AAPL", "5y", "1d").Return(bars, nil)

	uc := usecase.NewHistoryUsecase(market, 0)
	got, err := uc.GetHistory(t.Context(), "AAPL", "", "")
	require.NoError(t, err)
	assert.Equal(t, bars, got)
}

func TestHistoryUsecase_GetHistory_AppliesTimeout(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	market := NewMockMarketRepository(ctrl)
	market.EXPECT().
		GetHistory(gomock.Any(), "AAPL", "5y", "1d").
		DoAndReturn(func(ctx context.Context, symbol, period, interval string) ([]entity.Bar, error) {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok, "provider context should carry a deadline")
			assert.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, 50*time.Millisecond)
			<-ctx.Done()
			return nil, ctx.Err()
		})

	uc := usecase.NewHistoryUsecase(market, 50*time.Millisecond)
	_, err := uc.GetHistory(t.Context(), "AAPL", "", "")
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
