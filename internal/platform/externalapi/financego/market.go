// Package financego adapts github.com/piquette/finance-go chart iterators to
// the history MarketRepository.
package financego

import (
	"context"
	"fmt"
	"strings"
	"time"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"

	"ohlc_backend/internal/feature/history/domain"
	"ohlc_backend/internal/feature/history/domain/entity"
	"ohlc_backend/internal/feature/history/domain/timeframe"
	"ohlc_backend/internal/feature/history/usecase"
)

// BarIterator is the subset of *chart.Iter the market reads.
type BarIterator interface {
	Next() bool
	Bar() *finance.ChartBar
	Err() error
}

// ChartFunc starts a chart query.
type ChartFunc func(*chart.Params) BarIterator

// Market is a MarketRepository backed by finance-go.
type Market struct {
	get ChartFunc
	now func() time.Time
}

var _ usecase.MarketRepository = (*Market)(nil)

// NewMarket returns a Market that queries chart.Get.
func NewMarket() *Market {
	return &Market{
		get: func(p *chart.Params) BarIterator { return chart.Get(p) },
		now: time.Now,
	}
}

// Name identifies the provider in logs and health output.
func (m *Market) Name() string { return "financego" }

// GetHistory drains a chart iterator over the period window.
func (m *Market) GetHistory(ctx context.Context, symbol, period, interval string) ([]entity.Bar, error) {
	start, end, err := timeframe.Window(period, m.now())
	if err != nil {
		return nil, fmt.Errorf("financego: %w", err)
	}

	p := &chart.Params{
		Symbol:   symbol,
		Interval: datetime.Interval(interval),
		Start:    toDatetime(start),
		// The end date is exclusive at day granularity.
		End: toDatetime(end.AddDate(0, 0, 1)),
	}
	p.Context = &ctx

	it := m.get(p)
	var bars []entity.Bar
	for it.Next() {
		b := it.Bar()
		if b == nil {
			continue
		}
		bars = append(bars, toBar(b))
	}
	if err := it.Err(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("financego: %w", ctxErr)
		}
		if isNotFound(err) {
			return nil, fmt.Errorf("financego: %v: %w", err, domain.ErrNoData)
		}
		return nil, fmt.Errorf("financego: %w", err)
	}
	return bars, nil
}

func toDatetime(t time.Time) *datetime.Datetime {
	return &datetime.Datetime{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

func toBar(b *finance.ChartBar) entity.Bar {
	o, _ := b.Open.Float64()
	h, _ := b.High.Float64()
	l, _ := b.Low.Float64()
	c, _ := b.Close.Float64()
	return entity.Bar{
		Time:   time.Unix(int64(b.Timestamp), 0).UTC(),
		Open:   o,
		High:   h,
		Low:    l,
		Close:  c,
		Volume: int64(b.Volume),
	}
}

func isNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "not found") || strings.Contains(msg, "no data")
}
