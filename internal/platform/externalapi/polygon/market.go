// Package polygon fetches aggregate bars from the Polygon.io REST API.
package polygon

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	polygonrest "github.com/polygon-io/client-go/rest"
	"github.com/polygon-io/client-go/rest/models"

	"ohlc_backend/internal/feature/history/domain"
	"ohlc_backend/internal/feature/history/domain/entity"
	"ohlc_backend/internal/feature/history/domain/timeframe"
	"ohlc_backend/internal/feature/history/usecase"
)

// pageLimit is the largest page ListAggs accepts.
const pageLimit = 50000

// AggsIterator walks aggregate pages.
type AggsIterator interface {
	Next() bool
	Item() models.Agg
	Err() error
}

// AggsLister starts an aggregate listing.
type AggsLister interface {
	ListAggs(ctx context.Context, params *models.ListAggsParams, options ...models.RequestOption) AggsIterator
}

type restLister struct {
	client *polygonrest.Client
}

func (r restLister) ListAggs(ctx context.Context, params *models.ListAggsParams, options ...models.RequestOption) AggsIterator {
	return r.client.ListAggs(ctx, params, options...)
}

type span struct {
	multiplier int
	timespan   models.Timespan
}

var spans = map[string]span{
	"1m":  {1, models.Minute},
	"2m":  {2, models.Minute},
	"5m":  {5, models.Minute},
	"15m": {15, models.Minute},
	"30m": {30, models.Minute},
	"60m": {1, models.Hour},
	"1h":  {1, models.Hour},
	"90m": {90, models.Minute},
	"1d":  {1, models.Day},
	"5d":  {5, models.Day},
	"1wk": {1, models.Week},
	"1mo": {1, models.Month},
	"3mo": {1, models.Quarter},
}

// Market is a MarketRepository backed by Polygon aggregates.
type Market struct {
	api AggsLister
	now func() time.Time
}

var _ usecase.MarketRepository = (*Market)(nil)

// NewMarket creates a Market using the REST client for apiKey.
func NewMarket(apiKey string) (*Market, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("polygon: apiKey is required")
	}
	return NewMarketWithAPI(restLister{client: polygonrest.New(apiKey)}), nil
}

// NewMarketWithAPI creates a Market over an existing lister.
func NewMarketWithAPI(api AggsLister) *Market {
	return &Market{api: api, now: time.Now}
}

// Name identifies the provider in logs and health output.
func (m *Market) Name() string { return "polygon" }

// GetHistory lists aggregates for the period window in ascending order.
func (m *Market) GetHistory(ctx context.Context, symbol, period, interval string) ([]entity.Bar, error) {
	s, ok := spans[interval]
	if !ok {
		return nil, fmt.Errorf("polygon: %w: %q", domain.ErrUnsupportedInterval, interval)
	}
	start, end, err := timeframe.Window(period, m.now())
	if err != nil {
		return nil, fmt.Errorf("polygon: %w", err)
	}

	//nolint:exhaustruct // third-party struct with many optional fields
	params := models.ListAggsParams{
		Ticker:     symbol,
		Multiplier: s.multiplier,
		Timespan:   s.timespan,
		From:       models.Millis(start),
		To:         models.Millis(end),
	}.WithOrder(models.Asc).WithLimit(pageLimit)

	it := m.api.ListAggs(ctx, params)
	var bars []entity.Bar
	for it.Next() {
		agg := it.Item()
		bars = append(bars, entity.Bar{
			Time:   time.Time(agg.Timestamp).UTC(),
			Open:   agg.Open,
			High:   agg.High,
			Low:    agg.Low,
			Close:  agg.Close,
			Volume: int64(agg.Volume),
		})
	}
	if err := it.Err(); err != nil {
		var apiErr *models.ErrorResponse
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("polygon: %w", domain.ErrNoData)
		}
		return nil, fmt.Errorf("polygon: list aggs: %w", err)
	}
	return bars, nil
}
