// Package yahoo fetches price history from the Yahoo Finance v8 chart API.
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"ohlc_backend/internal/feature/history/domain"
	"ohlc_backend/internal/feature/history/domain/entity"
	"ohlc_backend/internal/feature/history/usecase"
	"ohlc_backend/internal/platform/externalapi/yahoo/dto"
)

// DefaultBaseURL is the public chart API host.
const DefaultBaseURL = "https://query1.finance.yahoo.com"

// ChartMarket is a MarketRepository backed by the Yahoo chart endpoint.
// The endpoint accepts the period and interval vocabulary as-is.
type ChartMarket struct {
	baseURL string
	client  *http.Client
}

var _ usecase.MarketRepository = (*ChartMarket)(nil)

// NewChartMarket creates a ChartMarket. An empty baseURL selects DefaultBaseURL.
func NewChartMarket(baseURL string, client *http.Client) *ChartMarket {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &ChartMarket{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

// Name identifies the provider in logs and health output.
func (m *ChartMarket) Name() string { return "yahoo" }

// GetHistory requests range=period and interval=interval for symbol and
// returns complete bars in chronological order.
func (m *ChartMarket) GetHistory(ctx context.Context, symbol, period, interval string) ([]entity.Bar, error) {
	q := url.Values{}
	q.Set("range", period)
	q.Set("interval", interval)
	q.Set("includePrePost", "false")
	q.Set("events", "div,splits")
	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s", m.baseURL, url.PathEscape(symbol), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := m.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo: %w", err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	var body dto.ChartResponse
	decodeErr := json.NewDecoder(res.Body).Decode(&body)

	if e := body.Chart.Error; decodeErr == nil && e != nil {
		// Unknown symbols and range/interval pairs Yahoo refuses both come back
		// as chart.error. Only 5xx and 429 count as provider failures.
		if res.StatusCode < http.StatusInternalServerError && res.StatusCode != http.StatusTooManyRequests {
			return nil, fmt.Errorf("yahoo: %s: %s: %w", e.Code, e.Description, domain.ErrNoData)
		}
		return nil, fmt.Errorf("yahoo http %d: %s: %s", res.StatusCode, e.Code, e.Description)
	}
	if res.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("yahoo http %d: %w", res.StatusCode, domain.ErrNoData)
	}
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("yahoo http %d", res.StatusCode)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("yahoo: decode: %w", decodeErr)
	}

	if len(body.Chart.Result) == 0 {
		return nil, nil
	}
	return toBars(body.Chart.Result[0]), nil
}

// toBars zips the timestamp and quote columns. Rows with any null price are
// dropped.
func toBars(r dto.ChartResult) []entity.Bar {
	if len(r.Indicators.Quote) == 0 {
		return nil
	}
	q := r.Indicators.Quote[0]

	bars := make([]entity.Bar, 0, len(r.Timestamp))
	for i, ts := range r.Timestamp {
		o, h, l, c := at(q.Open, i), at(q.High, i), at(q.Low, i), at(q.Close, i)
		if o == nil || h == nil || l == nil || c == nil {
			continue
		}
		var vol int64
		if i < len(q.Volume) && q.Volume[i] != nil {
			vol = *q.Volume[i]
		}
		bars = append(bars, entity.Bar{
			Time:   time.Unix(ts, 0).UTC(),
			Open:   *o,
			High:   *h,
			Low:    *l,
			Close:  *c,
			Volume: vol,
		})
	}
	sort.SliceStable(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars
}

func at(col []*float64, i int) *float64 {
	if i >= len(col) {
		return nil
	}
	return col[i]
}
