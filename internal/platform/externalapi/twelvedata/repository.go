package twelvedata

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"ohlc_backend/internal/feature/history/domain"
	"ohlc_backend/internal/feature/history/domain/entity"
	"ohlc_backend/internal/feature/history/domain/timeframe"
	"ohlc_backend/internal/feature/history/usecase"
	"ohlc_backend/internal/platform/externalapi/twelvedata/dto"
)

// maxOutputSize is the largest page the time_series endpoint returns.
const maxOutputSize = 5000

// intervals maps the public interval vocabulary to Twelve Data granularities.
var intervals = map[string]string{
	"1m":  "1min",
	"5m":  "5min",
	"15m": "15min",
	"30m": "30min",
	"60m": "1h",
	"1h":  "1h",
	"1d":  "1day",
	"1wk": "1week",
	"1mo": "1month",
}

// TwelveDataMarket はTwelve Data外部APIから株価データを取得するMarketRepository実装です。
type TwelveDataMarket struct {
	cfg    Config
	client *http.Client
	logger *slog.Logger
	now    func() time.Time
}

// TwelveDataMarketがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*TwelveDataMarket)(nil)

// NewTwelveDataMarket は指定された設定とHTTPクライアントでTwelveDataMarketの新しいインスタンスを生成します。
func NewTwelveDataMarket(cfg Config, client *http.Client) *TwelveDataMarket {
	return &TwelveDataMarket{cfg: cfg, client: client, logger: slog.Default(), now: time.Now}
}

// Name identifies the provider in logs and health output.
func (t *TwelveDataMarket) Name() string { return "twelvedata" }

// GetHistory はTwelve Data APIから期間内の時系列株価データを取得し、
// 古い順に並べたentity.Barのスライスとして返します。
func (t *TwelveDataMarket) GetHistory(ctx context.Context, symbol, period, interval string) ([]entity.Bar, error) {
	iv, ok := intervals[interval]
	if !ok {
		return nil, fmt.Errorf("twelvedata: %w: %q", domain.ErrUnsupportedInterval, interval)
	}
	start, end, err := timeframe.Window(period, t.now())
	if err != nil {
		return nil, fmt.Errorf("twelvedata: %w", err)
	}

	q := url.Values{}
	// クエリパラメータを追加
	q.Set("symbol", symbol)
	q.Set("interval", iv)
	q.Set("start_date", start.Format(time.DateTime))
	q.Set("end_date", end.Format(time.DateTime))
	q.Set("timezone", "UTC")
	q.Set("order", "asc")
	q.Set("outputsize", strconv.Itoa(maxOutputSize))
	q.Set("apikey", t.cfg.TwelveDataAPIKey)

	// URLを生成
	u := fmt.Sprintf("%s/time_series?%s", strings.TrimRight(t.cfg.BaseURL, "/"), q.Encode())

	// リクエストオブジェクトを作成
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	// リクエストを実行
	res, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("twelvedata: %w", err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("twelvedata http %d: %w", res.StatusCode, domain.ErrNoData)
	}
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("twelvedata http %d", res.StatusCode)
	}

	// JSONレスポンスをDTOにデコード
	var body dto.TimeSeriesResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("twelvedata: decode: %w", err)
	}
	if body.Status == "error" {
		if isNoData(body) {
			return nil, fmt.Errorf("twelvedata: %s: %w", body.Message, domain.ErrNoData)
		}
		return nil, fmt.Errorf("twelvedata: %s", body.Message)
	}

	// 1ページで上限件数に達した場合、期間の末尾が切り捨てられている
	if len(body.Values) >= maxOutputSize {
		t.logger.Warn("twelvedata time series truncated",
			"symbol", symbol, "interval", iv, "rows", len(body.Values),
			"start", start.Format(time.DateTime), "end", end.Format(time.DateTime))
	}

	bars := make([]entity.Bar, 0, len(body.Values))
	for _, v := range body.Values {
		bar, err := toBar(v)
		if err != nil {
			return nil, err
		}
		bars = append(bars, bar)
	}
	sort.SliceStable(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}

func isNoData(body dto.TimeSeriesResponse) bool {
	if body.Code == http.StatusNotFound {
		return true
	}
	msg := strings.ToLower(body.Message)
	return strings.Contains(msg, "not found") || strings.Contains(msg, "no data")
}

func toBar(v dto.Value) (entity.Bar, error) {
	// タイムスタンプをパース
	tm, err := time.ParseInLocation(time.DateTime, v.Datetime, time.UTC)
	if err != nil {
		tm, err = time.ParseInLocation(time.DateOnly, v.Datetime, time.UTC)
		if err != nil {
			return entity.Bar{}, fmt.Errorf("parse time %q: %w", v.Datetime, err)
		}
	}
	o, err := strconv.ParseFloat(v.Open, 64)
	if err != nil {
		return entity.Bar{}, fmt.Errorf("parse open %q: %w", v.Open, err)
	}
	h, err := strconv.ParseFloat(v.High, 64)
	if err != nil {
		return entity.Bar{}, fmt.Errorf("parse high %q: %w", v.High, err)
	}
	l, err := strconv.ParseFloat(v.Low, 64)
	if err != nil {
		return entity.Bar{}, fmt.Errorf("parse low %q: %w", v.Low, err)
	}
	c, err := strconv.ParseFloat(v.Close, 64)
	if err != nil {
		return entity.Bar{}, fmt.Errorf("parse close %q: %w", v.Close, err)
	}
	// 出来高は指数や為替では返らない
	var vol int64
	if v.Volume != "" {
		vol, err = strconv.ParseInt(v.Volume, 10, 64)
		if err != nil {
			return entity.Bar{}, fmt.Errorf("parse volume %q: %w", v.Volume, err)
		}
	}

	return entity.Bar{Time: tm, Open: o, High: h, Low: l, Close: c, Volume: vol}, nil
}
