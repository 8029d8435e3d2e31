// Package di provides dependency injection factories for creating application components.
package di

import (
	"fmt"

	"ohlc_backend/internal/feature/history/usecase"
	"ohlc_backend/internal/platform/config"
	"ohlc_backend/internal/platform/externalapi/financego"
	"ohlc_backend/internal/platform/externalapi/polygon"
	"ohlc_backend/internal/platform/externalapi/twelvedata"
	"ohlc_backend/internal/platform/externalapi/yahoo"
	infrahttp "ohlc_backend/internal/platform/http"
)

// Market is a MarketRepository that can name its provider.
type Market interface {
	usecase.MarketRepository
	Name() string
}

// NewMarket creates the market data adapter selected by cfg.Name.
func NewMarket(cfg config.ProviderConfig) (Market, error) {
	switch cfg.Name {
	case "yahoo", "":
		httpClient := infrahttp.NewHTTPClient(cfg.Timeout, cfg.UserAgent)
		return yahoo.NewChartMarket(cfg.Yahoo.BaseURL, httpClient), nil
	case "financego":
		return financego.NewMarket(), nil
	case "twelvedata":
		tdCfg := twelvedata.ConfigFrom(cfg)
		httpClient := infrahttp.NewHTTPClient(tdCfg.Timeout, cfg.UserAgent)
		return twelvedata.NewTwelveDataMarket(tdCfg, httpClient), nil
	case "polygon":
		m, err := polygon.NewMarket(cfg.Polygon.APIKey)
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unknown history provider %q", cfg.Name)
	}
}

// NewHistoryUsecase wires the selected provider into the history usecase.
func NewHistoryUsecase(cfg config.ProviderConfig) (*usecase.HistoryUsecase, Market, error) {
	market, err := NewMarket(cfg)
	if err != nil {
		return nil, nil, err
	}
	return usecase.NewHistoryUsecase(market, cfg.Timeout), market, nil
}
