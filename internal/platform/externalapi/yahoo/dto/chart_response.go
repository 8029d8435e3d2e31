// Package dto defines data transfer objects for the Yahoo Finance chart API.
package dto

// ChartResponse is the body of GET /v8/finance/chart/{symbol}.
type ChartResponse struct {
	Chart struct {
		Result []ChartResult `json:"result"`
		Error  *ChartError   `json:"error"`
	} `json:"chart"`
}

// ChartError is set when the chart request fails, e.g. Code "Not Found".
type ChartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// ChartResult holds parallel timestamp and quote arrays for one symbol.
type ChartResult struct {
	Meta struct {
		Symbol          string `json:"symbol"`
		Currency        string `json:"currency"`
		ExchangeName    string `json:"exchangeName"`
		DataGranularity string `json:"dataGranularity"`
	} `json:"meta"`
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []Quote `json:"quote"`
	} `json:"indicators"`
}

// Quote columns are nullable; Yahoo emits null for bars without trades.
type Quote struct {
	Open   []*float64 `json:"open"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Close  []*float64 `json:"close"`
	Volume []*int64   `json:"volume"`
}
