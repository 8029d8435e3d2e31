// Package timeframe は履歴エンドポイントが受け付ける期間・間隔の定義と、
// 期間から具体的な時間範囲への変換を提供します。
package timeframe

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultPeriod は期間が未指定の場合に使用されます。
	DefaultPeriod = "5y"
	// DefaultInterval は間隔が未指定の場合に使用されます。
	DefaultInterval = "1d"
)

// Periods は指定可能な期間の一覧です。
var Periods = []string{"1d", "5d", "1mo", "3mo", "6mo", "1y", "2y", "5y", "10y", "ytd", "max"}

// Intervals は指定可能な間隔の一覧です。
var Intervals = []string{"1m", "2m", "5m", "15m", "30m", "60m", "90m", "1h", "1d", "5d", "1wk", "1mo", "3mo"}

// ValidPeriod はpが有効な期間かどうかを返します。
func ValidPeriod(p string) bool {
	return slices.Contains(Periods, p)
}

// ValidInterval はiが有効な間隔かどうかを返します。
func ValidInterval(i string) bool {
	return slices.Contains(Intervals, i)
}

// Window は期間をnowを終端とする[start, end]の範囲に変換します。
// 返す時刻はすべてUTCです。
func Window(period string, now time.Time) (time.Time, time.Time, error) {
	end := now.UTC()
	switch period {
	case "ytd":
		return time.Date(end.Year(), time.January, 1, 0, 0, 0, 0, time.UTC), end, nil
	case "max":
		return time.Unix(0, 0).UTC(), end, nil
	}
	if !ValidPeriod(period) {
		return time.Time{}, time.Time{}, fmt.Errorf("unknown period %q", period)
	}

	var unit string
	for _, suffix := range []string{"mo", "d", "y"} {
		if strings.HasSuffix(period, suffix) {
			unit = suffix
			break
		}
	}
	n, err := strconv.Atoi(strings.TrimSuffix(period, unit))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse period %q: %w", period, err)
	}

	switch unit {
	case "d":
		return end.AddDate(0, 0, -n), end, nil
	case "mo":
		return end.AddDate(0, -n, 0), end, nil
	default:
		return end.AddDate(-n, 0, 0), end, nil
	}
}
