// Package domain はhistoryフィーチャーのドメインエラーを定義します。
package domain

import "errors"

var (
	// ErrSymbolRequired は銘柄コードが指定されていない場合に返されます。
	ErrSymbolRequired = errors.New("symbol is required")

	// ErrInvalidPeriod は期間がtimeframe.Periodsに含まれない場合に返されます。
	ErrInvalidPeriod = errors.New("invalid period")

	// ErrInvalidInterval は間隔がtimeframe.Intervalsに含まれない場合に返されます。
	ErrInvalidInterval = errors.New("invalid interval")

	// ErrUnsupportedInterval は有効な間隔をプロバイダーが扱えない場合に返されます。
	// ErrInvalidIntervalと同様に扱います。
	ErrUnsupportedInterval = errors.New("interval not supported by provider")

	// ErrNoData はプロバイダーに該当銘柄のデータがない場合に返されます。
	// 銘柄が存在しない場合も含みます。
	ErrNoData = errors.New("no data found for symbol")
)
