// Package entity はhistoryフィーチャーのドメインモデルを定義します。
package entity

import "time"

// Bar はプロバイダーから取得した1本分の四本値と出来高を表します。
type Bar struct {
	Time   time.Time // 足の開始時刻
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64 // APIレスポンスには含めない
}

// EpochMillis は足の時刻をUnixエポックからのミリ秒で返します。
func (b Bar) EpochMillis() int64 {
	return b.Time.UnixMilli()
}
