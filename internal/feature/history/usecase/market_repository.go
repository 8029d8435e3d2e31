package usecase

//go:generate mockgen -package=usecase_test -destination=mock_market_repository_test.go -source=market_repository.go MarketRepository

import (
	"context"

	"ohlc_backend/internal/feature/history/domain/entity"
)

// MarketRepository は外部の市場データプロバイダーから過去の価格データを取得します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type MarketRepository interface {
	// GetHistory は指定期間・間隔の価格データを古い順に返します。
	// 存在しない銘柄の場合はdomain.ErrNoDataまたは空のスライスを返します。
	GetHistory(ctx context.Context, symbol, period, interval string) ([]entity.Bar, error)
}
