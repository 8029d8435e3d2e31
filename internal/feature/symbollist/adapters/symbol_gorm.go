// Package adapters はsymbollistフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ohlc_backend/internal/feature/symbollist/domain/entity"
	"ohlc_backend/internal/feature/symbollist/usecase"
)

// symbolGorm はSymbolRepositoryインターフェースのGORM実装です。SQLiteとPostgreSQLの両方で動作します。
type symbolGorm struct {
	db *gorm.DB
}

var _ usecase.SymbolRepository = (*symbolGorm)(nil)

// NewSymbolRepository は指定されたDB接続でsymbolGormリポジトリの新しいインスタンスを生成します。
func NewSymbolRepository(db *gorm.DB) *symbolGorm {
	return &symbolGorm{db: db}
}

// ListActive はsort_key順にアクティブな銘柄を返します。sectorが空でなければそのセクターに絞り込みます。
func (r *symbolGorm) ListActive(ctx context.Context, sector string) ([]entity.Symbol, error) {
	q := r.db.WithContext(ctx).Where("is_active = ?", true)
	if sector != "" {
		q = q.Where("sector = ?", sector)
	}
	var symbols []entity.Symbol
	if err := q.Order("sort_key ASC").Order("code ASC").Find(&symbols).Error; err != nil {
		return nil, err
	}
	return symbols, nil
}

// Upsert はcodeをキーに銘柄を挿入し、既存の行は表示項目を上書きします。
func (r *symbolGorm) Upsert(ctx context.Context, symbols []entity.Symbol) error {
	if len(symbols) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "sector", "market", "ticker", "is_active", "sort_key", "updated_at"}),
		}).
		Create(&symbols).Error
}
