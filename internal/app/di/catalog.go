package di

import (
	"context"
	"database/sql"
	"fmt"

	"ohlc_backend/internal/feature/symbollist/adapters"
	"ohlc_backend/internal/feature/symbollist/domain/entity"
	"ohlc_backend/internal/feature/symbollist/transport/handler"
	"ohlc_backend/internal/feature/symbollist/usecase"
	"ohlc_backend/internal/platform/config"
	"ohlc_backend/internal/platform/db"
)

// Catalog is the wired symbol catalogue.
type Catalog struct {
	Handler *handler.SymbolHandler
	DB      *sql.DB
}

// NewCatalog opens the catalogue database, migrates it and seeds the
// configured catalogue, falling back to usecase.DefaultCatalog.
func NewCatalog(ctx context.Context, cfg *config.Config) (*Catalog, error) {
	gdb, err := db.Open(db.ConfigFrom(cfg.Database), &entity.Symbol{})
	if err != nil {
		return nil, fmt.Errorf("open catalog db: %w", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("catalog sql db: %w", err)
	}

	uc := usecase.NewSymbolUsecase(adapters.NewSymbolRepository(gdb))
	if err := uc.EnsureCatalog(ctx, CatalogSymbols(cfg.Catalog)); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return &Catalog{Handler: handler.NewSymbolHandler(uc), DB: sqlDB}, nil
}

// CatalogSymbols converts configured entries, or returns the default list
// when none are configured.
func CatalogSymbols(entries []config.CatalogEntry) []entity.Symbol {
	if len(entries) == 0 {
		return usecase.DefaultCatalog()
	}
	out := make([]entity.Symbol, 0, len(entries))
	for _, e := range entries {
		out = append(out, entity.Symbol{
			Code:   e.Code,
			Name:   e.Name,
			Sector: e.Sector,
			Market: e.Market,
			Ticker: e.Ticker,
		})
	}
	return out
}
