// Package usecase implements the business logic for symbol-related operations.
package usecase

import (
	"context"
	"fmt"
	"strings"

	"ohlc_backend/internal/feature/symbollist/domain/entity"
)

// SymbolRepository abstracts the persistence layer for the symbol catalogue.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SymbolRepository interface {
	ListActive(ctx context.Context, sector string) ([]entity.Symbol, error)
	Upsert(ctx context.Context, symbols []entity.Symbol) error
}

// SymbolUsecase provides business logic for symbol operations.
type SymbolUsecase struct {
	repo SymbolRepository
}

// NewSymbolUsecase creates a new SymbolUsecase with the given repository.
func NewSymbolUsecase(r SymbolRepository) *SymbolUsecase {
	return &SymbolUsecase{repo: r}
}

// ListActiveSymbols returns active symbols, optionally restricted to one sector.
func (u *SymbolUsecase) ListActiveSymbols(ctx context.Context, sector string) ([]entity.Symbol, error) {
	return u.repo.ListActive(ctx, strings.ToLower(strings.TrimSpace(sector)))
}

// EnsureCatalog writes the catalogue to the repository. Entries are
// normalised first: sectors are lower-cased, Market defaults to NSE, Ticker
// defaults to CODE.NS and SortKey follows slice order.
func (u *SymbolUsecase) EnsureCatalog(ctx context.Context, symbols []entity.Symbol) error {
	out := make([]entity.Symbol, 0, len(symbols))
	seen := make(map[string]struct{}, len(symbols))
	for i, s := range symbols {
		s.Code = strings.ToUpper(strings.TrimSpace(s.Code))
		if s.Code == "" {
			return fmt.Errorf("catalog entry %d: empty code", i)
		}
		if _, dup := seen[s.Code]; dup {
			return fmt.Errorf("catalog entry %d: duplicate code %q", i, s.Code)
		}
		seen[s.Code] = struct{}{}

		s.Sector = strings.ToLower(strings.TrimSpace(s.Sector))
		if s.Market == "" {
			s.Market = "NSE"
		}
		if s.Ticker == "" {
			s.Ticker = s.Code + ".NS"
		}
		s.IsActive = true
		s.SortKey = i + 1
		out = append(out, s)
	}
	if err := u.repo.Upsert(ctx, out); err != nil {
		return fmt.Errorf("upsert catalog: %w", err)
	}
	return nil
}
