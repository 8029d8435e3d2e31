// Package router assembles the gin engine.
package router

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	historyhandler "ohlc_backend/internal/feature/history/transport/handler"
	symbollisthandler "ohlc_backend/internal/feature/symbollist/transport/handler"
	platformhandler "ohlc_backend/internal/platform/http/handler"
	"ohlc_backend/internal/platform/http/middleware"
)

// Handlers groups the HTTP handlers mounted by NewRouter.
// Symbols is nil when the catalogue database is unavailable.
type Handlers struct {
	Health  *platformhandler.HealthHandler
	History *historyhandler.HistoryHandler
	Symbols *symbollisthandler.SymbolHandler
}

// NewRouter builds the engine with recovery, request logging and
// cross-origin access from any origin.
func NewRouter(logger *slog.Logger, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(cors.Default())

	// 導通確認用
	r.GET("/healthz", h.Health.Health)
	r.HEAD("/healthz", h.Health.Health)
	r.OPTIONS("/healthz", h.Health.Health)

	api := r.Group("/api")
	{
		api.GET("/history", h.History.GetHistory)
		if h.Symbols != nil {
			api.GET("/symbols", h.Symbols.List)
		}
	}

	return r
}
