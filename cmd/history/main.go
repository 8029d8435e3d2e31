// Command history fetches OHLC history for one symbol and writes it as JSON,
// CSV or Parquet.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"ohlc_backend/internal/api"
	"ohlc_backend/internal/app/di"
	"ohlc_backend/internal/feature/history/domain/timeframe"
	"ohlc_backend/internal/feature/history/export"
	historyhandler "ohlc_backend/internal/feature/history/transport/handler"
	"ohlc_backend/internal/platform/config"
	"ohlc_backend/internal/platform/logger"
)

func newCommand(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "Fetch historical OHLC data for a symbol",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "symbol",
				Aliases:  []string{"s"},
				Usage:    "Ticker symbol, e.g. TCS.NS",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "period",
				Aliases: []string{"p"},
				Usage:   fmt.Sprintf("Lookback period (%s)", strings.Join(timeframe.Periods, ", ")),
				Value:   timeframe.DefaultPeriod,
			},
			&cli.StringFlag{
				Name:    "interval",
				Aliases: []string{"i"},
				Usage:   fmt.Sprintf("Bar interval (%s)", strings.Join(timeframe.Intervals, ", ")),
				Value:   timeframe.DefaultInterval,
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   fmt.Sprintf("Output format (%s)", strings.Join(export.Formats, ", ")),
				Value:   "json",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Output `FILE`; stdout when empty",
			},
			&cli.StringFlag{
				Name:    "provider",
				Usage:   "Override the configured provider (yahoo, financego, twelvedata, polygon)",
				Sources: cli.EnvVars("HISTORY_PROVIDER"),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the YAML config `FILE`",
				Value:   config.DefaultPath,
				Sources: cli.EnvVars("CONFIG_PATH"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return historyAction(ctx, cmd, stdout)
		},
	}
}

// historyAction resolves the exporter first so a bad format never triggers a fetch.
func historyAction(ctx context.Context, cmd *cli.Command, stdout io.Writer) error {
	exporter, err := export.New(cmd.String("format"))
	if err != nil {
		return err
	}

	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}
	if p := cmd.String("provider"); p != "" {
		cfg.Provider.Name = p
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	slog.SetDefault(logger.NewWithWriter(os.Stderr, cfg.Log.Level, cfg.Log.Format))

	uc, market, err := di.NewHistoryUsecase(cfg.Provider)
	if err != nil {
		return err
	}

	symbol := cmd.String("symbol")
	bars, err := uc.GetHistory(ctx, symbol, cmd.String("period"), cmd.String("interval"))
	if err != nil {
		return fmt.Errorf("%s: %w", market.Name(), err)
	}

	doc := historyhandler.NewHistoryResponse(strings.TrimSpace(symbol), bars)
	if path := cmd.String("out"); path != "" {
		if err := writeFile(path, exporter, doc); err != nil {
			return err
		}
	} else if err := exporter.Write(stdout, doc); err != nil {
		return fmt.Errorf("write %s: %w", exporter.Extension(), err)
	}
	slog.Info("history exported", "symbol", doc.Symbol, "rows", len(doc.Data), "format", exporter.Extension(), "provider", market.Name())
	return nil
}

// writeFile writes doc to path and reports a failed close, since buffered
// data is only flushed on Close.
func writeFile(path string, exporter export.Exporter, doc api.HistoryResponse) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := exporter.Write(f, doc); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", exporter.Extension(), err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func main() {
	config.LoadDotEnv()

	if err := newCommand(os.Stdout).Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
