// Package export はhistoryコマンドが対応する形式で時系列ドキュメントを書き出します。
package export

import (
	"fmt"
	"io"
	"strings"

	"ohlc_backend/internal/api"
)

// Formats は指定可能な出力形式の一覧です。
var Formats = []string{"json", "csv", "parquet"}

// Exporter は1件の時系列ドキュメントをシリアライズします。
type Exporter interface {
	Write(w io.Writer, doc api.HistoryResponse) error
	Extension() string
}

// New は指定された形式に対応するExporterを返します。
func New(format string) (Exporter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return JSONExporter{}, nil
	case "csv":
		return CSVExporter{}, nil
	case "parquet":
		return ParquetExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format %q (use: %s)", format, strings.Join(Formats, ", "))
	}
}

// Record は表形式で出力する1行分のOHLCデータです。
type Record struct {
	X int64   `parquet:"x"`
	O float64 `parquet:"o"`
	H float64 `parquet:"h"`
	L float64 `parquet:"l"`
	C float64 `parquet:"c"`
}

func records(points []api.OHLCPoint) []Record {
	out := make([]Record, 0, len(points))
	for _, p := range points {
		out = append(out, Record{X: p.X, O: p.O, H: p.H, L: p.L, C: p.C})
	}
	return out
}
