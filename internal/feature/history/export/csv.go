package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"ohlc_backend/internal/api"
)

// CSVExporter はx,o,h,l,cのヘッダー付きでCSVを書き出します。
type CSVExporter struct{}

func (CSVExporter) Extension() string { return "csv" }

func (CSVExporter) Write(w io.Writer, doc api.HistoryResponse) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "o", "h", "l", "c"}); err != nil {
		return err
	}
	for _, r := range records(doc.Data) {
		if err := cw.Write([]string{
			strconv.FormatInt(r.X, 10),
			floatStr(r.O),
			floatStr(r.H),
			floatStr(r.L),
			floatStr(r.C),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func floatStr(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
