package export

import (
	"encoding/json"
	"io"

	"ohlc_backend/internal/api"
)

// JSONExporter はHTTP APIと同じドキュメントをインデント付きで書き出します。
type JSONExporter struct{}

func (JSONExporter) Extension() string { return "json" }

func (JSONExporter) Write(w io.Writer, doc api.HistoryResponse) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
