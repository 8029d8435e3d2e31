package export

import (
	"io"

	"github.com/parquet-go/parquet-go"

	"ohlc_backend/internal/api"
)

// ParquetExporter はx,o,h,l,cの列をParquet形式で書き出します。銘柄コードは保存しません。
type ParquetExporter struct{}

func (ParquetExporter) Extension() string { return "parquet" }

func (ParquetExporter) Write(w io.Writer, doc api.HistoryResponse) error {
	return parquet.Write(w, records(doc.Data))
}
