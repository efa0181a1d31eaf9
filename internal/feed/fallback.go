package feed

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"
)

// The static dataset the dashboard falls back to when the live spreadsheet
// is unreachable or unparseable. Kept in the raw feed shape on purpose so
// fallback rows travel through the exact same normalization path.
//
//go:embed fallback_data.json
var fallbackJSON []byte

// FallbackRecords decodes the embedded dataset into feed records. JSON
// scalars are flattened to strings; the normalizer owns all typing.
func FallbackRecords() ([]Record, error) {
	var rows []map[string]any
	if err := json.Unmarshal(fallbackJSON, &rows); err != nil {
		return nil, fmt.Errorf("decoding fallback dataset: %w", err)
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		record := make(Record, len(row))
		for key, value := range row {
			record.Set(key, stringify(value))
		}
		records = append(records, record)
	}
	return records, nil
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
