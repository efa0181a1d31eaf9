package feed

import (
	"encoding/csv"
	"io"
	"strings"
)

// Parse converts raw CSV feed content (header row + data rows) into records
// keyed by canonical field name. Malformed or empty input yields zero
// records rather than an error; deciding what to do about an empty result
// is the caller's concern.
func Parse(content string) []Record {
	reader := csv.NewReader(strings.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil
	}

	keys := make([]string, len(header))
	for i, h := range header {
		keys[i] = CanonicalKey(h)
	}

	var records []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A broken row invalidates the whole parse: the feed export
			// either is CSV or it is not.
			return nil
		}
		if isBlankRow(row) {
			continue
		}

		record := make(Record, len(keys))
		for i, value := range row {
			if i >= len(keys) || keys[i] == "" {
				continue
			}
			record[keys[i]] = value
		}
		records = append(records, record)
	}
	return records
}

func isBlankRow(row []string) bool {
	for _, value := range row {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}
