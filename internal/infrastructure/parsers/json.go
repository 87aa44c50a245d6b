package parsers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// JSONParser reads characters from a JSON export: either one character
// object or an array of them.
type JSONParser struct{}

// Parse reads JSON from the reader and returns one record per character.
func (p *JSONParser) Parse(r io.Reader) ([]RawRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading JSON: %w", err)
	}

	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		if !json.Valid(data) {
			return nil, fmt.Errorf("parsing JSON: invalid character object")
		}
		return []RawRecord{{Data: json.RawMessage(data), LineNum: 1}}, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	// Line numbers are array positions (1-indexed)
	records := make([]RawRecord, 0, len(items))
	for i, item := range items {
		records = append(records, RawRecord{Data: item, LineNum: i + 1})
	}
	return records, nil
}
