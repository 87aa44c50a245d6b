// Package parsers provides parsers for importing characters from files.
package parsers

import (
	"encoding/json"
	"io"
	"path/filepath"
	"strings"
)

// RawRecord is one character read from an import file before validation.
// Exactly one of Data and Token is set.
type RawRecord struct {
	Data    json.RawMessage // JSON object, from a JSON export
	Token   string          // share link or bare token, from a links file
	LineNum int             // 1-indexed position in the source file
}

// Parser defines the interface for reading raw records from a file format.
type Parser interface {
	Parse(r io.Reader) ([]RawRecord, error)
}

// ForFormat returns the appropriate parser for the given format.
// Supported formats: "json", "links".
func ForFormat(format string) Parser {
	switch strings.ToLower(format) {
	case "json":
		return &JSONParser{}
	case "links":
		return &LinksParser{}
	default:
		return nil
	}
}

// FormatForFile names the format implied by a file extension, or "" when
// the extension is not recognized.
func FormatForFile(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return "json"
	case ".txt", ".links":
		return "links"
	default:
		return ""
	}
}
