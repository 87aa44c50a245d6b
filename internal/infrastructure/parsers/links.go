package parsers

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLinkLine bounds a single line; share tokens carry inline images.
const maxLinkLine = 16 << 20

// LinksParser reads one share link or token per line.
// Blank lines and lines starting with '#' are ignored.
type LinksParser struct{}

// Parse reads lines from the reader and returns one record per link.
func (p *LinksParser) Parse(r io.Reader) ([]RawRecord, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLinkLine)

	var records []RawRecord
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		records = append(records, RawRecord{Token: line, LineNum: lineNum})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", lineNum+1, err)
	}
	return records, nil
}
