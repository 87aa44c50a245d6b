package parsers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONParser_Parse_Array(t *testing.T) {
	input := `[{"id": "a", "name": "Kael"}, {"id": "b", "name": "Lyra"}]`

	parser := &JSONParser{}
	result, err := parser.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.JSONEq(t, `{"id": "a", "name": "Kael"}`, string(result[0].Data))
	assert.Equal(t, 1, result[0].LineNum)
	assert.Equal(t, 2, result[1].LineNum)
	assert.Empty(t, result[0].Token)
}

func TestJSONParser_Parse_SingleObject(t *testing.T) {
	input := "\n  {\"id\": \"a\", \"name\": \"Kael\"}\n"

	parser := &JSONParser{}
	result, err := parser.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.JSONEq(t, `{"id": "a", "name": "Kael"}`, string(result[0].Data))
}

func TestJSONParser_Parse_EmptyArray(t *testing.T) {
	parser := &JSONParser{}
	result, err := parser.Parse(strings.NewReader("[]"))
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestJSONParser_Parse_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", "not json"},
		{"broken object", `{"id": "a"`},
		{"scalar", `42`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := &JSONParser{}
			_, err := parser.Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "parsing JSON")
		})
	}
}

func TestLinksParser_Parse(t *testing.T) {
	input := `# party of 2024-05-01
https://ficha-nova-eden.vercel.app/#/share/eyJpZCI6ImEifQ

   eyJpZCI6ImIifQ==   
`

	parser := &LinksParser{}
	result, err := parser.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, "https://ficha-nova-eden.vercel.app/#/share/eyJpZCI6ImEifQ", result[0].Token)
	assert.Equal(t, 2, result[0].LineNum)
	assert.Equal(t, "eyJpZCI6ImIifQ==", result[1].Token)
	assert.Equal(t, 4, result[1].LineNum)
	assert.Nil(t, result[1].Data)
}

func TestLinksParser_Parse_Empty(t *testing.T) {
	parser := &LinksParser{}
	result, err := parser.Parse(strings.NewReader("\n\n# nothing\n"))
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestForFormat(t *testing.T) {
	tests := []struct {
		format   string
		expected Parser
	}{
		{"json", &JSONParser{}},
		{"JSON", &JSONParser{}},
		{"links", &LinksParser{}},
		{"csv", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			assert.Equal(t, tt.expected, ForFormat(tt.format))
		})
	}
}

func TestFormatForFile(t *testing.T) {
	tests := []struct {
		filename string
		expected string
	}{
		{"roster.json", "json"},
		{"BACKUP.JSON", "json"},
		{"party.txt", "links"},
		{"party.links", "links"},
		{"sheet.csv", ""},
		{"noext", ""},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatForFile(tt.filename))
		})
	}
}
