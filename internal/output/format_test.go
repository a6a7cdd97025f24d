package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  OutputFormat
		ok    bool
	}{
		{input: "table", want: FormatTable, ok: true},
		{input: "", want: FormatTable, ok: true},
		{input: "yaml", want: FormatYAML, ok: true},
		{input: "yml", want: FormatYAML, ok: true},
		{input: "JSON", want: FormatJSON, ok: true},
		{input: "xml", want: FormatTable, ok: false},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			got, ok := ParseFormat(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestValidFormats_AllParse(t *testing.T) {
	for _, name := range ValidFormats() {
		f, ok := ParseFormat(name)
		assert.True(t, ok)
		assert.Equal(t, name, f.String())
	}
}

func TestOutputFormat_IsValid(t *testing.T) {
	assert.True(t, FormatTable.IsValid())
	assert.True(t, FormatYAML.IsValid())
	assert.True(t, FormatJSON.IsValid())
	assert.False(t, OutputFormat("csv").IsValid())
}
