package output

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/seedmap/internal/cmd/table"
	"github.com/agentstation/seedmap/pkg/startups"
)

var sample = []startups.Record{
	{CompanyName: "Acme AI", Category: "AI, Robotics", Funding: 2_000_000},
	{CompanyName: "Beta Labs", Category: "AI", Funding: 500_000},
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"wide", FormatWide, false},
		{"markdown", FormatMarkdown, false},
		{"", "", false},
		{"csv", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormatExplicit(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("YAML"))
}

func TestFormatStartups(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, FormatStartups(&buf, FormatTable, sample))
		out := buf.String()
		assert.Contains(t, strings.ToUpper(out), "NAME")
		assert.Contains(t, out, "Acme AI")
		assert.Contains(t, out, "$2.0M")
		assert.NotContains(t, strings.ToUpper(out), "SUMMARY")
	})

	t.Run("wide", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, FormatStartups(&buf, FormatWide, sample))
		assert.Contains(t, strings.ToUpper(buf.String()), "SUMMARY")
	})

	t.Run("json keeps dataset keys", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, FormatStartups(&buf, FormatJSON, sample))

		var decoded []map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		require.Len(t, decoded, 2)
		assert.Equal(t, "Acme AI", decoded[0]["companyName"])
	})

	t.Run("json empty is an array", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, FormatStartups(&buf, FormatJSON, nil))
		assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, FormatStartups(&buf, FormatYAML, sample))
		assert.Contains(t, buf.String(), "companyName: Acme AI")
	})

	t.Run("markdown", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, FormatStartups(&buf, FormatMarkdown, sample))
		out := buf.String()
		assert.Contains(t, strings.ToUpper(out), "NAME")
		assert.Contains(t, out, "Acme AI")
		assert.Contains(t, out, "|")
	})
}

func TestTableFormatterFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&TableFormatter{}).Format(&buf, map[string]int{"count": 2}))
	assert.JSONEq(t, `{"count":2}`, buf.String())
}

func TestTableFormatterStruct(t *testing.T) {
	type info struct {
		BuiltBy string `json:"built_by"`
		Version string
	}

	var buf bytes.Buffer
	require.NoError(t, (&TableFormatter{}).Format(&buf, info{BuiltBy: "ci", Version: "1.0.0"}))
	out := buf.String()
	assert.Contains(t, strings.ToUpper(out), "BUILT BY")
	assert.Contains(t, out, "1.0.0")
}

func TestMarkdownFormatterFallsBackToCodeBlock(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&MarkdownFormatter{}).Format(&buf, map[string]int{"count": 2}))
	assert.Contains(t, buf.String(), "```json")
}

func TestFormatterFunc(t *testing.T) {
	var got any
	f := FormatterFunc(func(_ io.Writer, data any) error {
		got = data
		return nil
	})
	require.NoError(t, f.Format(&bytes.Buffer{}, table.Data{}))
	assert.Equal(t, table.Data{}, got)
}
