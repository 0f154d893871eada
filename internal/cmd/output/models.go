// Package output provides common output formatting utilities for CLI commands.
package output

import (
	"io"

	"github.com/agentstation/seedmap/internal/cmd/table"
	"github.com/agentstation/seedmap/pkg/startups"
)

// Write formats data for the given format: tabular formats get the table
// built by tabular, the others get raw.
func Write(w io.Writer, format Format, raw any, tabular func(wide bool) table.Data) error {
	formatter := NewFormatter(format)
	if format.Tabular() {
		return formatter.Format(w, tabular(format == FormatWide))
	}
	return formatter.Format(w, raw)
}

// FormatStartups handles the common pattern of formatting records for output.
func FormatStartups(w io.Writer, format Format, records []startups.Record) error {
	if records == nil {
		records = []startups.Record{}
	}
	return Write(w, format, records, func(wide bool) table.Data {
		return table.StartupsToTableData(records, wide)
	})
}

// FormatAny handles the common pattern of formatting any data type for output.
// This is useful for commands with custom data structures.
func FormatAny(w io.Writer, format Format, data any) error {
	return NewFormatter(format).Format(w, data)
}
