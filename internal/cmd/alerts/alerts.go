// Package alerts collects and prints the findings of a dataset check.
// Every alert names the record it is about by position and company, so a
// report can be read next to the dataset file.
package alerts

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agentstation/seedmap/internal/cmd/table"
	"github.com/agentstation/seedmap/pkg/startups"
)

// Alert is one finding. Record is the 1-based position in the dataset;
// zero means the alert is about the dataset as a whole.
type Alert struct {
	Level   Level
	Record  int
	Company string
	Field   string
	Message string
	Details []string
	Err     error
}

// ForRecord creates an alert about the record at index (0-based) in the
// dataset. field names the offending JSON field, if there is one.
func ForRecord(level Level, index int, r startups.Record, field, message string) *Alert {
	return &Alert{
		Level:   level,
		Record:  index + 1,
		Company: r.DisplayName(),
		Field:   field,
		Message: message,
	}
}

// ForDataset creates an alert about the whole dataset.
func ForDataset(level Level, message string) *Alert {
	return &Alert{Level: level, Message: message}
}

// WithError attaches the error that caused the alert.
func (a *Alert) WithError(err error) *Alert {
	a.Err = err
	return a
}

// WithDetails appends context lines.
func (a *Alert) WithDetails(details ...string) *Alert {
	a.Details = append(a.Details, details...)
	return a
}

// Subject names what the alert is about: "record 3 (Acme AI)" or "dataset".
func (a *Alert) Subject() string {
	if a.Record == 0 {
		return "dataset"
	}
	return fmt.Sprintf("record %d (%s)", a.Record, a.Company)
}

// String renders the alert as a single line.
func (a *Alert) String() string {
	var b strings.Builder
	b.WriteString(a.Level.Icon())
	b.WriteString(" ")
	b.WriteString(a.Subject())
	if a.Message != "" {
		b.WriteString(": ")
		b.WriteString(a.Message)
	}
	if a.Err != nil {
		b.WriteString(": ")
		b.WriteString(a.Err.Error())
	}
	return b.String()
}

// Report collects the alerts of one check in dataset order.
type Report struct {
	Records int
	Alerts  []*Alert
}

// Add appends an alert and returns it for chaining.
func (r *Report) Add(a *Alert) *Alert {
	r.Alerts = append(r.Alerts, a)
	return a
}

// Count returns the number of alerts at level.
func (r *Report) Count(level Level) int {
	n := 0
	for _, a := range r.Alerts {
		if a.Level == level {
			n++
		}
	}
	return n
}

// Failed reports whether any alert is an error.
func (r *Report) Failed() bool {
	return r.Count(LevelError) > 0
}

// Invalid returns the number of distinct records with an error.
func (r *Report) Invalid() int {
	seen := make(map[int]bool)
	for _, a := range r.Alerts {
		if a.Level == LevelError && a.Record > 0 {
			seen[a.Record] = true
		}
	}
	return len(seen)
}

// TableData lays the report out one row per alert. The wide layout adds
// the details and the underlying error.
func (r *Report) TableData(wide bool) table.Data {
	headers := []string{"Level", "Record", "Company", "Field", "Problem"}
	align := []table.Align{table.AlignLeft, table.AlignRight, table.AlignLeft, table.AlignLeft, table.AlignLeft}
	if wide {
		headers = append(headers, "Details")
		align = append(align, table.AlignLeft)
	}

	rows := make([][]string, 0, len(r.Alerts))
	for _, a := range r.Alerts {
		record := "-"
		if a.Record > 0 {
			record = strconv.Itoa(a.Record)
		}
		row := []string{a.Level.Icon() + " " + a.Level.String(), record, a.Company, a.Field, a.Message}
		if wide {
			details := a.Details
			if a.Err != nil {
				details = append([]string{a.Err.Error()}, details...)
			}
			row = append(row, strings.Join(details, "; "))
		}
		rows = append(rows, row)
	}

	return table.Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}
