// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"strconv"
	"strings"

	"github.com/agentstation/seedmap/pkg/startups"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// maxSummary bounds the summary column of the wide listing.
const maxSummary = 60

// StartupsToTableData converts records to table format. The wide variant
// adds the stage, website and a shortened summary.
func StartupsToTableData(records []startups.Record, wide bool) Data {
	headers := []string{"Name", "Sectors", "Funding"}
	align := []Align{AlignLeft, AlignLeft, AlignRight}
	if wide {
		headers = append(headers, "Stage", "Website", "Summary")
		align = append(align, AlignLeft, AlignLeft, AlignLeft)
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		row := []string{
			r.DisplayName(),
			strings.Join(r.Categories(), ", "),
			startups.FormatFunding(r.Funding),
		}
		if wide {
			row = append(row,
				r.Stage(),
				dash(r.WebsiteURL),
				Truncate(r.SummaryOr(startups.NoSummary), maxSummary),
			)
		}
		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}

// ProfileToTableData renders one record as a property/value table using
// the detail page's fallbacks.
func ProfileToTableData(r startups.Record, iconURL string) Data {
	rows := [][]string{
		{"Name", r.DisplayName()},
		{"Sectors", strings.Join(r.Categories(), ", ")},
		{"Stage", r.Stage()},
		{"Funding", startups.FormatFundingMillions(r.Funding)},
		{"Website", dash(r.WebsiteURL)},
		{"About", r.SummaryOr(startups.NoInformation)},
		{"Technology Stack", r.TechnicalApproachOr()},
		{"Market Overview", r.MarketOverviewOr()},
	}
	if iconURL != "" {
		rows = append(rows, []string{"Icon", iconURL})
	}
	return Data{Headers: []string{"Property", "Value"}, Rows: rows}
}

// SectorsToTableData lists sectors in order with their record counts.
func SectorsToTableData(sectors []string, counts map[string]int) Data {
	rows := make([][]string, 0, len(sectors))
	for _, s := range sectors {
		rows = append(rows, []string{s, strconv.Itoa(counts[s])})
	}
	return Data{
		Headers:         []string{"Sector", "Startups"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignRight},
	}
}

// Truncate shortens s to at most n runes, marking the cut with "...".
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
