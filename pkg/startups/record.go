// Package startups defines the startup profile record and the pure helpers
// shared by the grid, the detail page and the CLI.
package startups

import (
	"net/url"
	"slices"
	"strings"

	"github.com/agentstation/seedmap/pkg/errors"
)

// Placeholder text shown when optional fields are absent.
const (
	UnknownCompany       = "Unknown Company"
	NoSummary            = "No summary available."
	NoInformation        = "No information available."
	NoTechnicalDetails   = "No technical details available."
	NoMarketDetails      = "No market details available."
	NotAvailable         = "N/A"
	MissingRequiredField = "missing required fields"
)

// Record is one startup profile as stored in the dataset.
type Record struct {
	CompanyName       string  `json:"companyName" yaml:"companyName"`                                 // Display name and lookup key
	Category          string  `json:"category" yaml:"category"`                                       // Comma separated sector tags
	Summary           string  `json:"summary,omitempty" yaml:"summary,omitempty"`                     // Short pitch shown on the card
	TechnicalApproach string  `json:"technicalApproach,omitempty" yaml:"technicalApproach,omitempty"` // Technology stack section
	MarketOverview    string  `json:"marketOverview,omitempty" yaml:"marketOverview,omitempty"`       // Market section
	WebsiteURL        string  `json:"websiteUrl,omitempty" yaml:"websiteUrl,omitempty"`               // Absolute URL, optional
	Funding           float64 `json:"funding,omitempty" yaml:"funding,omitempty"`                     // USD, zero when undisclosed
	InvestmentStage   string  `json:"investmentStage,omitempty" yaml:"investmentStage,omitempty"`     // Free text stage label
}

// Categories returns the parsed sector tags in dataset order. Segments are
// trimmed and empty ones dropped.
func (r Record) Categories() []string {
	return ParseCategories(r.Category)
}

// ParseCategories splits a comma separated tag list.
func ParseCategories(category string) []string {
	var tags []string
	for _, part := range strings.Split(category, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// HasCategory reports whether tag is one of the record's parsed tags.
// Matching is exact.
func (r Record) HasCategory(tag string) bool {
	return slices.Contains(r.Categories(), tag)
}

// DisplayName returns the company name or the unknown placeholder.
func (r Record) DisplayName() string {
	if r.CompanyName == "" {
		return UnknownCompany
	}
	return r.CompanyName
}

// SummaryOr returns the summary or fallback when it is empty.
func (r Record) SummaryOr(fallback string) string {
	return or(r.Summary, fallback)
}

// TechnicalApproachOr returns the technical approach or the placeholder.
func (r Record) TechnicalApproachOr() string {
	return or(r.TechnicalApproach, NoTechnicalDetails)
}

// MarketOverviewOr returns the market overview or the placeholder.
func (r Record) MarketOverviewOr() string {
	return or(r.MarketOverview, NoMarketDetails)
}

// Stage returns the investment stage or "N/A".
func (r Record) Stage() string {
	return or(r.InvestmentStage, NotAvailable)
}

// Hostname returns the host of the website URL. It reports false when the
// record has no website or the URL is not absolute.
func (r Record) Hostname() (string, bool) {
	return Hostname(r.WebsiteURL)
}

// Hostname extracts the host part of an absolute URL.
func Hostname(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Scheme == "" || u.Hostname() == "" {
		return "", false
	}
	return strings.ToLower(u.Hostname()), true
}

// Validate performs the presence check the detail page relies on: a record
// needs both a company name and a category.
func (r Record) Validate() error {
	if r.CompanyName == "" || r.Category == "" {
		return &errors.ValidationError{Message: MissingRequiredField}
	}
	return nil
}

// Find returns the first record whose company name equals id exactly or
// ignoring case. Names are not guaranteed unique; earlier records win.
func Find(records []Record, id string) (Record, error) {
	lower := strings.ToLower(id)
	for _, r := range records {
		if r.CompanyName == id || strings.ToLower(r.CompanyName) == lower {
			return r, nil
		}
	}
	return Record{}, errors.NewNotFoundError("Startup", id)
}

// Sectors returns every distinct tag in the dataset, sorted.
func Sectors(records []Record) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range records {
		for _, tag := range r.Categories() {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
		}
	}
	slices.Sort(out)
	return out
}

// SectorCounts returns how many records carry each tag.
func SectorCounts(records []Record) map[string]int {
	counts := make(map[string]int)
	for _, r := range records {
		for _, tag := range r.Categories() {
			counts[tag]++
		}
	}
	return counts
}

func or(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
