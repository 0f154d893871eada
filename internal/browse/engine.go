package browse

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/agentstation/seedmap/pkg/constants"
	"github.com/agentstation/seedmap/pkg/startups"
)

// PageSize is the number of records revealed per page.
const PageSize = constants.PageSize

// Matches reports whether r passes the category filter and the search
// term. The term matches a case-insensitive substring of the name or the
// summary. Filter "all" and an empty term each pass everything.
func Matches(r startups.Record, filterTag, searchTerm string) bool {
	if searchTerm != "" {
		term := strings.ToLower(searchTerm)
		if !strings.Contains(strings.ToLower(r.CompanyName), term) &&
			!strings.Contains(strings.ToLower(r.Summary), term) {
			return false
		}
	}
	if filterTag != constants.FilterAll {
		return r.HasCategory(filterTag)
	}
	return true
}

// Compare orders two records for key using English collation for names.
// Unknown keys compare equal, which leaves a stable sort untouched.
func Compare(a, b startups.Record, key SortKey) int {
	return compareWith(collate.New(language.English), a, b, key)
}

func compareWith(c *collate.Collator, a, b startups.Record, key SortKey) int {
	switch key {
	case SortName:
		return c.CompareString(a.CompanyName, b.CompanyName)
	case SortFunding, SortRecent:
		return cmp.Compare(b.Funding, a.Funding)
	default:
		return 0
	}
}

// Sorter applies views with locale-aware name ordering.
type Sorter struct {
	tag language.Tag
}

// NewSorter creates a sorter for a BCP 47 locale. Unparsable locales fall
// back to English.
func NewSorter(locale string) *Sorter {
	tag, err := language.Parse(locale)
	if err != nil || locale == "" {
		tag = language.English
	}
	return &Sorter{tag: tag}
}

// Locale returns the collation locale.
func (s *Sorter) Locale() string {
	return s.tag.String()
}

// Sort returns a stably sorted copy of records. A collator is not safe for
// concurrent use, so each call gets its own.
func (s *Sorter) Sort(records []startups.Record, key SortKey) []startups.Record {
	out := slices.Clone(records)
	c := collate.New(s.tag)
	slices.SortStableFunc(out, func(a, b startups.Record) int {
		return compareWith(c, a, b, key)
	})
	return out
}

// Filter returns the records matching the view's filter and search term,
// in their original order.
func Filter(records []startups.Record, v View) []startups.Record {
	var out []startups.Record
	for _, r := range records {
		if Matches(r, v.Filter, v.Search) {
			out = append(out, r)
		}
	}
	return out
}

// Result is the outcome of applying a view to the record set.
type Result struct {
	View     View              `json:"view"`
	Matched  []startups.Record `json:"-"`
	Visible  []startups.Record `json:"startups"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
	HasMore  bool              `json:"has_more"`
}

// Revealed returns every record shown up to and including the result's page.
func (r Result) Revealed() []startups.Record {
	_, end := Window(r.Total, r.Page)
	return r.Matched[:end]
}

// Next returns the view for the following page.
func (r Result) Next() View {
	return r.View.NextPage()
}

// Apply filters, sorts and slices records for v. Visible holds only the
// records of page v.Page.
func (s *Sorter) Apply(records []startups.Record, v View) Result {
	if v.Page < 1 {
		v.Page = 1
	}
	matched := s.Sort(Filter(records, v), v.Sort)
	start, end := Window(len(matched), v.Page)
	return Result{
		View:     v,
		Matched:  matched,
		Visible:  matched[start:end],
		Total:    len(matched),
		Page:     v.Page,
		PageSize: PageSize,
		HasMore:  end < len(matched),
	}
}

// Window returns the half-open index range of page p over n records,
// clamped to [0, n].
func Window(n, page int) (start, end int) {
	if page < 1 {
		page = 1
	}
	if page-1 > n/PageSize {
		return n, n
	}
	start = min((page-1)*PageSize, n)
	end = min(page*PageSize, n)
	return start, end
}

// PageCount is the number of pages needed to show n records.
func PageCount(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + PageSize - 1) / PageSize
}
