// Package browse implements the directory's filter, sort and paginate
// engine over an immutable record set, and the incremental pager built on
// top of it. Nothing here knows about HTTP or HTML.
package browse

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/agentstation/seedmap/pkg/constants"
)

// SortKey names an ordering of the grid.
type SortKey string

// Supported sort keys. Recent orders by funding as well; the dataset has
// no date field to order by.
const (
	SortName    SortKey = "name"
	SortFunding SortKey = "funding"
	SortRecent  SortKey = "recent"
)

// SortKeys lists the keys offered by the sort selector, in display order.
var SortKeys = []SortKey{SortName, SortFunding, SortRecent}

// Label is the selector text for a sort key.
func (k SortKey) Label() string {
	switch k {
	case SortName:
		return "Name"
	case SortFunding:
		return "Funding"
	case SortRecent:
		return "Recent"
	default:
		return string(k)
	}
}

// View is the complete browsing state of one grid: which category is
// selected, the search term, the ordering and how many pages are shown.
// Views are values; every With method returns a modified copy.
type View struct {
	Filter string  `json:"filter"`
	Search string  `json:"q,omitempty"`
	Sort   SortKey `json:"sort"`
	Page   int     `json:"page"`
}

// DefaultView shows everything, sorted by name, first page.
func DefaultView() View {
	return View{Filter: constants.FilterAll, Sort: SortName, Page: 1}
}

// ParseView reads filter, q, sort and page from query values. Missing or
// invalid values fall back to the defaults.
func ParseView(q url.Values) View {
	v := DefaultView()
	if f := strings.TrimSpace(q.Get("filter")); f != "" {
		v.Filter = f
	}
	v.Search = strings.ToLower(q.Get("q"))
	if s := q.Get("sort"); s != "" {
		v.Sort = SortKey(s)
	}
	if p, err := strconv.Atoi(q.Get("page")); err == nil && p > 1 {
		v.Page = p
	}
	return v
}

// Query encodes the view the way the grid mirrors it into the address
// bar: only values that differ from the defaults, never the page.
func (v View) Query() url.Values {
	q := url.Values{}
	if v.Filter != constants.FilterAll && v.Filter != "" {
		q.Set("filter", v.Filter)
	}
	if v.Search != "" {
		q.Set("q", v.Search)
	}
	if v.Sort != SortName && v.Sort != "" {
		q.Set("sort", string(v.Sort))
	}
	return q
}

// PageQuery is Query plus the page number, used by fragment requests.
func (v View) PageQuery() url.Values {
	q := v.Query()
	q.Set("page", strconv.Itoa(v.Page))
	return q
}

// WithFilter selects a category and goes back to the first page.
func (v View) WithFilter(filter string) View {
	if filter == "" {
		filter = constants.FilterAll
	}
	v.Filter = filter
	v.Page = 1
	return v
}

// WithSearch sets the lower-cased search term and goes back to the first page.
func (v View) WithSearch(term string) View {
	v.Search = strings.ToLower(term)
	v.Page = 1
	return v
}

// WithSort changes the ordering and goes back to the first page.
func (v View) WithSort(key SortKey) View {
	if key == "" {
		key = SortName
	}
	v.Sort = key
	v.Page = 1
	return v
}

// WithPage jumps to page p; values below one mean the first page.
func (v View) WithPage(p int) View {
	if p < 1 {
		p = 1
	}
	v.Page = p
	return v
}

// NextPage returns the view one page further.
func (v View) NextPage() View {
	return v.WithPage(v.Page + 1)
}

// IsFiltered reports whether the view narrows the record set.
func (v View) IsFiltered() bool {
	return v.Filter != constants.FilterAll || v.Search != ""
}
