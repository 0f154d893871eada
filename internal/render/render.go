// Package render turns records and view state into HTML: the grid page,
// the grid fragments fetched while scrolling, the detail page and plain
// error pages. Templates and static assets are embedded in the binary.
package render

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"io/fs"

	"github.com/agentstation/seedmap/internal/browse"
	"github.com/agentstation/seedmap/internal/theme"
	"github.com/agentstation/seedmap/pkg/constants"
	"github.com/agentstation/seedmap/pkg/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed assets/*
var assetFS embed.FS

// Assets returns the static files served under /assets/.
func Assets() fs.FS {
	sub, err := fs.Sub(assetFS, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}

// FilterButton is one entry of the category filter bar.
type FilterButton struct {
	Label  string
	Value  string
	Active bool
}

// SortOption is one entry of the sort selector.
type SortOption struct {
	Value    string
	Label    string
	Selected bool
}

// GridPage is everything the grid template needs.
type GridPage struct {
	Theme   theme.Theme
	View    browse.View
	Filters []FilterButton
	Sorts   []SortOption
	Cards   []Card
	Total   int
	NextURL string
	Error   string
}

// NewGridPage builds the grid page for a result. sectors feed the filter bar.
func NewGridPage(t theme.Theme, sectors []string, res browse.Result) GridPage {
	page := GridPage{
		Theme:   t,
		View:    res.View,
		Filters: FilterButtons(sectors, res.View.Filter),
		Sorts:   SortOptions(res.View.Sort),
		Cards:   Cards(res.Revealed()),
		Total:   res.Total,
	}
	if res.HasMore {
		page.NextURL = FragmentURL(res.Next())
	}
	return page
}

// NewGridErrorPage builds a grid page that shows only the load failure.
func NewGridErrorPage(t theme.Theme, v browse.View, err error) GridPage {
	return GridPage{
		Theme:   t,
		View:    v,
		Filters: FilterButtons(nil, v.Filter),
		Sorts:   SortOptions(v.Sort),
		Error:   "Failed to load startups: " + err.Error(),
	}
}

// Empty reports whether the page should show the no-match message.
func (p GridPage) Empty() bool {
	return p.Error == "" && len(p.Cards) == 0
}

// Fragment is the markup appended to the grid when the sentinel is reached.
type Fragment struct {
	Cards   []Card
	NextURL string
	Empty   bool
	Error   string
}

// NewFragment builds the fragment for the result's page.
func NewFragment(res browse.Result) Fragment {
	f := Fragment{Cards: Cards(res.Visible), Empty: res.Total == 0}
	if res.HasMore {
		f.NextURL = FragmentURL(res.Next())
	}
	return f
}

// NewErrorFragment reports a load failure in place of the cards.
func NewErrorFragment(err error) Fragment {
	return Fragment{Error: "Failed to load startups: " + err.Error()}
}

// FragmentURL is the URL of the grid fragment for v.
func FragmentURL(v browse.View) string {
	return "/startups?" + v.PageQuery().Encode()
}

// FilterButtons lists ALL followed by the sectors, marking active.
func FilterButtons(sectors []string, active string) []FilterButton {
	buttons := make([]FilterButton, 0, len(sectors)+1)
	buttons = append(buttons, FilterButton{Label: "ALL", Value: constants.FilterAll, Active: active == constants.FilterAll})
	for _, s := range sectors {
		buttons = append(buttons, FilterButton{Label: s, Value: s, Active: s == active})
	}
	return buttons
}

// SortOptions lists the sort keys, marking the selected one.
func SortOptions(selected browse.SortKey) []SortOption {
	opts := make([]SortOption, 0, len(browse.SortKeys))
	for _, k := range browse.SortKeys {
		opts = append(opts, SortOption{Value: string(k), Label: k.Label(), Selected: k == selected})
	}
	return opts
}

// ErrorPage is a plain error document.
type ErrorPage struct {
	Theme   theme.Theme
	Status  int
	Title   string
	Message string
}

// Renderer executes the embedded templates.
type Renderer struct {
	grid     *template.Template
	fragment *template.Template
	detail   *template.Template
	errPage  *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	base, err := template.New("base").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/partials.html")
	if err != nil {
		return nil, errors.WrapParse("template", "layout", err)
	}

	page := func(file string) (*template.Template, error) {
		clone, err := base.Clone()
		if err != nil {
			return nil, err
		}
		t, err := clone.ParseFS(templateFS, "templates/"+file)
		if err != nil {
			return nil, errors.WrapParse("template", file, err)
		}
		return t, nil
	}

	r := &Renderer{}
	if r.grid, err = page("grid.html"); err != nil {
		return nil, err
	}
	if r.detail, err = page("detail.html"); err != nil {
		return nil, err
	}
	if r.errPage, err = page("error.html"); err != nil {
		return nil, err
	}
	r.fragment = base
	return r, nil
}

// Must is New that panics, for package-level setup and tests.
func Must() *Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

// Grid writes the full grid page.
func (r *Renderer) Grid(w io.Writer, page GridPage) error {
	return execute(w, r.grid, "layout", page)
}

// Fragment writes the cards of one page plus the next sentinel.
func (r *Renderer) Fragment(w io.Writer, f Fragment) error {
	return execute(w, r.fragment, "fragment", f)
}

// Detail writes the detail page in its current state.
func (r *Renderer) Detail(w io.Writer, page DetailPage) error {
	return execute(w, r.detail, "layout", page)
}

// ErrorPage writes a plain error page.
func (r *Renderer) ErrorPage(w io.Writer, page ErrorPage) error {
	return execute(w, r.errPage, "layout", page)
}

// execute renders into a buffer first so a template failure never leaves
// a half written page behind.
func execute(w io.Writer, t *template.Template, name string, data any) error {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		return errors.WrapResource("render", "template", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

var funcs = template.FuncMap{
	"query": func(v browse.View) string { return v.Query().Encode() },
	"debounceMS": func() int {
		return int(constants.SearchDebounce.Milliseconds())
	},
	"rootMargin": func() int { return constants.SentinelRootMargin },
	"threshold":  func() float64 { return constants.SentinelThreshold },
}
