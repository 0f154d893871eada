package render

import (
	"encoding/base64"
	"html/template"
	"strings"

	"github.com/agentstation/seedmap/internal/favicon"
	"github.com/agentstation/seedmap/internal/theme"
	"github.com/agentstation/seedmap/pkg/startups"
)

// DetailState is the phase of the detail page. A page starts Loading and
// moves once, to either Error or Content.
type DetailState int

// Detail page states.
const (
	DetailLoading DetailState = iota
	DetailError
	DetailContent
)

func (s DetailState) String() string {
	switch s {
	case DetailLoading:
		return "loading"
	case DetailError:
		return "error"
	case DetailContent:
		return "content"
	default:
		return "unknown"
	}
}

// Profile is the view model of a full startup profile.
type Profile struct {
	Name      string
	Initials  string
	Gradient  template.CSS
	Icon      template.URL
	Tags      []string
	Stage     string
	Funding   string
	Website   string
	About     string
	Technical string
	Market    string
}

// NewProfile builds the profile of r. icon may be nil when no icon was
// found.
func NewProfile(r startups.Record, icon *favicon.Icon) Profile {
	p := Profile{
		Name:      r.CompanyName,
		Initials:  startups.Initials(r.CompanyName),
		Gradient:  Gradient(startups.Color(r.CompanyName)),
		Tags:      r.Categories(),
		Stage:     r.Stage(),
		Funding:   startups.FormatFundingMillions(r.Funding),
		Website:   r.WebsiteURL,
		About:     r.SummaryOr(startups.NoInformation),
		Technical: r.TechnicalApproachOr(),
		Market:    r.MarketOverviewOr(),
	}
	if icon != nil {
		p.Icon = DataURL(*icon)
	}
	return p
}

// DataURL inlines an icon so the page does not need a second lookup.
func DataURL(icon favicon.Icon) template.URL {
	ct := icon.ContentType
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	if !strings.HasPrefix(ct, "image/") || len(icon.Data) == 0 {
		return ""
	}
	return template.URL("data:" + ct + ";base64," + base64.StdEncoding.EncodeToString(icon.Data))
}

// DetailPage is everything the detail template needs.
type DetailPage struct {
	Theme   theme.Theme
	ID      string
	State   DetailState
	Error   string
	Profile Profile
}

// NewDetailPage starts a detail page in the loading state.
func NewDetailPage(t theme.Theme, id string) DetailPage {
	return DetailPage{Theme: t, ID: id, State: DetailLoading}
}

// Fail moves a loading page to the error state. Pages that already left
// the loading state are returned unchanged.
func (p DetailPage) Fail(message string) DetailPage {
	if p.State != DetailLoading {
		return p
	}
	p.State = DetailError
	p.Error = message
	return p
}

// Show moves a loading page to the content state.
func (p DetailPage) Show(profile Profile) DetailPage {
	if p.State != DetailLoading {
		return p
	}
	p.State = DetailContent
	p.Profile = profile
	return p
}

// Title is the document title.
func (p DetailPage) Title() string {
	if p.State == DetailContent {
		return p.Profile.Name
	}
	return "Startup details"
}
