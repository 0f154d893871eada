package render

import (
	"fmt"
	"html/template"
	"net/url"

	"github.com/agentstation/seedmap/pkg/constants"
	"github.com/agentstation/seedmap/pkg/logging"
	"github.com/agentstation/seedmap/pkg/startups"
)

// Card is the view model of one grid card.
type Card struct {
	Link     string
	Name     string
	Summary  string
	Initials string
	Color    string
	Gradient template.CSS
	Tags     []string
	Funding  string
	Website  string
	IconURL  string
}

// NewCard builds the card for r. Any failure while building it, including
// a panic, yields ok == false so the caller can skip the record.
func NewCard(r startups.Record) (card Card, ok bool) {
	defer func() {
		if p := recover(); p != nil {
			logging.Warn().Str("startup", r.CompanyName).Interface("panic", p).Msg("card skipped")
			card, ok = Card{}, false
		}
	}()

	name := r.DisplayName()
	color := startups.Color(name)
	card = Card{
		Link:     DetailLink(name),
		Name:     name,
		Summary:  r.SummaryOr(startups.NoSummary),
		Initials: startups.Initials(name),
		Color:    color,
		Gradient: Gradient(color),
		Tags:     r.Categories(),
		Funding:  startups.FormatFunding(r.Funding),
		Website:  r.WebsiteURL,
	}
	if host, ok := r.Hostname(); ok {
		card.IconURL = IconLink(host)
	}
	return card, true
}

// Cards builds cards for records in order, dropping records whose card
// could not be built.
func Cards(records []startups.Record) []Card {
	cards := make([]Card, 0, len(records))
	for _, r := range records {
		if c, ok := NewCard(r); ok {
			cards = append(cards, c)
		}
	}
	return cards
}

// DetailLink is the detail page URL for a company name.
func DetailLink(name string) string {
	return constants.DetailPath + "?id=" + url.QueryEscape(name)
}

// IconLink is the icon proxy URL for a hostname.
func IconLink(host string) string {
	return constants.FaviconPath + "?domain=" + url.QueryEscape(host)
}

// Gradient is the avatar background for a #RRGGBB color: the color at 20%
// opacity fading to 40%.
func Gradient(color string) template.CSS {
	return template.CSS(fmt.Sprintf("background: linear-gradient(135deg, %s33, %s66)", color, color))
}
