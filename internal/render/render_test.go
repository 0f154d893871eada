package render

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/seedmap/internal/browse"
	"github.com/agentstation/seedmap/internal/favicon"
	"github.com/agentstation/seedmap/internal/theme"
	"github.com/agentstation/seedmap/pkg/startups"
)

func records(n int) []startups.Record {
	out := make([]startups.Record, n)
	for i := range out {
		out[i] = startups.Record{
			CompanyName: fmt.Sprintf("Startup %02d", i),
			Category:    "AI, Robotics",
			Summary:     "Summary",
			WebsiteURL:  fmt.Sprintf("https://s%02d.example", i),
		}
	}
	return out
}

func TestNewCard(t *testing.T) {
	card, ok := NewCard(startups.Record{
		CompanyName: "Acme AI & Co",
		Category:    "AI, Robotics",
		WebsiteURL:  "https://www.acme.ai/about",
		Funding:     2_500_000,
	})
	require.True(t, ok)
	assert.Equal(t, "/startup?id=Acme+AI+%26+Co", card.Link)
	assert.Equal(t, "AA", card.Initials)
	assert.Equal(t, startups.Color("Acme AI & Co"), card.Color)
	assert.Contains(t, string(card.Gradient), card.Color+"33")
	assert.Equal(t, "No summary available.", card.Summary)
	assert.Equal(t, []string{"AI", "Robotics"}, card.Tags)
	assert.Equal(t, "$2.5M", card.Funding)
	assert.Equal(t, "/favicon?domain=www.acme.ai", card.IconURL)
}

func TestNewCardWithoutName(t *testing.T) {
	card, ok := NewCard(startups.Record{})
	require.True(t, ok)
	assert.Equal(t, "Unknown Company", card.Name)
	assert.Equal(t, "UC", card.Initials)
	assert.Empty(t, card.IconURL)
	assert.Empty(t, card.Website)
}

func TestCardsKeepOrder(t *testing.T) {
	cards := Cards(records(3))
	require.Len(t, cards, 3)
	assert.Equal(t, "Startup 00", cards[0].Name)
	assert.Equal(t, "Startup 02", cards[2].Name)
}

func TestGridPage(t *testing.T) {
	r := Must()
	res := browse.NewSorter("en").Apply(records(20), browse.DefaultView())
	page := NewGridPage(theme.Dark, []string{"AI", "Robotics"}, res)

	var buf bytes.Buffer
	require.NoError(t, r.Grid(&buf, page))
	html := buf.String()

	assert.Contains(t, html, `data-theme="dark"`)
	assert.Equal(t, 12, strings.Count(html, `class="card"`))
	assert.Contains(t, html, `data-next="/startups?page=2"`)
	assert.Contains(t, html, `data-filter="all">ALL</button>`)
	assert.Contains(t, html, `class="btn btn-primary" data-filter="all"`)
	assert.Contains(t, html, `class="btn btn-outline" data-filter="Robotics"`)
	assert.Contains(t, html, `<option value="name" selected>Name</option>`)
	assert.Contains(t, html, `src="/favicon?domain=s00.example"`)
	assert.Contains(t, html, `style="background: linear-gradient(135deg, `)
	assert.NotContains(t, html, "ZgotmplZ")
	assert.NotContains(t, html, "No startups match")
}

func TestGridPageEscapesData(t *testing.T) {
	res := browse.NewSorter("en").Apply([]startups.Record{{
		CompanyName: `<script>alert(1)</script>`,
		Category:    "AI",
		WebsiteURL:  `javascript:alert(1)`,
	}}, browse.DefaultView())

	var buf bytes.Buffer
	require.NoError(t, Must().Grid(&buf, NewGridPage(theme.Light, nil, res)))
	assert.NotContains(t, buf.String(), "<script>alert(1)</script>")
	assert.Contains(t, buf.String(), "&lt;script&gt;")
}

func TestGridPageEmpty(t *testing.T) {
	res := browse.NewSorter("en").Apply(records(3), browse.DefaultView().WithSearch("zzz"))

	var buf bytes.Buffer
	require.NoError(t, Must().Grid(&buf, NewGridPage(theme.Light, nil, res)))
	assert.Contains(t, buf.String(), "No startups match your criteria.")
	assert.NotContains(t, buf.String(), `class="sentinel`)
}

func TestGridErrorPage(t *testing.T) {
	page := NewGridErrorPage(theme.Light, browse.DefaultView(), errors.New("HTTP error! status: 500"))
	assert.False(t, page.Empty())

	var buf bytes.Buffer
	require.NoError(t, Must().Grid(&buf, page))
	assert.Contains(t, buf.String(), "Failed to load startups: HTTP error! status: 500")
	assert.NotContains(t, buf.String(), `class="card"`)
	assert.NotContains(t, buf.String(), "No startups match")
}

func TestFragment(t *testing.T) {
	r := Must()
	s := browse.NewSorter("en")
	v := browse.DefaultView().WithFilter("AI")

	t.Run("middle page", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, r.Fragment(&buf, NewFragment(s.Apply(records(30), v.WithPage(2)))))
		html := buf.String()
		assert.Equal(t, 12, strings.Count(html, `class="card"`))
		assert.Contains(t, html, "Startup 12")
		assert.NotContains(t, html, "Startup 11")
		assert.Contains(t, html, `data-next="/startups?filter=AI&amp;page=3"`)
		assert.NotContains(t, html, "<html")
	})

	t.Run("last page", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, r.Fragment(&buf, NewFragment(s.Apply(records(30), v.WithPage(3)))))
		assert.Equal(t, 6, strings.Count(buf.String(), `class="card"`))
		assert.NotContains(t, buf.String(), "sentinel")
	})

	t.Run("no matches", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, r.Fragment(&buf, NewFragment(s.Apply(records(3), v.WithFilter("Fintech")))))
		assert.Contains(t, buf.String(), "No startups match your criteria.")
	})

	t.Run("error", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, r.Fragment(&buf, NewErrorFragment(errors.New("boom"))))
		assert.Contains(t, buf.String(), "Failed to load startups: boom")
	})
}

func TestDetailStates(t *testing.T) {
	page := NewDetailPage(theme.Light, "acme ai")
	assert.Equal(t, DetailLoading, page.State)
	assert.Equal(t, "loading", page.State.String())

	failed := page.Fail("Startup not found: acme ai")
	assert.Equal(t, DetailError, failed.State)
	assert.Equal(t, failed, failed.Show(Profile{Name: "late"}), "a settled page does not change")

	shown := page.Show(Profile{Name: "Acme AI"})
	assert.Equal(t, DetailContent, shown.State)
	assert.Equal(t, "Acme AI", shown.Title())
	assert.Equal(t, shown, shown.Fail("late"))
}

func TestDetailRender(t *testing.T) {
	r := Must()
	rec := startups.Record{
		CompanyName:     "Acme AI",
		Category:        "AI, Robotics",
		WebsiteURL:      "https://acme.ai",
		Funding:         2_000_000,
		InvestmentStage: "Series A",
	}
	icon := &favicon.Icon{Host: "acme.ai", ContentType: "image/png", Data: []byte("png")}

	var buf bytes.Buffer
	require.NoError(t, r.Detail(&buf, NewDetailPage(theme.Light, "acme ai").Show(NewProfile(rec, icon))))
	html := buf.String()

	assert.Contains(t, html, "<title>Acme AI | seedmap</title>")
	assert.Contains(t, html, "Series A")
	assert.Contains(t, html, "$2.0M")
	assert.Contains(t, html, `src="data:image/png;base64,cG5n"`)
	assert.Contains(t, html, `href="https://acme.ai" target="_blank" rel="noopener">Visit Website</a>`)
	assert.Contains(t, html, "No information available.")
	assert.Contains(t, html, "No technical details available.")
	assert.Contains(t, html, "No market details available.")
	assert.Contains(t, html, `badge-sm">Robotics</span>`)
}

func TestDetailRenderWithoutWebsite(t *testing.T) {
	rec := startups.Record{CompanyName: "Beta Labs", Category: "AI"}

	var buf bytes.Buffer
	require.NoError(t, Must().Detail(&buf, NewDetailPage(theme.Dark, "Beta Labs").Show(NewProfile(rec, nil))))
	assert.NotContains(t, buf.String(), "Visit Website")
	assert.Contains(t, buf.String(), "N/A")
	assert.NotContains(t, buf.String(), "data:image")
}

func TestDetailRenderError(t *testing.T) {
	var buf bytes.Buffer
	page := NewDetailPage(theme.Light, "Nope").Fail("Startup not found: Nope")
	require.NoError(t, Must().Detail(&buf, page))
	assert.Contains(t, buf.String(), `<span id="error-message">Startup not found: Nope</span>`)
	assert.NotContains(t, buf.String(), "startup-details")
}

func TestErrorPage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Must().ErrorPage(&buf, ErrorPage{Status: 404, Title: "Not Found", Message: "no route"}))
	assert.Contains(t, buf.String(), "404 Not Found")
	assert.Contains(t, buf.String(), "no route")
}

func TestDataURL(t *testing.T) {
	assert.Equal(t, "data:image/x-icon;base64,AQI=", string(DataURL(favicon.Icon{ContentType: "image/x-icon; charset=binary", Data: []byte{1, 2}})))
	assert.Empty(t, DataURL(favicon.Icon{ContentType: "text/html", Data: []byte("x")}))
	assert.Empty(t, DataURL(favicon.Icon{ContentType: "image/png"}))
}

func TestAssets(t *testing.T) {
	css, err := fs.ReadFile(Assets(), "site.css")
	require.NoError(t, err)
	assert.Contains(t, string(css), `[data-theme="dark"]`)

	js, err := fs.ReadFile(Assets(), "site.js")
	require.NoError(t, err)
	assert.Contains(t, string(js), "IntersectionObserver")
}
