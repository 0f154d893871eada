package browse

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultView(t *testing.T) {
	v := DefaultView()
	assert.Equal(t, "all", v.Filter)
	assert.Equal(t, "", v.Search)
	assert.Equal(t, SortName, v.Sort)
	assert.Equal(t, 1, v.Page)
	assert.False(t, v.IsFiltered())
	assert.Empty(t, v.Query())
}

func TestParseView(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  View
	}{
		{"empty", "", DefaultView()},
		{"all values", "filter=AI&q=Robots&sort=funding&page=3", View{Filter: "AI", Search: "robots", Sort: SortFunding, Page: 3}},
		{"bad page", "page=zero", DefaultView()},
		{"negative page", "page=-2", DefaultView()},
		{"blank filter", "filter=+", DefaultView()},
		{"unknown sort kept", "sort=stars", View{Filter: "all", Sort: "stars", Page: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, ParseView(q))
		})
	}
}

func TestQueryWritesOnlyNonDefaults(t *testing.T) {
	v := DefaultView().WithFilter("AI").WithSearch("Acme").WithSort(SortRecent).WithPage(4)
	assert.Equal(t, "filter=AI&q=acme&sort=recent", v.Query().Encode())
	assert.Equal(t, "filter=AI&page=4&q=acme&sort=recent", v.PageQuery().Encode())

	assert.Equal(t, "q=x", DefaultView().WithSearch("X").Query().Encode())
}

func TestWithMethodsResetPage(t *testing.T) {
	base := DefaultView().WithPage(5)

	assert.Equal(t, 1, base.WithFilter("AI").Page)
	assert.Equal(t, 1, base.WithSearch("a").Page)
	assert.Equal(t, 1, base.WithSort(SortFunding).Page)
	assert.Equal(t, 6, base.NextPage().Page)
	assert.Equal(t, 5, base.Page, "views are values")

	assert.Equal(t, "all", base.WithFilter("").Filter)
	assert.Equal(t, SortName, base.WithSort("").Sort)
	assert.Equal(t, 1, base.WithPage(-1).Page)
}

func TestSortKeyLabel(t *testing.T) {
	assert.Equal(t, "Name", SortName.Label())
	assert.Equal(t, "Funding", SortFunding.Label())
	assert.Equal(t, "Recent", SortRecent.Label())
	assert.Equal(t, "stars", SortKey("stars").Label())
}
