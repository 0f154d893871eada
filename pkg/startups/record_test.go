package startups_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/seedmap/pkg/errors"
	"github.com/agentstation/seedmap/pkg/startups"
)

func sample() []startups.Record {
	return []startups.Record{
		{CompanyName: "Acme AI", Category: "AI, Robotics", Funding: 2_000_000, WebsiteURL: "https://www.acme.ai/about"},
		{CompanyName: "Beta Labs", Category: "AI", Funding: 500_000},
		{CompanyName: "acme ai", Category: "Duplicates"},
	}
}

func TestCategories(t *testing.T) {
	tests := []struct {
		category string
		want     []string
	}{
		{"AI, Robotics", []string{"AI", "Robotics"}},
		{" AI ,, Robotics , ", []string{"AI", "Robotics"}},
		{"", nil},
		{",", nil},
		{"Fintech", []string{"Fintech"}},
	}
	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			assert.Equal(t, tt.want, startups.Record{Category: tt.category}.Categories())
		})
	}
}

func TestHasCategoryIsExact(t *testing.T) {
	r := startups.Record{Category: "AI, Robotics"}
	assert.True(t, r.HasCategory("AI"))
	assert.True(t, r.HasCategory("Robotics"))
	assert.False(t, r.HasCategory("ai"))
	assert.False(t, r.HasCategory("Robot"))
}

func TestPlaceholders(t *testing.T) {
	var r startups.Record
	assert.Equal(t, "Unknown Company", r.DisplayName())
	assert.Equal(t, "No summary available.", r.SummaryOr(startups.NoSummary))
	assert.Equal(t, "No information available.", r.SummaryOr(startups.NoInformation))
	assert.Equal(t, "No technical details available.", r.TechnicalApproachOr())
	assert.Equal(t, "No market details available.", r.MarketOverviewOr())
	assert.Equal(t, "N/A", r.Stage())

	r = startups.Record{CompanyName: "Acme AI", Summary: "Robots", InvestmentStage: "Seed"}
	assert.Equal(t, "Acme AI", r.DisplayName())
	assert.Equal(t, "Robots", r.SummaryOr(startups.NoSummary))
	assert.Equal(t, "Seed", r.Stage())
}

func TestHostname(t *testing.T) {
	tests := []struct {
		url    string
		want   string
		wantOK bool
	}{
		{"https://www.acme.ai/about", "www.acme.ai", true},
		{"http://Beta.IO:8080", "beta.io", true},
		{"acme.ai", "", false},
		{"", "", false},
		{"mailto:hi@acme.ai", "", false},
		{"://broken", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got, ok := startups.Hostname(tt.url)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, startups.Record{CompanyName: "Acme AI", Category: "AI"}.Validate())

	err := startups.Record{CompanyName: "Acme AI"}.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "missing required fields")

	assert.Error(t, startups.Record{Category: "AI"}.Validate())
}

func TestFind(t *testing.T) {
	records := sample()

	t.Run("case insensitive", func(t *testing.T) {
		got, err := startups.Find(records, "acme ai")
		require.NoError(t, err)
		// The first record wins even though a later one matches exactly.
		assert.Equal(t, "Acme AI", got.CompanyName)
	})

	t.Run("exact", func(t *testing.T) {
		got, err := startups.Find(records, "Beta Labs")
		require.NoError(t, err)
		assert.Equal(t, 500_000.0, got.Funding)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := startups.Find(records, "Gamma")
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
		assert.Equal(t, "Startup not found: Gamma", err.Error())
	})
}

func TestSectors(t *testing.T) {
	records := sample()
	assert.Equal(t, []string{"AI", "Duplicates", "Robotics"}, startups.Sectors(records))
	assert.Equal(t, map[string]int{"AI": 2, "Robotics": 1, "Duplicates": 1}, startups.SectorCounts(records))
	assert.Empty(t, startups.Sectors(nil))
}
