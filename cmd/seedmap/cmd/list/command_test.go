package list

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/seedmap/internal/cmd/application"
	"github.com/agentstation/seedmap/internal/dataset"
	"github.com/agentstation/seedmap/pkg/errors"
	"github.com/agentstation/seedmap/pkg/startups"
)

func scenario() []startups.Record {
	return []startups.Record{
		{CompanyName: "Beta Labs", Category: "AI", Funding: 500_000},
		{CompanyName: "Acme AI", Category: "AI, Robotics", Funding: 2_000_000},
		{CompanyName: "Cargo Co", Category: "Logistics", Funding: 1_000_000},
	}
}

func many(n int) []startups.Record {
	out := make([]startups.Record, n)
	for i := range out {
		out[i] = startups.Record{CompanyName: fmt.Sprintf("Startup %02d", i+1), Category: "AI"}
	}
	return out
}

func newMock(records []startups.Record, format string) *application.Mock {
	return &application.Mock{
		DatasetFunc:      func() dataset.Source { return dataset.Static(records) },
		OutputFormatFunc: func() string { return format },
	}
}

func execute(t *testing.T, app application.Application, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := NewCommand(app)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func names(t *testing.T, raw string) []string {
	t.Helper()
	var records []startups.Record
	require.NoError(t, json.Unmarshal([]byte(raw), &records))
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.CompanyName
	}
	return out
}

func TestListFilterAndSort(t *testing.T) {
	out, _, err := execute(t, newMock(scenario(), "json"), "--filter", "AI", "--sort", "funding")
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme AI", "Beta Labs"}, names(t, out))
}

func TestListSearch(t *testing.T) {
	out, _, err := execute(t, newMock(scenario(), "json"), "--search", "ACME")
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme AI"}, names(t, out))
}

func TestListSearchCoversNameAndSummaryOnly(t *testing.T) {
	records := []startups.Record{
		{CompanyName: "Beta Labs", Category: "AI", Summary: "Warehouse robots"},
		{CompanyName: "Cargo Co", Category: "Logistics"},
	}

	out, _, err := execute(t, newMock(records, "json"), "--search", "robots")
	require.NoError(t, err)
	assert.Equal(t, []string{"Beta Labs"}, names(t, out))

	out, _, err = execute(t, newMock(records, "json"), "--search", "logistics")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}

func TestListDefaultSortsByName(t *testing.T) {
	out, _, err := execute(t, newMock(scenario(), "json"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme AI", "Beta Labs", "Cargo Co"}, names(t, out))
}

func TestListPaging(t *testing.T) {
	app := newMock(many(30), "json")

	out, _, err := execute(t, app)
	require.NoError(t, err)
	assert.Len(t, names(t, out), 12)

	out, _, err = execute(t, app, "--page", "3")
	require.NoError(t, err)
	got := names(t, out)
	require.Len(t, got, 6)
	assert.Equal(t, "Startup 25", got[0])

	out, _, err = execute(t, app, "--all")
	require.NoError(t, err)
	assert.Len(t, names(t, out), 30)
}

func TestListTableFooter(t *testing.T) {
	out, stderr, err := execute(t, newMock(many(30), "table"))
	require.NoError(t, err)
	assert.Contains(t, out, "Startup 01")
	assert.Contains(t, stderr, "Page 1 of 3 (30 startups)")
	assert.Contains(t, stderr, "--page 2")

	_, stderr, err = execute(t, newMock(scenario(), "table"), "--search", "zzz")
	require.NoError(t, err)
	assert.Contains(t, stderr, "No startups found.")
}

func TestListEmptyJSONIsArray(t *testing.T) {
	out, stderr, err := execute(t, newMock(scenario(), "json"), "--filter", "Fintech")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
	assert.Empty(t, stderr)
}

func TestListRejectsUnknownSort(t *testing.T) {
	_, _, err := execute(t, newMock(scenario(), "json"), "--sort", "age")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestListDatasetFailure(t *testing.T) {
	app := &application.Mock{
		DatasetFunc: func() dataset.Source {
			return dataset.SourceFunc(func(context.Context) ([]startups.Record, error) {
				return nil, errors.NewFetchError("https://data.test/seeds.json", 500)
			})
		},
	}
	_, _, err := execute(t, app)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP error! status: 500")
}
