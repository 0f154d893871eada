package sectors

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/seedmap/internal/cmd/application"
	"github.com/agentstation/seedmap/internal/dataset"
	"github.com/agentstation/seedmap/pkg/startups"
)

func run(t *testing.T, format string, records []startups.Record) string {
	t.Helper()
	cmd := NewCommand(&application.Mock{
		DatasetFunc:      func() dataset.Source { return dataset.Static(records) },
		OutputFormatFunc: func() string { return format },
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	return out.String()
}

func TestSectorsJSON(t *testing.T) {
	out := run(t, "json", []startups.Record{
		{CompanyName: "Beta Labs", Category: "AI"},
		{CompanyName: "Acme AI", Category: "AI, Robotics"},
		{CompanyName: "Broken Co"},
	})
	assert.JSONEq(t, `[{"name":"AI","startups":2},{"name":"Robotics","startups":1}]`, out)
}

func TestSectorsTable(t *testing.T) {
	out := run(t, "table", []startups.Record{
		{CompanyName: "Cargo Co", Category: "Logistics"},
	})
	assert.Contains(t, out, "Logistics")
	assert.Contains(t, out, "1")
}

func TestSectorsEmpty(t *testing.T) {
	assert.JSONEq(t, "[]", run(t, "json", nil))
}
