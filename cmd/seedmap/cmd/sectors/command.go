// Package sectors provides the command that lists the dataset's sectors.
package sectors

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/seedmap/cmd/application"
	"github.com/agentstation/seedmap/internal/cmd/output"
	"github.com/agentstation/seedmap/internal/cmd/table"
	"github.com/agentstation/seedmap/pkg/startups"
)

// Sector is one entry of the structured output.
type Sector struct {
	Name     string `json:"name" yaml:"name"`
	Startups int    `json:"startups" yaml:"startups"`
}

// NewCommand creates the sectors command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "sectors",
		Aliases: []string{"categories"},
		GroupID: "core",
		Short:   "List the sectors used as filter values",
		Long: `Sectors lists every distinct category tag in the dataset with the
number of startups carrying it. These are the values accepted by
"seedmap list --filter" and the grid's filter buttons.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := app.Dataset().Load(cmd.Context())
			if err != nil {
				return err
			}

			names := startups.Sectors(records)
			counts := startups.SectorCounts(records)

			out := make([]Sector, 0, len(names))
			for _, name := range names {
				out = append(out, Sector{Name: name, Startups: counts[name]})
			}

			format := output.Format(app.OutputFormat())
			return output.Write(cmd.OutOrStdout(), format, out, func(bool) table.Data {
				return table.SectorsToTableData(names, counts)
			})
		},
	}
}
