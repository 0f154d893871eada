// Package show provides the command that prints one startup profile.
package show

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/seedmap/cmd/application"
	"github.com/agentstation/seedmap/internal/cmd/output"
	"github.com/agentstation/seedmap/internal/cmd/table"
	"github.com/agentstation/seedmap/internal/favicon"
	"github.com/agentstation/seedmap/pkg/errors"
	"github.com/agentstation/seedmap/pkg/startups"
)

// Profile is the structured form of the show output.
type Profile struct {
	startups.Record `yaml:",inline"`
	Icon            *favicon.Icon `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// NewCommand creates the show command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "show <company-name>",
		Aliases: []string{"get"},
		GroupID: "core",
		Short:   "Show the full profile of one startup",
		Long: `Show prints the profile the detail page renders: sectors, stage,
funding, website and the about, technology and market sections.

The name is matched exactly first, then ignoring case. With --icon the
site icon is looked up and its address added to the profile.`,
		Example: `  seedmap show "Acme AI"
  seedmap show acme-ai --icon
  seedmap show "Acme AI" --format yaml`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 || args[0] == "" {
				return errors.NewValidationError("id", "", "No startup ID provided")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			withIcon, _ := cmd.Flags().GetBool("icon")
			return run(cmd, app, args[0], withIcon)
		},
	}

	cmd.Flags().Bool("icon", false, "Look up the site icon")

	return cmd
}

func run(cmd *cobra.Command, app application.Application, id string, withIcon bool) error {
	ctx := cmd.Context()

	records, err := app.Dataset().Load(ctx)
	if err != nil {
		return err
	}

	record, err := startups.Find(records, id)
	if err != nil {
		return err
	}
	if err := record.Validate(); err != nil {
		return errors.WrapResource("show", "startup", id, err)
	}

	profile := Profile{Record: record}
	if withIcon {
		if icon, ok := app.Favicons().Resolve(ctx, record.WebsiteURL); ok {
			profile.Icon = &icon
		} else {
			app.Logger().Debug().Str("startup", record.CompanyName).Msg("No icon found")
		}
	}

	format := output.Format(app.OutputFormat())
	return output.Write(cmd.OutOrStdout(), format, profile, func(bool) table.Data {
		iconURL := ""
		if profile.Icon != nil {
			iconURL = profile.Icon.URL
		}
		return table.ProfileToTableData(record, iconURL)
	})
}
