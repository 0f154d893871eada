// Package export provides the command that writes the dataset, or a
// filtered and sorted part of it, to a file.
package export

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/seedmap/cmd/application"
	"github.com/agentstation/seedmap/internal/browse"
	"github.com/agentstation/seedmap/internal/cmd/constants"
	"github.com/agentstation/seedmap/internal/cmd/output"
	"github.com/agentstation/seedmap/internal/cmd/table"
	"github.com/agentstation/seedmap/internal/favicon"
	pkgconstants "github.com/agentstation/seedmap/pkg/constants"
	"github.com/agentstation/seedmap/pkg/errors"
	"github.com/agentstation/seedmap/pkg/startups"
)

// Entry is one exported startup. Icon is only set with --icons.
type Entry struct {
	startups.Record `yaml:",inline"`
	Icon            *favicon.Icon `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// NewCommand creates the export command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "export",
		GroupID: "management",
		Short:   "Export startups as JSON, YAML or markdown",
		Long: `Export writes every startup matching the filter and search to stdout
or a file, in the chosen sort order.

JSON and YAML keep the dataset's field names, so a JSON export can be
used as a dataset again. Markdown writes the wide listing as a table.
With --icons the site icon of every startup is looked up, a few at a
time, and its address added to the export.`,
		Example: `  seedmap export --export-format yaml
  seedmap export --filter AI --sort funding --file ai.json
  seedmap export --export-format markdown --icons > STARTUPS.md`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString("export-format")
			filter, _ := cmd.Flags().GetString("filter")
			search, _ := cmd.Flags().GetString("search")
			sortKey, _ := cmd.Flags().GetString("sort")
			withIcons, _ := cmd.Flags().GetBool("icons")
			path, _ := cmd.Flags().GetString("file")

			format = strings.ToLower(format)
			if !slices.Contains(constants.ExportFormats, format) {
				return errors.NewValidationError("export-format", format,
					"must be one of: "+strings.Join(constants.ExportFormats, ", "))
			}
			key := browse.SortKey(sortKey)
			if !slices.Contains(browse.SortKeys, key) {
				return errors.NewValidationError("sort", sortKey, "must be one of: name, funding, recent")
			}

			view := browse.DefaultView().WithFilter(filter).WithSearch(search).WithSort(key)
			return run(cmd, app, view, output.Format(format), withIcons, path)
		},
	}

	cmd.Flags().String("export-format", constants.FormatJSON, "Export format: "+strings.Join(constants.ExportFormats, ", "))
	cmd.Flags().StringP("filter", "f", pkgconstants.FilterAll, `Sector to export, or "all"`)
	cmd.Flags().StringP("search", "s", "", "Case-insensitive substring of the company name or summary")
	cmd.Flags().String("sort", string(browse.SortName), "Sort order: name, funding, recent")
	cmd.Flags().Bool("icons", false, "Look up site icons")
	cmd.Flags().String("file", "", "Write to this file instead of stdout")

	_ = cmd.RegisterFlagCompletionFunc("export-format",
		cobra.FixedCompletions(constants.ExportFormats, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func run(cmd *cobra.Command, app application.Application, view browse.View, format output.Format, withIcons bool, path string) error {
	ctx := cmd.Context()
	logger := app.Logger()

	records, err := app.Dataset().Load(ctx)
	if err != nil {
		return err
	}
	matched := app.Sorter().Sort(browse.Filter(records, view), view.Sort)

	var icons map[string]favicon.Icon
	if withIcons {
		icons = app.Favicons().ResolveAll(ctx, matched)
		logger.Debug().Int("startups", len(matched)).Int("icons", len(icons)).Msg("Resolved icons")
	}

	entries := make([]Entry, 0, len(matched))
	for _, r := range matched {
		e := Entry{Record: r}
		if icon, ok := icons[r.CompanyName]; ok {
			e.Icon = &icon
		}
		entries = append(entries, e)
	}

	w, target := cmd.OutOrStdout(), "stdout"
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, pkgconstants.FilePermissions)
		if err != nil {
			return errors.WrapIO("create", path, err)
		}
		defer func() { _ = f.Close() }()
		w, target = f, path
	}

	if err := write(w, format, entries); err != nil {
		return errors.WrapIO("write", target, err)
	}

	if path != "" {
		logger.Info().Str("file", path).Int("startups", len(entries)).Msg("Exported startups")
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d startups to %s\n", len(entries), path)
	}
	return nil
}

// write renders entries; markdown gets the wide listing plus an icon
// column when any icon was found.
func write(w io.Writer, format output.Format, entries []Entry) error {
	return output.Write(w, format, entries, func(bool) table.Data {
		records := make([]startups.Record, len(entries))
		withIcon := false
		for i, e := range entries {
			records[i] = e.Record
			withIcon = withIcon || e.Icon != nil
		}

		data := table.StartupsToTableData(records, true)
		if !withIcon {
			return data
		}
		data.Headers = append(data.Headers, "Icon")
		data.ColumnAlignment = append(data.ColumnAlignment, table.AlignLeft)
		for i, e := range entries {
			url := "-"
			if e.Icon != nil {
				url = e.Icon.URL
			}
			data.Rows[i] = append(data.Rows[i], url)
		}
		return data
	})
}
