// Package list provides the command that lists startups from the dataset.
package list

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/agentstation/seedmap/cmd/application"
	"github.com/agentstation/seedmap/internal/browse"
	"github.com/agentstation/seedmap/internal/cmd/output"
	"github.com/agentstation/seedmap/pkg/constants"
	"github.com/agentstation/seedmap/pkg/errors"
	"github.com/agentstation/seedmap/pkg/startups"
)

// NewCommand creates the list command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		GroupID: "core",
		Short:   "List startups with filter, search and sort",
		Long: `List shows startups from the dataset one page at a time, the same
way the web grid does.

The sector filter matches one of a startup's comma-separated categories
exactly. The search term matches a case-insensitive substring of the
company name or summary. Sorting by funding puts the largest rounds first.`,
		Example: `  seedmap list                          # First page sorted by name
  seedmap list --filter AI --sort funding
  seedmap list --search acme
  seedmap list --page 2
  seedmap list --all --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, _ := cmd.Flags().GetString("filter")
			search, _ := cmd.Flags().GetString("search")
			sortKey, _ := cmd.Flags().GetString("sort")
			page, _ := cmd.Flags().GetInt("page")
			all, _ := cmd.Flags().GetBool("all")

			key := browse.SortKey(sortKey)
			if !slices.Contains(browse.SortKeys, key) {
				return errors.NewValidationError("sort", sortKey, "must be one of: name, funding, recent")
			}

			view := browse.DefaultView().
				WithFilter(filter).
				WithSearch(search).
				WithSort(key).
				WithPage(page)
			return run(cmd, app, view, all)
		},
	}

	cmd.Flags().StringP("filter", "f", constants.FilterAll, `Sector to show, or "all"`)
	cmd.Flags().StringP("search", "s", "", "Case-insensitive substring of the company name or summary")
	cmd.Flags().String("sort", string(browse.SortName), "Sort order: name, funding, recent")
	cmd.Flags().IntP("page", "p", 1, "Page to show")
	cmd.Flags().Bool("all", false, "Show every match instead of one page")

	return cmd
}

func run(cmd *cobra.Command, app application.Application, view browse.View, all bool) error {
	logger := app.Logger()

	records, err := app.Dataset().Load(cmd.Context())
	if err != nil {
		return err
	}

	var (
		shown   []startups.Record
		total   int
		hasMore bool
	)
	if all {
		shown, total = revealAll(records, view, app.Sorter())
	} else {
		res := app.Sorter().Apply(records, view)
		shown, total, hasMore = res.Visible, res.Total, res.HasMore
	}

	logger.Debug().
		Str("filter", view.Filter).
		Str("search", view.Search).
		Str("sort", string(view.Sort)).
		Int("page", view.Page).
		Int("shown", len(shown)).
		Int("total", total).
		Msg("Listed startups")

	format := output.Format(app.OutputFormat())
	if err := output.FormatStartups(cmd.OutOrStdout(), format, shown); err != nil {
		return err
	}

	if format.Tabular() {
		switch {
		case total == 0:
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "No startups found.")
		case hasMore:
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(),
				"Page %d of %d (%d startups). Use --page %d for more or --all for everything.\n",
				view.Page, browse.PageCount(total), total, view.Page+1)
		}
	}
	return nil
}

// revealAll steps a pager from the first page until every match is shown.
func revealAll(records []startups.Record, view browse.View, sorter *browse.Sorter) ([]startups.Record, int) {
	pager := browse.NewPager(records, view.WithPage(1), sorter)
	for {
		if _, err := pager.LoadNext(); err != nil {
			break
		}
	}
	return pager.Revealed(), pager.Total()
}
