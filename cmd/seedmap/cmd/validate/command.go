// Package validate provides the command that checks a dataset before it
// is served.
package validate

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/seedmap/cmd/application"
	"github.com/agentstation/seedmap/internal/cmd/alerts"
	"github.com/agentstation/seedmap/internal/cmd/output"
	"github.com/agentstation/seedmap/pkg/errors"
	"github.com/agentstation/seedmap/pkg/startups"
)

// NewCommand creates the validate command using app context.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "validate",
		GroupID: "management",
		Short:   "Check the dataset for records the directory cannot show",
		Long: `Validate loads the configured dataset and checks every record.

Errors (the command exits non-zero):
  - records without a company name or category, which the detail
    page rejects

Warnings:
  - website URLs that are not absolute, so no icon can be looked up
  - company names that repeat, so only the first record is reachable
  - negative funding amounts`,
		Example: `  seedmap validate
  seedmap validate --dataset https://example.com/seeds.json
  seedmap validate --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := app.Dataset().Load(cmd.Context())
			if err != nil {
				return err
			}

			report := Check(records)
			app.Logger().Debug().
				Int("records", len(records)).
				Int("errors", report.Count(alerts.LevelError)).
				Int("warnings", report.Count(alerts.LevelWarning)).
				Msg("Validated dataset")

			w := alerts.NewFormatWriter(cmd.OutOrStdout(), output.Format(app.OutputFormat()))
			if err := w.Write(report); err != nil {
				return err
			}

			if report.Failed() {
				return errors.NewValidationError("dataset", len(records),
					fmt.Sprintf("%d of %d records are invalid", report.Invalid(), len(records)))
			}
			return nil
		},
	}
}

// Check validates every record and returns one alert per problem, or a
// single success alert when nothing was found.
func Check(records []startups.Record) *alerts.Report {
	report := &alerts.Report{Records: len(records)}
	seen := make(map[string]int, len(records))

	for i, r := range records {
		if err := r.Validate(); err != nil {
			for _, field := range missing(r) {
				report.Add(alerts.ForRecord(alerts.LevelError, i, r, field, field+" is empty")).WithError(err)
			}
		}

		if r.WebsiteURL != "" {
			if _, ok := r.Hostname(); !ok {
				report.Add(alerts.ForRecord(alerts.LevelWarning, i, r, "websiteUrl", "website is not an absolute URL")).
					WithDetails(r.WebsiteURL)
			}
		}

		if r.Funding < 0 {
			report.Add(alerts.ForRecord(alerts.LevelWarning, i, r, "funding", "negative funding")).
				WithDetails(startups.FormatFunding(r.Funding))
		}

		if r.CompanyName != "" {
			key := strings.ToLower(r.CompanyName)
			if first, ok := seen[key]; ok {
				report.Add(alerts.ForRecord(alerts.LevelWarning, i, r, "companyName", "duplicate company name")).
					WithDetails(fmt.Sprintf("record %d is shown instead", first))
			} else {
				seen[key] = i + 1
			}
		}
	}

	if len(report.Alerts) == 0 {
		report.Add(alerts.ForDataset(alerts.LevelSuccess, fmt.Sprintf("%d startups valid", len(records))))
	}
	return report
}

// missing lists the JSON fields whose absence fails Record.Validate.
func missing(r startups.Record) []string {
	var fields []string
	if r.CompanyName == "" {
		fields = append(fields, "companyName")
	}
	if r.Category == "" {
		fields = append(fields, "category")
	}
	return fields
}
