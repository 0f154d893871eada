// Package constants provides shared constants for CLI commands.
package constants

// Output format constants used throughout the CLI.
const (
	// FormatTable is the default table output format.
	FormatTable = "table"

	// FormatWide is an extended table format with more columns.
	FormatWide = "wide"

	// FormatJSON outputs data as JSON.
	FormatJSON = "json"

	// FormatYAML outputs data as YAML.
	FormatYAML = "yaml"

	// FormatMarkdown outputs as markdown table.
	FormatMarkdown = "markdown"
)

// Formats lists every value accepted by --format, for flag completion.
var Formats = []string{FormatTable, FormatWide, FormatJSON, FormatYAML, FormatMarkdown}

// ExportFormats lists the formats the export command can write.
var ExportFormats = []string{FormatJSON, FormatYAML, FormatMarkdown}
