// Package emoji provides symbol constants for CLI output.
// These symbols keep status lines consistent across commands.
package emoji

// Status symbols.
const (
	// Success marks a completed operation or a record that passed validation.
	Success = "✓"

	// Error marks a failed operation or a record that cannot be shown.
	Error = "✗"

	// Stop marks a shutdown.
	Stop = "✗"

	// Warning marks a non-fatal issue such as a record without a website.
	Warning = "!"

	// Unknown marks an indeterminate state.
	Unknown = "?"

	// Launch marks a server that started listening.
	Launch = "🚀"
)
