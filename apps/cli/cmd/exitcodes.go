package cmd

// Exit codes for the affirm CLI
const (
	// ExitSuccess indicates nothing was wrong
	ExitSuccess = 0

	// ExitMarkerError indicates an invalid marker configuration
	ExitMarkerError = 1

	// ExitParseError indicates a source parsing error
	ExitParseError = 2

	// ExitConfigError indicates a configuration error
	ExitConfigError = 3

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)
