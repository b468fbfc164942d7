// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 12

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern command-line behavior.
const (
	CliColored = "cli.colored"
	CliSuggest = "cli.suggest"
	CliPrompt  = "cli.prompt"
)

// Iconography - these keys manage the visual rendering of status symbols.
const (
	IconsVariant = "icons.variant"
)

// Output Rendering - these keys define how conversion results are printed.
const (
	OutputJson        = "output.json"
	OutputSwatchWidth = "output.swatch_width"
)

// History Tracking - these keys configure the persistence of recent conversions.
const (
	HistorySave  = "history.save"
	HistoryLimit = "history.limit"
)

// Name Table - these keys extend the built-in color name database.
const (
	NamesCustomFile = "names.custom_file"
)
