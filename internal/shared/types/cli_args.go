package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile string
	ReportName string
	ReportType []string
	Dir        string
	S3Bucket   string
	S3Prefix   string
	Locale     string
	Trend      bool
	Yearly     bool

	// Overrides holds only the parameter flags the user actually set.
	Overrides ScenarioConfig
}
