package mosaic

// Config holds all the configuration parameters for the application,
// parsed from command-line flags.
type Config struct {
	TargetPath string
	SourceDir  string
	OutputPath string
	TileSize   int
	Filter     string
	Quality    int
	Progress   bool
}

// DefaultConfig returns a Config with the fixed tile size and default filter.
func DefaultConfig() Config {
	return Config{
		TileSize: DefaultTileSize,
		Filter:   DefaultFilter,
		Quality:  90,
		Progress: true,
	}
}
