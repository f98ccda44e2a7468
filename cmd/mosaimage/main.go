package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ShaneMoissonnier/Mosaimage/internal/logger"
	"github.com/ShaneMoissonnier/Mosaimage/internal/mosaic"
	"github.com/disintegration/imaging"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

func main() {
	cfg, logPath, verbose := parseFlags()

	logFile, err := logger.Init(logPath, verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	if err = validateConfig(cfg); err != nil {
		log.Printf("Configuration error: %v", err)
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		logFile.Close()
		os.Exit(1)
	}

	if err = mosaic.Run(cfg); err != nil {
		log.Printf("Application error: %v", err)
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		logFile.Close()
		os.Exit(1)
	}
}

// parseFlags defines and parses command-line flags, returning them
// in a Config struct along with the logging options.
func parseFlags() (*mosaic.Config, string, bool) {
	cfg := mosaic.DefaultConfig()
	var (
		logPath    string
		verbose    bool
		noProgress bool
	)

	pflag.StringVarP(&cfg.TargetPath, "input-image-path", "i", "", "Path to the image to reproduce as a mosaic.")
	pflag.StringVarP(&cfg.SourceDir, "source-image-path", "s", "", "Folder containing the source images used as tiles.")
	pflag.StringVarP(&cfg.OutputPath, "output-image-path", "o", "", "Path of the mosaic image to write. The extension selects the format.")
	pflag.StringVar(&cfg.Filter, "filter", mosaic.DefaultFilter, "Resampling filter for shrinking sources ("+strings.Join(mosaic.Filters, ", ")+").")
	pflag.IntVar(&cfg.Quality, "quality", cfg.Quality, "JPEG quality of the output, from 1 to 100.")
	pflag.StringVar(&logPath, "log-file", "mosaimage.log", "File to append logs to.")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "Also write logs to stderr.")
	pflag.BoolVar(&noProgress, "no-progress", false, "Disable the progress spinner.")

	pflag.Parse()

	cfg.Progress = !noProgress && term.IsTerminal(int(os.Stdout.Fd()))
	return &cfg, logPath, verbose
}

// validateConfig checks if the provided configuration is valid.
func validateConfig(cfg *mosaic.Config) error {
	if cfg.TargetPath == "" {
		return fmt.Errorf("--input-image-path/-i flag is required")
	}
	if cfg.SourceDir == "" {
		return fmt.Errorf("--source-image-path/-s flag is required")
	}
	if cfg.OutputPath == "" {
		return fmt.Errorf("--output-image-path/-o flag is required")
	}
	if _, err := os.Stat(cfg.TargetPath); os.IsNotExist(err) {
		return fmt.Errorf("input file does not exist: %s", cfg.TargetPath)
	}
	if info, err := os.Stat(cfg.SourceDir); err == nil && !info.IsDir() {
		return fmt.Errorf("source path is not a directory: %s", cfg.SourceDir)
	}
	if _, err := imaging.FormatFromFilename(cfg.OutputPath); err != nil {
		return fmt.Errorf("unsupported output format: %s", cfg.OutputPath)
	}
	if cfg.TileSize <= 0 {
		return fmt.Errorf("tile size must be a positive integer")
	}
	if cfg.Quality < 1 || cfg.Quality > 100 {
		return fmt.Errorf("--quality must be between 1 and 100")
	}
	if _, err := mosaic.NewResizer(cfg.Filter); err != nil {
		return err
	}
	return nil
}
