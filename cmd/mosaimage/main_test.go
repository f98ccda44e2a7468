package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ShaneMoissonnier/Mosaimage/internal/mosaic"
)

func TestValidateConfig(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target.png")
	if err := os.WriteFile(target, nil, 0644); err != nil {
		t.Fatal(err)
	}

	valid := func() *mosaic.Config {
		cfg := mosaic.DefaultConfig()
		cfg.TargetPath = target
		cfg.SourceDir = dir
		cfg.OutputPath = filepath.Join(dir, "out.jpg")
		return &cfg
	}

	tests := []struct {
		name    string
		mutate  func(*mosaic.Config)
		wantErr string
	}{
		{"valid", func(*mosaic.Config) {}, ""},
		{"missing input", func(c *mosaic.Config) { c.TargetPath = "" }, "--input-image-path"},
		{"missing source", func(c *mosaic.Config) { c.SourceDir = "" }, "--source-image-path"},
		{"missing output", func(c *mosaic.Config) { c.OutputPath = "" }, "--output-image-path"},
		{"input does not exist", func(c *mosaic.Config) { c.TargetPath = filepath.Join(dir, "nope.png") }, "does not exist"},
		{"source is a file", func(c *mosaic.Config) { c.SourceDir = target }, "not a directory"},
		{"unknown output format", func(c *mosaic.Config) { c.OutputPath = filepath.Join(dir, "out.xyz") }, "unsupported output format"},
		{"zero tile size", func(c *mosaic.Config) { c.TileSize = 0 }, "tile size"},
		{"quality too high", func(c *mosaic.Config) { c.Quality = 101 }, "--quality"},
		{"unknown filter", func(c *mosaic.Config) { c.Filter = "sinc" }, "unsupported resize filter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := validateConfig(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
