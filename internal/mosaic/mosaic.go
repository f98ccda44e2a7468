package mosaic

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// Run is the main application logic: it catalogs the source folder, builds
// the mosaic of the target image and writes it to the output path.
func Run(cfg *Config) error {
	log.Printf("Starting mosaic of %s from %s with %dpx tiles and %s filter.",
		cfg.TargetPath, cfg.SourceDir, cfg.TileSize, cfg.Filter)

	resizer, err := NewResizer(cfg.Filter)
	if err != nil {
		return err
	}

	startTime := time.Now()

	ids, err := Enumerate(cfg.SourceDir)
	if err != nil {
		return err
	}
	fmt.Printf("Cataloguing %d source images...\n", len(ids))

	cat, err := BuildCatalog(ids, FileLoader{}, resizer, cfg.TileSize)
	if err != nil {
		return fmt.Errorf("failed to build catalog: %w", err)
	}
	log.Printf("Catalog built with %d candidates in %s.", cat.Len(), time.Since(startTime))

	target, err := loadImage(cfg.TargetPath)
	if err != nil {
		return fmt.Errorf("failed to load target: %w", err)
	}

	grid, err := Decompose(target, cfg.TileSize)
	if err != nil {
		return err
	}
	fmt.Printf("Divided %dx%d target into %dx%d tiles.\n",
		target.Width(), target.Height(), grid.Columns, grid.Rows)

	placements, err := Plan(grid, cat)
	if err != nil {
		return err
	}
	log.Printf("Matched %d tiles.", len(placements))

	var placed int64
	total := int64(len(placements))
	done := make(chan struct{})
	var spinnerWg sync.WaitGroup
	if cfg.Progress {
		spinnerWg.Add(1)
		go showProgress(&spinnerWg, done, &placed, total)
	}

	canvas, err := Composite(placements, grid, cat, func(n, _ int) {
		atomic.StoreInt64(&placed, int64(n))
	})
	close(done)
	spinnerWg.Wait()
	if err != nil {
		return err
	}

	if err := Encode(canvas, cfg.OutputPath, cfg.Quality); err != nil {
		return err
	}

	duration := time.Since(startTime)
	log.Printf("Mosaic written to %s in %s, %d distinct candidates resized.",
		cfg.OutputPath, duration, cat.CachedCount())

	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	durationStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("202"))
	fmt.Printf("Mosaic saved to %s\n", pathStyle.Render(cfg.OutputPath))
	fmt.Printf("Distinct source images used: %d/%d\n", cat.CachedCount(), cat.Len())
	fmt.Printf("Total processing time: %s\n", durationStyle.Render(fmt.Sprintf("%.4fs", duration.Seconds())))
	return nil
}

// showProgress animates a spinner with the number of composited tiles until
// done is closed.
func showProgress(wg *sync.WaitGroup, done <-chan struct{}, placed *int64, total int64) {
	defer wg.Done()
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			fmt.Printf("\r%s Composited %d/%d tiles.\n", "✓", atomic.LoadInt64(placed), total)
			return
		case <-ticker.C:
			s, _ = s.Update(spinner.TickMsg{})
			fmt.Printf("\r%s Compositing tiles %d/%d...", s.View(), atomic.LoadInt64(placed), total)
		}
	}
}
