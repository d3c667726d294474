package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/maeri-project/timeloop"
)

// sampleResult is one (split_id, pack_id) materialization, kept around
// only to print that fixture's result lines.
type sampleResult struct {
	SplitID uint64
	PackID  uint64
	OK      bool
	Detail  string
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	fixtureDir := "./fixtures"
	if len(os.Args) > 1 {
		fixtureDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(fixtureDir, "*.json"))
	if err != nil {
		slog.Error("finding fixture files", "error", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		slog.Error("no fixture files found", "dir", fixtureDir)
		os.Exit(1)
	}

	fmt.Println(strings.Repeat("=", 72))
	fmt.Println("  Layout Design-Space Engine - demo driver")
	fmt.Println(strings.Repeat("=", 72))
	slog.Info("discovered fixtures", "count", len(files))

	for i, path := range files {
		name := strings.TrimSuffix(filepath.Base(path), ".json")
		fmt.Printf("\n[%d/%d] %s\n", i+1, len(files), name)
		fmt.Println(strings.Repeat("-", 72))

		arch, mapping, shape, skeleton, err := loadFixture(path)
		if err != nil {
			slog.Error("loading fixture", "fixture", name, "error", err)
			continue
		}

		engine := ldse.NewEngine()
		if err := engine.Init(arch, mapping, shape, skeleton); err != nil {
			slog.Error("initializing engine", "fixture", name, "error", err)
			continue
		}

		splitSize := engine.SplittingSpaceSize()
		packSize := engine.PackingSpaceSize()
		fmt.Printf("  splitting space size: %d\n", splitSize)
		fmt.Printf("  packing space size:   %d\n", packSize)
		slog.Debug("enumerated design space", "fixture", name, "split_size", splitSize, "pack_size", packSize)

		results := sampleSpace(engine, splitSize, packSize)
		for _, r := range results {
			status := "ok"
			if !r.OK {
				status = "REJECTED"
			}
			fmt.Printf("  (split=%d, pack=%d) -> %-8s %s\n", r.SplitID, r.PackID, status, r.Detail)
		}
	}

	fmt.Println()
	fmt.Println(strings.Repeat("=", 72))
}

// sampleSpace materializes a handful of (split_id, pack_id) pairs spread
// across the enumerated space: the origin, the far end of each axis and,
// when both axes are large enough, one interior point. It never iterates the full cross-product --
// that is left to whatever outer mapping search drives the engine.
func sampleSpace(engine *ldse.Engine, splitSize, packSize uint64) []sampleResult {
	if splitSize == 0 || packSize == 0 {
		return nil
	}

	candidates := [][2]uint64{{0, 0}}
	if splitSize > 1 {
		candidates = append(candidates, [2]uint64{splitSize - 1, 0})
	}
	if packSize > 1 {
		candidates = append(candidates, [2]uint64{0, packSize - 1})
	}
	if splitSize > 2 && packSize > 2 {
		candidates = append(candidates, [2]uint64{splitSize / 2, packSize / 2})
	}

	results := make([]sampleResult, 0, len(candidates))
	for _, c := range candidates {
		layout, err := engine.Materialize(c[0], c[1])
		if err != nil {
			results = append(results, sampleResult{SplitID: c[0], PackID: c[1], OK: false, Detail: err.Error()})
			continue
		}
		results = append(results, sampleResult{
			SplitID: c[0],
			PackID:  c[1],
			OK:      true,
			Detail:  fmt.Sprintf("%d levels materialized", len(layout.Nests)),
		})
	}
	return results
}
