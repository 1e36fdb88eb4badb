package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cobriensr/deepseekr1-tauri/internal/icon"
)

// Result describes one icon written by Run.
type Result struct {
	Target icon.Target
	Path   string // Target.Path joined onto the run root
	Bytes  int    // encoded PNG size
}

// Run generates each target in order: render → encode → write. Paths are
// resolved against root; an empty root means the working directory.
// Directories are never created. Run stops at the first failure.
func Run(root string, targets []icon.Target) ([]Result, error) {
	log := icon.Logger()
	results := make([]Result, 0, len(targets))

	for _, t := range targets {
		path := t.Path
		if root != "" {
			path = filepath.Join(root, t.Path)
		}

		// 1. Render and encode
		data, err := icon.EncodePNG(t.Size)
		if err != nil {
			return results, fmt.Errorf("%s: %w", t.Path, err)
		}

		// 2. Write, replacing any previous file
		if err := os.WriteFile(path, data, 0644); err != nil {
			return results, fmt.Errorf("%s: writing output: %w", t.Path, err)
		}

		log.Info("created icon", "path", path, "size", t.Size, "bytes", len(data))
		results = append(results, Result{Target: t, Path: path, Bytes: len(data)})
	}
	return results, nil
}
