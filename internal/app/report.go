package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/cairn/internal/engine/selector"
)

// status lists every project with its products and source files, and the
// files below the project directory that no product uses.
func (a *App) status(ctx context.Context, req Request) error {
	forest, err := a.resolve(ctx, req)
	if err != nil {
		return err
	}

	ignores := []string{domain.BuildDirName}
	if a.paths.BuildDir != "" {
		ignores = append(ignores, filepath.Base(a.paths.BuildDir))
	}

	w := &reportWriter{w: a.out}
	for _, project := range forest {
		w.printf("Project %s (%s)\n", project.Name, project.Configuration)
		w.printf("  Project file: %s\n", project.ProjectFile)
		w.printf("  Build directory: %s\n", project.BuildDirectory)

		tracked := map[string]bool{project.ProjectFile: true}
		for _, product := range project.Products {
			w.printf("  Product %s [%s]\n", product.Name, product.Type)
			for _, src := range product.Sources {
				tracked[src] = true
				if _, err := os.Stat(src); err != nil {
					w.printf("    %s (missing)\n", src)
					continue
				}
				w.printf("    %s\n", src)
			}
		}

		var untracked []string
		for path := range a.walker.WalkFiles(project.SourceDir, ignores) {
			if !tracked[path] {
				untracked = append(untracked, path)
			}
		}
		if len(untracked) > 0 {
			w.printf("  Files not in any product:\n")
			for _, path := range untracked {
				w.printf("    %s\n", path)
			}
		}
	}
	return w.err
}

// properties prints the properties of the selected products.
func (a *App) properties(ctx context.Context, req Request) error {
	forest, err := a.resolve(ctx, req)
	if err != nil {
		return err
	}

	w := &reportWriter{w: a.out}
	for _, product := range selector.Select(forest, req.Products, a.logger).Products {
		w.printf("Product %s (%s)\n", product.Name, product.ProjectID)
		w.printf("  type: %s\n", product.Type)
		if product.IsRunnable() {
			w.printf("  executable: %s\n", product.ExecutablePath)
		}
		keys := make([]string, 0, len(product.Properties))
		for k := range product.Properties {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			w.printf("  %s: %s\n", k, product.Properties[k])
		}
	}
	return w.err
}

// reportWriter keeps the first write error.
type reportWriter struct {
	w   io.Writer
	err error
}

func (r *reportWriter) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}
