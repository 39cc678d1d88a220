package fintrex

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ExportedFile is one file written by Export.
type ExportedFile struct {
	Path  string // site path that was requested
	File  string // file written, relative to the export directory
	Bytes int
}

// Export renders every page plus the sitemap, feed, robots file and the 404
// page into dir through the app's own handlers, so the output matches what
// the server sends. Setup must have been called.
func (a *App) Export(ctx context.Context, dir string) ([]ExportedFile, error) {
	if !a.ready {
		return nil, fmt.Errorf("fintrex: export before setup")
	}
	type job struct {
		path   string
		file   string
		status int
	}
	var jobs []job
	for _, p := range a.Pages() {
		jobs = append(jobs, job{path: p.Path, file: exportFile(p.Path), status: http.StatusOK})
	}
	for _, p := range []string{"/sitemap.xml", "/feed.xml", "/robots.txt"} {
		jobs = append(jobs, job{path: p, file: exportFile(p), status: http.StatusOK})
	}
	jobs = append(jobs, job{path: "/404", file: "404.html", status: http.StatusNotFound})

	var (
		mu    sync.Mutex
		files []ExportedFile
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for _, j := range jobs {
		j := j // per-iteration copy (go 1.21 loop semantics)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			req := httptest.NewRequest(http.MethodGet, j.path, nil).WithContext(ctx)
			rec := httptest.NewRecorder()
			a.Echo.ServeHTTP(rec, req)
			if rec.Code != j.status {
				return fmt.Errorf("fintrex: export %s: status %d, want %d", j.path, rec.Code, j.status)
			}
			out := filepath.Join(dir, filepath.FromSlash(j.file))
			if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
				return fmt.Errorf("fintrex: export %s: %w", j.path, err)
			}
			if err := os.WriteFile(out, rec.Body.Bytes(), 0o644); err != nil {
				return fmt.Errorf("fintrex: export %s: %w", j.path, err)
			}
			mu.Lock()
			files = append(files, ExportedFile{Path: j.path, File: j.file, Bytes: rec.Body.Len()})
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.Slice(files, func(i, j int) bool { return files[i].File < files[j].File })
	a.Logger.Info("export complete", zap.String("dir", dir), zap.Int("files", len(files)))
	return files, nil
}
