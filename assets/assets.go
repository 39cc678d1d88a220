// Package assets rasterises the site's icon and social card set from master
// images. Every output is contain-fitted: the master is scaled to fit inside
// the target box, centered, on a transparent background.
package assets

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"
)

// Master images looked up in the asset directory.
const (
	LogoSource      = "fintrex-logo-master.png"
	AssistantSource = "fin-ai-assistant-master.png"
)

// ErrInvalidSpec is returned for a spec without a name or a positive size.
var ErrInvalidSpec = errors.New("assets: invalid spec")

// Spec describes one generated PNG.
type Spec struct {
	Name   string // output file name without extension
	Width  int
	Height int
	Source string // master image file name
}

func square(name string, size int) Spec {
	return Spec{Name: name, Width: size, Height: size, Source: LogoSource}
}

// DefaultSpecs returns the favicon, PWA, tile and social card set the site
// references.
func DefaultSpecs() []Spec {
	specs := make([]Spec, 0, 16)
	for _, size := range []int{16, 32, 72, 96, 128, 144, 152, 192, 384, 512} {
		specs = append(specs, square(fmt.Sprintf("fintrex-icon-%d", size), size))
	}
	return append(specs,
		square("fintrex-logo", 512),
		square("fintrex-apple-touch-icon", 180),
		square("mstile-144x144", 144),
		Spec{Name: "fintrex-og-image", Width: 1200, Height: 630, Source: LogoSource},
		Spec{Name: "fintrex-twitter-card", Width: 1200, Height: 675, Source: LogoSource},
		Spec{Name: "fin-ai-assistant", Width: 800, Height: 800, Source: AssistantSource},
	)
}

// Fit scales src to fit inside a w×h box without cropping and centers it on
// a transparent canvas.
func Fit(src image.Image, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	sb := src.Bounds()
	sw, sh := sb.Dx(), sb.Dy()
	if sw == 0 || sh == 0 {
		return dst
	}

	// scale = min(w/sw, h/sh), kept in integers
	dw, dh := w, sh*w/sw
	if dh > h {
		dw, dh = sw*h/sh, h
	}
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}
	x0, y0 := (w-dw)/2, (h-dh)/2
	draw.CatmullRom.Scale(dst, image.Rect(x0, y0, x0+dw, y0+dh), src, sb, draw.Over, nil)
	return dst
}

// Decode reads an image file in any registered format.
func Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// Write fits src to s and writes it as dir/<name>.png.
func Write(dir string, s Spec, src image.Image) (string, error) {
	if s.Name == "" || s.Width <= 0 || s.Height <= 0 {
		return "", fmt.Errorf("%w: %+v", ErrInvalidSpec, s)
	}
	path := filepath.Join(dir, s.Name+".png")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := png.Encode(f, Fit(src, s.Width, s.Height)); err != nil {
		f.Close()
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	return path, f.Close()
}

// Result is the outcome of one spec.
type Result struct {
	Spec Spec
	File string
	Err  error
}

// Report collects the results of a generation run in spec order.
type Report struct {
	Results []Result
}

// Succeeded counts the files written.
func (r Report) Succeeded() int {
	n := 0
	for _, res := range r.Results {
		if res.Err == nil {
			n++
		}
	}
	return n
}

// Failed returns the results that errored.
func (r Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Err != nil {
			out = append(out, res)
		}
	}
	return out
}

// Generate writes every spec into dir, reading masters from dir. A missing
// master or a failed write only fails its own specs; the rest still run.
// The returned error is non-nil only when ctx ends the run early.
func Generate(ctx context.Context, dir string, specs []Spec, logger *zap.Logger) (Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	report := Report{Results: make([]Result, len(specs))}

	var (
		mu      sync.Mutex
		masters = map[string]*master{}
	)
	load := func(name string) *master {
		mu.Lock()
		defer mu.Unlock()
		m, ok := masters[name]
		if !ok {
			m = &master{path: filepath.Join(dir, name)}
			masters[name] = m
		}
		return m
	}

	var g errgroup.Group
	g.SetLimit(4)
	for i, s := range specs {
		i, s := i, s // per-iteration copy (go 1.21 loop semantics)
		g.Go(func() error {
			res := Result{Spec: s}
			defer func() { report.Results[i] = res }()
			if err := ctx.Err(); err != nil {
				res.Err = err
				return nil
			}
			src, err := load(s.Source).image()
			if err != nil {
				res.Err = err
				logger.Warn("asset failed", zap.String("name", s.Name), zap.Error(err))
				return nil
			}
			res.File, res.Err = Write(dir, s, src)
			if res.Err != nil {
				logger.Warn("asset failed", zap.String("name", s.Name), zap.Error(res.Err))
				return nil
			}
			logger.Info("asset written",
				zap.String("file", res.File),
				zap.Int("width", s.Width),
				zap.Int("height", s.Height))
			return nil
		})
	}
	_ = g.Wait()
	return report, ctx.Err()
}

// master decodes a source image once, however many specs share it.
type master struct {
	path string
	once sync.Once
	img  image.Image
	err  error
}

func (m *master) image() (image.Image, error) {
	m.once.Do(func() { m.img, m.err = Decode(m.path) })
	return m.img, m.err
}
