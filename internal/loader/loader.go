// Package loader fetches the seed data that populates a list on startup.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/nibzard/todolist-go/internal/config"
	"github.com/nibzard/todolist-go/internal/todo"
)

// maxResponseBytes caps the size of a seed payload read over HTTP.
const maxResponseBytes = 4 << 20

// ErrResponseTooLarge is returned when a seed response exceeds maxResponseBytes.
var ErrResponseTooLarge = errors.New("seed response exceeds 4 MiB")

// Loader returns seed data shaped as {"data": [...]}.
type Loader interface {
	Load(ctx context.Context) (*todo.Seed, error)
}

// Func adapts a plain function to the Loader interface.
type Func func(ctx context.Context) (*todo.Seed, error)

// Load calls f.
func (f Func) Load(ctx context.Context) (*todo.Seed, error) {
	return f(ctx)
}

// Empty is a Loader with no items.
type Empty struct{}

// Load returns an empty seed.
func (Empty) Load(context.Context) (*todo.Seed, error) {
	return &todo.Seed{Data: []todo.Item{}}, nil
}

// FileLoader reads a seed file from disk.
type FileLoader struct {
	Path string
}

// Load reads and parses the seed file.
func (f FileLoader) Load(ctx context.Context) (*todo.Seed, error) {
	if f.Path == "" {
		return nil, errors.New("seed file path is empty")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	seed, err := todo.LoadSeed(f.Path)
	if err != nil {
		return nil, err
	}
	if seed.Data == nil {
		return nil, fmt.Errorf("seed file %s: missing data", f.Path)
	}
	return seed, nil
}

// HTTPLoader fetches seed data with a GET request.
type HTTPLoader struct {
	URL    string
	Client *http.Client
}

// Load performs the request and decodes the response body.
func (h HTTPLoader) Load(ctx context.Context) (*todo.Seed, error) {
	if h.URL == "" {
		return nil, errors.New("seed url is empty")
	}
	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build seed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch seed data: %w", err)
	}
	defer resp.Body.Close()

	// One byte past the limit tells a full payload from a cut-off one.
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read seed response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet := body[:min(len(body), 512)]
		return nil, fmt.Errorf("fetch seed data: unexpected status %s: %s", resp.Status, strings.TrimSpace(string(snippet)))
	}
	if len(body) > maxResponseBytes {
		return nil, ErrResponseTooLarge
	}

	seed, err := todo.ParseSeed(body)
	if err != nil {
		return nil, err
	}
	if seed.Data == nil {
		return nil, errors.New("seed response: missing data")
	}
	return seed, nil
}

// Timeout bounds each call to the wrapped loader. A zero duration disables
// the limit.
func Timeout(l Loader, d time.Duration) Loader {
	if d <= 0 {
		return l
	}
	return Func(func(ctx context.Context) (*todo.Seed, error) {
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()
		return l.Load(ctx)
	})
}

type onceLoader struct {
	once sync.Once
	l    Loader
	seed *todo.Seed
	err  error
}

// Once wraps l so that it runs at most one time. Later calls return the
// first result.
func Once(l Loader) Loader {
	return &onceLoader{l: l}
}

func (o *onceLoader) Load(ctx context.Context) (*todo.Seed, error) {
	o.once.Do(func() {
		o.seed, o.err = o.l.Load(ctx)
	})
	return o.seed, o.err
}

// New picks a loader from cfg: the seed URL when set, otherwise the seed file
// when it exists, otherwise Empty.
func New(cfg *config.Config) Loader {
	var l Loader
	switch {
	case cfg.SeedURL != "":
		l = HTTPLoader{URL: cfg.SeedURL}
	case fileExists(cfg.SeedFile):
		l = FileLoader{Path: cfg.SeedFile}
	default:
		l = Empty{}
	}
	return Once(Timeout(l, cfg.FetchTimeout()))
}

// Describe names the seed source New picks for cfg.
func Describe(cfg *config.Config) string {
	switch {
	case cfg.SeedURL != "":
		return cfg.SeedURL
	case fileExists(cfg.SeedFile):
		return cfg.SeedFile
	default:
		return "none"
	}
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
