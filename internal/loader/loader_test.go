package loader

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/nibzard/todolist-go/internal/config"
	"github.com/nibzard/todolist-go/internal/todo"
)

func sampleItems() []todo.Item {
	return []todo.Item{
		{ID: "1", Value: "buy tea", IsDone: true},
		{ID: "2", Value: "buy coffee", IsDone: false},
	}
}

func writeSeed(t *testing.T, dir string, items []todo.Item) string {
	t.Helper()
	path := filepath.Join(dir, "todo-seed.json")
	if err := (&todo.Seed{Data: items}).Save(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFileLoader(t *testing.T) {
	t.Run("reads seed", func(t *testing.T) {
		path := writeSeed(t, t.TempDir(), sampleItems())
		seed, err := FileLoader{Path: path}.Load(context.Background())
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if !reflect.DeepEqual(seed.Data, sampleItems()) {
			t.Errorf("Data: got %+v, want %+v", seed.Data, sampleItems())
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := FileLoader{Path: filepath.Join(t.TempDir(), "nope.json")}.Load(context.Background())
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected ErrNotExist, got %v", err)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		if _, err := (FileLoader{}).Load(context.Background()); err == nil {
			t.Error("expected error for empty path")
		}
	})

	t.Run("missing data key", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.json")
		if err := os.WriteFile(path, []byte(`{"items": []}`), 0644); err != nil {
			t.Fatal(err)
		}
		_, err := FileLoader{Path: path}.Load(context.Background())
		if err == nil || !strings.Contains(err.Error(), "missing data") {
			t.Errorf("expected missing data error, got %v", err)
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		path := writeSeed(t, t.TempDir(), sampleItems())
		if _, err := (FileLoader{Path: path}).Load(ctx); !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}

func TestHTTPLoader(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    []todo.Item
		wantErr string
	}{
		{
			name:   "success",
			status: http.StatusOK,
			body:   `{"data":[{"id":"1","value":"buy tea","isDone":true},{"id":"2","value":"buy coffee","isDone":false}]}`,
			want:   sampleItems(),
		},
		{
			name:   "empty list",
			status: http.StatusOK,
			body:   `{"data":[]}`,
			want:   []todo.Item{},
		},
		{
			name:    "server error",
			status:  http.StatusInternalServerError,
			body:    `{"error":"disk on fire"}`,
			wantErr: "unexpected status",
		},
		{
			name:    "bad json",
			status:  http.StatusOK,
			body:    `{"data":`,
			wantErr: "parse seed data",
		},
		{
			name:    "missing data",
			status:  http.StatusOK,
			body:    `{}`,
			wantErr: "missing data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodGet {
					t.Errorf("method: got %s, want GET", r.Method)
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			seed, err := HTTPLoader{URL: srv.URL, Client: srv.Client()}.Load(context.Background())
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if !reflect.DeepEqual(seed.Data, tt.want) {
				t.Errorf("Data: got %+v, want %+v", seed.Data, tt.want)
			}
		})
	}
}

func TestHTTPLoaderResponseSize(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr error
	}{
		{name: "at the limit", size: maxResponseBytes},
		{name: "over the limit", size: maxResponseBytes + 1, wantErr: ErrResponseTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// A valid document padded with trailing whitespace up to size.
			doc := `{"data":[{"id":"1","value":"buy tea","isDone":true}]}`
			body := doc + strings.Repeat(" ", tt.size-len(doc))
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(body))
			}))
			defer srv.Close()

			seed, err := HTTPLoader{URL: srv.URL}.Load(context.Background())
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if len(seed.Data) != 1 {
				t.Errorf("expected one item, got %+v", seed.Data)
			}
		})
	}
}

func TestHTTPLoaderEmptyURL(t *testing.T) {
	if _, err := (HTTPLoader{}).Load(context.Background()); err == nil {
		t.Error("expected error for empty url")
	}
}

func TestTimeout(t *testing.T) {
	slow := Func(func(ctx context.Context) (*todo.Seed, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})

	_, err := Timeout(slow, 10*time.Millisecond).Load(context.Background())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected DeadlineExceeded, got %v", err)
	}

	if got := Timeout(Empty{}, 0); !reflect.DeepEqual(got, Empty{}) {
		t.Errorf("zero timeout should return the loader unchanged, got %T", got)
	}
}

func TestOnce(t *testing.T) {
	t.Run("success is cached", func(t *testing.T) {
		calls := 0
		l := Once(Func(func(context.Context) (*todo.Seed, error) {
			calls++
			return &todo.Seed{Data: sampleItems()}, nil
		}))

		for i := 0; i < 3; i++ {
			seed, err := l.Load(context.Background())
			if err != nil || len(seed.Data) != 2 {
				t.Fatalf("Load #%d: seed=%v err=%v", i, seed, err)
			}
		}
		if calls != 1 {
			t.Errorf("calls: got %d, want 1", calls)
		}
	})

	t.Run("failure is not retried", func(t *testing.T) {
		calls := 0
		boom := errors.New("boom")
		l := Once(Func(func(context.Context) (*todo.Seed, error) {
			calls++
			return nil, boom
		}))

		for i := 0; i < 2; i++ {
			if _, err := l.Load(context.Background()); !errors.Is(err, boom) {
				t.Fatalf("Load #%d: got %v, want boom", i, err)
			}
		}
		if calls != 1 {
			t.Errorf("calls: got %d, want 1", calls)
		}
	})
}

func TestNew(t *testing.T) {
	dir := t.TempDir()
	seedPath := writeSeed(t, dir, sampleItems())

	t.Run("seed file", func(t *testing.T) {
		cfg := &config.Config{SeedFile: seedPath}
		seed, err := New(cfg).Load(context.Background())
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if len(seed.Data) != 2 {
			t.Errorf("expected 2 items, got %d", len(seed.Data))
		}
		if Describe(cfg) != seedPath {
			t.Errorf("Describe: got %q, want %q", Describe(cfg), seedPath)
		}
	})

	t.Run("missing seed file falls back to empty", func(t *testing.T) {
		cfg := &config.Config{SeedFile: filepath.Join(dir, "absent.json")}
		seed, err := New(cfg).Load(context.Background())
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if len(seed.Data) != 0 {
			t.Errorf("expected no items, got %d", len(seed.Data))
		}
		if Describe(cfg) != "none" {
			t.Errorf("Describe: got %q, want none", Describe(cfg))
		}
	})

	t.Run("url wins over file", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data":[{"id":"9","value":"remote","isDone":false}]}`))
		}))
		defer srv.Close()

		cfg := &config.Config{SeedFile: seedPath, SeedURL: srv.URL, FetchTimeoutSeconds: 5}
		seed, err := New(cfg).Load(context.Background())
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if len(seed.Data) != 1 || seed.Data[0].ID != "9" {
			t.Errorf("expected remote seed, got %+v", seed.Data)
		}
	})
}
