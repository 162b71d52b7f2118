package render

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const pattern = "*.html"

// Templates is a parsed page set that can be swapped while serving.
type Templates struct {
	mu   sync.RWMutex
	tmpl *template.Template
	fsys fs.FS
	dir  string
	fmap template.FuncMap
}

func parse(fsys fs.FS, dir string, fmap template.FuncMap) (*template.Template, error) {
	tmpl, err := template.New("").Funcs(fmap).ParseFS(fsys, filepath.ToSlash(filepath.Join(dir, pattern)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}

// New parses every page template in dir of fsys.
func New(fsys fs.FS, dir string, fmap template.FuncMap) (*Templates, error) {
	tmpl, err := parse(fsys, dir, fmap)
	if err != nil {
		return nil, err
	}
	return &Templates{tmpl: tmpl, fsys: fsys, dir: dir, fmap: fmap}, nil
}

// NewFromDir parses templates from a directory on disk.
func NewFromDir(dir string, fmap template.FuncMap) (*Templates, error) {
	return New(os.DirFS(dir), ".", fmap)
}

func (t *Templates) ExecuteTemplate(w io.Writer, name string, data any) error {
	t.mu.RLock()
	tmpl := t.tmpl
	t.mu.RUnlock()
	return tmpl.ExecuteTemplate(w, name, data)
}

// Reload re-parses the set. A broken edit keeps the previous set in place.
func (t *Templates) Reload() error {
	tmpl, err := parse(t.fsys, t.dir, t.fmap)
	if err != nil {
		return err
	}
	t.mu.Lock()
	t.tmpl = tmpl
	t.mu.Unlock()
	return nil
}

// Watch reloads the set whenever a file in dir changes, until ctx is done.
func (t *Templates) Watch(ctx context.Context, dir string, logger *zap.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create template watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	go func() {
		defer watcher.Close()

		const debounce = 200 * time.Millisecond
		var timer *time.Timer
		defer func() {
			if timer != nil {
				timer.Stop()
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
					!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(debounce, func() {
					if err := t.Reload(); err != nil {
						logger.Error("Template reload failed", zap.Error(err))
						return
					}
					logger.Info("Templates reloaded", zap.String("trigger", event.Name))
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Template watcher error", zap.Error(err))
			}
		}
	}()
	return nil
}
