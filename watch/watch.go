// Package watch re-parses twee sources as they change on disk, giving
// authors immediate feedback on grammar errors while they edit.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"twee/twee"
)

// Result is delivered after every re-parse attempt. Either Story or Err is
// set.
type Result struct {
	Path  string
	Story *twee.Story
	Err   error
}

// Watcher re-parses matching files on every write, coalescing editor event
// bursts before parsing.
type Watcher struct {
	fsw     *fsnotify.Watcher
	log     *zap.Logger
	settle  time.Duration
	file    string   // exact file to watch, empty when watching a directory
	exts    []string // recognized source suffixes
	results chan Result
}

// New prepares a watcher for path, which may be a single file or a
// directory. exts filters directory events by suffix (".twee" and such).
// Editors usually replace files on save, so the parent directory is watched
// even for a single file.
func New(path string, exts []string, log *zap.Logger) (*Watcher, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("unable to watch %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("unable to create file watcher: %w", err)
	}

	w := &Watcher{
		fsw:     fsw,
		log:     log,
		settle:  250 * time.Millisecond,
		exts:    exts,
		results: make(chan Result, 16),
	}

	dir := path
	if !info.IsDir() {
		dir = filepath.Dir(path)
		w.file = filepath.Clean(path)
	}
	if err := fsw.Add(dir); err != nil {
		return nil, multierr.Append(fmt.Errorf("unable to watch %s: %w", dir, err), fsw.Close())
	}

	log.Info("Watching for changes", zap.String("path", path))
	return w, nil
}

// Results returns the channel re-parse outcomes are delivered on. Slow
// consumers lose oldest results rather than stalling the watch loop.
func (w *Watcher) Results() <-chan Result {
	return w.results
}

// Run blocks, re-parsing on every write or create event until ctx is
// canceled.
func (w *Watcher) Run(ctx context.Context) error {
	pending := make(map[string]struct{})
	timer := time.NewTimer(w.settle)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return w.fsw.Close()
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if !w.matches(ev.Name) {
				continue
			}
			pending[filepath.Clean(ev.Name)] = struct{}{}
			timer.Reset(w.settle)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("File watcher error", zap.Error(err))
		case <-timer.C:
			for name := range pending {
				delete(pending, name)
				w.reparse(name)
			}
		}
	}
}

func (w *Watcher) matches(name string) bool {
	name = filepath.Clean(name)
	if w.file != "" {
		return name == w.file
	}
	for _, ext := range w.exts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

func (w *Watcher) reparse(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		w.log.Warn("Unable to read changed file", zap.String("file", path), zap.Error(err))
		w.emit(Result{Path: path, Err: err})
		return
	}

	began := time.Now()
	story, err := twee.Parse(string(data), w.log)
	if err != nil {
		w.log.Error("Parse failed", zap.String("file", path), zap.Error(err))
		w.emit(Result{Path: path, Err: err})
		return
	}
	w.log.Info("Parsed", zap.String("file", path), zap.Int("passages", story.Len()), zap.Duration("elapsed", time.Since(began)))
	w.emit(Result{Path: path, Story: story})
}

func (w *Watcher) emit(r Result) {
	for {
		select {
		case w.results <- r:
			return
		default:
			// drop the oldest result to make room
			select {
			case <-w.results:
			default:
			}
		}
	}
}
