// Package file provides a JSON-file-backed implementation of the record
// source port. The file is watched with fsnotify so edits made while the
// application runs become visible to subsequent queries; in-flight
// queries keep their snapshot.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/RonaldoArSan/clinicflow25-sub001/internal/core/domain"
	"github.com/RonaldoArSan/clinicflow25-sub001/internal/core/ports/driven"
	"github.com/RonaldoArSan/clinicflow25-sub001/internal/logger"
)

// reloadDebounce is how long to wait after the last write event before
// reloading, since editors fire several events per save.
const reloadDebounce = 300 * time.Millisecond

// Ensure RecordSource implements the interface.
var _ driven.RecordSource = (*RecordSource)(nil)

// recordsFile is the on-disk shape: a single JSON object with one list of
// tagged records.
type recordsFile struct {
	Records []domain.Record `json:"records"`
}

// RecordSource serves snapshots from a JSON records file.
type RecordSource struct {
	mu      sync.RWMutex
	path    string
	records map[domain.EntityType][]domain.Record

	watcher     *fsnotify.Watcher
	reloadTimer *time.Timer
	timerMu     sync.Mutex
	done        chan struct{}
}

// NewRecordSource loads the records file and starts watching it for
// changes. Close must be called to release the watcher.
func NewRecordSource(path string) (*RecordSource, error) {
	s := &RecordSource{
		path: path,
		done: make(chan struct{}),
	}

	if err := s.reload(); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	// Watch the directory: editors replace files on save, which would
	// drop a watch on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}
	s.watcher = watcher

	go s.watch()
	return s, nil
}

// Snapshot returns an immutable view of the currently loaded records.
func (s *RecordSource) Snapshot(_ context.Context) (driven.RecordSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	copied := make(map[domain.EntityType][]domain.Record, len(s.records))
	for t, list := range s.records {
		dup := make([]domain.Record, len(list))
		copy(dup, list)
		copied[t] = dup
	}
	return snapshot(copied), nil
}

// Len returns the total number of loaded records.
func (s *RecordSource) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, list := range s.records {
		n += len(list)
	}
	return n
}

// Reload re-reads the records file immediately.
func (s *RecordSource) Reload() error {
	return s.reload()
}

// Close stops the file watcher.
func (s *RecordSource) Close() error {
	close(s.done)

	s.timerMu.Lock()
	if s.reloadTimer != nil {
		s.reloadTimer.Stop()
	}
	s.timerMu.Unlock()

	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}

// reload parses the records file and swaps in the new record set.
func (s *RecordSource) reload() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("reading records file: %w", err)
	}

	var parsed recordsFile
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("parsing records file %s: %w", s.path, err)
	}

	records := make(map[domain.EntityType][]domain.Record)
	for _, rec := range parsed.Records {
		if !rec.Type.Valid() {
			logger.Warn("Skipping record %q with unknown type %q", rec.ID, rec.Type)
			continue
		}
		records[rec.Type] = append(records[rec.Type], rec)
	}

	s.mu.Lock()
	s.records = records
	s.mu.Unlock()

	logger.Debug("Loaded %d records from %s", len(parsed.Records), s.path)
	return nil
}

// watch reacts to filesystem events on the records file, debouncing
// rapid event bursts into a single reload.
func (s *RecordSource) watch() {
	for {
		select {
		case <-s.done:
			return

		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(s.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			s.timerMu.Lock()
			if s.reloadTimer != nil {
				s.reloadTimer.Stop()
			}
			s.reloadTimer = time.AfterFunc(reloadDebounce, func() {
				if err := s.reload(); err != nil {
					logger.Warn("Reloading records failed: %v", err)
				}
			})
			s.timerMu.Unlock()

		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("Records watcher error: %v", err)
		}
	}
}

// snapshot implements driven.RecordSnapshot over a frozen map.
type snapshot map[domain.EntityType][]domain.Record

func (s snapshot) Records(t domain.EntityType) []domain.Record {
	return s[t]
}
