package services

import (
	"sync"
	"time"

	"cwdp/internal/models"
)

// ProgressTracker reports a synthesized upload progress. The percentage
// climbs by a fixed step on a timer until it reaches a ceiling, jumps to 100
// when the upload finishes and drops to 0 when it fails. It does not measure
// bytes transferred.
type ProgressTracker struct {
	step     int
	ceiling  int
	interval time.Duration
	retain   time.Duration

	mu      sync.Mutex
	entries map[string]*progressEntry
}

type progressEntry struct {
	percent int
	done    bool
	failed  bool
	stop    chan struct{}
}

func NewProgressTracker() *ProgressTracker {
	return &ProgressTracker{
		step:     10,
		ceiling:  90,
		interval: 200 * time.Millisecond,
		retain:   time.Minute,
		entries:  make(map[string]*progressEntry),
	}
}

// Start begins ticking progress for id. An empty id is ignored.
func (t *ProgressTracker) Start(id string) {
	if id == "" {
		return
	}
	entry := &progressEntry{stop: make(chan struct{})}

	t.mu.Lock()
	if old, ok := t.entries[id]; ok && !old.done && !old.failed {
		close(old.stop)
	}
	t.entries[id] = entry
	t.mu.Unlock()

	go t.tick(id, entry)
}

func (t *ProgressTracker) tick(id string, entry *progressEntry) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-entry.stop:
			return
		case <-ticker.C:
			t.mu.Lock()
			if entry.percent+t.step >= t.ceiling {
				entry.percent = t.ceiling
				t.mu.Unlock()
				return
			}
			entry.percent += t.step
			t.mu.Unlock()
		}
	}
}

func (t *ProgressTracker) Complete(id string) {
	t.finish(id, false)
}

func (t *ProgressTracker) Fail(id string) {
	t.finish(id, true)
}

func (t *ProgressTracker) finish(id string, failed bool) {
	if id == "" {
		return
	}
	t.mu.Lock()
	entry, ok := t.entries[id]
	if !ok || entry.done || entry.failed {
		t.mu.Unlock()
		return
	}
	close(entry.stop)
	if failed {
		entry.failed = true
		entry.percent = 0
	} else {
		entry.done = true
		entry.percent = 100
	}
	t.mu.Unlock()

	time.AfterFunc(t.retain, func() {
		t.mu.Lock()
		if t.entries[id] == entry {
			delete(t.entries, id)
		}
		t.mu.Unlock()
	})
}

func (t *ProgressTracker) Get(id string) (models.UploadProgress, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry, ok := t.entries[id]
	if !ok {
		return models.UploadProgress{}, false
	}
	return models.UploadProgress{
		ID:      id,
		Percent: entry.percent,
		Done:    entry.done,
		Failed:  entry.failed,
	}, true
}
