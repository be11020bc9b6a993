// Package dedupe tracks which keys (roster names, player IDs) have already
// been seen so that every pitcher enters a cohort at most once.
package dedupe

import (
	"context"
	"strings"
	"sync"
)

// Deduper records seen keys.
type Deduper interface {
	// SeenAndRecord atomically checks if key was seen and records it if not.
	// Returns true if key was already seen, false if it was newly recorded.
	SeenAndRecord(ctx context.Context, key string) bool
}

// setDeduper implements Deduper on a map guarded by a mutex.
type setDeduper struct {
	mu        sync.Mutex
	seen      map[string]struct{}
	normalize func(string) string
}

// NewSetDeduper creates a new deduper with configuration options.
func NewSetDeduper(opts ...Option) Deduper {
	d := &setDeduper{
		normalize: strings.TrimSpace,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.seen = make(map[string]struct{})
	return d
}

// SeenAndRecord atomically checks if key was seen and records it if not.
func (d *setDeduper) SeenAndRecord(_ context.Context, key string) bool {
	k := d.normalize(key)

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.seen[k]; ok {
		return true
	}
	d.seen[k] = struct{}{}
	return false
}

// Unique returns keys with duplicates and blanks removed, keeping the first
// occurrence of each in its original position.
func Unique(ctx context.Context, keys []string, opts ...Option) []string {
	d := NewSetDeduper(opts...)
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k == "" || d.SeenAndRecord(ctx, k) {
			continue
		}
		out = append(out, k)
	}
	return out
}
