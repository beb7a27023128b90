// Package registry counts debug-file assemble requests per file name.
package registry

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
)

// UploadStat is the running total for one debug file name.
type UploadStat struct {
	Name   string `json:"name"`
	Count  int64  `json:"count"`
	Chunks int64  `json:"chunks"`
}

type Registry interface {
	// Register records one assemble request for name made of chunks chunks.
	Register(ctx context.Context, name string, chunks int) error
	// Stats returns all totals sorted by name.
	Stats(ctx context.Context) ([]UploadStat, error)
	Close() error
}

// WriteStats prints the summary shown when the server exits.
func WriteStats(w io.Writer, stats []UploadStat) error {
	if _, err := fmt.Fprintln(w, "Upload stats:"); err != nil {
		return err
	}
	for _, s := range stats {
		if _, err := fmt.Fprintf(w, "  %s: count=%d chunks=%d\n", s.Name, s.Count, s.Chunks); err != nil {
			return err
		}
	}
	return nil
}

// MemoryRegistry keeps totals for the lifetime of the process.
type MemoryRegistry struct {
	mu      sync.Mutex
	uploads map[string]*UploadStat
}

func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{uploads: make(map[string]*UploadStat)}
}

func (m *MemoryRegistry) Register(_ context.Context, name string, chunks int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.uploads[name]
	if !ok {
		s = &UploadStat{Name: name}
		m.uploads[name] = s
	}
	s.Count++
	s.Chunks += int64(chunks)
	return nil
}

func (m *MemoryRegistry) Stats(_ context.Context) ([]UploadStat, error) {
	m.mu.Lock()
	out := make([]UploadStat, 0, len(m.uploads))
	for _, s := range m.uploads {
		out = append(out, *s)
	}
	m.mu.Unlock()

	sortStats(out)
	return out, nil
}

func (m *MemoryRegistry) Close() error {
	return nil
}

func sortStats(stats []UploadStat) {
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Name < stats[j].Name
	})
}
