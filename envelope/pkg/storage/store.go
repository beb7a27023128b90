// Package storage persists decoded envelopes.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned by lookups for unknown envelope IDs.
	ErrNotFound = errors.New("envelope not found")

	// ErrInvalidID is returned for IDs that Save could not have produced.
	ErrInvalidID = errors.New("invalid envelope id")
)

// Record describes one stored envelope.
type Record struct {
	ID   string
	Path string
	Size int
}

// Store saves the decoded text of one envelope under a fresh identifier.
// Implementations must be safe for concurrent use.
type Store interface {
	Save(ctx context.Context, text string) (Record, error)
}

// checkID accepts only the canonical UUID form Save hands out, which keeps
// IDs from naming files outside the store.
func checkID(id string) error {
	u, err := uuid.Parse(id)
	if err != nil || u.String() != id {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}
