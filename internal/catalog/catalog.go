// Package catalog tracks provenance for generated artifacts: one resource
// row per file written, associating it with its owning agent, storage class
// and location.
package catalog

import (
	"context"
	"errors"
	"time"
)

// Storage classes for a registered resource.
const (
	StorageLocal = "FILE"
	StorageS3    = "S3"
)

// ChannelOutput marks resources produced by an agent (as opposed to inputs).
const ChannelOutput = "OUTPUT"

var ErrSessionClosed = errors.New("catalog: session closed")

// Resource is one catalog row. Rows are created once per successfully
// written file and never mutated afterwards.
type Resource struct {
	FileName    string
	AgentID     string
	Channel     string
	StorageType string
	Path        string
	Size        int64
	CreatedAt   time.Time
}

// Store produces transactional sessions against the catalog. Each file
// persist opens its own session; sessions are never shared across files.
type Store interface {
	Begin(ctx context.Context) (Session, error)
}

// Session is a single catalog transaction. Close must be safe on every exit
// path, including after Commit and after errors.
type Session interface {
	AddResource(ctx context.Context, res *Resource) error
	Commit(ctx context.Context) error
	Close() error
}
