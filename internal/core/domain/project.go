package domain

import (
	"context"
	"time"
)

// Repository is a read-only description of a remote source-code repository.
// Records are request-scoped: the service never mutates or persists them.
type Repository struct {
	ID          int64
	Name        string
	FullName    string
	HTMLURL     string
	Description string
	Homepage    string
	Stars       int
	Forks       int
	// Language is the primary language, or empty when the hosting API
	// reports none.
	Language  string
	Topics    []string
	UpdatedAt time.Time
}

// ProjectSource lists repositories for the project showcase.
//
// List operations never fail the caller: transport and status errors are
// logged and normalized to an empty list, so pages degrade to their
// empty state instead of erroring.
type ProjectSource interface {
	// ListStarred returns repositories the user has starred.
	ListStarred(ctx context.Context, username string) []Repository

	// ListOwned returns the user's own repositories, most recently
	// updated first.
	ListOwned(ctx context.Context, username string) []Repository

	// Get returns a single repository, or nil when it cannot be fetched.
	Get(ctx context.Context, owner, name string) *Repository
}
