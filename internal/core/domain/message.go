package domain

import (
	"context"
	"time"
)

// Message is a contact-form submission.
type Message struct {
	ID         string
	Name       string
	Email      string
	Subject    string
	Body       string
	ReceivedAt time.Time
}

// MessageRepository defines the data-access contract for contact messages.
// Implementations live in internal/core/repository (Core layer).
// The Logic layer depends on this interface only — never on SQL or pgx directly.
type MessageRepository interface {
	// Create inserts a new message.
	Create(ctx context.Context, msg Message) error

	// List returns up to limit messages, newest first.
	List(ctx context.Context, limit int) ([]Message, error)

	// Count returns the total number of stored messages.
	Count(ctx context.Context) (int, error)
}
