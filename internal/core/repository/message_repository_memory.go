package repository

import (
	"context"
	"sync"

	"github.com/gustavosilvabr/portfolio-service/internal/core/domain"
)

// MemoryMessageRepository implements domain.MessageRepository in memory.
// Used when no database is configured, and by tests.
type MemoryMessageRepository struct {
	mu       sync.RWMutex
	messages []domain.Message
}

// NewMemoryMessageRepository creates an empty in-memory repository.
func NewMemoryMessageRepository() *MemoryMessageRepository {
	return &MemoryMessageRepository{}
}

// Create stores the message.
func (r *MemoryMessageRepository) Create(_ context.Context, msg domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
	return nil
}

// List returns up to limit messages, newest first.
func (r *MemoryMessageRepository) List(_ context.Context, limit int) ([]domain.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Message, 0, limit)
	for i := len(r.messages) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.messages[i])
	}
	return out, nil
}

// Count returns the number of stored messages.
func (r *MemoryMessageRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.messages), nil
}
