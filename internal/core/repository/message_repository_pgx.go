package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gustavosilvabr/portfolio-service/internal/core/domain"
)

// PgxMessageRepository implements domain.MessageRepository using pgxpool.
type PgxMessageRepository struct {
	pool *pgxpool.Pool
}

// NewMessageRepository creates a new PgxMessageRepository.
func NewMessageRepository(pool *pgxpool.Pool) *PgxMessageRepository {
	return &PgxMessageRepository{pool: pool}
}

// Create inserts a new contact message.
func (r *PgxMessageRepository) Create(ctx context.Context, msg domain.Message) error {
	query := `
		INSERT INTO messages (id, name, email, subject, body, received_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		msg.ID, msg.Name, msg.Email, msg.Subject, msg.Body, msg.ReceivedAt,
	)
	return err
}

// List returns up to limit messages, newest first.
func (r *PgxMessageRepository) List(ctx context.Context, limit int) ([]domain.Message, error) {
	query := `
		SELECT id, name, email, subject, body, received_at
		FROM messages
		ORDER BY received_at DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var msg domain.Message
		if err := rows.Scan(
			&msg.ID, &msg.Name, &msg.Email, &msg.Subject, &msg.Body, &msg.ReceivedAt,
		); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}

	return messages, rows.Err()
}

// Count returns the total number of stored messages.
func (r *PgxMessageRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM messages`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
