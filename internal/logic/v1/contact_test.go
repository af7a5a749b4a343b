package v1

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gustavosilvabr/portfolio-service/internal/core/domain"
	"github.com/gustavosilvabr/portfolio-service/internal/core/repository"
)

func TestContactSubmitValidation(t *testing.T) {
	tests := []struct {
		name    string
		sub     ContactSubmission
		wantErr error
	}{
		{
			name:    "all fields missing",
			sub:     ContactSubmission{},
			wantErr: ErrMissingFields,
		},
		{
			name:    "missing email",
			sub:     ContactSubmission{Name: "Ana", Message: "Hello"},
			wantErr: ErrMissingFields,
		},
		{
			name:    "missing message",
			sub:     ContactSubmission{Name: "Ana", Email: "ana@example.com"},
			wantErr: ErrMissingFields,
		},
		{
			name:    "whitespace-only message",
			sub:     ContactSubmission{Name: "Ana", Email: "ana@example.com", Message: "   "},
			wantErr: ErrMissingFields,
		},
		{
			name:    "email without domain",
			sub:     ContactSubmission{Name: "Ana", Email: "ana@", Message: "Hello"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "email without at sign",
			sub:     ContactSubmission{Name: "Ana", Email: "ana.example.com", Message: "Hello"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "email with spaces",
			sub:     ContactSubmission{Name: "Ana", Email: "ana maria@example.com", Message: "Hello"},
			wantErr: ErrInvalidEmail,
		},
		{
			name: "valid submission",
			sub:  ContactSubmission{Name: "Ana", Email: "ana@example.com", Subject: "Hi", Message: "Hello"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			messages := repository.NewMemoryMessageRepository()
			svc := NewContactService(messages, nopNotifier{})

			err := svc.Submit(context.Background(), tt.sub)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, svc.Count(context.Background()), "invalid submission must not be stored")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, svc.Count(context.Background()))
		})
	}
}

func TestContactSubmitStoresMessage(t *testing.T) {
	messages := repository.NewMemoryMessageRepository()
	svc := NewContactService(messages, nopNotifier{})

	err := svc.Submit(context.Background(), ContactSubmission{
		Name:    "  Ana  ",
		Email:   " ana@example.com ",
		Subject: "Project inquiry",
		Message: "I'd like to talk about a project.",
	})
	require.NoError(t, err)

	stored := svc.Recent(context.Background(), 10)
	require.Len(t, stored, 1)
	assert.NotEmpty(t, stored[0].ID)
	assert.Equal(t, "Ana", stored[0].Name)
	assert.Equal(t, "ana@example.com", stored[0].Email)
	assert.Equal(t, "Project inquiry", stored[0].Subject)
	assert.WithinDuration(t, time.Now().UTC(), stored[0].ReceivedAt, time.Minute)
}

func TestContactRecentNewestFirst(t *testing.T) {
	messages := repository.NewMemoryMessageRepository()
	svc := NewContactService(messages, nopNotifier{})
	ctx := context.Background()

	for _, body := range []string{"first", "second", "third"} {
		require.NoError(t, svc.Submit(ctx, ContactSubmission{
			Name: "Ana", Email: "ana@example.com", Message: body,
		}))
	}

	stored := svc.Recent(ctx, 2)
	require.Len(t, stored, 2)
	assert.Equal(t, "third", stored[0].Body)
	assert.Equal(t, "second", stored[1].Body)
}

type failingMessages struct{}

func (failingMessages) Create(context.Context, domain.Message) error { return assert.AnError }
func (failingMessages) List(context.Context, int) ([]domain.Message, error) {
	return nil, assert.AnError
}
func (failingMessages) Count(context.Context) (int, error) { return 0, assert.AnError }

func TestContactDegradesWhenStoreFails(t *testing.T) {
	svc := NewContactService(failingMessages{}, nopNotifier{})
	ctx := context.Background()

	err := svc.Submit(ctx, ContactSubmission{Name: "Ana", Email: "ana@example.com", Message: "Hello"})
	assert.ErrorIs(t, err, ErrMessageStore)

	// Reads degrade to empty, never error the page.
	assert.Nil(t, svc.Recent(ctx, 10))
	assert.Zero(t, svc.Count(ctx))
}
