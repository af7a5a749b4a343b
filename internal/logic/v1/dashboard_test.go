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

func TestDashboardStats(t *testing.T) {
	source := &countingSource{
		starred: []domain.Repository{{Stars: 12}, {Stars: 30}},
		owned:   []domain.Repository{{Name: "a"}, {Name: "b"}, {Name: "c"}},
	}
	projects := NewProjectService(source, "gustavosilvabr", time.Minute)

	messages := repository.NewMemoryMessageRepository()
	contact := NewContactService(messages, nopNotifier{})
	ctx := context.Background()
	require.NoError(t, contact.Submit(ctx, ContactSubmission{
		Name: "Ana", Email: "ana@example.com", Message: "Hello",
	}))

	stats := NewDashboardService(projects, contact).Stats(ctx)

	assert.Equal(t, 3, stats.Projects)
	assert.Equal(t, 42, stats.Stars)
	assert.Equal(t, 1, stats.Messages)

	// The analytics series are fixture content, one point per month Jan-Jul.
	require.Len(t, stats.PageViewsSeries, 7)
	require.Len(t, stats.MessagesSeries, 7)
	assert.Equal(t, MetricPoint{Label: "Jan", Value: 40}, stats.PageViewsSeries[0])
	assert.Equal(t, MetricPoint{Label: "Jun", Value: 9}, stats.MessagesSeries[5])
	assert.Positive(t, stats.PageViews)
}
