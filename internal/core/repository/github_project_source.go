package repository

import (
	"context"

	"github.com/google/go-github/v82/github"

	"github.com/gustavosilvabr/portfolio-service/internal/core/domain"
	"github.com/gustavosilvabr/portfolio-service/internal/logger"
)

// GitHubProjectSource implements domain.ProjectSource against the GitHub
// REST API. Per the ProjectSource contract, list failures are logged and
// normalized to an empty list so the showcase degrades to its empty state.
type GitHubProjectSource struct {
	client *github.Client
}

// NewProjectSource creates a GitHubProjectSource. The token is optional;
// unauthenticated requests work for public data within rate limits.
func NewProjectSource(token string) *GitHubProjectSource {
	client := github.NewClient(nil)
	if token != "" {
		client = client.WithAuthToken(token)
	}
	return &GitHubProjectSource{client: client}
}

// NewProjectSourceWithClient creates a GitHubProjectSource around an
// existing client. Exposed for tests that point the client at a local server.
func NewProjectSourceWithClient(client *github.Client) *GitHubProjectSource {
	return &GitHubProjectSource{client: client}
}

// ListStarred returns repositories the user has starred.
func (s *GitHubProjectSource) ListStarred(ctx context.Context, username string) []domain.Repository {
	starred, _, err := s.client.Activity.ListStarred(ctx, username, &github.ActivityListStarredOptions{})
	if err != nil {
		logger.FromContext(ctx).Warn().
			Err(err).
			Str("username", username).
			Msg("Failed to list starred repositories")
		return []domain.Repository{}
	}

	repos := make([]domain.Repository, 0, len(starred))
	for _, star := range starred {
		if star.Repository == nil {
			continue
		}
		repos = append(repos, toRepository(star.Repository))
	}
	return repos
}

// ListOwned returns the user's repositories, most recently updated first.
func (s *GitHubProjectSource) ListOwned(ctx context.Context, username string) []domain.Repository {
	owned, _, err := s.client.Repositories.ListByUser(ctx, username, &github.RepositoryListByUserOptions{
		Sort:      "updated",
		Direction: "desc",
	})
	if err != nil {
		logger.FromContext(ctx).Warn().
			Err(err).
			Str("username", username).
			Msg("Failed to list user repositories")
		return []domain.Repository{}
	}

	repos := make([]domain.Repository, 0, len(owned))
	for _, repo := range owned {
		repos = append(repos, toRepository(repo))
	}
	return repos
}

// Get returns a single repository, or nil when it cannot be fetched.
func (s *GitHubProjectSource) Get(ctx context.Context, owner, name string) *domain.Repository {
	repo, _, err := s.client.Repositories.Get(ctx, owner, name)
	if err != nil {
		logger.FromContext(ctx).Warn().
			Err(err).
			Str("owner", owner).
			Str("repo", name).
			Msg("Failed to fetch repository")
		return nil
	}

	out := toRepository(repo)
	return &out
}

func toRepository(repo *github.Repository) domain.Repository {
	return domain.Repository{
		ID:          repo.GetID(),
		Name:        repo.GetName(),
		FullName:    repo.GetFullName(),
		HTMLURL:     repo.GetHTMLURL(),
		Description: repo.GetDescription(),
		Homepage:    repo.GetHomepage(),
		Stars:       repo.GetStargazersCount(),
		Forks:       repo.GetForksCount(),
		Language:    repo.GetLanguage(),
		Topics:      repo.Topics,
		UpdatedAt:   repo.GetUpdatedAt().Time,
	}
}
