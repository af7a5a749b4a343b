package repository

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/go-github/v82/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const starredBody = `[
	{"repo": {
		"id": 1,
		"name": "cool-lib",
		"full_name": "someone/cool-lib",
		"html_url": "https://github.com/someone/cool-lib",
		"description": "A cool library",
		"stargazers_count": 120,
		"forks_count": 14,
		"language": "Go",
		"topics": ["go", "library"],
		"updated_at": "2026-05-01T10:00:00Z"
	}}
]`

const ownedBody = `[
	{
		"id": 2,
		"name": "portfolio-website",
		"full_name": "gustavosilvabr/portfolio-website",
		"html_url": "https://github.com/gustavosilvabr/portfolio-website",
		"description": "My portfolio",
		"homepage": "https://gustavosilva.dev",
		"stargazers_count": 5,
		"forks_count": 1,
		"language": "TypeScript",
		"topics": ["react", "portfolio"],
		"updated_at": "2026-06-01T10:00:00Z"
	}
]`

func newTestSource(t *testing.T, handler http.Handler) *GitHubProjectSource {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := github.NewClient(srv.Client())
	base, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	client.BaseURL = base

	return NewProjectSourceWithClient(client)
}

func TestListStarred(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/gustavosilvabr/starred", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(starredBody))
	})
	source := newTestSource(t, mux)

	repos := source.ListStarred(t.Context(), "gustavosilvabr")

	require.Len(t, repos, 1)
	assert.Equal(t, int64(1), repos[0].ID)
	assert.Equal(t, "cool-lib", repos[0].Name)
	assert.Equal(t, "Go", repos[0].Language)
	assert.Equal(t, 120, repos[0].Stars)
	assert.Equal(t, []string{"go", "library"}, repos[0].Topics)
}

func TestListOwnedPassesSortParams(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/gustavosilvabr/repos", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "updated", r.URL.Query().Get("sort"))
		assert.Equal(t, "desc", r.URL.Query().Get("direction"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(ownedBody))
	})
	source := newTestSource(t, mux)

	repos := source.ListOwned(t.Context(), "gustavosilvabr")

	require.Len(t, repos, 1)
	assert.Equal(t, "portfolio-website", repos[0].Name)
	assert.Equal(t, "https://gustavosilva.dev", repos[0].Homepage)
}

func TestListNormalizesFailuresToEmpty(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "not found", status: http.StatusNotFound, body: `{"message":"Not Found"}`},
		{name: "rate limited", status: http.StatusForbidden, body: `{"message":"rate limit exceeded"}`},
		{name: "server error", status: http.StatusInternalServerError, body: ``},
		{name: "malformed payload", status: http.StatusOK, body: `{not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := newTestSource(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))

			starred := source.ListStarred(t.Context(), "gustavosilvabr")
			owned := source.ListOwned(t.Context(), "gustavosilvabr")

			assert.Empty(t, starred)
			assert.NotNil(t, starred, "failures normalize to an empty list, not nil")
			assert.Empty(t, owned)
			assert.NotNil(t, owned)
		})
	}
}

func TestGetReturnsNilOnError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/gustavosilvabr/exists", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 3, "name": "exists", "language": "Go"}`))
	})
	source := newTestSource(t, mux)

	repo := source.Get(t.Context(), "gustavosilvabr", "exists")
	require.NotNil(t, repo)
	assert.Equal(t, "exists", repo.Name)

	assert.Nil(t, source.Get(t.Context(), "gustavosilvabr", "missing"))
}
