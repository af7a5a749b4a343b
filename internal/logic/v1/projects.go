package v1

import (
	"context"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/gustavosilvabr/portfolio-service/internal/core/domain"
	"github.com/gustavosilvabr/portfolio-service/middleware"
)

// maxVisibleTopics limits how many topics a project card shows before
// collapsing the rest into a "+N" badge.
const maxVisibleTopics = 3

// languageColors maps a repository's primary language to its badge color.
var languageColors = map[string]string{
	"JavaScript": "#f1e05a",
	"TypeScript": "#3178c6",
	"HTML":       "#e34c26",
	"CSS":        "#563d7c",
	"Python":     "#3572a5",
	"Java":       "#b07219",
	"C#":         "#178600",
	"PHP":        "#4f5d95",
	"Go":         "#00add8",
	"Ruby":       "#701516",
	"Dart":       "#00b4ab",
	"Swift":      "#f05138",
	"Kotlin":     "#a97bff",
	"Rust":       "#dea584",
}

const defaultLanguageColor = "#8b949e"

// Card is a repository prepared for rendering, with the derived display
// fields a template needs.
type Card struct {
	domain.Repository

	DisplayName   string
	LanguageColor string
	VisibleTopics []string
	ExtraTopics   int
}

// ProjectService fetches repository lists for the showcase, caching each
// list keyed by request identity with a freshness window before refetching.
type ProjectService struct {
	source   domain.ProjectSource
	username string
	cache    *expirable.LRU[string, []domain.Repository]
}

// NewProjectService creates a ProjectService for the given account. The
// ttl is the cache freshness window (5 minutes in production).
func NewProjectService(source domain.ProjectSource, username string, ttl time.Duration) *ProjectService {
	return &ProjectService{
		source:   source,
		username: username,
		cache:    expirable.NewLRU[string, []domain.Repository](8, nil, ttl),
	}
}

// Starred returns the account's starred repositories, from cache when fresh.
func (s *ProjectService) Starred(ctx context.Context) []domain.Repository {
	return s.cached(ctx, "starred:"+s.username, s.source.ListStarred)
}

// Owned returns the account's own repositories, from cache when fresh.
func (s *ProjectService) Owned(ctx context.Context) []domain.Repository {
	return s.cached(ctx, "owned:"+s.username, s.source.ListOwned)
}

// Detail returns one repository of the account, bypassing the cache.
func (s *ProjectService) Detail(ctx context.Context, name string) *domain.Repository {
	return s.source.Get(ctx, s.username, name)
}

func (s *ProjectService) cached(ctx context.Context, key string, fetch func(context.Context, string) []domain.Repository) []domain.Repository {
	ctx, span := middleware.StartSpan(ctx, "projects.list", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("cache.key", key),
	))
	defer span.End()

	if repos, ok := s.cache.Get(key); ok {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return repos
	}

	repos := fetch(ctx, s.username)
	span.SetAttributes(
		attribute.Bool("cache.hit", false),
		attribute.Int("repos.count", len(repos)),
	)
	// Failures come back as empty lists and are cached like any result;
	// the freshness window doubles as the retry backoff.
	s.cache.Add(key, repos)
	return repos
}

// Cards derives the display fields for a list of repositories.
func Cards(repos []domain.Repository) []Card {
	cards := make([]Card, 0, len(repos))
	for _, repo := range repos {
		cards = append(cards, NewCard(repo))
	}
	return cards
}

// NewCard derives the display fields for a single repository.
func NewCard(repo domain.Repository) Card {
	visible := repo.Topics
	extra := 0
	if len(visible) > maxVisibleTopics {
		extra = len(visible) - maxVisibleTopics
		visible = visible[:maxVisibleTopics]
	}
	return Card{
		Repository:    repo,
		DisplayName:   DisplayName(repo.Name),
		LanguageColor: LanguageColor(repo.Language),
		VisibleTopics: visible,
		ExtraTopics:   extra,
	}
}

// DisplayName formats a repository name for display: dashes become spaces
// and each word is capitalized.
func DisplayName(name string) string {
	words := strings.Split(strings.ReplaceAll(name, "-", " "), " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		first, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(first)) + word[size:]
	}
	return strings.Join(words, " ")
}

// LanguageColor returns the badge color for a language, with a neutral
// fallback for unknown or missing languages.
func LanguageColor(language string) string {
	if color, ok := languageColors[language]; ok {
		return color
	}
	return defaultLanguageColor
}

// Languages returns the distinct languages present in repos, "all" first,
// in order of first appearance. Repositories without a language are skipped.
func Languages(repos []domain.Repository) []string {
	languages := []string{"all"}
	seen := make(map[string]bool)
	for _, repo := range repos {
		if repo.Language == "" || seen[repo.Language] {
			continue
		}
		seen[repo.Language] = true
		languages = append(languages, repo.Language)
	}
	return languages
}

// FilterByLanguage returns the repositories whose primary language matches.
// The "all" filter (or an empty one) passes everything through.
func FilterByLanguage(repos []domain.Repository, language string) []domain.Repository {
	if language == "" || language == "all" {
		return repos
	}
	filtered := make([]domain.Repository, 0, len(repos))
	for _, repo := range repos {
		if repo.Language == language {
			filtered = append(filtered, repo)
		}
	}
	return filtered
}
