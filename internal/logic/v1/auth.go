package v1

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/bcrypt"

	"github.com/gustavosilvabr/portfolio-service/internal/core/domain"
	"github.com/gustavosilvabr/portfolio-service/internal/logger"
	"github.com/gustavosilvabr/portfolio-service/middleware"
)

// GateState is the session gate's position in its state machine.
type GateState string

const (
	StateUnauthenticated GateState = "unauthenticated"
	StateChecking        GateState = "checking"
	StateAuthenticated   GateState = "authenticated"
)

// CredentialVerifier checks a credential pair. The fixed-pair implementation
// below simulates a remote round-trip; swapping in a real backend changes no
// caller.
type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) bool
}

// FixedPairVerifier verifies against a single bcrypt-hashed credential pair
// after a fixed delay. It is explicitly a demo placeholder, not a security
// mechanism.
type FixedPairVerifier struct {
	username     string
	passwordHash []byte
	delay        time.Duration
}

// NewFixedPairVerifier builds a verifier for the given pair. When hash is
// empty the plaintext password is hashed at construction.
func NewFixedPairVerifier(username, password, hash string, delay time.Duration) (*FixedPairVerifier, error) {
	h := []byte(hash)
	if len(h) == 0 {
		generated, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		h = generated
	}
	return &FixedPairVerifier{username: username, passwordHash: h, delay: delay}, nil
}

// Verify compares the supplied pair against the fixed one. The delay runs to
// completion regardless of context; a login is never cancelled mid-check.
func (v *FixedPairVerifier) Verify(_ context.Context, username, password string) bool {
	if v.delay > 0 {
		time.Sleep(v.delay)
	}
	if username != v.username {
		return false
	}
	return bcrypt.CompareHashAndPassword(v.passwordHash, []byte(password)) == nil
}

// SessionGate is the single authority over the admin session: it owns the
// live Session, transitions it through login and logout, and mirrors it to
// the persisted record. All other components read the session through
// Current and never mutate it.
type SessionGate struct {
	store    domain.SessionStore
	verifier CredentialVerifier
	notifier domain.Notifier

	mu       sync.RWMutex
	session  domain.Session
	checking bool
	restored bool
}

// NewSessionGate creates a gate in the unauthenticated state. Call Restore
// once at startup before serving traffic.
func NewSessionGate(store domain.SessionStore, verifier CredentialVerifier, notifier domain.Notifier) *SessionGate {
	return &SessionGate{
		store:    store,
		verifier: verifier,
		notifier: notifier,
	}
}

// Restore loads the persisted session record, adopting it as the live
// session when it parses into a well-formed Session. Malformed records are
// discarded with a warning; the session stays at the unauthenticated
// default. Restore never fails the caller.
func (g *SessionGate) Restore(ctx context.Context) {
	ctx, span := middleware.StartSpan(ctx, "session.restore", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	g.mu.Lock()
	defer g.mu.Unlock()
	defer func() { g.restored = true }()

	record, err := g.store.Load()
	if err != nil {
		span.RecordError(err)
		logger.FromContext(ctx).Warn().Err(err).Msg("Failed to read persisted session")
		return
	}
	if record == nil {
		span.SetAttributes(attribute.Bool("session.restored", false))
		return
	}

	var session domain.Session
	if err := json.Unmarshal(record, &session); err != nil || !session.Valid() {
		span.SetAttributes(attribute.Bool("session.restored", false))
		logger.FromContext(ctx).Warn().
			Err(err).
			Msg("Discarding malformed persisted session")
		if delErr := g.store.Delete(); delErr != nil {
			logger.FromContext(ctx).Warn().Err(delErr).Msg("Failed to discard session record")
		}
		return
	}

	g.session = session
	span.SetAttributes(
		attribute.Bool("session.restored", true),
		attribute.Bool("session.authenticated", session.IsAuthenticated),
	)
}

// Login checks the supplied credentials and reports the outcome. On a match
// the session becomes authenticated and is mirrored to the persisted record;
// on a mismatch the session is left untouched. A mismatch is an expected
// outcome, not an error. While a check is in flight the gate is Checking and
// further Login calls report false immediately.
func (g *SessionGate) Login(ctx context.Context, username, password string) bool {
	ctx, span := middleware.StartSpan(ctx, "session.login", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("username", username),
	))
	defer span.End()

	g.mu.Lock()
	if g.checking {
		g.mu.Unlock()
		span.SetAttributes(attribute.Bool("auth.success", false))
		return false
	}
	g.checking = true
	g.mu.Unlock()

	// The verifier models the remote round-trip; the lock is not held while
	// it runs so Current stays readable.
	ok := g.verifier.Verify(ctx, username, password)

	g.mu.Lock()
	defer g.mu.Unlock()
	g.checking = false

	if !ok {
		span.SetAttributes(attribute.Bool("auth.success", false))
		span.AddEvent("authentication.failed")
		g.notifier.Failure("Login failed", "Invalid username or password")
		return false
	}

	g.session = domain.Session{Username: username, IsAuthenticated: true}

	// Mirror to the persisted record (best-effort, don't fail login).
	record, err := json.Marshal(g.session)
	if err == nil {
		err = g.store.Save(record)
	}
	if err != nil {
		span.RecordError(err)
		logger.FromContext(ctx).Warn().Err(err).Msg("Failed to persist session")
	}

	span.SetAttributes(attribute.Bool("auth.success", true))
	span.AddEvent("user.authenticated")
	g.notifier.Success("Login successful", "Welcome to the admin dashboard!")
	return true
}

// Logout resets the session to the unauthenticated default and removes the
// persisted record. Idempotent: logging out while already logged out is a
// no-op beyond re-emitting the reset.
func (g *SessionGate) Logout(ctx context.Context) {
	ctx, span := middleware.StartSpan(ctx, "session.logout", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	g.mu.Lock()
	defer g.mu.Unlock()

	g.session = domain.Session{}
	if err := g.store.Delete(); err != nil {
		span.RecordError(err)
		logger.FromContext(ctx).Warn().Err(err).Msg("Failed to delete persisted session")
	}

	g.notifier.Success("Logged out", "You have been successfully logged out")
}

// Current returns the live session without side effects.
func (g *SessionGate) Current() domain.Session {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.session
}

// State reports the gate's position in its state machine.
func (g *SessionGate) State() GateState {
	g.mu.RLock()
	defer g.mu.RUnlock()
	switch {
	case g.checking:
		return StateChecking
	case g.session.IsAuthenticated:
		return StateAuthenticated
	default:
		return StateUnauthenticated
	}
}

// Restored reports whether Restore has completed. The route guard must not
// decide before restoration has finished.
func (g *SessionGate) Restored() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.restored
}
