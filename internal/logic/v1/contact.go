package v1

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/gustavosilvabr/portfolio-service/internal/core/domain"
	"github.com/gustavosilvabr/portfolio-service/internal/logger"
	"github.com/gustavosilvabr/portfolio-service/middleware"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactSubmission is one contact-form post before validation.
type ContactSubmission struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactService validates and stores contact-form submissions.
type ContactService struct {
	messages domain.MessageRepository
	notifier domain.Notifier
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(messages domain.MessageRepository, notifier domain.Notifier) *ContactService {
	return &ContactService{messages: messages, notifier: notifier}
}

// Submit validates the submission and stores it as a message. Validation
// failures are expected user errors: ErrMissingFields or ErrInvalidEmail.
func (s *ContactService) Submit(ctx context.Context, sub ContactSubmission) error {
	ctx, span := middleware.StartSpan(ctx, "contact.submit", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	name := strings.TrimSpace(sub.Name)
	email := strings.TrimSpace(sub.Email)
	body := strings.TrimSpace(sub.Message)

	if name == "" || email == "" || body == "" {
		span.SetAttributes(attribute.Bool("submission.valid", false))
		s.notifier.Failure("Missing information", "Please fill in all required fields.")
		return fmt.Errorf("validate contact submission: %w", ErrMissingFields)
	}
	if !emailPattern.MatchString(email) {
		span.SetAttributes(attribute.Bool("submission.valid", false))
		s.notifier.Failure("Invalid email", "Please enter a valid email address.")
		return fmt.Errorf("validate contact email %q: %w", email, ErrInvalidEmail)
	}

	msg := domain.Message{
		ID:         uuid.NewString(),
		Name:       name,
		Email:      email,
		Subject:    strings.TrimSpace(sub.Subject),
		Body:       body,
		ReceivedAt: time.Now().UTC(),
	}

	if err := s.messages.Create(ctx, msg); err != nil {
		span.RecordError(err)
		logger.FromContext(ctx).Error().Err(err).Msg("Failed to store contact message")
		return fmt.Errorf("store contact message: %w", ErrMessageStore)
	}

	span.SetAttributes(attribute.Bool("submission.valid", true))
	s.notifier.Success("Message sent", "Thanks for reaching out, I'll get back to you soon.")
	return nil
}

// Recent returns up to limit stored messages, newest first. Storage errors
// degrade to an empty list so the admin view renders its empty state.
func (s *ContactService) Recent(ctx context.Context, limit int) []domain.Message {
	messages, err := s.messages.List(ctx, limit)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("Failed to list contact messages")
		return nil
	}
	return messages
}

// Count returns the total number of stored messages, or zero on error.
func (s *ContactService) Count(ctx context.Context) int {
	count, err := s.messages.Count(ctx)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("Failed to count contact messages")
		return 0
	}
	return count
}
