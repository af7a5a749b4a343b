package v1

import "github.com/rs/zerolog/log"

// LogNotifier emits notifications as structured log events. The web layer
// surfaces the same text as flash banners in the rendered pages.
type LogNotifier struct{}

// Success logs a success notification.
func (LogNotifier) Success(title, message string) {
	log.Info().Str("notification", title).Msg(message)
}

// Failure logs an expected-failure notification.
func (LogNotifier) Failure(title, message string) {
	log.Warn().Str("notification", title).Msg(message)
}
