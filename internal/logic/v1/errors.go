// Package v1 provides the business logic for the portfolio site: the
// session gate, the project showcase, the contact form, and the admin
// dashboard.
//
// Error Handling:
// This package defines sentinel errors for expected, user-facing failures.
// They should be wrapped with context using fmt.Errorf("%w") when returned
// and dispatched in handlers with errors.Is. A credential mismatch is NOT an
// error: SessionGate.Login reports it as a false outcome, because a wrong
// password is an expected result, not an exceptional one.
package v1

import "errors"

// Sentinel errors for contact-form validation and message storage.
var (
	// ErrMissingFields indicates a contact submission without name, email,
	// or message body.
	ErrMissingFields = errors.New("missing required fields")

	// ErrInvalidEmail indicates a contact submission with a malformed
	// email address.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrMessageStore indicates a valid submission that could not be
	// persisted. Surfaced as an apology on the contact page, never as a 5xx.
	ErrMessageStore = errors.New("message could not be stored")
)
