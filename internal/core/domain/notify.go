package domain

// Notifier receives user-facing notifications emitted by the Logic layer,
// mirroring the toast banners of the rendered pages.
type Notifier interface {
	// Success reports an operation the user should see as succeeded.
	Success(title, message string)

	// Failure reports an expected, user-facing failure. It is not an
	// error channel; unexpected errors go to the logger instead.
	Failure(title, message string)
}
