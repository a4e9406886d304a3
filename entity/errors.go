package entity

import "errors"

// Sentinel errors shared across layers. Handlers map these onto HTTP status
// codes with errors.Is; anything unrecognized is a 500.
var (
	// ErrValidation covers bad client input (name/phone rules).
	ErrValidation = errors.New("validation failed")

	// ErrEmptyDish is returned before any model call when the dish name is
	// blank or whitespace.
	ErrEmptyDish = errors.New("dish name is empty")

	// ErrMissingToken means no Authorization token was presented at all.
	ErrMissingToken = errors.New("missing auth token")

	// ErrInvalidToken means a token was presented but failed verification
	// (bad signature, expired, malformed).
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrModelUnavailable is the pipeline's catch-all for any upstream model
	// failure, including empty completions and timeouts.
	ErrModelUnavailable = errors.New("model unavailable")

	// ErrStore covers persistence failures.
	ErrStore = errors.New("store failure")
)
