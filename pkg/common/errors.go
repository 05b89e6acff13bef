package common

import "github.com/cockroachdb/errors"

var (
	// ErrTransient marks aggregator network failures and 5xx responses.
	// Callers retry these with bounded backoff.
	ErrTransient = errors.New("transient aggregator error")

	// ErrPermanent marks 4xx aggregator responses. Never retried.
	ErrPermanent = errors.New("permanent aggregator error")

	// ErrReconnectionRequired means the bank consent is broken and only
	// the user can fix it. The single error kind surfaced to end users.
	ErrReconnectionRequired = errors.New("bank reconnection required")

	// ErrDuplicate is a unique-constraint hit on insert. Treated as an
	// idempotent no-op by the reconciler.
	ErrDuplicate = errors.New("duplicate transaction")

	ErrNotFound = errors.New("not found")
)
