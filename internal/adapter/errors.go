package adapter

import "errors"

// Sentinel errors returned by the engine adapter. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrEngineUnavailable is returned by Refresh when the engine's status
	// endpoint cannot be reached. The adapter then reports "no report
	// available" until a later Refresh succeeds.
	ErrEngineUnavailable = errors.New("sync engine unavailable")

	// ErrBadStatusResponse is returned by Refresh when the endpoint responds
	// with an unexpected status code or an undecodable body.
	ErrBadStatusResponse = errors.New("bad engine status response")
)
