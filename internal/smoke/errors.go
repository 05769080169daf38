package smoke

import "errors"

var (
	// ErrUnexpectedStatus indicates the service answered with a status the check did not expect.
	ErrUnexpectedStatus = errors.New("unexpected status")
	// ErrInvalidResponse indicates a response body that violates the API contract.
	ErrInvalidResponse = errors.New("invalid response")
	// ErrChecksFailed is returned by Run when at least one check failed.
	ErrChecksFailed = errors.New("smoke checks failed")
	// ErrInvalidConfig indicates unusable smoke settings.
	ErrInvalidConfig = errors.New("invalid smoke config")
	// ErrUnsupportedFormat indicates a response format other than json or msgpack.
	ErrUnsupportedFormat = errors.New("unsupported format")
)
