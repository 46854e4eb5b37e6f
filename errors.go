package ytcatalog

import (
	"errors"

	"ytcatalog/internal/retry"
	"ytcatalog/remoteconfig"
	"ytcatalog/youtube"
)

// Error handling types exported for library users.
//
// Using errors.Is() for sentinel errors:
//
//	if errors.Is(err, ytcatalog.ErrPlaylistNotFound) {
//		fmt.Println("playlist gone")
//	}
//
// Using errors.As() for wrapped errors:
//
//	var provErr *ytcatalog.ProviderError
//	if errors.As(err, &provErr) {
//		fmt.Printf("%s failed: %v\n", provErr.Op, provErr.Err)
//	}

// Type aliases for convenient error handling.
type (
	// ProviderError wraps a failed YouTube Data API call.
	ProviderError = youtube.ProviderError
	// RetryableError wraps errors that remained after retries were exhausted.
	RetryableError = retry.RetryableError
	// StatusError wraps a non-200 Remote Config response.
	StatusError = remoteconfig.StatusError
)

// Sentinel errors exported from sub-packages.
var (
	// ErrPlaylistNotFound indicates the requested playlist does not exist.
	ErrPlaylistNotFound = youtube.ErrPlaylistNotFound
	// ErrMalformedResponse indicates the provider returned an unparseable body.
	ErrMalformedResponse = youtube.ErrMalformedResponse

	// Remote-config errors
	// ErrParamNotFound indicates the template has no such parameter.
	ErrParamNotFound = remoteconfig.ErrParamNotFound
	// ErrParamEmpty indicates the parameter exists but carries no value.
	ErrParamEmpty = remoteconfig.ErrParamEmpty
	// ErrMalformedTemplate indicates the template body could not be decoded.
	ErrMalformedTemplate = remoteconfig.ErrMalformedTemplate
)

// ErrNotConfigured indicates no API key could be resolved from any
// configuration tier. The HTTP layer renders this state as an empty
// catalogue; library callers get it as an error.
var ErrNotConfigured = errors.New("ytcatalog: youtube api key not configured")

// IsRetryable reports whether an error is worth retrying.
func IsRetryable(err error) bool {
	return retry.IsRetryable(err)
}
