package youtube

import (
	"encoding/json"
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"
)

// Sentinel errors for catalogue operations.
var (
	// ErrMalformedResponse indicates a 2xx provider response whose body did
	// not have the expected shape.
	ErrMalformedResponse = errors.New("youtube: malformed provider response")
	// ErrPlaylistNotFound indicates the provider knows no playlist by that id.
	ErrPlaylistNotFound = errors.New("youtube: playlist not found")
)

// ProviderError wraps a failed provider call with the operation and, when the
// provider reported one, the HTTP status. Aggregation never returns partial
// data alongside one of these; the whole call failed.
//
//	var perr *youtube.ProviderError
//	if errors.As(err, &perr) {
//		fmt.Printf("%s failed with status %d\n", perr.Op, perr.StatusCode)
//	}
type ProviderError struct {
	// Op is the provider operation ("playlists.list", "playlistItems.list",
	// "videos.list").
	Op string
	// StatusCode is the HTTP status, 0 when the request never got a response.
	StatusCode int
	// Message is the provider's error message, if any.
	Message string
	// Err is the underlying error.
	Err error
}

// Error returns a string representation of the provider error.
func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("youtube: %s: status %d: %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("youtube: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/errors.As.
func (e *ProviderError) Unwrap() error { return e.Err }

// wrapProvider lifts a googleapi error's status and message into a typed
// ProviderError. Undecodable 2xx bodies are classified as malformed.
func wrapProvider(op string, err error) *ProviderError {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return &ProviderError{Op: op, StatusCode: gerr.Code, Message: gerr.Message, Err: err}
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return &ProviderError{Op: op, Err: fmt.Errorf("%w: %v", ErrMalformedResponse, err)}
	}

	return &ProviderError{Op: op, Err: err}
}
