package hardcover

import (
	"fmt"

	"github.com/pkg/errors"
)

// Failures the caller is expected to branch on. Remote failures carry a
// kind so the API layer can pick a status code; none of them are retried
// here, a transient error surfaces immediately.
var (
	// ErrNotConfigured means no API token is available. Fatal
	// configuration problem, not retryable by us.
	ErrNotConfigured = errors.New("hardcover token is not configured")

	// ErrQueryTooShort rejects queries under 2 trimmed characters before
	// any network call is made.
	ErrQueryTooShort = errors.New("search query must be at least 2 characters")

	// ErrAuthorNotFound means the remote response was well formed but the
	// slug resolved to no author.
	ErrAuthorNotFound = errors.New("author not found on hardcover")
)

type ErrorKind int

const (
	// KindTransport covers connection failures and non-2xx responses.
	KindTransport ErrorKind = iota
	// KindTimeout is the per-request deadline firing.
	KindTimeout
	// KindAPI is a structured error returned inside a 2xx payload, either
	// the GraphQL errors array or the search payload's embedded error.
	KindAPI
)

// RemoteError is any failure talking to the Hardcover endpoint.
type RemoteError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *RemoteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

func remoteErr(kind ErrorKind, message string) error {
	return &RemoteError{Kind: kind, Message: message}
}

func remoteWrap(kind ErrorKind, err error, message string) error {
	return &RemoteError{Kind: kind, Message: message, Err: err}
}

// IsTimeout reports whether err is a remote timeout.
func IsTimeout(err error) bool {
	var remote *RemoteError
	return errors.As(err, &remote) && remote.Kind == KindTimeout
}

// IsRemote reports whether err came from the remote endpoint at all.
func IsRemote(err error) bool {
	var remote *RemoteError
	return errors.As(err, &remote)
}
