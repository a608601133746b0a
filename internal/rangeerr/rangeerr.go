// Package rangeerr defines the sentinel errors of the failure taxonomy;
// the query service classifies its failures with them. Callers check
// with errors.Is; the HTTP layer maps these to status codes.
package rangeerr

import "errors"

var (
	// ErrInvalidInput marks a malformed or incomplete caller request,
	// such as a query missing a required filter.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound marks a lookup that found nothing, such as a report
	// query against a warehouse file that doesn't exist.
	ErrNotFound = errors.New("not found")

	// ErrParseSkip marks a hand or file that was deliberately skipped
	// during parsing (no button marker, etc.)
	// rather than treated as a fatal error.
	ErrParseSkip = errors.New("parse skipped")

	// ErrIOFailure marks a failure reading or writing the filesystem or
	// database that isn't attributable to caller input.
	ErrIOFailure = errors.New("io failure")

	// ErrInternal marks a failure that doesn't fit the other
	// categories: a programming invariant was violated.
	ErrInternal = errors.New("internal error")
)

// detailed pairs a caller-facing message with a sentinel for
// classification via errors.Is, without the sentinel's own text
// leaking into the message callers see.
type detailed struct {
	msg string
	err error
}

func (d *detailed) Error() string { return d.msg }
func (d *detailed) Unwrap() error { return d.err }

// Wrap returns an error whose message is exactly msg but that still
// satisfies errors.Is(err, sentinel).
func Wrap(sentinel error, msg string) error {
	return &detailed{msg: msg, err: sentinel}
}
