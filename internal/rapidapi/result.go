package rapidapi

import (
	"errors"
	"fmt"
	"net/http"
)

// Reason classifies why a gateway request produced no data.
type Reason string

const (
	ReasonTransport  Reason = "transport"
	ReasonHTTPStatus Reason = "http_status"
	ReasonDecode     Reason = "decode"
	ReasonShape      Reason = "shape"
)

// Failure describes a request that did not yield usable data.
type Failure struct {
	Reason Reason
	URL    string
	Status int
	Err    error
}

func (f *Failure) Error() string {
	if f == nil {
		return "<nil>"
	}
	switch f.Reason {
	case ReasonHTTPStatus:
		return fmt.Sprintf("api %s returned status %d", f.URL, f.Status)
	case ReasonShape:
		return fmt.Sprintf("api %s returned unexpected shape: %v", f.URL, f.Err)
	case ReasonDecode:
		return fmt.Sprintf("decode response from %s: %v", f.URL, f.Err)
	default:
		return fmt.Sprintf("execute request %s: %v", f.URL, f.Err)
	}
}

func (f *Failure) Unwrap() error {
	if f == nil {
		return nil
	}
	return f.Err
}

// Retryable reports whether repeating the request could plausibly succeed.
// Shape and decode problems are permanent for a given endpoint.
func (f *Failure) Retryable() bool {
	if f == nil {
		return false
	}
	switch f.Reason {
	case ReasonTransport:
		return true
	case ReasonHTTPStatus:
		return f.Status == http.StatusTooManyRequests || f.Status >= 500
	default:
		return false
	}
}

// AsFailure extracts a *Failure from err, if any.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// Result is either a value or a Failure; never both.
type Result[T any] struct {
	value T
	fail  *Failure
}

// Ok wraps a successful value.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Fail wraps a failure. A nil failure is recorded as an unknown transport
// failure.
func Fail[T any](f *Failure) Result[T] {
	if f == nil {
		f = &Failure{Reason: ReasonTransport, Err: errors.New("unknown failure")}
	}
	return Result[T]{fail: f}
}

// OK reports whether the result carries data.
func (r Result[T]) OK() bool {
	return r.fail == nil
}

// Value returns the data and whether it is present.
func (r Result[T]) Value() (T, bool) {
	return r.value, r.fail == nil
}

// Failure returns the failure, or nil on success.
func (r Result[T]) Failure() *Failure {
	return r.fail
}

// Err returns the failure as an error, or nil on success.
func (r Result[T]) Err() error {
	if r.fail == nil {
		return nil
	}
	return r.fail
}
