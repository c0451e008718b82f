package errors

import (
	"context"
	"errors"
	"fmt"
)

const (
	STAGE_BEFORE_REQUEST = "before-request"
	STAGE_REQUEST        = "request"
	STAGE_AFTER_REQUEST  = "after-request"

	TYPE_UNKNOWN      = "unknown"
	TYPE_JSON_PARSE   = "json"
	TYPE_REQUEST_PREP = "request-prep"
	TYPE_IO           = "io"
	TYPE_HTTP_STATUS  = "not-ok-http-status"
	TYPE_INVALID_DATA = "invalid-data"
	TYPE_CANCELLED    = "cancelled"
)

// ApiError is the error type returned by every call that reaches
// (or tries to reach) the CRPT registry. Stage tells where in the
// request lifecycle the call failed, Type tells how.
//
// The common failure kinds map onto it as follows:
//   - transport failure: Stage=request, Type=io
//   - non-200 response:  Stage=after-request, Type=not-ok-http-status
//   - cancelled wait:    Type=cancelled, SourceErr wraps ctx.Err()
type ApiError struct {
	Stage          string
	Type           string
	SourceErr      error
	Body           []byte
	HttpStatusCode int

	// CrptCode holds the registry's machine-readable error code,
	// extracted best-effort from a non-200 response body.
	CrptCode string
}

var _ error = &ApiError{}

func (e *ApiError) Error() string {
	var err string
	if e.SourceErr != nil {
		err = e.SourceErr.Error()
	} else {
		err = string(e.Body)
	}
	return fmt.Sprintf(
		"http request to CRPT failed during '%s' stage with error type '%s', httpStatus: '%d'; original err: %v",
		e.Stage, e.Type, e.HttpStatusCode, err,
	)
}

func (e *ApiError) Unwrap() error {
	return e.SourceErr
}

// Is method is required by errors.Is() to properly distinguish between
// different types -vs- same pointer to the same type.
// Without it, errors.Is(err, &ApiError{}) returns false:
// ok := errors.Is(errors.Join(&crpt_errors.ApiError{}), &crpt_errors.ApiError{})
// ^ would be false
func (e *ApiError) Is(other error) bool {
	var err *ApiError
	return errors.As(other, &err) && err != nil
}

// IsTransport reports whether err is an ApiError caused by the
// network call itself failing (connectivity, timeout, DNS).
func IsTransport(err error) bool {
	var e *ApiError
	return errors.As(err, &e) && e.Type == TYPE_IO && e.Stage == STAGE_REQUEST
}

// IsHttpStatus reports whether err is an ApiError caused by the
// registry answering with a non-200 status.
func IsHttpStatus(err error) bool {
	var e *ApiError
	return errors.As(err, &e) && e.Type == TYPE_HTTP_STATUS
}

// IsCancelled reports whether err was caused by the caller's context
// ending while the call was waiting in a gate or in flight.
func IsCancelled(err error) bool {
	var e *ApiError
	if errors.As(err, &e) && e.Type == TYPE_CANCELLED {
		return true
	}
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
