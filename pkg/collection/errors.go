package collection

import (
	"errors"
	"fmt"
)

// ErrInvalidIdentifier is returned by FetchObject for the -1 "not found"
// sentinel produced by IDAtPosition. No request is made.
var ErrInvalidIdentifier = errors.New("bad object id")

// RequestFailedError reports a non-2xx response. Body carries the raw
// response text as diagnostic.
type RequestFailedError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *RequestFailedError) Error() string {
	return "bad response: " + e.Body
}

// DecodeFailedError reports a response body that does not match the
// expected JSON shape.
type DecodeFailedError struct {
	Endpoint string
	Err      error
}

func (e *DecodeFailedError) Error() string {
	return fmt.Sprintf("decode %s response: %v", e.Endpoint, e.Err)
}

func (e *DecodeFailedError) Unwrap() error { return e.Err }

// TransportError reports a request that produced no HTTP response.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("get %s: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ErrorKind classifies failures surfaced by Client.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindInvalidIdentifier
	KindRequestFailed
	KindDecodeFailed
	KindTransport
	KindOther
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInvalidIdentifier:
		return "invalid_identifier"
	case KindRequestFailed:
		return "request_failed"
	case KindDecodeFailed:
		return "decode_failed"
	case KindTransport:
		return "transport"
	case KindOther:
		return "other"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Kind returns the classification of err. Errors not produced by Client
// are KindOther.
func Kind(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	if errors.Is(err, ErrInvalidIdentifier) {
		return KindInvalidIdentifier
	}
	var reqErr *RequestFailedError
	if errors.As(err, &reqErr) {
		return KindRequestFailed
	}
	var decErr *DecodeFailedError
	if errors.As(err, &decErr) {
		return KindDecodeFailed
	}
	var transErr *TransportError
	if errors.As(err, &transErr) {
		return KindTransport
	}
	return KindOther
}
