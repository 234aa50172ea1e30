package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrDecode is wrapped by errors returned when a response body is not valid
// JSON. Decoding failures are never converted into a [Result].
var ErrDecode = errors.New("failed to decode response body")

// ResponseKind identifies which variant of a [Result] is populated.
type ResponseKind int

const (
	KindMojaloopError ResponseKind = iota
	KindOkay
)

func (k ResponseKind) String() string {
	switch k {
	case KindMojaloopError:
		return "MojaloopError"
	case KindOkay:
		return "Okay"
	default:
		return fmt.Sprintf("ResponseKind(%d)", int(k))
	}
}

// Result is the tagged outcome of an operation. For [KindOkay] only Body is
// set; for [KindMojaloopError] only Error is set.
type Result[T any] struct {
	Kind  ResponseKind
	Body  T
	Error *ErrorResponse
}

// OK reports whether the result holds a success payload.
func (r Result[T]) OK() bool {
	return r.Kind == KindOkay
}

// Unwrap returns the success payload, or an [*APIError] wrapping the
// Mojaloop error payload.
func (r Result[T]) Unwrap() (T, error) {
	if r.Kind != KindOkay {
		var zero T
		return zero, &APIError{Response: r.Error}
	}
	return r.Body, nil
}

// ErrorResponse is the error payload returned by Mojaloop services.
type ErrorResponse struct {
	ErrorInformation *ErrorInformation `json:"errorInformation,omitempty"`
}

type ErrorInformation struct {
	ErrorCode        string         `json:"errorCode"`
	ErrorDescription string         `json:"errorDescription"`
	ExtensionList    *ExtensionList `json:"extensionList,omitempty"`
}

type ExtensionList struct {
	Extension []Extension `json:"extension"`
}

type Extension struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// APIError is returned when a Mojaloop service responds with an error and
// the call was made with ThrowOnError enabled.
type APIError struct {
	// StatusCode is the HTTP status of the response. It is zero when the
	// error was produced by [Result.Unwrap].
	StatusCode int
	Response   *ErrorResponse
}

func (e *APIError) Error() string {
	if e.Response != nil && e.Response.ErrorInformation != nil && e.Response.ErrorInformation.ErrorDescription != "" {
		return e.Response.ErrorInformation.ErrorDescription
	}
	return fmt.Sprintf("unexpected response status %d", e.StatusCode)
}

// ErrorCode returns the Mojaloop error code, or an empty string when the
// payload carries none.
func (e *APIError) ErrorCode() string {
	if e.Response == nil || e.Response.ErrorInformation == nil {
		return ""
	}
	return e.Response.ErrorInformation.ErrorCode
}

// normalize maps one HTTP outcome onto a Result or an error according to
// throwOnError. It is a pure function of its inputs.
func normalize[T any](status int, body []byte, throwOnError bool) (Result[T], error) {
	if status >= 200 && status < 300 {
		var payload T
		if err := decodeBody(body, &payload); err != nil {
			return Result[T]{}, err
		}
		return Result[T]{Kind: KindOkay, Body: payload}, nil
	}

	errResp := &ErrorResponse{}
	if err := decodeBody(body, errResp); err != nil {
		return Result[T]{}, err
	}

	if throwOnError {
		return Result[T]{}, &APIError{StatusCode: status, Response: errResp}
	}

	return Result[T]{Kind: KindMojaloopError, Error: errResp}, nil
}

// normalizeList is normalize for the settlement and settlement window
// listings. Central settlement answers those queries with 400 and an
// errorInformation body when nothing matches (mojaloop/project#2344); that
// case is reported as an empty list in both modes.
func normalizeList[E any](status int, body []byte, throwOnError bool) (Result[[]E], error) {
	if status == 400 {
		var errResp ErrorResponse
		if err := decodeBody(body, &errResp); err == nil && errResp.ErrorInformation != nil {
			return Result[[]E]{Kind: KindOkay, Body: []E{}}, nil
		}
	}
	return normalize[[]E](status, body, throwOnError)
}

func decodeBody(body []byte, v any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}
