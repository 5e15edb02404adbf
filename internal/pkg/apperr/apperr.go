package apperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies an application error so the handler boundary can map it to
// an HTTP status and the client can branch on it.
type Kind string

const (
	KindValidation        Kind = "ValidationError"
	KindNotFound          Kind = "NotFoundError"
	KindWindowClosed      Kind = "WindowClosedError"
	KindBidTooLow         Kind = "BidTooLowError"
	KindDuplicateBidder   Kind = "DuplicateBidderError"
	KindUnsupportedFormat Kind = "UnsupportedFormatError"
	KindStore             Kind = "StoreError"
)

// Error carries a kind and a human-readable message. Store errors wrap the
// underlying cause but never expose it to the client.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func WindowClosed(message string) *Error {
	return &Error{Kind: KindWindowClosed, Message: message}
}

func BidTooLow(format string, args ...interface{}) *Error {
	return &Error{Kind: KindBidTooLow, Message: fmt.Sprintf(format, args...)}
}

func DuplicateBidder(message string) *Error {
	return &Error{Kind: KindDuplicateBidder, Message: message}
}

func UnsupportedFormat(message string) *Error {
	return &Error{Kind: KindUnsupportedFormat, Message: message}
}

// Store wraps a persistence failure. The client sees the generic message only.
func Store(err error) *Error {
	return &Error{Kind: KindStore, Message: "Internal Server Error", Err: err}
}

// From extracts the *Error from err, treating anything unclassified as a
// store failure so internals never leak to the client.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Store(err)
}

// HTTPStatus maps a kind to its response status code.
func HTTPStatus(k Kind) int {
	switch k {
	case KindValidation, KindBidTooLow, KindDuplicateBidder, KindUnsupportedFormat:
		return fiber.StatusBadRequest
	case KindNotFound:
		return fiber.StatusNotFound
	case KindWindowClosed:
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}
