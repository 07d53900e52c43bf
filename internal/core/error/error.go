package errx

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"
)

const (
	// SystemErrorMessage is a user-facing fallback when internal errors occur.
	SystemErrorMessage = "internal server error"
	// RedisErrorMessage describes Redis related failures.
	RedisErrorMessage = "redis operation failed"
	// RedisNotFoundMessage is used when a Redis key does not exist.
	RedisNotFoundMessage = "redis key not found"
	// CatalogErrorMessage describes failures of the upstream product catalogue.
	CatalogErrorMessage = "product catalogue unavailable"
	// NotFoundMessage is used for unknown products and carts.
	NotFoundMessage = "resource not found"
	// InvalidInputMessage is used for malformed requests.
	InvalidInputMessage = "invalid input"
)

// AppError wraps an underlying error with an HTTP status and safe message.
type AppError struct {
	Err     error
	Status  int
	Message string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As support.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with the provided information.
func New(err error, status int, message string) *AppError {
	return &AppError{
		Err:     err,
		Status:  status,
		Message: message,
	}
}

// NotFound reports a missing product or cart.
func NotFound(format string, args ...any) *AppError {
	return New(fmt.Errorf(format, args...), http.StatusNotFound, NotFoundMessage)
}

// InvalidInput reports a request that cannot be served as sent.
func InvalidInput(format string, args ...any) *AppError {
	return New(fmt.Errorf(format, args...), http.StatusBadRequest, InvalidInputMessage)
}

// WrapCatalog wraps an upstream catalogue failure.
func WrapCatalog(err error) error {
	if err == nil {
		return nil
	}
	return New(err, http.StatusBadGateway, CatalogErrorMessage)
}

// WrapRedis wraps a Redis failure. A missing key maps to 404, anything else
// to 502.
func WrapRedis(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, redis.Nil):
		return New(err, http.StatusNotFound, RedisNotFoundMessage)
	default:
		return New(err, http.StatusBadGateway, RedisErrorMessage)
	}
}

// StatusOf returns the HTTP status carried by err, or 500 when err is not an AppError.
func StatusOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Status != 0 {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// MessageOf returns the safe message carried by err.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return SystemErrorMessage
}
