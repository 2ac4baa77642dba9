package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/aggregator"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/internal/config"
	"github.com/AquaINFRA/OGCProcess2GalaxyTool/pkg/client"
)

// Error codes for MCP tool responses.
const (
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeUpstreamError = "UPSTREAM_ERROR"
	ErrCodeInvalidInput  = "INVALID_INPUT"
	ErrCodeTimeout       = "TIMEOUT"
)

// CodedError is an error with an associated error code.
type CodedError struct {
	Code    string
	Message string
	Cause   error
}

func (e *CodedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *CodedError) Unwrap() error {
	return e.Cause
}

// WrapUpstreamError converts errors from OGC API servers and from tool
// configuration parsing into coded errors.
func WrapUpstreamError(err error) error {
	if err == nil {
		return nil
	}

	var coded *CodedError
	if errors.As(err, &coded) {
		return coded
	}

	coded = classify(err)

	attrs := []any{
		slog.String("code", coded.Code),
		slog.String("message", coded.Message),
	}
	var fetchErr *aggregator.FetchError
	if errors.As(err, &fetchErr) {
		attrs = append(attrs, slog.String("server", fetchErr.Server))
		if fetchErr.Process != "" {
			attrs = append(attrs, slog.String("process", fetchErr.Process))
		}
	}
	slog.Warn("OGC API error", attrs...)

	return coded
}

func classify(err error) *CodedError {
	var validationErr *config.ValidationError
	if errors.As(err, &validationErr) {
		return &CodedError{Code: ErrCodeInvalidInput, Message: "invalid tool configuration", Cause: err}
	}

	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		code := ErrCodeUpstreamError
		if apiErr.StatusCode == http.StatusNotFound {
			code = ErrCodeNotFound
		}
		return &CodedError{Code: code, Message: apiErr.Message, Cause: err}
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &CodedError{Code: ErrCodeTimeout, Message: "request timed out", Cause: err}
	}

	return &CodedError{Code: ErrCodeUpstreamError, Message: "request failed", Cause: err}
}

// wrapProcessError reports an unknown process as NOT_FOUND and classifies
// every other failure with WrapUpstreamError.
func wrapProcessError(processID string, err error) error {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		slog.Debug("process not found", slog.String("process", processID), slog.String("detail", apiErr.Message))
		return ErrNotFound("process", processID)
	}
	return WrapUpstreamError(err)
}

// ErrNotFound creates a not found error.
func ErrNotFound(resource, id string) error {
	return &CodedError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, id),
	}
}

// ErrInvalidInput creates an invalid input error.
func ErrInvalidInput(message string) error {
	return &CodedError{
		Code:    ErrCodeInvalidInput,
		Message: message,
	}
}
