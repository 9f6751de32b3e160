package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Error taxonomy of the core. Callers test with errors.Is.
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("resource not found")
	ErrNotReady         = errors.New("resource not ready")
	ErrAlreadyDeleted   = errors.New("already deleted")
	ErrNotDeleted       = errors.New("not deleted")
	ErrCatalogLoad      = errors.New("catalog load failed")
	ErrHospitalNotFound = errors.New("hospital not found")
	ErrOCRFailure       = errors.New("ocr failed for every page")
	ErrStoreUnavailable = errors.New("state store unavailable")
)

// NewAppError constructs a coded error with an optional cause.
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// gRPC error helpers

func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func FailedPreconditionError(message string) error {
	return status.Error(codes.FailedPrecondition, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func UnavailableError(message string) error {
	return status.Error(codes.Unavailable, message)
}

// ToGRPCError maps the core taxonomy onto gRPC status codes for the caller
// surface. Unknown errors map to Internal without leaking details.
func ToGRPCError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, ErrNotReady),
		errors.Is(err, ErrAlreadyDeleted),
		errors.Is(err, ErrNotDeleted):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, ErrHospitalNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, ErrStoreUnavailable):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, ErrCatalogLoad):
		return status.Error(codes.Internal, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
