package monarch

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/eshaffer321/monarch-mcp/internal/types"
)

var (
	// ErrNotAuthenticated is returned when the API rejects the token
	ErrNotAuthenticated = types.ErrNotAuthenticated

	// ErrRateLimited is returned when rate limited
	ErrRateLimited = types.ErrRateLimited

	// ErrTimeout is returned on timeout
	ErrTimeout = types.ErrTimeout

	// ErrNotFound is returned when resource not found
	ErrNotFound = types.ErrNotFound

	// ErrServerError is returned for server errors
	ErrServerError = types.ErrServerError
)

// Error represents an API error
type Error = types.Error

// GraphQLError represents a GraphQL error
type GraphQLError = types.GraphQLError

// GraphQLErrors represents multiple GraphQL errors
type GraphQLErrors = types.GraphQLErrors

// ConfigurationError is returned when the client cannot be constructed
// from the supplied settings.
type ConfigurationError struct {
	Setting string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Setting, e.Message)
}

// AuthenticationError is returned when the API rejects the credentials
// while running an operation.
type AuthenticationError struct {
	Operation string
	Err       error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed for %s: %v", e.Operation, e.Err)
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// OperationError wraps any other failure of a remote operation.
type OperationError struct {
	Operation string
	Err       error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Operation, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// NotFoundError is returned when a requested entity does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// Is lets errors.Is(err, ErrNotFound) match.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError represents an invalid input value
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// IsAuthError checks if error is authentication related
func IsAuthError(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr) || errors.Is(err, ErrNotAuthenticated)
}

// classifyError turns a transport failure into an AuthenticationError or
// an OperationError tagged with the GraphQL operation name.
func classifyError(operation string, err error) error {
	if err == nil {
		return nil
	}
	if isUnauthorized(err) {
		return &AuthenticationError{Operation: operation, Err: err}
	}
	return &OperationError{Operation: operation, Err: err}
}

func isUnauthorized(err error) bool {
	if errors.Is(err, ErrNotAuthenticated) {
		return true
	}

	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "401") || strings.Contains(msg, "unauthorized")
}
