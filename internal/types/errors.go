package types

import (
	"fmt"
	"strings"
)

// Error is a non-200 response from the Monarch API. Err holds the sentinel
// the status maps to, if any.
type Error struct {
	Code       string
	Message    string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return fmt.Sprintf("monarch api error %s (status %d)", e.Code, e.StatusCode)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// GraphQLError is one entry of a response's errors array.
type GraphQLError struct {
	Message string        `json:"message"`
	Path    []interface{} `json:"path,omitempty"`
}

func (e *GraphQLError) Error() string {
	return e.Message
}

// GraphQLErrors is returned when a response carries errors instead of data.
type GraphQLErrors struct {
	Errors []*GraphQLError
}

func (e *GraphQLErrors) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		if err != nil && err.Message != "" {
			msgs = append(msgs, err.Message)
		}
	}
	if len(msgs) == 0 {
		return "graphql request returned errors"
	}
	return strings.Join(msgs, "; ")
}
