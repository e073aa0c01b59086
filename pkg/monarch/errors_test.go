package monarch

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantAuth bool
	}{
		{"sentinel", ErrNotAuthenticated, true},
		{"wrapped sentinel", fmt.Errorf("request: %w", ErrNotAuthenticated), true},
		{"api error status", &Error{Code: "HTTP_ERROR", StatusCode: 401}, true},
		{"message 401", errors.New("server said 401"), true},
		{"message unauthorized", errors.New("Unauthorized access"), true},
		{"rate limited", ErrRateLimited, false},
		{"server error", &Error{Code: "SERVER_ERROR", StatusCode: 502, Err: ErrServerError}, false},
		{"graphql", &GraphQLErrors{Errors: []*GraphQLError{{Message: "field not found"}}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyError("GetAccounts", tt.err)

			if tt.wantAuth {
				var authErr *AuthenticationError
				assert.ErrorAs(t, err, &authErr)
				assert.Equal(t, "GetAccounts", authErr.Operation)
			} else {
				var opErr *OperationError
				assert.ErrorAs(t, err, &opErr)
				assert.Equal(t, "GetAccounts", opErr.Operation)
				assert.Contains(t, err.Error(), "GetAccounts failed")
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestClassifyError_Nil(t *testing.T) {
	assert.NoError(t, classifyError("GetAccounts", nil))
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "account not found: acc-1", (&NotFoundError{Resource: "account", ID: "acc-1"}).Error())
	assert.Equal(t,
		"configuration error: MONARCH_TOKEN: an API token is required",
		(&ConfigurationError{Setting: TokenEnvVar, Message: "an API token is required"}).Error())
	assert.Equal(t,
		"validation error on field 'limit': must be a number",
		(&ValidationError{Field: "limit", Message: "must be a number"}).Error())
}
