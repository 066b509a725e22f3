package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"stayhub/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
	}{
		{name: "InvalidPageParam", failure: failure.InvalidPageParam, code: http.StatusBadRequest},
		{name: "InvalidLimitParam", failure: failure.InvalidLimitParam, code: http.StatusBadRequest},
		{name: "InvalidMonthFormat", failure: failure.InvalidMonthFormat, code: http.StatusBadRequest},
		{name: "ForbiddenError", failure: failure.ForbiddenError, code: http.StatusForbidden},
		{name: "ResourceRestrictedError", failure: failure.ResourceRestrictedError, code: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.failure.Code)
			assert.Equal(t, tt.failure.Message, tt.failure.Error())
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "bad request from error",
			err:     failure.BadRequest(errors.New("date is required")),
			code:    http.StatusBadRequest,
			message: "date is required",
		},
		{
			name:    "bad request from string",
			err:     failure.BadRequestFromString("availability must not be empty"),
			code:    http.StatusBadRequest,
			message: "availability must not be empty",
		},
		{
			name:    "unauthorized",
			err:     failure.Unauthorized("Token has expired"),
			code:    http.StatusUnauthorized,
			message: "Token has expired",
		},
		{
			name:    "internal error",
			err:     failure.InternalError(errors.New("connection reset")),
			code:    http.StatusInternalServerError,
			message: "connection reset",
		},
		{
			name:    "data integrity",
			err:     failure.DataIntegrity("room type base price must be positive"),
			code:    http.StatusInternalServerError,
			message: "data integrity: room type base price must be positive",
		},
		{
			name:    "unimplemented",
			err:     failure.Unimplemented("ExportCalendar"),
			code:    http.StatusNotImplemented,
			message: "ExportCalendar",
		},
		{
			name:    "not found",
			err:     failure.NotFound("room type not found"),
			code:    http.StatusNotFound,
			message: "room type not found",
		},
		{
			name:    "conflict",
			err:     failure.Conflict("peak rate already defined for this date range"),
			code:    http.StatusConflict,
			message: "peak rate already defined for this date range",
		},
		{
			name:    "forbidden",
			err:     failure.Forbidden("room type belongs to another owner"),
			code:    http.StatusForbidden,
			message: "room type belongs to another owner",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f *failure.Failure

			require.ErrorAs(t, tt.err, &f)
			assert.Equal(t, tt.code, f.Code)
			assert.Equal(t, tt.message, f.Message)
		})
	}
}

func TestNilInputs(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    failure.NotFound("room type not found"),
			expected: http.StatusNotFound,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("apply availability: %w", failure.Conflict("busy")),
			expected: http.StatusConflict,
		},
		{
			name:     "storage error",
			input:    errors.New("pq: connection refused"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, failure.GetCode(tt.input))
		})
	}
}

func TestIs(t *testing.T) {
	wrapped := fmt.Errorf("get room type: %w", failure.NotFound("room type not found"))

	assert.ErrorIs(t, wrapped, failure.NotFound("room type not found"))
	assert.NotErrorIs(t, wrapped, failure.NotFound("property not found"))
	assert.NotErrorIs(t, wrapped, failure.Conflict("room type not found"))
	assert.NotErrorIs(t, errors.New("room type not found"), failure.NotFound("room type not found"))
}
