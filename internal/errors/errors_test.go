package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrUserNotFound, http.StatusNotFound},
		{ErrOtpNotFound, http.StatusNotFound},
		{ErrCategoryNotFound, http.StatusNotFound},
		{ErrBookNotFound, http.StatusNotFound},
		{ErrBorrowingNotFound, http.StatusNotFound},
		{ErrOtpMismatch, http.StatusBadRequest},
		{ErrAlreadyBorrowed, http.StatusBadRequest},
		{ErrAlreadyVerified, http.StatusConflict},
		{ErrEmailTaken, http.StatusConflict},
		{ErrNotVerified, http.StatusUnauthorized},
		{ErrInvalidCredentials, http.StatusUnauthorized},
		// Stock exhaustion reports as an upstream failure, not a client error.
		{ErrOutOfStock, http.StatusBadGateway},
		{fmt.Errorf("driver broke"), http.StatusBadGateway},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusOf(tt.err), "status for %q", tt.err)
	}
}

func TestStatusOf_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("borrow: %w", ErrOutOfStock)
	assert.Equal(t, http.StatusBadGateway, StatusOf(wrapped))
}
