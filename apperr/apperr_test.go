package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{Unauthorized, http.StatusUnauthorized},
		{InvalidInput, http.StatusBadRequest},
		{NotFound, http.StatusNotFound},
		{Forbidden, http.StatusForbidden},
		{Store, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(New(tc.kind, "boom")), "kind %s", tc.kind)
	}
}

func TestKindOfUntaggedError(t *testing.T) {
	assert.Equal(t, Store, KindOf(errors.New("connection reset")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("connection reset")))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("duplicate key")
	err := Wrap(Store, "insert failed", cause)
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "insert failed", err.Error())

	wrapped := fmt.Errorf("open case: %w", err)
	assert.Equal(t, Store, KindOf(wrapped))
}
