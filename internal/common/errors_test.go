package common

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithMessage(t *testing.T) {
	t.Parallel()

	err := WithMessage(ErrBadRequest, "No text provided")
	require.Equal(t, "No text provided", err.Error())
	require.True(t, errors.Is(err, ErrBadRequest))
	require.False(t, errors.Is(err, ErrConflict))
}

func TestHTTPStatusFromError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{ErrNotFound, http.StatusNotFound},
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrBadRequest, http.StatusBadRequest},
		{ErrConflict, http.StatusConflict},
		{ErrUpstream, http.StatusInternalServerError},
		{WithMessage(ErrUpstream, "Error processing PDF: bad xref"), http.StatusInternalServerError},
		{WithMessage(ErrBadRequest, "Missing data"), http.StatusBadRequest},
		{errors.New("something else"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		require.Equal(t, c.want, HTTPStatusFromError(c.err))
	}
}
