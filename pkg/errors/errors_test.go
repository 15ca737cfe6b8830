package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cause := stderrors.New("boom")

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NotFound("caretaker", cause), http.StatusNotFound},
		{"bad request", BadRequest("missing patientId", nil), http.StatusBadRequest},
		{"forbidden", Forbidden("unauthorized", nil), http.StatusForbidden},
		{"internal", Internal(cause), http.StatusInternalServerError},
		{"plain error", cause, http.StatusInternalServerError},
		{"wrapped app error", fmt.Errorf("context: %w", NotFound("user", nil)), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := Internal(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "internal server error: boom", err.Error())
}

func TestNotFoundMessage(t *testing.T) {
	assert.Equal(t, "caretaker not found", NotFound("caretaker", nil).Error())
}
