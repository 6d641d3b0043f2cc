package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("busy")
	err := Conflict("Submission already in progress", cause)

	assert.Equal(t, http.StatusConflict, err.Code)
	assert.Equal(t, "Submission already in progress", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestAppErrorDetails(t *testing.T) {
	err := BadRequest("Invalid contact form").WithDetails([]string{"Name: This field is required"})
	assert.Equal(t, []string{"Name: This field is required"}, err.Details)
}
