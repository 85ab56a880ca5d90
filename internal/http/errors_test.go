package httpx

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil))

	base := errors.New("query failed")
	appErr := Wrap(base)
	assert.ErrorIs(t, appErr, base)
	assert.Equal(t, "query failed", appErr.Error())
	assert.Equal(t, http.StatusInternalServerError, appErr.Status())
	assert.Equal(t, "Something went wrong: query failed", appErr.Message())

	assert.Same(t, appErr, Wrap(appErr), "no double wrap")
}
