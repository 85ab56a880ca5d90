package httpx

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

const errorPrefix = "Something went wrong: "

// AppError carries any handler failure to the HTTP layer. Every AppError
// becomes a 500 with a plain-text message.
type AppError struct {
	Err error
}

// Wrap returns err as an *AppError. It returns nil for a nil err and does
// not double-wrap.
func Wrap(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{Err: err}
}

func (e *AppError) Error() string { return e.Err.Error() }

func (e *AppError) Unwrap() error { return e.Err }

// Status is always 500.
func (e *AppError) Status() int { return http.StatusInternalServerError }

// Message is the response body.
func (e *AppError) Message() string { return errorPrefix + e.Err.Error() }

// Respond writes the error response and records e on the context for the
// request logger.
func (e *AppError) Respond(c *gin.Context) {
	_ = c.Error(e)
	c.String(e.Status(), "%s", e.Message())
}
