package httperr

import (
	"net/http"

	"creator-sponsorship/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StatusOf maps the error categories of internal/pkg/errs to HTTP statuses.
// Domain sentinels carry their category as a mark, so their message is safe to show.
func StatusOf(err error) (int, bool) {
	switch {
	case errs.Is(err, errs.ErrDomainValidation):
		return http.StatusUnprocessableEntity, true
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, true
	case errs.Is(err, errs.ErrIdempotencyInProgress):
		return http.StatusConflict, true
	case errs.Is(err, errs.ErrConflict):
		return http.StatusConflict, true
	case errs.Is(err, errs.ErrUpstream):
		return http.StatusBadGateway, true
	default:
		return http.StatusInternalServerError, false
	}
}

// Abort renders err with the status of its category. Uncategorised errors become
// an opaque 500.
func Abort(c *gin.Context, err error, detail any) {
	status, public := StatusOf(err)
	msg := "Internal server error"
	if public {
		msg = err.Error()
	}
	AbortWithError(c, status, err, msg, detail)
}
