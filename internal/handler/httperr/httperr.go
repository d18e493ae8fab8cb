package httperr

import (
	"net/http"

	"dakar-rentals/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const (
	MsgValidation  = "Validation failed"
	MsgConflict    = "Booking is no longer pending"
	MsgUnavailable = "Storage temporarily unavailable"
	MsgInternal    = "Internal server error"
	MsgNotFound    = "Resource not found"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// FieldsDetail lists the request fields a 400 was raised for.
type FieldsDetail struct {
	Fields []string `json:"fields"`
}

func newResponse(status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	return resp
}

// FromError maps the booking error kinds onto a response. notFoundMsg names
// the missing resource; empty falls back to MsgNotFound.
func FromError(err error, notFoundMsg string) Response {
	switch {
	case errs.Is(err, errs.ErrValidation):
		return newResponse(http.StatusBadRequest, MsgValidation, FieldsDetail{Fields: errs.ValidationFields(err)})
	case errs.Is(err, errs.ErrNotFound):
		if notFoundMsg == "" {
			notFoundMsg = MsgNotFound
		}
		return newResponse(http.StatusNotFound, notFoundMsg, nil)
	case errs.Is(err, errs.ErrInvalidStateTransition):
		return newResponse(http.StatusConflict, MsgConflict, nil)
	case errs.Is(err, errs.ErrStoreUnavailable):
		return newResponse(http.StatusServiceUnavailable, MsgUnavailable, nil)
	default:
		return newResponse(http.StatusInternalServerError, MsgInternal, nil)
	}
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}
	abort(c, err, newResponse(status, msg, detail))
}

// AbortWithFields rejects the request with a 400 naming the offending fields.
func AbortWithFields(c *gin.Context, err error, msg string, fields ...string) {
	AbortWithError(c, http.StatusBadRequest, err, msg, FieldsDetail{Fields: fields})
}

func AbortWithUsecaseError(c *gin.Context, err error, notFoundMsg string) {
	if err == nil {
		panic("AbortWithUsecaseError: err cannot be nil")
	}
	abort(c, err, FromError(err, notFoundMsg))
}

func abort(c *gin.Context, err error, resp Response) {
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}
