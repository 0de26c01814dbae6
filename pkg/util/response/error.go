package response

import (
	"net/http"

	"taskestimate/pkg/util/apperror"

	"github.com/labstack/echo/v4"
)

type Error struct {
	Code    int
	Message string
	Err     error
}

func ErrorBuilder(code int, err error, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// ErrorResponse maps an error from the service layer onto the HTTP envelope.
// Typed apperror kinds carry their own status; anything else is a 500.
func ErrorResponse(err error) *Error {
	if e, ok := err.(*Error); ok {
		return e
	}
	switch apperror.KindOf(err) {
	case apperror.KindValidation:
		return ErrorBuilder(http.StatusBadRequest, err, err.Error())
	case apperror.KindNotFound:
		return ErrorBuilder(http.StatusNotFound, err, err.Error())
	case apperror.KindConflict:
		return ErrorBuilder(http.StatusConflict, err, err.Error())
	case apperror.KindTransient:
		return ErrorBuilder(http.StatusInternalServerError, err, "transient store failure")
	}
	return ErrorBuilder(http.StatusInternalServerError, err, "server_error")
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) SendError(c echo.Context) error {
	errMessage := ""
	if e.Err != nil {
		errMessage = e.Err.Error()
	}
	return c.JSON(e.Code, &MetaError{
		Success: false,
		Code:    e.Code,
		Message: e.Message,
		Error:   errMessage,
	})
}
