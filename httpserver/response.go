package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"movieland/errs"
	"movieland/pkg/sentry"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "Internal server error"

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// handleError maps application errors to HTTP status codes
func (s *Server) handleError(err error, c echo.Context) {
	code, message := errorStatus(err)

	if code >= http.StatusInternalServerError {
		s.Logger.Errorw(err.Error(), "request_id", s.requestID(c))
		sentry.WithContext(c).WithExtras(map[string]interface{}{
			"method": c.Request().Method,
			"uri":    c.Request().RequestURI,
			"status": code,
		}).Error(err)
	}

	// Don't write response if already committed
	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, ErrorResponse{Detail: message})
	}
	if err != nil {
		s.Logger.Errorw("write error response", "error", err, "request_id", s.requestID(c))
	}
}

func errorStatus(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if msg, ok := he.Message.(string); ok {
			return he.Code, msg
		}
		return he.Code, fmt.Sprint(he.Message)
	}

	switch errs.ErrorCode(err) {
	case errs.EINVALID:
		return http.StatusBadRequest, errs.ErrorMessage(err)
	case errs.EUNPROCESSABLE:
		return http.StatusUnprocessableEntity, errs.ErrorMessage(err)
	case errs.ENOTFOUND:
		return http.StatusNotFound, errs.ErrorMessage(err)
	case errs.ECONFLICT:
		return http.StatusConflict, errs.ErrorMessage(err)
	case errs.EUNAUTHORIZED:
		return http.StatusUnauthorized, errs.ErrorMessage(err)
	case errs.ENOTIMPLEMENTED:
		return http.StatusNotImplemented, errs.ErrorMessage(err)
	}
	return http.StatusInternalServerError, internalErrorMessage
}
