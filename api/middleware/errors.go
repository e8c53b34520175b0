package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/thesrcielos/TypingSite/internal/apperrors"
	"github.com/thesrcielos/TypingSite/internal/logger"
)

const internalErrorMessage = "Internal server error"

// ErrorHandler renders every error as {success:false, message}. Causes of 5xx
// responses are logged and replaced by a generic message.
func ErrorHandler(log *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, message := http.StatusInternalServerError, internalErrorMessage
		var appErr *apperrors.AppError
		var httpErr *echo.HTTPError
		switch {
		case errors.As(err, &appErr):
			code, message = appErr.Code, appErr.Message
		case errors.As(err, &httpErr):
			code, message = httpErr.Code, fmt.Sprint(httpErr.Message)
		}

		if code >= http.StatusInternalServerError {
			log.Error("request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err,
			)
			message = internalErrorMessage
		}

		var respErr error
		if c.Request().Method == http.MethodHead {
			respErr = c.NoContent(code)
		} else {
			respErr = c.JSON(code, echo.Map{"success": false, "message": message})
		}
		if respErr != nil {
			log.Error("error writing error response", "error", respErr)
		}
	}
}
