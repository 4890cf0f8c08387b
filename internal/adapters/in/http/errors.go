package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// genericFailure is the only message a client sees for unexpected errors.
const genericFailure = "Something went wrong"

// NewHTTPErrorHandler renders every error returned by handlers and middleware
// as a JSON envelope with status "error". Server side failures are logged with
// their cause; the client only gets a generic message.
func NewHTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	logger = logger.With("component", "http_error_handler")

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, message := classify(err)

		req := c.Request()
		attrs := []any{
			"method", req.Method,
			"path", c.Path(),
			"status", code,
			"error", err,
		}
		if code >= http.StatusInternalServerError {
			logger.ErrorContext(req.Context(), "request failed", attrs...)
		} else {
			logger.DebugContext(req.Context(), "request rejected", attrs...)
		}

		if req.Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, failure(message))
		}
		if err != nil {
			logger.ErrorContext(req.Context(), "failed to write error response", "error", err)
		}
	}
}

// classify maps an error to an HTTP status and a client-safe message.
func classify(err error) (int, string) {
	var (
		httpErr     *echo.HTTPError
		notFound    *errs.ObjectNotFoundError
		notAllowed  *errs.FieldIsNotAllowedError
		forbidden   *errs.ForbiddenError
		unsupported *errs.OperationNotSupportedError
	)

	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code, httpMessage(httpErr)
	case errors.As(err, &unsupported):
		return http.StatusInternalServerError, unsupported.Hint
	case errors.As(err, &forbidden):
		return http.StatusForbidden, forbidden.Reason
	case errors.As(err, &notAllowed):
		return http.StatusBadRequest, notAllowed.Reason
	case errors.As(err, &notFound):
		return http.StatusNotFound, fmt.Sprintf("No %s found with that ID", notFound.ParamName)
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, genericFailure
	}
}

func httpMessage(e *echo.HTTPError) string {
	if e.Code >= http.StatusInternalServerError {
		return genericFailure
	}
	if s, ok := e.Message.(string); ok {
		return s
	}
	return http.StatusText(e.Code)
}
