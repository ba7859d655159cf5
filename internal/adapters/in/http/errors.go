package http

import (
	"errors"
	"log/slog"
	"net/http"

	"mealbox/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// envelope is the uniform body of every API response.
type envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Kind      errs.Kind `json:"kind"`
	Message   string    `json:"message"`
	Retryable bool      `json:"retryable"`
}

// StatusOf maps an error kind to the HTTP status code reported for it.
func StatusOf(err error) int {
	switch errs.KindOf(err) {
	case errs.KindValidation:
		return http.StatusBadRequest
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindInvalidTransition, errs.KindConflict:
		return http.StatusConflict
	case errs.KindPersistence:
		var persistenceErr *errs.PersistenceError
		if errors.As(err, &persistenceErr) && persistenceErr.IsTimeout() {
			return http.StatusGatewayTimeout
		}
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func ok(c echo.Context, status int, data any) error {
	return c.JSON(status, envelope{Success: true, Data: data})
}

func fail(c echo.Context, logger *slog.Logger, err error) error {
	status := StatusOf(err)
	kind := errs.KindOf(err)

	message := err.Error()
	if kind == errs.KindInternal {
		message = http.StatusText(status)
	}
	if status >= http.StatusInternalServerError {
		logger.ErrorContext(c.Request().Context(), "request failed",
			"kind", string(kind), "path", c.Path(), "error", err)
	}

	return c.JSON(status, envelope{
		Success: false,
		Error: &errorBody{
			Kind:      kind,
			Message:   message,
			Retryable: errs.IsRetryable(err),
		},
	})
}

// errorHandler renders errors that escape the handlers, such as unknown routes and
// parameter binding failures, in the same envelope.
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var httpErr *echo.HTTPError
		if !errors.As(err, &httpErr) {
			_ = fail(c, logger, err)
			return
		}

		kind := errs.KindInternal
		switch httpErr.Code {
		case http.StatusBadRequest:
			kind = errs.KindValidation
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			kind = errs.KindNotFound
		}

		message, isText := httpErr.Message.(string)
		if !isText {
			message = http.StatusText(httpErr.Code)
		}

		_ = c.JSON(httpErr.Code, envelope{
			Success: false,
			Error:   &errorBody{Kind: kind, Message: message},
		})
	}
}
