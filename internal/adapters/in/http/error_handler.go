package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"accounts/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that maps the errs
// taxonomy to status codes and renders errorResponse. Unexpected errors are
// logged and reported as 500 without details.
func NewHTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		resp := resolveError(err)
		if resp.Code == http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "unhandled error",
				"error", err,
				"method", c.Request().Method,
				"path", c.Path(),
			)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(resp.Code)
			return
		}
		_ = c.JSON(resp.Code, resp)
	}
}

func resolveError(err error) errorResponse {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return errorResponse{Code: he.Code, Message: fmt.Sprintf("%v", he.Message)}
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorResponse{Code: http.StatusNotFound, Message: flatten(err)}
	case errors.Is(err, errs.ErrAlreadyExists):
		return errorResponse{Code: http.StatusConflict, Message: flatten(err)}
	case errors.Is(err, errs.ErrValidationFailed),
		errors.Is(err, errs.ErrInvalidFormat),
		errors.Is(err, errs.ErrValueIsRequired):
		return errorResponse{
			Code:       http.StatusBadRequest,
			Message:    flatten(err),
			Violations: violations(err),
		}
	}

	return errorResponse{Code: http.StatusInternalServerError, Message: "internal server error"}
}

// violations collects every ValidationFailedError in the error tree,
// including those joined with errors.Join.
func violations(err error) []violation {
	var out []violation

	var walk func(error)
	walk = func(e error) {
		if e == nil {
			return
		}
		if vfe, ok := e.(*errs.ValidationFailedError); ok { //nolint:errorlint // walking the tree by hand
			out = append(out, violation{Field: vfe.Field, Rule: vfe.Rule})
			return
		}
		switch u := e.(type) { //nolint:errorlint // walking the tree by hand
		case interface{ Unwrap() []error }:
			for _, inner := range u.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			walk(u.Unwrap())
		}
	}
	walk(err)

	return out
}

func flatten(err error) string {
	return strings.ReplaceAll(err.Error(), "\n", "; ")
}
