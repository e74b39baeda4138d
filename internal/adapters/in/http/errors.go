package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"campusfood/internal/adapters/out/auth"
	"campusfood/internal/core/application/usecases/queries"
	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/core/domain/model/shop"
	"campusfood/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrUnauthenticated is returned by handlers that need an actor when the request has none.
var ErrUnauthenticated = errors.New("authentication required")

type errorMapping struct {
	target error
	status int
	code   string
}

// Order matters: business rule errors are checked before the generic validation sentinels.
var errorMappings = []errorMapping{
	{ErrUnauthenticated, http.StatusUnauthorized, "UNAUTHENTICATED"},
	{auth.ErrInvalidToken, http.StatusUnauthorized, "INVALID_TOKEN"},
	{queries.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
	{errs.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
	{errs.ErrObjectNotFound, http.StatusNotFound, "NOT_FOUND"},
	{order.ErrItemUnavailable, http.StatusUnprocessableEntity, "ITEM_UNAVAILABLE"},
	{order.ErrCrossShopOrder, http.StatusUnprocessableEntity, "CROSS_SHOP_ORDER"},
	{order.ErrBelowMinimumOrder, http.StatusUnprocessableEntity, "BELOW_MINIMUM_ORDER"},
	{shop.ErrShopClosed, http.StatusUnprocessableEntity, "SHOP_CLOSED"},
	{order.ErrInvalidTransition, http.StatusConflict, "INVALID_TRANSITION"},
	{order.ErrOrderNotCancellable, http.StatusConflict, "ORDER_NOT_CANCELLABLE"},
	{errs.ErrAlreadyExists, http.StatusConflict, "CONFLICT"},
	{errs.ErrVersionConflict, http.StatusConflict, "CONFLICT"},
	{order.ErrEmptyOrder, http.StatusBadRequest, "EMPTY_ORDER"},
	{order.ErrInvalidLineItem, http.StatusBadRequest, "INVALID_LINE_ITEM"},
	{errs.ErrValueIsRequired, http.StatusBadRequest, "VALIDATION_ERROR"},
	{errs.ErrValueIsInvalid, http.StatusBadRequest, "VALIDATION_ERROR"},
	{errs.ErrValueIsOutOfRange, http.StatusBadRequest, "VALIDATION_ERROR"},
}

func classify(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.code
		}
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, http.StatusText(he.Code)
	}
	return http.StatusInternalServerError, "INTERNAL_ERROR"
}

// NewErrorHandler renders every error as an Error body. Unexpected errors are logged
// and their text is not sent to the client.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	logger = logger.With("component", "http")

	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		status, code := classify(err)
		message := err.Error()

		var he *echo.HTTPError
		if errors.As(err, &he) && status == he.Code {
			message = fmt.Sprint(he.Message)
		}
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(ctx.Request().Context(), "request failed",
				"method", ctx.Request().Method,
				"path", ctx.Path(),
				"error", err,
			)
			message = http.StatusText(status)
		}

		var writeErr error
		if ctx.Request().Method == http.MethodHead {
			writeErr = ctx.NoContent(status)
		} else {
			writeErr = ctx.JSON(status, Error{Code: code, Message: message})
		}
		if writeErr != nil {
			logger.ErrorContext(ctx.Request().Context(), "failed to write error response", "error", writeErr)
		}
	}
}
