package http

import (
	"errors"
	"net/http"

	"marketplace/internal/generated/servers"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps domain errors onto HTTP status codes so handlers never
// branch on error types themselves.
//
//	validation                -> 400
//	pricing integrity         -> 422
//	not found                 -> 404
//	insufficient balance      -> 402
//	gateway verify failure    -> 402
//	illegal transition / race -> 409
func writeError(ctx echo.Context, err error) error {
	code := statusCodeFor(err)
	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: err.Error(),
	})
}

func statusCodeFor(err error) int {
	var (
		notFound     *errs.ObjectNotFoundError
		required     *errs.ValueIsRequiredError
		invalid      *errs.ValueIsInvalidError
		outOfRange   *errs.ValueIsOutOfRangeError
		integrity    *errs.IntegrityViolationError
		insufficient *errs.InsufficientBalanceError
		gateway      *errs.GatewayVerificationFailedError
		transition   *errs.InvalidTransitionError
		conflict     *errs.ConcurrencyConflictError
	)

	switch {
	case errors.As(err, &integrity):
		return http.StatusUnprocessableEntity
	case errors.As(err, &required), errors.As(err, &invalid), errors.As(err, &outOfRange):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &insufficient), errors.As(err, &gateway):
		return http.StatusPaymentRequired
	case errors.As(err, &transition), errors.As(err, &conflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
