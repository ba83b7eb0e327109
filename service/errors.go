package service

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrEmptyOrder          = errors.New("order needs at least one item")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrOrderNotPending     = errors.New("order is not pending")
	ErrNoActiveOrder       = errors.New("no active order")
	ErrInvalidCancellation = errors.New("invalid cancellation")
	ErrInvalidSplit        = errors.New("invalid split")
	ErrInvalidDiscount     = errors.New("invalid discount percentage")
	ErrInvalidPayment      = errors.New("invalid payment method")
	ErrUnderpaid           = errors.New("amount received is below the order total")
	ErrTableOccupied       = errors.New("table already has an open order")
	ErrTableNotAvailable   = errors.New("destination table is not available")
	ErrActiveTablesExist   = errors.New("tables are still occupied")
	ErrAlreadyClosed       = errors.New("day already closed")
	ErrInvalidDate         = errors.New("invalid date")
	ErrDuplicateRequest    = errors.New("duplicate request")
)

// HTTPStatus maps an engine error to the status the JSON boundary returns.
// Anything unrecognized is an internal error.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrNoActiveOrder):
		return http.StatusNotFound
	case errors.Is(err, ErrEmptyOrder),
		errors.Is(err, ErrInvalidCancellation),
		errors.Is(err, ErrInvalidSplit),
		errors.Is(err, ErrInvalidDiscount),
		errors.Is(err, ErrInvalidPayment),
		errors.Is(err, ErrUnderpaid),
		errors.Is(err, ErrInvalidDate):
		return http.StatusBadRequest
	case errors.Is(err, ErrInsufficientStock),
		errors.Is(err, ErrOrderNotPending),
		errors.Is(err, ErrTableOccupied),
		errors.Is(err, ErrTableNotAvailable),
		errors.Is(err, ErrActiveTablesExist),
		errors.Is(err, ErrAlreadyClosed),
		errors.Is(err, ErrDuplicateRequest):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
