// Package status maps service errors to HTTP status codes.
package status

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/aisle/catalog"
	dmn "github.com/beka-birhanu/aisle/domain"
	"github.com/beka-birhanu/aisle/service"
	"github.com/beka-birhanu/aisle/solver"
)

var badRequest = []error{
	dmn.ErrNoItems,
	dmn.ErrInvalidItemID,
	dmn.ErrItemNameTooLong,
	catalog.ErrUnknownItem,
	solver.ErrTooManyWaypoints,
	solver.ErrResumeOutOfRange,
}

// Of returns the status code for err.
func Of(err error) int {
	for _, target := range badRequest {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	switch {
	case errors.Is(err, dmn.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, solver.ErrNoSolution):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrTimeout):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}
