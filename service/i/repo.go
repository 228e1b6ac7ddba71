package i

import (
	dmn "github.com/beka-birhanu/aisle/domain"
	"github.com/google/uuid"
)

// TripRepo defines the interface for trip persistence operations.
type TripRepo interface {
	// Save inserts or updates a trip in the repository.
	Save(trip *dmn.Trip) error

	// ByID retrieves a trip by its unique ID.
	// Returns an error if the trip is not found or in case of an unexpected error.
	ByID(id uuid.UUID) (*dmn.Trip, error)
}
