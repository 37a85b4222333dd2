package utils

import "errors"

var (
	ErrTripNotFound          = errors.New("trip not found")
	ErrItineraryItemNotFound = errors.New("itinerary item not found")
	ErrCityNotFound          = errors.New("city not found")
	ErrPlaceNotFound         = errors.New("place not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrConversationNotFound  = errors.New("conversation not found")

	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidDateRange = errors.New("end date is before start date")
	ErrItemOutsideTrip  = errors.New("itinerary date is outside the trip")
	ErrInvalidFilter    = errors.New("invalid filter parameter")

	ErrStorageError = errors.New("storage error")
)
