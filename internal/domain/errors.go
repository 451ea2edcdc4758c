package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrNotFound is returned when a requested entity does not exist
	ErrNotFound = errors.New("not found")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrVisionAPIFailure is returned when the vision API request fails
	ErrVisionAPIFailure = errors.New("vision API request failed")

	// ErrShoppingAPIFailure is returned when the shopping API request fails
	ErrShoppingAPIFailure = errors.New("shopping API request failed")

	// ErrPlacesAPIFailure is returned when the places API request fails
	ErrPlacesAPIFailure = errors.New("places API request failed")
)
