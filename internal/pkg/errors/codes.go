package errors

import "net/http"

var (
	ErrEmptySelection = New(
		"EMPTY_SELECTION",
		"Please select at least one location to visit",
		http.StatusBadRequest,
	)

	ErrLocationNotFound = New(
		"LOCATION_NOT_FOUND",
		"Location not found",
		http.StatusNotFound,
	)

	ErrTourNotFound = New(
		"TOUR_NOT_FOUND",
		"Tour not found",
		http.StatusNotFound,
	)

	ErrPlanNotFound = New(
		"PLAN_NOT_FOUND",
		"Plan not found",
		http.StatusNotFound,
	)

	ErrSessionNotFound = New(
		"SESSION_NOT_FOUND",
		"Planner session not found",
		http.StatusNotFound,
	)

	ErrMissingSurface = New(
		"MISSING_SURFACE",
		"Rendering surface is not available",
		http.StatusBadRequest,
	)

	ErrStoreError = New(
		"STORE_ERROR",
		"Plan store operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
