package domain

import "errors"

// Input errors: caller-correctable, the calculation does not proceed.
var (
	ErrEmptySelection  = errors.New("select at least one item")
	ErrMissingDistance = errors.New("distance is not available, confirm the addresses first")
	ErrUnknownItem     = errors.New("unknown item")
	ErrInvalidInput    = errors.New("invalid input")
)

// Adapter errors returned by geocoding and distance providers.
var (
	ErrAddressNotFound = errors.New("no results found for address")
	ErrInvalidKey      = errors.New("maps request denied, check the API key and billing settings")
	ErrInvalidRequest  = errors.New("invalid maps request, check the address format")
	ErrQuotaExceeded   = errors.New("maps quota exceeded, try again later")
	ErrRouteNotFound   = errors.New("no route found between the locations")
	ErrNetwork         = errors.New("network error")
	ErrTimeout         = errors.New("request timed out")
	ErrUpstream        = errors.New("maps provider error")
)
