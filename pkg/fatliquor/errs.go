package fatliquor

import "errors"

var (
	// ErrNoOilOffer indicates a recipe with zero total oil offer. This is the
	// expected "nothing to compute" condition, not a fault: callers check it
	// with errors.Is and simply skip rendering.
	ErrNoOilOffer = errors.New("fatliquor: total oil offer is zero")

	// ErrUnknownOil indicates a recipe oil name absent from the reference table.
	ErrUnknownOil = errors.New("fatliquor: unknown oil")

	// ErrUnknownTannin indicates a vegetable tannin name absent from the
	// reference table.
	ErrUnknownTannin = errors.New("fatliquor: unknown tannin")
)
