package kargo

import "errors"

// Sentinel errors returned by the library.
var (
	// ErrClosed is returned when attempting to use a closed [Converter].
	ErrClosed = errors.New("kargo: converter is closed")

	// ErrNoRecords is returned when a print run has no shipments.
	ErrNoRecords = errors.New("kargo: no shipment records")
)
