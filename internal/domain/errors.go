package domain

import "errors"

// Sentinel errors for every failure kind the engine can surface.
// Call sites wrap these with fmt.Errorf("%w: ...") naming the offending
// entity; callers branch with errors.Is.
var (
	// ErrNotFound indicates a requested BOQ code is absent from the catalogue.
	ErrNotFound = errors.New("boq code not found")

	// ErrCatalogueInvalid indicates a structural violation in the static
	// data: duplicate code, dangling predecessor, non-positive productivity,
	// or a precedence cycle.
	ErrCatalogueInvalid = errors.New("catalogue invalid")

	// ErrInvalidQuantity indicates a non-positive quantity during sizing.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrUnresolvableQuantity indicates no quantity rule exists for a
	// (category, unit) pair.
	ErrUnresolvableQuantity = errors.New("unresolvable quantity")

	// ErrInvalidShifts indicates a shift count outside {1, 2, 3}.
	ErrInvalidShifts = errors.New("invalid shifts")

	// ErrCycleDetected indicates a dynamic cycle found during CPM.
	ErrCycleDetected = errors.New("cycle detected")

	// ErrNoStartActivity indicates every activity has a predecessor.
	ErrNoStartActivity = errors.New("no start activity")

	// ErrNoEndActivity indicates every activity has a successor.
	ErrNoEndActivity = errors.New("no end activity")

	// ErrExportFailure indicates the underlying writer refused a byte stream.
	ErrExportFailure = errors.New("export failure")
)
