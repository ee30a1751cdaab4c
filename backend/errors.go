package backend

import "errors"

var (
	// ErrEngineUnavailable is returned when the engine is registered but not
	// usable on the current system (e.g., no device, driver missing).
	ErrEngineUnavailable = errors.New("backend: engine unavailable")

	// ErrUnsupportedPrecision is returned for precisions the engine cannot
	// compute in.
	ErrUnsupportedPrecision = errors.New("backend: unsupported precision")

	// ErrInvalidLayout is returned when a plan's data layout is not legal for
	// the requested placement.
	ErrInvalidLayout = errors.New("backend: invalid layout for placement")

	// ErrInvalidLength is returned for non-positive transform lengths.
	ErrInvalidLength = errors.New("backend: invalid length")

	// ErrPlanDestroyed is returned when a destroyed plan is used.
	ErrPlanDestroyed = errors.New("backend: plan destroyed")

	// ErrNilPointer is returned when an execution buffer pointer is nil.
	ErrNilPointer = errors.New("backend: nil buffer pointer")
)
