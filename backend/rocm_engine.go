//go:build rocm

package backend

import "unsafe"

// ROCmEngine is a stub engine enabled with the "rocm" build tag.
// It does not provide a working implementation yet.
type ROCmEngine struct{}

func (e *ROCmEngine) Info() EngineInfo {
	return EngineInfo{
		Name:        "rocm",
		Version:     "stub",
		Description: "ROCm engine stub (no implementation)",
	}
}

func (e *ROCmEngine) CreatePlan(_ Placement, _ TransformKind, _ Precision,
	_ []int, _ int, _ *PlanDescription) (Plan, error) {
	return nil, ErrEngineUnavailable
}

func (e *ROCmEngine) NewExecutionInfo() (ExecutionInfo, error) {
	return nil, ErrEngineUnavailable
}

func (e *ROCmEngine) NewStream() (Stream, error) {
	return nil, ErrEngineUnavailable
}

func (e *ROCmEngine) Malloc(_ int) (unsafe.Pointer, error) {
	return nil, ErrEngineUnavailable
}

func (e *ROCmEngine) Free(_ unsafe.Pointer) error {
	return ErrEngineUnavailable
}

func (e *ROCmEngine) Version() (string, error) {
	return "", ErrEngineUnavailable
}

// RegisterROCmEngine registers the ROCm engine stub.
func RegisterROCmEngine() {
	RegisterEngine(&ROCmEngine{})
}
