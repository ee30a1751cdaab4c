package fftcompat

import (
	"unsafe"

	"github.com/cwbudde/fftcompat/backend"
)

// Slot indices for the engine-plan table: placement first, direction second.
const (
	slotInPlace    = 0
	slotOutOfPlace = 1
	slotForward    = 0
	slotInverse    = 1
)

// Handle is an opaque logical plan. It owns up to four engine plans keyed by
// placement and direction, one execution-info binding shared by all of them,
// and the workspace buffer they execute against.
//
// A Handle must not be mutated concurrently with itself or with one of its
// in-flight executions. Distinct handles are independent.
type Handle struct {
	engine backend.Engine
	ioType ioType

	// Execution compatibility requires all four placement × direction
	// combinations to be held separately.
	plans [2][2]backend.Plan

	info                backend.ExecutionInfo
	workBuffer          unsafe.Pointer
	workBufferSize      int
	autoAllocate        bool
	workBufferNeedsFree bool

	loadCallbacks     []unsafe.Pointer
	loadCallbackData  []unsafe.Pointer
	loadSharedBytes   int
	storeCallbacks    []unsafe.Pointer
	storeCallbackData []unsafe.Pointer
	storeSharedBytes  int

	scaleFactor float64
}

// Create allocates an empty logical plan against the registered engine.
// The handle must be destroyed exactly once, even if a later MakePlan call
// fails.
func Create() (*Handle, Result) {
	eng := backend.ActiveEngine()
	if eng == nil {
		return nil, InternalError
	}
	info, err := eng.NewExecutionInfo()
	if err != nil {
		return nil, InvalidValue
	}
	return &Handle{
		engine:       eng,
		ioType:       ioType{in: C32F, out: C32F},
		info:         info,
		autoAllocate: true,
		scaleFactor:  1.0,
	}, Success
}

func (h *Handle) slot(inplace bool, forward bool) *backend.Plan {
	p, d := slotOutOfPlace, slotInverse
	if inplace {
		p = slotInPlace
	}
	if forward {
		d = slotForward
	}
	return &h.plans[p][d]
}

// Destroy releases every engine plan, the execution-info binding, and any
// library-owned workspace. Destroying a nil handle is a no-op. A second
// Destroy on the same handle succeeds without touching the engine.
func (h *Handle) Destroy() Result {
	if h == nil {
		return Success
	}
	for p := range h.plans {
		for d := range h.plans[p] {
			if h.plans[p][d] == nil {
				continue
			}
			if err := h.plans[p][d].Destroy(); err != nil {
				return InvalidValue
			}
			h.plans[p][d] = nil
		}
	}
	if h.workBufferNeedsFree {
		_ = h.engine.Free(h.workBuffer)
		h.workBuffer = nil
		h.workBufferNeedsFree = false
	}
	if h.info != nil {
		if err := h.info.Destroy(); err != nil {
			return InvalidValue
		}
		h.info = nil
	}
	return Success
}
