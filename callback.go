package fftcompat

import (
	"unsafe"

	"github.com/cwbudde/fftcompat/backend"
)

func (h *Handle) callbackPrecisionRole(kind CallbackType) (precision backend.Precision, load, real bool, ok bool) {
	switch kind {
	case CallbackLoadComplex:
		return backend.PrecisionSingle, true, false, true
	case CallbackLoadComplexDouble:
		return backend.PrecisionDouble, true, false, true
	case CallbackLoadReal:
		return backend.PrecisionSingle, true, true, true
	case CallbackLoadRealDouble:
		return backend.PrecisionDouble, true, true, true
	case CallbackStoreComplex:
		return backend.PrecisionSingle, false, false, true
	case CallbackStoreComplexDouble:
		return backend.PrecisionDouble, false, false, true
	case CallbackStoreReal:
		return backend.PrecisionSingle, false, true, true
	case CallbackStoreRealDouble:
		return backend.PrecisionDouble, false, true, true
	}
	return 0, false, false, false
}

// registerCallbacks pushes both callback bindings at the execution-info
// handle, including the side the caller did not touch.
func (h *Handle) registerCallbacks() Result {
	if err := h.info.SetLoadCallback(h.loadCallbacks, h.loadCallbackData, h.loadSharedBytes); err != nil {
		return InvalidValue
	}
	if err := h.info.SetStoreCallback(h.storeCallbacks, h.storeCallbackData, h.storeSharedBytes); err != nil {
		return InvalidValue
	}
	return Success
}

// SetCallback attaches per-device load or store callback pointers to the
// plan. The kind's precision must match the plan's, and its real/complex
// tag must match the side it reads or writes: the load side of a
// real-to-complex plan is real, the store side of a complex-to-real plan is
// real, and complex-to-complex plans are complex on both sides.
//
// Setting callback pointers always resets the side's shared-memory size to
// zero, mirroring cuFFT.
func (h *Handle) SetCallback(callbacks []unsafe.Pointer, kind CallbackType, callbackData []unsafe.Pointer) Result {
	if h == nil {
		return InvalidPlan
	}
	precision, load, real, ok := h.callbackPrecisionRole(kind)
	if !ok {
		return InvalidValue
	}
	if h.ioType.precision() != precision {
		return InvalidValue
	}
	// The side's element type is pinned by the plan's role where the role
	// determines it; complex-to-complex plans leave it open.
	if load {
		if h.ioType.isRealToComplex() && !real {
			return InvalidValue
		}
		if h.ioType.isComplexToReal() && real {
			return InvalidValue
		}
		h.loadCallbacks = callbacks
		h.loadCallbackData = callbackData
		h.loadSharedBytes = 0
	} else {
		if h.ioType.isComplexToReal() && !real {
			return InvalidValue
		}
		if h.ioType.isRealToComplex() && real {
			return InvalidValue
		}
		h.storeCallbacks = callbacks
		h.storeCallbackData = callbackData
		h.storeSharedBytes = 0
	}
	return h.registerCallbacks()
}

// ClearCallback detaches the callback of the given kind. It is equivalent to
// SetCallback with nil pointers.
func (h *Handle) ClearCallback(kind CallbackType) Result {
	return h.SetCallback(nil, kind, nil)
}

// SetCallbackSharedSize sets the shared-memory size hint for the load or
// store side selected by kind, without touching the pointers, then
// re-registers both bindings.
func (h *Handle) SetCallbackSharedSize(kind CallbackType, sharedBytes int) Result {
	if h == nil {
		return InvalidPlan
	}
	switch kind {
	case CallbackLoadComplex, CallbackLoadComplexDouble, CallbackLoadReal, CallbackLoadRealDouble:
		h.loadSharedBytes = sharedBytes
	case CallbackStoreComplex, CallbackStoreComplexDouble, CallbackStoreReal, CallbackStoreRealDouble:
		h.storeSharedBytes = sharedBytes
	default:
		return InvalidValue
	}
	return h.registerCallbacks()
}
