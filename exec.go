package fftcompat

import (
	"unsafe"

	"github.com/cwbudde/fftcompat/backend"
)

// execPlan issues the engine execute call for one selected plan. An empty
// slot or nil buffer pointer fails the execution.
func (h *Handle) execPlan(pl backend.Plan, idata, odata unsafe.Pointer) Result {
	if pl == nil {
		return ExecFailed
	}
	if idata == nil || odata == nil {
		return ExecFailed
	}
	in := []unsafe.Pointer{idata}
	out := []unsafe.Pointer{odata}
	if err := pl.Execute(in, out, h.info); err != nil {
		return ExecFailed
	}
	return Success
}

// Placement is never passed explicitly: it is observed from pointer equality
// at every call.
func (h *Handle) execForward(idata, odata unsafe.Pointer) Result {
	inplace := idata == odata
	return h.execPlan(*h.slot(inplace, true), idata, odata)
}

func (h *Handle) execBackward(idata, odata unsafe.Pointer) Result {
	inplace := idata == odata
	return h.execPlan(*h.slot(inplace, false), idata, odata)
}

// ExecC2C executes a single-precision complex-to-complex transform in the
// given direction. An unrecognized direction fails the execution.
func (h *Handle) ExecC2C(idata, odata *complex64, direction Direction) Result {
	if h == nil {
		return InvalidPlan
	}
	switch direction {
	case Forward:
		return h.execForward(unsafe.Pointer(idata), unsafe.Pointer(odata))
	case Backward:
		return h.execBackward(unsafe.Pointer(idata), unsafe.Pointer(odata))
	}
	return ExecFailed
}

// ExecR2C executes a single-precision real-to-complex forward transform.
func (h *Handle) ExecR2C(idata *float32, odata *complex64) Result {
	if h == nil {
		return InvalidPlan
	}
	return h.execForward(unsafe.Pointer(idata), unsafe.Pointer(odata))
}

// ExecC2R executes a single-precision complex-to-real inverse transform.
func (h *Handle) ExecC2R(idata *complex64, odata *float32) Result {
	if h == nil {
		return InvalidPlan
	}
	return h.execBackward(unsafe.Pointer(idata), unsafe.Pointer(odata))
}

// ExecZ2Z executes a double-precision complex-to-complex transform in the
// given direction.
func (h *Handle) ExecZ2Z(idata, odata *complex128, direction Direction) Result {
	if h == nil {
		return InvalidPlan
	}
	switch direction {
	case Forward:
		return h.execForward(unsafe.Pointer(idata), unsafe.Pointer(odata))
	case Backward:
		return h.execBackward(unsafe.Pointer(idata), unsafe.Pointer(odata))
	}
	return ExecFailed
}

// ExecD2Z executes a double-precision real-to-complex forward transform.
func (h *Handle) ExecD2Z(idata *float64, odata *complex128) Result {
	if h == nil {
		return InvalidPlan
	}
	return h.execForward(unsafe.Pointer(idata), unsafe.Pointer(odata))
}

// ExecZ2D executes a double-precision complex-to-real inverse transform.
func (h *Handle) ExecZ2D(idata *complex128, odata *float64) Result {
	if h == nil {
		return InvalidPlan
	}
	return h.execBackward(unsafe.Pointer(idata), unsafe.Pointer(odata))
}

// Exec executes the plan on untyped buffers. For real transforms the
// direction implied by the data types silently wins over a mismatched
// direction argument; the argument only decides for complex-to-complex
// plans. Exec reports InternalError when the transform's role leaves the
// direction undetermined.
func (h *Handle) Exec(input, output unsafe.Pointer, direction Direction) Result {
	if h == nil {
		return InvalidPlan
	}
	inplace := input == output
	var forward bool
	switch {
	case h.ioType.isRealToComplex():
		forward = true
	case h.ioType.isComplexToReal():
		forward = false
	case direction == Forward:
		forward = true
	case direction == Backward:
		forward = false
	default:
		return InternalError
	}
	return h.execPlan(*h.slot(inplace, forward), input, output)
}
