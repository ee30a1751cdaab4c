package fftcompat

import (
	"unsafe"

	"github.com/cwbudde/fftcompat/backend"
)

// GetSize reports the workspace size recorded by the MakePlan call.
func (h *Handle) GetSize() (int, Result) {
	if h == nil {
		return 0, InvalidPlan
	}
	return h.workBufferSize, Success
}

// SetAutoAllocation toggles workspace auto-allocation. It does not itself
// allocate or free; the flag takes effect at the next MakePlan call. With
// auto-allocation off the caller must bind a workspace via SetWorkArea.
func (h *Handle) SetAutoAllocation(enabled bool) Result {
	if h != nil {
		h.autoAllocate = enabled
	}
	return Success
}

// SetWorkArea binds a caller-owned workspace of the previously computed size.
// Any library-owned workspace is freed first. A nil pointer clears the
// binding; the caller retains ownership of a non-nil one and must keep it
// alive across executions.
func (h *Handle) SetWorkArea(workArea unsafe.Pointer) Result {
	if h == nil {
		return InvalidPlan
	}
	if h.workBuffer != nil && h.workBufferNeedsFree {
		_ = h.engine.Free(h.workBuffer)
		h.workBuffer = nil
	}
	h.workBufferNeedsFree = false
	if workArea != nil {
		if err := h.info.SetWorkBuffer(workArea, h.workBufferSize); err != nil {
			return InvalidValue
		}
	}
	return Success
}

// SetStream routes executions of this plan onto the given stream.
func (h *Handle) SetStream(s backend.Stream) Result {
	if h == nil {
		return InvalidPlan
	}
	if err := h.info.SetStream(s); err != nil {
		return InvalidValue
	}
	return Success
}

// sizeProbe runs make against a throwaway handle and reports only the
// workspace size; the handle never escapes.
func sizeProbe(populate func(h *Handle) (int, Result)) (int, Result) {
	h, res := Create()
	if res != Success {
		return 0, res
	}
	size, mres := populate(h)
	dres := h.Destroy()
	if mres != Success {
		return 0, mres
	}
	if dres != Success {
		return 0, dres
	}
	return size, Success
}

// GetSize1D reports the workspace size a MakePlan1D with the same parameters
// would record.
func GetSize1D(nx int, kind TransformType, batch int) (int, Result) {
	if nx < 0 || batch < 0 {
		return 0, InvalidSize
	}
	return sizeProbe(func(h *Handle) (int, Result) {
		return h.MakePlan1D(nx, kind, batch)
	})
}

// GetSize2D reports the workspace size a MakePlan2D with the same parameters
// would record.
func GetSize2D(nx, ny int, kind TransformType) (int, Result) {
	if nx < 0 || ny < 0 {
		return 0, InvalidSize
	}
	return sizeProbe(func(h *Handle) (int, Result) {
		return h.MakePlan2D(nx, ny, kind)
	})
}

// GetSize3D reports the workspace size a MakePlan3D with the same parameters
// would record.
func GetSize3D(nx, ny, nz int, kind TransformType) (int, Result) {
	if nx < 0 || ny < 0 || nz < 0 {
		return 0, InvalidSize
	}
	return sizeProbe(func(h *Handle) (int, Result) {
		return h.MakePlan3D(nx, ny, nz, kind)
	})
}

// GetSizeMany reports the workspace size a MakePlanMany with the same
// parameters would record.
func GetSizeMany(rank int, n, inembed []int, istride, idist int,
	onembed []int, ostride, odist int, kind TransformType, batch int) (int, Result) {
	return sizeProbe(func(h *Handle) (int, Result) {
		return h.MakePlanMany(rank, n, inembed, istride, idist, onembed, ostride, odist, kind, batch)
	})
}

// GetSizeMany64 is GetSizeMany with 64-bit length parameters.
func GetSizeMany64(rank int, n, inembed []int64, istride, idist int64,
	onembed []int64, ostride, odist int64, kind TransformType, batch int64) (int, Result) {
	return sizeProbe(func(h *Handle) (int, Result) {
		return h.MakePlanMany64(rank, n, inembed, istride, idist, onembed, ostride, odist, kind, batch)
	})
}

// GetSizeManyTyped reports the workspace size a MakePlanManyTyped with the
// same parameters would record.
func GetSizeManyTyped(rank int, n, inembed []int64, istride, idist int64, inputType DataType,
	onembed []int64, ostride, odist int64, outputType DataType, batch int64, execType DataType) (int, Result) {
	return sizeProbe(func(h *Handle) (int, Result) {
		return h.MakePlanManyTyped(rank, n, inembed, istride, idist, inputType,
			onembed, ostride, odist, outputType, batch, execType)
	})
}

// Estimate1D estimates the workspace size for a 1-D plan. It is equivalent
// to GetSize1D.
func Estimate1D(nx int, kind TransformType, batch int) (int, Result) {
	return GetSize1D(nx, kind, batch)
}

// Estimate2D estimates the workspace size for a 2-D plan.
func Estimate2D(nx, ny int, kind TransformType) (int, Result) {
	return GetSize2D(nx, ny, kind)
}

// Estimate3D estimates the workspace size for a 3-D plan.
func Estimate3D(nx, ny, nz int, kind TransformType) (int, Result) {
	return GetSize3D(nx, ny, nz, kind)
}

// EstimateMany estimates the workspace size for an advanced-layout plan.
func EstimateMany(rank int, n, inembed []int, istride, idist int,
	onembed []int, ostride, odist int, kind TransformType, batch int) (int, Result) {
	return GetSizeMany(rank, n, inembed, istride, idist, onembed, ostride, odist, kind, batch)
}
