package fftcompat

import (
	"math"

	"github.com/cwbudde/fftcompat/backend"
	"github.com/cwbudde/fftcompat/internal/layout"
)

// planDescription is the resolved advanced layout handed down from the
// MakePlanMany entry points. Strides are fastest-dimension-first.
type planDescription struct {
	inArrayType  backend.ArrayType
	outArrayType backend.ArrayType
	inStrides    [3]int
	outStrides   [3]int
	inDist       int
	outDist      int
}

// SetScaleFactor requests that every output element be multiplied by factor.
// It must be called before the MakePlan call; engine plans created earlier
// are unaffected. The factor must be finite.
func (h *Handle) SetScaleFactor(factor float64) Result {
	if h == nil {
		return InvalidPlan
	}
	if math.IsNaN(factor) || math.IsInf(factor, 0) {
		return InvalidValue
	}
	h.scaleFactor = factor
	return Success
}

// MakePlan1D populates the plan for a batched 1-D transform of length nx.
// It reports the workspace size the plan requires.
func (h *Handle) MakePlan1D(nx int, kind TransformType, batch int) (int, Result) {
	if h == nil {
		return 0, InvalidPlan
	}
	if nx < 0 || batch < 0 {
		return 0, InvalidSize
	}
	iot, res := ioTypeFromTransform(kind)
	if res != Success {
		return 0, res
	}
	return h.makePlanInternal([]int{nx}, iot, batch, nil, false)
}

// MakePlan2D populates the plan for a 2-D transform. nx is the slowest
// dimension, matching cuFFT's argument order.
func (h *Handle) MakePlan2D(nx, ny int, kind TransformType) (int, Result) {
	if h == nil {
		return 0, InvalidPlan
	}
	if nx < 0 || ny < 0 {
		return 0, InvalidSize
	}
	iot, res := ioTypeFromTransform(kind)
	if res != Success {
		return 0, res
	}
	return h.makePlanInternal([]int{ny, nx}, iot, 1, nil, false)
}

// MakePlan3D populates the plan for a 3-D transform. nx is the slowest
// dimension.
func (h *Handle) MakePlan3D(nx, ny, nz int, kind TransformType) (int, Result) {
	if h == nil {
		return 0, InvalidPlan
	}
	if nx < 0 || ny < 0 || nz < 0 {
		return 0, InvalidSize
	}
	iot, res := ioTypeFromTransform(kind)
	if res != Success {
		return 0, res
	}
	return h.makePlanInternal([]int{nz, ny, nx}, iot, 1, nil, false)
}

// MakePlanMany populates the plan for a batched transform with an advanced
// layout. n is ordered slowest-to-fastest. inembed and onembed must be both
// nil (natural layout) or both non-nil; when nil, istride, idist, ostride,
// and odist are ignored and natural strides are derived per placement.
func (h *Handle) MakePlanMany(rank int, n, inembed []int, istride, idist int,
	onembed []int, ostride, odist int, kind TransformType, batch int) (int, Result) {
	if h == nil {
		return 0, InvalidPlan
	}
	iot, res := ioTypeFromTransform(kind)
	if res != Success {
		return 0, res
	}
	return makePlanMany(h, rank, n, inembed, istride, idist, onembed, ostride, odist, iot, batch)
}

// MakePlanMany64 is MakePlanMany with 64-bit length parameters.
func (h *Handle) MakePlanMany64(rank int, n, inembed []int64, istride, idist int64,
	onembed []int64, ostride, odist int64, kind TransformType, batch int64) (int, Result) {
	if h == nil {
		return 0, InvalidPlan
	}
	iot, res := ioTypeFromTransform(kind)
	if res != Success {
		return 0, res
	}
	return makePlanMany(h, rank, n, inembed, istride, idist, onembed, ostride, odist, iot, batch)
}

// MakePlanManyTyped populates the plan from an explicit (input, output,
// execution) data type triple instead of the closed transform enumeration.
func (h *Handle) MakePlanManyTyped(rank int, n, inembed []int64, istride, idist int64, inputType DataType,
	onembed []int64, ostride, odist int64, outputType DataType, batch int64, execType DataType) (int, Result) {
	if h == nil {
		return 0, InvalidPlan
	}
	iot, res := ioTypeFromDataTypes(inputType, outputType, execType)
	if res != Success {
		return 0, res
	}
	return makePlanMany(h, rank, n, inembed, istride, idist, onembed, ostride, odist, iot, batch)
}

type planInt interface {
	~int | ~int64
}

func makePlanMany[T planInt](h *Handle, rank int, n, inembed []T, istride, idist T,
	onembed []T, ostride, odist T, iot ioType, batch T) (int, Result) {
	if (inembed != nil) != (onembed != nil) ||
		rank < 1 || rank > layout.MaxRank || len(n) < rank ||
		istride < 0 || idist < 0 || ostride < 0 || odist < 0 {
		return 0, InvalidValue
	}
	for _, v := range n[:rank] {
		if v < 0 {
			return 0, InvalidValue
		}
	}
	for _, embed := range [][]T{inembed, onembed} {
		if embed == nil {
			continue
		}
		if len(embed) < rank {
			return 0, InvalidValue
		}
		for _, v := range embed[:rank] {
			if v < 0 {
				return 0, InvalidSize
			}
		}
	}
	if batch < 0 {
		return 0, InvalidSize
	}

	// Callers pass dimensions slowest-first; everything below is
	// fastest-first.
	lengths := make([]int, rank)
	for i := 0; i < rank; i++ {
		lengths[i] = int(n[rank-1-i])
	}

	desc := &planDescription{}
	switch {
	case iot.isRealToComplex():
		desc.inArrayType = backend.ArrayReal
		desc.outArrayType = backend.ArrayHermitianInterleaved
	case iot.isComplexToReal():
		desc.inArrayType = backend.ArrayHermitianInterleaved
		desc.outArrayType = backend.ArrayReal
	default:
		desc.inArrayType = backend.ArrayComplexInterleaved
		desc.outArrayType = backend.ArrayComplexInterleaved
	}

	recalc := inembed == nil || onembed == nil

	iStrides := [3]int{1, 1, 1}
	oStrides := [3]int{1, 1, 1}
	for i := 1; i < rank; i++ {
		iStrides[i] = lengths[i-1] * iStrides[i-1]
		oStrides[i] = lengths[i-1] * oStrides[i-1]
	}
	if inembed != nil {
		iStrides[0] = int(istride)
		var embedLengths [3]int
		for i := 0; i < rank; i++ {
			embedLengths[i] = int(inembed[rank-1-i])
		}
		for i := 1; i < rank; i++ {
			iStrides[i] = embedLengths[i-1] * iStrides[i-1]
		}
	}
	if onembed != nil {
		oStrides[0] = int(ostride)
		var embedLengths [3]int
		for i := 0; i < rank; i++ {
			embedLengths[i] = int(onembed[rank-1-i])
		}
		for i := 1; i < rank; i++ {
			oStrides[i] = embedLengths[i-1] * oStrides[i-1]
		}
	}

	desc.inStrides = iStrides
	desc.inDist = int(idist)
	desc.outStrides = oStrides
	desc.outDist = int(odist)

	return h.makePlanInternal(lengths, iot, int(batch), desc, recalc)
}

func layoutDesc(d *planDescription, inStrides [3]int, inDist int, outStrides [3]int, outDist int) *backend.PlanDescription {
	return &backend.PlanDescription{
		HasLayout:    true,
		InArrayType:  d.inArrayType,
		OutArrayType: d.outArrayType,
		InStrides:    inStrides,
		OutStrides:   outStrides,
		InDist:       inDist,
		OutDist:      outDist,
	}
}

// makePlanInternal derives the per-slot layouts, attempts to create every
// engine plan in the type pair's direction set for both placements, sizes the
// workspace off the surviving plans, and allocates it when auto-allocation is
// on. Individual plan creations may fail; the call only fails outright when
// none survive.
func (h *Handle) makePlanInternal(lengths []int, iot ioType, batch int,
	desc *planDescription, recalcStrides bool) (int, Result) {
	var ipForwardDesc, opForwardDesc, ipInverseDesc, opInverseDesc *backend.PlanDescription

	if desc != nil {
		if recalcStrides {
			switch {
			case desc.inArrayType == backend.ArrayReal:
				// Real-to-complex: in-place input rows are padded for the
				// interleaved half-spectrum, out-of-place ones are packed.
				iStr, iDist := layout.PaddedReal(lengths)
				oStr, oDist := layout.Hermitian(lengths)
				iStr[0], oStr[0] = desc.inStrides[0], desc.outStrides[0]
				ipForwardDesc = layoutDesc(desc, iStr, iDist, oStr, oDist)

				iStr, iDist = layout.Packed(lengths)
				oStr, oDist = layout.Hermitian(lengths)
				iStr[0], oStr[0] = desc.inStrides[0], desc.outStrides[0]
				opForwardDesc = layoutDesc(desc, iStr, iDist, oStr, oDist)
			case desc.outArrayType == backend.ArrayReal:
				// Complex-to-real mirrors the real-to-complex asymmetry.
				iStr, iDist := layout.Hermitian(lengths)
				oStr, oDist := layout.PaddedReal(lengths)
				iStr[0], oStr[0] = desc.inStrides[0], desc.outStrides[0]
				ipInverseDesc = layoutDesc(desc, iStr, iDist, oStr, oDist)

				iStr, iDist = layout.Hermitian(lengths)
				oStr, oDist = layout.Packed(lengths)
				iStr[0], oStr[0] = desc.inStrides[0], desc.outStrides[0]
				opInverseDesc = layoutDesc(desc, iStr, iDist, oStr, oDist)
			default:
				_, dist := layout.Packed(lengths)
				ipForwardDesc = layoutDesc(desc, desc.inStrides, dist, desc.outStrides, dist)
				opForwardDesc = layoutDesc(desc, desc.inStrides, dist, desc.outStrides, dist)
				ipInverseDesc = layoutDesc(desc, desc.inStrides, dist, desc.outStrides, dist)
				opInverseDesc = layoutDesc(desc, desc.inStrides, dist, desc.outStrides, dist)
			}
		} else {
			// Caller-supplied strides and distances apply to every slot.
			ipForwardDesc = layoutDesc(desc, desc.inStrides, desc.inDist, desc.outStrides, desc.outDist)
			opForwardDesc = layoutDesc(desc, desc.inStrides, desc.inDist, desc.outStrides, desc.outDist)
			ipInverseDesc = layoutDesc(desc, desc.inStrides, desc.inDist, desc.outStrides, desc.outDist)
			opInverseDesc = layoutDesc(desc, desc.inStrides, desc.inDist, desc.outStrides, desc.outDist)
		}
	}

	if h.scaleFactor != 1.0 {
		// The scale factor rides on the layout descriptors; create empty
		// ones where no layout was derived.
		for _, d := range []**backend.PlanDescription{
			&ipForwardDesc, &opForwardDesc, &ipInverseDesc, &opInverseDesc,
		} {
			if *d == nil {
				*d = &backend.PlanDescription{}
			}
			(*d).ScaleFactor = h.scaleFactor
		}
	}

	descFor := func(inplace, forward bool) *backend.PlanDescription {
		switch {
		case inplace && forward:
			return ipForwardDesc
		case !inplace && forward:
			return opForwardDesc
		case inplace && !forward:
			return ipInverseDesc
		default:
			return opInverseDesc
		}
	}

	// Some layouts are legal out-of-place but not in-place, so individual
	// creations may fail. Count survivors and only give up if none made it.
	plansCreated := 0
	for _, t := range iot.transformKinds() {
		forward := isForwardKind(t)
		for _, placement := range []backend.Placement{backend.PlacementInPlace, backend.PlacementNotInPlace} {
			inplace := placement == backend.PlacementInPlace
			slot := h.slot(inplace, forward)
			pl, err := h.engine.CreatePlan(placement, t, iot.precision(), lengths, batch, descFor(inplace, forward))
			if err != nil {
				*slot = nil
				continue
			}
			*slot = pl
			plansCreated++
		}
	}
	if plansCreated == 0 {
		return 0, ParseError
	}
	h.ioType = iot

	workBufferSize := 0
	query := func(pl backend.Plan) Result {
		if pl == nil {
			return Success
		}
		sz, err := pl.WorkBufferSize()
		if err != nil {
			return InvalidValue
		}
		if sz > workBufferSize {
			workBufferSize = sz
		}
		return Success
	}

	// Only the direction set the type pair can execute contributes to the
	// workspace requirement.
	if !iot.isComplexToReal() {
		if res := query(h.plans[slotInPlace][slotForward]); res != Success {
			return 0, res
		}
		if res := query(h.plans[slotOutOfPlace][slotForward]); res != Success {
			return 0, res
		}
	}
	if !iot.isRealToComplex() {
		if res := query(h.plans[slotInPlace][slotInverse]); res != Success {
			return 0, res
		}
		if res := query(h.plans[slotOutOfPlace][slotInverse]); res != Success {
			return 0, res
		}
	}

	if workBufferSize > 0 && h.autoAllocate {
		if h.workBuffer != nil && h.workBufferNeedsFree {
			if err := h.engine.Free(h.workBuffer); err != nil {
				return 0, AllocFailed
			}
			h.workBuffer = nil
		}
		ptr, err := h.engine.Malloc(workBufferSize)
		if err != nil {
			return 0, AllocFailed
		}
		h.workBuffer = ptr
		h.workBufferNeedsFree = true
		if err := h.info.SetWorkBuffer(ptr, workBufferSize); err != nil {
			return 0, InvalidValue
		}
	}

	h.workBufferSize = workBufferSize
	return workBufferSize, Success
}

// Plan1D creates a handle and populates it in one call. The handle is
// returned even when plan population fails, and must be destroyed either way.
func Plan1D(nx int, kind TransformType, batch int) (*Handle, Result) {
	h, res := Create()
	if res != Success {
		return nil, res
	}
	_, res = h.MakePlan1D(nx, kind, batch)
	return h, res
}

// Plan2D creates a handle and populates it for a 2-D transform.
func Plan2D(nx, ny int, kind TransformType) (*Handle, Result) {
	h, res := Create()
	if res != Success {
		return nil, res
	}
	_, res = h.MakePlan2D(nx, ny, kind)
	return h, res
}

// Plan3D creates a handle and populates it for a 3-D transform.
func Plan3D(nx, ny, nz int, kind TransformType) (*Handle, Result) {
	h, res := Create()
	if res != Success {
		return nil, res
	}
	_, res = h.MakePlan3D(nx, ny, nz, kind)
	return h, res
}

// PlanMany creates a handle and populates it with an advanced layout.
func PlanMany(rank int, n, inembed []int, istride, idist int,
	onembed []int, ostride, odist int, kind TransformType, batch int) (*Handle, Result) {
	h, res := Create()
	if res != Success {
		return nil, res
	}
	_, res = h.MakePlanMany(rank, n, inembed, istride, idist, onembed, ostride, odist, kind, batch)
	return h, res
}
