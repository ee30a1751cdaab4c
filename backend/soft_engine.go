package backend

import (
	"sync"
	"unsafe"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/fftcompat/internal/layout"
)

// SoftVersion is the version string reported by the software engine.
const SoftVersion = "1.0.14"

// SoftEngine is a CPU-backed FFT engine for development and tests. It
// implements the full Engine surface; transforms run on the host via gonum.
//
// Transforms are unnormalized: a forward transform followed by an inverse one
// multiplies the data by the product of the logical lengths.
type SoftEngine struct {
	mu     sync.Mutex
	allocs map[unsafe.Pointer][]byte
}

// NewSoftEngine returns a software engine with an empty allocation table.
func NewSoftEngine() *SoftEngine {
	return &SoftEngine{allocs: make(map[unsafe.Pointer][]byte)}
}

// RegisterSoftEngine registers a fresh software engine as the active engine
// and returns it.
func RegisterSoftEngine() *SoftEngine {
	e := NewSoftEngine()
	RegisterEngine(e)
	return e
}

func (e *SoftEngine) Info() EngineInfo {
	return EngineInfo{
		Name:        "soft",
		Version:     SoftVersion,
		Description: "CPU-backed software FFT engine",
	}
}

func (e *SoftEngine) Version() (string, error) {
	return SoftVersion, nil
}

// CreatePlan validates the request and precomputes the per-axis transformers.
// Half precision is not computable on the host and is rejected. In-place real
// transforms with explicit layouts are rejected when the real side lacks the
// padding the interleaved half-spectrum needs; out-of-place creation with the
// same layout succeeds.
func (e *SoftEngine) CreatePlan(placement Placement, transform TransformKind,
	precision Precision, lengths []int, batch int, desc *PlanDescription) (Plan, error) {
	if len(lengths) < 1 || len(lengths) > layout.MaxRank {
		return nil, errors.Wrapf(ErrInvalidLength, "rank %d", len(lengths))
	}
	for _, l := range lengths {
		if l < 1 {
			return nil, errors.Wrapf(ErrInvalidLength, "length %d", l)
		}
	}
	if batch < 0 {
		return nil, errors.Wrapf(ErrInvalidLength, "batch %d", batch)
	}
	if precision == PrecisionHalf {
		return nil, errors.Wrap(ErrUnsupportedPrecision, "half precision needs device hardware")
	}

	p := &softPlan{
		placement: placement,
		kind:      transform,
		precision: precision,
		lengths:   append([]int(nil), lengths...),
		batch:     batch,
		scale:     1.0,
	}

	if desc != nil && desc.HasLayout {
		p.inType = desc.InArrayType
		p.outType = desc.OutArrayType
		p.inStrides = desc.InStrides
		p.outStrides = desc.OutStrides
		p.inDist = desc.InDist
		p.outDist = desc.OutDist
	} else {
		p.applyDefaultLayout()
	}
	if desc != nil && desc.ScaleFactor != 0 {
		p.scale = desc.ScaleFactor
	}

	if err := p.validateLayout(); err != nil {
		return nil, err
	}

	total := 1
	for _, l := range lengths {
		total *= l
	}
	// Scratch requirement stands in for a native engine's: in-place plans
	// need the full interleaved temp, out-of-place ones half of it.
	if placement == PlacementInPlace {
		p.workBytes = 16 * total
	} else {
		p.workBytes = 8 * total
	}

	p.prepareTransformers()
	return p, nil
}

func (e *SoftEngine) NewExecutionInfo() (ExecutionInfo, error) {
	return &SoftExecutionInfo{}, nil
}

func (e *SoftEngine) NewStream() (Stream, error) {
	return &softStream{}, nil
}

// Malloc allocates host memory tracked by the engine, standing in for device
// memory. The returned pointer stays valid until Free.
func (e *SoftEngine) Malloc(bytes int) (unsafe.Pointer, error) {
	if bytes < 0 {
		return nil, errors.Errorf("backend: malloc of %d bytes", bytes)
	}
	if bytes == 0 {
		bytes = 1
	}
	buf := make([]byte, bytes)
	ptr := unsafe.Pointer(&buf[0])
	e.mu.Lock()
	e.allocs[ptr] = buf
	e.mu.Unlock()
	return ptr, nil
}

func (e *SoftEngine) Free(ptr unsafe.Pointer) error {
	if ptr == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.allocs[ptr]; !ok {
		return errors.Errorf("backend: free of untracked pointer %p", ptr)
	}
	delete(e.allocs, ptr)
	return nil
}

// LiveAllocs reports how many engine allocations are outstanding.
func (e *SoftEngine) LiveAllocs() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.allocs)
}

// softPlan is one (placement, transform) engine plan.
type softPlan struct {
	placement  Placement
	kind       TransformKind
	precision  Precision
	lengths    []int
	batch      int
	inType     ArrayType
	outType    ArrayType
	inStrides  [3]int
	outStrides [3]int
	inDist     int
	outDist    int
	scale      float64
	workBytes  int
	destroyed  bool

	realFFT   *fourier.FFT
	cmplxFFTs map[int]*fourier.CmplxFFT
}

func (p *softPlan) applyDefaultLayout() {
	switch p.kind {
	case TransformRealForward:
		p.inType, p.outType = ArrayReal, ArrayHermitianInterleaved
		p.inStrides, p.inDist, p.outStrides, p.outDist =
			layout.RealForward(p.lengths, p.placement == PlacementInPlace)
	case TransformRealInverse:
		p.inType, p.outType = ArrayHermitianInterleaved, ArrayReal
		p.inStrides, p.inDist, p.outStrides, p.outDist =
			layout.RealInverse(p.lengths, p.placement == PlacementInPlace)
	default:
		p.inType, p.outType = ArrayComplexInterleaved, ArrayComplexInterleaved
		strides, dist := layout.Packed(p.lengths)
		p.inStrides, p.outStrides = strides, strides
		p.inDist, p.outDist = dist, dist
	}
}

func (p *softPlan) validateLayout() error {
	if p.placement != PlacementInPlace {
		return nil
	}
	// The real side of an in-place real transform shares storage with the
	// interleaved half-spectrum, so its rows must be padded.
	need := layout.PaddedRealLen(p.lengths[0])
	var strides [3]int
	var dist int
	switch p.kind {
	case TransformRealForward:
		strides, dist = p.inStrides, p.inDist
	case TransformRealInverse:
		strides, dist = p.outStrides, p.outDist
	default:
		return nil
	}
	if len(p.lengths) > 1 && strides[1] < need {
		return errors.Wrapf(ErrInvalidLayout,
			"in-place real rows need %d elements, row pitch is %d", need, strides[1])
	}
	if p.batch > 1 {
		rows := 1
		for _, l := range p.lengths[1:] {
			rows *= l
		}
		if dist < need*rows {
			return errors.Wrapf(ErrInvalidLayout,
				"in-place real batch needs distance %d, have %d", need*rows, dist)
		}
	}
	return nil
}

func (p *softPlan) prepareTransformers() {
	p.cmplxFFTs = make(map[int]*fourier.CmplxFFT)
	axes := p.lengths
	if p.kind == TransformRealForward || p.kind == TransformRealInverse {
		p.realFFT = fourier.NewFFT(p.lengths[0])
		axes = p.lengths[1:]
	}
	for _, n := range axes {
		if _, ok := p.cmplxFFTs[n]; !ok {
			p.cmplxFFTs[n] = fourier.NewCmplxFFT(n)
		}
	}
}

func (p *softPlan) WorkBufferSize() (int, error) {
	if p.destroyed {
		return 0, ErrPlanDestroyed
	}
	return p.workBytes, nil
}

func (p *softPlan) Execute(in, out []unsafe.Pointer, info ExecutionInfo) error {
	if p.destroyed {
		return ErrPlanDestroyed
	}
	if len(in) != 1 || len(out) != 1 {
		return errors.Errorf("backend: expected 1 input and 1 output buffer, got %d and %d",
			len(in), len(out))
	}
	if in[0] == nil || out[0] == nil {
		return ErrNilPointer
	}
	switch p.kind {
	case TransformComplexForward:
		p.execComplex(in[0], out[0], false)
	case TransformComplexInverse:
		p.execComplex(in[0], out[0], true)
	case TransformRealForward:
		p.execRealForward(in[0], out[0])
	case TransformRealInverse:
		p.execRealInverse(in[0], out[0])
	}
	return nil
}

func (p *softPlan) Destroy() error {
	if p.destroyed {
		return ErrPlanDestroyed
	}
	p.destroyed = true
	p.realFFT = nil
	p.cmplxFFTs = nil
	return nil
}

// SoftExecutionInfo records the bindings a native engine would consume at
// execution time. Accessors expose them for inspection in tests.
type SoftExecutionInfo struct {
	stream      Stream
	workPtr     unsafe.Pointer
	workBytes   int
	loadFns     []unsafe.Pointer
	loadData    []unsafe.Pointer
	loadShared  int
	storeFns    []unsafe.Pointer
	storeData   []unsafe.Pointer
	storeShared int
	destroyed   bool
}

func (i *SoftExecutionInfo) SetStream(s Stream) error {
	if i.destroyed {
		return errors.New("backend: execution info destroyed")
	}
	i.stream = s
	return nil
}

func (i *SoftExecutionInfo) SetWorkBuffer(ptr unsafe.Pointer, bytes int) error {
	if i.destroyed {
		return errors.New("backend: execution info destroyed")
	}
	i.workPtr = ptr
	i.workBytes = bytes
	return nil
}

func (i *SoftExecutionInfo) SetLoadCallback(fns, data []unsafe.Pointer, sharedBytes int) error {
	if i.destroyed {
		return errors.New("backend: execution info destroyed")
	}
	i.loadFns, i.loadData, i.loadShared = fns, data, sharedBytes
	return nil
}

func (i *SoftExecutionInfo) SetStoreCallback(fns, data []unsafe.Pointer, sharedBytes int) error {
	if i.destroyed {
		return errors.New("backend: execution info destroyed")
	}
	i.storeFns, i.storeData, i.storeShared = fns, data, sharedBytes
	return nil
}

func (i *SoftExecutionInfo) Destroy() error {
	i.destroyed = true
	return nil
}

// Stream returns the bound stream, if any.
func (i *SoftExecutionInfo) Stream() Stream { return i.stream }

// WorkBuffer returns the bound work area and its size.
func (i *SoftExecutionInfo) WorkBuffer() (unsafe.Pointer, int) { return i.workPtr, i.workBytes }

// LoadCallback returns the load-side callback binding.
func (i *SoftExecutionInfo) LoadCallback() (fns, data []unsafe.Pointer, sharedBytes int) {
	return i.loadFns, i.loadData, i.loadShared
}

// StoreCallback returns the store-side callback binding.
func (i *SoftExecutionInfo) StoreCallback() (fns, data []unsafe.Pointer, sharedBytes int) {
	return i.storeFns, i.storeData, i.storeShared
}

type softStream struct{}

func (s *softStream) Synchronize() error { return nil }
func (s *softStream) Close() error       { return nil }
