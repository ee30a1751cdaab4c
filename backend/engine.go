package backend

import (
	"sync"
	"unsafe"
)

// Precision selects the floating-point width an engine plan computes in.
type Precision uint8

const (
	PrecisionHalf Precision = iota
	PrecisionSingle
	PrecisionDouble
)

// TransformKind is the engine-level transform selector. Real transforms have
// a fixed direction; complex transforms carry theirs in the kind.
type TransformKind uint8

const (
	TransformComplexForward TransformKind = iota
	TransformComplexInverse
	TransformRealForward
	TransformRealInverse
)

// Placement says whether a plan reads and writes the same buffer.
type Placement uint8

const (
	PlacementInPlace Placement = iota
	PlacementNotInPlace
)

// ArrayType describes how one side of a transform is laid out in memory.
type ArrayType uint8

const (
	ArrayComplexInterleaved ArrayType = iota
	ArrayHermitianInterleaved
	ArrayReal
)

// PlanDescription carries an explicit data layout and scale factor for plan
// creation. Strides are fastest-dimension-first, in elements of the side's
// array type. When HasLayout is false the engine derives its own default
// layout and only ScaleFactor is meaningful.
type PlanDescription struct {
	HasLayout    bool
	InArrayType  ArrayType
	OutArrayType ArrayType
	InStrides    [3]int
	OutStrides   [3]int
	InDist       int
	OutDist      int

	// ScaleFactor multiplies every output element. Zero means unset.
	ScaleFactor float64
}

// Engine is implemented by native FFT execution engines.
//
// CreatePlan may fail for layouts that are legal for one placement but not
// the other; callers are expected to tolerate per-plan failures. The lengths
// slice is fastest-dimension-first. A nil desc requests engine-default
// layout with no scaling.
type Engine interface {
	Info() EngineInfo
	CreatePlan(placement Placement, transform TransformKind, precision Precision,
		lengths []int, batch int, desc *PlanDescription) (Plan, error)
	NewExecutionInfo() (ExecutionInfo, error)
	NewStream() (Stream, error)
	// Malloc allocates bytes of engine-visible memory. Free releases it.
	Malloc(bytes int) (unsafe.Pointer, error)
	Free(ptr unsafe.Pointer) error
	// Version reports the engine version as a dotted string.
	Version() (string, error)
}

// EngineInfo describes an engine implementation.
type EngineInfo struct {
	Name        string
	Version     string
	Description string
}

// Plan is a single engine plan for one (placement, transform) combination.
type Plan interface {
	// WorkBufferSize reports the scratch bytes the plan needs at execution.
	WorkBufferSize() (int, error)
	// Execute runs the transform. in and out hold one buffer pointer per
	// batched data set; current engines accept exactly one of each.
	Execute(in, out []unsafe.Pointer, info ExecutionInfo) error
	Destroy() error
}

// ExecutionInfo holds per-execution bindings shared by all plans of one
// logical plan: stream, work buffer, and load/store callbacks.
type ExecutionInfo interface {
	SetStream(s Stream) error
	SetWorkBuffer(ptr unsafe.Pointer, bytes int) error
	SetLoadCallback(fns, data []unsafe.Pointer, sharedBytes int) error
	SetStoreCallback(fns, data []unsafe.Pointer, sharedBytes int) error
	Destroy() error
}

// Stream represents an execution queue/stream.
type Stream interface {
	Synchronize() error
	Close() error
}

var (
	engineMu sync.RWMutex
	engine   Engine
)

// RegisterEngine installs the active engine. Passing nil clears it.
func RegisterEngine(e Engine) {
	engineMu.Lock()
	engine = e
	engineMu.Unlock()
}

// ActiveEngine returns the registered engine, or nil if none is registered.
func ActiveEngine() Engine {
	engineMu.RLock()
	e := engine
	engineMu.RUnlock()
	return e
}

// ActiveEngineInfo reports the currently registered engine, if any.
func ActiveEngineInfo() (EngineInfo, bool) {
	e := ActiveEngine()
	if e == nil {
		return EngineInfo{}, false
	}
	return e.Info(), true
}
