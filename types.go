package fftcompat

// TransformType is the closed transform-kind enumeration. Values match
// cuFFT's.
type TransformType int

const (
	// R2C is a single-precision real-to-complex forward transform.
	R2C TransformType = 0x2a
	// C2R is a single-precision complex-to-real inverse transform.
	C2R TransformType = 0x2c
	// C2C is a single-precision complex-to-complex transform.
	C2C TransformType = 0x29
	// D2Z is a double-precision real-to-complex forward transform.
	D2Z TransformType = 0x6a
	// Z2D is a double-precision complex-to-real inverse transform.
	Z2D TransformType = 0x6c
	// Z2Z is a double-precision complex-to-complex transform.
	Z2Z TransformType = 0x69
)

// DataType tags the element type of one side of a transform.
type DataType int

const (
	R16F DataType = iota // half-precision real
	C16F                 // half-precision complex
	R32F                 // single-precision real
	C32F                 // single-precision complex
	R64F                 // double-precision real
	C64F                 // double-precision complex
)

// Direction selects forward or inverse execution for complex-to-complex
// plans. For real transforms the direction is implied by the data types.
type Direction int

const (
	Forward  Direction = -1
	Backward Direction = 1
)

// CallbackType selects one of the eight load/store callback slots.
type CallbackType int

const (
	CallbackLoadComplex CallbackType = iota
	CallbackLoadComplexDouble
	CallbackLoadReal
	CallbackLoadRealDouble
	CallbackStoreComplex
	CallbackStoreComplexDouble
	CallbackStoreReal
	CallbackStoreRealDouble
	CallbackUndefined
)

// Property selects a version component for GetProperty.
type Property int

const (
	MajorVersion Property = iota
	MinorVersion
	PatchLevel
)
