package fftcompat

import "github.com/cwbudde/fftcompat/backend"

// ioType is the resolved input/output data type pair of a logical plan.
// Precision, transform role, and the valid direction set all derive from it.
type ioType struct {
	in  DataType
	out DataType
}

// ioTypeFromTransform maps the closed transform-kind enumeration to a data
// type pair.
func ioTypeFromTransform(t TransformType) (ioType, Result) {
	switch t {
	case R2C:
		return ioType{in: R32F, out: C32F}, Success
	case C2R:
		return ioType{in: C32F, out: R32F}, Success
	case C2C:
		return ioType{in: C32F, out: C32F}, Success
	case D2Z:
		return ioType{in: R64F, out: C64F}, Success
	case Z2D:
		return ioType{in: C64F, out: R64F}, Success
	case Z2Z:
		return ioType{in: C64F, out: C64F}, Success
	}
	return ioType{}, NotImplemented
}

// ioTypeFromDataTypes validates an explicit (input, output, execution) type
// triple. Real input requires complex output and execution of the same
// precision; complex input allows complex or real output of the same
// precision, with complex execution of the same precision.
func ioTypeFromDataTypes(in, out, exec DataType) (ioType, Result) {
	switch in {
	case R16F:
		if out != C16F || exec != C16F {
			return ioType{}, InvalidValue
		}
	case R32F:
		if out != C32F || exec != C32F {
			return ioType{}, InvalidValue
		}
	case R64F:
		if out != C64F || exec != C64F {
			return ioType{}, InvalidValue
		}
	case C16F:
		if (out != C16F && out != R16F) || exec != C16F {
			return ioType{}, InvalidValue
		}
	case C32F:
		if (out != C32F && out != R32F) || exec != C32F {
			return ioType{}, InvalidValue
		}
	case C64F:
		if (out != C64F && out != R64F) || exec != C64F {
			return ioType{}, InvalidValue
		}
	default:
		return ioType{}, NotImplemented
	}
	return ioType{in: in, out: out}, Success
}

// precision panics on a data type that did not come through the validated
// constructors; that path is reachable only through memory corruption.
func (t ioType) precision() backend.Precision {
	switch t.in {
	case R16F, C16F:
		return backend.PrecisionHalf
	case R32F, C32F:
		return backend.PrecisionSingle
	case R64F, C64F:
		return backend.PrecisionDouble
	}
	panic("fftcompat: unresolved input data type")
}

func (t ioType) isRealToComplex() bool {
	switch t.in {
	case R16F, R32F, R64F:
		return true
	case C16F, C32F, C64F:
		return false
	}
	panic("fftcompat: unresolved input data type")
}

func (t ioType) isComplexToReal() bool {
	switch t.out {
	case R16F, R32F, R64F:
		return true
	case C16F, C32F, C64F:
		return false
	}
	panic("fftcompat: unresolved output data type")
}

func (t ioType) isComplexToComplex() bool {
	return !t.isComplexToReal() && !t.isRealToComplex()
}

// transformKinds returns the engine transform kinds valid for this type
// pair: real-to-complex is forward only, complex-to-real inverse only,
// complex-to-complex both.
func (t ioType) transformKinds() []backend.TransformKind {
	if t.isRealToComplex() {
		return []backend.TransformKind{backend.TransformRealForward}
	}
	if t.isComplexToReal() {
		return []backend.TransformKind{backend.TransformRealInverse}
	}
	return []backend.TransformKind{
		backend.TransformComplexForward,
		backend.TransformComplexInverse,
	}
}

func isForwardKind(k backend.TransformKind) bool {
	switch k {
	case backend.TransformComplexForward, backend.TransformRealForward:
		return true
	case backend.TransformComplexInverse, backend.TransformRealInverse:
		return false
	}
	panic("fftcompat: unresolved transform kind")
}
