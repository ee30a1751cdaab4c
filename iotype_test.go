package fftcompat

import (
	"testing"

	"github.com/cwbudde/fftcompat/backend"
)

func TestIoTypeFromTransform(t *testing.T) {
	t.Parallel()

	cases := []struct {
		kind TransformType
		want ioType
		res  Result
	}{
		{R2C, ioType{in: R32F, out: C32F}, Success},
		{C2R, ioType{in: C32F, out: R32F}, Success},
		{C2C, ioType{in: C32F, out: C32F}, Success},
		{D2Z, ioType{in: R64F, out: C64F}, Success},
		{Z2D, ioType{in: C64F, out: R64F}, Success},
		{Z2Z, ioType{in: C64F, out: C64F}, Success},
		{TransformType(0x99), ioType{}, NotImplemented},
	}
	for _, c := range cases {
		got, res := ioTypeFromTransform(c.kind)
		if got != c.want || res != c.res {
			t.Errorf("ioTypeFromTransform(%#x) = %v, %v; want %v, %v",
				int(c.kind), got, res, c.want, c.res)
		}
	}
}

func TestIoTypeFromDataTypes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, out, exec DataType
		res           Result
	}{
		{R16F, C16F, C16F, Success},
		{R32F, C32F, C32F, Success},
		{R64F, C64F, C64F, Success},
		{C32F, C32F, C32F, Success},
		{C32F, R32F, C32F, Success},
		{C64F, R64F, C64F, Success},
		// Real input never pairs with real output.
		{R32F, R32F, C32F, InvalidValue},
		// Execution precision must match the pair's.
		{R32F, C32F, C64F, InvalidValue},
		{C64F, C64F, C32F, InvalidValue},
		// Mixed precision across the pair.
		{C32F, C64F, C32F, InvalidValue},
		{R64F, C32F, C32F, InvalidValue},
		// Real execution type is never valid.
		{C32F, C32F, R32F, InvalidValue},
		{DataType(42), C32F, C32F, NotImplemented},
	}
	for _, c := range cases {
		_, res := ioTypeFromDataTypes(c.in, c.out, c.exec)
		if res != c.res {
			t.Errorf("ioTypeFromDataTypes(%v, %v, %v) = %v, want %v",
				c.in, c.out, c.exec, res, c.res)
		}
	}
}

func TestIoTypeRoles(t *testing.T) {
	t.Parallel()

	r2c := ioType{in: R32F, out: C32F}
	c2r := ioType{in: C64F, out: R64F}
	c2c := ioType{in: C32F, out: C32F}

	if !r2c.isRealToComplex() || r2c.isComplexToReal() || r2c.isComplexToComplex() {
		t.Error("real-to-complex role misclassified")
	}
	if !c2r.isComplexToReal() || c2r.isRealToComplex() || c2r.isComplexToComplex() {
		t.Error("complex-to-real role misclassified")
	}
	if !c2c.isComplexToComplex() {
		t.Error("complex-to-complex role misclassified")
	}
}

func TestIoTypeTransformKinds(t *testing.T) {
	t.Parallel()

	kinds := ioType{in: R32F, out: C32F}.transformKinds()
	if len(kinds) != 1 || kinds[0] != backend.TransformRealForward {
		t.Errorf("real-to-complex kinds = %v", kinds)
	}
	kinds = ioType{in: C32F, out: R32F}.transformKinds()
	if len(kinds) != 1 || kinds[0] != backend.TransformRealInverse {
		t.Errorf("complex-to-real kinds = %v", kinds)
	}
	kinds = ioType{in: C64F, out: C64F}.transformKinds()
	if len(kinds) != 2 {
		t.Errorf("complex-to-complex kinds = %v", kinds)
	}
}

func TestIoTypePrecision(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   DataType
		want backend.Precision
	}{
		{R16F, backend.PrecisionHalf},
		{C16F, backend.PrecisionHalf},
		{R32F, backend.PrecisionSingle},
		{C32F, backend.PrecisionSingle},
		{R64F, backend.PrecisionDouble},
		{C64F, backend.PrecisionDouble},
	}
	for _, c := range cases {
		if got := (ioType{in: c.in, out: c.in}).precision(); got != c.want {
			t.Errorf("precision of %v = %v, want %v", c.in, got, c.want)
		}
	}
}
