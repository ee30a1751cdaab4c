package fftcompat

import (
	"math"
	"testing"
	"unsafe"
)

func TestExecC2CRoundTrip(t *testing.T) {
	t.Parallel()

	for _, nx := range []int{1, 2, 17, 1024} {
		for _, batch := range []int{1, 4} {
			h := mustPlan1D(t, nx, C2C, batch)

			src := make([]complex64, nx*batch)
			for i := range src {
				src[i] = complex(float32(i%13)-6, float32(i%7)-3)
			}
			freq := make([]complex64, nx*batch)
			back := make([]complex64, nx*batch)

			if res := h.ExecC2C(&src[0], &freq[0], Forward); res != Success {
				t.Fatalf("nx=%d batch=%d forward: %v", nx, batch, res)
			}
			if res := h.ExecC2C(&freq[0], &back[0], Backward); res != Success {
				t.Fatalf("nx=%d batch=%d backward: %v", nx, batch, res)
			}

			// Unnormalized round trip multiplies by the transform length.
			for i := range src {
				got := back[i] / complex(float32(nx), 0)
				if cmplxAbs64(got-src[i]) > 1e-3 {
					t.Fatalf("nx=%d batch=%d element %d: got %v, want %v",
						nx, batch, i, got, src[i])
				}
			}
		}
	}
}

func TestExecZ2ZRoundTripInPlace(t *testing.T) {
	t.Parallel()

	const nx = 32
	h := mustPlan1D(t, nx, Z2Z, 1)

	buf := make([]complex128, nx)
	want := make([]complex128, nx)
	for i := range buf {
		buf[i] = complex(math.Cos(float64(i)), math.Sin(3*float64(i)))
		want[i] = buf[i]
	}

	if res := h.ExecZ2Z(&buf[0], &buf[0], Forward); res != Success {
		t.Fatalf("in-place forward: %v", res)
	}
	if res := h.ExecZ2Z(&buf[0], &buf[0], Backward); res != Success {
		t.Fatalf("in-place backward: %v", res)
	}
	for i := range buf {
		got := buf[i] / complex(nx, 0)
		if cmplxAbs(got-want[i]) > 1e-10 {
			t.Fatalf("element %d: got %v, want %v", i, got, want[i])
		}
	}
}

func TestExecRealRoundTrip(t *testing.T) {
	t.Parallel()

	const nx = 16
	fwd := mustPlan1D(t, nx, R2C, 1)
	inv := mustPlan1D(t, nx, C2R, 1)

	src := make([]float32, nx)
	for i := range src {
		src[i] = float32(i*i%7) - 3
	}
	freq := make([]complex64, nx/2+1)
	back := make([]float32, nx)

	if res := fwd.ExecR2C(&src[0], &freq[0]); res != Success {
		t.Fatalf("ExecR2C: %v", res)
	}
	if res := inv.ExecC2R(&freq[0], &back[0]); res != Success {
		t.Fatalf("ExecC2R: %v", res)
	}
	for i := range src {
		got := back[i] / float32(nx)
		if math.Abs(float64(got-src[i])) > 1e-4 {
			t.Fatalf("element %d: got %v, want %v", i, got, src[i])
		}
	}
}

func TestExecDoubleReal2DRoundTrip(t *testing.T) {
	t.Parallel()

	// nx is the slow dimension, so the data is 4 rows of 8 elements.
	hf, res := Plan2D(4, 8, D2Z)
	if res != Success {
		t.Fatalf("Plan2D D2Z: %v", res)
	}
	defer hf.Destroy()
	hi, res := Plan2D(4, 8, Z2D)
	if res != Success {
		t.Fatalf("Plan2D Z2D: %v", res)
	}
	defer hi.Destroy()

	const total = 32
	src := make([]float64, total)
	for i := range src {
		src[i] = float64(i%11) - 5
	}
	freq := make([]complex128, 5*4)
	back := make([]float64, total)

	if res := hf.ExecD2Z(&src[0], &freq[0]); res != Success {
		t.Fatalf("ExecD2Z: %v", res)
	}
	if res := hi.ExecZ2D(&freq[0], &back[0]); res != Success {
		t.Fatalf("ExecZ2D: %v", res)
	}
	for i := range src {
		if math.Abs(back[i]/total-src[i]) > 1e-10 {
			t.Fatalf("element %d: got %v, want %v", i, back[i]/total, src[i])
		}
	}
}

func TestExecC2CInvalidDirection(t *testing.T) {
	t.Parallel()

	h := mustPlan1D(t, 8, C2C, 1)
	buf := make([]complex64, 8)
	if res := h.ExecC2C(&buf[0], &buf[0], Direction(0)); res != ExecFailed {
		t.Errorf("invalid direction: %v, want ExecFailed", res)
	}
	if res := h.ExecZ2Z((*complex128)(nil), (*complex128)(nil), Direction(3)); res != ExecFailed {
		t.Errorf("invalid direction on Z2Z: %v, want ExecFailed", res)
	}
}

func TestExecNilBuffer(t *testing.T) {
	t.Parallel()

	h := mustPlan1D(t, 8, C2C, 1)
	buf := make([]complex64, 8)
	if res := h.ExecC2C(nil, &buf[0], Forward); res != ExecFailed {
		t.Errorf("nil input: %v, want ExecFailed", res)
	}
	if res := h.ExecC2C(&buf[0], nil, Forward); res != ExecFailed {
		t.Errorf("nil output: %v, want ExecFailed", res)
	}
}

func TestExecNilHandle(t *testing.T) {
	t.Parallel()

	var h *Handle
	buf := make([]complex64, 4)
	if res := h.ExecC2C(&buf[0], &buf[0], Forward); res != InvalidPlan {
		t.Errorf("nil handle ExecC2C: %v, want InvalidPlan", res)
	}
	if res := h.ExecR2C(nil, nil); res != InvalidPlan {
		t.Errorf("nil handle ExecR2C: %v, want InvalidPlan", res)
	}
	if res := h.Exec(nil, nil, Forward); res != InvalidPlan {
		t.Errorf("nil handle Exec: %v, want InvalidPlan", res)
	}
}

func TestExecImpliedDirectionWins(t *testing.T) {
	t.Parallel()

	// For a real-to-complex plan the mismatched direction argument is
	// ignored: the transform runs forward regardless.
	const nx = 16
	h := mustPlan1D(t, nx, R2C, 1)

	src := make([]float32, nx)
	for i := range src {
		src[i] = float32(i) - 8
	}
	want := make([]complex64, nx/2+1)
	got := make([]complex64, nx/2+1)

	if res := h.ExecR2C(&src[0], &want[0]); res != Success {
		t.Fatalf("ExecR2C: %v", res)
	}
	if res := h.Exec(unsafe.Pointer(&src[0]), unsafe.Pointer(&got[0]), Backward); res != Success {
		t.Fatalf("Exec with mismatched direction: %v", res)
	}
	for i := range want {
		if cmplxAbs64(got[i]-want[i]) > 1e-4 {
			t.Fatalf("bin %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestExecUndeterminedDirection(t *testing.T) {
	t.Parallel()

	// A complex-to-complex plan has no implied direction; an unrecognized
	// argument leaves it undetermined.
	h := mustPlan1D(t, 8, C2C, 1)
	buf := make([]complex64, 8)
	p := unsafe.Pointer(&buf[0])
	if res := h.Exec(p, p, Direction(0)); res != InternalError {
		t.Errorf("undetermined direction: %v, want InternalError", res)
	}
}

func TestReal2DPlanHasNoInverseSlots(t *testing.T) {
	t.Parallel()

	h, res := Plan2D(8, 4, R2C)
	if res != Success {
		t.Fatalf("Plan2D: %v", res)
	}
	defer h.Destroy()

	fwd, inv := countSlots(h)
	if fwd == 0 || inv != 0 {
		t.Fatalf("slots = %d forward, %d inverse; want forward only", fwd, inv)
	}

	// An inverse execution hits an empty slot and fails; the forward one
	// runs.
	src := make([]float32, 32)
	freq := make([]complex64, 3*8)
	if res := h.ExecC2R(&freq[0], &src[0]); res != ExecFailed {
		t.Errorf("inverse on forward-only plan: %v, want ExecFailed", res)
	}
	if res := h.ExecR2C(&src[0], &freq[0]); res != Success {
		t.Errorf("forward execution: %v", res)
	}
}

func TestScaleFactorApplied(t *testing.T) {
	t.Parallel()

	const nx = 8
	scaled, res := Create()
	if res != Success {
		t.Fatalf("Create: %v", res)
	}
	defer scaled.Destroy()
	if res := scaled.SetScaleFactor(2); res != Success {
		t.Fatalf("SetScaleFactor: %v", res)
	}
	if _, res := scaled.MakePlan1D(nx, C2C, 1); res != Success {
		t.Fatalf("MakePlan1D: %v", res)
	}
	plain := mustPlan1D(t, nx, C2C, 1)

	src := make([]complex64, nx)
	for i := range src {
		src[i] = complex(float32(i), 1)
	}
	a := make([]complex64, nx)
	b := make([]complex64, nx)
	if res := scaled.ExecC2C(&src[0], &a[0], Forward); res != Success {
		t.Fatalf("scaled exec: %v", res)
	}
	if res := plain.ExecC2C(&src[0], &b[0], Forward); res != Success {
		t.Fatalf("plain exec: %v", res)
	}
	for i := range a {
		if cmplxAbs64(a[i]-2*b[i]) > 1e-3 {
			t.Fatalf("element %d: scaled %v, plain %v", i, a[i], b[i])
		}
	}
}

func cmplxAbs(v complex128) float64 {
	return math.Hypot(real(v), imag(v))
}

func cmplxAbs64(v complex64) float64 {
	return cmplxAbs(complex128(v))
}
