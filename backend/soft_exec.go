package backend

import (
	"unsafe"

	"github.com/cwbudde/fftcompat/internal/layout"
)

// Strided execution for the software engine. Each batch element is gathered
// into a densely packed host array, transformed one axis at a time
// (row-column decomposition), and scattered back through the output strides.
// Gathering first makes in-place execution safe for padded real layouts.

func realElemSize(p Precision) int {
	if p == PrecisionSingle {
		return 4
	}
	return 8
}

func complexElemSize(p Precision) int {
	if p == PrecisionSingle {
		return 8
	}
	return 16
}

func loadReal(base unsafe.Pointer, idx int, p Precision) float64 {
	if p == PrecisionSingle {
		return float64(*(*float32)(unsafe.Add(base, idx*4)))
	}
	return *(*float64)(unsafe.Add(base, idx*8))
}

func storeReal(base unsafe.Pointer, idx int, p Precision, v float64) {
	if p == PrecisionSingle {
		*(*float32)(unsafe.Add(base, idx*4)) = float32(v)
		return
	}
	*(*float64)(unsafe.Add(base, idx*8)) = v
}

func loadCmplx(base unsafe.Pointer, idx int, p Precision) complex128 {
	if p == PrecisionSingle {
		return complex128(*(*complex64)(unsafe.Add(base, idx*8)))
	}
	return *(*complex128)(unsafe.Add(base, idx*16))
}

func storeCmplx(base unsafe.Pointer, idx int, p Precision, v complex128) {
	if p == PrecisionSingle {
		*(*complex64)(unsafe.Add(base, idx*8)) = complex64(v)
		return
	}
	*(*complex128)(unsafe.Add(base, idx*16)) = v
}

// forEachIndex walks the multi-index space of dims (fastest axis first),
// reporting the densely packed index and the strided element offset.
func forEachIndex(dims []int, strides [3]int, fn func(dense, strided int)) {
	l0, l1, l2 := dims[0], 1, 1
	if len(dims) > 1 {
		l1 = dims[1]
	}
	if len(dims) > 2 {
		l2 = dims[2]
	}
	dense := 0
	for i2 := 0; i2 < l2; i2++ {
		for i1 := 0; i1 < l1; i1++ {
			off := i1*strides[1] + i2*strides[2]
			for i0 := 0; i0 < l0; i0++ {
				fn(dense, off+i0*strides[0])
				dense++
			}
		}
	}
}

func product(dims []int) int {
	n := 1
	for _, d := range dims {
		n *= d
	}
	return n
}

func (p *softPlan) gatherCmplx(dst []complex128, base unsafe.Pointer, dims []int, strides [3]int) {
	forEachIndex(dims, strides, func(dense, strided int) {
		dst[dense] = loadCmplx(base, strided, p.precision)
	})
}

func (p *softPlan) scatterCmplx(base unsafe.Pointer, src []complex128, dims []int, strides [3]int) {
	scale := complex(p.scale, 0)
	forEachIndex(dims, strides, func(dense, strided int) {
		storeCmplx(base, strided, p.precision, src[dense]*scale)
	})
}

func (p *softPlan) gatherReal(dst []float64, base unsafe.Pointer, dims []int, strides [3]int) {
	forEachIndex(dims, strides, func(dense, strided int) {
		dst[dense] = loadReal(base, strided, p.precision)
	})
}

func (p *softPlan) scatterReal(base unsafe.Pointer, src []float64, dims []int, strides [3]int) {
	forEachIndex(dims, strides, func(dense, strided int) {
		storeReal(base, strided, p.precision, src[dense]*p.scale)
	})
}

// transformAxes applies 1-D complex transforms along every axis of the packed
// array starting at firstAxis. Axes of length 1 are identity.
func (p *softPlan) transformAxes(work []complex128, dims []int, inverse bool, firstAxis int) {
	for axis := firstAxis; axis < len(dims); axis++ {
		n := dims[axis]
		if n == 1 {
			continue
		}
		fft := p.cmplxFFTs[n]
		stride := product(dims[:axis])
		blockSize := stride * n
		blocks := len(work) / blockSize
		src := make([]complex128, n)
		dst := make([]complex128, n)
		for blk := 0; blk < blocks; blk++ {
			bbase := blk * blockSize
			for s := 0; s < stride; s++ {
				for i := 0; i < n; i++ {
					src[i] = work[bbase+s+i*stride]
				}
				if inverse {
					fft.Sequence(dst, src)
				} else {
					fft.Coefficients(dst, src)
				}
				for i := 0; i < n; i++ {
					work[bbase+s+i*stride] = dst[i]
				}
			}
		}
	}
}

func (p *softPlan) execComplex(in, out unsafe.Pointer, inverse bool) {
	total := product(p.lengths)
	work := make([]complex128, total)
	esz := complexElemSize(p.precision)
	for b := 0; b < p.batch; b++ {
		inBase := unsafe.Add(in, b*p.inDist*esz)
		outBase := unsafe.Add(out, b*p.outDist*esz)
		p.gatherCmplx(work, inBase, p.lengths, p.inStrides)
		p.transformAxes(work, p.lengths, inverse, 0)
		p.scatterCmplx(outBase, work, p.lengths, p.outStrides)
	}
}

func (p *softPlan) execRealForward(in, out unsafe.Pointer) {
	n0 := p.lengths[0]
	h := layout.HermitianLen(n0)
	lines := product(p.lengths[1:])

	cdims := append([]int{h}, p.lengths[1:]...)
	realWork := make([]float64, n0*lines)
	cmplxWork := make([]complex128, h*lines)

	for b := 0; b < p.batch; b++ {
		inBase := unsafe.Add(in, b*p.inDist*realElemSize(p.precision))
		outBase := unsafe.Add(out, b*p.outDist*complexElemSize(p.precision))
		p.gatherReal(realWork, inBase, p.lengths, p.inStrides)
		for l := 0; l < lines; l++ {
			p.realFFT.Coefficients(cmplxWork[l*h:(l+1)*h], realWork[l*n0:(l+1)*n0])
		}
		p.transformAxes(cmplxWork, cdims, false, 1)
		p.scatterCmplx(outBase, cmplxWork, cdims, p.outStrides)
	}
}

func (p *softPlan) execRealInverse(in, out unsafe.Pointer) {
	n0 := p.lengths[0]
	h := layout.HermitianLen(n0)
	lines := product(p.lengths[1:])

	cdims := append([]int{h}, p.lengths[1:]...)
	realWork := make([]float64, n0*lines)
	cmplxWork := make([]complex128, h*lines)

	for b := 0; b < p.batch; b++ {
		inBase := unsafe.Add(in, b*p.inDist*complexElemSize(p.precision))
		outBase := unsafe.Add(out, b*p.outDist*realElemSize(p.precision))
		p.gatherCmplx(cmplxWork, inBase, cdims, p.inStrides)
		p.transformAxes(cmplxWork, cdims, true, 1)
		for l := 0; l < lines; l++ {
			p.realFFT.Sequence(realWork[l*n0:(l+1)*n0], cmplxWork[l*h:(l+1)*h])
		}
		p.scatterReal(outBase, realWork, p.lengths, p.outStrides)
	}
}
