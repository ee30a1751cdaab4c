// Package layout derives default stride and batch-distance sets for FFT data
// layouts. All lengths and strides are fastest-dimension-first, measured in
// elements of the side's own array type.
package layout

// MaxRank is the highest supported transform rank.
const MaxRank = 3

// HermitianLen returns the packed half-spectrum length for a real transform
// of length n.
func HermitianLen(n int) int {
	return 1 + n/2
}

// PaddedRealLen returns the real-side extent of the fastest dimension for an
// in-place real transform: the real data must fit under the interleaved
// complex half-spectrum, so the row is padded to 2*(1+n/2) elements.
func PaddedRealLen(n int) int {
	return 2 * HermitianLen(n)
}

func withExtent(lengths []int, extent int) (strides [3]int, dist int) {
	strides = [3]int{1, 1, 1}
	dist = extent
	for i := 1; i < len(lengths); i++ {
		strides[i] = dist
		dist *= lengths[i]
	}
	return strides, dist
}

// Packed returns contiguous strides and the batch distance for a plainly
// packed array of the given logical lengths.
func Packed(lengths []int) (strides [3]int, dist int) {
	return withExtent(lengths, lengths[0])
}

// PaddedReal returns strides and distance for the real side of an in-place
// real transform, with the fastest dimension padded per PaddedRealLen.
func PaddedReal(lengths []int) (strides [3]int, dist int) {
	return withExtent(lengths, PaddedRealLen(lengths[0]))
}

// Hermitian returns strides and distance for the packed half-spectrum side of
// a real transform.
func Hermitian(lengths []int) (strides [3]int, dist int) {
	return withExtent(lengths, HermitianLen(lengths[0]))
}

// RealForward returns the default input/output layouts for a real-to-complex
// transform. In-place transforms pad the real input rows; out-of-place ones
// keep them packed.
func RealForward(lengths []int, inplace bool) (inStrides [3]int, inDist int, outStrides [3]int, outDist int) {
	if inplace {
		inStrides, inDist = PaddedReal(lengths)
	} else {
		inStrides, inDist = Packed(lengths)
	}
	outStrides, outDist = Hermitian(lengths)
	return inStrides, inDist, outStrides, outDist
}

// RealInverse returns the default input/output layouts for a complex-to-real
// transform, mirroring RealForward.
func RealInverse(lengths []int, inplace bool) (inStrides [3]int, inDist int, outStrides [3]int, outDist int) {
	inStrides, inDist = Hermitian(lengths)
	if inplace {
		outStrides, outDist = PaddedReal(lengths)
	} else {
		outStrides, outDist = Packed(lengths)
	}
	return inStrides, inDist, outStrides, outDist
}
