package tensor

import (
	"errors"
	"fmt"
	"math"
)

// ErrBadShape indicates non-positive dimensions or a flat buffer whose
// length does not match the requested shape.
var ErrBadShape = errors.New("tensor: invalid shape")

// Tensor is a dense (NSamples × NSpace × NTime) block of float64 values,
// row-major: sample-major, then space, then time. It is the observation
// input to scoring and permutation; callers must not mutate it while a
// run is in flight.
type Tensor struct {
	nSamples int
	nSpace   int
	nTime    int
	data     []float64
}

// New allocates a zeroed tensor of the given shape.
// Returns ErrBadShape if any dimension is < 1.
func New(nSamples, nSpace, nTime int) (*Tensor, error) {
	if nSamples < 1 || nSpace < 1 || nTime < 1 {
		return nil, fmt.Errorf("%w: (%d × %d × %d)", ErrBadShape, nSamples, nSpace, nTime)
	}

	return &Tensor{
		nSamples: nSamples,
		nSpace:   nSpace,
		nTime:    nTime,
		data:     make([]float64, nSamples*nSpace*nTime),
	}, nil
}

// FromFlat wraps an existing row-major buffer without copying.
// The buffer is aliased, not copied; the caller must not write to it
// afterwards. Returns ErrBadShape if len(data) != nSamples·nSpace·nTime
// or any dimension is < 1.
func FromFlat(nSamples, nSpace, nTime int, data []float64) (*Tensor, error) {
	if nSamples < 1 || nSpace < 1 || nTime < 1 {
		return nil, fmt.Errorf("%w: (%d × %d × %d)", ErrBadShape, nSamples, nSpace, nTime)
	}
	if len(data) != nSamples*nSpace*nTime {
		return nil, fmt.Errorf("%w: buffer has %d values, shape (%d × %d × %d) needs %d",
			ErrBadShape, len(data), nSamples, nSpace, nTime, nSamples*nSpace*nTime)
	}

	return &Tensor{nSamples: nSamples, nSpace: nSpace, nTime: nTime, data: data}, nil
}

// NSamples returns the number of observations.
func (t *Tensor) NSamples() int { return t.nSamples }

// NSpace returns the number of spatial vertices.
func (t *Tensor) NSpace() int { return t.nSpace }

// NTime returns the number of time steps.
func (t *Tensor) NTime() int { return t.nTime }

// NumNodes returns the flattened spatio-temporal node count, NSpace·NTime.
func (t *Tensor) NumNodes() int { return t.nSpace * t.nTime }

// At returns the value of sample s at spatial vertex v and time step ts.
// Indices are not range-checked beyond the slice bounds themselves.
func (t *Tensor) At(s, v, ts int) float64 {
	return t.data[(s*t.nSpace+v)*t.nTime+ts]
}

// Set writes the value of sample s at spatial vertex v and time step ts.
func (t *Tensor) Set(s, v, ts int, value float64) {
	t.data[(s*t.nSpace+v)*t.nTime+ts] = value
}

// AtNode returns the value of sample s at flattened node index
// node = v*NTime + ts.
func (t *Tensor) AtNode(s, node int) float64 {
	return t.data[s*t.nSpace*t.nTime+node]
}

// Sample returns the flattened (NSpace·NTime) values of sample s.
// The returned slice aliases internal storage; treat it as read-only.
func (t *Tensor) Sample(s int) []float64 {
	stride := t.nSpace * t.nTime

	return t.data[s*stride : (s+1)*stride]
}

// StatMap is a per-node statistic, one value per flattened
// spatio-temporal node. Produced fresh per (observed or permuted)
// dataset and not reused across evaluations.
type StatMap []float64

// MaxAbs returns the largest absolute value in the map, or 0 for an
// empty map. NaN entries are skipped.
func (m StatMap) MaxAbs() float64 {
	var best float64
	for _, v := range m {
		if a := math.Abs(v); a > best {
			best = a
		}
	}

	return best
}
