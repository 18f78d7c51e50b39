package window

// View is a lazy iterator over right-aligned, fixed-width, fixed-stride
// windows of a borrowed sequence. It owns no copy of the data: every
// window returned by At is a sub-slice of the original, and callers must
// treat it as read-only.
//
// For a sequence of length n, the view holds
//
//	Len() = floor((n-width)/stride) + 1   windows (0 when n < width),
//
// and window i covers x[i*stride : i*stride+width].
type View struct {
	x      []float64
	width  int
	stride int
	n      int // number of windows, derived once at construction
}

// New builds a View over x with the given width and stride.
//
// A sequence shorter than width produces an empty view, not an error;
// only nonsensical parameters (width or stride below 1) fail.
//
// Errors:
//   - ErrBadWidth when width < 1.
//   - ErrBadStride when stride < 1.
func New(x []float64, width, stride int) (View, error) {
	if width < 1 {
		return View{}, ErrBadWidth
	}
	if stride < 1 {
		return View{}, ErrBadStride
	}
	n := 0
	if len(x) >= width {
		n = (len(x)-width)/stride + 1
	}

	return View{x: x, width: width, stride: stride, n: n}, nil
}

// Count returns the number of windows a view with the given parameters
// would hold over a sequence of length n, without building the view.
// Invalid parameters yield 0.
func Count(n, width, stride int) int {
	if width < 1 || stride < 1 || n < width {
		return 0
	}

	return (n-width)/stride + 1
}

// Len returns the number of windows in the view.
func (v View) Len() int { return v.n }

// Width returns the configured window width.
func (v View) Width() int { return v.width }

// Stride returns the configured window stride.
func (v View) Stride() int { return v.stride }

// At returns the i-th window as a read-only sub-slice of the underlying
// sequence. It never copies. i must satisfy 0 ≤ i < Len(); out-of-range
// indices panic as any slice access would.
func (v View) At(i int) []float64 {
	start := i * v.stride

	return v.x[start : start+v.width]
}

// Map applies f to every window of v and returns the resulting series,
// one scalar per window. An empty view yields an empty (non-nil) slice.
func Map(f func([]float64) float64, v View) []float64 {
	out := make([]float64, v.n)
	for i := 0; i < v.n; i++ {
		out[i] = f(v.At(i))
	}

	return out
}

// MapInto applies f to every window of v, writing results into dst.
// It allocates nothing, which makes it the workhorse of hot loops such
// as surrogate replay.
//
// Errors:
//   - ErrBufferSize when len(dst) != v.Len().
func MapInto(dst []float64, f func([]float64) float64, v View) error {
	if len(dst) != v.n {
		return ErrBufferSize
	}
	for i := 0; i < v.n; i++ {
		dst[i] = f(v.At(i))
	}

	return nil
}

// Stamp reduces every window of the view to one representative
// timestamp according to mode. The view is expected to range over a
// time axis; the result has one entry per window.
//
// Errors:
//   - ErrBadTimeMode when mode is not a recognized TimeMode.
func (v View) Stamp(mode TimeMode) ([]float64, error) {
	if !mode.valid() {
		return nil, ErrBadTimeMode
	}
	var off int
	switch mode {
	case FirstTime:
		off = 0
	case MidTime:
		off = (v.width - 1) / 2
	case LastTime:
		off = v.width - 1
	}
	out := make([]float64, v.n)
	for i := 0; i < v.n; i++ {
		out[i] = v.x[i*v.stride+off]
	}

	return out, nil
}
