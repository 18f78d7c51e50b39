// Package window provides lazy, allocation-free views over fixed-width,
// fixed-stride sub-ranges of a numeric sequence, plus windowed mapping
// and time-stamping policies.
//
// What:
//
//   - View borrows a []float64 and exposes right-aligned windows:
//     window i spans x[i*stride : i*stride+width], the last element of
//     window i sits at index width-1+i*stride.
//   - Map / MapInto sweep a scalar function across every window.
//   - Stamp reduces each window of a time axis to one representative
//     timestamp (first, last or midpoint).
//
// Why:
//
//   - Rolling statistics: variance, autocorrelation, trend slopes.
//   - Two-stage pipelines: indicator series feeding change metrics.
//   - Any computation that must touch every window without copying.
//
// Complexity:
//
//   - New:     O(1) time, O(1) memory (three ints over a borrowed slice).
//   - At:      O(1) time, zero allocation (sub-slice of the original).
//   - Map:     O(Len·cost(f)) time, one output slice.
//   - MapInto: O(Len·cost(f)) time, zero allocation.
//
// Edge policy:
//
//   - A sequence shorter than the width yields an empty view (Len()==0),
//     never an error.
//   - Width=1, Stride=1 degenerates to one window per element.
//
// Errors:
//
//   - ErrBadWidth: width < 1.
//   - ErrBadStride: stride < 1.
//   - ErrBufferSize: MapInto destination length differs from Len().
//   - ErrBadTimeMode: unrecognized TimeMode passed to Stamp.
package window
