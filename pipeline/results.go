package pipeline

// SlidingResults holds the output of EstimateChanges. All slices are
// produced once and never mutated afterwards; T and X borrow the
// caller's input and every field must be treated as read-only.
//
// Matrix orientation: XIndicator and XChange hold one slice per metric
// column, so XChange[j][i] is change metric j at change window i.
type SlidingResults struct {
	// T and X are the original time axis and sequence.
	T, X []float64
	// TIndicator and XIndicator are the indicator-stage axis and series,
	// one XIndicator slice per indicator. Both are nil when the config
	// skips the indicator stage.
	TIndicator []float64
	XIndicator [][]float64
	// TChange and XChange are the change-stage axis and series, one
	// XChange slice per change-metric column. Every column is fully
	// populated (no missing rows).
	TChange []float64
	XChange [][]float64
	// Config is the originating configuration, retained so significance
	// testers can replay the identical pipeline on surrogate data.
	Config *SlidingConfig
}

// SegmentedResults holds the output of EstimateSegmented: one sliding
// sub-result per segment. The outermost index is always the segment.
//
// A segment whose indicator series is too short for windowed change
// computation carries a single whole-segment change value per metric:
// its TChange[k] and every XChange[k][j] have length one.
type SegmentedResults struct {
	// T and X are the original time axis and sequence.
	T, X []float64
	// I1 and I2 are the inclusive index bounds locating segment k inside
	// T: the samples of segment k are T[I1[k]:I2[k]+1].
	I1, I2 []int
	// TIndicator[k] and XIndicator[k][j] are segment k's indicator axis
	// and series (nil when the indicator stage is skipped).
	TIndicator [][]float64
	XIndicator [][][]float64
	// TChange[k] and XChange[k][j] are segment k's change axis and series.
	TChange [][]float64
	XChange [][][]float64
	// Config is the originating configuration, retained for surrogate replay.
	Config *SegmentedConfig
}
