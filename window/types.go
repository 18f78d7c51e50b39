// Package window defines the time-stamping policy enum and sentinel
// errors for the window subpackage of github.com/katalvlaran/tipping.
package window

import "errors"

// Sentinel errors for window operations.
var (
	// ErrBadWidth indicates a window width below one.
	ErrBadWidth = errors.New("window: width must be at least 1")
	// ErrBadStride indicates a window stride below one.
	ErrBadStride = errors.New("window: stride must be at least 1")
	// ErrBufferSize indicates a destination buffer whose length does not
	// equal the number of windows in the view.
	ErrBufferSize = errors.New("window: destination length must equal view length")
	// ErrBadTimeMode indicates an unrecognized TimeMode value.
	ErrBadTimeMode = errors.New("window: unknown time mode")
)

// TimeMode selects which timestamp represents a whole window when a
// windowed series is mapped back onto a time axis.
type TimeMode int

const (
	// MidTime stamps each window with its midpoint timestamp, index
	// (width-1)/2 within the window. Default.
	MidTime TimeMode = iota
	// FirstTime stamps each window with its first (oldest) timestamp.
	FirstTime
	// LastTime stamps each window with its last (newest) timestamp.
	LastTime
)

// String returns the policy name, or "TimeMode(n)" for invalid values.
func (m TimeMode) String() string {
	switch m {
	case MidTime:
		return "MidTime"
	case FirstTime:
		return "FirstTime"
	case LastTime:
		return "LastTime"
	default:
		return "TimeMode(?)"
	}
}

// valid reports whether m is one of the recognized policies.
func (m TimeMode) valid() bool {
	return m == MidTime || m == FirstTime || m == LastTime
}
