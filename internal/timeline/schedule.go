package timeline

// Default scheduling buffers keep cutaways off the very start and end of the
// timeline, where the hook and the sign-off live.
const (
	DefaultStartBuffer = 3.0
	DefaultEndBuffer   = 3.0
)

// InsertionPoints computes where each cutaway begins. Points are evenly
// spaced across the usable window between the two buffers, so a cutaway
// never lands at the head or tail of the video. The returned offsets are
// strictly increasing.
func InsertionPoints(totalDuration float64, count int, startBuffer, endBuffer float64) ([]float64, error) {
	if count < 0 {
		return nil, &InvalidDurationError{Reason: "cutaway count is negative", Value: float64(count)}
	}
	if count == 0 {
		return nil, nil
	}

	usable := totalDuration - startBuffer - endBuffer
	if usable <= 0 {
		return nil, &InvalidDurationError{Reason: "source shorter than scheduling buffers", Value: usable}
	}

	interval := usable / float64(count+1)
	points := make([]float64, count)
	for i := 1; i <= count; i++ {
		points[i-1] = startBuffer + interval*float64(i)
	}
	return points, nil
}
