package timeline

import (
	"fmt"
	"math"
)

// DefaultMaxCutawaySeconds caps how much of each B-roll clip is used.
const DefaultMaxCutawaySeconds = 4.0

// sumEpsilon bounds the float drift tolerated by the duration-sum check.
const sumEpsilon = 1e-6

// Compose turns insertion points and their matched cutaways into the ordered
// segment plan. A cursor walks the primary video; at each insertion point the
// primary footage up to that point is emitted, then the cutaway, and the
// cursor skips the cutaway's used duration. Cutaways consume primary time, so
// the segment durations always sum to totalDuration.
//
// primaryRef names the primary source in the emitted segments. Cutaways must
// be given in the same order as points, one per point.
func Compose(primaryRef string, totalDuration float64, points []float64, cutaways []Cutaway, maxCutaway float64) ([]Segment, error) {
	if totalDuration <= 0 {
		return nil, &InvalidDurationError{Reason: "primary duration must be positive", Value: totalDuration}
	}
	if len(points) != len(cutaways) {
		return nil, &InvariantError{
			Check:  "point/cutaway pairing",
			Detail: fmt.Sprintf("%d insertion points but %d cutaways", len(points), len(cutaways)),
		}
	}
	if maxCutaway <= 0 {
		maxCutaway = DefaultMaxCutawaySeconds
	}

	segments := make([]Segment, 0, 2*len(points)+1)
	cursor := 0.0

	for i, p := range points {
		c := cutaways[i]
		if c.Duration <= 0 {
			return nil, &InvalidDurationError{Reason: "cutaway " + c.Ref + " reports no duration", Value: c.Duration}
		}
		if p < cursor {
			return nil, &InvariantError{
				Check:  "insertion point ordering",
				Detail: fmt.Sprintf("point %d at %.3fs precedes cursor %.3fs", i+1, p, cursor),
			}
		}

		if p > cursor {
			segments = append(segments, Segment{
				Kind:         KindPrimary,
				SourceRef:    primaryRef,
				SourceOffset: cursor,
				Duration:     p - cursor,
			})
		}

		used := math.Min(c.Duration, maxCutaway)
		// A cutaway may not run past the end of the timeline it replaces.
		if remaining := totalDuration - p; used > remaining {
			used = remaining
		}
		if used <= 0 {
			continue
		}

		segments = append(segments, Segment{
			Kind:         KindCutaway,
			SourceRef:    c.Ref,
			SourceOffset: 0,
			Duration:     used,
		})
		cursor = p + used
	}

	if cursor < totalDuration {
		segments = append(segments, Segment{
			Kind:         KindPrimary,
			SourceRef:    primaryRef,
			SourceOffset: cursor,
			Duration:     totalDuration - cursor,
		})
	}

	if err := checkPlan(segments, totalDuration); err != nil {
		return nil, err
	}
	return segments, nil
}

// checkPlan is the defensive gate between planning and materialization: the
// segment durations must reproduce the primary duration exactly.
func checkPlan(segments []Segment, totalDuration float64) error {
	sum := 0.0
	for i, s := range segments {
		if s.Duration <= 0 {
			return &InvariantError{
				Check:  "segment duration",
				Detail: fmt.Sprintf("segment %d has non-positive duration %.6fs", i, s.Duration),
			}
		}
		sum += s.Duration
	}
	if math.Abs(sum-totalDuration) > sumEpsilon {
		return &InvariantError{
			Check:  "duration sum",
			Detail: fmt.Sprintf("segments sum to %.6fs, primary is %.6fs", sum, totalDuration),
		}
	}
	return nil
}
