package timeline

// SegmentKind distinguishes primary-footage slices from cutaway slices.
type SegmentKind int

const (
	KindPrimary SegmentKind = iota
	KindCutaway
)

func (k SegmentKind) String() string {
	if k == KindCutaway {
		return "cutaway"
	}
	return "primary"
}

// Segment is one contiguous slice of the final timeline. SourceOffset and
// Duration are real seconds into SourceRef. Segments are emitted in final
// playback order and their durations sum to the primary video's duration:
// cutaways replace primary time, they never extend it.
type Segment struct {
	Kind         SegmentKind
	SourceRef    string
	SourceOffset float64
	Duration     float64
}

// Cutaway references one B-roll clip and its natural duration in seconds.
type Cutaway struct {
	Ref      string
	Duration float64
}
