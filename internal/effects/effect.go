// Package effects computes the deterministic pan/zoom transform applied to
// the final render. The mapping from playback time to zoom scale and crop
// anchor is closed-form and stateless: the renderer consults it once per
// output frame, nothing here touches pixels.
package effects

import "math"

// Cycle lengths are part of the effect's look and are not configurable: the
// zoom breathes every 10 seconds while the horizontal anchor drifts
// center/right/left across 30 seconds.
const (
	zoomPeriod   = 10.0
	anchorPeriod = 30.0
)

// Anchor fractions of the frame. The vertical anchor sits on the upper third,
// where a talking head's face lives.
const (
	anchorCenter = 0.5
	anchorRight  = 0.6
	anchorLeft   = 0.4
	anchorY      = 1.0 / 3.0
)

// Frame is the visual transform applicable at one instant: a zoom scale >= 1
// and a crop anchor in frame fractions.
type Frame struct {
	Scale   float64
	AnchorX float64
	AnchorY float64
}

// Params tunes the zoom envelope. Zero values are replaced by defaults.
type Params struct {
	ZoomDelta float64 // peak zoom above 1.0
	RampIn    float64 // seconds to reach peak within each cycle
	RampOut   float64 // seconds to return to 1.0 at the cycle's end
}

// DefaultParams returns the nominal effect tuning.
func DefaultParams() Params {
	return Params{ZoomDelta: 0.15, RampIn: 0.5, RampOut: 0.5}
}

func (p Params) normalized() Params {
	if p.ZoomDelta <= 0 {
		p.ZoomDelta = 0.15
	}
	if p.RampIn <= 0 {
		p.RampIn = 0.5
	}
	if p.RampOut <= 0 {
		p.RampOut = 0.5
	}
	// Ramps may not overlap inside one cycle.
	if p.RampIn+p.RampOut > zoomPeriod {
		scale := zoomPeriod / (p.RampIn + p.RampOut)
		p.RampIn *= scale
		p.RampOut *= scale
	}
	return p
}

// At maps playback time in seconds to the transform for that instant. The
// zoom ramps up over RampIn seconds, holds at 1+ZoomDelta, and ramps back
// down over the last RampOut seconds of each 10s cycle. The horizontal
// anchor steps center, right, left across each 30s cycle.
func (p Params) At(t float64) Frame {
	p = p.normalized()
	if t < 0 {
		t = 0
	}

	m := math.Mod(t, zoomPeriod)
	var scale float64
	switch {
	case m < p.RampIn:
		scale = 1 + p.ZoomDelta*(m/p.RampIn)
	case m < zoomPeriod-p.RampOut:
		scale = 1 + p.ZoomDelta
	default:
		scale = 1 + p.ZoomDelta*((zoomPeriod-m)/p.RampOut)
	}
	if scale < 1 {
		scale = 1
	}

	m30 := math.Mod(t, anchorPeriod)
	var ax float64
	switch {
	case m30 < anchorPeriod/3:
		ax = anchorCenter
	case m30 < 2*anchorPeriod/3:
		ax = anchorRight
	default:
		ax = anchorLeft
	}

	return Frame{Scale: scale, AnchorX: clamp01(ax), AnchorY: clamp01(anchorY)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
