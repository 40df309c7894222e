package effects

import (
	"math"
	"strings"
	"testing"
)

func TestAtZoomEnvelope(t *testing.T) {
	p := DefaultParams()

	tests := []struct {
		name string
		t    float64
		want float64
	}{
		{"cycle start", 0, 1.0},
		{"mid ramp-in", 0.25, 1.075},
		{"hold plateau", 5, 1.15},
		{"just before ramp-out", 9.5, 1.15},
		{"mid ramp-out", 9.75, 1.075},
		{"second cycle start", 10, 1.0},
		{"second cycle plateau", 15, 1.15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t2 *testing.T) {
			got := p.At(tt.t).Scale
			if math.Abs(got-tt.want) > 1e-9 {
				t2.Errorf("At(%v).Scale = %.6f, want %.6f", tt.t, got, tt.want)
			}
		})
	}
}

func TestAtAnchorCycle(t *testing.T) {
	p := DefaultParams()

	tests := []struct {
		t    float64
		want float64
	}{
		{0, 0.5},
		{9.9, 0.5},
		{10, 0.6},
		{19.9, 0.6},
		{20, 0.4},
		{29.9, 0.4},
		{30, 0.5}, // cycle wraps
		{45, 0.6},
	}

	for _, tt := range tests {
		f := p.At(tt.t)
		if math.Abs(f.AnchorX-tt.want) > 1e-9 {
			t.Errorf("At(%v).AnchorX = %.3f, want %.3f", tt.t, f.AnchorX, tt.want)
		}
		if math.Abs(f.AnchorY-1.0/3.0) > 1e-9 {
			t.Errorf("At(%v).AnchorY = %.3f, want 0.333", tt.t, f.AnchorY)
		}
	}
}

func TestAtBoundsHoldEverywhere(t *testing.T) {
	p := Params{ZoomDelta: 0.3, RampIn: 8, RampOut: 8} // overlapping ramps get rescaled
	for ms := 0; ms < 60000; ms += 37 {
		tt := float64(ms) / 1000
		f := p.At(tt)
		if f.Scale < 1 {
			t.Fatalf("At(%v).Scale = %.6f below 1", tt, f.Scale)
		}
		if f.AnchorX < 0 || f.AnchorX > 1 || f.AnchorY < 0 || f.AnchorY > 1 {
			t.Fatalf("At(%v) anchor out of range: %+v", tt, f)
		}
	}
}

func TestAtIsPeriodic(t *testing.T) {
	p := DefaultParams()
	for _, base := range []float64{0.2, 3.7, 9.1, 12.4} {
		a := p.At(base)
		b := p.At(base + 30) // lcm of both cycles
		if math.Abs(a.Scale-b.Scale) > 1e-9 || math.Abs(a.AnchorX-b.AnchorX) > 1e-9 {
			t.Errorf("At(%v) != At(%v): %+v vs %+v", base, base+30, a, b)
		}
	}
}

func TestZoompanFilterShape(t *testing.T) {
	filter := DefaultParams().ZoompanFilter(1080, 1920, 30)

	for _, part := range []string{"zoompan=z='", ":d=1", ":fps=30", ":s=1080x1920", "mod((on/30),10)", "mod((on/30),30)"} {
		if !strings.Contains(filter, part) {
			t.Errorf("filter missing %q:\n%s", part, filter)
		}
	}
}
