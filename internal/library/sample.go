package library

import (
	"fmt"
	"math/rand"
)

// Sample draws n clips from the catalog without replacement. The seed makes
// the draw reproducible, so a composition can be re-run with the same clip
// selection.
func Sample(clips []Clip, n int, seed int64) ([]Clip, error) {
	if n < 0 {
		return nil, fmt.Errorf("sample size must be non-negative, got %d", n)
	}
	if n == 0 {
		return nil, nil
	}
	if n > len(clips) {
		return nil, fmt.Errorf("catalog has %d clips, need %d", len(clips), n)
	}

	rng := rand.New(rand.NewSource(seed))
	picked := make([]Clip, n)
	for i, idx := range rng.Perm(len(clips))[:n] {
		picked[i] = clips[idx]
	}
	return picked, nil
}
