package captions

import (
	"fmt"
	"os"
	"strings"
)

// FormatTimestamp renders seconds as the SRT time code HH:MM:SS,mmm. The
// fractional part is truncated to whole milliseconds, not rounded: the
// subtitle burn-in stage matches this format byte-for-byte.
func FormatTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	millis := int64(seconds * 1000)
	hours := millis / 3600000
	millis -= hours * 3600000
	minutes := millis / 60000
	millis -= minutes * 60000
	secs := millis / 1000
	millis -= secs * 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}

// RenderSRT serializes cues in SubRip layout: index line, time-code line,
// text line, blank separator.
func RenderSRT(cues []Cue) string {
	var b strings.Builder
	for _, c := range cues {
		fmt.Fprintf(&b, "%d\n%s --> %s\n%s\n\n", c.Index, FormatTimestamp(c.Start), FormatTimestamp(c.End), c.Text)
	}
	return b.String()
}

// WriteSRT writes the rendered cues to path.
func WriteSRT(path string, cues []Cue) error {
	return os.WriteFile(path, []byte(RenderSRT(cues)), 0644)
}
