package captions

import (
	"fmt"
	"strings"

	"github.com/clipstitch/clipstitch/internal/timeline"
)

// DefaultChunkSize is how many words share one caption cue.
const DefaultChunkSize = 3

// BuildCues groups words into consecutive cues of chunkSize words. The final
// cue keeps whatever words remain, so no word is ever dropped. Each cue spans
// from its first word's start to its last word's end; texts are joined with a
// single space in transcript order, untouched otherwise.
func BuildCues(words []Word, chunkSize int) ([]Cue, error) {
	if chunkSize < 1 {
		chunkSize = DefaultChunkSize
	}
	if err := validateWords(words); err != nil {
		return nil, err
	}

	cues := make([]Cue, 0, (len(words)+chunkSize-1)/chunkSize)
	for i := 0; i < len(words); i += chunkSize {
		end := i + chunkSize
		if end > len(words) {
			end = len(words)
		}
		chunk := words[i:end]

		texts := make([]string, len(chunk))
		for j, w := range chunk {
			texts[j] = w.Text
		}

		cues = append(cues, Cue{
			Index: len(cues) + 1,
			Start: chunk[0].Start,
			End:   chunk[len(chunk)-1].End,
			Text:  strings.Join(texts, " "),
		})
	}
	return cues, nil
}

// validateWords enforces the transcript contract: per-word start <= end,
// ascending, non-overlapping.
func validateWords(words []Word) error {
	prevEnd := 0.0
	for i, w := range words {
		if w.Start < 0 || w.End < w.Start {
			return &timeline.InvariantError{
				Check:  "word timing",
				Detail: fmt.Sprintf("word %d %q has range [%.3f, %.3f]", i, w.Text, w.Start, w.End),
			}
		}
		if w.Start < prevEnd {
			return &timeline.InvariantError{
				Check:  "word ordering",
				Detail: fmt.Sprintf("word %d %q starts at %.3f before previous end %.3f", i, w.Text, w.Start, prevEnd),
			}
		}
		prevEnd = w.End
	}
	return nil
}
