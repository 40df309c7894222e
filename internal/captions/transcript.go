package captions

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadTranscript reads a word-level transcript JSON file. Both the service's
// envelope shape ({"words": [...]}) and a bare word array are accepted.
// Non-word tokens (spacing, audio events) are dropped.
func LoadTranscript(path string) ([]Word, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read transcript: %w", err)
	}
	return ParseTranscript(data)
}

// ParseTranscript decodes transcript JSON into the word sequence.
func ParseTranscript(data []byte) ([]Word, error) {
	var resp Transcript
	if err := json.Unmarshal(data, &resp); err != nil {
		var bare []Word
		if err2 := json.Unmarshal(data, &bare); err2 != nil {
			return nil, fmt.Errorf("failed to parse transcript: %w", err)
		}
		resp.Words = bare
	}

	words := make([]Word, 0, len(resp.Words))
	for _, w := range resp.Words {
		if w.Type != "" && w.Type != "word" {
			continue
		}
		words = append(words, w)
	}
	return words, nil
}
