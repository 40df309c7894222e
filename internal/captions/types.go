package captions

// Word is a single transcribed word with its spoken time range in seconds.
type Word struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Type  string  `json:"type,omitempty"` // "word", "spacing", "audio_event"; empty means word
}

// Cue is one caption entry: a 1-based index, a time range, and the text that
// stays on screen across it.
type Cue struct {
	Index int
	Start float64
	End   float64
	Text  string
}

// Transcript is the word-level payload returned by the transcription
// collaborator.
type Transcript struct {
	LanguageCode string `json:"language_code,omitempty"`
	Text         string `json:"text,omitempty"`
	Words        []Word `json:"words"`
}
