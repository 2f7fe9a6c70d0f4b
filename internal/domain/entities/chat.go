package entities

// ChatTurn is a single prior message in a barista chat session. Chat history
// lives only in the caller's session; nothing here is persisted.
type ChatTurn struct {
	Sender string `json:"sender"` // "user" or "ai"
	Text   string `json:"text"`
}

// MoodAnalysis is the outcome of one classification turn.
type MoodAnalysis struct {
	Text           string  `json:"text"`
	Emotion        Emotion `json:"emotion,omitempty"`
	Recommendation *Cafe   `json:"recommendation,omitempty"`
}
