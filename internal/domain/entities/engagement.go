package entities

import "time"

// EmotionLog records a single emotion-selection event. Logs are append-only
// and deliberately survive deletion of the referenced user.
type EmotionLog struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Emotion   Emotion   `json:"emotion"`
	Timestamp time.Time `json:"timestamp"`
}

// Favorite is a set relation between a user and a cafe, unique on
// (UserID, CafeID).
type Favorite struct {
	UserID    string    `json:"userId"`
	CafeID    int       `json:"cafeId"`
	Timestamp time.Time `json:"timestamp"`
}

// Review is a user review of a cafe. UserName is a denormalized snapshot
// taken at creation time and is not refreshed on later name changes.
type Review struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	CafeID    int       `json:"cafeId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Timestamp time.Time `json:"timestamp"`
}
