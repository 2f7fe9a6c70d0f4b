package entities

// Coordinates represents geographical coordinates.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// MenuItem is a single entry on a cafe menu.
type MenuItem struct {
	Name  string `json:"name"`
	Price string `json:"price"`
	Desc  string `json:"desc"`
}

// Cafe is an entry in the static recommendation catalog. Catalog entries are
// read-only at runtime; the only computed field is the stats attached at
// read time.
type Cafe struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Distance    string      `json:"distance"`
	Image       string      `json:"image"`
	Description string      `json:"description"`
	Emotions    []Emotion   `json:"emotions"`
	Location    Coordinates `json:"location"`
	Menu        []MenuItem  `json:"menu"`

	Stats *CafeStats `json:"stats,omitempty"`
}

// HasEmotion reports whether the cafe is tagged with the given emotion.
func (c *Cafe) HasEmotion(emotion Emotion) bool {
	for _, e := range c.Emotions {
		if e == emotion {
			return true
		}
	}
	return false
}

// Sentiment is a coarse classification of a cafe's review set.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// CafeStats is derived from reviews on demand and never persisted.
type CafeStats struct {
	AverageRating float64   `json:"averageRating"`
	ReviewCount   int       `json:"reviewCount"`
	Sentiment     Sentiment `json:"sentiment"`
}

// EmotionCount is one slice of the admin emotion-distribution chart.
type EmotionCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// UsageStats is the global aggregate for the admin view.
type UsageStats struct {
	TotalLogs      int            `json:"totalLogs"`
	EmotionData    []EmotionCount `json:"emotionData"`
	RecentActivity int            `json:"recentActivity"`
}
