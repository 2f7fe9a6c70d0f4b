package entities

// Emotion is a fixed tag used both to label activity logs and to filter the
// cafe catalog.
type Emotion string

const (
	EmotionHappy    Emotion = "happy"
	EmotionSad      Emotion = "sad"
	EmotionStressed Emotion = "stressed"
	EmotionTired    Emotion = "tired"
	EmotionExcited  Emotion = "excited"

	// EmotionRelaxed appears only as a catalog tag, never as a classifier
	// output.
	EmotionRelaxed Emotion = "relaxed"
)

// ClassifiableEmotions is the closed set the mood classifier may emit, in
// the priority order the keyword fallback scans them.
var ClassifiableEmotions = []Emotion{
	EmotionHappy,
	EmotionSad,
	EmotionStressed,
	EmotionTired,
	EmotionExcited,
}

// IsClassifiable reports whether e is a valid classifier output.
func (e Emotion) IsClassifiable() bool {
	for _, known := range ClassifiableEmotions {
		if e == known {
			return true
		}
	}
	return false
}
