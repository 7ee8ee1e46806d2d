package domain

// MasteryLevel is a derived display bucket summarizing review progress.
// It is recomputed from the card's counters on every review and never feeds
// back into the scheduling math.
type MasteryLevel string

const (
	MasteryNew      MasteryLevel = "new"
	MasteryLearning MasteryLevel = "learning"
	MasteryYoung    MasteryLevel = "young"
	MasteryMature   MasteryLevel = "mature"
	MasteryMastered MasteryLevel = "mastered"
)

// MasteredIntervalDays is the interval at which a card with three or more
// consecutive successes counts as mastered rather than mature.
const MasteredIntervalDays = 21

// MasteryFor derives the display bucket from a card's updated counters.
// An unreviewed card is "new"; a lapsed or once-reviewed card is
// "learning"; two consecutive successes make it "young"; from three on,
// the interval decides between "mature" and "mastered".
func MasteryFor(repetitions, intervalDays, totalReviews int) MasteryLevel {
	switch {
	case repetitions == 0 && totalReviews == 0:
		return MasteryNew
	case repetitions <= 1:
		return MasteryLearning
	case repetitions == 2:
		return MasteryYoung
	case intervalDays < MasteredIntervalDays:
		return MasteryMature
	default:
		return MasteryMastered
	}
}

var masteryLabels = map[MasteryLevel]string{
	MasteryNew:      "New",
	MasteryLearning: "Learning",
	MasteryYoung:    "Young",
	MasteryMature:   "Mature",
	MasteryMastered: "Mastered",
}

var masteryColors = map[MasteryLevel]string{
	MasteryNew:      "gray",
	MasteryLearning: "orange",
	MasteryYoung:    "gold",
	MasteryMature:   "green",
	MasteryMastered: "blue",
}

// Label returns the human-readable name for the level. Unknown levels fall
// back to the raw value so stored data always renders.
func (m MasteryLevel) Label() string {
	if label, ok := masteryLabels[m]; ok {
		return label
	}
	return string(m)
}

// Color returns the display color token for the level.
func (m MasteryLevel) Color() string {
	if color, ok := masteryColors[m]; ok {
		return color
	}
	return "gray"
}
