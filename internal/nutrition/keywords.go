package nutrition

import "strings"

// Keywords are the goal-text fragments that classify a goal. Matching is a
// case-insensitive substring test.
type Keywords struct {
	Lose   []string
	Gain   []string
	Muscle []string
}

// DefaultKeywords returns the Spanish keyword sets used by the product.
func DefaultKeywords() Keywords {
	return Keywords{
		Lose:   []string{"bajar"},
		Gain:   []string{"aumentar", "masa"},
		Muscle: []string{"masa"},
	}
}

// IsLose reports whether the goal asks for weight loss.
func (k Keywords) IsLose(goal string) bool {
	return containsAny(goal, k.Lose)
}

// IsGain reports whether the goal asks for weight or muscle gain.
func (k Keywords) IsGain(goal string) bool {
	return containsAny(goal, k.Gain)
}

// IsMuscle reports whether the goal asks for muscle gain specifically.
func (k Keywords) IsMuscle(goal string) bool {
	return containsAny(goal, k.Muscle)
}

func containsAny(text string, words []string) bool {
	text = strings.ToLower(text)
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" && strings.Contains(text, w) {
			return true
		}
	}
	return false
}
