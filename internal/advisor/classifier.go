package advisor

import (
	"sort"
	"strings"
)

const maxFeatures = 4

// Classify maps a free-text project description to its primary use-case
// category, a confidence score in [0,1], and a ranked feature list. It always
// returns a result; descriptions with no keyword hits fall back to
// web_application at confidence 0.5.
func Classify(description string) Classification {
	lower := strings.ToLower(description)

	type scored struct {
		category Category
		score    int
		index    int
	}

	var scores []scored
	for i, rule := range useCaseKeywords {
		score := 0
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > 0 {
			scores = append(scores, scored{category: rule.category, score: score, index: i})
		}
	}

	if len(scores) == 0 {
		return Classification{
			Primary:    fallbackCategory,
			Confidence: 0.5,
			Features:   []Category{fallbackCategory},
		}
	}

	// Ties break by table declaration order, not by an incidental sort guarantee.
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].score != scores[j].score {
			return scores[i].score > scores[j].score
		}
		return scores[i].index < scores[j].index
	})

	topScore := scores[0].score
	confidence := float64(topScore) / 5.0
	if confidence > 1.0 {
		confidence = 1.0
	}
	// A single near-tie discount, no matter how many runners-up qualify.
	if len(scores) > 1 && float64(scores[1].score) >= float64(topScore)*0.7 {
		confidence *= 0.9
	}

	features := make([]Category, 0, maxFeatures)
	for _, s := range scores {
		features = append(features, s.category)
		if len(features) == maxFeatures {
			break
		}
	}

	return Classification{
		Primary:    scores[0].category,
		Confidence: confidence,
		Features:   features,
	}
}
