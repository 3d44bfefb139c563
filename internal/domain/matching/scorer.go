package matching

import "wayfare/internal/domain/entity"

// Priority thresholds. The boundaries are behavior, not tuning: exactly two
// overlapping tags is medium, three or more is high.
const (
	highPriorityThreshold   = 3
	mediumPriorityThreshold = 2
)

// Score intersects the traveler's and business's tag sets and classifies the
// result into a priority tier. It returns ok=false when nothing overlaps, in
// which case the caller produces no notification.
//
// Matched tags are reported in the traveler's declared order and spelling.
func Score(traveler, business TagProfile, norm Normalization) (entity.MatchResult, bool) {
	matchedInterests := intersect(traveler.Interests, business.Interests, norm)
	matchedActivities := intersect(traveler.Activities, business.Activities, norm)

	count := len(matchedInterests) + len(matchedActivities)
	if count == 0 {
		return entity.MatchResult{}, false
	}

	return entity.MatchResult{
		MatchedInterests:  matchedInterests,
		MatchedActivities: matchedActivities,
		MatchCount:        count,
		Priority:          classify(count),
	}, true
}

func classify(matchCount int) entity.Priority {
	switch {
	case matchCount >= highPriorityThreshold:
		return entity.PriorityHigh
	case matchCount == mediumPriorityThreshold:
		return entity.PriorityMedium
	default:
		return entity.PriorityLow
	}
}
