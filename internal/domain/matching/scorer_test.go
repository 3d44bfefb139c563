package matching

import (
	"testing"

	"wayfare/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore_PriorityBoundaries(t *testing.T) {
	tests := []struct {
		name         string
		interests    []string
		activities   []string
		wantOK       bool
		wantPriority entity.Priority
		wantCount    int
	}{
		{name: "zero matches produces no result", interests: nil, activities: nil, wantOK: false},
		{name: "one match is low", interests: []string{"hiking"}, wantOK: true, wantPriority: entity.PriorityLow, wantCount: 1},
		{name: "two matches is medium", interests: []string{"hiking", "coffee"}, wantOK: true, wantPriority: entity.PriorityMedium, wantCount: 2},
		{name: "three matches is high", interests: []string{"hiking", "coffee"}, activities: []string{"kayaking"}, wantOK: true, wantPriority: entity.PriorityHigh, wantCount: 3},
		{name: "four matches is high", interests: []string{"hiking", "coffee", "food"}, activities: []string{"kayaking"}, wantOK: true, wantPriority: entity.PriorityHigh, wantCount: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			traveler := TagProfile{Interests: tt.interests, Activities: tt.activities}
			// The business declares the same tags, so every traveler tag matches.
			business := TagProfile{Interests: tt.interests, Activities: tt.activities}

			result, ok := Score(traveler, business, NormalizationExact)

			require.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			assert.Equal(t, tt.wantCount, result.MatchCount)
			assert.Equal(t, tt.wantPriority, result.Priority)
		})
	}
}

func TestScore_OnlyOverlapIsReported(t *testing.T) {
	traveler := TagProfile{Interests: []string{"hiking", "coffee"}, Activities: []string{"surfing"}}
	business := TagProfile{Interests: []string{"hiking", "pastry"}, Activities: []string{"tasting"}}

	result, ok := Score(traveler, business, NormalizationExact)

	require.True(t, ok)
	assert.Equal(t, []string{"hiking"}, result.MatchedInterests)
	assert.Empty(t, result.MatchedActivities)
	assert.Equal(t, 1, result.MatchCount)
	assert.Equal(t, entity.PriorityLow, result.Priority)
}

func TestScore_CaseMismatchFailsSilentlyByDefault(t *testing.T) {
	traveler := TagProfile{Interests: []string{"Hiking"}}
	business := TagProfile{Interests: []string{"hiking"}}

	_, ok := Score(traveler, business, NormalizationExact)
	assert.False(t, ok)

	result, ok := Score(traveler, business, NormalizationFold)
	require.True(t, ok)
	assert.Equal(t, []string{"Hiking"}, result.MatchedInterests)
}
