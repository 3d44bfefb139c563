package geo

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridIndex_QueryReturnsNearbySuperset(t *testing.T) {
	index := NewGridIndex(2)

	near := uuid.New()
	far := uuid.New()
	index.Insert(near, 34.0600, -118.2500) // ~1 km from query point
	index.Insert(far, 35.0000, -118.2500)  // ~105 km away

	ids := index.Query(34.0522, -118.2437, 11.265)

	require.Contains(t, ids, near)
	assert.NotContains(t, ids, far)
}

func TestGridIndex_MayOverReturnWithinCellGranularity(t *testing.T) {
	index := NewGridIndex(10)

	edge := uuid.New()
	index.Insert(edge, 34.15, -118.2437) // ~11 km north, just outside a 10 km radius

	ids := index.Query(34.0522, -118.2437, 10)

	// Cell granularity makes this a candidate; the engine's exact haversine
	// filter is responsible for rejecting it.
	assert.Contains(t, ids, edge)
}

func TestGridIndex_EmptyIndex(t *testing.T) {
	index := NewGridIndex(5)

	assert.Nil(t, index.Query(0, 0, 10))
	assert.Zero(t, index.Size())

	_, ok := index.Bound()
	assert.False(t, ok)
}

func TestGridIndex_BoundCoversInsertedPoints(t *testing.T) {
	index := NewGridIndex(5)
	index.Insert(uuid.New(), 34.0, -118.0)
	index.Insert(uuid.New(), 35.0, -117.0)

	bound, ok := index.Bound()

	require.True(t, ok)
	assert.Equal(t, -118.0, bound.Min[0])
	assert.Equal(t, 34.0, bound.Min[1])
	assert.Equal(t, -117.0, bound.Max[0])
	assert.Equal(t, 35.0, bound.Max[1])
}

func TestGridIndex_HighLatitudeQueryWidensLongitudeSpan(t *testing.T) {
	index := NewGridIndex(5)

	// Near Tromsø: 1 degree of longitude is only ~36 km.
	target := uuid.New()
	index.Insert(target, 69.65, 18.95)

	ids := index.Query(69.65, 19.20, 11.265) // ~10 km east of the target

	assert.Contains(t, ids, target)
}
