package geo

import (
	"math"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// GridIndex is a simple grid-based spatial index over business locations.
// It buckets points into fixed-size cells and answers radius queries by
// scanning only the cells a query circle can overlap.
//
// The index may over-return (cell granularity, not exact distance); callers
// must still apply the exact haversine filter. It is a lightweight
// alternative to an R-tree with no extra dependencies beyond orb's geometry
// types.
type GridIndex struct {
	cellSizeLat float64 // grid cell size in latitude degrees
	cellSizeLng float64 // grid cell size in longitude degrees
	cells       map[gridKey][]indexedPoint
	size        int
}

type gridKey struct {
	latCell int
	lngCell int
}

type indexedPoint struct {
	id    uuid.UUID
	point orb.Point // orb convention: Point{lon, lat}
}

// NewGridIndex creates a grid index with the given cell size.
// 1 degree latitude ≈ 111 km; longitude degrees shrink with latitude, so the
// longitude cell size uses the equatorial approximation and queries widen the
// cell span instead of the cells themselves.
func NewGridIndex(cellSizeKm float64) *GridIndex {
	if cellSizeKm <= 0 {
		cellSizeKm = 5
	}

	return &GridIndex{
		cellSizeLat: cellSizeKm / 111.0,
		cellSizeLng: cellSizeKm / 111.0,
		cells:       make(map[gridKey][]indexedPoint),
	}
}

// Insert adds a point for the given ID. Duplicate IDs are not collapsed;
// rebuild the index instead of mutating entries in place.
func (g *GridIndex) Insert(id uuid.UUID, lat, lon float64) {
	key := g.keyFor(lat, lon)
	g.cells[key] = append(g.cells[key], indexedPoint{id: id, point: orb.Point{lon, lat}})
	g.size++
}

// Size returns the number of indexed points.
func (g *GridIndex) Size() int {
	return g.size
}

// Query returns the IDs of all points whose cells overlap a circle of
// radiusKm around the query point. The result is a superset of the points
// actually within the radius.
func (g *GridIndex) Query(lat, lon, radiusKm float64) []uuid.UUID {
	if g.size == 0 || radiusKm <= 0 {
		return nil
	}

	latSpan := int(math.Ceil((radiusKm / 111.0) / g.cellSizeLat))

	// Longitude degrees shrink by cos(lat); widen the span accordingly so
	// high-latitude queries do not miss cells.
	lngKmPerDegree := 111.0 * math.Cos(lat*math.Pi/180)
	if lngKmPerDegree < 1 {
		lngKmPerDegree = 1
	}
	lngSpan := int(math.Ceil((radiusKm / lngKmPerDegree) / g.cellSizeLng))

	center := g.keyFor(lat, lon)

	var ids []uuid.UUID
	for latCell := center.latCell - latSpan; latCell <= center.latCell+latSpan; latCell++ {
		for lngCell := center.lngCell - lngSpan; lngCell <= center.lngCell+lngSpan; lngCell++ {
			for _, p := range g.cells[gridKey{latCell: latCell, lngCell: lngCell}] {
				ids = append(ids, p.id)
			}
		}
	}

	return ids
}

// Bound returns the bounding box of all indexed points, and false when the
// index is empty.
func (g *GridIndex) Bound() (orb.Bound, bool) {
	if g.size == 0 {
		return orb.Bound{}, false
	}

	first := true
	var bound orb.Bound
	for _, bucket := range g.cells {
		for _, p := range bucket {
			if first {
				bound = orb.Bound{Min: p.point, Max: p.point}
				first = false

				continue
			}
			bound = bound.Extend(p.point)
		}
	}

	return bound, true
}

func (g *GridIndex) keyFor(lat, lon float64) gridKey {
	return gridKey{
		latCell: int(math.Floor(lat / g.cellSizeLat)),
		lngCell: int(math.Floor(lon / g.cellSizeLng)),
	}
}
