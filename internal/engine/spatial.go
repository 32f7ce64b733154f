package engine

import (
	"github.com/moltscope/moltscope/internal/corpus"
)

// Point is one 2-D point in data space, either a post embedding or a
// community projection.
type Point struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// Rect is an axis-aligned rectangle in data space. Callers apply any
// pan/zoom transform before building the rect; the engine never sees
// device coordinates.
type Rect struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// Degenerate reports a rectangle with zero (or negative) width or height.
func (r Rect) Degenerate() bool {
	return r.MaxX <= r.MinX || r.MaxY <= r.MinY
}

// Contains reports whether (x, y) lies inside the rectangle, inclusive on
// all four edges.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// PointsInRect returns the ids of all points inside the rectangle. A
// degenerate rectangle selects nothing.
func PointsInRect(points []Point, r Rect) map[string]bool {
	ids := make(map[string]bool)
	if r.Degenerate() {
		return ids
	}
	for _, p := range points {
		if r.Contains(p.X, p.Y) {
			ids[p.ID] = true
		}
	}
	return ids
}

// PostPoints adapts the post embeddings of a snapshot for spatial selection.
func PostPoints(snap *corpus.Snapshot) []Point {
	points := make([]Point, len(snap.Embeddings))
	for i, e := range snap.Embeddings {
		points[i] = Point{ID: e.PostID, X: e.X, Y: e.Y}
	}
	return points
}

// CommunityPoints adapts the community projections of a snapshot for
// spatial selection.
func CommunityPoints(snap *corpus.Snapshot) []Point {
	points := make([]Point, len(snap.CommunityProjections))
	for i, c := range snap.CommunityProjections {
		points[i] = Point{ID: c.SubmoltName, X: c.X, Y: c.Y}
	}
	return points
}
