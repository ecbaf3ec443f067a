package polygon

import (
	"fmt"

	"github.com/jbeda/geom"
)

// Edge is a directed polygon edge from vertex I to vertex J (J = I+1 mod n).
type Edge struct {
	I, J     int
	From, To geom.Coord
}

// SelectEdge returns the edge whose angular span, seen from the center,
// contains the bearing to target. Bearings increase with the vertex index and
// wrap once across ±π; the spans of all edges cover the full circle.
func (p *Polygon) SelectEdge(target geom.Coord) (Edge, error) {
	n := len(p.verts)
	targetAngle := bearing(p.center, target)

	prev := n - 1
	angle1 := bearing(p.center, p.verts[prev])

	for i := 0; i < n; i++ {
		angle2 := bearing(p.center, p.verts[i])

		inSpan := angle1 <= targetAngle && targetAngle <= angle2
		// The span crossing the ±π discontinuity
		wraps := angle1 > angle2 && (targetAngle <= angle2 || targetAngle >= angle1)

		if inSpan || wraps {
			return Edge{I: prev, J: i, From: p.verts[prev], To: p.verts[i]}, nil
		}

		prev = i
		angle1 = angle2
	}

	return Edge{}, ErrNoEdge
}

// ReflectAcross reflects every vertex across the infinite line through the
// edge and returns the result as a new slice. The polygon is not modified.
func (p *Polygon) ReflectAcross(e Edge) []geom.Coord {
	offset := e.From
	line := e.To.Minus(e.From)
	lenSq := dot(line, line)

	out := make([]geom.Coord, len(p.verts))
	for i, v := range p.verts {
		point := v.Minus(offset)
		projection := line.Times(dot(point, line) / lenSq)
		out[i] = projection.Times(2).Minus(point).Plus(offset)
	}
	return out
}

// FlipInstant flips the polygon across the edge facing target, immediately.
// Returns false without changing anything if the polygon is locked.
func (p *Polygon) FlipInstant(target geom.Coord) bool {
	if p.locked {
		return false
	}

	flipped := p.ReflectAcross(p.mustSelectEdge(target))
	copy(p.verts, flipped)
	p.updateCenter()
	p.ReverseOrder()
	return true
}

// mustSelectEdge panics when the vertex order invariant has been broken.
func (p *Polygon) mustSelectEdge(target geom.Coord) Edge {
	e, err := p.SelectEdge(target)
	if err != nil {
		panic(fmt.Sprintf("%v: target (%.2f, %.2f)", err, target.X, target.Y))
	}
	return e
}
