// Copyright (c) 2024, The Vecdraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"fmt"

	"github.com/vecdraw/vecdraw/math32"
)

// absPoint returns the operand point starting at data index i,
// resolved against the cursor for relative mode.
func (c Cmd) absPoint(cursor math32.Vector2, i int) math32.Vector2 {
	p := math32.Vec2(c.Data[i], c.Data[i+1])
	if c.Rel {
		return cursor.Add(p)
	}
	return p
}

// ApproxPoints returns a flattened point approximation of the command,
// resolving relative coordinates against the cursor and advancing the
// cursor to the command's end point.
//
// Move, Line and SmoothQuad contribute their end point. Cubic and quadratic
// beziers contribute their full control polygon (control points plus end
// point), so bounds and centroids over curves are approximations rather than
// true extrema. Arcs are decomposed into intermediate points at up-to-90
// degree steps around a derived center. Close contributes no points.
func (c Cmd) ApproxPoints(cursor *math32.Vector2) []math32.Vector2 {
	switch c.Op {
	case Move, Line, SmoothQuad:
		p := c.absPoint(*cursor, 0)
		*cursor = p
		return []math32.Vector2{p}
	case HLine:
		x := c.Data[0]
		if c.Rel {
			x += cursor.X
		}
		p := math32.Vec2(x, cursor.Y)
		*cursor = p
		return []math32.Vector2{p}
	case VLine:
		y := c.Data[0]
		if c.Rel {
			y += cursor.Y
		}
		p := math32.Vec2(cursor.X, y)
		*cursor = p
		return []math32.Vector2{p}
	case Quad, SmoothCube:
		p1 := c.absPoint(*cursor, 0)
		p2 := c.absPoint(*cursor, 2)
		*cursor = p2
		return []math32.Vector2{p1, p2}
	case Cube:
		p1 := c.absPoint(*cursor, 0)
		p2 := c.absPoint(*cursor, 2)
		p3 := c.absPoint(*cursor, 4)
		*cursor = p3
		return []math32.Vector2{p1, p2, p3}
	case Arc:
		end := c.absPoint(*cursor, 5)
		pts := arcPoints(*cursor, end, c.Data[0], c.Data[1], c.Data[3] != 0, c.Data[4] != 0)
		*cursor = end
		return pts
	case Close:
		return nil
	}
	return nil
}

// arcPoints decomposes an arc from start to end into sample points by
// rotating the start point around a derived center in up-to-90 degree steps.
// The decomposition treats the arc as circular with radius rx (falling back
// to ry), so bounds on elliptical arcs are best-effort approximations,
// inaccurate near the sweep extremes.
func arcPoints(start, end math32.Vector2, rx, ry float32, large, sweep bool) []math32.Vector2 {
	r := math32.Abs(rx)
	if r == 0 {
		r = math32.Abs(ry)
	}
	chord := end.Sub(start)
	d := chord.Length()
	if r == 0 || d == 0 || d > 2*r {
		// degenerate or out-of-range radius: straight hop to the end point
		return []math32.Vector2{end}
	}
	mid := start.Add(end).MulScalar(0.5)
	h := math32.Sqrt(r*r - d*d/4)
	perp := math32.Vec2(-chord.Y, chord.X).DivScalar(d)
	if large == sweep {
		perp = perp.Negate()
	}
	center := mid.Add(perp.MulScalar(h))

	a0 := math32.RadToDeg(math32.Atan2(start.Y-center.Y, start.X-center.X))
	a1 := math32.RadToDeg(math32.Atan2(end.Y-center.Y, end.X-center.X))
	sweepAng := a1 - a0
	if sweep && sweepAng < 0 {
		sweepAng += 360
	}
	if !sweep && sweepAng > 0 {
		sweepAng -= 360
	}

	steps := int(math32.Ceil(math32.Abs(sweepAng) / 90))
	if steps < 1 {
		steps = 1
	}
	pts := make([]math32.Vector2, 0, steps)
	for i := 1; i < steps; i++ {
		ang := sweepAng * float32(i) / float32(steps)
		pts = append(pts, start.RotateAroundDeg(ang, center))
	}
	return append(pts, end)
}

// ApproxPoints returns the flattened point approximation of the whole path.
// The cursor starts at the origin; if the first command is not a Move, a
// Move at the origin is synthesized, contributing the origin as a point.
// A Close command returns the cursor to the start of its subpath.
func (p Path) ApproxPoints() []math32.Vector2 {
	var pts []math32.Vector2
	cursor := math32.Vector2{}
	subStart := cursor
	for i, c := range p {
		if i == 0 && c.Op != Move {
			pts = append(pts, cursor)
		}
		switch c.Op {
		case Move:
			pts = append(pts, c.ApproxPoints(&cursor)...)
			subStart = cursor
		case Close:
			cursor = subStart
		default:
			pts = append(pts, c.ApproxPoints(&cursor)...)
		}
	}
	return pts
}

// Bounds returns the axis-aligned bounding box of the path's approximate
// points. It returns an error wrapping [math32.ErrEmptyInput] if the path
// flattens to no points.
func (p Path) Bounds() (math32.Box2, error) {
	bb, err := math32.BoundsOf(p.ApproxPoints())
	if err != nil {
		return math32.Box2{}, fmt.Errorf("ppath: bounds: %w", err)
	}
	return bb, nil
}

// Centroid returns the arithmetic mean of the path's approximate points.
// It returns an error wrapping [math32.ErrEmptyInput] if the path flattens
// to no points.
func (p Path) Centroid() (math32.Vector2, error) {
	c, err := math32.CentroidOf(p.ApproxPoints())
	if err != nil {
		return math32.Vector2{}, fmt.Errorf("ppath: centroid: %w", err)
	}
	return c, nil
}
