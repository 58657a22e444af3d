// Copyright (c) 2024, The Vecdraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"github.com/vecdraw/vecdraw/math32"
)

// Rotate returns the command rotated counter-clockwise by the given angle
// in degrees around the given pivot. Absolute operand points rotate around
// the pivot; relative operands are offsets, so they rotate as vectors
// around the origin.
//
// Point commands rotate every control and end point independently. An Arc
// rotates only its end point and adds the angle to its x-axis rotation,
// preserving the ellipse's shape while reorienting it with the rest of the
// path; radii and flags are unchanged. Close is a no-op. HLine and VLine
// pass through unchanged: their single-axis form cannot encode a rotated
// result, so path-level rotation rewrites them to Line commands first
// (see [Path.Rotate]).
func (c Cmd) Rotate(pivot math32.Vector2, degrees float32) Cmd {
	nc := c.Clone()
	rot := func(i int) {
		p := math32.Vec2(nc.Data[i], nc.Data[i+1])
		if c.Rel {
			p = p.RotateDeg(degrees)
		} else {
			p = p.RotateAroundDeg(degrees, pivot)
		}
		nc.Data[i], nc.Data[i+1] = p.X, p.Y
	}
	switch c.Op {
	case Move, Line, SmoothQuad:
		rot(0)
	case Quad, SmoothCube:
		rot(0)
		rot(2)
	case Cube:
		rot(0)
		rot(2)
		rot(4)
	case Arc:
		rot(5)
		nc.Data[2] = c.Data[2] + degrees
	}
	return nc
}

// Translate returns the command with its points shifted by the given delta.
// Relative commands are offsets and are translation-invariant. An Arc
// shifts its end point only; radii, rotation and flags are unchanged.
func (c Cmd) Translate(delta math32.Vector2) Cmd {
	nc := c.Clone()
	if c.Rel {
		return nc
	}
	switch c.Op {
	case Move, Line, SmoothQuad:
		nc.Data[0] += delta.X
		nc.Data[1] += delta.Y
	case Quad, SmoothCube:
		nc.Data[0] += delta.X
		nc.Data[1] += delta.Y
		nc.Data[2] += delta.X
		nc.Data[3] += delta.Y
	case Cube:
		for i := 0; i < 6; i += 2 {
			nc.Data[i] += delta.X
			nc.Data[i+1] += delta.Y
		}
	case HLine:
		nc.Data[0] += delta.X
	case VLine:
		nc.Data[0] += delta.Y
	case Arc:
		nc.Data[5] += delta.X
		nc.Data[6] += delta.Y
	}
	return nc
}

// Translate returns the path with every command shifted by the given delta.
// A leading relative Move is anchored at the origin, so it shifts too.
func (p Path) Translate(delta math32.Vector2) Path {
	np := make(Path, len(p))
	for i, c := range p {
		if i == 0 && c.Op == Move && c.Rel {
			nc := c.Clone()
			nc.Data[0] += delta.X
			nc.Data[1] += delta.Y
			np[i] = nc
			continue
		}
		np[i] = c.Translate(delta)
	}
	return np
}

// Rotate returns the path rotated counter-clockwise by the given angle in
// degrees around its own centroid. HLine and VLine commands are rewritten
// to explicit Line commands first, since rotation takes them off-axis.
// Close commands pass through unchanged.
func (p Path) Rotate(degrees float32) (Path, error) {
	cen, err := p.Centroid()
	if err != nil {
		return nil, err
	}
	exp := p.expandAxisLines()
	np := make(Path, len(exp))
	for i, c := range exp {
		np[i] = c.Rotate(cen, degrees)
	}
	return np, nil
}

// expandAxisLines returns the path with HLine and VLine commands rewritten
// as equivalent Line commands, resolving the implied coordinate from the
// cursor. Other commands are copied through unchanged.
func (p Path) expandAxisLines() Path {
	np := make(Path, 0, len(p))
	cursor := math32.Vector2{}
	subStart := cursor
	for _, c := range p {
		switch c.Op {
		case HLine:
			if c.Rel {
				np = append(np, Cmd{Op: Line, Rel: true, Data: []float32{c.Data[0], 0}})
			} else {
				np = append(np, Cmd{Op: Line, Data: []float32{c.Data[0], cursor.Y}})
			}
		case VLine:
			if c.Rel {
				np = append(np, Cmd{Op: Line, Rel: true, Data: []float32{0, c.Data[0]}})
			} else {
				np = append(np, Cmd{Op: Line, Data: []float32{cursor.X, c.Data[0]}})
			}
		default:
			np = append(np, c.Clone())
		}
		switch c.Op {
		case Move:
			c.ApproxPoints(&cursor)
			subStart = cursor
		case Close:
			cursor = subStart
		default:
			c.ApproxPoints(&cursor)
		}
	}
	return np
}
