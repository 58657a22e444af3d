// Copyright (c) 2024, The Vecdraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"github.com/vecdraw/vecdraw/math32"
)

// Rect is an SVG rectangle.
type Rect struct {
	NodeBase

	// Pos is the position of the top-left of the rectangle.
	Pos math32.Vector2

	// Size is the width, height of the rectangle.
	Size math32.Vector2
}

// NewRect adds a new rectangle to the given parent, with given name and
// size, centered at the origin (Pos = -Size/2) prior to any transform.
func NewRect(parent *Group, name string, width, height float32) *Rect {
	g := &Rect{}
	g.Size.Set(width, height)
	g.Pos.Set(-width/2, -height/2)
	initNode(g, parent, name, shapeDefaults)
	return g
}

func (g *Rect) SVGName() string { return "rect" }

func (g *Rect) clone() Node {
	nc := *g
	nc.NodeBase = g.NodeBase.cloneBase()
	return &nc
}

// corners returns the four corner points of a rect-like shape with the
// given position and size, in bounding-box order.
func corners(pos, size math32.Vector2) [4]math32.Vector2 {
	return math32.Box2{Min: pos, Max: pos.Add(size)}.Corners()
}
