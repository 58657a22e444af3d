// Copyright (c) 2024, The Vecdraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"github.com/vecdraw/vecdraw/math32"
)

// Circle is an SVG circle.
type Circle struct {
	NodeBase

	// Pos is the position of the center of the circle.
	Pos math32.Vector2

	// Radius is the radius of the circle.
	Radius float32
}

// NewCircle adds a new circle to the given parent, with given name,
// center position, and radius.
func NewCircle(parent *Group, name string, cx, cy, radius float32) *Circle {
	g := &Circle{}
	g.Pos.Set(cx, cy)
	g.Radius = radius
	initNode(g, parent, name, shapeDefaults)
	return g
}

func (g *Circle) SVGName() string { return "circle" }

func (g *Circle) clone() Node {
	nc := *g
	nc.NodeBase = g.NodeBase.cloneBase()
	return &nc
}
