// Copyright (c) 2024, The Vecdraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"github.com/vecdraw/vecdraw/math32"
)

// Line is an SVG line between two points.
type Line struct {
	NodeBase

	// Start is the starting point (x1, y1).
	Start math32.Vector2

	// End is the ending point (x2, y2).
	End math32.Vector2
}

// NewLine adds a new line to the given parent, with given name and endpoints.
func NewLine(parent *Group, name string, x1, y1, x2, y2 float32) *Line {
	g := &Line{}
	g.Start.Set(x1, y1)
	g.End.Set(x2, y2)
	initNode(g, parent, name, shapeDefaults)
	return g
}

func (g *Line) SVGName() string { return "line" }

func (g *Line) clone() Node {
	nc := *g
	nc.NodeBase = g.NodeBase.cloneBase()
	return &nc
}
