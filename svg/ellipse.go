// Copyright (c) 2024, The Vecdraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"github.com/vecdraw/vecdraw/math32"
)

// Ellipse is an SVG ellipse. Orientation is recorded in the auxiliary
// rotation transform, not baked into the radii.
type Ellipse struct {
	NodeBase

	// Pos is the position of the center of the ellipse.
	Pos math32.Vector2

	// Radii are the radii of the ellipse in the horizontal, vertical axes.
	Radii math32.Vector2
}

// NewEllipse adds a new ellipse to the given parent, with given name,
// center position, and radii.
func NewEllipse(parent *Group, name string, cx, cy, rx, ry float32) *Ellipse {
	g := &Ellipse{}
	g.Pos.Set(cx, cy)
	g.Radii.Set(rx, ry)
	initNode(g, parent, name, shapeDefaults)
	return g
}

func (g *Ellipse) SVGName() string { return "ellipse" }

func (g *Ellipse) clone() Node {
	nc := *g
	nc.NodeBase = g.NodeBase.cloneBase()
	return &nc
}
