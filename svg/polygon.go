// Copyright (c) 2024, The Vecdraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"slices"

	"github.com/vecdraw/vecdraw/math32"
)

// Polygon is an SVG polygon: a closed sequence of points.
type Polygon struct {
	NodeBase

	// Points are the coordinates to draw: a moveto on the first, a lineto
	// for all the rest, and a closepath at the end.
	Points []math32.Vector2
}

// NewPolygon adds a new polygon to the given parent, with given name
// and points. The points are copied.
func NewPolygon(parent *Group, name string, points []math32.Vector2) *Polygon {
	g := &Polygon{}
	g.Points = slices.Clone(points)
	initNode(g, parent, name, shapeDefaults)
	return g
}

func (g *Polygon) SVGName() string { return "polygon" }

func (g *Polygon) clone() Node {
	nc := *g
	nc.NodeBase = g.NodeBase.cloneBase()
	nc.Points = slices.Clone(g.Points)
	return &nc
}
