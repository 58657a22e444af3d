// Copyright (c) 2024, The Vecdraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"slices"

	"github.com/vecdraw/vecdraw/math32"
)

// Polyline is an SVG multi-line shape: an open sequence of points.
// Open versus closed semantics only matter at serialization time;
// the geometry operations treat it identically to [Polygon].
type Polyline struct {
	NodeBase

	// Points are the coordinates to draw: a moveto on the first,
	// then a lineto for all the rest.
	Points []math32.Vector2
}

// NewPolyline adds a new polyline to the given parent, with given name
// and points. The points are copied.
func NewPolyline(parent *Group, name string, points []math32.Vector2) *Polyline {
	g := &Polyline{}
	g.Points = slices.Clone(points)
	initNode(g, parent, name, shapeDefaults)
	return g
}

func (g *Polyline) SVGName() string { return "polyline" }

func (g *Polyline) clone() Node {
	nc := *g
	nc.NodeBase = g.NodeBase.cloneBase()
	nc.Points = slices.Clone(g.Points)
	return &nc
}
