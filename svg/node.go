// Copyright (c) 2024, The Vecdraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svg provides an authoring tree of SVG shape elements with
// geometric operations over them: bounding boxes, centroids, translation
// and rotation, plus XML serialization of the resulting document.
//
// The shape set is closed: Circle, Ellipse, Line, Polygon, Polyline, Rect,
// Image, Text, Path and Group. The transform operations ([BBox], [Centroid],
// [Translate], [Rotate]) dispatch exhaustively over this set; adding a new
// shape requires extending each of them.
//
// All transform operations are pure: they return new node values and never
// mutate their inputs.
package svg

import (
	"fmt"
	"maps"

	"github.com/vecdraw/vecdraw/math32"
)

// Node is the interface for all SVG nodes.
// The clone method is unexported, sealing the shape set to this package.
type Node interface {

	// AsNodeBase returns the [NodeBase] for this node, which gives
	// access to the base-level data common to all nodes.
	AsNodeBase() *NodeBase

	// SVGName returns the SVG element name (e.g., "rect", "path" etc).
	SVGName() string

	// clone returns a deep copy of the node.
	clone() Node
}

// Rotation is the auxiliary view-level rotation transform for shapes whose
// native fields cannot encode orientation (circle, ellipse, rect, image,
// text). It is applied at serialize time as a transform attribute; shapes
// with point geometry (line, polygon, polyline, path) are instead rotated
// in place by rewriting coordinates and never carry one.
type Rotation struct {

	// Angle is the rotation angle in degrees, counter-clockwise.
	// Successive rotations accumulate additively.
	Angle float32

	// Pivot is the center of rotation, recomputed to the shape's
	// centroid each time a rotation is applied.
	Pivot math32.Vector2
}

// IsIdentity returns whether the rotation has no effect.
func (r Rotation) IsIdentity() bool {
	return r.Angle == 0
}

// String returns the SVG transform attribute value for the rotation,
// in the form "rotate(angle px py)".
func (r Rotation) String() string {
	return fmt.Sprintf("rotate(%g %g %g)", r.Angle, r.Pivot.X, r.Pivot.Y)
}

// translated returns the rotation with its pivot shifted by delta,
// keeping the view transform anchored to the moved shape.
func (r Rotation) translated(delta math32.Vector2) Rotation {
	if r.IsIdentity() {
		return r
	}
	r.Pivot = r.Pivot.Add(delta)
	return r
}

// NodeBase is the base type embedded in all elements of an SVG tree.
type NodeBase struct {

	// Name is the id of the element, written as the id attribute.
	Name string

	// Properties are style and presentation attributes for the element,
	// serialized directly as XML attributes.
	Properties map[string]any

	// Rot is the auxiliary rotation transform, if any. See [Rotation].
	Rot Rotation
}

func (g *NodeBase) AsNodeBase() *NodeBase { return g }

func (g *NodeBase) SVGName() string { return "base" }

// SetProperty sets the given property to the given value.
func (g *NodeBase) SetProperty(key string, value any) {
	if g.Properties == nil {
		g.Properties = map[string]any{}
	}
	g.Properties[key] = value
}

// Property returns the value of the given property, or nil if unset.
func (g *NodeBase) Property(key string) any {
	return g.Properties[key]
}

// DeleteProperty removes the given property.
func (g *NodeBase) DeleteProperty(key string) {
	delete(g.Properties, key)
}

// cloneBase returns a copy of the base with its own properties map.
func (g *NodeBase) cloneBase() NodeBase {
	nb := *g
	nb.Properties = maps.Clone(g.Properties)
	return nb
}

// initNode sets the name and default properties on a new node and adds it
// to the given parent group, which may be nil for a detached node.
func initNode(n Node, parent *Group, name string, defaults map[string]any) {
	nb := n.AsNodeBase()
	nb.Name = name
	if len(defaults) > 0 {
		nb.Properties = maps.Clone(defaults)
	}
	if parent != nil {
		parent.Add(n)
	}
}

// shapeDefaults is the fixed default property set for stroked shapes.
var shapeDefaults = map[string]any{
	"fill":         "none",
	"stroke":       "black",
	"stroke-width": "1",
}

// textDefaults is the fixed default property set for text elements.
var textDefaults = map[string]any{
	"fill":   "black",
	"stroke": "none",
}
