// Copyright (c) 2024, The Vecdraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"errors"
	"fmt"

	"github.com/vecdraw/vecdraw/math32"
)

var (
	// ErrUnsupportedShape is returned when an operation receives a node
	// outside the closed shape set. With exhaustive dispatch this is
	// unreachable; it indicates a programmer error.
	ErrUnsupportedShape = errors.New("svg: unsupported shape")

	// ErrEmptyGeometry is returned when bounds or a centroid are requested
	// for geometry with no points (an empty polygon, path, or group).
	ErrEmptyGeometry = errors.New("svg: empty geometry")
)

// emptyGeom returns an [ErrEmptyGeometry] error naming the node.
func emptyGeom(n Node) error {
	return fmt.Errorf("%w: %s %q", ErrEmptyGeometry, n.SVGName(), n.AsNodeBase().Name)
}

// unsupported returns an [ErrUnsupportedShape] error naming the type.
func unsupported(n Node) error {
	return fmt.Errorf("%w: %T", ErrUnsupportedShape, n)
}

// BBox returns the axis-aligned bounding box of the given node.
//
// For circles and ellipses with an auxiliary rotation, the box is the
// midpoint envelope of the rotated and unrotated cardinal-point boxes:
// a deliberate approximation of a rotated ellipse's true bound that
// averages the two. Rects, images and text use the box of their four
// (rotated) corners; text corners come from an estimated glyph rectangle.
// Path bounds are control-polygon approximations (see [ppath]).
func BBox(n Node) (math32.Box2, error) {
	switch g := n.(type) {
	case *Circle:
		return radialBBox(g.Pos, math32.Vector2Scalar(g.Radius), g.Rot), nil
	case *Ellipse:
		return radialBBox(g.Pos, g.Radii, g.Rot), nil
	case *Line:
		bb := math32.B2Empty()
		bb.ExpandByPoint(g.Start)
		bb.ExpandByPoint(g.End)
		return bb, nil
	case *Polygon:
		return pointsBBox(g, g.Points)
	case *Polyline:
		return pointsBBox(g, g.Points)
	case *Rect:
		return cornerBBox(corners(g.Pos, g.Size), g.Rot), nil
	case *Image:
		return cornerBBox(corners(g.Pos, g.Size), g.Rot), nil
	case *Text:
		return cornerBBox(g.glyphBox().Corners(), g.Rot), nil
	case *Path:
		bb, err := g.Data.Bounds()
		if err != nil {
			return math32.Box2{}, emptyGeom(g)
		}
		return bb, nil
	case *Group:
		if len(g.Children) == 0 {
			return math32.Box2{}, emptyGeom(g)
		}
		bb := math32.B2Empty()
		for _, kid := range g.Children {
			kb, err := BBox(kid)
			if err != nil {
				return math32.Box2{}, err
			}
			bb = bb.Union(kb)
		}
		return bb, nil
	}
	return math32.Box2{}, unsupported(n)
}

// Bounds returns the four corners of the node's bounding box in the fixed
// order [min, (max.X, min.Y), max, (min.X, max.Y)].
func Bounds(n Node) ([4]math32.Vector2, error) {
	bb, err := BBox(n)
	if err != nil {
		return [4]math32.Vector2{}, err
	}
	return bb.Corners(), nil
}

// radialBBox returns the bounding box of the four cardinal radius points of
// a circle or ellipse. With an auxiliary rotation, the result is the
// average of the unrotated box and the box of the rotated cardinal points.
func radialBBox(pos, radii math32.Vector2, rot Rotation) math32.Box2 {
	pts := []math32.Vector2{
		{X: pos.X - radii.X, Y: pos.Y},
		{X: pos.X + radii.X, Y: pos.Y},
		{X: pos.X, Y: pos.Y - radii.Y},
		{X: pos.X, Y: pos.Y + radii.Y},
	}
	var plain math32.Box2
	plain.SetFromPoints(pts)
	if rot.IsIdentity() {
		return plain
	}
	for i, p := range pts {
		pts[i] = p.RotateAroundDeg(rot.Angle, rot.Pivot)
	}
	var rotated math32.Box2
	rotated.SetFromPoints(pts)
	return math32.Box2{
		Min: plain.Min.Add(rotated.Min).MulScalar(0.5).RoundGeom(),
		Max: plain.Max.Add(rotated.Max).MulScalar(0.5).RoundGeom(),
	}
}

// cornerBBox returns the bounding box of the given corner points,
// rotated by the auxiliary rotation around its pivot if present.
func cornerBBox(pts [4]math32.Vector2, rot Rotation) math32.Box2 {
	if !rot.IsIdentity() {
		for i, p := range pts {
			pts[i] = p.RotateAroundDeg(rot.Angle, rot.Pivot)
		}
	}
	var bb math32.Box2
	bb.SetFromPoints(pts[:])
	return bb
}

func pointsBBox(n Node, pts []math32.Vector2) (math32.Box2, error) {
	bb, err := math32.BoundsOf(pts)
	if err != nil {
		return math32.Box2{}, emptyGeom(n)
	}
	return bb, nil
}

// Centroid returns the centroid of the given node: the center for circles,
// ellipses, rects and images, the position for text, the arithmetic mean of
// points for lines, polygons and polylines, the approximate-point mean for
// paths, and the mean of the children's centroids for groups.
func Centroid(n Node) (math32.Vector2, error) {
	switch g := n.(type) {
	case *Circle:
		return g.Pos, nil
	case *Ellipse:
		return g.Pos, nil
	case *Line:
		return g.Start.Add(g.End).MulScalar(0.5).RoundGeom(), nil
	case *Polygon:
		return pointsCentroid(g, g.Points)
	case *Polyline:
		return pointsCentroid(g, g.Points)
	case *Rect:
		return g.Pos.Add(g.Size.MulScalar(0.5)).RoundGeom(), nil
	case *Image:
		return g.Pos.Add(g.Size.MulScalar(0.5)).RoundGeom(), nil
	case *Text:
		return g.Pos, nil
	case *Path:
		c, err := g.Data.Centroid()
		if err != nil {
			return math32.Vector2{}, emptyGeom(g)
		}
		return c, nil
	case *Group:
		if len(g.Children) == 0 {
			return math32.Vector2{}, emptyGeom(g)
		}
		cents := make([]math32.Vector2, len(g.Children))
		for i, kid := range g.Children {
			c, err := Centroid(kid)
			if err != nil {
				return math32.Vector2{}, err
			}
			cents[i] = c
		}
		c, err := math32.CentroidOf(cents)
		if err != nil {
			return math32.Vector2{}, emptyGeom(g)
		}
		return c, nil
	}
	return math32.Vector2{}, unsupported(n)
}

func pointsCentroid(n Node, pts []math32.Vector2) (math32.Vector2, error) {
	c, err := math32.CentroidOf(pts)
	if err != nil {
		return math32.Vector2{}, emptyGeom(n)
	}
	return c, nil
}

// Translate returns a copy of the given node with its geometry shifted by
// the given delta. Shapes carrying an auxiliary rotation have the rotation
// pivot shifted along with them. Group children are translated
// independently.
func Translate(n Node, delta math32.Vector2) (Node, error) {
	switch g := n.(type) {
	case *Circle:
		nc := g.clone().(*Circle)
		nc.Pos = g.Pos.Add(delta)
		nc.Rot = g.Rot.translated(delta)
		return nc, nil
	case *Ellipse:
		nc := g.clone().(*Ellipse)
		nc.Pos = g.Pos.Add(delta)
		nc.Rot = g.Rot.translated(delta)
		return nc, nil
	case *Line:
		nc := g.clone().(*Line)
		nc.Start = g.Start.Add(delta)
		nc.End = g.End.Add(delta)
		return nc, nil
	case *Polygon:
		nc := g.clone().(*Polygon)
		translatePoints(nc.Points, delta)
		return nc, nil
	case *Polyline:
		nc := g.clone().(*Polyline)
		translatePoints(nc.Points, delta)
		return nc, nil
	case *Rect:
		nc := g.clone().(*Rect)
		nc.Pos = g.Pos.Add(delta)
		nc.Rot = g.Rot.translated(delta)
		return nc, nil
	case *Image:
		nc := g.clone().(*Image)
		nc.Pos = g.Pos.Add(delta)
		nc.Rot = g.Rot.translated(delta)
		return nc, nil
	case *Text:
		nc := g.clone().(*Text)
		nc.Pos = g.Pos.Add(delta)
		nc.Rot = g.Rot.translated(delta)
		return nc, nil
	case *Path:
		nc := g.clone().(*Path)
		nc.Data = g.Data.Translate(delta)
		nc.UpdatePathString()
		return nc, nil
	case *Group:
		ng := &Group{NodeBase: g.NodeBase.cloneBase()}
		ng.Children = make([]Node, len(g.Children))
		for i, kid := range g.Children {
			nk, err := Translate(kid, delta)
			if err != nil {
				return nil, err
			}
			ng.Children[i] = nk
		}
		return ng, nil
	}
	return nil, unsupported(n)
}

func translatePoints(pts []math32.Vector2, delta math32.Vector2) {
	for i, p := range pts {
		pts[i] = p.Add(delta)
	}
}

// Rotate returns a copy of the given node rotated counter-clockwise by the
// given angle in degrees.
//
// Shapes whose native fields cannot encode orientation (circle, ellipse,
// rect, image, text) accumulate the angle in their auxiliary rotation, with
// the pivot recomputed to the shape's centroid; their coordinate fields are
// untouched. Lines, polygons, polylines and paths are rotated in place
// around their own centroid by rewriting coordinates. Groups follow the
// orbit-and-spin protocol: every child orbits the group's bounding-box
// center while spinning about its own centroid, reproducing a rigid
// rotation of the whole composition.
func Rotate(n Node, degrees float32) (Node, error) {
	switch g := n.(type) {
	case *Circle:
		nc := g.clone().(*Circle)
		applyAuxRotation(nc, degrees, g.Pos)
		return nc, nil
	case *Ellipse:
		nc := g.clone().(*Ellipse)
		applyAuxRotation(nc, degrees, g.Pos)
		return nc, nil
	case *Line:
		nc := g.clone().(*Line)
		mid := g.Start.Add(g.End).MulScalar(0.5).RoundGeom()
		nc.Start = g.Start.RotateAroundDeg(degrees, mid)
		nc.End = g.End.RotateAroundDeg(degrees, mid)
		return nc, nil
	case *Polygon:
		nc := g.clone().(*Polygon)
		if err := rotatePoints(g, nc.Points, degrees); err != nil {
			return nil, err
		}
		return nc, nil
	case *Polyline:
		nc := g.clone().(*Polyline)
		if err := rotatePoints(g, nc.Points, degrees); err != nil {
			return nil, err
		}
		return nc, nil
	case *Rect:
		nc := g.clone().(*Rect)
		applyAuxRotation(nc, degrees, g.Pos.Add(g.Size.MulScalar(0.5)).RoundGeom())
		return nc, nil
	case *Image:
		nc := g.clone().(*Image)
		applyAuxRotation(nc, degrees, g.Pos.Add(g.Size.MulScalar(0.5)).RoundGeom())
		return nc, nil
	case *Text:
		nc := g.clone().(*Text)
		applyAuxRotation(nc, degrees, g.Pos)
		return nc, nil
	case *Path:
		nc := g.clone().(*Path)
		nd, err := g.Data.Rotate(degrees)
		if err != nil {
			return nil, emptyGeom(g)
		}
		nc.Data = nd
		nc.UpdatePathString()
		return nc, nil
	case *Group:
		return rotateGroup(g, degrees)
	}
	return nil, unsupported(n)
}

// applyAuxRotation accumulates the angle in the node's auxiliary rotation,
// with the pivot recomputed to the shape's current centroid.
func applyAuxRotation(n Node, degrees float32, centroid math32.Vector2) {
	nb := n.AsNodeBase()
	nb.Rot.Angle += degrees
	nb.Rot.Pivot = centroid
}

func rotatePoints(n Node, pts []math32.Vector2, degrees float32) error {
	cen, err := math32.CentroidOf(pts)
	if err != nil {
		return emptyGeom(n)
	}
	for i, p := range pts {
		pts[i] = p.RotateAroundDeg(degrees, cen)
	}
	return nil
}

// rotateGroup rigidly rotates a group: each child is translated so the
// group's bounding-box center is at the origin, recentered on its own
// centroid, spun in place, and placed back at its rotated orbit position.
// The result has the same child count and order.
func rotateGroup(g *Group, degrees float32) (Node, error) {
	ng := &Group{NodeBase: g.NodeBase.cloneBase()}
	if len(g.Children) == 0 {
		return ng, nil
	}
	bb, err := BBox(g)
	if err != nil {
		return nil, err
	}
	pivot := bb.Center()
	ng.Children = make([]Node, len(g.Children))
	for i, kid := range g.Children {
		shifted, err := Translate(kid, pivot.Negate())
		if err != nil {
			return nil, err
		}
		cen, err := childCentroid(shifted)
		if err != nil {
			return nil, err
		}
		centered, err := Translate(shifted, cen.Negate())
		if err != nil {
			return nil, err
		}
		spun, err := Rotate(centered, degrees)
		if err != nil {
			return nil, err
		}
		placed, err := Translate(spun, cen.RotateDeg(degrees).Add(pivot))
		if err != nil {
			return nil, err
		}
		ng.Children[i] = placed
	}
	return ng, nil
}

// childCentroid returns the rotation center for a group child: the
// bounding-box center if the child is itself a group, else its centroid.
func childCentroid(n Node) (math32.Vector2, error) {
	if _, isgp := n.(*Group); isgp {
		bb, err := BBox(n)
		if err != nil {
			return math32.Vector2{}, err
		}
		return bb.Center(), nil
	}
	return Centroid(n)
}
