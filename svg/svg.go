// Copyright (c) 2024, The Vecdraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import "github.com/vecdraw/vecdraw/math32"

// SVG is a complete drawing document: a viewbox defining the visible
// coordinate range and a root group holding the shape tree.
type SVG struct {
	// Name is the name of the drawing, written as the id of the svg element.
	Name string

	// ViewBox defines the viewport onto the drawing coordinates.
	ViewBox ViewBox

	// Root is the root group; all shapes live under it.
	Root *Group
}

// NewSVG returns a new [SVG] document with the given viewport size,
// anchored at the origin, and an empty root group.
func NewSVG(width, height float32) *SVG {
	sv := &SVG{}
	sv.ViewBox.Size = math32.Vec2(width, height)
	sv.Root = NewGroup(nil, "root")
	return sv
}

// Translate returns a copy of the document with all shapes shifted by
// the given delta.
func (sv *SVG) Translate(delta math32.Vector2) (*SVG, error) {
	nr, err := Translate(sv.Root, delta)
	if err != nil {
		return nil, err
	}
	ns := *sv
	ns.Root = nr.(*Group)
	return &ns, nil
}

// Rotate returns a copy of the document with all shapes rigidly rotated
// counter-clockwise by the given angle in degrees, about the center of the
// root group's bounding box.
func (sv *SVG) Rotate(degrees float32) (*SVG, error) {
	nr, err := Rotate(sv.Root, degrees)
	if err != nil {
		return nil, err
	}
	ns := *sv
	ns.Root = nr.(*Group)
	return &ns, nil
}
