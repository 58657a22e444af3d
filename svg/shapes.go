// Copyright (c) 2024, The Vecdraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"github.com/vecdraw/vecdraw/math32"
)

// NewArrow adds a new arrow group to the given parent: a shaft line from
// start to end plus a triangular polygon head of the given size at the end,
// oriented along the line direction. A zero-length arrow gets an
// axis-aligned head pointing right.
func NewArrow(parent *Group, name string, start, end math32.Vector2, headSize float32) *Group {
	gp := NewGroup(parent, name)

	dir := end.Sub(start)
	if dir.Length() == 0 {
		dir = math32.Vec2(1, 0)
	} else {
		dir = dir.Normal()
	}
	perp := math32.Vec2(-dir.Y, dir.X)

	base := end.Sub(dir.MulScalar(headSize))
	half := perp.MulScalar(headSize / 2)

	NewLine(gp, name+"-shaft", start.X, start.Y, base.X, base.Y)
	head := NewPolygon(gp, name+"-head", []math32.Vector2{
		end.RoundGeom(),
		base.Add(half).RoundGeom(),
		base.Sub(half).RoundGeom(),
	})
	head.SetProperty("fill", "black")
	return gp
}

// labelPadFactor is the padding around label text as a fraction of the
// font size.
const labelPadFactor = 0.25

// NewLabel adds a new label group to the given parent: a background
// rectangle snugly enclosing the given text with padding proportional to
// the font size, plus the text itself with its baseline origin at (x, y).
func NewLabel(parent *Group, name string, x, y, fontSize float32, text string) *Group {
	gp := NewGroup(parent, name)

	txt := NewText(nil, name+"-text", x, y, fontSize, text)
	pad := labelPadFactor * fontSize
	box := txt.glyphBox()

	rect := NewRect(gp, name+"-bg", box.Size().X+2*pad, box.Size().Y+2*pad)
	rect.Pos = box.Min.SubScalar(pad)
	rect.SetProperty("fill", "white")

	gp.Add(txt)
	return gp
}
