// Copyright (c) 2024, The Vecdraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"github.com/vecdraw/vecdraw/math32"
)

// glyphWidthFactor is the estimated average glyph width as a fraction of
// the font size, used for the text bounding-box estimate.
const glyphWidthFactor = 0.6

// Text renders a string of SVG text.
type Text struct {
	NodeBase

	// Pos is the position of the left, baseline of the text.
	Pos math32.Vector2

	// FontSize is the font size in user units.
	FontSize float32

	// Text is the text string to render.
	Text string
}

// NewText adds a new text element to the given parent, with given name,
// position, font size, and text string.
func NewText(parent *Group, name string, x, y, fontSize float32, text string) *Text {
	g := &Text{}
	g.Pos.Set(x, y)
	g.FontSize = fontSize
	g.Text = text
	initNode(g, parent, name, textDefaults)
	return g
}

func (g *Text) SVGName() string { return "text" }

func (g *Text) clone() Node {
	nc := *g
	nc.NodeBase = g.NodeBase.cloneBase()
	return &nc
}

// glyphBox returns the estimated glyph rectangle for the text:
// glyphWidthFactor * FontSize per character wide, FontSize tall,
// with the baseline at Pos.Y.
func (g *Text) glyphBox() math32.Box2 {
	w := glyphWidthFactor * g.FontSize * float32(len([]rune(g.Text)))
	return math32.Box2{
		Min: math32.Vec2(g.Pos.X, g.Pos.Y-g.FontSize),
		Max: math32.Vec2(g.Pos.X+w, g.Pos.Y),
	}
}
