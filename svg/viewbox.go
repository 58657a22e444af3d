// Copyright (c) 2024, The Vecdraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"

	"github.com/vecdraw/vecdraw/math32"
)

// ViewBox is the visible viewport into the document coordinate system,
// as for the standard svg viewBox attribute.
type ViewBox struct {
	// Min is the upper-left corner of the viewport.
	Min math32.Vector2

	// Size is the width and height of the viewport.
	Size math32.Vector2
}

// Defaults sets the viewbox to a standard 100 x 100 viewport at the origin.
func (vb *ViewBox) Defaults() {
	vb.Min = math32.Vector2{}
	vb.Size = math32.Vec2(100, 100)
}

// BoxString returns the attribute value for the viewBox attribute.
func (vb *ViewBox) BoxString() string {
	return fmt.Sprintf("%g %g %g %g", vb.Min.X, vb.Min.Y, vb.Size.X, vb.Size.Y)
}
