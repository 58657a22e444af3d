// Copyright (c) 2024, The Vecdraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vecdraw/vecdraw/math32"
	"github.com/vecdraw/vecdraw/svg"
)

func TestXMLStringBasic(t *testing.T) {
	sv := svg.NewSVG(100, 100)
	sv.Name = "doc"
	svg.NewCircle(sv.Root, "c1", 50, 50, 20)

	want := `<svg id="doc" width="100" height="100" viewBox="0 0 100 100" xmlns="http://www.w3.org/2000/svg">
  <circle id="c1" fill="none" stroke="black" stroke-width="1" cx="50" cy="50" r="20"></circle>
</svg>`
	assert.Equal(t, want, sv.XMLString())
}

func TestXMLStringElements(t *testing.T) {
	sv := svg.NewSVG(200, 100)

	gp := svg.NewGroup(sv.Root, "g1")
	svg.NewLine(gp, "l1", 0, 0, 10, 10)
	svg.NewPolygon(sv.Root, "pg", []math32.Vector2{
		math32.Vec2(0, 0), math32.Vec2(10, 0), math32.Vec2(5, 8),
	})
	svg.NewText(sv.Root, "t1", 5, 20, 10, "hello")
	p := svg.NewPath(sv.Root, "p1")
	require.NoError(t, p.SetData("M0,0 L5,5"))

	r := svg.NewRect(nil, "r1", 10, 10)
	nr, err := svg.Rotate(r, 90)
	require.NoError(t, err)
	sv.Root.Add(nr)

	out := sv.XMLString()
	assert.Contains(t, out, `<g id="g1">`)
	assert.Contains(t, out, `<line id="l1"`)
	assert.Contains(t, out, `x1="0" y1="0" x2="10" y2="10"`)
	assert.Contains(t, out, `points="0,0 10,0 5,8"`)
	assert.Contains(t, out, `font-size="10"`)
	assert.Contains(t, out, `>hello</text>`)
	assert.Contains(t, out, `d="M0,0 L5,5"`)
	assert.Contains(t, out, `transform="rotate(90 0 0)"`)
	assert.Contains(t, out, `x="-5" y="-5" width="10" height="10"`)
}

func TestSaveXML(t *testing.T) {
	sv := svg.NewSVG(50, 50)
	svg.NewCircle(sv.Root, "c", 25, 25, 10)

	fname := filepath.Join(t.TempDir(), "out.svg")
	require.NoError(t, sv.SaveXML(fname))

	b, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "<svg"))
	assert.Contains(t, string(b), `r="10"`)
}

func TestArrowAndLabel(t *testing.T) {
	sv := svg.NewSVG(100, 100)
	ar := svg.NewArrow(sv.Root, "ar", math32.Vec2(0, 0), math32.Vec2(10, 0), 4)
	require.Len(t, ar.Children, 2)

	ln := ar.Children[0].(*svg.Line)
	assert.Equal(t, math32.Vec2(0, 0), ln.Start)
	assert.Equal(t, math32.Vec2(6, 0), ln.End)

	head := ar.Children[1].(*svg.Polygon)
	require.Len(t, head.Points, 3)
	assert.Equal(t, math32.Vec2(10, 0), head.Points[0])
	assert.Equal(t, math32.Vec2(6, 2), head.Points[1])
	assert.Equal(t, math32.Vec2(6, -2), head.Points[2])

	lb := svg.NewLabel(sv.Root, "lb", 10, 30, 10, "ok")
	require.Len(t, lb.Children, 2)
	bg := lb.Children[0].(*svg.Rect)
	txt := lb.Children[1].(*svg.Text)
	assert.Equal(t, "ok", txt.Text)

	// background rectangle encloses the text box with padding
	bb, err := svg.BBox(txt)
	require.NoError(t, err)
	rb, err := svg.BBox(bg)
	require.NoError(t, err)
	assert.True(t, rb.ContainsPoint(bb.Min))
	assert.True(t, rb.ContainsPoint(bb.Max))
}
