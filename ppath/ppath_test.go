// Copyright (c) 2024, The Vecdraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vecdraw/vecdraw/math32"
)

func TestBuilderString(t *testing.T) {
	var p Path
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.QuadTo(15, 5, 10, 10)
	p.CubeTo(8, 12, 2, 12, 0, 10)
	p.ClosePath()
	assert.Equal(t, "M0,0 L10,0 Q15,5 10,10 C8,12 2,12 0,10 Z", p.String())
}

func TestArcString(t *testing.T) {
	var p Path
	p.MoveTo(10, 0)
	p.ArcTo(5, 5, 0, false, true, 10, 10)
	assert.Equal(t, "M10,0 A5,5 0 0 1 10,10", p.String())
}

func TestRelativeLetter(t *testing.T) {
	c := Cmd{Op: Line, Rel: true, Data: []float32{3, 4}}
	assert.Equal(t, byte('l'), c.Letter())
	assert.Equal(t, "l3,4", c.String())
}

func TestParsePath(t *testing.T) {
	p, err := ParsePath("M0,0 L10,0 10,10 z")
	require.NoError(t, err)
	require.Len(t, p, 4)
	assert.Equal(t, Move, p[0].Op)
	assert.Equal(t, Line, p[1].Op)
	// repeated coordinate group continues the Line op
	assert.Equal(t, Line, p[2].Op)
	assert.Equal(t, []float32{10, 10}, p[2].Data)
	assert.Equal(t, Close, p[3].Op)
	assert.True(t, p[3].Rel)
}

func TestParsePathImplicitLine(t *testing.T) {
	// extra groups after a moveto become linetos
	p, err := ParsePath("m1,1 2,0 0,2")
	require.NoError(t, err)
	require.Len(t, p, 3)
	assert.Equal(t, Move, p[0].Op)
	assert.Equal(t, Line, p[1].Op)
	assert.True(t, p[1].Rel)
	assert.Equal(t, Line, p[2].Op)
}

func TestParsePathAllOps(t *testing.T) {
	p, err := ParsePath("M1,2 H5 V7 C1,1 2,2 3,3 S4,4 5,5 Q6,6 7,7 T8,8 A5,5 30 1 0 9,9 Z")
	require.NoError(t, err)
	ops := make([]Op, len(p))
	for i, c := range p {
		ops[i] = c.Op
	}
	assert.Equal(t, []Op{Move, HLine, VLine, Cube, SmoothCube, Quad, SmoothQuad, Arc, Close}, ops)
	assert.Equal(t, []float32{5, 5, 30, 1, 0, 9, 9}, p[7].Data)
}

func TestParsePathCompactNumbers(t *testing.T) {
	// '-' acts as a separator between numbers
	p, err := ParsePath("M1-2L-3-4")
	require.NoError(t, err)
	require.Len(t, p, 2)
	assert.Equal(t, []float32{1, -2}, p[0].Data)
	assert.Equal(t, []float32{-3, -4}, p[1].Data)

	// a second decimal point terminates the number
	p, err = ParsePath("M1.5.5 L0,0")
	require.NoError(t, err)
	assert.Equal(t, []float32{1.5, 0.5}, p[0].Data)
}

func TestParsePathErrors(t *testing.T) {
	_, err := ParsePath("0,0 L1,1")
	assert.Error(t, err)
	_, err = ParsePath("Mx,y")
	assert.Error(t, err)
}

func TestParseStringRoundTrip(t *testing.T) {
	d := "M0,0 L10,0 Q15,5 10,10 Z"
	p, err := ParsePath(d)
	require.NoError(t, err)
	assert.Equal(t, d, p.String())
}

func TestApproxPoints(t *testing.T) {
	p, err := ParsePath("M1,1 L3,1")
	require.NoError(t, err)
	assert.Equal(t, []math32.Vector2{{X: 1, Y: 1}, {X: 3, Y: 1}}, p.ApproxPoints())

	// relative coordinates resolve against the cursor
	p, err = ParsePath("m1,1 l2,0")
	require.NoError(t, err)
	assert.Equal(t, []math32.Vector2{{X: 1, Y: 1}, {X: 3, Y: 1}}, p.ApproxPoints())

	// curves contribute their control polygon
	p, err = ParsePath("M0,0 Q5,10 10,0")
	require.NoError(t, err)
	assert.Equal(t, []math32.Vector2{{X: 0, Y: 0}, {X: 5, Y: 10}, {X: 10, Y: 0}}, p.ApproxPoints())
}

func TestApproxPointsSynthesizedMove(t *testing.T) {
	var p Path
	p.LineTo(2, 2)
	assert.Equal(t, []math32.Vector2{{X: 0, Y: 0}, {X: 2, Y: 2}}, p.ApproxPoints())
}

func TestApproxPointsCloseResetsCursor(t *testing.T) {
	p, err := ParsePath("M2,2 L4,2 Z l1,1")
	require.NoError(t, err)
	assert.Equal(t, []math32.Vector2{{X: 2, Y: 2}, {X: 4, Y: 2}, {X: 3, Y: 3}}, p.ApproxPoints())
}

func TestArcApproxPoints(t *testing.T) {
	// half circle from (10,0) to (-10,0) over the top
	var p Path
	p.MoveTo(10, 0)
	p.ArcTo(10, 10, 0, false, true, -10, 0)
	pts := p.ApproxPoints()
	require.Len(t, pts, 3)
	assert.Equal(t, math32.Vec2(10, 0), pts[0])
	assert.InDelta(t, 0, pts[1].X, 1e-3)
	assert.InDelta(t, 10, pts[1].Y, 1e-3)
	assert.Equal(t, math32.Vec2(-10, 0), pts[2])

	// every decomposed sample point is within the path bounds
	bb, err := p.Bounds()
	require.NoError(t, err)
	for _, pt := range pts {
		assert.True(t, bb.ContainsPoint(pt), "point %v outside bounds %v", pt, bb)
	}
}

func TestBoundsCentroid(t *testing.T) {
	p, err := ParsePath("M0,0 L10,0 L10,10 L0,10 Z")
	require.NoError(t, err)

	bb, err := p.Bounds()
	require.NoError(t, err)
	assert.Equal(t, math32.B2(0, 0, 10, 10), bb)

	c, err := p.Centroid()
	require.NoError(t, err)
	assert.Equal(t, math32.Vec2(5, 5), c)

	_, err = Path{}.Bounds()
	assert.ErrorIs(t, err, math32.ErrEmptyInput)
	_, err = Path{}.Centroid()
	assert.ErrorIs(t, err, math32.ErrEmptyInput)
}

func TestTranslate(t *testing.T) {
	p, err := ParsePath("M0,0 l5,5 L10,0")
	require.NoError(t, err)
	tp := p.Translate(math32.Vec2(2, 3))
	assert.Equal(t, "M2,3 l5,5 L12,3", tp.String())
	// original is unchanged
	assert.Equal(t, "M0,0 l5,5 L10,0", p.String())
}

func TestTranslateLeadingRelativeMove(t *testing.T) {
	p, err := ParsePath("m1,1 l2,0")
	require.NoError(t, err)
	tp := p.Translate(math32.Vec2(1, 1))
	assert.Equal(t, "m2,2 l2,0", tp.String())
}

func TestTranslateAdditivity(t *testing.T) {
	p, err := ParsePath("M0,0 L10,0 Q15,5 10,10 H-2 V3 A5,5 0 0 1 0,0")
	require.NoError(t, err)
	one := p.Translate(math32.Vec2(1, 2)).Translate(math32.Vec2(3, 4))
	two := p.Translate(math32.Vec2(4, 6))
	assert.Equal(t, two.String(), one.String())
}

func TestCmdRotateArc(t *testing.T) {
	c := Cmd{Op: Arc, Data: []float32{5, 5, 0, 0, 1, 10, 10}}
	rc := c.Rotate(math32.Vector2{}, 90)
	// radii and flags unchanged, x-axis rotation increased, end point rotated
	assert.Equal(t, float32(5), rc.Data[0])
	assert.Equal(t, float32(5), rc.Data[1])
	assert.Equal(t, float32(90), rc.Data[2])
	assert.Equal(t, float32(0), rc.Data[3])
	assert.Equal(t, float32(1), rc.Data[4])
	assert.InDelta(t, -10, rc.Data[5], 1e-4)
	assert.InDelta(t, 10, rc.Data[6], 1e-4)
}

func TestCmdRotateCloseNoOp(t *testing.T) {
	c := Cmd{Op: Close}
	assert.Equal(t, c, c.Rotate(math32.Vec2(3, 3), 45))
}

func TestPathRotate(t *testing.T) {
	p, err := ParsePath("M0,0 L10,0 L10,10 L0,10")
	require.NoError(t, err)
	rp, err := p.Rotate(90)
	require.NoError(t, err)
	assert.Equal(t, "M10,0 L10,10 L0,10 L0,0", rp.String())

	// centroid is preserved under rotation about itself
	c0, err := p.Centroid()
	require.NoError(t, err)
	c1, err := rp.Centroid()
	require.NoError(t, err)
	assert.InDelta(t, c0.X, c1.X, 1e-3)
	assert.InDelta(t, c0.Y, c1.Y, 1e-3)
}

func TestPathRotateExpandsAxisLines(t *testing.T) {
	p, err := ParsePath("M0,0 H10 V5")
	require.NoError(t, err)
	want := p.ApproxPoints()
	cen, err := p.Centroid()
	require.NoError(t, err)

	rp, err := p.Rotate(37)
	require.NoError(t, err)
	for _, c := range rp {
		assert.NotEqual(t, HLine, c.Op)
		assert.NotEqual(t, VLine, c.Op)
	}
	got := rp.ApproxPoints()
	require.Len(t, got, len(want))
	for i := range want {
		w := want[i].RotateAroundDeg(37, cen)
		assert.InDelta(t, w.X, got[i].X, 1e-3)
		assert.InDelta(t, w.Y, got[i].Y, 1e-3)
	}
}

func TestPathRotateRoundTrip(t *testing.T) {
	p, err := ParsePath("M0,0 L10,0 Q15,5 10,10 C8,12 2,12 0,10 Z")
	require.NoError(t, err)
	r1, err := p.Rotate(33)
	require.NoError(t, err)
	r2, err := r1.Rotate(-33)
	require.NoError(t, err)
	a := p.ApproxPoints()
	b := r2.ApproxPoints()
	require.Len(t, b, len(a))
	for i := range a {
		assert.InDelta(t, a[i].X, b[i].X, 1e-3)
		assert.InDelta(t, a[i].Y, b[i].Y, 1e-3)
	}
}
