// Copyright (c) 2024, The Vecdraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"
)

func TestVector2(t *testing.T) {
	assert.Equal(t, Vector2{5, 10}, Vec2(5, 10))
	assert.Equal(t, Vector2{20, 20}, Vector2Scalar(20))
	assert.Equal(t, Vector2{15, -5}, Vector2FromPoint(image.Pt(15, -5)))
	assert.Equal(t, Vector2{8, 3}, Vector2FromFixed(fixed.P(8, 3)))

	v := Vector2{}
	v.Set(-1, 7)
	assert.Equal(t, Vector2{-1, 7}, v)

	v.SetScalar(8.12)
	assert.Equal(t, Vector2{8.12, 8.12}, v)

	assert.Equal(t, Vector2{3, 5}, Vec2(1, 2).Add(Vec2(2, 3)))
	assert.Equal(t, Vector2{-1, -1}, Vec2(1, 2).Sub(Vec2(2, 3)))
	assert.Equal(t, Vector2{2, 6}, Vec2(1, 2).Mul(Vec2(2, 3)))
	assert.Equal(t, Vector2{2, 4}, Vec2(1, 2).MulScalar(2))
	assert.Equal(t, Vector2{3, 2}, Vec2(6, 6).Div(Vec2(2, 3)))
	assert.Equal(t, Vector2{-1, -2}, Vec2(1, 2).Negate())
	assert.Equal(t, float32(8), Vec2(1, 2).Dot(Vec2(2, 3)))
	assert.Equal(t, float32(5), Vec2(3, 4).Length())
	assert.Equal(t, float32(25), Vec2(3, 4).LengthSquared())
}

func TestVector2SafeDiv(t *testing.T) {
	v, err := Vec2(6, 6).SafeDiv(Vec2(2, 3))
	require.NoError(t, err)
	assert.Equal(t, Vector2{3, 2}, v)

	_, err = Vec2(6, 6).SafeDiv(Vec2(0, 3))
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestVector2Distance(t *testing.T) {
	assert.Equal(t, float32(2.82843), Vec2(1, 2).DistanceTo(Vec2(3, 4)))
	assert.Equal(t, float32(0), Vec2(1, 2).DistanceTo(Vec2(1, 2)))
}

func TestVector2Rotate(t *testing.T) {
	assert.Equal(t, Vector2{-2, 1}, Vec2(1, 2).RotateDeg(90))
	assert.Equal(t, Vector2{-1, -2}, Vec2(1, 2).RotateDeg(180))
	assert.Equal(t, Vector2{1, 2}, Vec2(1, 2).RotateDeg(0))

	// rotating around a center keeps the center fixed
	c := Vec2(5, 5)
	assert.Equal(t, c, c.RotateAroundDeg(37, c))
	assert.Equal(t, Vector2{10, 0}, Vec2(0, 0).RotateAroundDeg(90, c))

	// round trip within rounding tolerance
	p := Vec2(3.25, -1.5)
	rt := p.RotateDeg(33).RotateDeg(-33)
	assert.InDelta(t, p.X, rt.X, 1e-4)
	assert.InDelta(t, p.Y, rt.Y, 1e-4)
}

func TestCentroidOf(t *testing.T) {
	c, err := CentroidOf([]Vector2{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, Vector2{2, 3}, c)

	c, err = CentroidOf([]Vector2{{2, 7}})
	require.NoError(t, err)
	assert.Equal(t, Vector2{2, 7}, c)

	_, err = CentroidOf(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestBoundsOf(t *testing.T) {
	bb, err := BoundsOf([]Vector2{{3, 1}, {-2, 4}, {0, 0}})
	require.NoError(t, err)
	assert.Equal(t, B2(-2, 0, 3, 4), bb)

	// coincident points degenerate to a zero-area box
	bb, err = BoundsOf([]Vector2{{2, 2}, {2, 2}})
	require.NoError(t, err)
	assert.Equal(t, B2(2, 2, 2, 2), bb)

	_, err = BoundsOf([]Vector2{})
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestRoundPrec(t *testing.T) {
	assert.Equal(t, float32(2.82843), RoundPrec(2.8284271, 5))
	assert.Equal(t, float32(2.828), RoundPrec(2.8284271, 3))
	assert.Equal(t, float32(-2), RoundGeom(-2.0000000437))
	assert.Equal(t, float32(1.5), RoundGeom(1.5))
}
