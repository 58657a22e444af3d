// Copyright (c) 2024, The Vecdraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"image"

	"golang.org/x/image/math/fixed"
)

// Vector2 is a 2D vector/point with X and Y components.
// It is an immutable value type: all arithmetic methods return new values.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{x, y}
}

// Vector2Scalar returns a new [Vector2] with all components set to the given scalar value.
func Vector2Scalar(scalar float32) Vector2 {
	return Vector2{scalar, scalar}
}

// Vector2FromPoint returns a new [Vector2] from the given [image.Point].
func Vector2FromPoint(pt image.Point) Vector2 {
	return Vec2(float32(pt.X), float32(pt.Y))
}

// Vector2FromFixed returns a new [Vector2] from the given [fixed.Point26_6].
func Vector2FromFixed(pt fixed.Point26_6) Vector2 {
	return Vec2(FromFixed(pt.X), FromFixed(pt.Y))
}

// ToFixed returns the vector as a [fixed.Point26_6].
func (v Vector2) ToFixed() fixed.Point26_6 {
	return fixed.Point26_6{X: ToFixed(v.X), Y: ToFixed(v.Y)}
}

// ToPoint returns the vector as an [image.Point], using simple truncation.
func (v Vector2) ToPoint() image.Point {
	return image.Point{int(v.X), int(v.Y)}
}

// ToPointFloor returns the vector as an [image.Point], using Floor.
func (v Vector2) ToPointFloor() image.Point {
	return image.Point{int(Floor(v.X)), int(Floor(v.Y))}
}

// ToPointCeil returns the vector as an [image.Point], using Ceil.
func (v Vector2) ToPointCeil() image.Point {
	return image.Point{int(Ceil(v.X)), int(Ceil(v.Y))}
}

// ToFixed converts a float32 value to a fixed.Int26_6.
func ToFixed(x float32) fixed.Int26_6 {
	return fixed.Int26_6(x * 64)
}

// FromFixed converts a fixed.Int26_6 value to a float32.
func FromFixed(x fixed.Int26_6) float32 {
	const shift, mask = 6, 1<<6 - 1
	if x >= 0 {
		return float32(x>>shift) + float32(x&mask)/64
	}
	x = -x
	if x >= 0 {
		return -(float32(x>>shift) + float32(x&mask)/64)
	}
	return 0
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// Set sets this vector's X and Y components.
func (v *Vector2) Set(x, y float32) {
	v.X = x
	v.Y = y
}

// SetScalar sets all components of the vector to the given scalar value.
func (v *Vector2) SetScalar(scalar float32) {
	v.X = scalar
	v.Y = scalar
}

// Add returns the vector plus the other given vector.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vec2(v.X+other.X, v.Y+other.Y)
}

// AddScalar returns the vector plus the given scalar on each component.
func (v Vector2) AddScalar(scalar float32) Vector2 {
	return Vec2(v.X+scalar, v.Y+scalar)
}

// SetAdd adds the other given vector to this one.
func (v *Vector2) SetAdd(other Vector2) {
	v.X += other.X
	v.Y += other.Y
}

// Sub returns the vector minus the other given vector.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vec2(v.X-other.X, v.Y-other.Y)
}

// SubScalar returns the vector minus the given scalar on each component.
func (v Vector2) SubScalar(scalar float32) Vector2 {
	return Vec2(v.X-scalar, v.Y-scalar)
}

// SetSub subtracts the other given vector from this one.
func (v *Vector2) SetSub(other Vector2) {
	v.X -= other.X
	v.Y -= other.Y
}

// Mul returns the element-wise product with the other given vector.
func (v Vector2) Mul(other Vector2) Vector2 {
	return Vec2(v.X*other.X, v.Y*other.Y)
}

// MulScalar returns the vector scaled by the given scalar.
func (v Vector2) MulScalar(scalar float32) Vector2 {
	return Vec2(v.X*scalar, v.Y*scalar)
}

// Div returns the element-wise quotient with the other given vector.
// Division by zero is a caller error; use [Vector2.SafeDiv] to get an
// explicit error instead of an infinity.
func (v Vector2) Div(other Vector2) Vector2 {
	return Vec2(v.X/other.X, v.Y/other.Y)
}

// DivScalar returns the vector divided by the given scalar.
func (v Vector2) DivScalar(scalar float32) Vector2 {
	if scalar == 0 {
		return Vector2{}
	}
	return v.MulScalar(1 / scalar)
}

// SafeDiv returns the element-wise quotient with the other given vector,
// returning [ErrDivisionByZero] if any component of other is zero.
func (v Vector2) SafeDiv(other Vector2) (Vector2, error) {
	if other.X == 0 || other.Y == 0 {
		return Vector2{}, fmt.Errorf("math32: dividing %v by %v: %w", v, other, ErrDivisionByZero)
	}
	return v.Div(other), nil
}

// Negate returns the vector with each component negated.
func (v Vector2) Negate() Vector2 {
	return Vec2(-v.X, -v.Y)
}

// Dot returns the dot product of this vector with the other given vector.
func (v Vector2) Dot(other Vector2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Length returns the length (magnitude) of the vector.
func (v Vector2) Length() float32 {
	return Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSquared returns the squared length of the vector, avoiding the Sqrt.
func (v Vector2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Normal returns the vector scaled to unit length, or the zero vector
// if its length is zero.
func (v Vector2) Normal() Vector2 {
	return v.DivScalar(v.Length())
}

// DistanceTo returns the distance to the other given vector,
// rounded to [GeomPrec] decimal places.
func (v Vector2) DistanceTo(other Vector2) float32 {
	return RoundGeom(v.Sub(other).Length())
}

// Min returns the element-wise minimum with the other given vector.
func (v Vector2) Min(other Vector2) Vector2 {
	return Vec2(Min(v.X, other.X), Min(v.Y, other.Y))
}

// SetMin sets this vector's components to the minimum with the other vector.
func (v *Vector2) SetMin(other Vector2) {
	v.X = Min(v.X, other.X)
	v.Y = Min(v.Y, other.Y)
}

// Max returns the element-wise maximum with the other given vector.
func (v Vector2) Max(other Vector2) Vector2 {
	return Vec2(Max(v.X, other.X), Max(v.Y, other.Y))
}

// SetMax sets this vector's components to the maximum with the other vector.
func (v *Vector2) SetMax(other Vector2) {
	v.X = Max(v.X, other.X)
	v.Y = Max(v.Y, other.Y)
}

// RoundGeom returns the vector with each component rounded to
// [GeomPrec] decimal places.
func (v Vector2) RoundGeom() Vector2 {
	return Vec2(RoundGeom(v.X), RoundGeom(v.Y))
}

// RotateDeg returns the vector rotated counter-clockwise around the origin
// by the given angle in degrees, with components rounded to [GeomPrec]
// decimal places.
func (v Vector2) RotateDeg(degrees float32) Vector2 {
	sin, cos := Sincos(DegToRad(degrees))
	return Vec2(RoundGeom(v.X*cos-v.Y*sin), RoundGeom(v.X*sin+v.Y*cos))
}

// RotateAroundDeg returns the vector rotated counter-clockwise by the given
// angle in degrees around the given center point: it translates by -center,
// rotates around the origin, and translates back.
func (v Vector2) RotateAroundDeg(degrees float32, center Vector2) Vector2 {
	return v.Sub(center).RotateDeg(degrees).Add(center).RoundGeom()
}

// centroidAccum is the named accumulator for the [CentroidOf] fold.
type centroidAccum struct {
	sum   Vector2
	count int
}

func (a *centroidAccum) add(p Vector2) {
	a.sum.SetAdd(p)
	a.count++
}

func (a *centroidAccum) mean() Vector2 {
	return a.sum.DivScalar(float32(a.count)).RoundGeom()
}

// CentroidOf returns the arithmetic mean position of the given points,
// rounded to [GeomPrec] decimal places.
// It returns [ErrEmptyInput] if no points are given.
func CentroidOf(points []Vector2) (Vector2, error) {
	if len(points) == 0 {
		return Vector2{}, fmt.Errorf("math32: centroid: %w", ErrEmptyInput)
	}
	var acc centroidAccum
	for _, p := range points {
		acc.add(p)
	}
	return acc.mean(), nil
}

// BoundsOf returns the axis-aligned bounding box of the given points.
// A single point, or coincident points, produce a valid zero-area box.
// It returns [ErrEmptyInput] if no points are given.
func BoundsOf(points []Vector2) (Box2, error) {
	if len(points) == 0 {
		return Box2{}, fmt.Errorf("math32: bounds: %w", ErrEmptyInput)
	}
	bb := B2Empty()
	for _, p := range points {
		bb.ExpandByPoint(p)
	}
	return bb, nil
}
