// Copyright (c) 2025, The Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Matrix2 is a 3x2 affine transformation matrix for 2D points,
// in row-major order:
//
//	XX YX
//	XY YY
//	X0 Y0
//
// where X0 and Y0 are the translation components.
type Matrix2 struct {
	XX, YX, XY, YY, X0, Y0 float32
}

// Identity2 returns a new identity [Matrix2].
func Identity2() Matrix2 {
	return Matrix2{XX: 1, YY: 1}
}

// Translate2D returns a [Matrix2] that translates by the given offsets.
func Translate2D(x, y float32) Matrix2 {
	return Matrix2{XX: 1, YY: 1, X0: x, Y0: y}
}

// Rotate2D returns a [Matrix2] that rotates by the given angle in radians.
func Rotate2D(angle float32) Matrix2 {
	c := Cos(angle)
	s := Sin(angle)
	return Matrix2{XX: c, YX: s, XY: -s, YY: c}
}

// Mul returns a*b, such that the transformations of b are applied first
// when transforming a point.
func (a Matrix2) Mul(b Matrix2) Matrix2 {
	return Matrix2{
		XX: a.XX*b.XX + a.XY*b.YX,
		YX: a.YX*b.XX + a.YY*b.YX,
		XY: a.XX*b.XY + a.XY*b.YY,
		YY: a.YX*b.XY + a.YY*b.YY,
		X0: a.XX*b.X0 + a.XY*b.Y0 + a.X0,
		Y0: a.YX*b.X0 + a.YY*b.Y0 + a.Y0,
	}
}

// MulVector2AsPoint returns the given point transformed by this matrix,
// including the translation components.
func (a Matrix2) MulVector2AsPoint(v Vector2) Vector2 {
	return Vector2{
		X: a.XX*v.X + a.XY*v.Y + a.X0,
		Y: a.YX*v.X + a.YY*v.Y + a.Y0,
	}
}

// MulVector2AsVector returns the given vector transformed by this matrix,
// without the translation components.
func (a Matrix2) MulVector2AsVector(v Vector2) Vector2 {
	return Vector2{
		X: a.XX*v.X + a.XY*v.Y,
		Y: a.YX*v.X + a.YY*v.Y,
	}
}

// Translate returns a copy of this matrix with an additional translation.
func (a Matrix2) Translate(x, y float32) Matrix2 {
	return a.Mul(Translate2D(x, y))
}

// Rotate returns a copy of this matrix with an additional rotation
// by the given angle in radians.
func (a Matrix2) Rotate(angle float32) Matrix2 {
	return a.Mul(Rotate2D(angle))
}

// MulBox2 returns the axis-aligned bounding box of the given box
// with all four corners transformed by this matrix.
func (a Matrix2) MulBox2(b Box2) Box2 {
	corners := [4]Vector2{
		b.Min,
		{b.Max.X, b.Min.Y},
		b.Max,
		{b.Min.X, b.Max.Y},
	}
	nb := B2Empty()
	for _, c := range corners {
		nb.ExpandByPoint(a.MulVector2AsPoint(c))
	}
	return nb
}
