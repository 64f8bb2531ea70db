// Copyright (c) 2025, The Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
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

	v.SetScalar(8.5)
	assert.Equal(t, Vector2{8.5, 8.5}, v)

	assert.Equal(t, Vector2{3, 4}, Vec2(1, 1).Add(Vec2(2, 3)))
	assert.Equal(t, Vector2{-1, -2}, Vec2(1, 1).Sub(Vec2(2, 3)))
	assert.Equal(t, Vector2{2, 6}, Vec2(1, 2).Mul(Vec2(2, 3)))
	assert.Equal(t, Vector2{2, 4}, Vec2(1, 2).MulScalar(2))
	assert.Equal(t, Vector2{2, 3}, Vec2(4, 9).Div(Vec2(2, 3)))
	assert.Equal(t, Vector2{}, Vec2(4, 9).DivScalar(0))

	assert.Equal(t, float32(25), Vec2(3, 4).LengthSquared())
	assert.Equal(t, float32(5), Vec2(3, 4).Length())
	assert.Equal(t, float32(5), Vec2(0, 0).DistanceTo(Vec2(3, 4)))
	assert.Equal(t, float32(11), Vec2(1, 2).Dot(Vec2(3, 4)))

	assert.Equal(t, Vector2{1, 2}, Vec2(1, 5).Min(Vec2(3, 2)))
	assert.Equal(t, Vector2{3, 5}, Vec2(1, 5).Max(Vec2(3, 2)))
	assert.Equal(t, Vector2{1, 2}, Vec2(-1, 2).Abs())
	assert.Equal(t, Vector2{-1, -2}, Vec2(1, 2).Negate())
	assert.Equal(t, image.Pt(1, 3), Vec2(1.4, 2.5).ToPoint())
	assert.Equal(t, image.Pt(1, 2), Vec2(1.9, 2.9).ToPointFloor())
	assert.Equal(t, image.Pt(2, 3), Vec2(1.1, 2.1).ToPointCeil())
}

func TestBox2(t *testing.T) {
	b := B2(1, 2, 3, 4)
	assert.Equal(t, Vector2{2, 2}, b.Size())
	assert.Equal(t, Vector2{2, 3}, b.Center())
	assert.False(t, b.IsEmpty())
	assert.True(t, B2Empty().IsEmpty())

	assert.True(t, b.ContainsPoint(Vec2(2, 3)))
	assert.True(t, b.ContainsPoint(Vec2(1, 2)))
	assert.False(t, b.ContainsPoint(Vec2(0, 3)))

	assert.Equal(t, b, B2(3, 4, 1, 2).Canon())

	eb := B2Empty()
	eb.ExpandByPoint(Vec2(1, 4))
	eb.ExpandByPoint(Vec2(3, 2))
	assert.Equal(t, b, eb)

	pb := Box2{}
	pb.SetFromPoints([]Vector2{{3, 2}, {1, 4}, {2, 3}})
	assert.Equal(t, b, pb)

	assert.Equal(t, B2(2, 3, 4, 5), b.Translate(Vec2(1, 1)))
	assert.Equal(t, B2(0, 1, 4, 5), b.Adjusted(-1, -1, 1, 1))
	assert.Equal(t, B2(9, 19, 11, 21), b.MoveCenter(Vec2(10, 20)))
	assert.Equal(t, image.Rect(1, 2, 3, 4), b.ToRect())
}

func TestMatrix2(t *testing.T) {
	id := Identity2()
	assert.Equal(t, Vector2{3, 4}, id.MulVector2AsPoint(Vec2(3, 4)))

	tr := Translate2D(10, 20)
	assert.Equal(t, Vector2{13, 24}, tr.MulVector2AsPoint(Vec2(3, 4)))
	assert.Equal(t, Vector2{3, 4}, tr.MulVector2AsVector(Vec2(3, 4)))

	rot := Rotate2D(DegToRad(90))
	p := rot.MulVector2AsPoint(Vec2(1, 0))
	assert.InDelta(t, 0, p.X, 1.0e-6)
	assert.InDelta(t, 1, p.Y, 1.0e-6)

	// translate, then rotate about the translated origin
	m := Translate2D(10, 0).Rotate(DegToRad(90))
	p = m.MulVector2AsPoint(Vec2(1, 0))
	assert.InDelta(t, 10, p.X, 1.0e-5)
	assert.InDelta(t, 1, p.Y, 1.0e-5)

	bb := rot.MulBox2(B2(0, 0, 2, 1))
	assert.InDelta(t, -1, bb.Min.X, 1.0e-5)
	assert.InDelta(t, 0, bb.Min.Y, 1.0e-5)
	assert.InDelta(t, 0, bb.Max.X, 1.0e-5)
	assert.InDelta(t, 2, bb.Max.Y, 1.0e-5)
}
