// Copyright (c) 2025, The Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "image"

// Box2 represents a 2D bounding box defined by two points:
// the point with minimum coordinates and the point with maximum coordinates.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns a new [Box2] from the given minimum and maximum x and y coordinates.
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// B2Empty returns a new [Box2] with empty minimum and maximum values.
func B2Empty() Box2 {
	bx := Box2{}
	bx.SetEmpty()
	return bx
}

// B2FromRect returns a new [Box2] from the given [image.Rectangle].
func B2FromRect(rect image.Rectangle) Box2 {
	return Box2{Vector2FromPoint(rect.Min), Vector2FromPoint(rect.Max)}
}

// SetEmpty sets this bounding box to empty (min / max +/- Infinity).
func (b *Box2) SetEmpty() {
	b.Min.SetScalar(Infinity)
	b.Max.SetScalar(-Infinity)
}

// IsEmpty returns whether this bounding box is empty (max < min on any coord).
func (b Box2) IsEmpty() bool {
	return (b.Max.X < b.Min.X) || (b.Max.Y < b.Min.Y)
}

// SetFromPoints sets this bounding box from the specified array of points.
func (b *Box2) SetFromPoints(points []Vector2) {
	b.SetEmpty()
	for i := 0; i < len(points); i++ {
		b.ExpandByPoint(points[i])
	}
}

// ExpandByPoint may expand this bounding box to include the specified point.
func (b *Box2) ExpandByPoint(point Vector2) {
	b.Min.SetMin(point)
	b.Max.SetMax(point)
}

// ExpandByBox may expand this bounding box to include the specified box.
func (b *Box2) ExpandByBox(box Box2) {
	b.ExpandByPoint(box.Min)
	b.ExpandByPoint(box.Max)
}

// ToRect returns the [image.Rectangle] version of this bounding box,
// using floor for min and ceil for max.
func (b Box2) ToRect() image.Rectangle {
	return image.Rectangle{Min: b.Min.ToPointFloor(), Max: b.Max.ToPointCeil()}
}

// Size returns the size of this bounding box (width and height).
func (b Box2) Size() Vector2 {
	return b.Max.Sub(b.Min)
}

// Center returns the center point of this bounding box.
func (b Box2) Center() Vector2 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Canon returns the canonical version of this bounding box, with
// minimum and maximum coordinates swapped as needed so that
// Min is truly the minimum.
func (b Box2) Canon() Box2 {
	return Box2{b.Min.Min(b.Max), b.Min.Max(b.Max)}
}

// ContainsPoint returns whether this bounding box contains the specified point.
func (b Box2) ContainsPoint(point Vector2) bool {
	return !(point.X < b.Min.X || point.X > b.Max.X ||
		point.Y < b.Min.Y || point.Y > b.Max.Y)
}

// ContainsBox returns whether this bounding box fully contains the given box.
func (b Box2) ContainsBox(box Box2) bool {
	return b.Min.X <= box.Min.X && box.Max.X <= b.Max.X &&
		b.Min.Y <= box.Min.Y && box.Max.Y <= b.Max.Y
}

// Translate returns this bounding box translated by the given offset.
func (b Box2) Translate(offset Vector2) Box2 {
	return Box2{b.Min.Add(offset), b.Max.Add(offset)}
}

// Adjusted returns this bounding box with the given deltas added to
// the respective coordinates of the min and max points.
func (b Box2) Adjusted(dx0, dy0, dx1, dy1 float32) Box2 {
	return Box2{Vec2(b.Min.X + dx0, b.Min.Y + dy0), Vec2(b.Max.X + dx1, b.Max.Y + dy1)}
}

// MoveCenter returns this bounding box moved so that its center
// is at the given point, keeping the size unchanged.
func (b Box2) MoveCenter(center Vector2) Box2 {
	half := b.Size().MulScalar(0.5)
	return Box2{center.Sub(half), center.Add(half)}
}
