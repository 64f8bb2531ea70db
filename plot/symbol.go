// Copyright (c) 2025, The Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"github.com/jinzhu/copier"

	"github.com/chartkit/chartkit/math32"
	"github.com/chartkit/chartkit/paint"
)

// SymbolStyle selects the glyph shape drawn at sample points.
type SymbolStyle int32

const (
	// NoSymbol draws no glyph.
	NoSymbol SymbolStyle = iota

	// Circle is an ellipse inscribed in the symbol rectangle.
	Circle

	// Square fills the symbol rectangle.
	Square

	// Diamond connects the edge midpoints of the symbol rectangle.
	Diamond

	// Triangle points upwards within the symbol rectangle.
	Triangle

	// Plus draws a horizontal and a vertical line through the center.
	Plus

	// Cross draws the two diagonals of the symbol rectangle.
	Cross
)

var symbolStyleNames = [...]string{
	"NoSymbol", "Circle", "Square", "Diamond", "Triangle", "Plus", "Cross",
}

func (ss SymbolStyle) String() string {
	if ss >= 0 && int(ss) < len(symbolStyleNames) {
		return symbolStyleNames[ss]
	}
	return "SymbolStyleN"
}

// circleSegments is the polygon resolution used to approximate the
// Circle style with the primitive polygon op.
const circleSegments = 24

// Symbol is a small glyph drawn at individual sample points,
// inscribed in a rectangle of its Size centered on the point.
type Symbol struct {
	Style SymbolStyle
	Size  math32.Vector2
	Pen   paint.Pen
	Brush paint.Brush
}

// NewSymbol returns a symbol of the given style with a default
// 7x7 size and the zero pen and brush.
func NewSymbol(style SymbolStyle) *Symbol {
	return &Symbol{Style: style, Size: math32.Vec2(7, 7)}
}

// Clone returns a deep copy of the symbol.
func (sy *Symbol) Clone() *Symbol {
	cp := &Symbol{}
	if err := copier.Copy(cp, sy); err != nil {
		Logger().Warn("symbol clone failed", "err", err)
		*cp = *sy
	}
	return cp
}

// Draw draws the symbol glyph inscribed in the given rectangle, using
// the painter's current pen and brush. A NoSymbol style or an empty
// rectangle draws nothing.
func (sy *Symbol) Draw(p paint.Painter, rect math32.Box2) {
	if sy.Style == NoSymbol || rect.IsEmpty() {
		return
	}
	c := rect.Center()
	switch sy.Style {
	case Circle:
		rx := 0.5 * rect.Size().X
		ry := 0.5 * rect.Size().Y
		pts := make([]math32.Vector2, circleSegments)
		for i := range pts {
			a := float32(i) / circleSegments * 2 * math32.Pi
			pts[i] = math32.Vec2(c.X+rx*math32.Cos(a), c.Y+ry*math32.Sin(a))
		}
		p.Polygon(pts)
	case Square:
		p.Polygon([]math32.Vector2{
			rect.Min,
			{X: rect.Max.X, Y: rect.Min.Y},
			rect.Max,
			{X: rect.Min.X, Y: rect.Max.Y},
		})
	case Diamond:
		p.Polygon([]math32.Vector2{
			{X: c.X, Y: rect.Min.Y},
			{X: rect.Max.X, Y: c.Y},
			{X: c.X, Y: rect.Max.Y},
			{X: rect.Min.X, Y: c.Y},
		})
	case Triangle:
		p.Polygon([]math32.Vector2{
			{X: c.X, Y: rect.Min.Y},
			{X: rect.Max.X, Y: rect.Max.Y},
			{X: rect.Min.X, Y: rect.Max.Y},
		})
	case Plus:
		p.Line(math32.Vec2(rect.Min.X, c.Y), math32.Vec2(rect.Max.X, c.Y))
		p.Line(math32.Vec2(c.X, rect.Min.Y), math32.Vec2(c.X, rect.Max.Y))
	case Cross:
		p.Line(rect.Min, rect.Max)
		p.Line(math32.Vec2(rect.Min.X, rect.Max.Y), math32.Vec2(rect.Max.X, rect.Min.Y))
	}
}
