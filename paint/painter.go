// Copyright (c) 2025, The Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image/color"

	"github.com/chartkit/chartkit/math32"
)

// Painter is the primitive drawing surface that all renderers target.
// A backend (raster, GPU, vector export) implements it; the renderers
// only ever emit these calls. Coordinates are device pixels.
type Painter interface {
	// Save pushes the current pen and brush onto the state stack.
	Save()

	// Restore pops the most recently saved pen and brush.
	Restore()

	// SetPen sets the pen used for Line, Polyline, Polygon outlines,
	// and Point.
	SetPen(pen Pen)

	// SetBrush sets the brush used to fill Polygon interiors.
	SetBrush(brush Brush)

	// Line draws a single line segment from p1 to p2.
	Line(p1, p2 math32.Vector2)

	// Polyline draws connected line segments through the given points.
	Polyline(points []math32.Vector2)

	// Polygon draws a closed polygon through the given points,
	// filled with the current brush and outlined with the current pen.
	Polygon(points []math32.Vector2)

	// FillRect fills the given rectangle with the given brush,
	// independent of the current pen and brush.
	FillRect(rect math32.Box2, brush Brush)

	// Point draws a single point with the current pen.
	Point(p math32.Vector2)

	// Text draws the given string anchored at pos, rotated by rot
	// degrees around pos. Layout and font selection are backend
	// concerns.
	Text(pos math32.Vector2, rot float32, s string)

	// Window returns the visible device rectangle of the surface.
	Window() math32.Box2
}

// PenStyle determines how a [Pen] strokes. Dash patterns are a backend
// extension and not part of the core styles.
type PenStyle int32

const (
	// NoPen draws no outlines or lines.
	NoPen PenStyle = iota

	// SolidLine draws solid lines.
	SolidLine
)

var penStyleNames = [...]string{"NoPen", "SolidLine"}

func (ps PenStyle) String() string {
	if int(ps) < len(penStyleNames) {
		return penStyleNames[ps]
	}
	return "PenStyleN"
}

// Pen describes how lines and outlines are stroked.
// The zero value is a pen that draws nothing.
type Pen struct {
	Style PenStyle
	Color color.RGBA

	// Width is the stroke width in device pixels. Zero means a
	// cosmetic one pixel wide line.
	Width float32
}

// SolidPen returns a solid pen of the given color and width.
func SolidPen(clr color.Color, width float32) Pen {
	return Pen{Style: SolidLine, Color: AsRGBA(clr), Width: width}
}

// IsNone returns whether this pen draws nothing.
func (p Pen) IsNone() bool {
	return p.Style == NoPen
}

// BrushStyle determines how a [Brush] fills.
type BrushStyle int32

const (
	// NoBrush fills nothing.
	NoBrush BrushStyle = iota

	// SolidBrush fills with a solid color.
	SolidBrush
)

var brushStyleNames = [...]string{"NoBrush", "SolidBrush"}

func (bs BrushStyle) String() string {
	if int(bs) < len(brushStyleNames) {
		return brushStyleNames[bs]
	}
	return "BrushStyleN"
}

// Brush describes how closed shapes are filled.
// The zero value is a brush that fills nothing.
type Brush struct {
	Style BrushStyle
	Color color.RGBA
}

// SolidBrushOf returns a solid brush of the given color.
func SolidBrushOf(clr color.Color) Brush {
	return Brush{Style: SolidBrush, Color: AsRGBA(clr)}
}

// IsNone returns whether this brush fills nothing.
func (b Brush) IsNone() bool {
	return b.Style == NoBrush
}

// HasColor returns whether this brush carries an explicit, visible color.
func (b Brush) HasColor() bool {
	return b.Color.A != 0
}

// AsRGBA converts any color to a premultiplied [color.RGBA].
func AsRGBA(clr color.Color) color.RGBA {
	if clr == nil {
		return color.RGBA{}
	}
	if c, ok := clr.(color.RGBA); ok {
		return c
	}
	return color.RGBAModel.Convert(clr).(color.RGBA)
}
