// Copyright (c) 2025, The Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"image/color"
	"slices"

	"github.com/chartkit/chartkit/math32"
	"github.com/chartkit/chartkit/paint"
	"github.com/chartkit/chartkit/plot"
)

// CurveStyle selects how the samples of a [Curve] are connected.
type CurveStyle int32

const (
	// NoCurve draws no connecting geometry, only symbols.
	NoCurve CurveStyle = iota

	// Lines connects consecutive samples with straight lines.
	Lines

	// Sticks draws a vertical or horizontal stick from the baseline
	// to each sample.
	Sticks

	// Steps connects consecutive samples with a horizontal and a
	// vertical segment.
	Steps

	// Dots draws a single point per sample.
	Dots
)

var curveStyleNames = [...]string{"NoCurve", "Lines", "Sticks", "Steps", "Dots"}

func (cs CurveStyle) String() string {
	if cs >= 0 && int(cs) < len(curveStyleNames) {
		return curveStyleNames[cs]
	}
	return "CurveStyleN"
}

// CurveAttribute is a bitmask of optional curve behaviors.
type CurveAttribute int32

const (
	// CurveFitted runs the device-space polyline through the curve
	// fitter before drawing, for the Lines style.
	CurveFitted CurveAttribute = 1 << iota

	// CurveInverted flips the step direction of the Steps style, so
	// the horizontal segment comes before the vertical one.
	CurveInverted
)

// PaintAttribute is a bitmask of painting optimizations.
type PaintAttribute int32

const (
	// ClipPolygons clips polylines and fill polygons against the
	// canvas rectangle before drawing them. On by default.
	ClipPolygons PaintAttribute = 1 << iota
)

// LegendAttribute is a bitmask controlling what the legend glyph of a
// curve shows. The zero value selects a heuristic representation.
type LegendAttribute int32

const (
	// LegendShowLine shows a line of the curve's pen.
	LegendShowLine LegendAttribute = 1 << iota

	// LegendShowSymbol shows the curve's symbol.
	LegendShowSymbol

	// LegendShowBrush fills the glyph with the curve's brush.
	LegendShowBrush
)

// Curve draws a series of samples as a polyline, sticks, steps, or
// dots, optionally filled toward a baseline and decorated with a
// symbol per sample. It owns a copy of its data.
//
// The zero orientation is [plot.Vertical]: y values are plotted
// against the baseline, which is a horizontal line. A Horizontal
// orientation transposes this for curves running along the y axis.
type Curve struct {
	Title string

	data     plot.XYs
	style    CurveStyle
	pen      paint.Pen
	brush    paint.Brush
	baseline float32
	orient   plot.Orientation

	symbol *plot.Symbol
	fitter plot.CurveFitter

	attributes CurveAttribute
	paintAttrs PaintAttribute
	legend     LegendAttribute

	// OnChange, if set, is called after every mutation that affects
	// the rendered appearance.
	OnChange func()
}

// NewCurve returns an empty Lines curve with the given title, a
// black pen, and no brush.
func NewCurve(title string) *Curve {
	return &Curve{
		Title:      title,
		style:      Lines,
		pen:        paint.SolidPen(color.RGBA{A: 0xff}, 0),
		orient:     plot.Vertical,
		fitter:     plot.NewSplineFitter(),
		paintAttrs: ClipPolygons,
	}
}

func (c *Curve) changed() {
	if c.OnChange != nil {
		c.OnChange()
	}
}

// SetSamples copies the given series into the curve. The curve keeps
// no reference to the series. Invalid data leaves the curve empty and
// returns the error.
func (c *Curve) SetSamples(data plot.Series) error {
	xys, err := plot.CopyXYs(data)
	if err != nil {
		c.data = nil
		c.changed()
		return err
	}
	c.data = xys
	c.changed()
	return nil
}

// SetPairs copies the given coordinate slices into the curve, with
// the same semantics as [Curve.SetSamples].
func (c *Curve) SetPairs(xs, ys []float32) error {
	return c.SetSamples(plot.XYPairs{Xs: xs, Ys: ys})
}

// Len returns the number of samples.
func (c *Curve) Len() int { return len(c.data) }

// Sample returns the sample at index i.
func (c *Curve) Sample(i int) math32.Vector2 { return c.data[i] }

// SetStyle sets how the samples are connected.
func (c *Curve) SetStyle(style CurveStyle) {
	c.style = style
	c.changed()
}

// Style returns how the samples are connected.
func (c *Curve) Style() CurveStyle { return c.style }

// SetPen sets the pen used for the curve geometry.
func (c *Curve) SetPen(pen paint.Pen) {
	c.pen = pen
	c.changed()
}

// Pen returns the curve pen.
func (c *Curve) Pen() paint.Pen { return c.pen }

// SetBrush sets the brush filling the area between the curve and the
// baseline. A NoBrush brush disables filling.
func (c *Curve) SetBrush(brush paint.Brush) {
	c.brush = brush
	c.changed()
}

// Brush returns the fill brush.
func (c *Curve) Brush() paint.Brush { return c.brush }

// SetBaseline sets the reference value the Sticks style and the fill
// extend toward.
func (c *Curve) SetBaseline(baseline float32) {
	c.baseline = baseline
	c.changed()
}

// Baseline returns the reference value.
func (c *Curve) Baseline() float32 { return c.baseline }

// SetOrientation sets which axis carries the sample values.
func (c *Curve) SetOrientation(o plot.Orientation) {
	c.orient = o
	c.changed()
}

// Orientation returns which axis carries the sample values.
func (c *Curve) Orientation() plot.Orientation { return c.orient }

// SetSymbol sets the symbol drawn at each sample, replacing any
// previous one. The curve keeps a private copy, so later changes to
// the argument do not affect it; nil disables symbols.
func (c *Curve) SetSymbol(sy *plot.Symbol) {
	c.symbol = nil
	if sy != nil {
		c.symbol = sy.Clone()
	}
	c.changed()
}

// Symbol returns the sample symbol, which may be nil.
func (c *Curve) Symbol() *plot.Symbol { return c.symbol }

// SetFitter sets the curve fitter used when [CurveFitted] is set,
// replacing any previous one.
func (c *Curve) SetFitter(f plot.CurveFitter) {
	c.fitter = f
	c.changed()
}

// Fitter returns the curve fitter.
func (c *Curve) Fitter() plot.CurveFitter { return c.fitter }

// SetAttribute turns the given attribute on or off.
func (c *Curve) SetAttribute(attr CurveAttribute, on bool) {
	if on {
		c.attributes |= attr
	} else {
		c.attributes &^= attr
	}
	c.changed()
}

// HasAttribute returns whether the given attribute is set.
func (c *Curve) HasAttribute(attr CurveAttribute) bool {
	return c.attributes&attr != 0
}

// SetPaintAttribute turns the given paint attribute on or off.
func (c *Curve) SetPaintAttribute(attr PaintAttribute, on bool) {
	if on {
		c.paintAttrs |= attr
	} else {
		c.paintAttrs &^= attr
	}
	c.changed()
}

// HasPaintAttribute returns whether the given paint attribute is set.
func (c *Curve) HasPaintAttribute(attr PaintAttribute) bool {
	return c.paintAttrs&attr != 0
}

// SetLegendAttribute turns the given legend attribute on or off.
func (c *Curve) SetLegendAttribute(attr LegendAttribute, on bool) {
	if on {
		c.legend |= attr
	} else {
		c.legend &^= attr
	}
	c.changed()
}

// HasLegendAttribute returns whether the given legend attribute is set.
func (c *Curve) HasLegendAttribute(attr LegendAttribute) bool {
	return c.legend&attr != 0
}

// verifyRange clamps from and to into [0, size-1] and orders them.
// An empty series yields from > to.
func verifyRange(size, from, to int) (int, int) {
	if size < 1 {
		return 0, -1
	}
	from = math32.ClampInt(from, 0, size-1)
	to = math32.ClampInt(to, 0, size-1)
	if from > to {
		from, to = to, from
	}
	return from, to
}

// Draw draws the samples in the index range [from, to] using the given
// maps, clipped to the canvas rectangle. A negative to means the last
// sample. The range is clamped into the data and reordered if needed.
func (c *Curve) Draw(p paint.Painter, xMap, yMap *plot.ScaleMap, canvasRect math32.Box2, from, to int) {
	if p == nil || c.Len() == 0 {
		return
	}
	if to < 0 {
		to = c.Len() - 1
	}
	from, to = verifyRange(c.Len(), from, to)
	if from > to {
		return
	}

	p.Save()
	p.SetPen(c.pen)

	if c.style != NoCurve {
		c.drawCurve(p, xMap, yMap, canvasRect, from, to)
	}
	if c.symbol != nil && c.symbol.Style != plot.NoSymbol {
		c.drawSymbols(p, xMap, yMap, from, to)
	}

	p.Restore()
}

func (c *Curve) drawCurve(p paint.Painter, xMap, yMap *plot.ScaleMap, canvasRect math32.Box2, from, to int) {
	switch c.style {
	case Lines:
		c.drawLines(p, xMap, yMap, canvasRect, from, to)
	case Sticks:
		c.drawSticks(p, xMap, yMap, from, to)
	case Steps:
		c.drawSteps(p, xMap, yMap, canvasRect, from, to)
	case Dots:
		c.drawDots(p, xMap, yMap, canvasRect, from, to)
	}
}

// mapped returns the device-space polyline of the index range.
func (c *Curve) mapped(xMap, yMap *plot.ScaleMap, from, to int) []math32.Vector2 {
	points := make([]math32.Vector2, 0, to-from+1)
	for i := from; i <= to; i++ {
		s := c.data[i]
		points = append(points, math32.Vec2(xMap.Transform(s.X), yMap.Transform(s.Y)))
	}
	return points
}

// clipped clips the device points against the canvas rectangle when
// the ClipPolygons attribute is on.
func (c *Curve) clipped(points []math32.Vector2, canvasRect math32.Box2) []math32.Vector2 {
	if !c.HasPaintAttribute(ClipPolygons) || canvasRect.IsEmpty() {
		return points
	}
	return plot.ClipPolygon(points, canvasRect)
}

func (c *Curve) drawLines(p paint.Painter, xMap, yMap *plot.ScaleMap, canvasRect math32.Box2, from, to int) {
	// fitting is a property of the whole series, not of the drawn
	// window into it
	if c.HasAttribute(CurveFitted) && c.fitter != nil {
		from, to = 0, c.Len()-1
	}

	points := c.mapped(xMap, yMap, from, to)
	if c.HasAttribute(CurveFitted) && c.fitter != nil {
		points = c.fitter.Fit(points)
	}

	points = c.clipped(points, canvasRect)
	if len(points) == 0 {
		return
	}
	p.Polyline(points)

	if !c.brush.IsNone() {
		c.fillCurve(p, xMap, yMap, slices.Clone(points))
	}
}

func (c *Curve) drawSticks(p paint.Painter, xMap, yMap *plot.ScaleMap, from, to int) {
	x0 := xMap.Transform(c.baseline)
	y0 := yMap.Transform(c.baseline)
	for i := from; i <= to; i++ {
		s := c.data[i]
		xi := xMap.Transform(s.X)
		yi := yMap.Transform(s.Y)
		if c.orient == plot.Horizontal {
			p.Line(math32.Vec2(x0, yi), math32.Vec2(xi, yi))
		} else {
			p.Line(math32.Vec2(xi, y0), math32.Vec2(xi, yi))
		}
	}
}

func (c *Curve) drawSteps(p paint.Painter, xMap, yMap *plot.ScaleMap, canvasRect math32.Box2, from, to int) {
	verticalFirst := c.orient == plot.Vertical
	if c.HasAttribute(CurveInverted) {
		verticalFirst = !verticalFirst
	}

	points := make([]math32.Vector2, 0, 2*(to-from)+1)
	for i := from; i <= to; i++ {
		s := c.data[i]
		xi := xMap.Transform(s.X)
		yi := yMap.Transform(s.Y)
		if i != from {
			prev := points[len(points)-1]
			if verticalFirst {
				points = append(points, math32.Vec2(prev.X, yi))
			} else {
				points = append(points, math32.Vec2(xi, prev.Y))
			}
		}
		points = append(points, math32.Vec2(xi, yi))
	}

	points = c.clipped(points, canvasRect)
	if len(points) == 0 {
		return
	}
	p.Polyline(points)

	if !c.brush.IsNone() {
		c.fillCurve(p, xMap, yMap, slices.Clone(points))
	}
}

func (c *Curve) drawDots(p paint.Painter, xMap, yMap *plot.ScaleMap, canvasRect math32.Box2, from, to int) {
	doFill := !c.brush.IsNone()

	var fillPoints []math32.Vector2
	for i := from; i <= to; i++ {
		s := c.data[i]
		pt := math32.Vec2(xMap.Transform(s.X), yMap.Transform(s.Y))
		if doFill {
			fillPoints = append(fillPoints, pt)
		}
		p.Point(pt)
	}

	if doFill {
		fillPoints = c.clipped(fillPoints, canvasRect)
		c.fillCurve(p, xMap, yMap, fillPoints)
	}
}

// closePolyline extends a polyline into a closed polygon by appending
// the projections of its last and first points onto the baseline.
// Fewer than two points are returned unchanged.
func (c *Curve) closePolyline(xMap, yMap *plot.ScaleMap, points []math32.Vector2) []math32.Vector2 {
	if len(points) < 2 {
		return points
	}
	first := points[0]
	last := points[len(points)-1]
	if c.orient == plot.Horizontal {
		refX := xMap.Transform(c.baseline)
		return append(points, math32.Vec2(refX, last.Y), math32.Vec2(refX, first.Y))
	}
	refY := yMap.Transform(c.baseline)
	return append(points, math32.Vec2(last.X, refY), math32.Vec2(first.X, refY))
}

// fillCurve fills the area between the given device-space polyline
// and the baseline. The polyline is consumed; clipping has already
// happened by the time it arrives here. A fill brush without an
// explicit color falls back to the pen color.
func (c *Curve) fillCurve(p paint.Painter, xMap, yMap *plot.ScaleMap, points []math32.Vector2) {
	points = c.closePolyline(xMap, yMap, points)
	if len(points) <= 2 {
		return
	}

	brush := c.brush
	if !brush.HasColor() {
		brush = paint.SolidBrushOf(c.pen.Color)
	}

	p.Save()
	p.SetPen(paint.Pen{})
	p.SetBrush(brush)
	p.Polygon(points)
	p.Restore()
}

func (c *Curve) drawSymbols(p paint.Painter, xMap, yMap *plot.ScaleMap, from, to int) {
	p.SetPen(c.symbol.Pen)
	p.SetBrush(c.symbol.Brush)
	half := c.symbol.Size.MulScalar(0.5)
	for i := from; i <= to; i++ {
		s := c.data[i]
		pt := math32.Vec2(xMap.Transform(s.X), yMap.Transform(s.Y))
		c.symbol.Draw(p, math32.Box2{Min: pt.Sub(half), Max: pt.Add(half)})
	}
}

// ClosestPoint returns the index of the sample closest to the given
// device position, and writes its distance to dist when non-nil. It
// returns -1 for an empty curve or missing maps, leaving dist
// untouched.
func (c *Curve) ClosestPoint(xMap, yMap *plot.ScaleMap, pos math32.Vector2, dist *float32) int {
	if c.Len() == 0 || xMap == nil || yMap == nil {
		return -1
	}
	index := -1
	dmin := math32.Infinity
	for i, s := range c.data {
		pt := math32.Vec2(xMap.Transform(s.X), yMap.Transform(s.Y))
		if d := pt.DistanceToSquared(pos); d < dmin {
			dmin = d
			index = i
		}
	}
	if dist != nil {
		*dist = math32.Sqrt(dmin)
	}
	return index
}

// DrawLegendGlyph draws the legend representation of the curve into
// the given rectangle. Without explicit legend attributes it draws a
// filled square whose color is taken from the brush, the pen, or the
// symbol pen, in that order of preference.
func (c *Curve) DrawLegendGlyph(p paint.Painter, rect math32.Box2) {
	if p == nil || rect.IsEmpty() {
		return
	}

	if c.legend == 0 {
		brush := c.brush
		if brush.IsNone() {
			if c.style != NoCurve {
				brush = paint.SolidBrushOf(c.pen.Color)
			} else if c.symbol != nil && c.symbol.Style != plot.NoSymbol {
				brush = paint.SolidBrushOf(c.symbol.Pen.Color)
			}
		}
		if !brush.IsNone() {
			dim := math32.Min(rect.Size().X, rect.Size().Y)
			sq := math32.Box2{Max: math32.Vec2(dim, dim)}.MoveCenter(rect.Center())
			p.FillRect(sq, brush)
		}
		return
	}

	if c.HasLegendAttribute(LegendShowBrush) && !c.brush.IsNone() {
		p.FillRect(rect, c.brush)
	}
	if c.HasLegendAttribute(LegendShowLine) && c.style != NoCurve {
		p.Save()
		p.SetPen(c.pen)
		cy := rect.Center().Y
		p.Line(math32.Vec2(rect.Min.X, cy), math32.Vec2(rect.Max.X, cy))
		p.Restore()
	}
	if c.HasLegendAttribute(LegendShowSymbol) && c.symbol != nil && c.symbol.Style != plot.NoSymbol {
		size := c.symbol.Size
		// scale down to fit, preserving the aspect ratio
		if size.X > rect.Size().X || size.Y > rect.Size().Y {
			ratio := math32.Min(rect.Size().X/size.X, rect.Size().Y/size.Y)
			size = size.MulScalar(ratio)
		}
		p.Save()
		p.SetPen(c.symbol.Pen)
		p.SetBrush(c.symbol.Brush)
		c.symbol.Draw(p, math32.Box2{Max: size}.MoveCenter(rect.Center()))
		p.Restore()
	}
}
