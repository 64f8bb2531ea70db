// Copyright (c) 2025, The Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image/color"
	"strconv"

	"github.com/chartkit/chartkit/math32"
	"github.com/chartkit/chartkit/paint"
)

// Orientation distinguishes horizontal from vertical geometry, for
// scales and for curve baselines.
type Orientation int32

const (
	// Horizontal runs along the x axis.
	Horizontal Orientation = iota

	// Vertical runs along the y axis.
	Vertical
)

var orientationNames = [...]string{"Horizontal", "Vertical"}

func (o Orientation) String() string {
	if o >= 0 && int(o) < len(orientationNames) {
		return orientationNames[o]
	}
	return "OrientationN"
}

// ScaleAlign is the placement of a scale relative to its plot canvas,
// which fixes the orientation and the side that ticks and labels
// extend toward.
type ScaleAlign int32

const (
	// BottomScale is a horizontal scale below the canvas.
	BottomScale ScaleAlign = iota

	// TopScale is a horizontal scale above the canvas.
	TopScale

	// LeftScale is a vertical scale left of the canvas.
	LeftScale

	// RightScale is a vertical scale right of the canvas.
	RightScale
)

var scaleAlignNames = [...]string{"BottomScale", "TopScale", "LeftScale", "RightScale"}

func (sa ScaleAlign) String() string {
	if sa >= 0 && int(sa) < len(scaleAlignNames) {
		return scaleAlignNames[sa]
	}
	return "ScaleAlignN"
}

// HAlign is a horizontal label alignment. The zero value selects the
// default for the scale's placement.
type HAlign int32

const (
	HAlignNone HAlign = iota
	HAlignLeft
	HAlignCenter
	HAlignRight
)

// VAlign is a vertical label alignment. The zero value selects the
// default for the scale's placement.
type VAlign int32

const (
	VAlignNone VAlign = iota
	VAlignTop
	VAlignCenter
	VAlignBottom
)

// ScaleComponents selects which visual elements of a scale are drawn
// and accounted for in geometry queries.
type ScaleComponents struct {
	Backbone bool
	Ticks    bool
	Labels   bool
}

// ScaleDraw computes the geometry of one axis and draws its backbone,
// ticks, and labels. It has a position (the corner of the backbone
// toward the canvas), an alignment fixing orientation and label side,
// and a length. The numeric partitioning comes from a [ScaleDiv]
// supplied by the caller; ScaleDraw consumes it read-only.
//
// DrawBackbone, DrawTick, and DrawLabel are exported so specialized
// scales can reuse the geometry while overriding individual elements.
type ScaleDraw struct {
	alignment ScaleAlign
	pos       math32.Vector2
	length    float32

	components ScaleComponents
	pen        paint.Pen
	spacing    float32
	tickLength [NTickTypes]float32

	labelRotation float32
	labelHAlign   HAlign
	labelVAlign   VAlign

	div      ScaleDiv
	scaleMap ScaleMap

	// Format renders a tick value as its label text. Nil uses
	// shortest-representation formatting.
	Format func(value float32) string
}

// NewScaleDraw returns a bottom-aligned scale draw of length 10 at the
// origin, with all components enabled and default tick lengths.
func NewScaleDraw() *ScaleDraw {
	sd := &ScaleDraw{
		alignment:  BottomScale,
		length:     10,
		components: ScaleComponents{Backbone: true, Ticks: true, Labels: true},
		pen:        paint.SolidPen(color.RGBA{A: 0xff}, 0),
		spacing:    4,
		tickLength: [NTickTypes]float32{4, 6, 8},
	}
	sd.updateMap()
	return sd
}

// SetScaleDiv sets the scale division defining the bounds and ticks.
func (sd *ScaleDraw) SetScaleDiv(div ScaleDiv) {
	sd.div = div
	sd.scaleMap.SetScaleInterval(div.Lower, div.Upper)
}

// ScaleDiv returns the current scale division.
func (sd *ScaleDraw) ScaleDiv() ScaleDiv { return sd.div }

// Map returns the scale map from data values to device coordinates
// along the backbone.
func (sd *ScaleDraw) Map() *ScaleMap { return &sd.scaleMap }

// SetAlignment sets the placement of the scale, which also determines
// its orientation.
func (sd *ScaleDraw) SetAlignment(align ScaleAlign) {
	sd.alignment = align
	sd.updateMap()
}

// Alignment returns the placement of the scale.
func (sd *ScaleDraw) Alignment() ScaleAlign { return sd.alignment }

// Orientation returns the orientation implied by the alignment.
func (sd *ScaleDraw) Orientation() Orientation {
	switch sd.alignment {
	case LeftScale, RightScale:
		return Vertical
	default:
		return Horizontal
	}
}

// Move sets the device position of the scale: the topmost point of a
// vertical backbone, the leftmost point of a horizontal one.
func (sd *ScaleDraw) Move(pos math32.Vector2) {
	sd.pos = pos
	sd.updateMap()
}

// Pos returns the device position of the scale.
func (sd *ScaleDraw) Pos() math32.Vector2 { return sd.pos }

// SetLength sets the backbone length in device units. Negative
// lengths are clamped to zero.
func (sd *ScaleDraw) SetLength(length float32) {
	if length < 0 {
		length = 0
	}
	sd.length = length
	sd.updateMap()
}

// Length returns the backbone length.
func (sd *ScaleDraw) Length() float32 { return sd.length }

// updateMap recomputes the cached paint interval of the scale map
// from the current alignment, position, and length.
func (sd *ScaleDraw) updateMap() {
	if sd.Orientation() == Horizontal {
		sd.scaleMap.SetPaintInterval(sd.pos.X, sd.pos.X+sd.length)
	} else {
		sd.scaleMap.SetPaintInterval(sd.pos.Y+sd.length, sd.pos.Y)
	}
}

// SetComponents selects which elements are drawn and measured.
func (sd *ScaleDraw) SetComponents(c ScaleComponents) { sd.components = c }

// Components returns the enabled elements.
func (sd *ScaleDraw) Components() ScaleComponents { return sd.components }

// SetPen sets the pen used for the backbone and ticks. The pen width
// enters the extent and label position geometry.
func (sd *ScaleDraw) SetPen(pen paint.Pen) { sd.pen = pen }

// Pen returns the backbone and tick pen.
func (sd *ScaleDraw) Pen() paint.Pen { return sd.pen }

// SetSpacing sets the distance between the ticks and the labels.
// Negative values are clamped to zero.
func (sd *ScaleDraw) SetSpacing(spacing float32) {
	if spacing < 0 {
		spacing = 0
	}
	sd.spacing = spacing
}

// Spacing returns the distance between the ticks and the labels.
func (sd *ScaleDraw) Spacing() float32 { return sd.spacing }

// SetTickLength sets the length of the given tick class.
func (sd *ScaleDraw) SetTickLength(tt TickType, length float32) {
	if tt < 0 || tt >= NTickTypes {
		return
	}
	sd.tickLength[tt] = math32.Clamp(length, 0, 1000)
}

// TickLength returns the length of the given tick class.
func (sd *ScaleDraw) TickLength(tt TickType) float32 {
	if tt < 0 || tt >= NTickTypes {
		return 0
	}
	return sd.tickLength[tt]
}

// MaxTickLength returns the length of the longest tick class.
func (sd *ScaleDraw) MaxTickLength() float32 {
	length := float32(0)
	for _, l := range sd.tickLength {
		length = math32.Max(length, l)
	}
	return length
}

// SetLabelRotation sets the label rotation in degrees.
func (sd *ScaleDraw) SetLabelRotation(rotation float32) { sd.labelRotation = rotation }

// LabelRotation returns the label rotation in degrees.
func (sd *ScaleDraw) LabelRotation() float32 { return sd.labelRotation }

// SetLabelAlignment sets how labels are aligned relative to their
// anchor position. The zero values select defaults appropriate for
// the scale's placement.
func (sd *ScaleDraw) SetLabelAlignment(h HAlign, v VAlign) {
	sd.labelHAlign = h
	sd.labelVAlign = v
}

// LabelAlignment returns the label alignment.
func (sd *ScaleDraw) LabelAlignment() (HAlign, VAlign) {
	return sd.labelHAlign, sd.labelVAlign
}

// Label returns the label text for the given tick value.
func (sd *ScaleDraw) Label(value float32) string {
	if sd.Format != nil {
		return sd.Format(value)
	}
	return strconv.FormatFloat(float64(value), 'g', -1, 32)
}

// LabelPosition returns the device anchor point of the label for the
// given value: the point the label is aligned and rotated around.
func (sd *ScaleDraw) LabelPosition(value float32) math32.Vector2 {
	tickPos := sd.scaleMap.Transform(value)
	dist := sd.spacing
	if sd.components.Backbone {
		dist += math32.Max(1, sd.pen.Width)
	}
	if sd.components.Ticks {
		dist += sd.tickLength[MajorTick]
	}
	switch sd.alignment {
	case RightScale:
		return math32.Vec2(sd.pos.X+dist, tickPos)
	case LeftScale:
		return math32.Vec2(sd.pos.X-dist, tickPos)
	case TopScale:
		return math32.Vec2(tickPos, sd.pos.Y-dist)
	default: // BottomScale
		return math32.Vec2(tickPos, sd.pos.Y+dist)
	}
}

// labelMatrix returns the transform placing a label of the given size
// at the given anchor position, applying rotation and alignment.
func (sd *ScaleDraw) labelMatrix(pos math32.Vector2, size math32.Vector2) math32.Matrix2 {
	m := math32.Translate2D(pos.X, pos.Y).Rotate(math32.DegToRad(sd.labelRotation))

	h, v := sd.labelHAlign, sd.labelVAlign
	if h == HAlignNone && v == VAlignNone {
		switch sd.alignment {
		case RightScale:
			h, v = HAlignRight, VAlignCenter
		case LeftScale:
			h, v = HAlignLeft, VAlignCenter
		case TopScale:
			h, v = HAlignCenter, VAlignTop
		default:
			h, v = HAlignCenter, VAlignBottom
		}
	}

	var x, y float32
	switch h {
	case HAlignLeft:
		x = -size.X
	case HAlignRight:
		x = 0
	default:
		x = -0.5 * size.X
	}
	switch v {
	case VAlignTop:
		y = -size.Y
	case VAlignBottom:
		y = 0
	default:
		y = -0.5 * size.Y
	}
	return m.Translate(x, y)
}

// LabelSize returns the unrotated text size of the label for the
// given value.
func (sd *ScaleDraw) LabelSize(fm paint.FontMetrics, value float32) math32.Vector2 {
	lbl := sd.Label(value)
	if lbl == "" {
		return math32.Vector2{}
	}
	return math32.Vec2(fm.Width(lbl), fm.Height())
}

// LabelRect returns the bounding rectangle of the rotated, aligned
// label for the given value, relative to the label's anchor position.
func (sd *ScaleDraw) LabelRect(fm paint.FontMetrics, value float32) math32.Box2 {
	size := sd.LabelSize(fm, value)
	if size.X == 0 && size.Y == 0 {
		return math32.Box2{}
	}
	pos := sd.LabelPosition(value)
	br := sd.labelMatrix(pos, size).MulBox2(math32.Box2{Max: size})
	return br.Translate(pos.Negate())
}

// BoundingLabelRect returns the bounding rectangle of the rotated,
// aligned label for the given value, in device coordinates.
func (sd *ScaleDraw) BoundingLabelRect(fm paint.FontMetrics, value float32) math32.Box2 {
	size := sd.LabelSize(fm, value)
	if size.X == 0 && size.Y == 0 {
		return math32.Box2{}
	}
	pos := sd.LabelPosition(value)
	return sd.labelMatrix(pos, size).MulBox2(math32.Box2{Max: size})
}

// MaxLabelWidth returns the width of the widest major tick label.
func (sd *ScaleDraw) MaxLabelWidth(fm paint.FontMetrics) float32 {
	w := float32(0)
	for _, v := range sd.div.Ticks(MajorTick) {
		if sd.div.Contains(v) {
			w = math32.Max(w, sd.LabelSize(fm, v).X)
		}
	}
	return math32.Ceil(w)
}

// MaxLabelHeight returns the height of the tallest major tick label.
func (sd *ScaleDraw) MaxLabelHeight(fm paint.FontMetrics) float32 {
	h := float32(0)
	for _, v := range sd.div.Ticks(MajorTick) {
		if sd.div.Contains(v) {
			h = math32.Max(h, sd.LabelSize(fm, v).Y)
		}
	}
	return math32.Ceil(h)
}

// Extent returns the distance perpendicular to the backbone needed to
// draw all enabled components: labels, ticks, and the backbone pen.
func (sd *ScaleDraw) Extent(fm paint.FontMetrics) float32 {
	d := float32(0)
	if sd.components.Labels {
		if sd.Orientation() == Vertical {
			d = sd.MaxLabelWidth(fm)
		} else {
			d = sd.MaxLabelHeight(fm)
		}
		if d > 0 {
			d += sd.spacing
		}
	}
	if sd.components.Ticks {
		d += sd.MaxTickLength()
	}
	if sd.components.Backbone {
		d += math32.Max(1, sd.pen.Width)
	}
	return d
}

// MinLength returns the minimum backbone length needed to fit all
// tick marks and labels of the current scale division.
func (sd *ScaleDraw) MinLength(fm paint.FontMetrics) float32 {
	startDist, endDist := sd.BorderDistHint(fm)

	majorCount := len(sd.div.Ticks(MajorTick))
	minorCount := len(sd.div.Ticks(MinorTick)) + len(sd.div.Ticks(MediumTick))

	lengthForLabels := float32(0)
	if sd.components.Labels {
		lengthForLabels = sd.MinLabelDist(fm) * float32(majorCount)
	}

	lengthForTicks := float32(0)
	if sd.components.Ticks {
		pw := math32.Max(1, sd.pen.Width)
		lengthForTicks = math32.Ceil(float32(majorCount+minorCount) * (pw + 1))
	}

	return startDist + endDist + math32.Max(lengthForLabels, lengthForTicks)
}

// BorderDistHint returns the distances needed beyond the start and
// end of the backbone so that the outermost labels do not clip past
// the scale's ends.
func (sd *ScaleDraw) BorderDistHint(fm paint.FontMetrics) (start, end float32) {
	if !sd.components.Labels {
		return 0, 0
	}
	ticks := sd.div.Ticks(MajorTick)
	if len(ticks) == 0 {
		return 0, 0
	}

	// find the ticks mapped to the outermost device positions
	minTick, maxTick := ticks[0], ticks[0]
	minPos := sd.scaleMap.Transform(ticks[0])
	maxPos := minPos
	for _, t := range ticks[1:] {
		tickPos := sd.scaleMap.Transform(t)
		if tickPos < minPos {
			minTick, minPos = t, tickPos
		}
		if tickPos > maxPos {
			maxTick, maxPos = t, tickPos
		}
	}

	var s, e float32
	if sd.Orientation() == Vertical {
		s = -sd.LabelRect(fm, minTick).Min.Y
		s -= math32.Abs(minPos - sd.scaleMap.P2())

		e = sd.LabelRect(fm, maxTick).Max.Y
		e -= math32.Abs(maxPos - sd.scaleMap.P1())
	} else {
		s = -sd.LabelRect(fm, minTick).Min.X
		s -= math32.Abs(minPos - sd.scaleMap.P1())

		e = sd.LabelRect(fm, maxTick).Max.X
		e -= math32.Abs(maxPos - sd.scaleMap.P2())
	}

	return math32.Ceil(math32.Max(s, 0)), math32.Ceil(math32.Max(e, 0))
}

// MinLabelDist returns the minimum center-to-center distance between
// adjacent major tick labels needed to keep them from overlapping,
// as a function of the font metrics and the label rotation.
func (sd *ScaleDraw) MinLabelDist(fm paint.FontMetrics) float32 {
	if !sd.components.Labels {
		return 0
	}
	ticks := sd.div.Ticks(MajorTick)
	if len(ticks) == 0 {
		return 0
	}

	vertical := sd.Orientation() == Vertical

	// project label rects onto the backbone axis
	project := func(b math32.Box2) math32.Box2 {
		if vertical {
			return math32.B2(-b.Max.Y, 0, -b.Min.Y, b.Size().X).Canon()
		}
		return b
	}

	rect2 := project(sd.LabelRect(fm, ticks[0]))
	maxDist := float32(0)
	for _, t := range ticks[1:] {
		rect1 := rect2
		rect2 = project(sd.LabelRect(fm, t))

		dist := fm.Leading() // space between the labels
		if rect1.Max.X > 0 {
			dist += rect1.Max.X
		}
		if rect2.Min.X < 0 {
			dist += -rect2.Min.X
		}
		maxDist = math32.Max(maxDist, dist)
	}

	angle := math32.DegToRad(sd.labelRotation)
	if vertical {
		angle += math32.Pi / 2
	}
	sinA := math32.Sin(angle)
	if math32.Abs(sinA) < 1.0e-6 {
		return math32.Ceil(maxDist)
	}

	fmHeight := fm.Ascent() - 2

	// the distance we need until there is the height of the label
	// font, which is needed for the neighboring label
	labelDist := math32.Abs(fmHeight / sinA * math32.Cos(angle))

	// for text orientations close to the scale orientation
	if labelDist > maxDist {
		labelDist = maxDist
	}
	// for text orientations close to the opposite of the scale
	// orientation
	if labelDist < fmHeight {
		labelDist = fmHeight
	}
	return math32.Ceil(labelDist)
}

// Draw draws the scale: labels, then ticks, then the backbone, for
// whichever components are enabled. A nil painter is a no-op.
func (sd *ScaleDraw) Draw(p paint.Painter, fm paint.FontMetrics) {
	if p == nil {
		return
	}
	p.Save()
	p.SetPen(sd.pen)

	if sd.components.Labels && fm != nil {
		for _, v := range sd.div.Ticks(MajorTick) {
			if sd.div.Contains(v) {
				sd.DrawLabel(p, fm, v)
			}
		}
	}

	if sd.components.Ticks {
		for tt := MinorTick; tt < NTickTypes; tt++ {
			for _, v := range sd.div.Ticks(tt) {
				if sd.div.Contains(v) {
					sd.DrawTick(p, v, sd.tickLength[tt])
				}
			}
		}
	}

	if sd.components.Backbone {
		sd.DrawBackbone(p)
	}

	p.Restore()
}

// DrawTick draws one tick of the given length at the given value,
// extending from the backbone toward the labels.
func (sd *ScaleDraw) DrawTick(p paint.Painter, value, length float32) {
	if length <= 0 {
		return
	}
	tickPos := sd.scaleMap.Transform(value)
	switch sd.alignment {
	case LeftScale:
		p.Line(math32.Vec2(sd.pos.X, tickPos), math32.Vec2(sd.pos.X-length, tickPos))
	case RightScale:
		p.Line(math32.Vec2(sd.pos.X, tickPos), math32.Vec2(sd.pos.X+length, tickPos))
	case TopScale:
		p.Line(math32.Vec2(tickPos, sd.pos.Y), math32.Vec2(tickPos, sd.pos.Y-length))
	default: // BottomScale
		p.Line(math32.Vec2(tickPos, sd.pos.Y), math32.Vec2(tickPos, sd.pos.Y+length))
	}
}

// DrawBackbone draws the backbone line, offset by half the pen width
// away from the canvas so the line's edge sits on the scale position.
func (sd *ScaleDraw) DrawBackbone(p paint.Painter) {
	off := 0.5 * math32.Max(1, sd.pen.Width)
	switch sd.alignment {
	case LeftScale:
		x := sd.pos.X - off
		p.Line(math32.Vec2(x, sd.pos.Y), math32.Vec2(x, sd.pos.Y+sd.length))
	case RightScale:
		x := sd.pos.X + off
		p.Line(math32.Vec2(x, sd.pos.Y), math32.Vec2(x, sd.pos.Y+sd.length))
	case TopScale:
		y := sd.pos.Y - off
		p.Line(math32.Vec2(sd.pos.X, y), math32.Vec2(sd.pos.X+sd.length, y))
	default: // BottomScale
		y := sd.pos.Y + off
		p.Line(math32.Vec2(sd.pos.X, y), math32.Vec2(sd.pos.X+sd.length, y))
	}
}

// DrawLabel draws the label of the given value, aligned and rotated
// around its anchor position.
func (sd *ScaleDraw) DrawLabel(p paint.Painter, fm paint.FontMetrics, value float32) {
	lbl := sd.Label(value)
	if lbl == "" {
		return
	}
	pos := sd.LabelPosition(value)
	size := sd.LabelSize(fm, value)
	origin := sd.labelMatrix(pos, size).MulVector2AsPoint(math32.Vector2{})
	p.Text(origin, sd.labelRotation, lbl)
}
