// Copyright (c) 2025, The Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"github.com/chartkit/chartkit/math32"
	"github.com/chartkit/chartkit/paint"
	"github.com/chartkit/chartkit/plot"
)

// ColumnRect is the geometry of one column as a pair of intervals in
// device coordinates. A border marked as excluded is shared with the
// neighboring column and gets a one unit inset so it is only drawn
// once.
type ColumnRect struct {
	H plot.Interval
	V plot.Interval
}

// Orientation returns Vertical for columns standing on the x axis.
func (cr *ColumnRect) Orientation() plot.Orientation {
	if cr.H.Width() >= cr.V.Width() {
		return plot.Horizontal
	}
	return plot.Vertical
}

// ToRect returns the device rectangle of the column, normalized and
// inset by one unit on each excluded border.
func (cr *ColumnRect) ToRect() math32.Box2 {
	r := math32.B2(cr.H.Min, cr.V.Min, cr.H.Max, cr.V.Max).Canon()
	if cr.H.ExcludeMin {
		r.Min.X++
	}
	if cr.H.ExcludeMax {
		r.Max.X--
	}
	if cr.V.ExcludeMin {
		r.Min.Y++
	}
	if cr.V.ExcludeMax {
		r.Max.Y--
	}
	return r
}

// ColumnStyle selects the shape a [ColumnSymbol] draws.
type ColumnStyle int32

const (
	// NoColumn draws nothing.
	NoColumn ColumnStyle = iota

	// Box draws a filled rectangle with an optional frame.
	Box
)

var columnStyleNames = [...]string{"NoColumn", "Box"}

func (cs ColumnStyle) String() string {
	if cs >= 0 && int(cs) < len(columnStyleNames) {
		return columnStyleNames[cs]
	}
	return "ColumnStyleN"
}

// FrameStyle selects the frame of a Box column.
type FrameStyle int32

const (
	// NoFrame fills the column without a frame.
	NoFrame FrameStyle = iota

	// Plain surrounds the column with a flat dark frame.
	Plain

	// Raised gives the column a beveled three dimensional frame.
	Raised
)

var frameStyleNames = [...]string{"NoFrame", "Plain", "Raised"}

func (fs FrameStyle) String() string {
	if fs >= 0 && int(fs) < len(frameStyleNames) {
		return frameStyleNames[fs]
	}
	return "FrameStyleN"
}

// ColumnSymbol draws one column of a bar chart into a [ColumnRect].
type ColumnSymbol struct {
	style      ColumnStyle
	frameStyle FrameStyle
	palette    paint.Palette
	lineWidth  float32
	label      string
}

// NewColumnSymbol returns a column symbol of the given style with a
// raised frame of width 2 and the default palette.
func NewColumnSymbol(style ColumnStyle) *ColumnSymbol {
	return &ColumnSymbol{
		style:      style,
		frameStyle: Raised,
		palette:    paint.DefaultPalette(),
		lineWidth:  2,
	}
}

// SetStyle sets the column shape.
func (cs *ColumnSymbol) SetStyle(style ColumnStyle) { cs.style = style }

// Style returns the column shape.
func (cs *ColumnSymbol) Style() ColumnStyle { return cs.style }

// SetFrameStyle sets the frame of a Box column.
func (cs *ColumnSymbol) SetFrameStyle(fs FrameStyle) { cs.frameStyle = fs }

// FrameStyle returns the frame of a Box column.
func (cs *ColumnSymbol) FrameStyle() FrameStyle { return cs.frameStyle }

// SetPalette sets the colors used for the fill and the frame bevels.
func (cs *ColumnSymbol) SetPalette(p paint.Palette) { cs.palette = p }

// Palette returns the column colors.
func (cs *ColumnSymbol) Palette() paint.Palette { return cs.palette }

// SetLineWidth sets the frame width. Negative widths are clamped to
// zero.
func (cs *ColumnSymbol) SetLineWidth(w float32) {
	cs.lineWidth = math32.Max(w, 0)
}

// LineWidth returns the frame width.
func (cs *ColumnSymbol) LineWidth() float32 { return cs.lineWidth }

// SetLabel sets the text associated with the column.
func (cs *ColumnSymbol) SetLabel(label string) { cs.label = label }

// Label returns the text associated with the column.
func (cs *ColumnSymbol) Label() string { return cs.label }

// Equal returns whether two column symbols render identically.
func (cs *ColumnSymbol) Equal(other *ColumnSymbol) bool {
	if other == nil {
		return false
	}
	return *cs == *other
}

// Draw draws the column into the given geometry.
func (cs *ColumnSymbol) Draw(p paint.Painter, cr ColumnRect) {
	if p == nil || cs.style != Box {
		return
	}
	cs.drawBox(p, cr.ToRect())
}

func (cs *ColumnSymbol) drawBox(p paint.Painter, r math32.Box2) {
	window := paint.SolidBrushOf(cs.palette.Window)

	if cs.frameStyle == NoFrame {
		p.FillRect(r.Adjusted(0, 0, -1, -1), window)
		return
	}

	lw := cs.lineWidth
	if lw > 0 {
		// framed degenerate columns collapse to a single line
		size := r.Size()
		if size.X == 0 || size.Y == 0 {
			tone := cs.palette.Dark
			if cs.frameStyle == Raised {
				tone = cs.palette.Window
			}
			end := math32.Vec2(r.Min.X, r.Max.Y)
			if size.Y == 0 {
				end = math32.Vec2(r.Max.X, r.Min.Y)
			}
			p.Save()
			p.SetPen(paint.SolidPen(tone, 1))
			p.Line(r.Min, end)
			p.Restore()
			return
		}

		lw = math32.Min(lw, size.Y/2-1)
		lw = math32.Min(lw, size.X/2-1)
		lw = math32.Max(lw, 0)
	}

	if lw > 0 {
		outer := r.Adjusted(0, 0, 1, 1)
		inner := outer.Adjusted(lw, lw, -lw, -lw)

		p.Save()
		p.SetPen(paint.Pen{})

		oTL, oBR := outer.Min, outer.Max
		oTR := math32.Vec2(oBR.X, oTL.Y)
		oBL := math32.Vec2(oTL.X, oBR.Y)
		iTL, iBR := inner.Min, inner.Max
		iTR := math32.Vec2(iBR.X, iTL.Y)
		iBL := math32.Vec2(iTL.X, iBR.Y)

		if cs.frameStyle == Plain {
			// outer ring walked clockwise, inner counter-clockwise
			p.SetBrush(paint.SolidBrushOf(cs.palette.Dark))
			p.Polygon([]math32.Vector2{
				oTL, oTR, oBR, oBL, oTL,
				iTL, iBL, iBR, iTR, iTL,
			})
		} else {
			p.SetBrush(paint.SolidBrushOf(cs.palette.Light))
			p.Polygon([]math32.Vector2{oBL, oTL, oTR, iTR, iTL, iBL})

			p.SetBrush(paint.SolidBrushOf(cs.palette.Dark))
			p.Polygon([]math32.Vector2{oTR, oBR, oBL, iBL, iBR, iTR})
		}
		p.Restore()
	}

	windowRect := r.Adjusted(lw, lw, -lw+1, -lw+1)
	if !windowRect.IsEmpty() {
		p.FillRect(windowRect, window)
	}
}
