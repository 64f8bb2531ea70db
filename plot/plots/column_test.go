// Copyright (c) 2025, The Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chartkit/chartkit/math32"
	"github.com/chartkit/chartkit/paint/recording"
	"github.com/chartkit/chartkit/plot"
)

func TestColumnRect(t *testing.T) {
	cr := ColumnRect{
		H: plot.Interval{Min: 2, Max: 10, ExcludeMin: true},
		V: plot.Interval{Min: 5, Max: 20, ExcludeMax: true},
	}
	// only the excluded borders are inset
	assert.Equal(t, math32.B2(3, 5, 10, 19), cr.ToRect())

	// inverted intervals are normalized before the insets
	cr = ColumnRect{
		H: plot.Interval{Min: 10, Max: 2},
		V: plot.Interval{Min: 20, Max: 5},
	}
	assert.Equal(t, math32.B2(2, 5, 10, 20), cr.ToRect())
}

func TestColumnNoFrame(t *testing.T) {
	cs := NewColumnSymbol(Box)
	cs.SetFrameStyle(NoFrame)

	rec := recording.NewRecorder(math32.B2(0, 0, 100, 100))
	cs.Draw(rec, ColumnRect{
		H: plot.NewInterval(10, 20),
		V: plot.NewInterval(30, 60),
	})

	fills := rec.Drawn(recording.CmdFillRect)
	assert.Len(t, fills, 1)
	fill := fills[0].(recording.FillRect)
	assert.Equal(t, math32.B2(10, 30, 19, 59), fill.Rect)
	assert.Equal(t, cs.Palette().Window, fill.Brush.Color)
	assert.Equal(t, 1, rec.CountDrawn())
}

func TestColumnRaised(t *testing.T) {
	cs := NewColumnSymbol(Box)

	rec := recording.NewRecorder(math32.B2(0, 0, 100, 100))
	cs.Draw(rec, ColumnRect{
		H: plot.NewInterval(10, 20),
		V: plot.NewInterval(30, 60),
	})

	// a light and a dark bevel plus the interior fill
	polys := rec.Drawn(recording.CmdPolygon)
	assert.Len(t, polys, 2)
	assert.Equal(t, cs.Palette().Light, polys[0].(recording.Polygon).Brush.Color)
	assert.Equal(t, cs.Palette().Dark, polys[1].(recording.Polygon).Brush.Color)
	assert.Len(t, rec.Drawn(recording.CmdFillRect), 1)
}

func TestColumnRaisedZeroLineWidth(t *testing.T) {
	cs := NewColumnSymbol(Box)
	cs.SetLineWidth(0)

	rec := recording.NewRecorder(math32.B2(0, 0, 100, 100))
	cs.Draw(rec, ColumnRect{
		H: plot.NewInterval(10, 20),
		V: plot.NewInterval(30, 60),
	})

	// no bevels, only the interior fill
	assert.Len(t, rec.Drawn(recording.CmdFillRect), 1)
	assert.Equal(t, 1, rec.CountDrawn())
}

func TestColumnPlain(t *testing.T) {
	cs := NewColumnSymbol(Box)
	cs.SetFrameStyle(Plain)

	rec := recording.NewRecorder(math32.B2(0, 0, 100, 100))
	cs.Draw(rec, ColumnRect{
		H: plot.NewInterval(10, 20),
		V: plot.NewInterval(30, 60),
	})

	polys := rec.Drawn(recording.CmdPolygon)
	assert.Len(t, polys, 1)
	assert.Equal(t, cs.Palette().Dark, polys[0].(recording.Polygon).Brush.Color)
	assert.Len(t, rec.Drawn(recording.CmdFillRect), 1)
}

func TestColumnDegenerate(t *testing.T) {
	cs := NewColumnSymbol(Box)
	cs.SetFrameStyle(Plain)

	// zero width: one dark line along the column
	rec := recording.NewRecorder(math32.B2(0, 0, 100, 100))
	cs.Draw(rec, ColumnRect{
		H: plot.NewInterval(15, 15),
		V: plot.NewInterval(30, 60),
	})
	lines := rec.Drawn(recording.CmdLine)
	assert.Len(t, lines, 1)
	assert.Equal(t, 1, rec.CountDrawn())
	line := lines[0].(recording.Line)
	assert.Equal(t, math32.Vec2(15, 30), line.P1)
	assert.Equal(t, math32.Vec2(15, 60), line.P2)
	assert.Equal(t, cs.Palette().Dark, line.Pen.Color)

	// zero height: one line along the top edge, window toned for a
	// raised frame
	rec.Reset()
	cs.SetFrameStyle(Raised)
	cs.Draw(rec, ColumnRect{
		H: plot.NewInterval(10, 20),
		V: plot.NewInterval(45, 45),
	})
	lines = rec.Drawn(recording.CmdLine)
	assert.Len(t, lines, 1)
	line = lines[0].(recording.Line)
	assert.Equal(t, math32.Vec2(10, 45), line.P1)
	assert.Equal(t, math32.Vec2(20, 45), line.P2)
	assert.Equal(t, cs.Palette().Window, line.Pen.Color)
}

func TestColumnDegenerateZeroLineWidth(t *testing.T) {
	cs := NewColumnSymbol(Box)
	cs.SetFrameStyle(Plain)
	cs.SetLineWidth(0)

	// without a frame width a degenerate column is not special: it
	// falls through to the one unit window-tone fill
	rec := recording.NewRecorder(math32.B2(0, 0, 100, 100))
	cs.Draw(rec, ColumnRect{
		H: plot.NewInterval(15, 15),
		V: plot.NewInterval(30, 60),
	})

	assert.Empty(t, rec.Drawn(recording.CmdLine))
	fills := rec.Drawn(recording.CmdFillRect)
	assert.Len(t, fills, 1)
	fill := fills[0].(recording.FillRect)
	assert.Equal(t, math32.B2(15, 30, 16, 61), fill.Rect)
	assert.Equal(t, cs.Palette().Window, fill.Brush.Color)
}

func TestColumnNoStyle(t *testing.T) {
	cs := NewColumnSymbol(NoColumn)
	rec := recording.NewRecorder(math32.B2(0, 0, 100, 100))
	cs.Draw(rec, ColumnRect{
		H: plot.NewInterval(10, 20),
		V: plot.NewInterval(30, 60),
	})
	assert.Zero(t, rec.CountDrawn())
}

func TestColumnEqual(t *testing.T) {
	a := NewColumnSymbol(Box)
	b := NewColumnSymbol(Box)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(nil))

	b.SetFrameStyle(Plain)
	assert.False(t, a.Equal(b))

	b.SetFrameStyle(Raised)
	b.SetLineWidth(3)
	assert.False(t, a.Equal(b))

	b.SetLineWidth(a.LineWidth())
	b.SetLabel("total")
	assert.False(t, a.Equal(b))

	b.SetLabel("")
	assert.True(t, a.Equal(b))
}
