// Copyright (c) 2025, The Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recording

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/colornames"

	"github.com/chartkit/chartkit/math32"
	"github.com/chartkit/chartkit/paint"
)

func TestRecorderStatePreserved(t *testing.T) {
	rec := NewRecorder(math32.B2(0, 0, 100, 100))
	assert.Equal(t, math32.B2(0, 0, 100, 100), rec.Window())

	pen := paint.SolidPen(colornames.Red, 2)
	rec.SetPen(pen)
	rec.Line(math32.Vec2(0, 0), math32.Vec2(10, 10))

	rec.Save()
	rec.SetPen(paint.Pen{})
	rec.Restore()
	rec.Point(math32.Vec2(5, 5))

	lines := rec.Drawn(CmdLine)
	assert.Len(t, lines, 1)
	assert.Equal(t, pen, lines[0].(Line).Pen)

	// restore brought the red pen back for the point
	pts := rec.Drawn(CmdPoint)
	assert.Len(t, pts, 1)
	assert.Equal(t, pen, pts[0].(Point).Pen)

	assert.Equal(t, 2, rec.CountDrawn())
}

func TestRecorderPolygonSnapshot(t *testing.T) {
	rec := NewRecorder(math32.B2(0, 0, 10, 10))
	pts := []math32.Vector2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 5}}
	brush := paint.SolidBrushOf(colornames.Blue)
	rec.SetBrush(brush)
	rec.Polygon(pts)

	// mutating the caller's slice must not affect the recording
	pts[0] = math32.Vec2(99, 99)

	polys := rec.Drawn(CmdPolygon)
	assert.Len(t, polys, 1)
	poly := polys[0].(Polygon)
	assert.Equal(t, math32.Vec2(0, 0), poly.Points[0])
	assert.Equal(t, brush, poly.Brush)
}

func TestRecorderReplay(t *testing.T) {
	rec := NewRecorder(math32.B2(0, 0, 10, 10))
	rec.Save()
	rec.SetPen(paint.SolidPen(colornames.Black, 1))
	rec.Polyline([]math32.Vector2{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}})
	rec.FillRect(math32.B2(1, 1, 3, 3), paint.SolidBrushOf(colornames.Green))
	rec.Text(math32.Vec2(5, 5), 90, "label")
	rec.Restore()

	dst := NewRecorder(math32.B2(0, 0, 10, 10))
	rec.Replay(dst)
	assert.Equal(t, rec.Commands(), dst.Commands())

	rec.Reset()
	assert.Empty(t, rec.Commands())
}
