// Copyright (c) 2025, The Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chartkit/chartkit/math32"
	"github.com/chartkit/chartkit/paint/recording"
)

// fakeMetrics is a fixed-width font for geometry tests: 6 units per
// glyph, 10 units tall.
type fakeMetrics struct{}

func (fakeMetrics) Height() float32  { return 10 }
func (fakeMetrics) Ascent() float32  { return 8 }
func (fakeMetrics) Descent() float32 { return 2 }
func (fakeMetrics) Leading() float32 { return 2 }

func (fakeMetrics) Width(s string) float32 { return 6 * float32(len(s)) }

func testScaleDraw() *ScaleDraw {
	sd := NewScaleDraw()
	sd.Move(math32.Vec2(100, 200))
	sd.SetLength(300)
	sd.SetScaleDiv(NewScaleDiv(0, 10, [NTickTypes][]float32{
		MajorTick: {0, 5, 10},
		MinorTick: {2.5, 7.5},
	}))
	return sd
}

func TestScaleDrawMap(t *testing.T) {
	sd := testScaleDraw()
	assert.Equal(t, Horizontal, sd.Orientation())
	assert.Equal(t, float32(100), sd.Map().Transform(0))
	assert.Equal(t, float32(400), sd.Map().Transform(10))

	// vertical scales map increasing values upward
	sd.SetAlignment(LeftScale)
	assert.Equal(t, Vertical, sd.Orientation())
	assert.Equal(t, float32(500), sd.Map().Transform(0))
	assert.Equal(t, float32(200), sd.Map().Transform(10))
}

func TestScaleDrawLabelPosition(t *testing.T) {
	sd := testScaleDraw()

	// spacing 4 + backbone pen 1 + major tick 8
	pos := sd.LabelPosition(5)
	assert.Equal(t, math32.Vec2(250, 213), pos)

	sd.SetComponents(ScaleComponents{Labels: true})
	pos = sd.LabelPosition(5)
	assert.Equal(t, math32.Vec2(250, 204), pos)

	sd.SetAlignment(TopScale)
	sd.SetComponents(ScaleComponents{Backbone: true, Ticks: true, Labels: true})
	pos = sd.LabelPosition(0)
	assert.Equal(t, math32.Vec2(100, 187), pos)
}

func TestScaleDrawExtent(t *testing.T) {
	sd := testScaleDraw()
	fm := fakeMetrics{}

	// label height 10 + spacing 4 + major tick 8 + backbone pen 1
	assert.Equal(t, float32(23), sd.Extent(fm))

	sd.SetComponents(ScaleComponents{Backbone: true, Ticks: true})
	assert.Equal(t, float32(9), sd.Extent(fm))

	// vertical scales use the label width: "2.5" formats to 3 glyphs
	sd = testScaleDraw()
	sd.SetAlignment(LeftScale)
	assert.Equal(t, float32(6*2+4+8+1), sd.Extent(fm))
}

func TestScaleDrawLabelRect(t *testing.T) {
	sd := testScaleDraw()
	fm := fakeMetrics{}

	// bottom scale default alignment: centered below the anchor
	r := sd.LabelRect(fm, 0)
	assert.InDelta(t, -3, r.Min.X, 1e-4)
	assert.InDelta(t, 3, r.Max.X, 1e-4)
	assert.InDelta(t, 0, r.Min.Y, 1e-4)
	assert.InDelta(t, 10, r.Max.Y, 1e-4)

	br := sd.BoundingLabelRect(fm, 0)
	pos := sd.LabelPosition(0)
	assert.InDelta(t, pos.X-3, br.Min.X, 1e-4)
	assert.InDelta(t, pos.Y, br.Min.Y, 1e-4)
}

func TestScaleDrawBorderDistHint(t *testing.T) {
	sd := testScaleDraw()
	fm := fakeMetrics{}

	// "0" is one glyph wide, "10" is two
	start, end := sd.BorderDistHint(fm)
	assert.Equal(t, float32(3), start)
	assert.Equal(t, float32(6), end)

	sd.SetComponents(ScaleComponents{Backbone: true, Ticks: true})
	start, end = sd.BorderDistHint(fm)
	assert.Zero(t, start)
	assert.Zero(t, end)
}

func TestScaleDrawMinLabelDist(t *testing.T) {
	sd := testScaleDraw()
	fm := fakeMetrics{}

	// adjacent half-widths plus leading: 3 + 6 + 2 for "5" vs "10"
	assert.Equal(t, float32(11), sd.MinLabelDist(fm))

	assert.Greater(t, sd.MinLength(fm), float32(0))
}

func TestScaleDrawDraw(t *testing.T) {
	sd := testScaleDraw()
	fm := fakeMetrics{}
	rec := recording.NewRecorder(math32.B2(0, 0, 500, 500))

	sd.Draw(rec, fm)

	// 3 major + 2 minor ticks + the backbone
	assert.Len(t, rec.Drawn(recording.CmdLine), 6)

	texts := rec.Drawn(recording.CmdText)
	assert.Len(t, texts, 3)
	assert.Equal(t, "5", texts[1].(recording.Text).Str)

	rec.Reset()
	sd.SetComponents(ScaleComponents{Backbone: true})
	sd.Draw(rec, fm)
	assert.Len(t, rec.Drawn(recording.CmdLine), 1)
	assert.Empty(t, rec.Drawn(recording.CmdText))
}

func TestScaleDrawFormat(t *testing.T) {
	sd := testScaleDraw()
	assert.Equal(t, "2.5", sd.Label(2.5))

	sd.Format = func(v float32) string { return "x" }
	assert.Equal(t, "x", sd.Label(2.5))
}
