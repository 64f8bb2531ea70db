// Copyright (c) 2025, The Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recording

import (
	"slices"

	"github.com/chartkit/chartkit/math32"
	"github.com/chartkit/chartkit/paint"
)

// Recorder is a [paint.Painter] that records every operation as a
// [Command], preserving the pen and brush in effect for each drawing
// command so that recordings can be inspected or replayed without
// tracking state.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	window   math32.Box2
	commands []Command

	pen   paint.Pen
	brush paint.Brush

	stack []recorderState
}

type recorderState struct {
	pen   paint.Pen
	brush paint.Brush
}

// NewRecorder returns a Recorder whose visible window is the given
// device rectangle.
func NewRecorder(window math32.Box2) *Recorder {
	return &Recorder{
		window:   window,
		commands: make([]Command, 0, 64),
	}
}

// Commands returns the recorded commands in order.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Reset discards all recorded commands and state.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.pen = paint.Pen{}
	r.brush = paint.Brush{}
	r.stack = r.stack[:0]
}

// Drawn returns the recorded drawing commands of the given type,
// skipping state commands.
func (r *Recorder) Drawn(ct CommandType) []Command {
	var cs []Command
	for _, c := range r.commands {
		if c.Type() == ct {
			cs = append(cs, c)
		}
	}
	return cs
}

// CountDrawn returns how many drawing commands were recorded,
// excluding state commands (Save, Restore, SetPen, SetBrush).
func (r *Recorder) CountDrawn() int {
	n := 0
	for _, c := range r.commands {
		switch c.Type() {
		case CmdSave, CmdRestore, CmdSetPen, CmdSetBrush:
		default:
			n++
		}
	}
	return n
}

func (r *Recorder) Save() {
	r.stack = append(r.stack, recorderState{pen: r.pen, brush: r.brush})
	r.commands = append(r.commands, Save{})
}

func (r *Recorder) Restore() {
	if n := len(r.stack); n > 0 {
		st := r.stack[n-1]
		r.stack = r.stack[:n-1]
		r.pen = st.pen
		r.brush = st.brush
	}
	r.commands = append(r.commands, Restore{})
}

func (r *Recorder) SetPen(pen paint.Pen) {
	r.pen = pen
	r.commands = append(r.commands, SetPen{Pen: pen})
}

func (r *Recorder) SetBrush(brush paint.Brush) {
	r.brush = brush
	r.commands = append(r.commands, SetBrush{Brush: brush})
}

func (r *Recorder) Line(p1, p2 math32.Vector2) {
	r.commands = append(r.commands, Line{P1: p1, P2: p2, Pen: r.pen})
}

func (r *Recorder) Polyline(points []math32.Vector2) {
	r.commands = append(r.commands, Polyline{Points: slices.Clone(points), Pen: r.pen})
}

func (r *Recorder) Polygon(points []math32.Vector2) {
	r.commands = append(r.commands, Polygon{Points: slices.Clone(points), Pen: r.pen, Brush: r.brush})
}

func (r *Recorder) FillRect(rect math32.Box2, brush paint.Brush) {
	r.commands = append(r.commands, FillRect{Rect: rect, Brush: brush})
}

func (r *Recorder) Point(p math32.Vector2) {
	r.commands = append(r.commands, Point{P: p, Pen: r.pen})
}

func (r *Recorder) Text(pos math32.Vector2, rot float32, s string) {
	r.commands = append(r.commands, Text{Pos: pos, Rotation: rot, Str: s, Pen: r.pen})
}

func (r *Recorder) Window() math32.Box2 {
	return r.window
}

// Replay plays the recorded commands back onto another painter.
func (r *Recorder) Replay(p paint.Painter) {
	for _, c := range r.commands {
		switch cmd := c.(type) {
		case Save:
			p.Save()
		case Restore:
			p.Restore()
		case SetPen:
			p.SetPen(cmd.Pen)
		case SetBrush:
			p.SetBrush(cmd.Brush)
		case Line:
			p.Line(cmd.P1, cmd.P2)
		case Polyline:
			p.Polyline(cmd.Points)
		case Polygon:
			p.Polygon(cmd.Points)
		case FillRect:
			p.FillRect(cmd.Rect, cmd.Brush)
		case Point:
			p.Point(cmd.P)
		case Text:
			p.Text(cmd.Pos, cmd.Rotation, cmd.Str)
		}
	}
}
