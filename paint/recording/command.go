// Copyright (c) 2025, The Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package recording provides a [paint.Painter] backend that captures
// drawing operations as typed command structures instead of
// rasterizing pixels. Recordings can be inspected (the rendering tests
// are built on this) or replayed to another backend for vector export.
package recording

import (
	"github.com/chartkit/chartkit/math32"
	"github.com/chartkit/chartkit/paint"
)

// CommandType identifies the type of a recorded command.
type CommandType uint8

const (
	// State commands
	CmdSave CommandType = iota
	CmdRestore
	CmdSetPen
	CmdSetBrush

	// Drawing commands
	CmdLine
	CmdPolyline
	CmdPolygon
	CmdFillRect
	CmdPoint
	CmdText
)

var commandTypeNames = [...]string{
	CmdSave:     "Save",
	CmdRestore:  "Restore",
	CmdSetPen:   "SetPen",
	CmdSetBrush: "SetBrush",
	CmdLine:     "Line",
	CmdPolyline: "Polyline",
	CmdPolygon:  "Polygon",
	CmdFillRect: "FillRect",
	CmdPoint:    "Point",
	CmdText:     "Text",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all recorded commands.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// Save pushes the painter state.
type Save struct{}

func (Save) Type() CommandType { return CmdSave }

// Restore pops the painter state.
type Restore struct{}

func (Restore) Type() CommandType { return CmdRestore }

// SetPen records a pen change.
type SetPen struct {
	Pen paint.Pen
}

func (SetPen) Type() CommandType { return CmdSetPen }

// SetBrush records a brush change.
type SetBrush struct {
	Brush paint.Brush
}

func (SetBrush) Type() CommandType { return CmdSetBrush }

// Line records a single line segment, with the pen active at the time.
type Line struct {
	P1, P2 math32.Vector2
	Pen    paint.Pen
}

func (Line) Type() CommandType { return CmdLine }

// Polyline records connected segments, with the pen active at the time.
type Polyline struct {
	Points []math32.Vector2
	Pen    paint.Pen
}

func (Polyline) Type() CommandType { return CmdPolyline }

// Polygon records a closed filled polygon, with the pen and brush
// active at the time.
type Polygon struct {
	Points []math32.Vector2
	Pen    paint.Pen
	Brush  paint.Brush
}

func (Polygon) Type() CommandType { return CmdPolygon }

// FillRect records a rectangle fill.
type FillRect struct {
	Rect  math32.Box2
	Brush paint.Brush
}

func (FillRect) Type() CommandType { return CmdFillRect }

// Point records a single point, with the pen active at the time.
type Point struct {
	P   math32.Vector2
	Pen paint.Pen
}

func (Point) Type() CommandType { return CmdPoint }

// Text records a text draw.
type Text struct {
	Pos      math32.Vector2
	Rotation float32
	Str      string
	Pen      paint.Pen
}

func (Text) Type() CommandType { return CmdText }
