// Copyright (c) 2025, The Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Palette holds the three tones used for bevel and panel shading:
// a light tone for raised edges, a dark tone for sunken edges, and a
// window tone for interiors. Palettes compare with ==.
type Palette struct {
	Light  color.RGBA
	Dark   color.RGBA
	Window color.RGBA
}

// NewPalette returns a palette derived from the given base color,
// with the light tone 50% lighter and the dark tone 50% darker,
// and the base itself as the window tone.
func NewPalette(base color.Color) Palette {
	b := AsRGBA(base)
	return Palette{
		Light:  Lighten(b, 0.5),
		Dark:   Darken(b, 0.5),
		Window: b,
	}
}

// DefaultPalette is the gray palette used when none is configured.
func DefaultPalette() Palette {
	return NewPalette(colornames.Gray)
}

// Lighten moves each channel of the color toward white by the given
// proportion in [0, 1].
func Lighten(c color.RGBA, amount float32) color.RGBA {
	return color.RGBA{
		R: lerpChannel(c.R, 0xff, amount),
		G: lerpChannel(c.G, 0xff, amount),
		B: lerpChannel(c.B, 0xff, amount),
		A: c.A,
	}
}

// Darken moves each channel of the color toward black by the given
// proportion in [0, 1].
func Darken(c color.RGBA, amount float32) color.RGBA {
	return color.RGBA{
		R: lerpChannel(c.R, 0, amount),
		G: lerpChannel(c.G, 0, amount),
		B: lerpChannel(c.B, 0, amount),
		A: c.A,
	}
}

func lerpChannel(from, to uint8, amount float32) uint8 {
	return uint8(float32(from) + amount*(float32(to)-float32(from)))
}
