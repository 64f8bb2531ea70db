// Copyright (c) 2025, The Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Theme is the TOML-loadable shading configuration, mapping the three
// palette tones to hex colors. Example:
//
//	light = "#e0e0e0"
//	dark = "#606060"
//	window = "#a0a0a0"
type Theme struct {
	Light  string `toml:"light"`
	Dark   string `toml:"dark"`
	Window string `toml:"window"`
}

// ReadTheme decodes a TOML theme from the given reader.
func ReadTheme(r io.Reader) (*Theme, error) {
	t := &Theme{}
	if err := toml.NewDecoder(r).Decode(t); err != nil {
		return nil, fmt.Errorf("paint: decoding theme: %w", err)
	}
	return t, nil
}

// Palette converts the theme to a [Palette]. Tones left empty fall
// back to the corresponding tone of [DefaultPalette].
func (t *Theme) Palette() (Palette, error) {
	pal := DefaultPalette()
	for _, tone := range []struct {
		hex string
		dst *color.RGBA
	}{
		{t.Light, &pal.Light},
		{t.Dark, &pal.Dark},
		{t.Window, &pal.Window},
	} {
		if tone.hex == "" {
			continue
		}
		c, err := ParseHex(tone.hex)
		if err != nil {
			return pal, err
		}
		*tone.dst = c
	}
	return pal, nil
}

// ParseHex parses a #RRGGBB or #RRGGBBAA hex color.
func ParseHex(hex string) (color.RGBA, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("paint: invalid hex color %q", hex)
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("paint: invalid hex color %q: %w", hex, err)
	}
	if len(s) == 6 {
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
