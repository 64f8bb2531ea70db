// Copyright (c) 2025, The Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

// FontMetrics supplies the text measurements that scale geometry
// depends on. Font selection and shaping are backend concerns; the
// scale code only ever asks for these quantities, in device pixels.
type FontMetrics interface {
	// Height returns the total line height.
	Height() float32

	// Ascent returns the distance from the baseline to the top of
	// the tallest glyph.
	Ascent() float32

	// Descent returns the distance from the baseline to the bottom
	// of the lowest glyph.
	Descent() float32

	// Leading returns the extra spacing between adjacent lines.
	Leading() float32

	// Width returns the advance width of the given string.
	Width(s string) float32
}
