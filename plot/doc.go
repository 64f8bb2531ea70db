// Copyright (c) 2025, The Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot provides the core plotting primitives: scale maps from
// data to device coordinates, scale divisions with tick
// classification, sample series, point symbols, curve fitting and
// polygon clipping, and the scale draw that renders an axis backbone
// with ticks and labels. The renderers that consume these live in
// [github.com/chartkit/chartkit/plot/plots].
package plot
