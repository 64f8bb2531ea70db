// Copyright (c) 2025, The Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"slices"

	"github.com/chartkit/chartkit/math32"
)

// CurveFitter smooths or resamples a device-space polyline before it
// is drawn. Fit is a pure transform: it must not retain or modify the
// input slice.
type CurveFitter interface {
	Fit(points []math32.Vector2) []math32.Vector2
}

// SplineFitter is the default [CurveFitter]: a Catmull-Rom spline
// through the input points, resampled to Size output points with
// uniform parametrization. Fewer than three input points are returned
// unchanged.
type SplineFitter struct {
	// Size is the number of output points. Defaults to 250.
	Size int
}

// NewSplineFitter returns a spline fitter with the default output size.
func NewSplineFitter() *SplineFitter {
	return &SplineFitter{Size: 250}
}

// Fit implements [CurveFitter].
func (sf *SplineFitter) Fit(points []math32.Vector2) []math32.Vector2 {
	n := len(points)
	if n < 3 || sf.Size < 2 {
		return slices.Clone(points)
	}
	out := make([]math32.Vector2, sf.Size)
	last := float32(n - 1)
	for i := range out {
		t := float32(i) / float32(sf.Size-1) * last
		seg := int(math32.Floor(t))
		if seg > n-2 {
			seg = n - 2
		}
		u := t - float32(seg)
		out[i] = catmullRom(
			points[math32.ClampInt(seg-1, 0, n-1)],
			points[seg],
			points[seg+1],
			points[math32.ClampInt(seg+2, 0, n-1)],
			u,
		)
	}
	return out
}

// catmullRom evaluates the Catmull-Rom segment between p1 and p2 at
// parameter u in [0, 1], with p0 and p3 as the neighboring controls.
func catmullRom(p0, p1, p2, p3 math32.Vector2, u float32) math32.Vector2 {
	u2 := u * u
	u3 := u2 * u
	c0 := -0.5*u3 + u2 - 0.5*u
	c1 := 1.5*u3 - 2.5*u2 + 1
	c2 := -1.5*u3 + 2*u2 + 0.5*u
	c3 := 0.5*u3 - 0.5*u2
	return math32.Vector2{
		X: c0*p0.X + c1*p1.X + c2*p2.X + c3*p3.X,
		Y: c0*p0.Y + c1*p1.Y + c2*p2.Y + c3*p3.Y,
	}
}
