// Copyright (c) 2025, The Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"errors"

	"github.com/chartkit/chartkit/math32"
)

var (
	// ErrInfinity indicates that a data point has an infinite coordinate.
	ErrInfinity = errors.New("plot: infinite data point")

	// ErrNoData indicates that there are no data points to use.
	ErrNoData = errors.New("plot: no data points")
)

// Series is the capability interface for an ordered, indexable
// sequence of (x, y) samples. Renderers depend only on this interface,
// never on a concrete backend.
type Series interface {
	// Len returns the number of samples.
	Len() int

	// XY returns the sample at index i.
	XY(i int) (x, y float32)
}

// XYs is a Series backed by an owned slice of points.
type XYs []math32.Vector2

func (xys XYs) Len() int { return len(xys) }

func (xys XYs) XY(i int) (x, y float32) { return xys[i].X, xys[i].Y }

// XYPairs is a Series referencing two equally sized coordinate
// slices, without copying them. The caller must keep the slices alive
// and unchanged while the series is in use. The shorter slice governs
// if the lengths differ.
type XYPairs struct {
	Xs []float32
	Ys []float32
}

func (xy XYPairs) Len() int {
	if len(xy.Xs) < len(xy.Ys) {
		return len(xy.Xs)
	}
	return len(xy.Ys)
}

func (xy XYPairs) XY(i int) (x, y float32) { return xy.Xs[i], xy.Ys[i] }

// CopyXYs returns an owned [XYs] copy of the given series, or an error
// if the series is nil or empty, or if any coordinate is infinite.
// Samples with a NaN coordinate are skipped in the copying process.
func CopyXYs(data Series) (XYs, error) {
	if data == nil || data.Len() == 0 {
		return nil, ErrNoData
	}
	cpy := make(XYs, 0, data.Len())
	for i := 0; i < data.Len(); i++ {
		x, y := data.XY(i)
		if math32.IsNaN(x) || math32.IsNaN(y) {
			continue
		}
		if math32.IsInf(x, 0) || math32.IsInf(y, 0) {
			Logger().Warn("rejecting series with infinite sample", "index", i)
			return nil, ErrInfinity
		}
		cpy = append(cpy, math32.Vec2(x, y))
	}
	if len(cpy) == 0 {
		return nil, ErrNoData
	}
	return cpy, nil
}

// CopyPairs returns an owned [XYs] built by copying the given
// coordinate slices, with the same checking as [CopyXYs].
func CopyPairs(xs, ys []float32) (XYs, error) {
	return CopyXYs(XYPairs{Xs: xs, Ys: ys})
}

// XYRange returns the minimum and maximum x and y values of the
// series, skipping NaNs.
func XYRange(data Series) (xmin, xmax, ymin, ymax float32) {
	xmin, ymin = math32.Infinity, math32.Infinity
	xmax, ymax = -math32.Infinity, -math32.Infinity
	for i := 0; i < data.Len(); i++ {
		x, y := data.XY(i)
		if !math32.IsNaN(x) {
			xmin = math32.Min(xmin, x)
			xmax = math32.Max(xmax, x)
		}
		if !math32.IsNaN(y) {
			ymin = math32.Min(ymin, y)
			ymax = math32.Max(ymax, y)
		}
	}
	return
}
