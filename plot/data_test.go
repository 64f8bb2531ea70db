// Copyright (c) 2025, The Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chartkit/chartkit/math32"
)

func TestCopyXYs(t *testing.T) {
	nan := math32.NaN()

	xys, err := CopyPairs([]float32{1, nan, 3}, []float32{10, 20, 30})
	assert.NoError(t, err)
	assert.Equal(t, XYs{math32.Vec2(1, 10), math32.Vec2(3, 30)}, xys)

	_, err = CopyPairs([]float32{1, math32.Infinity}, []float32{1, 2})
	assert.ErrorIs(t, err, ErrInfinity)

	_, err = CopyXYs(nil)
	assert.ErrorIs(t, err, ErrNoData)

	_, err = CopyXYs(XYs{})
	assert.ErrorIs(t, err, ErrNoData)

	_, err = CopyPairs([]float32{nan}, []float32{1})
	assert.ErrorIs(t, err, ErrNoData)
}

func TestXYPairs(t *testing.T) {
	xy := XYPairs{Xs: []float32{1, 2, 3}, Ys: []float32{4, 5}}
	assert.Equal(t, 2, xy.Len())
	x, y := xy.XY(1)
	assert.Equal(t, float32(2), x)
	assert.Equal(t, float32(5), y)
}

func TestXYRange(t *testing.T) {
	xys := XYs{
		math32.Vec2(1, -2),
		math32.Vec2(math32.NaN(), 7),
		math32.Vec2(5, 3),
	}
	xmin, xmax, ymin, ymax := XYRange(xys)
	assert.Equal(t, float32(1), xmin)
	assert.Equal(t, float32(5), xmax)
	assert.Equal(t, float32(-2), ymin)
	assert.Equal(t, float32(7), ymax)
}
