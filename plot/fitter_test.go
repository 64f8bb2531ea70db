// Copyright (c) 2025, The Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chartkit/chartkit/math32"
)

func TestSplineFitter(t *testing.T) {
	sf := NewSplineFitter()
	sf.Size = 11

	in := []math32.Vector2{
		math32.Vec2(0, 0),
		math32.Vec2(1, 1),
		math32.Vec2(2, 0),
	}
	out := sf.Fit(in)
	assert.Len(t, out, 11)

	// interpolating: endpoints and knots are hit exactly
	assert.Equal(t, in[0], out[0])
	assert.Equal(t, in[1], out[5])
	assert.Equal(t, in[2], out[10])
}

func TestSplineFitterPassthrough(t *testing.T) {
	sf := NewSplineFitter()
	in := []math32.Vector2{math32.Vec2(0, 0), math32.Vec2(4, 2)}
	out := sf.Fit(in)
	assert.Equal(t, in, out)

	// the result is a copy, not an alias
	out[0].X = 99
	assert.Equal(t, float32(0), in[0].X)
}
