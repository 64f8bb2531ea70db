// Copyright (c) 2025, The Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaleMap(t *testing.T) {
	m := NewScaleMap(0, 10, 100, 300)
	assert.Equal(t, float32(100), m.Transform(0))
	assert.Equal(t, float32(300), m.Transform(10))
	assert.Equal(t, float32(200), m.Transform(5))

	assert.Equal(t, float32(5), m.InvTransform(200))
	assert.Equal(t, float32(10), m.SDist())
	assert.Equal(t, float32(200), m.PDist())
}

func TestScaleMapInverted(t *testing.T) {
	// vertical axis: increasing values map to decreasing pixel rows
	m := NewScaleMap(0, 10, 400, 100)
	assert.Equal(t, float32(400), m.Transform(0))
	assert.Equal(t, float32(100), m.Transform(10))
	assert.Equal(t, float32(250), m.Transform(5))
	assert.Equal(t, float32(300), m.PDist())
}

func TestScaleMapDegenerate(t *testing.T) {
	m := NewScaleMap(5, 5, 0, 100)
	assert.Equal(t, float32(0), m.Transform(7))
	assert.Equal(t, float32(5), m.InvTransform(50))
}

func TestInterval(t *testing.T) {
	iv := Interval{Min: 1, Max: 5}
	assert.True(t, iv.IsValid())
	assert.Equal(t, float32(4), iv.Width())
	assert.True(t, iv.Contains(1))
	assert.True(t, iv.Contains(5))
	assert.False(t, iv.Contains(0))

	iv.ExcludeMin = true
	assert.False(t, iv.Contains(1))
	assert.True(t, iv.Contains(5))

	iv.ExcludeMax = true
	assert.False(t, iv.Contains(5))
	assert.True(t, iv.Contains(3))
}
