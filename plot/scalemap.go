// Copyright (c) 2025, The Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "fmt"

// ScaleMap is a linear map between a scale (data) interval and a paint
// (device) interval. The intervals may each be inverted, which is how
// a vertical axis maps increasing values to decreasing pixel rows.
type ScaleMap struct {
	s1, s2 float32 // scale interval
	p1, p2 float32 // paint interval
	cnv    float32 // conversion factor
}

// NewScaleMap returns a map from the scale interval [s1, s2] to the
// paint interval [p1, p2].
func NewScaleMap(s1, s2, p1, p2 float32) *ScaleMap {
	m := &ScaleMap{}
	m.SetScaleInterval(s1, s2)
	m.SetPaintInterval(p1, p2)
	return m
}

// SetScaleInterval sets the data interval of the map.
func (m *ScaleMap) SetScaleInterval(s1, s2 float32) {
	m.s1 = s1
	m.s2 = s2
	m.updateFactor()
}

// SetPaintInterval sets the device interval of the map.
func (m *ScaleMap) SetPaintInterval(p1, p2 float32) {
	m.p1 = p1
	m.p2 = p2
	m.updateFactor()
}

func (m *ScaleMap) updateFactor() {
	m.cnv = 0
	if m.s2 != m.s1 {
		m.cnv = (m.p2 - m.p1) / (m.s2 - m.s1)
	}
}

// S1 returns the first border of the scale interval.
func (m *ScaleMap) S1() float32 { return m.s1 }

// S2 returns the second border of the scale interval.
func (m *ScaleMap) S2() float32 { return m.s2 }

// P1 returns the first border of the paint interval.
func (m *ScaleMap) P1() float32 { return m.p1 }

// P2 returns the second border of the paint interval.
func (m *ScaleMap) P2() float32 { return m.p2 }

// SDist returns the absolute length of the scale interval.
func (m *ScaleMap) SDist() float32 {
	d := m.s2 - m.s1
	if d < 0 {
		return -d
	}
	return d
}

// PDist returns the absolute length of the paint interval.
func (m *ScaleMap) PDist() float32 {
	d := m.p2 - m.p1
	if d < 0 {
		return -d
	}
	return d
}

// Transform maps a value from the scale interval into the paint
// interval.
func (m *ScaleMap) Transform(s float32) float32 {
	return m.p1 + (s-m.s1)*m.cnv
}

// InvTransform maps a value from the paint interval back into the
// scale interval.
func (m *ScaleMap) InvTransform(p float32) float32 {
	if m.cnv == 0 {
		return m.s1
	}
	return m.s1 + (p-m.p1)/m.cnv
}

func (m *ScaleMap) String() string {
	return fmt.Sprintf("ScaleMap([%g, %g] -> [%g, %g])", m.s1, m.s2, m.p1, m.p2)
}
