// Copyright (c) 2025, The Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"slices"

	"github.com/chartkit/chartkit/math32"
)

// TickType classifies the ticks of a [ScaleDiv].
type TickType int32

const (
	// MinorTick is the smallest tick class.
	MinorTick TickType = iota

	// MediumTick sits between minor and major ticks.
	MediumTick

	// MajorTick marks the labelled scale positions.
	MajorTick

	// NTickTypes is the number of tick classes.
	NTickTypes
)

var tickTypeNames = [...]string{"MinorTick", "MediumTick", "MajorTick"}

func (tt TickType) String() string {
	if tt >= 0 && int(tt) < len(tickTypeNames) {
		return tickTypeNames[tt]
	}
	return "TickTypeN"
}

// ScaleDiv is an ordered collection of tick values for one axis,
// classified into minor, medium, and major ticks, together with the
// bounds of the scale. The bounds may be inverted (Lower > Upper) for
// scales that run backwards.
type ScaleDiv struct {
	Lower float32
	Upper float32

	ticks [NTickTypes][]float32
}

// NewScaleDiv returns a scale division with the given bounds and
// ticks per class (any slice may be nil).
func NewScaleDiv(lower, upper float32, ticks [NTickTypes][]float32) ScaleDiv {
	return ScaleDiv{Lower: lower, Upper: upper, ticks: ticks}
}

// SetTicks replaces the tick values of the given class.
func (sd *ScaleDiv) SetTicks(tt TickType, ticks []float32) {
	if tt >= 0 && tt < NTickTypes {
		sd.ticks[tt] = ticks
	}
}

// Ticks returns the tick values of the given class.
func (sd *ScaleDiv) Ticks(tt TickType) []float32 {
	if tt >= 0 && tt < NTickTypes {
		return sd.ticks[tt]
	}
	return nil
}

// Range returns Upper - Lower, which is negative for inverted scales.
func (sd *ScaleDiv) Range() float32 {
	return sd.Upper - sd.Lower
}

// Contains returns whether the value lies inside the scale bounds.
func (sd *ScaleDiv) Contains(value float32) bool {
	min := math32.Min(sd.Lower, sd.Upper)
	max := math32.Max(sd.Lower, sd.Upper)
	return value >= min && value <= max
}

// Invert swaps the bounds and reverses all tick lists.
func (sd *ScaleDiv) Invert() {
	sd.Lower, sd.Upper = sd.Upper, sd.Lower
	for i := range sd.ticks {
		slices.Reverse(sd.ticks[i])
	}
}

// IsEmpty returns whether the division covers no range.
func (sd *ScaleDiv) IsEmpty() bool {
	return sd.Lower == sd.Upper
}
