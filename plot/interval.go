// Copyright (c) 2025, The Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

// Interval is a closed range of values with flags marking whether each
// border belongs to the interval. A bar that shares a border with its
// neighbor excludes that border so the shared edge is only drawn once.
type Interval struct {
	Min float32
	Max float32

	// ExcludeMin marks the minimum border as not owned by this interval.
	ExcludeMin bool

	// ExcludeMax marks the maximum border as not owned by this interval.
	ExcludeMax bool
}

// NewInterval returns an interval owning both of its borders.
func NewInterval(min, max float32) Interval {
	return Interval{Min: min, Max: max}
}

// IsValid returns whether Min <= Max.
func (iv Interval) IsValid() bool {
	return iv.Min <= iv.Max
}

// Width returns Max - Min.
func (iv Interval) Width() float32 {
	return iv.Max - iv.Min
}

// Contains returns whether the value lies inside the interval,
// honoring the border exclusion flags.
func (iv Interval) Contains(value float32) bool {
	if value < iv.Min || value > iv.Max {
		return false
	}
	if value == iv.Min && iv.ExcludeMin {
		return false
	}
	if value == iv.Max && iv.ExcludeMax {
		return false
	}
	return true
}
