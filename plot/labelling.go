// Copyright (c) 2025, The Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "github.com/chartkit/chartkit/math32"

// Linear tick generation: the classic 1-2-5 step scheme, producing a
// ScaleDiv with major ticks at nice values and minor/medium ticks
// subdividing each major step.

// NiceStep returns the smallest step of the form {1, 2, 5} * 10^k that
// divides the given interval into at most numSteps steps. It returns 0
// for a degenerate interval or step count.
func NiceStep(interval float32, numSteps int) float32 {
	if numSteps <= 0 || interval <= 0 || math32.IsInf(interval, 0) {
		return 0
	}
	raw := interval / float32(numSteps)
	mag := math32.Pow10(int(math32.Floor(math32.Log10(raw))))
	frac := raw / mag
	var step float32
	switch {
	case frac <= 1:
		step = 1
	case frac <= 2:
		step = 2
	case frac <= 5:
		step = 5
	default:
		step = 10
	}
	return step * mag
}

// LinearTicks divides [min, max] into a ScaleDiv with at most
// maxMajorSteps major intervals and at most maxMinorSteps minor
// intervals per major step. Major ticks land on multiples of a nice
// step value. If the subdivision of a major step has an odd number of
// interior ticks, the middle one is classified as a medium tick.
//
// A min > max range produces an inverted division with the same ticks.
func LinearTicks(min, max float32, maxMajorSteps, maxMinorSteps int) ScaleDiv {
	inverted := min > max
	if inverted {
		min, max = max, min
	}

	sd := ScaleDiv{Lower: min, Upper: max}
	step := NiceStep(max-min, maxMajorSteps)
	if step == 0 {
		if inverted {
			sd.Invert()
		}
		return sd
	}
	eps := step * 1.0e-4

	var majors []float32
	for v := math32.Ceil((min-eps)/step) * step; v <= max+eps; v += step {
		majors = append(majors, v)
	}
	sd.SetTicks(MajorTick, majors)

	if maxMinorSteps > 1 && len(majors) > 0 {
		minorStep := NiceStep(step, maxMinorSteps)
		if minorStep > 0 && minorStep < step {
			n := int(math32.Round(step/minorStep)) - 1
			medium := -1
			if n%2 == 1 {
				medium = (n + 1) / 2
			}
			var minors, mediums []float32
			// walk one major step beyond both ends so partial
			// intervals at the borders get their ticks too
			for base := majors[0] - step; base < max+eps; base += step {
				for i := 1; i <= n; i++ {
					v := base + float32(i)*minorStep
					if v < min-eps || v > max+eps {
						continue
					}
					if i == medium {
						mediums = append(mediums, v)
					} else {
						minors = append(minors, v)
					}
				}
			}
			sd.SetTicks(MinorTick, minors)
			sd.SetTicks(MediumTick, mediums)
		}
	}

	if inverted {
		sd.Invert()
	}
	return sd
}
