// Copyright (c) 2025, The Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "github.com/chartkit/chartkit/math32"

// ClipPolygon clips the given polygon against an axis-aligned
// rectangle using Sutherland-Hodgman, returning the clipped vertex
// list. The input is not modified. An empty input or rectangle
// returns nil.
//
// Open polylines are clipped the same way; segments that leave and
// re-enter the rectangle get joined along its border, which is
// acceptable for display clipping.
func ClipPolygon(points []math32.Vector2, rect math32.Box2) []math32.Vector2 {
	if len(points) == 0 || rect.IsEmpty() {
		return nil
	}

	type edge struct {
		inside func(p math32.Vector2) bool
		cross  func(a, b math32.Vector2) math32.Vector2
	}
	edges := [4]edge{
		{ // left
			func(p math32.Vector2) bool { return p.X >= rect.Min.X },
			func(a, b math32.Vector2) math32.Vector2 { return intersectV(a, b, rect.Min.X) },
		},
		{ // right
			func(p math32.Vector2) bool { return p.X <= rect.Max.X },
			func(a, b math32.Vector2) math32.Vector2 { return intersectV(a, b, rect.Max.X) },
		},
		{ // top
			func(p math32.Vector2) bool { return p.Y >= rect.Min.Y },
			func(a, b math32.Vector2) math32.Vector2 { return intersectH(a, b, rect.Min.Y) },
		},
		{ // bottom
			func(p math32.Vector2) bool { return p.Y <= rect.Max.Y },
			func(a, b math32.Vector2) math32.Vector2 { return intersectH(a, b, rect.Max.Y) },
		},
	}

	out := points
	for _, e := range edges {
		in := out
		out = make([]math32.Vector2, 0, len(in)+4)
		for i := 0; i < len(in); i++ {
			cur := in[i]
			prev := in[(i+len(in)-1)%len(in)]
			curIn := e.inside(cur)
			prevIn := e.inside(prev)
			switch {
			case curIn && prevIn:
				out = append(out, cur)
			case curIn && !prevIn:
				out = append(out, e.cross(prev, cur), cur)
			case !curIn && prevIn:
				out = append(out, e.cross(prev, cur))
			}
		}
		if len(out) == 0 {
			return nil
		}
	}
	return out
}

// intersectV returns the intersection of segment a-b with the
// vertical line x = vx.
func intersectV(a, b math32.Vector2, vx float32) math32.Vector2 {
	t := (vx - a.X) / (b.X - a.X)
	return math32.Vec2(vx, a.Y+t*(b.Y-a.Y))
}

// intersectH returns the intersection of segment a-b with the
// horizontal line y = hy.
func intersectH(a, b math32.Vector2, hy float32) math32.Vector2 {
	t := (hy - a.Y) / (b.Y - a.Y)
	return math32.Vec2(a.X+t*(b.X-a.X), hy)
}
