// Copyright (c) 2025, The Chartkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paint defines the abstract painter surface that the chartkit
// renderers draw against, along with the pen, brush, and palette state
// they carry. Actual rasterization, anti-aliasing, and text layout are
// the responsibility of the backend implementing [Painter].
package paint
