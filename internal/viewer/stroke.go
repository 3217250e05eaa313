/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package viewer

import (
	"image"
	"image/color"
	"image/draw"
)

// StrokeRect bakes an unfilled rectangle outline into dst. The stroke is
// centered on the rectangle edges and clipped to the image bounds. A
// degenerate zero-area rectangle produces a single dot of the stroke size.
func StrokeRect(dst *image.RGBA, r image.Rectangle, c color.Color, width int) {
	if dst == nil || width <= 0 {
		return
	}
	half := width / 2
	outer := image.Rect(r.Min.X-half, r.Min.Y-half, r.Max.X+width-half, r.Max.Y+width-half)

	src := image.NewUniform(c)
	fill := func(band image.Rectangle) {
		band = band.Intersect(dst.Bounds())
		if band.Empty() {
			return
		}
		draw.Draw(dst, band, src, image.Point{}, draw.Src)
	}

	fill(image.Rect(outer.Min.X, outer.Min.Y, outer.Max.X, outer.Min.Y+width)) // top
	fill(image.Rect(outer.Min.X, outer.Max.Y-width, outer.Max.X, outer.Max.Y)) // bottom
	fill(image.Rect(outer.Min.X, outer.Min.Y, outer.Min.X+width, outer.Max.Y)) // left
	fill(image.Rect(outer.Max.X-width, outer.Min.Y, outer.Max.X, outer.Max.Y)) // right
}
