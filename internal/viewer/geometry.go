/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package viewer holds the GUI-independent core of the page viewer: the
// fit-to-window geometry, the drag-to-rectangle state machine, rectangle
// baking, and page navigation state. Everything here is plain math over
// pixels so the behavior is testable without a display.
package viewer

import "image"

// Pt is a 2D point in canvas coordinates.
// Float values use float32 to align with the UI toolkit.
type Pt struct{ X, Y float32 }

// Rect is an axis-aligned rectangle defined by min corner and size.
type Rect struct {
	X, Y float32
	W, H float32
}

func R(x, y, w, h float32) Rect { return Rect{X: x, Y: y, W: w, H: h} }

// FitSize returns the displayed size for an image of natural size imgW x imgH
// inside a box of boxW x boxH. A single uniform rule applies to both axes:
// scale = min(1, boxW/imgW, boxH/imgH). The image is never upscaled and the
// aspect ratio is always preserved.
func FitSize(imgW, imgH, boxW, boxH float32) (w, h float32) {
	if imgW <= 0 || imgH <= 0 || boxW <= 0 || boxH <= 0 {
		return 0, 0
	}
	s := float32(1)
	if r := boxW / imgW; r < s {
		s = r
	}
	if r := boxH / imgH; r < s {
		s = r
	}
	return imgW * s, imgH * s
}

// FitOffset returns the top-left position that centers a displayed image of
// size w x h inside the box. After FitSize the image never exceeds the box,
// so the offsets are clamped at zero rather than going negative.
func FitOffset(w, h, boxW, boxH float32) (x, y float32) {
	x = (boxW - w) / 2
	y = (boxH - h) / 2
	if x < 0 {
		x = -x
	}
	if y < 0 {
		y = -y
	}
	return x, y
}

// Normalized returns the bounding box of the two points, so that a drag
// up-left and a drag down-right between the same corners produce the same
// rectangle.
func Normalized(a, b Pt) Rect {
	x0, x1 := a.X, b.X
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	y0, y1 := a.Y, b.Y
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// ToImageRect maps a rectangle in canvas coordinates onto the stored page
// image, given the current fit placement (offset offX/offY, displayed size
// dispW x dispH) and the image bounds. The result is clamped to the image so
// strokes started or released outside the page land on its edge.
func ToImageRect(r Rect, offX, offY, dispW, dispH float32, img image.Rectangle) image.Rectangle {
	if dispW <= 0 || dispH <= 0 {
		return image.Rectangle{}
	}
	sx := float32(img.Dx()) / dispW
	sy := float32(img.Dy()) / dispH
	x0 := int((r.X-offX)*sx + 0.5)
	y0 := int((r.Y-offY)*sy + 0.5)
	x1 := int((r.X+r.W-offX)*sx + 0.5)
	y1 := int((r.Y+r.H-offY)*sy + 0.5)
	mapped := image.Rect(x0, y0, x1, y1).Add(img.Min)
	return clampRect(mapped, img)
}

// clampRect moves each edge of r inside bounds without collapsing the
// degenerate zero-area case.
func clampRect(r image.Rectangle, bounds image.Rectangle) image.Rectangle {
	r.Min.X = clampInt(r.Min.X, bounds.Min.X, bounds.Max.X)
	r.Min.Y = clampInt(r.Min.Y, bounds.Min.Y, bounds.Max.Y)
	r.Max.X = clampInt(r.Max.X, r.Min.X, bounds.Max.X)
	r.Max.Y = clampInt(r.Max.Y, r.Min.Y, bounds.Max.Y)
	return r
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
