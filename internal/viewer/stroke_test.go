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
	"testing"
)

var red = color.RGBA{R: 255, A: 255}

func newWhite(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	return img
}

func TestStrokeRectDrawsOutlineOnly(t *testing.T) {
	img := newWhite(100, 100)
	StrokeRect(img, image.Rect(20, 20, 80, 80), red, 1)

	// Edge pixels are painted.
	for _, p := range []image.Point{{20, 20}, {79, 20}, {20, 79}, {50, 20}, {20, 50}} {
		if img.RGBAAt(p.X, p.Y) != red {
			t.Fatalf("edge pixel %v not stroked: %+v", p, img.RGBAAt(p.X, p.Y))
		}
	}
	// Interior stays untouched.
	if got := img.RGBAAt(50, 50); got.G != 255 {
		t.Fatalf("interior pixel was painted: %+v", got)
	}
	// Outside stays untouched.
	if got := img.RGBAAt(10, 10); got.G != 255 {
		t.Fatalf("outside pixel was painted: %+v", got)
	}
}

func TestStrokeRectWidthCenteredOnEdge(t *testing.T) {
	img := newWhite(100, 100)
	StrokeRect(img, image.Rect(40, 40, 60, 60), red, 3)

	// Width 3 centered on the edge covers one pixel on either side.
	for _, x := range []int{39, 40, 41} {
		if img.RGBAAt(x, 50) != red {
			t.Fatalf("left stroke band missing at x=%d", x)
		}
	}
	if img.RGBAAt(38, 50) == red || img.RGBAAt(42, 50) == red {
		t.Fatalf("stroke band wider than configured")
	}
}

func TestStrokeRectDegenerateDoesNotCrash(t *testing.T) {
	img := newWhite(50, 50)
	StrokeRect(img, image.Rect(25, 25, 25, 25), red, 3)
	if img.RGBAAt(25, 25) != red {
		t.Fatalf("degenerate rect should still leave a mark")
	}
}

func TestStrokeRectClipsAtImageBounds(t *testing.T) {
	img := newWhite(50, 50)
	// Rectangle partially outside the image must not panic and must only
	// touch in-bounds pixels.
	StrokeRect(img, image.Rect(-10, -10, 25, 25), red, 3)
	if img.RGBAAt(24, 10) != red {
		t.Fatalf("in-bounds part of clipped stroke missing")
	}
}

func TestStrokeRectNilAndZeroWidthAreNoOps(t *testing.T) {
	StrokeRect(nil, image.Rect(0, 0, 10, 10), red, 3)
	img := newWhite(20, 20)
	StrokeRect(img, image.Rect(5, 5, 15, 15), red, 0)
	if img.RGBAAt(5, 5) == red {
		t.Fatalf("zero width must not paint")
	}
}
