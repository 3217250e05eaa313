//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// These tests validate the Fyne-based viewer widget. They are gated behind the
// "fyne" build tag so CI (which is headless) does not need Fyne or a display.
// To run locally:
//
//	go test -tags fyne ./internal/ui
//
// Ensure you have the Fyne dependencies installed and a working OS driver.
package ui

import (
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
)

var red = color.RGBA{R: 255, A: 255}

func whitePage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}

func almostEqual(a, b, eps float32) bool {
	if a > b {
		return a-b <= eps
	}
	return b-a <= eps
}

func primaryEvent(x, y float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	}
}

func TestPageCanvas_Defaults(t *testing.T) {
	pc := NewPageCanvas(red, 3)
	sz := pc.PreferredSize()
	if sz.Width != 800 || sz.Height != 600 {
		t.Fatalf("unexpected PreferredSize: %v", sz)
	}
	if pc.img != nil {
		t.Fatalf("expected no page initially")
	}
}

func TestPageCanvas_LayoutFitsAndCenters(t *testing.T) {
	pc := NewPageCanvas(red, 3)
	r, ok := pc.CreateRenderer().(*pageCanvasRenderer)
	if !ok {
		t.Fatalf("expected pageCanvasRenderer, got %T", pc.CreateRenderer())
	}

	pc.SetPage(whitePage(200, 100))
	r.Layout(fyne.NewSize(400, 400))

	// Smaller than the box: shown 1:1 and centered, never upscaled.
	if !almostEqual(r.img.Size().Width, 200, 0.2) || !almostEqual(r.img.Size().Height, 100, 0.2) {
		t.Fatalf("unexpected display size: %v", r.img.Size())
	}
	pos := r.img.Position()
	if !almostEqual(pos.X, 100, 0.2) || !almostEqual(pos.Y, 150, 0.2) {
		t.Fatalf("page not centered: %v", pos)
	}

	// Larger than the box: scaled down preserving aspect ratio.
	pc.SetPage(whitePage(800, 400))
	r.Layout(fyne.NewSize(400, 400))
	if !almostEqual(r.img.Size().Width, 400, 0.2) || !almostEqual(r.img.Size().Height, 200, 0.2) {
		t.Fatalf("unexpected scaled display size: %v", r.img.Size())
	}
}

func TestPageCanvas_LayoutWithoutPageHidesObjects(t *testing.T) {
	pc := NewPageCanvas(red, 3)
	r := pc.CreateRenderer().(*pageCanvasRenderer)
	r.Layout(fyne.NewSize(400, 400))
	if r.img.Visible() {
		t.Fatalf("image should be hidden with no page")
	}
	if r.band.Visible() {
		t.Fatalf("rubber band should be hidden with no page")
	}
}

func TestPageCanvas_DragShowsRubberBand(t *testing.T) {
	pc := NewPageCanvas(red, 3)
	r := pc.CreateRenderer().(*pageCanvasRenderer)
	pc.Resize(fyne.NewSize(200, 100))
	pc.SetPage(whitePage(200, 100))

	pc.MouseDown(primaryEvent(50, 50))
	pc.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(120, 90)}})
	r.Layout(fyne.NewSize(200, 100))

	if !r.band.Visible() {
		t.Fatalf("rubber band should be visible during drag")
	}
	if !almostEqual(r.band.Position().X, 50, 0.2) || !almostEqual(r.band.Position().Y, 50, 0.2) {
		t.Fatalf("unexpected band position: %v", r.band.Position())
	}
	if !almostEqual(r.band.Size().Width, 70, 0.2) || !almostEqual(r.band.Size().Height, 40, 0.2) {
		t.Fatalf("unexpected band size: %v", r.band.Size())
	}
}

func TestPageCanvas_ReleaseBakesRectangle(t *testing.T) {
	pc := NewPageCanvas(red, 3)
	page := whitePage(200, 100)
	pc.Resize(fyne.NewSize(200, 100)) // identity fit: widget matches image
	pc.SetPage(page)

	var got image.Rectangle
	calls := 0
	pc.OnAnnotate = func(r image.Rectangle) { got = r; calls++ }

	pc.MouseDown(primaryEvent(50, 50))
	pc.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(120, 90)}})
	pc.MouseUp(primaryEvent(120, 90))

	if calls != 1 {
		t.Fatalf("OnAnnotate calls = %d, want 1", calls)
	}
	want := image.Rect(50, 50, 120, 90)
	if got != want {
		t.Fatalf("annotated rect = %v, want %v", got, want)
	}
	if page.RGBAAt(50, 50) != red {
		t.Fatalf("edge pixel not painted: %v", page.RGBAAt(50, 50))
	}
	if page.RGBAAt(85, 70) == red {
		t.Fatalf("interior pixel should stay untouched")
	}
	if pc.drag.Active() {
		t.Fatalf("drag should be reset after commit")
	}
}

func TestPageCanvas_ClickWithoutMovementStillCommits(t *testing.T) {
	pc := NewPageCanvas(red, 3)
	pc.Resize(fyne.NewSize(200, 100))
	pc.SetPage(whitePage(200, 100))

	calls := 0
	pc.OnAnnotate = func(image.Rectangle) { calls++ }

	pc.MouseDown(primaryEvent(30, 40))
	pc.MouseUp(primaryEvent(30, 40))
	if calls != 1 {
		t.Fatalf("press-release in place must commit, calls = %d", calls)
	}
}

func TestPageCanvas_SecondaryButtonIgnored(t *testing.T) {
	pc := NewPageCanvas(red, 3)
	pc.Resize(fyne.NewSize(200, 100))
	pc.SetPage(whitePage(200, 100))

	calls := 0
	pc.OnAnnotate = func(image.Rectangle) { calls++ }

	ev := &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(10, 10)},
		Button:     desktop.MouseButtonSecondary,
	}
	pc.MouseDown(ev)
	if pc.drag.Active() {
		t.Fatalf("secondary press must not arm the drag")
	}
	pc.MouseUp(ev)
	if calls != 0 {
		t.Fatalf("secondary release must not commit")
	}
}

func TestPageCanvas_SetPageCancelsDrag(t *testing.T) {
	pc := NewPageCanvas(red, 3)
	pc.Resize(fyne.NewSize(200, 100))
	pc.SetPage(whitePage(200, 100))

	calls := 0
	pc.OnAnnotate = func(image.Rectangle) { calls++ }

	pc.MouseDown(primaryEvent(10, 10))
	pc.SetPage(whitePage(200, 100)) // page turn mid-drag
	pc.MouseUp(primaryEvent(60, 60))
	if calls != 0 {
		t.Fatalf("drag across a page change must not commit")
	}
}

func writeTempFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestRecentFilesRoundTrip(t *testing.T) {
	prefs := test.NewApp().Preferences()
	saveRecentFiles(prefs, []string{})
	if got := loadRecentFiles(prefs); len(got) != 0 {
		t.Fatalf("expected empty recents, got %v", got)
	}

	dir := t.TempDir()
	a := writeTempFile(t, dir, "a.pdf")
	b := writeTempFile(t, dir, "b.pdf")
	addRecentFile(prefs, a)
	addRecentFile(prefs, b)

	got := loadRecentFiles(prefs)
	if len(got) != 2 || got[0] != b || got[1] != a {
		t.Fatalf("unexpected recents order: %v", got)
	}

	// Re-adding moves to front without duplicating.
	addRecentFile(prefs, a)
	got = loadRecentFiles(prefs)
	if len(got) != 2 || got[0] != a {
		t.Fatalf("expected de-duplicated move-to-front, got %v", got)
	}
}
