//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package ui

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	fstorage "fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"pdfview/internal/config"
	"pdfview/internal/crash"
	applog "pdfview/internal/log"
	"pdfview/internal/pagesource"
	"pdfview/internal/telemetry"
	"pdfview/internal/version"
	"pdfview/internal/viewer"
)

// Run starts the Fyne-based desktop viewer. An optional PDF path is opened
// immediately; a failure to open it is reported but not fatal.
func Run(initialPath string) error {
	applog.Init(applog.FromEnv())
	l := applog.WithComponent("ui")
	l.Info("starting viewer")

	sess := &crash.Session{}
	defer crash.Recover(sess)

	cfg, err := config.Load()
	if err != nil {
		l.Warn("config load failed, using defaults", slog.Any("err", err))
		cfg = config.Defaults()
	}

	fyneApp := app.NewWithID("pdfview")
	w := fyneApp.NewWindow("PDF Viewer")
	// Restore window size from preferences (with sane minimums)
	prefs := fyneApp.Preferences()
	winW := prefs.IntWithFallback("window.width", 1000)
	winH := prefs.IntWithFallback("window.height", 760)
	if winW < 640 {
		winW = 640
	}
	if winH < 480 {
		winH = 480
	}
	w.Resize(fyne.NewSize(float32(winW), float32(winH)))

	status := widget.NewLabel("Open a PDF to get started")
	pageCanvas := NewPageCanvas(cfg.Annotation.StrokeColor(), cfg.Annotation.StrokeWidth)

	var src *pagesource.Source
	var pager viewer.Pager

	pageLabel := widget.NewLabel(pager.Label())
	var prevBtn, nextBtn *widget.Button

	showPage := func() {
		if src == nil || src.Len() == 0 {
			pageCanvas.SetPage(nil)
			pageLabel.SetText(pager.Label())
			prevBtn.Disable()
			nextBtn.Disable()
			return
		}
		pageCanvas.SetPage(src.PageAt(pager.Index()))
		pageLabel.SetText(pager.Label())
		sess.Page = pager.Index() + 1
		if pager.CanPrev() {
			prevBtn.Enable()
		} else {
			prevBtn.Disable()
		}
		if pager.CanNext() {
			nextBtn.Enable()
		} else {
			nextBtn.Disable()
		}
	}

	goPrev := func() {
		if pager.Prev() {
			telemetry.PageViewed()
			showPage()
		}
	}
	goNext := func() {
		if pager.Next() {
			telemetry.PageViewed()
			showPage()
		}
	}

	// openDocument replaces the current document only once the new one decoded
	// successfully; on error the previous document stays on screen.
	openDocument := func(path string) {
		s, err := pagesource.Load(path, pagesource.Options{DPI: cfg.Viewer.DPI, MaxDim: cfg.Viewer.MaxPageDim})
		if err != nil {
			l.Error("open document failed", slog.String("path", path), slog.Any("err", err))
			dialog.ShowError(err, w)
			status.SetText("Open failed: " + filepath.Base(path))
			return
		}
		src = s
		pager.Reset(src.Len())
		sess.DocumentPath = path
		sess.Page = 1

		info := src.Info()
		title := strings.TrimSpace(info.Title)
		if title == "" {
			title = filepath.Base(path)
		}
		w.SetTitle(title + " — PDF Viewer")
		status.SetText(fmt.Sprintf("%s — %d pages", filepath.Base(path), src.Len()))
		addRecentFile(prefs, path)
		telemetry.DocOpened(src.Len())
		l.Info("document opened", slog.String("path", path), slog.Int("pages", src.Len()))
		showPage()
	}

	pageCanvas.OnAnnotate = func(r image.Rectangle) {
		status.SetText(fmt.Sprintf("Annotated %d×%d px on page %s", r.Dx(), r.Dy(), pager.Label()))
		telemetry.AnnotationCommitted()
	}

	showOpenDialog := func() {
		fd := dialog.NewFileOpen(func(uc fyne.URIReadCloser, err error) {
			if err != nil {
				dialog.ShowError(err, w)
				return
			}
			if uc == nil {
				return
			}
			path := uc.URI().Path()
			_ = uc.Close()
			openDocument(path)
		}, w)
		fd.SetFilter(fstorage.NewExtensionFileFilter([]string{".pdf"}))
		fd.Show()
	}

	openBtn := widget.NewButton("Open…", showOpenDialog)
	prevBtn = widget.NewButton("Previous", goPrev)
	nextBtn = widget.NewButton("Next", goNext)
	prevBtn.Disable()
	nextBtn.Disable()

	topBar := container.NewHBox(openBtn, widget.NewSeparator(), prevBtn, pageLabel, nextBtn)
	root := container.NewBorder(topBar, status, nil, nil, pageCanvas)
	w.SetContent(root)

	// Menus
	openItem := fyne.NewMenuItem("Open…", showOpenDialog)
	recentItems := []*fyne.MenuItem{}
	for _, p := range loadRecentFiles(prefs) {
		path := p
		recentItems = append(recentItems, fyne.NewMenuItem(filepath.Base(path), func() { openDocument(path) }))
	}
	recentSub := fyne.NewMenuItem("Open Recent", nil)
	recentSub.ChildMenu = fyne.NewMenu("Open Recent", recentItems...)
	if len(recentItems) == 0 {
		recentSub.Disabled = true
	}
	fileMenu := fyne.NewMenu("File", openItem, recentSub)

	aboutItem := fyne.NewMenuItem("About PDF Viewer", func() {
		dialog.ShowInformation("PDF Viewer", "Version "+version.String(), w)
	})
	aboutMenu := fyne.NewMenu("About", aboutItem)
	w.SetMainMenu(fyne.NewMainMenu(fileMenu, aboutMenu))

	// Keyboard: Ctrl+O to open, arrows to turn pages
	w.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) {
		showOpenDialog()
	})
	w.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyLeft:
			goPrev()
		case fyne.KeyRight:
			goNext()
		}
	})

	// Persist preferences on close
	w.SetCloseIntercept(func() {
		sz := w.Canvas().Size()
		prefs.SetInt("window.width", int(sz.Width))
		prefs.SetInt("window.height", int(sz.Height))
		w.Close()
	})

	if initialPath != "" {
		openDocument(initialPath)
	}

	w.ShowAndRun()
	return nil
}

// PageCanvas shows the current page image fitted and centered inside the
// widget, and turns a primary-button drag into a rectangle baked into the
// page pixels on release.
type PageCanvas struct {
	widget.BaseWidget

	img         *image.RGBA
	drag        viewer.DragState
	strokeColor color.RGBA
	strokeWidth int

	// OnAnnotate is invoked after a rectangle was baked, with the affected
	// region in image pixel coordinates.
	OnAnnotate func(image.Rectangle)
}

func NewPageCanvas(strokeColor color.RGBA, strokeWidth int) *PageCanvas {
	pc := &PageCanvas{strokeColor: strokeColor, strokeWidth: strokeWidth}
	pc.ExtendBaseWidget(pc)
	return pc
}

// SetPage replaces the displayed page. Any drag in progress is discarded;
// a nil image clears the canvas.
func (p *PageCanvas) SetPage(img *image.RGBA) {
	p.img = img
	p.drag.Cancel()
	p.Refresh()
}

// PreferredSize sets a decent default size for the widget.
func (p *PageCanvas) PreferredSize() fyne.Size { return fyne.NewSize(800, 600) }

// fitParamsFor reports the on-screen placement of the page within the given
// widget size: top-left offset and display dimensions.
func (p *PageCanvas) fitParamsFor(size fyne.Size) (offX, offY, dispW, dispH float32) {
	if p.img == nil {
		return 0, 0, 0, 0
	}
	b := p.img.Bounds()
	dispW, dispH = viewer.FitSize(float32(b.Dx()), float32(b.Dy()), size.Width, size.Height)
	offX, offY = viewer.FitOffset(dispW, dispH, size.Width, size.Height)
	return offX, offY, dispW, dispH
}

func (p *PageCanvas) fitParams() (offX, offY, dispW, dispH float32) {
	return p.fitParamsFor(p.Size())
}

// MouseDown arms the rubber-band rectangle on a primary-button press.
func (p *PageCanvas) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary || p.img == nil {
		return
	}
	p.drag.Begin(viewer.Pt{X: e.Position.X, Y: e.Position.Y})
	p.Refresh()
}

// MouseUp commits the rectangle into the page pixels. The commit fires on
// every primary release while a drag is armed, including a press-release in
// place, which bakes a degenerate rectangle.
func (p *PageCanvas) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	r, ok := p.drag.End()
	if !ok || p.img == nil {
		p.Refresh()
		return
	}
	offX, offY, dispW, dispH := p.fitParams()
	ir := viewer.ToImageRect(r, offX, offY, dispW, dispH, p.img.Bounds())
	viewer.StrokeRect(p.img, ir, p.strokeColor, p.strokeWidth)
	p.Refresh()
	if p.OnAnnotate != nil {
		p.OnAnnotate(ir)
	}
}

// Dragged extends the rubber band; moves before a press are ignored.
func (p *PageCanvas) Dragged(e *fyne.DragEvent) {
	if p.drag.Move(viewer.Pt{X: e.Position.X, Y: e.Position.Y}) {
		p.Refresh()
	}
}

// DragEnd is a no-op; the commit happens in MouseUp so that a click without
// movement still bakes its rectangle.
func (p *PageCanvas) DragEnd() {}

// CreateRenderer builds the objects we position manually: background, the
// page image, and the rubber-band overlay.
func (p *PageCanvas) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(color.RGBA{R: 30, G: 30, B: 34, A: 255})

	img := canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	img.FillMode = canvas.ImageFillStretch
	img.ScaleMode = canvas.ImageScaleSmooth
	img.Hide()

	band := canvas.NewRectangle(color.RGBA{})
	band.StrokeColor = p.strokeColor
	band.StrokeWidth = 2
	band.Hide()

	return &pageCanvasRenderer{pc: p, objects: []fyne.CanvasObject{bg, img, band}, bg: bg, img: img, band: band}
}

// pageCanvasRenderer positions the page image from the fit transform and the
// rubber band from the drag state.
type pageCanvasRenderer struct {
	pc      *PageCanvas
	objects []fyne.CanvasObject
	bg      *canvas.Rectangle
	img     *canvas.Image
	band    *canvas.Rectangle
}

func (r *pageCanvasRenderer) Destroy()                     {}
func (r *pageCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *pageCanvasRenderer) MinSize() fyne.Size           { return fyne.NewSize(320, 240) }
func (r *pageCanvasRenderer) Refresh()                     { r.Layout(r.pc.Size()); canvas.Refresh(r.pc) }

func (r *pageCanvasRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.bg.Move(fyne.NewPos(0, 0))

	if r.pc.img == nil {
		r.img.Hide()
		r.band.Hide()
		return
	}

	offX, offY, dispW, dispH := r.pc.fitParamsFor(size)
	r.img.Image = r.pc.img
	r.img.Show()
	r.img.Resize(fyne.NewSize(dispW, dispH))
	r.img.Move(fyne.NewPos(offX, offY))
	r.img.Refresh()

	if dr, ok := r.pc.drag.Rect(); ok {
		r.band.Show()
		r.band.Resize(fyne.NewSize(dr.W, dr.H))
		r.band.Move(fyne.NewPos(dr.X, dr.Y))
	} else {
		r.band.Hide()
	}
}

// Recent file persistence helpers
const recentPrefsKey = "recent.files"
const recentMax = 10

func loadRecentFiles(p fyne.Preferences) []string {
	raw := p.StringWithFallback(recentPrefsKey, "")
	var items []string
	if strings.TrimSpace(raw) != "" {
		var tmp []string
		if err := json.Unmarshal([]byte(raw), &tmp); err == nil {
			items = tmp
		}
	}
	if items == nil {
		items = []string{}
	}
	// Filter out non-existing paths
	out := make([]string, 0, len(items))
	for _, s := range items {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, err := os.Stat(s); err == nil {
			out = append(out, s)
		}
	}
	return out
}

func saveRecentFiles(p fyne.Preferences, items []string) {
	if len(items) > recentMax {
		items = items[:recentMax]
	}
	b, _ := json.Marshal(items)
	p.SetString(recentPrefsKey, string(b))
}

func addRecentFile(p fyne.Preferences, path string) {
	if strings.TrimSpace(path) == "" {
		return
	}
	abs, _ := filepath.Abs(path)
	rec := loadRecentFiles(p)
	out := make([]string, 0, 1+len(rec))
	out = append(out, abs)
	for _, s := range rec {
		// de-dup (case-insensitive on Windows)
		if strings.EqualFold(s, abs) {
			continue
		}
		out = append(out, s)
	}
	saveRecentFiles(p, out)
}
