/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package pagesource turns a PDF document into an indexable, length-queryable
// sequence of page images. All pages are decoded eagerly when the document is
// opened; the resulting Source is immutable and owned by the caller.
package pagesource

import (
	"fmt"
	"image"
	"image/draw"
	"log/slog"

	xdraw "golang.org/x/image/draw"

	applog "pdfview/internal/log"
)

// Document is an open document handle as exposed by a Rasterizer.
type Document interface {
	NumPages() int
	// Image renders page index (0-based) at the given resolution.
	Image(index int, dpi float64) (image.Image, error)
	// Metadata returns best-effort document metadata (title, author, format).
	Metadata() map[string]string
	Close() error
}

// Rasterizer opens documents for decoding. The production implementation is
// backed by MuPDF via go-fitz; tests inject fakes.
type Rasterizer interface {
	Open(path string) (Document, error)
}

// Options controls how pages are decoded.
type Options struct {
	// DPI is the rasterization resolution. Values <= 0 fall back to DefaultDPI.
	DPI float64
	// MaxDim caps the longest axis of a decoded page in pixels; larger pages
	// are downscaled once at decode time, preserving aspect ratio. Zero
	// disables the cap.
	MaxDim int
}

// DefaultDPI matches the resolution the original tool rasterizes at.
const DefaultDPI = 200

// DocInfo carries document-level metadata captured at load time.
type DocInfo struct {
	Path   string
	Title  string
	Author string
	Format string
	Pages  int
}

// Source is an ordered, immutable sequence of decoded page images.
type Source struct {
	pages []*image.RGBA
	info  DocInfo
}

// DecodeError reports that a document could not be opened or rasterized.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Load decodes every page of the document at path using the default
// rasterizer. On any failure it returns a *DecodeError and no Source; there is
// no partially decoded state.
func Load(path string, opts Options) (*Source, error) {
	return LoadWith(defaultRasterizer(), path, opts)
}

// LoadWith is Load with an explicit rasterizer, used by tests.
func LoadWith(r Rasterizer, path string, opts Options) (*Source, error) {
	l := applog.WithComponent("pagesource")
	dpi := opts.DPI
	if dpi <= 0 {
		dpi = DefaultDPI
	}

	doc, err := r.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer func() {
		if cerr := doc.Close(); cerr != nil {
			l.Warn("close document", slog.Any("err", cerr))
		}
	}()

	n := doc.NumPages()
	if n <= 0 {
		return nil, &DecodeError{Path: path, Err: fmt.Errorf("document has no pages")}
	}

	pages := make([]*image.RGBA, 0, n)
	for i := 0; i < n; i++ {
		img, err := doc.Image(i, dpi)
		if err != nil {
			return nil, &DecodeError{Path: path, Err: fmt.Errorf("render page %d: %w", i, err)}
		}
		rgba := toRGBA(img)
		if opts.MaxDim > 0 {
			rgba = capDim(rgba, opts.MaxDim)
		}
		pages = append(pages, rgba)
	}

	meta := doc.Metadata()
	info := DocInfo{
		Path:   path,
		Title:  meta["title"],
		Author: meta["author"],
		Format: meta["format"],
		Pages:  n,
	}
	l.Info("document decoded",
		slog.String("path", path),
		slog.Int("pages", n),
		slog.Float64("dpi", dpi))
	return &Source{pages: pages, info: info}, nil
}

// Len returns the number of pages.
func (s *Source) Len() int { return len(s.pages) }

// PageAt returns the decoded image for page i. It panics when i is outside
// [0, Len), like slice indexing; navigation controls are expected to gate the
// index at the boundaries.
func (s *Source) PageAt(i int) *image.RGBA { return s.pages[i] }

// Info returns the document metadata captured at load time.
func (s *Source) Info() DocInfo { return s.info }

// toRGBA converts a decoded image into *image.RGBA without copying when the
// decoder already produced one.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// capDim downscales img so that neither axis exceeds maxDim, preserving the
// aspect ratio. Images already within the cap are returned unchanged.
func capDim(img *image.RGBA, maxDim int) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxDim && h <= maxDim {
		return img
	}
	var nw, nh int
	if w >= h {
		nw = maxDim
		nh = h * maxDim / w
	} else {
		nh = maxDim
		nw = w * maxDim / h
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}
