//go:build cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package pagesource

import (
	"image"

	"github.com/gen2brain/go-fitz"
)

// fitzRasterizer opens documents with MuPDF via go-fitz.
type fitzRasterizer struct{}

func defaultRasterizer() Rasterizer { return fitzRasterizer{} }

func (fitzRasterizer) Open(path string) (Document, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, err
	}
	return &fitzDocument{doc: doc}, nil
}

type fitzDocument struct {
	doc *fitz.Document
}

func (d *fitzDocument) NumPages() int { return d.doc.NumPage() }

func (d *fitzDocument) Image(index int, dpi float64) (image.Image, error) {
	return d.doc.ImageDPI(index, dpi)
}

func (d *fitzDocument) Metadata() map[string]string { return d.doc.Metadata() }

func (d *fitzDocument) Close() error { return d.doc.Close() }
