//go:build !cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package pagesource

import "errors"

// Without cgo there is no MuPDF backend; Load fails until one is injected.
// This keeps headless CI builds working (same pattern as the UI stub).
type unavailableRasterizer struct{}

func defaultRasterizer() Rasterizer { return unavailableRasterizer{} }

func (unavailableRasterizer) Open(string) (Document, error) {
	return nil, errors.New("PDF rasterizer not built in this binary; rebuild with CGO_ENABLED=1")
}
