/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package viewer

import "fmt"

// Pager holds the current page index for a document of a fixed length.
// Boundary safety lives here: navigation controls are enabled and disabled
// from CanPrev/CanNext so out-of-range indices are never requested.
type Pager struct {
	index int
	count int
}

// Reset points the pager at page 0 of a document with n pages. n <= 0 leaves
// the pager empty (no document).
func (p *Pager) Reset(n int) {
	p.index = 0
	if n < 0 {
		n = 0
	}
	p.count = n
}

// Index returns the current zero-based page index.
func (p *Pager) Index() int { return p.index }

// Count returns the number of pages, 0 when no document is loaded.
func (p *Pager) Count() int { return p.count }

// CanPrev reports whether a previous page exists.
func (p *Pager) CanPrev() bool { return p.index > 0 }

// CanNext reports whether a next page exists.
func (p *Pager) CanNext() bool { return p.count > 0 && p.index < p.count-1 }

// Prev moves to the previous page; it reports false at the first page.
func (p *Pager) Prev() bool {
	if !p.CanPrev() {
		return false
	}
	p.index--
	return true
}

// Next moves to the next page; it reports false at the last page.
func (p *Pager) Next() bool {
	if !p.CanNext() {
		return false
	}
	p.index++
	return true
}

// Label formats the position for display, e.g. "1 / 3", or "0 / 0" when no
// document is loaded.
func (p *Pager) Label() string {
	if p.count == 0 {
		return "0 / 0"
	}
	return fmt.Sprintf("%d / %d", p.index+1, p.count)
}
