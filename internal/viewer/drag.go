/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package viewer

// DragState tracks an in-progress rectangle drag. It is an explicit
// IDLE/DRAGGING machine: begin and current are either both meaningful
// (active) or both absent (idle). An explicit flag is used instead of a
// zero-point sentinel so a drag starting at the origin is not ambiguous.
type DragState struct {
	begin   Pt
	current Pt
	active  bool
}

// Begin starts a drag at p. Begin and current coincide until the pointer
// moves, so an immediate release commits a zero-area rectangle.
func (d *DragState) Begin(p Pt) {
	d.begin = p
	d.current = p
	d.active = true
}

// Move updates the destination point while a drag is active. Pointer motion
// with no active drag is ignored. Reports whether the state changed.
func (d *DragState) Move(p Pt) bool {
	if !d.active {
		return false
	}
	d.current = p
	return true
}

// Active reports whether a drag is in progress.
func (d *DragState) Active() bool { return d.active }

// Rect returns the normalized rectangle spanned so far, for the live
// rubber-band overlay. ok is false when idle.
func (d *DragState) Rect() (r Rect, ok bool) {
	if !d.active {
		return Rect{}, false
	}
	return Normalized(d.begin, d.current), true
}

// End commits the drag: it returns the normalized rectangle spanned by the
// begin and destination points and resets to idle. The commit always fires
// when a drag was active, including the degenerate press-release-in-place
// case. ok is false when no drag was active.
func (d *DragState) End() (r Rect, ok bool) {
	if !d.active {
		return Rect{}, false
	}
	r = Normalized(d.begin, d.current)
	d.reset()
	return r, true
}

// Cancel discards any in-progress drag without committing, used when the
// underlying page image is replaced mid-drag.
func (d *DragState) Cancel() { d.reset() }

func (d *DragState) reset() {
	d.begin = Pt{}
	d.current = Pt{}
	d.active = false
}
