/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package viewer

import "testing"

func TestDragLifecycle(t *testing.T) {
	var d DragState
	if d.Active() {
		t.Fatalf("new state should be idle")
	}
	if _, ok := d.Rect(); ok {
		t.Fatalf("idle state should expose no rect")
	}

	d.Begin(Pt{X: 10, Y: 20})
	if !d.Active() {
		t.Fatalf("state should be active after Begin")
	}
	r, ok := d.Rect()
	if !ok || r != R(10, 20, 0, 0) {
		t.Fatalf("rect right after press should be the zero-area point, got %+v ok=%v", r, ok)
	}

	if !d.Move(Pt{X: 40, Y: 60}) {
		t.Fatalf("Move during drag should report a change")
	}
	r, ok = d.Rect()
	if !ok || r != R(10, 20, 30, 40) {
		t.Fatalf("live rect = %+v ok=%v, want {10 20 30 40}", r, ok)
	}

	got, ok := d.End()
	if !ok || got != R(10, 20, 30, 40) {
		t.Fatalf("End = %+v ok=%v, want committed {10 20 30 40}", got, ok)
	}
	if d.Active() {
		t.Fatalf("state should reset to idle after End")
	}
}

func TestDragPressReleaseInPlaceCommitsDegenerateRect(t *testing.T) {
	var d DragState
	d.Begin(Pt{X: 5, Y: 5})
	r, ok := d.End()
	if !ok {
		t.Fatalf("commit must fire on release even without movement")
	}
	if r != R(5, 5, 0, 0) {
		t.Fatalf("expected zero-area rect at press point, got %+v", r)
	}
}

func TestDragDirectionsCommitIdentically(t *testing.T) {
	var down, up DragState
	down.Begin(Pt{X: 10, Y: 10})
	down.Move(Pt{X: 50, Y: 70})
	r1, _ := down.End()

	up.Begin(Pt{X: 50, Y: 70})
	up.Move(Pt{X: 10, Y: 10})
	r2, _ := up.End()

	if r1 != r2 {
		t.Fatalf("up-left and down-right drags differ: %+v vs %+v", r1, r2)
	}
}

func TestDragMoveWhileIdleIsIgnored(t *testing.T) {
	var d DragState
	if d.Move(Pt{X: 100, Y: 100}) {
		t.Fatalf("Move without an active drag must be ignored")
	}
	if _, ok := d.End(); ok {
		t.Fatalf("End without an active drag must not commit")
	}
}

func TestDragAtOriginIsNotConfusedWithIdle(t *testing.T) {
	var d DragState
	d.Begin(Pt{})
	if !d.Active() {
		t.Fatalf("a drag starting at the origin must still be active")
	}
	if _, ok := d.End(); !ok {
		t.Fatalf("a drag at the origin must commit")
	}
}

func TestDragCancelDiscards(t *testing.T) {
	var d DragState
	d.Begin(Pt{X: 1, Y: 2})
	d.Move(Pt{X: 3, Y: 4})
	d.Cancel()
	if d.Active() {
		t.Fatalf("Cancel should return to idle")
	}
	if _, ok := d.End(); ok {
		t.Fatalf("End after Cancel must not commit")
	}
}
