// This file is part of befunge - https://github.com/db47h/befunge
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package befunge

import "testing"

func TestFungeSpaceGetDefaultsToSpace(t *testing.T) {
	fs := NewFungeSpace()
	if fs.Get(Vector{100, -100}) != Space {
		t.Fatal("unwritten cell should read as Space")
	}
}

func TestFungeSpaceBoundsMonotone(t *testing.T) {
	fs := NewFungeSpace()
	fs.Set(Vector{2, 2}, 'x')
	tl, br := fs.Bounds()
	if tl != (Vector{2, 2}) || br != (Vector{2, 2}) {
		t.Fatalf("first write bounds = %v,%v, want {2 2},{2 2}", tl, br)
	}
	fs.Set(Vector{-3, 5}, 'y')
	tl, br = fs.Bounds()
	if tl != (Vector{-3, 2}) || br != (Vector{2, 5}) {
		t.Fatalf("bounds after second write = %v,%v, want {-3 2},{2 5}", tl, br)
	}
	// writing a space never shrinks the bounding rectangle.
	fs.Set(Vector{2, 2}, Space)
	tl2, br2 := fs.Bounds()
	if tl2 != tl || br2 != br {
		t.Fatal("writing Space must not shrink the bounding rectangle")
	}
}

func TestFungeSpaceWrapCardinal(t *testing.T) {
	fs := NewFungeSpace()
	fs.Set(Vector{0, 0}, 'a')
	fs.Set(Vector{4, 0}, 'b')
	// moving east past the right edge wraps to the left edge.
	got := fs.Wrap(Vector{5, 0}, East)
	if got != (Vector{0, 0}) {
		t.Fatalf("Wrap east overflow = %v, want {0 0}", got)
	}
	got = fs.Wrap(Vector{-1, 0}, West)
	if got != (Vector{4, 0}) {
		t.Fatalf("Wrap west underflow = %v, want {4 0}", got)
	}
}

func TestFungeSpaceWrapIdempotentInsideBounds(t *testing.T) {
	fs := NewFungeSpace()
	fs.Set(Vector{0, 0}, 'a')
	fs.Set(Vector{4, 4}, 'b')
	p := Vector{2, 2}
	if got := fs.Wrap(p, East); got != p {
		t.Fatalf("Wrap of an in-bounds point must be a no-op: got %v, want %v", got, p)
	}
}

func TestFungeSpaceWrapDiagonal(t *testing.T) {
	fs := NewFungeSpace()
	fs.Set(Vector{0, 0}, 'a')
	fs.Set(Vector{3, 3}, 'b')
	got := fs.Wrap(Vector{4, 4}, Vector{1, 1})
	if !got.In(Vector{0, 0}, Vector{3, 3}) {
		t.Fatalf("Wrap with a diagonal delta must land back inside bounds, got %v", got)
	}
}

func TestLoadProgram(t *testing.T) {
	fs := NewFungeSpace()
	fs.LoadProgram([]byte("12+\n34*"))
	if fs.Get(Vector{0, 0}) != '1' {
		t.Fatal("first line not loaded at origin")
	}
	if fs.Get(Vector{0, 1}) != '3' {
		t.Fatal("second line not loaded at (0,1)")
	}
	tl, br := fs.Bounds()
	if tl != (Vector{0, 0}) || br.Y != 1 {
		t.Fatalf("bounds after load = %v,%v", tl, br)
	}
}
