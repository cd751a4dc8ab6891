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

// Space is 0x20, the default value of every cell in Funge-Space.
const Space Cell = 0x20

// windowWidth and windowHeight size the dense tile centred on the origin;
// coordinates outside it fall through to the sparse map. Chosen generously
// enough to cover the vast majority of Befunge sources without ever
// touching the map.
const (
	windowWidth  = 512
	windowHeight = 1024
	windowOffX   = windowWidth / 2
	windowOffY   = windowHeight / 2
)

// FungeSpace is the sparse, unbounded, wrap-around 2D grid that holds a
// Befunge program. The zero value is not usable; use NewFungeSpace.
type FungeSpace struct {
	dense  [windowWidth * windowHeight]Cell
	sparse map[Vector]Cell

	// bounding rectangle: every non-space cell satisfies tl <= p <= br.
	// hasRect is false until the first non-space write.
	tl, br  Vector
	hasRect bool
}

// NewFungeSpace returns an empty Funge-Space (all cells read as Space).
func NewFungeSpace() *FungeSpace {
	fs := &FungeSpace{sparse: make(map[Vector]Cell)}
	for i := range fs.dense {
		fs.dense[i] = Space
	}
	return fs
}

func inWindow(v Vector) (idx int, ok bool) {
	x := int(v.X) + windowOffX
	y := int(v.Y) + windowOffY
	if x < 0 || x >= windowWidth || y < 0 || y >= windowHeight {
		return 0, false
	}
	return y*windowWidth + x, true
}

// Get returns the cell at v, Space if nothing was ever written there.
func (fs *FungeSpace) Get(v Vector) Cell {
	if idx, ok := inWindow(v); ok {
		return fs.dense[idx]
	}
	if c, ok := fs.sparse[v]; ok {
		return c
	}
	return Space
}

// rawSet writes c at v without touching the bounding rectangle; used by Set
// below.
func (fs *FungeSpace) rawSet(v Vector, c Cell) {
	if idx, ok := inWindow(v); ok {
		fs.dense[idx] = c
		return
	}
	if c == Space {
		delete(fs.sparse, v)
		return
	}
	fs.sparse[v] = c
}

// Set writes c at v and, for non-space c, expands the bounding rectangle to
// include v. Writes of Space never contract the rectangle.
func (fs *FungeSpace) Set(v Vector, c Cell) {
	fs.rawSet(v, c)
	if c != Space {
		fs.expand(v)
	}
}

// expand grows the bounding rectangle (or initializes it) to include v.
func (fs *FungeSpace) expand(v Vector) {
	if !fs.hasRect {
		fs.tl, fs.br, fs.hasRect = v, v, true
		return
	}
	if v.X < fs.tl.X {
		fs.tl.X = v.X
	}
	if v.Y < fs.tl.Y {
		fs.tl.Y = v.Y
	}
	if v.X > fs.br.X {
		fs.br.X = v.X
	}
	if v.Y > fs.br.Y {
		fs.br.Y = v.Y
	}
}

// Bounds returns the current bounding rectangle's top-left and bottom-right
// corners, inclusive. Before any non-space write, both are the zero vector.
func (fs *FungeSpace) Bounds() (tl, br Vector) {
	return fs.tl, fs.br
}

// Size returns the bounding rectangle's width and height (br-tl+1,
// componentwise). Sysinfo group 14 reports br-tl instead.
func (fs *FungeSpace) Size() Vector {
	return Vector{fs.br.X - fs.tl.X + 1, fs.br.Y - fs.tl.Y + 1}
}

// Wrap implements the Lahey-space wrapping algorithm: given an IP about to
// execute at p with the given delta, returns the position the IP should
// actually execute at. If p already lies within the bounding rectangle, p is
// returned unchanged.
func (fs *FungeSpace) Wrap(p, delta Vector) Vector {
	tl, br := fs.tl, fs.br
	if p.In(tl, br) {
		return p
	}
	if delta.IsCardinal() {
		// fast path: snap onto the opposite edge.
		switch {
		case delta.X > 0:
			p.X = tl.X
		case delta.X < 0:
			p.X = br.X
		case delta.Y > 0:
			p.Y = tl.Y
		case delta.Y < 0:
			p.Y = br.Y
		}
		return p
	}
	// arbitrary delta: step backwards until back inside, keep stepping
	// backwards until past the opposite edge, then one step forward.
	for !p.In(tl, br) {
		p = p.Sub(delta)
	}
	for p.In(tl, br) {
		p = p.Sub(delta)
	}
	return p.Add(delta)
}
