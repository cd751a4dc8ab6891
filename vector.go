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

// Vector is an ordered pair of cells, used both as a position in Funge-Space
// and as a per-IP delta. The two roles are interchangeable at the value
// level.
type Vector struct {
	X, Y Cell
}

// Cardinal deltas, used by direction opcodes, wrap and randomize.
var (
	North = Vector{0, -1}
	South = Vector{0, 1}
	East  = Vector{1, 0}
	West  = Vector{-1, 0}
)

var cardinals = [4]Vector{North, South, East, West}

// Add returns v+w.
func (v Vector) Add(w Vector) Vector {
	return Vector{v.X + w.X, v.Y + w.Y}
}

// Sub returns v-w.
func (v Vector) Sub(w Vector) Vector {
	return Vector{v.X - w.X, v.Y - w.Y}
}

// Neg returns -v.
func (v Vector) Neg() Vector {
	return Vector{-v.X, -v.Y}
}

// IsCardinal reports whether v is one of the four unit directions, i.e.
// |x| + |y| = 1.
func (v Vector) IsCardinal() bool {
	x, y := v.X, v.Y
	if x < 0 {
		x = -x
	}
	if y < 0 {
		y = -y
	}
	return x+y == 1
}

// LessEq reports whether v is componentwise less than or equal to w.
func (v Vector) LessEq(w Vector) bool {
	return v.X <= w.X && v.Y <= w.Y
}

// In reports whether v lies within the closed rectangle [tl, br].
func (v Vector) In(tl, br Vector) bool {
	return tl.LessEq(v) && v.LessEq(br)
}
