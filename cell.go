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

// MinCell and MaxCell are the bounds of Cell for the build's configured
// width.
const (
	MinCell = Cell(-1) << (CellBits - 1)
	MaxCell = ^MinCell
)

// divide implements total integer division: divide(a, 0) = 0 and
// divide(MinCell, -1) = MinCell, never trapping on overflow or
// division-by-zero.
func divide(a, b Cell) Cell {
	switch {
	case b == 0:
		return 0
	case a == MinCell && b == -1:
		return MinCell
	default:
		return a / b
	}
}

// modulus implements total integer modulus: modulus(a, 0) = 0 and
// modulus(MinCell, -1) = 0.
func modulus(a, b Cell) Cell {
	switch {
	case b == 0:
		return 0
	case a == MinCell && b == -1:
		return 0
	default:
		return a % b
	}
}

// boolCell converts a Go bool to Befunge's truth encoding (0 or 1).
func boolCell(b bool) Cell {
	if b {
		return 1
	}
	return 0
}
