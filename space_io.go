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

import (
	"bufio"
	"io"
	"os"

	"github.com/db47h/befunge/internal/bfi"
	"github.com/pkg/errors"
)

// lineBreak scans one CR, LF, or CRLF sequence starting at b[i]. It returns
// the number of bytes consumed (1 or 2) or 0 if b[i] is not a line break.
func lineBreak(b []byte, i int) int {
	switch b[i] {
	case '\n':
		return 1
	case '\r':
		if i+1 < len(b) && b[i+1] == '\n' {
			return 2
		}
		return 1
	default:
		return 0
	}
}

// loadText decodes src, starting at origin, into fs using text-mode
// line-ending conventions: CR, LF and CRLF are all accepted as line
// terminators and reset the column back to origin.X while incrementing the
// row; Form Feed (0x0C) is silently ignored; spaces are skipped rather than
// written, so that they never create sparse entries. Cells are written with
// Set, so on a fresh Funge-Space the bounding rectangle is initialized
// tightly from the first non-space cell rather than from origin.
//
// Returns the bounding box of cells written, as (maxLineWidth, numLines).
func loadText(fs *FungeSpace, origin Vector, src []byte) (size Vector) {
	pos := origin
	lineStart := origin.X
	var maxWidth Cell
	lines := Cell(1)
	for i := 0; i < len(src); {
		c := src[i]
		if n := lineBreak(src, i); n > 0 {
			if w := pos.X - lineStart; w > maxWidth {
				maxWidth = w
			}
			pos.X = origin.X
			pos.Y++
			lineStart = origin.X
			lines++
			i += n
			continue
		}
		if c == 0x0C { // form feed, reserved for the z-axis; ignored here
			i++
			continue
		}
		if Cell(c) != Space {
			fs.Set(pos, Cell(c))
		}
		pos.X++
		i++
	}
	if w := pos.X - lineStart; w > maxWidth {
		maxWidth = w
	}
	return Vector{maxWidth, lines}
}

// loadBinary decodes src, starting at origin, storing every byte literally
// (including what would be line terminators in text mode) in a single row
// along the delta (1,0).
func loadBinary(fs *FungeSpace, origin Vector, src []byte) (size Vector) {
	pos := origin
	for _, c := range src {
		fs.Set(pos, Cell(c))
		pos.X++
	}
	return Vector{Cell(len(src)), 1}
}

// LoadProgram loads the initial program text at the origin. It implements
// the "first non-space write initializes the bounding rectangle from that
// coordinate" rule so that programs not anchored at (0,0) are still tightly
// bounded.
func (fs *FungeSpace) LoadProgram(src []byte) {
	loadText(fs, Vector{}, src)
}

// LoadFile loads a file's contents into fs at offset, honoring the binary
// flag, and returns the size vector (max line width / byte count, and
// number of lines) as required by the `i` instruction.
func LoadFile(fs *FungeSpace, filename string, offset Vector, binary bool) (size Vector, err error) {
	f, err := os.Open(filename)
	if err != nil {
		return Vector{}, errors.Wrap(err, "load file")
	}
	defer f.Close()
	b, err := io.ReadAll(bufio.NewReader(f))
	if err != nil {
		return Vector{}, errors.Wrap(err, "load file")
	}
	if binary {
		return loadBinary(fs, offset, b), nil
	}
	return loadText(fs, offset, b), nil
}

// SaveFile saves the rectangular region [offset, offset+size-1] to filename.
// In binary mode (text=false) every row is written as exactly size.X bytes
// terminated by LF. In text mode, trailing spaces are trimmed from each row
// and trailing empty rows are trimmed from the end of the file.
func SaveFile(fs *FungeSpace, filename string, offset, size Vector, text bool) (err error) {
	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return errors.Wrap(err, "save file")
	}
	ew := bfi.NewErrWriter(f)
	defer func() {
		cerr := f.Close()
		if err == nil {
			err = ew.Err
		}
		if err == nil {
			err = cerr
		}
	}()
	w := bufio.NewWriter(ew)
	defer w.Flush()

	rows := make([][]byte, 0, size.Y)
	for dy := Cell(0); dy < size.Y; dy++ {
		row := make([]byte, size.X)
		for dx := Cell(0); dx < size.X; dx++ {
			row[dx] = byte(fs.Get(Vector{offset.X + dx, offset.Y + dy}))
		}
		rows = append(rows, row)
	}
	if text {
		// trim trailing spaces per row
		for i, row := range rows {
			n := len(row)
			for n > 0 && row[n-1] == byte(Space) {
				n--
			}
			rows[i] = row[:n]
		}
		// trim trailing empty rows
		for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
			rows = rows[:len(rows)-1]
		}
	}
	for _, row := range rows {
		if _, err := w.Write(row); err != nil {
			return errors.Wrap(err, "save file")
		}
		if err := w.WriteByte('\n'); err != nil {
			return errors.Wrap(err, "save file")
		}
	}
	return nil
}
