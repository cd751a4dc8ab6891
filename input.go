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
)

// Input is a single line-buffered stdin reader backing the `&` (read
// integer) and `~` (read character) opcodes.
type Input struct {
	r   *bufio.Reader
	buf []byte
	eof bool
}

// NewInput wraps r as a line-buffered Input.
func NewInput(r io.Reader) *Input {
	return &Input{r: bufio.NewReader(r)}
}

// fill refills buf by reading one full line (including its trailing
// newline, if any) when it is empty. Returns false on EOF with nothing left
// to read.
func (in *Input) fill() bool {
	if len(in.buf) > 0 {
		return true
	}
	if in.eof {
		return false
	}
	line, err := in.r.ReadBytes('\n')
	if len(line) > 0 {
		in.buf = line
	}
	if err != nil {
		in.eof = true
	}
	return len(in.buf) > 0
}

// GetChar returns the next byte from the buffer, refilling it one line at a
// time as needed. ok is false at EOF.
func (in *Input) GetChar() (c byte, ok bool) {
	if !in.fill() {
		return 0, false
	}
	c = in.buf[0]
	in.buf = in.buf[1:]
	return c, true
}

func digitValue(c byte, base int) (int, bool) {
	var v int
	switch {
	case c >= '0' && c <= '9':
		v = int(c - '0')
	case c >= 'a' && c <= 'z':
		v = int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		v = int(c-'A') + 10
	default:
		return 0, false
	}
	if v >= base {
		return 0, false
	}
	return v, true
}

// GetInt scans the buffer for the first character that is a digit in base
// (1..36; base 1 accepts unary '1' digits only), then parses subsequent
// digits up to the first non-digit, clamping the value to MaxCell once it
// would overflow a Cell. If that stop character is a newline, the rest of the
// buffered line is consumed; otherwise it is left for the next read. ok is
// false at EOF before any digit was found.
func (in *Input) GetInt(base int) (n Cell, ok bool) {
	if base < 1 {
		base = 10
	}
	scanBase := base
	if base == 1 {
		scanBase = 2 // unary: only '1' is a valid digit, see below
	}
	// skip to the first valid digit
	for {
		if !in.fill() {
			return 0, false
		}
		c := in.buf[0]
		if base == 1 {
			if c == '1' {
				break
			}
		} else if _, valid := digitValue(c, scanBase); valid {
			break
		}
		in.buf = in.buf[1:]
	}
	var acc Cell
	for in.fill() {
		c := in.buf[0]
		if base == 1 {
			if c != '1' {
				break
			}
			acc++
			in.buf = in.buf[1:]
			continue
		}
		v, valid := digitValue(c, scanBase)
		if !valid {
			break
		}
		if acc > (MaxCell-Cell(v))/Cell(base) { // overflow, clamp
			acc = MaxCell
			in.buf = in.buf[1:]
			continue
		}
		acc = acc*Cell(base) + Cell(v)
		in.buf = in.buf[1:]
	}
	// a trailing newline consumes the rest of the buffered line.
	if len(in.buf) > 0 && in.buf[0] == '\n' {
		in.buf = nil
	}
	return acc, true
}
