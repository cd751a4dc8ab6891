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

// Package lint provides static, -W style warnings over raw Funge-Space
// source text: unmatched `;...;` comment pairs, empty source, and (when
// fingerprints are disabled) literal uppercase-letter opcodes that can
// only ever reflect. It reuses text/scanner purely for its line/column
// position tracking, the way asm/parser.go tracks assembler diagnostics,
// redirected at a much simpler single-rune grammar.
package lint

import (
	"bytes"
	"fmt"
	"strings"
	"text/scanner"
)

const maxWarnings = 20

// Warning is a single diagnostic at a source position.
type Warning struct {
	Pos scanner.Position
	Msg string
}

// Warnings implements error over a list of Warning.
type Warnings []Warning

func (w Warnings) Error() string {
	l := make([]string, 0, len(w))
	for _, warn := range w {
		l = append(l, fmt.Sprintf("%s: %s", warn.Pos, warn.Msg))
	}
	return strings.Join(l, "\n")
}

// Check scans src and returns accumulated warnings, nil if there are none.
// filename is used only to label positions. fingerprintsEnabled mirrors
// the `-F` flag: when false, every uppercase letter in the source is
// flagged since it can only ever reflect.
func Check(filename string, src []byte, fingerprintsEnabled bool) Warnings {
	if len(bytes.TrimSpace(src)) == 0 {
		return Warnings{{
			Pos: scanner.Position{Filename: filename, Line: 1, Column: 1},
			Msg: "empty source",
		}}
	}

	var s scanner.Scanner
	s.Init(bytes.NewReader(src))
	s.Filename = filename

	var warnings Warnings
	var semiOpen *scanner.Position

	for len(warnings) < maxWarnings {
		r := s.Next()
		if r == scanner.EOF {
			break
		}
		pos := s.Pos()
		switch {
		case r == ';':
			if semiOpen == nil {
				p := pos
				semiOpen = &p
			} else {
				semiOpen = nil
			}
		case r >= 'A' && r <= 'Z' && !fingerprintsEnabled:
			warnings = append(warnings, Warning{
				Pos: pos,
				Msg: fmt.Sprintf("opcode %q always reflects with fingerprints disabled (-F)", r),
			})
		}
	}
	if semiOpen != nil && len(warnings) < maxWarnings {
		warnings = append(warnings, Warning{Pos: *semiOpen, Msg: "unmatched ';' comment"})
	}
	if len(warnings) == 0 {
		return nil
	}
	return warnings
}
