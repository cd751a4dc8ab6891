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
	"os"
	"time"
)

// sysinfoReport composes the 22-group `y` report, in the order it is pushed
// for a selector n<1: group 22 first, group 1 last (so group 1 ends on top
// of the stack). The per-stack-size snapshot (group 18) must be taken before
// `y` pushes anything of its own, so the caller passes it in rather than
// re-deriving it from ip.Stacks after the fact.
func (it *Interpreter) sysinfoReport(ip *IP, stackSizes []int) []Cell {
	var cells []Cell
	push := func(c Cell) { cells = append(cells, c) }
	pushVec := func(v Vector) { push(v.X); push(v.Y) }
	pushGnirts := func(s string) {
		push(0)
		for i := len(s) - 1; i >= 0; i-- {
			push(Cell(s[i]))
		}
	}

	// group 22: cell bit-width
	push(CellBits)
	// group 21: size unit enum (2 = bytes)
	push(2)
	// group 20: environment, filtered under sandbox
	env := it.Env
	if it.Sandbox {
		env = sandboxEnv(env)
	}
	for _, e := range env {
		pushGnirts(e)
	}
	push(0)
	// group 19: argv, argv[0] ends on top of this sub-group
	push(0)
	for i := len(it.Args) - 1; i >= 0; i-- {
		pushGnirts(it.Args[i])
	}
	// group 18: per-stack sizes, TOSS downwards
	for _, s := range stackSizes {
		push(Cell(s))
	}
	// group 17: number of stacks
	push(Cell(len(stackSizes)))
	// group 16: hour<<16 | minute<<8 | second, UTC
	now := time.Now().UTC()
	push(Cell(now.Hour())<<16 | Cell(now.Minute())<<8 | Cell(now.Second()))
	// group 15: (year-1900)<<16 | month<<8 | day, UTC
	push(Cell(now.Year()-1900)<<16 | Cell(now.Month())<<8 | Cell(now.Day()))
	// group 14: bounding-rectangle size (br - tl)
	tl, br := it.Space.Bounds()
	pushVec(br.Sub(tl))
	// group 13: bounding-rectangle top-left
	pushVec(tl)
	// group 12: storage offset
	pushVec(ip.Offset)
	// group 11: delta
	pushVec(ip.Delta)
	// group 10: position
	pushVec(ip.Position)
	// group 9: team id
	push(0)
	// group 8: current IP id
	push(Cell(ip.ID))
	// group 7: number of dimensions
	push(2)
	// group 6: path separator
	push(Cell(os.PathSeparator))
	// group 5: operating paradigm for `=` (1: system()-style, via the host
	// shell; 0 would mean `=` is wholly unavailable)
	push(1)
	// group 4: version
	push(Version)
	// group 3: handprint, folded the same way fingerprint ids are
	push(Cell(FoldFingerprintID([]Cell{'G', 'B', 'F', 'G'})))
	// group 2: bytes per cell
	push(Cell(CellBits / 8))
	// group 1: flags
	push(sysinfoFlags(it))

	return cells
}

// sysinfoFlags composes group 1: bit 0 concurrency (always available), bit 1
// `i`, bit 2 `o`, bit 3 `=`, all three unset under sandbox; bit 4 set when
// running standard-109 or later.
func sysinfoFlags(it *Interpreter) Cell {
	var f Cell = 1
	if !it.Sandbox {
		f |= 1<<1 | 1<<2 | 1<<3
	}
	if it.Standard >= Standard109 {
		f |= 1 << 4
	}
	return f
}

// sandboxAllowedEnv lists the environment variable name prefixes exposed
// through sysinfo group 20 under sandbox.
var sandboxAllowedEnv = []string{
	"PATH=", "LANG=", "TZ=", "HOME=", "LC_", "TERM=", "SHELL=", "USER=",
}

func sandboxEnv(env []string) []string {
	var out []string
	for _, e := range env {
		for _, allow := range sandboxAllowedEnv {
			if len(e) >= len(allow) && e[:len(allow)] == allow {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// sysinfo implements `y`. n<1 pushes the full 22-group report, group 22
// first and group 1 last (so group 1 ends on top). 1<=n<=9 selects a single
// cell from one of the nine single-cell groups. n>=10 synthesizes the full
// report into a temporary stack and pushes the cell found n positions from
// its top; if the report has fewer than n cells, the (n-size) difference is
// instead discarded from the real stack, mutating it directly.
func (it *Interpreter) sysinfo(ip *IP) {
	n := ip.TOSS().Pop()

	// the size-of-each-stack snapshot (group 18) must reflect the TOSS as it
	// stands once n has been popped but before `y` pushes anything of its
	// own.
	sizes := ip.Stacks.Sizes()

	report := it.sysinfoReport(ip, sizes)
	toss := ip.TOSS()

	if n < 1 {
		for _, c := range report {
			toss.Push(c)
		}
		return
	}

	size := Cell(len(report))
	if n <= size {
		toss.Push(report[size-n])
		return
	}
	toss.PopNDiscard(int(n - size))
}
