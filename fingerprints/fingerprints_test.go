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

package fingerprints_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/db47h/befunge"
	_ "github.com/db47h/befunge/fingerprints"
)

func run(t *testing.T, src string) string {
	t.Helper()
	space := befunge.NewFungeSpace()
	space.LoadProgram([]byte(src))
	var out bytes.Buffer
	it := befunge.NewInterpreter(space,
		befunge.WithStdin(strings.NewReader("")),
		befunge.WithStdout(&out),
	)
	if err := it.Run(); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	return out.String()
}

func TestROMAFingerprintLoadsAndPushesValues(t *testing.T) {
	// Pushing "ROMA" forward in string mode, then 4 and `(`, loads the
	// fingerprint whose id folds from those same 4 cells; X then V push
	// 10 and 5, `+` sums them, `.` prints.
	got := run(t, `"ROMA"4(XV+.@`)
	if got != "15 " {
		t.Fatalf("got %q, want %q", got, "15 ")
	}
}

func TestMODUFingerprintFlooredModulo(t *testing.T) {
	// Loads MODU, computes 0-7 (-7), pushes 3, then U: the floored modulo
	// of -7 by 3 is 2 (Go/C's native % would give -1).
	got := run(t, `"MODU"4(07-3U.@`)
	if got != "2 " {
		t.Fatalf("got %q, want %q", got, "2 ")
	}
}

func TestLoadFingerprintPushesIDThen1(t *testing.T) {
	// After `(` succeeds, the stack must end with top cell 1 and, below it,
	// the folded fingerprint id (0x4e554c4c for "NULL"). `.` twice pops and
	// prints both without ever touching a NULL-installed opcode.
	got := run(t, `"NULL"4(..@`)
	if got != "1 1314212940 " {
		t.Fatalf("got %q, want %q", got, "1 1314212940 ")
	}
}

func TestNULLFingerprintOverridesWithNoop(t *testing.T) {
	// Once NULL is loaded, `A` is an installed no-op rather than a
	// reflect; the program reaches `.` and prints the 1 that `(` pushed on
	// success, untouched by `A`, instead of bouncing back into the load
	// sequence.
	got := run(t, `"NULL"4(A.@`)
	if got != "1 " {
		t.Fatalf("got %q, want %q", got, "1 ")
	}
}
