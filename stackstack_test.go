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

func TestStackStackBeginEnd(t *testing.T) {
	ss := NewStackStack()
	ss.TOSS().Push(1)
	ss.TOSS().Push(2)
	ss.TOSS().Push(3)

	ss.Begin(2, Vector{5, 7})
	if ss.Depth() != 2 {
		t.Fatalf("Depth() after Begin = %d, want 2", ss.Depth())
	}
	if ss.TOSS().Len() != 2 {
		t.Fatalf("new TOSS len = %d, want 2 (transferred)", ss.TOSS().Len())
	}
	if got := ss.TOSS().Pop(); got != 3 {
		t.Fatalf("top of new TOSS = %d, want 3 (order preserved)", got)
	}

	offset, ok := ss.End(0)
	if !ok {
		t.Fatal("End() on a 2-deep stack-stack should succeed")
	}
	if offset != (Vector{5, 7}) {
		t.Fatalf("End() offset = %v, want {5 7}", offset)
	}
	if ss.Depth() != 1 {
		t.Fatalf("Depth() after End = %d, want 1", ss.Depth())
	}
}

func TestStackStackEndUnderflow(t *testing.T) {
	ss := NewStackStack()
	if _, ok := ss.End(0); ok {
		t.Fatal("End() on a single-stack stack-stack must reflect (ok=false)")
	}
}

func TestStackStackTransfer(t *testing.T) {
	ss := NewStackStack()
	ss.Begin(0, Vector{})
	ss.SOSS().Push(10)
	ss.SOSS().Push(20)

	if !ss.Transfer(2) {
		t.Fatal("Transfer(2) should succeed with a SOSS present")
	}
	if ss.TOSS().Pop() != 10 || ss.TOSS().Pop() != 20 {
		t.Fatal("Transfer(n>0) should pop from SOSS onto TOSS")
	}

	ss.TOSS().Push(99)
	if !ss.Transfer(-1) {
		t.Fatal("Transfer(-1) should succeed with a SOSS present")
	}
	if ss.SOSS().Pop() != 99 {
		t.Fatal("Transfer(n<0) should pop from TOSS onto SOSS")
	}
}

func TestStackStackSizesTossFirst(t *testing.T) {
	ss := NewStackStack()
	ss.TOSS().Push(1)
	ss.Begin(0, Vector{})
	ss.TOSS().Push(1)
	ss.TOSS().Push(2)

	sizes := ss.Sizes()
	if len(sizes) != 2 {
		t.Fatalf("Sizes() len = %d, want 2", len(sizes))
	}
	if sizes[0] != 2 {
		t.Fatalf("Sizes()[0] = %d, want 2 (TOSS first)", sizes[0])
	}
}
