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

func TestIPListForkIndependence(t *testing.T) {
	l := NewIPList()
	parent := l.At(0)
	parent.TOSS().Push(42)
	parent.Delta = East

	childIdx := l.Fork(0)
	if l.Len() != 2 {
		t.Fatalf("Len() after Fork = %d, want 2", l.Len())
	}
	child := l.At(childIdx)
	if child.ID == parent.ID {
		t.Fatal("forked child must have a distinct id")
	}
	if child.Delta != West {
		t.Fatalf("child delta = %v, want %v (mirrored)", child.Delta, West)
	}

	// mutating the child's stack must not affect the parent's.
	child.TOSS().Push(7)
	if parent.TOSS().Len() != 1 {
		t.Fatalf("parent stack mutated by child push: len=%d", parent.TOSS().Len())
	}
	if child.TOSS().Len() != 2 {
		t.Fatalf("child stack len = %d, want 2", child.TOSS().Len())
	}
}

func TestIPListIndexOfAfterTerminate(t *testing.T) {
	l := NewIPList()
	id0 := l.At(0).ID
	childIdx := l.Fork(0)
	id1 := l.At(childIdx).ID

	l.Terminate(0)
	if l.IndexOf(id0) != -1 {
		t.Fatal("terminated IP must not be found by IndexOf")
	}
	if idx := l.IndexOf(id1); idx != 0 {
		t.Fatalf("surviving IP reindexed to %d, want 0", idx)
	}
}
