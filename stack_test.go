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
	"bytes"
	"testing"
)

func TestStackPopEmptyIsZero(t *testing.T) {
	s := NewStack(0)
	if v := s.Pop(); v != 0 {
		t.Fatalf("Pop() on empty stack = %d, want 0", v)
	}
	if v := s.Peek(); v != 0 {
		t.Fatalf("Peek() on empty stack = %d, want 0", v)
	}
}

func TestStackPushPop(t *testing.T) {
	s := NewStack(4)
	s.Push(1)
	s.Push(2)
	s.Push(3)
	if v := s.Pop(); v != 3 {
		t.Fatalf("Pop() = %d, want 3", v)
	}
	s.DupTop()
	if s.Len() != 3 || s.Peek() != 2 {
		t.Fatalf("after DupTop: len=%d top=%d", s.Len(), s.Peek())
	}
	s.PopDiscard()
	s.SwapTop()
	if s.Pop() != 1 || s.Pop() != 2 {
		t.Fatal("SwapTop did not exchange the top two elements")
	}
}

func TestStackVectorRoundTrip(t *testing.T) {
	s := NewStack(4)
	v := Vector{X: 3, Y: -7}
	s.PushVector(v)
	got := s.PopVector()
	if got != v {
		t.Fatalf("vector round-trip: got %v, want %v", got, v)
	}
}

func TestStackGnirtsRoundTrip(t *testing.T) {
	s := NewStack(8)
	want := []byte("hello")
	s.PushGnirts(want)
	got := s.PopGnirts()
	if !bytes.Equal(got, want) {
		t.Fatalf("gnirts round-trip: got %q, want %q", got, want)
	}
}

func TestStackGetIndexed(t *testing.T) {
	s := NewStack(4)
	s.Push(10)
	s.Push(20)
	s.Push(30)
	if s.GetIndexed(1) != 10 {
		t.Fatalf("GetIndexed(1) = %d, want 10 (bottom)", s.GetIndexed(1))
	}
	if s.GetIndexed(3) != 30 {
		t.Fatalf("GetIndexed(3) = %d, want 30 (top)", s.GetIndexed(3))
	}
	if s.GetIndexed(0) != 0 || s.GetIndexed(4) != 0 {
		t.Fatal("GetIndexed out of range should be 0")
	}
}
