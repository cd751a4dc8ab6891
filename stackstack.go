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

// StackStack is a non-empty ordered sequence of Stacks. The last element is
// the TOSS (top of stack-stack), the one before it the SOSS.
type StackStack struct {
	stacks []*Stack
}

// NewStackStack returns a StackStack holding a single empty Stack.
func NewStackStack() *StackStack {
	return &StackStack{stacks: []*Stack{NewStack(64)}}
}

// TOSS returns the top stack.
func (ss *StackStack) TOSS() *Stack {
	return ss.stacks[len(ss.stacks)-1]
}

// SOSS returns the second stack, or nil if there is only one stack.
func (ss *StackStack) SOSS() *Stack {
	if len(ss.stacks) < 2 {
		return nil
	}
	return ss.stacks[len(ss.stacks)-2]
}

// Depth returns the number of stacks in the stack-stack.
func (ss *StackStack) Depth() int {
	return len(ss.stacks)
}

// Sizes returns the element counts of every stack, from the TOSS downwards.
func (ss *StackStack) Sizes() []int {
	sizes := make([]int, len(ss.stacks))
	for i := range ss.stacks {
		sizes[i] = ss.stacks[len(ss.stacks)-1-i].Len()
	}
	return sizes
}

// transfer moves n values between src and dst, as used by Begin/End/Transfer.
//
// n > 0: pop n values off src and push them to dst preserving their
// visible (bottom-to-top) order.
// n < 0: pop -n values off dst and push them to src, also preserving order.
// n == 0: no-op.
func transfer(src, dst *Stack, n Cell) {
	switch {
	case n > 0:
		buf := make([]Cell, n)
		for i := int(n) - 1; i >= 0; i-- {
			buf[i] = src.Pop()
		}
		for _, v := range buf {
			dst.Push(v)
		}
	case n < 0:
		buf := make([]Cell, -n)
		for i := int(-n) - 1; i >= 0; i-- {
			buf[i] = dst.Pop()
		}
		for _, v := range buf {
			src.Push(v)
		}
	}
}

// Begin implements the `{` operation: it pushes a fresh empty TOSS, moves n
// values from the old TOSS to the new one (order-preserving for n > 0,
// padding the old TOSS with zeros for n < 0), and stores oldOffset (the IP's
// storage offset prior to the call, which the caller must capture before
// calling Begin) on the old TOSS (now the SOSS). It returns nothing; setting
// the IP's new storage offset is left to the caller.
//
// newOffset must be evaluated by the caller before any mutation happens;
// Begin itself performs none of that evaluation, it only records oldOffset.
func (ss *StackStack) Begin(n Cell, oldOffset Vector) {
	oldTOSS := ss.TOSS()
	newTOSS := NewStack(64)
	ss.stacks = append(ss.stacks, newTOSS)
	transfer(oldTOSS, newTOSS, n)
	oldTOSS.PushVector(oldOffset)
}

// End implements the `}` operation: it pops the stored storage offset off
// the new SOSS (the stack below the one being discarded), transfers n values
// from the discarded TOSS to the SOSS (discarding extra values on the old
// TOSS when n < 0), and discards the old TOSS. Returns the storage offset to
// restore and ok=false if there was only one stack (End must reflect in that
// case, and the stack-stack is left unchanged).
func (ss *StackStack) End(n Cell) (offset Vector, ok bool) {
	if len(ss.stacks) < 2 {
		return Vector{}, false
	}
	oldTOSS := ss.stacks[len(ss.stacks)-1]
	soss := ss.stacks[len(ss.stacks)-2]
	offset = soss.PopVector()
	transfer(oldTOSS, soss, n)
	ss.stacks = ss.stacks[:len(ss.stacks)-1]
	return offset, true
}

// Transfer implements the `u` operation: moves n values between TOSS and
// SOSS, popping each value (so the visible order is reversed relative to
// Begin/End). n > 0 moves from SOSS to TOSS, n < 0 moves from TOSS to SOSS.
// Returns ok=false (a no-op) if there is no SOSS.
func (ss *StackStack) Transfer(n Cell) (ok bool) {
	soss := ss.SOSS()
	if soss == nil {
		return false
	}
	toss := ss.TOSS()
	switch {
	case n > 0:
		for i := Cell(0); i < n; i++ {
			toss.Push(soss.Pop())
		}
	case n < 0:
		for i := Cell(0); i < -n; i++ {
			soss.Push(toss.Pop())
		}
	}
	return true
}

// Clone deep-copies the entire stack-stack, for use by IP fork.
func (ss *StackStack) Clone() *StackStack {
	clone := &StackStack{stacks: make([]*Stack, len(ss.stacks))}
	for i, s := range ss.stacks {
		data := make([]Cell, len(s.data))
		copy(data, s.data)
		clone.stacks[i] = &Stack{data: data}
	}
	return clone
}
