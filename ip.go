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

// Mode is the IP's code/string mode flag.
type Mode int

const (
	// ModeCode is the normal opcode-execution mode.
	ModeCode Mode = iota
	// ModeString is entered by `"` and left by the next `"`.
	ModeString
)

// FingerprintState is an opaque per-IP, per-fingerprint state slot. Stateful
// fingerprints (a high-resolution timer mark, a relative-addressing flag
// under the subroutine fingerprint, ...) stash their data here keyed by
// fingerprint id; stateless fingerprints never touch it. CloneState is
// called on fork so that a fingerprint can decide whether its state is
// shared, reset, or deep-copied in the child; the default (nil CloneState)
// is "reset to nil in the child", appropriate for the common stateless case.
type FingerprintState interface {
	CloneState() FingerprintState
}

// IP is a single instruction pointer: its position, its movement delta, a
// per-IP storage offset added to g/p/i/o operands, its code/string mode, a
// unique id, a stack-stack, the 26 per-letter fingerprint override stacks,
// and an opaque per-fingerprint state map.
type IP struct {
	Position Vector
	Delta    Vector
	Offset   Vector
	Mode     Mode

	// lastWasSpace implements standard-98 SGML-style space folding in
	// string mode: a run of spaces in the source only pushes one space.
	lastWasSpace bool

	ID int

	Stacks *StackStack

	// overrides holds, for each of the 26 uppercase letters, a stack of
	// installed opcode handlers; the top of the stack is the active
	// handler. An empty override stack means "reflect".
	overrides [26]*letterStack

	// fpState holds opaque per-fingerprint state, keyed by fingerprint id.
	fpState map[uint32]FingerprintState
}

// letterStack is a small stack of fingerprint-installed Opcode handlers for
// a single uppercase letter.
type letterStack struct {
	handlers []Opcode
}

func (l *letterStack) push(h Opcode) { l.handlers = append(l.handlers, h) }

func (l *letterStack) pop() {
	if n := len(l.handlers); n > 0 {
		l.handlers = l.handlers[:n-1]
	}
}

func (l *letterStack) top() (Opcode, bool) {
	if n := len(l.handlers); n > 0 {
		return l.handlers[n-1], true
	}
	return nil, false
}

// NewIP returns the initial IP: position (0,0), delta (1,0), storage offset
// (0,0), code mode, a single empty stack, id 0.
func NewIP() *IP {
	return &IP{
		Delta:  East,
		Mode:   ModeCode,
		Stacks: NewStackStack(),
	}
}

// Reflect negates the IP's delta, the canonical failure signal for an
// instruction that cannot perform its effect.
func (ip *IP) Reflect() {
	ip.Delta = ip.Delta.Neg()
}

// TOSS is a convenience accessor for the IP's top stack.
func (ip *IP) TOSS() *Stack {
	return ip.Stacks.TOSS()
}

// PushOpcode installs h as the new top handler for letter (an uppercase
// ASCII byte 'A'..'Z'), as fingerprint loaders do.
func (ip *IP) PushOpcode(letter byte, h Opcode) {
	idx := letter - 'A'
	if ip.overrides[idx] == nil {
		ip.overrides[idx] = &letterStack{}
	}
	ip.overrides[idx].push(h)
}

// PopOpcode removes the current top handler for letter, a no-op if there is
// none.
func (ip *IP) PopOpcode(letter byte) {
	idx := letter - 'A'
	if ip.overrides[idx] != nil {
		ip.overrides[idx].pop()
	}
}

// Opcode looks up the active handler for letter. ok is false if fingerprints
// never installed anything for this letter (the dispatcher must reflect).
func (ip *IP) Opcode(letter byte) (Opcode, bool) {
	idx := letter - 'A'
	if ip.overrides[idx] == nil {
		return nil, false
	}
	return ip.overrides[idx].top()
}

// State returns the per-fingerprint state for id, or nil if none was set.
func (ip *IP) State(id uint32) FingerprintState {
	return ip.fpState[id]
}

// SetState stores per-fingerprint state for id.
func (ip *IP) SetState(id uint32, s FingerprintState) {
	if ip.fpState == nil {
		ip.fpState = make(map[uint32]FingerprintState)
	}
	ip.fpState[id] = s
}

// clone deep-copies ip for fork (`t`), assigning it newID. The stack-stack
// and all 26 override stacks are deep-copied so that the two IPs are fully
// independent; per-fingerprint state is cloned via FingerprintState.CloneState
// when present, or dropped (stateless fingerprints have none to clone).
func (ip *IP) clone(newID int) *IP {
	c := &IP{
		Position: ip.Position,
		Delta:    ip.Delta,
		Offset:   ip.Offset,
		Mode:     ip.Mode,
		ID:       newID,
		Stacks:   ip.Stacks.Clone(),
	}
	for i, ov := range ip.overrides {
		if ov == nil {
			continue
		}
		handlers := make([]Opcode, len(ov.handlers))
		copy(handlers, ov.handlers)
		c.overrides[i] = &letterStack{handlers: handlers}
	}
	if len(ip.fpState) > 0 {
		c.fpState = make(map[uint32]FingerprintState, len(ip.fpState))
		for id, st := range ip.fpState {
			if st != nil {
				c.fpState[id] = st.CloneState()
			}
		}
	}
	return c
}
