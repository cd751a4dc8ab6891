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
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Standard selects the dialect variant affecting string-mode space folding
// and the standard-109 sysinfo flag bit.
type Standard int

const (
	Standard93  Standard = 93
	Standard98  Standard = 98
	Standard109 Standard = 109
)

// Handprint is the fixed 4 ASCII byte interpreter id reported by sysinfo
// group 3.
const Handprint = "GBFG" // "Go Befunge"

// Version reported by sysinfo group 4.
const Version = 1

// Tracer is invoked once per executed (non-zero-tick) code-mode instruction
// when tracing is enabled, after the instruction has run and before the IP
// takes its regular step along its delta (instructions that move the IP
// themselves, such as `j`, have already done so). Cells handled in string
// mode are not traced.
type Tracer func(it *Interpreter, ip *IP, cell Cell)

// Option configures an Interpreter at construction time.
type Option func(*Interpreter)

// WithStandard selects the Befunge dialect (93, 98 or 109). Default: 98.
func WithStandard(s Standard) Option {
	return func(it *Interpreter) { it.Standard = s }
}

// WithSandbox enables or disables the sandbox, gating i/o/= and filtering
// the environment exposed via sysinfo group 20.
func WithSandbox(sandboxed bool) Option {
	return func(it *Interpreter) { it.Sandbox = sandboxed }
}

// WithFingerprints enables or disables fingerprint support entirely (the
// `-F` flag): when disabled, every uppercase letter always reflects and `(`
// /`)` always reflect.
func WithFingerprints(enabled bool) Option {
	return func(it *Interpreter) { it.FingerprintsEnabled = enabled }
}

// WithRand sets the Rand source used by `?`.
func WithRand(r Rand) Option {
	return func(it *Interpreter) { it.Rand = r }
}

// WithStdin sets the reader used by `&` and `~`.
func WithStdin(r io.Reader) Option {
	return func(it *Interpreter) { it.Stdin = NewInput(r) }
}

// WithStdout sets the writer used by `.` and `,`.
func WithStdout(w io.Writer) Option {
	return func(it *Interpreter) { it.Stdout = w }
}

// WithArgs sets the argv exposed through sysinfo group 19 (argv[0] is the
// program name).
func WithArgs(args []string) Option {
	return func(it *Interpreter) { it.Args = args }
}

// WithWarnf sets the callback used to report -W warnings; nil disables
// them.
func WithWarnf(f func(format string, a ...interface{})) Option {
	return func(it *Interpreter) { it.Warnf = f }
}

// WithTracer sets a per-instruction trace callback; nil disables tracing.
func WithTracer(t Tracer) Option {
	return func(it *Interpreter) { it.Trace = t }
}

// Interpreter ties together a Funge-Space, the live IP list, and the
// runtime configuration (dialect, sandbox, randomness, I/O) needed to run
// the fetch-decode-execute loop.
type Interpreter struct {
	Space *FungeSpace
	IPs   *IPList

	Standard            Standard
	Sandbox             bool
	FingerprintsEnabled bool

	Rand   Rand
	Stdin  *Input
	Stdout io.Writer

	Args []string
	Env  []string

	Warnf func(format string, a ...interface{})
	Trace Tracer

	// ExitCode is set by `q`, after which Run returns; when `@` empties the
	// IP list it is left at 0.
	ExitCode int
}

// NewInterpreter returns an Interpreter over space with a single initial IP,
// configured by opts. Defaults: standard-98, sandbox off, fingerprints on,
// a Rand seeded with 1, os.Stdin/os.Stdout, no warnings, no tracing.
func NewInterpreter(space *FungeSpace, opts ...Option) *Interpreter {
	it := &Interpreter{
		Space:               space,
		IPs:                 NewIPList(),
		Standard:            Standard98,
		FingerprintsEnabled: true,
		Rand:                NewRand(1),
		Stdin:               NewInput(os.Stdin),
		Stdout:              os.Stdout,
		Env:                 os.Environ(),
	}
	for _, o := range opts {
		o(it)
	}
	return it
}

// quitSignal is used internally to unwind Run when `q` executes.
type quitSignal struct{ code int }

func (quitSignal) Error() string { return "quit" }

// Run executes the scheduler until the IP list becomes empty (normal exit,
// ExitCode 0) or `q` is executed (ExitCode is the popped operand). Fatal,
// unrecoverable internal errors (out of memory class failures) are returned
// wrapped; anything recoverable is reflected and never surfaces here.
func (it *Interpreter) Run() (err error) {
	defer func() {
		if e := recover(); e != nil {
			if q, ok := e.(quitSignal); ok {
				it.ExitCode = q.code
				err = nil
				return
			}
			err = errors.Errorf("befunge: fatal: %v", e)
		}
	}()
	for it.IPs.Len() > 0 {
		for i := 0; i < it.IPs.Len(); {
			ip := it.IPs.At(i)
			action := it.tick(ip)
			switch action {
			case tickTerminate:
				it.IPs.Terminate(i)
				// do not advance i: the next IP shifted into this slot
			case tickFork:
				// the forked child was inserted at i+1; it does not run
				// again until the next pass, so skip over it.
				i += 2
			default:
				i++
			}
		}
	}
	return nil
}

type tickAction int

const (
	tickNone tickAction = iota
	tickTerminate
	tickFork
)

// tick drives ip through zero-tick instructions (space, balanced `;`
// comments) until a real, tick-consuming instruction executes, then
// advances ip along its delta unless the instruction requested otherwise.
func (it *Interpreter) tick(ip *IP) tickAction {
	for {
		ip.Position = it.Space.Wrap(ip.Position, ip.Delta)
		c := it.Space.Get(ip.Position)

		if ip.Mode == ModeString {
			it.execString(ip, c)
			ip.Position = ip.Position.Add(ip.Delta)
			return tickNone
		}

		switch c {
		case Space:
			ip.Position = ip.Position.Add(ip.Delta)
			continue
		case ';':
			it.skipComment(ip)
			continue
		}

		needMove, action := it.execOpcode(ip, c)
		if it.Trace != nil {
			it.Trace(it, ip, c)
		}
		if needMove {
			ip.Position = ip.Position.Add(ip.Delta)
		}
		return action
	}
}

// skipComment advances ip, zero-tick, to just past the matching `;`,
// wrapping as needed along the way.
func (it *Interpreter) skipComment(ip *IP) {
	ip.Position = ip.Position.Add(ip.Delta)
	for {
		ip.Position = it.Space.Wrap(ip.Position, ip.Delta)
		c := it.Space.Get(ip.Position)
		ip.Position = ip.Position.Add(ip.Delta)
		if c == ';' {
			return
		}
	}
}

// execString executes one cell while ip is in string mode.
func (it *Interpreter) execString(ip *IP, c Cell) {
	switch {
	case c == '"':
		ip.Mode = ModeCode
		ip.lastWasSpace = false
	case c == Space:
		if it.Standard >= Standard98 {
			if !ip.lastWasSpace {
				ip.TOSS().Push(c)
				ip.lastWasSpace = true
			}
		} else {
			ip.TOSS().Push(c)
		}
	default:
		ip.TOSS().Push(c)
		ip.lastWasSpace = false
	}
}

// execOpcode executes a single code-mode, tick-consuming instruction.
// Returns whether the IP should still advance along its delta afterwards,
// and a scheduler action (fork/terminate/none).
func (it *Interpreter) execOpcode(ip *IP, c Cell) (needMove bool, action tickAction) {
	needMove = true

	if c >= 'A' && c <= 'Z' {
		if !it.FingerprintsEnabled {
			ip.Reflect()
			return
		}
		h, ok := ip.Opcode(byte(c))
		if !ok {
			ip.Reflect()
			return
		}
		h(it, ip)
		return
	}

	switch {
	case c >= '0' && c <= '9':
		ip.TOSS().Push(c - '0')
		return
	case c >= 'a' && c <= 'f':
		ip.TOSS().Push(c - 'a' + 10)
		return
	}

	switch byte(c) {
	case '+':
		b, a := ip.TOSS().Pop(), ip.TOSS().Pop()
		ip.TOSS().Push(a + b)
	case '-':
		b, a := ip.TOSS().Pop(), ip.TOSS().Pop()
		ip.TOSS().Push(a - b)
	case '*':
		b, a := ip.TOSS().Pop(), ip.TOSS().Pop()
		ip.TOSS().Push(a * b)
	case '/':
		b, a := ip.TOSS().Pop(), ip.TOSS().Pop()
		ip.TOSS().Push(divide(a, b))
	case '%':
		b, a := ip.TOSS().Pop(), ip.TOSS().Pop()
		ip.TOSS().Push(modulus(a, b))
	case '!':
		ip.TOSS().Push(boolCell(ip.TOSS().Pop() == 0))
	case '`':
		b, a := ip.TOSS().Pop(), ip.TOSS().Pop()
		ip.TOSS().Push(boolCell(a > b))
	case '^':
		ip.Delta = North
	case 'v':
		ip.Delta = South
	case '>':
		ip.Delta = East
	case '<':
		ip.Delta = West
	case '?':
		ip.Delta = it.Rand.Cardinal()
	case '[':
		ip.Delta = Vector{ip.Delta.Y, -ip.Delta.X}
	case ']':
		ip.Delta = Vector{-ip.Delta.Y, ip.Delta.X}
	case 'r':
		ip.Delta = ip.Delta.Neg()
	case 'x':
		ip.Delta = ip.TOSS().PopVector()
	case '#':
		ip.Position = it.Space.Wrap(ip.Position.Add(ip.Delta), ip.Delta)
	case 'j':
		needMove = false
		it.jump(ip)
	case '_':
		if ip.TOSS().Pop() == 0 {
			ip.Delta = East
		} else {
			ip.Delta = West
		}
	case '|':
		if ip.TOSS().Pop() == 0 {
			ip.Delta = South
		} else {
			ip.Delta = North
		}
	case 'w':
		b, a := ip.TOSS().Pop(), ip.TOSS().Pop()
		switch {
		case a < b:
			ip.Delta = Vector{ip.Delta.Y, -ip.Delta.X}
		case a > b:
			ip.Delta = Vector{-ip.Delta.Y, ip.Delta.X}
		}
	case ':':
		ip.TOSS().DupTop()
	case '\\':
		ip.TOSS().SwapTop()
	case '$':
		ip.TOSS().PopDiscard()
	case 'n':
		ip.TOSS().Clear()
	case '"':
		ip.Mode = ModeString
		ip.lastWasSpace = false
	case '\'':
		needMove = false
		p := it.Space.Wrap(ip.Position.Add(ip.Delta), ip.Delta)
		ip.TOSS().Push(it.Space.Get(p))
		ip.Position = p.Add(ip.Delta)
	case 's':
		needMove = false
		p := it.Space.Wrap(ip.Position.Add(ip.Delta), ip.Delta)
		it.Space.Set(p, ip.TOSS().Pop())
		ip.Position = p.Add(ip.Delta)
	case 'g':
		v := ip.TOSS().PopVector()
		ip.TOSS().Push(it.Space.Get(ip.Offset.Add(v)))
	case 'p':
		v := ip.TOSS().PopVector()
		val := ip.TOSS().Pop()
		it.Space.Set(ip.Offset.Add(v), val)
	case '.':
		fmt.Fprintf(it.Stdout, "%d ", ip.TOSS().Pop())
	case '&':
		n, ok := it.Stdin.GetInt(10)
		if !ok {
			ip.Reflect()
		} else {
			ip.TOSS().Push(n)
		}
	case ',':
		fmt.Fprintf(it.Stdout, "%c", rune(ip.TOSS().Pop()))
	case '~':
		ch, ok := it.Stdin.GetChar()
		if !ok {
			ip.Reflect()
		} else {
			ip.TOSS().Push(Cell(ch))
		}
	case 'k':
		needMove = it.iterate(ip)
	case 'y':
		it.sysinfo(ip)
	case '{':
		needMove = false
		n := ip.TOSS().Pop()
		oldOffset := ip.Offset
		ip.Offset = ip.TOSS().PopVector()
		ip.Stacks.Begin(n, oldOffset)
		ip.Position = ip.Position.Add(ip.Delta)
	case '}':
		needMove = false
		n := ip.TOSS().Pop()
		offset, ok := ip.Stacks.End(n)
		if !ok {
			ip.Reflect()
		} else {
			ip.Offset = offset
		}
		ip.Position = ip.Position.Add(ip.Delta)
	case 'u':
		n := ip.TOSS().Pop()
		if !ip.Stacks.Transfer(n) {
			ip.Reflect()
		}
	case 'i':
		it.loadFile(ip)
	case 'o':
		it.saveFile(ip)
	case '=':
		it.shellExec(ip)
	case '(':
		if !it.FingerprintsEnabled {
			ip.Reflect()
			break
		}
		it.loadFP(ip)
	case ')':
		if !it.FingerprintsEnabled {
			ip.Reflect()
			break
		}
		it.unloadFP(ip)
	case 't':
		needMove = false
		it.IPs.Fork(it.IPs.IndexOf(ip.ID))
		ip.Position = ip.Position.Add(ip.Delta)
		action = tickFork
	case '@':
		action = tickTerminate
	case 'q':
		code := ip.TOSS().Pop()
		panic(quitSignal{int(code)})
	case 'z':
		// no-op, consumes a tick
	default:
		if it.Warnf != nil && it.Standard >= Standard98 {
			it.Warnf("unknown opcode %q at %v", rune(c), ip.Position)
		}
		ip.Reflect()
	}
	return
}

// jump implements `j`: pop n, advance n steps along the current delta
// (negative n moves backwards), wrapping once at the end.
func (it *Interpreter) jump(ip *IP) {
	n := ip.TOSS().Pop()
	d := ip.Delta
	if n < 0 {
		d = d.Neg()
		n = -n
	}
	p := ip.Position
	for i := Cell(0); i < n; i++ {
		p = p.Add(d)
	}
	ip.Position = it.Space.Wrap(p, ip.Delta)
}
