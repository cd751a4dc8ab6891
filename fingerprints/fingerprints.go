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

// Package fingerprints provides a small, illustrative set of fingerprint
// implementations (NULL, ROMA, MODU), each registering itself with the
// befunge core from its own init, the way lang/retro plugs a StringCodec
// and a ShrinkSave into the Ngaro core without the core importing it back.
// Programs that want fingerprint support blank-import this package.
package fingerprints

import "github.com/db47h/befunge"

func init() {
	registerNULL()
	registerROMA()
	registerMODU()
}

// foldID folds a 4-letter fingerprint name the same way `(`/`)` do.
func foldID(name string) uint32 {
	cells := make([]befunge.Cell, len(name))
	for i := 0; i < len(name); i++ {
		cells[i] = befunge.Cell(name[i])
	}
	return befunge.FoldFingerprintID(cells)
}

// registerNULL installs the NULL fingerprint: every letter it advertises is
// a pure no-op. It exists to exercise the load/unload machinery itself
// rather than to do anything useful, mirroring cfunge's own NULL
// fingerprint used in its test suite.
func registerNULL() {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	noop := func(*befunge.Interpreter, *befunge.IP) {}
	befunge.Register(befunge.Fingerprint{
		ID:      foldID("NULL"),
		Opcodes: letters,
		Safe:    true,
		Load: func(it *befunge.Interpreter, ip *befunge.IP) bool {
			for i := 0; i < len(letters); i++ {
				ip.PushOpcode(letters[i], noop)
			}
			return true
		},
	})
}

// registerROMA installs ROMA: Roman numerals. Each of its seven letters
// pushes the corresponding decimal value.
func registerROMA() {
	values := map[byte]befunge.Cell{
		'C': 100, 'D': 500, 'I': 1, 'L': 50, 'M': 1000, 'V': 5, 'X': 10,
	}
	befunge.Register(befunge.Fingerprint{
		ID:      foldID("ROMA"),
		Opcodes: "CDILMVX",
		Safe:    true,
		Load: func(it *befunge.Interpreter, ip *befunge.IP) bool {
			for letter, v := range values {
				v := v
				ip.PushOpcode(letter, func(it *befunge.Interpreter, ip *befunge.IP) {
					ip.TOSS().Push(v)
				})
			}
			return true
		},
	})
}

// registerMODU installs MODU: modulo arithmetic extension. `M` is the
// remainder with the sign of the dividend (Go and C's native `%`); `U` is
// the remainder with the sign of the divisor (floored modulo).
func registerMODU() {
	befunge.Register(befunge.Fingerprint{
		ID:      foldID("MODU"),
		Opcodes: "MU",
		Safe:    true,
		Load: func(it *befunge.Interpreter, ip *befunge.IP) bool {
			ip.PushOpcode('M', func(it *befunge.Interpreter, ip *befunge.IP) {
				b, a := ip.TOSS().Pop(), ip.TOSS().Pop()
				if b == 0 {
					ip.TOSS().Push(0)
					return
				}
				ip.TOSS().Push(a % b)
			})
			ip.PushOpcode('U', func(it *befunge.Interpreter, ip *befunge.IP) {
				b, a := ip.TOSS().Pop(), ip.TOSS().Pop()
				if b == 0 {
					ip.TOSS().Push(0)
					return
				}
				r := a % b
				if r != 0 && (r < 0) != (b < 0) {
					r += b
				}
				ip.TOSS().Push(r)
			})
			return true
		},
	})
}
