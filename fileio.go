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
	"os/exec"
)

// loadFile implements `i`: pop a 0gnirts filename, a flags cell (bit 0 set
// selects binary mode) and a destination vector, load the file into
// Funge-Space at offset+vector, and push the resulting size vector followed
// by the destination vector it was given. Always reflects under sandbox.
func (it *Interpreter) loadFile(ip *IP) {
	if it.Sandbox {
		ip.Reflect()
		return
	}
	filename := string(ip.TOSS().PopGnirts())
	flags := ip.TOSS().Pop()
	dst := ip.TOSS().PopVector()
	size, err := LoadFile(it.Space, filename, ip.Offset.Add(dst), flags&1 != 0)
	if err != nil {
		ip.Reflect()
		return
	}
	ip.TOSS().PushVector(size)
	ip.TOSS().PushVector(dst)
}

// saveFile implements `o`: pop a 0gnirts filename, a flags cell (bit 0
// clear selects text mode, trimming trailing spaces per line), an origin
// vector and a size vector, and write that rectangle of Funge-Space out.
// Always reflects under sandbox.
func (it *Interpreter) saveFile(ip *IP) {
	if it.Sandbox {
		ip.Reflect()
		return
	}
	filename := string(ip.TOSS().PopGnirts())
	flags := ip.TOSS().Pop()
	origin := ip.TOSS().PopVector()
	size := ip.TOSS().PopVector()
	err := SaveFile(it.Space, filename, ip.Offset.Add(origin), size, flags&1 == 0)
	if err != nil {
		ip.Reflect()
	}
}

// shellExec implements `=`: pop a 0gnirts shell command, run it through the
// host shell, and push its exit code. Always reflects under sandbox, without
// running anything.
func (it *Interpreter) shellExec(ip *IP) {
	if it.Sandbox {
		ip.Reflect()
		return
	}
	cmdline := string(ip.TOSS().PopGnirts())
	cmd := exec.Command("/bin/sh", "-c", cmdline)
	cmd.Stdin = os.Stdin
	cmd.Stdout = it.Stdout
	cmd.Stderr = os.Stderr
	code := 0
	if err := cmd.Run(); err != nil {
		if ee, ok := err.(*exec.ExitError); ok {
			code = ee.ExitCode()
		} else {
			code = -1
		}
	}
	ip.TOSS().Push(Cell(code))
}

// loadFP implements `(`: pop a fingerprint id encoded as n cells (n itself
// popped first), look it up, and install its opcodes on ip. On success
// pushes the id followed by 1. Reflects if the id is malformed, unknown, or
// unsafe under sandbox.
func (it *Interpreter) loadFP(ip *IP) {
	n := ip.TOSS().Pop()
	if n <= 0 || n > 4 {
		ip.Reflect()
		return
	}
	cells := make([]Cell, n)
	for i := Cell(0); i < n; i++ {
		cells[n-1-i] = ip.TOSS().Pop()
	}
	id := FoldFingerprintID(cells)
	if !it.LoadFingerprint(ip, id) {
		ip.Reflect()
		return
	}
	ip.TOSS().Push(Cell(id))
	ip.TOSS().Push(1)
}

// unloadFP implements `)`: the inverse of loadFP, popping one handler off
// each of the fingerprint's letters.
func (it *Interpreter) unloadFP(ip *IP) {
	n := ip.TOSS().Pop()
	if n <= 0 || n > 4 {
		ip.Reflect()
		return
	}
	cells := make([]Cell, n)
	for i := Cell(0); i < n; i++ {
		cells[n-1-i] = ip.TOSS().Pop()
	}
	if !it.UnloadFingerprint(ip, FoldFingerprintID(cells)) {
		ip.Reflect()
	}
}
