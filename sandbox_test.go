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

func newSandboxedInterpreter() *Interpreter {
	space := NewFungeSpace()
	return NewInterpreter(space, WithSandbox(true))
}

func TestSandboxReflectsFileOps(t *testing.T) {
	it := newSandboxedInterpreter()
	ip := it.IPs.At(0)

	ip.Delta = East
	it.loadFile(ip)
	if ip.Delta != West {
		t.Fatal("loadFile under sandbox must reflect the IP")
	}

	ip.Delta = East
	it.saveFile(ip)
	if ip.Delta != West {
		t.Fatal("saveFile under sandbox must reflect the IP")
	}
}

func TestSandboxShellExecReflects(t *testing.T) {
	it := newSandboxedInterpreter()
	ip := it.IPs.At(0)
	ip.Delta = East
	cmd := []byte("irrelevant, never run")
	ip.TOSS().PushGnirts(cmd)
	it.shellExec(ip)
	if ip.Delta != West {
		t.Fatal("shellExec under sandbox must reflect the IP")
	}
	if ip.TOSS().Len() != len(cmd)+1 {
		t.Fatal("shellExec under sandbox must not consume the command gnirts")
	}
}

func TestSandboxFiltersEnv(t *testing.T) {
	it := newSandboxedInterpreter()
	it.Env = []string{"SECRET=1"}
	ip := it.IPs.At(0)
	it.sysinfo(ip)
	// with an empty args list and no env, the only 0gnirts terminators
	// pushed by the env/argv groups are the two trailing zero cells; the
	// env value must not appear anywhere on the stack.
	for i := 1; i <= ip.TOSS().Len(); i++ {
		if ip.TOSS().GetIndexed(i) == Cell('S') {
			t.Fatal("sandboxed sysinfo must not expose environment strings")
		}
	}
}

func TestFingerprintLoadUnsafeUnderSandbox(t *testing.T) {
	it := newSandboxedInterpreter()
	Register(Fingerprint{
		ID:   0xdeadbee0,
		Safe: false,
		Load: func(*Interpreter, *IP) bool { return true },
	})
	if it.LoadFingerprint(it.IPs.At(0), 0xdeadbee0) {
		t.Fatal("an unsafe fingerprint must not load under sandbox")
	}
}
