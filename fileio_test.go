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
	"path/filepath"
	"testing"
)

func TestLoadFilePushesSizeThenOffset(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "prog.bf")
	if err := os.WriteFile(name, []byte("ab\ncde"), 0644); err != nil {
		t.Fatal(err)
	}

	it := NewInterpreter(NewFungeSpace())
	ip := it.IPs.At(0)
	ip.TOSS().PushVector(Vector{10, 20}) // destination vector
	ip.TOSS().Push(0)                    // flags: text mode
	ip.TOSS().PushGnirts([]byte(name))

	it.loadFile(ip)

	if got := ip.TOSS().PopVector(); got != (Vector{10, 20}) {
		t.Fatalf("loadFile offset on top = %v, want {10 20}", got)
	}
	if got := ip.TOSS().PopVector(); got != (Vector{3, 2}) {
		t.Fatalf("loadFile size below offset = %v, want {3 2}", got)
	}
	if it.Space.Get(Vector{10, 20}) != 'a' {
		t.Fatal("file contents not loaded at destination")
	}
	if it.Space.Get(Vector{11, 21}) != 'd' {
		t.Fatal("second line not loaded at destination row+1")
	}
}
