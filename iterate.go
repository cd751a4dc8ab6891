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

// iterate implements `k`: pop n, locate the next instruction ip would
// otherwise fetch (skipping spaces only), and execute it n times in place.
// n<0 reflects without locating or executing anything; n==0 skips the found
// instruction without ever executing it. A found `k` or `;` reflects rather
// than being iterated. `t` inside the n-times loop forks on every iteration
// (only `@`/`q` terminating the IP stops the loop early). Returns whether
// the dispatcher should still advance ip along its (possibly just-reflected)
// delta this tick: true after a reflect, false whenever iterate has already
// repositioned ip itself.
func (it *Interpreter) iterate(ip *IP) (needMove bool) {
	n := ip.TOSS().Pop()
	if n < 0 {
		ip.Reflect()
		return true
	}

	pos := ip.Position.Add(ip.Delta)
	for {
		pos = it.Space.Wrap(pos, ip.Delta)
		if it.Space.Get(pos) != Space {
			break
		}
		pos = pos.Add(ip.Delta)
	}

	c := it.Space.Get(pos)
	if c == 'k' || c == ';' {
		if it.Warnf != nil {
			it.Warnf("k cannot iterate %q at %v", rune(c), pos)
		}
		ip.Reflect()
		return true
	}
	if n == 0 {
		ip.Position = pos.Add(ip.Delta)
		return false
	}

	action := tickNone
	for i := Cell(0); i < n; i++ {
		ip.Position = pos
		if ip.Mode == ModeString {
			it.execString(ip, c)
			continue
		}
		_, action = it.execOpcode(ip, c)
		if action == tickTerminate {
			break
		}
	}
	if action != tickTerminate {
		ip.Position = pos.Add(ip.Delta)
	}
	return false
}
