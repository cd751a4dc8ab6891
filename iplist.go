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

// IPList is the ordered sequence of live IPs. It supports fork (insert
// immediately after a given IP) and termination. Indices into it shift as
// IPs are inserted or removed, so code that needs to keep tracking a
// specific IP across a fork (the `k` iterate combinator) must look it up by
// id via IndexOf rather than caching a slice index.
type IPList struct {
	ips    []*IP
	nextID int
}

// NewIPList returns a list holding a single initial IP (id 0).
func NewIPList() *IPList {
	l := &IPList{nextID: 1}
	l.ips = []*IP{NewIP()}
	return l
}

// Len returns the number of live IPs.
func (l *IPList) Len() int { return len(l.ips) }

// At returns the IP at index i.
func (l *IPList) At(i int) *IP { return l.ips[i] }

// IndexOf returns the index of the IP with the given id, or -1 if it is no
// longer in the list (it may have been terminated).
func (l *IPList) IndexOf(id int) int {
	for i, ip := range l.ips {
		if ip.ID == id {
			return i
		}
	}
	return -1
}

// Fork duplicates the IP at index i in place: the child is inserted
// immediately after the parent, its delta is reversed relative to the
// parent's (mirrored), it is advanced one step in its new direction, and it
// is assigned the next unused id. Returns the index of the new child.
func (l *IPList) Fork(i int) int {
	parent := l.ips[i]
	childID := l.nextID
	l.nextID++
	child := parent.clone(childID)
	child.Delta = child.Delta.Neg()
	child.Position = child.Position.Add(child.Delta)

	l.ips = append(l.ips, nil)
	copy(l.ips[i+2:], l.ips[i+1:])
	l.ips[i+1] = child
	return i + 1
}

// Terminate removes the IP at index i.
func (l *IPList) Terminate(i int) {
	l.ips = append(l.ips[:i], l.ips[i+1:]...)
}
