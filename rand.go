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

import "math/rand"

// Rand is the source of randomness used by the `?` opcode. The core does
// not mandate a particular generator, only uniformity over the four
// cardinal directions and seedability; callers that need reproducible runs
// supply their own via the WithRand Option.
type Rand interface {
	// Cardinal returns one of North, South, East, West with equal
	// probability.
	Cardinal() Vector
	// Seed reseeds the generator.
	Seed(seed int64)
}

// defaultRand is a math/rand-backed Rand.
type defaultRand struct {
	r *rand.Rand
}

// NewRand returns the default Rand implementation, seeded with seed.
func NewRand(seed int64) Rand {
	return &defaultRand{r: rand.New(rand.NewSource(seed))}
}

func (d *defaultRand) Cardinal() Vector {
	return cardinals[d.r.Intn(len(cardinals))]
}

func (d *defaultRand) Seed(seed int64) {
	d.r = rand.New(rand.NewSource(seed))
}
