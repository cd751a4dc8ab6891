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

//go:build !cell32

package befunge

// Cell is the raw signed integer type stored in Funge-Space and on stacks.
// Its width is fixed at build time; this is the default 64 bit build, build
// with -tags cell32 for a 32 bit cell.
type Cell int64

// CellBits is the width of Cell in bits, as reported by sysinfo group 22.
const CellBits = 64
