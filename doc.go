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

// Package befunge implements the core of a Befunge-93/98/109 interpreter:
// Funge-Space, the IP state machine and scheduler, the stack-stack, the
// fingerprint manager and the fetch-decode-execute dispatcher.
//
// Individual fingerprint implementations are not part of this package; see
// the sibling fingerprints package for a small set of examples and
// Register for how to add more.
package befunge
