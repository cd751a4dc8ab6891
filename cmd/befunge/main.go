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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/db47h/befunge"
	"github.com/db47h/befunge/internal/bfi"
	"github.com/db47h/befunge/lint"
	"github.com/pkg/errors"

	_ "github.com/db47h/befunge/fingerprints"
)

// standard is a flag.Value wrapping befunge.Standard, the way cmd/retro's
// cellSizeBits wraps a restricted set of valid integers.
type standard befunge.Standard

func (s *standard) String() string { return strconv.Itoa(int(*s)) }
func (s *standard) Set(v string) error {
	n, err := strconv.Atoi(v)
	if err != nil {
		return errors.Wrap(err, "integer conversion failed")
	}
	switch n {
	case 93, 98, 109:
		*s = standard(n)
		return nil
	default:
		return errors.Errorf("standard %d not supported (want 93, 98 or 109)", n)
	}
}
func (s *standard) Get() interface{} { return befunge.Standard(*s) }

var (
	stdSel      = standard(befunge.Standard98)
	noFP        bool
	listFP      bool
	sandbox     bool
	traceLevel  int
	showVersion bool
	warn        bool
	seed        int64
)

func atExit(it *befunge.Interpreter, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "befunge: %+v\n", err)
	os.Exit(1)
}

func listFingerprints() {
	fmt.Println("no statically known fingerprints are advertised separately from the binary;")
	fmt.Println("blank-import github.com/db47h/befunge/fingerprints (or your own package) to")
	fmt.Println("register NULL, ROMA and MODU, then load them with `(` at runtime.")
}

func main() {
	var err error
	var it *befunge.Interpreter

	flag.Var(&stdSel, "s", "Befunge standard to emulate: 93, 98 or 109")
	flag.BoolVar(&noFP, "F", false, "disable fingerprint support entirely")
	flag.BoolVar(&listFP, "f", false, "list known fingerprints and exit")
	flag.BoolVar(&sandbox, "S", false, "run in sandbox mode (disable i, o, = and env passthrough)")
	flag.IntVar(&traceLevel, "t", 0, "trace level: 0 none, 1 instruction trace, 2 instruction+stack trace")
	flag.BoolVar(&showVersion, "V", false, "print version and exit")
	flag.BoolVar(&warn, "W", false, "enable static source warnings")
	flag.Int64Var(&seed, "seed", 1, "seed for the `?` random direction generator")
	flag.Parse()

	if showVersion {
		fmt.Printf("befunge %d (%s)\n", befunge.Version, befunge.Handprint)
		return
	}
	if listFP {
		listFingerprints()
		return
	}

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: befunge [flags] program.bf [args...]")
		flag.PrintDefaults()
		os.Exit(2)
	}
	filename := args[0]

	defer func() {
		atExit(it, err)
	}()

	src, err := os.ReadFile(filename)
	if err != nil {
		err = errors.Wrapf(err, "read %s", filename)
		return
	}

	if warn {
		if warnings := lint.Check(filename, src, !noFP); warnings != nil {
			fmt.Fprintln(os.Stderr, warnings.Error())
		}
	}

	space := befunge.NewFungeSpace()
	space.LoadProgram(src)

	stdoutW := bfi.NewErrWriter(os.Stdout)
	stdout := bufio.NewWriter(stdoutW)

	var tracer befunge.Tracer
	switch {
	case traceLevel >= 2:
		tracer = func(it *befunge.Interpreter, ip *befunge.IP, cell befunge.Cell) {
			fmt.Fprintf(os.Stderr, "ip%d %v %q depth=%d\n", ip.ID, ip.Position, rune(cell), ip.Stacks.Depth())
		}
	case traceLevel == 1:
		tracer = func(it *befunge.Interpreter, ip *befunge.IP, cell befunge.Cell) {
			fmt.Fprintf(os.Stderr, "ip%d %v %q\n", ip.ID, ip.Position, rune(cell))
		}
	}

	it = befunge.NewInterpreter(space,
		befunge.WithStandard(befunge.Standard(stdSel)),
		befunge.WithSandbox(sandbox),
		befunge.WithFingerprints(!noFP),
		befunge.WithRand(befunge.NewRand(seed)),
		befunge.WithStdout(stdout),
		befunge.WithArgs(args),
		befunge.WithTracer(tracer),
		befunge.WithWarnf(func(format string, a ...interface{}) {
			if warn {
				fmt.Fprintf(os.Stderr, format+"\n", a...)
			}
		}),
	)

	err = it.Run()
	stdout.Flush()
	if stdoutW.Err != nil && err == nil {
		err = stdoutW.Err
	}
	if err == nil {
		os.Exit(it.ExitCode)
	}
}
