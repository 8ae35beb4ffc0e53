// This file is part of brainfuck-interp - https://github.com/danielpivonka/brainfuck-interp
//
// Copyright 2026 The brainfuck-interp Authors
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
	"io"
	"os"

	"github.com/danielpivonka/brainfuck-interp/asm"
	"github.com/danielpivonka/brainfuck-interp/lang/bf"
	"github.com/danielpivonka/brainfuck-interp/vm"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type fileList []string

func (f *fileList) String() string     { return "" }
func (f *fileList) Set(s string) error { *f = append(*f, s); return nil }
func (f *fileList) Get() interface{}   { return *f }

var (
	noLine      bool
	debug       bool
	trace       bool
	dump        bool
	disasm      bool
	prompt      string
	history     string
	srcFileName string
	imgFileName string
	outFileName string
	cfgFileName string
)

func newLogger(debug, trace bool) zerolog.Logger {
	lvl := zerolog.WarnLevel
	switch {
	case trace:
		lvl = zerolog.TraceLevel
	case debug:
		lvl = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(lvl)
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()
}

// applyConfig copies the settings of cfg for all flags not explicitly set on
// the command line.
func applyConfig(cfg *config) {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if !set["prompt"] && cfg.Prompt != "" {
		prompt = cfg.Prompt
	}
	if !set["history"] && cfg.History != "" {
		history = cfg.History
	}
	if !set["debug"] {
		debug = debug || cfg.Debug
	}
	if !set["trace"] {
		trace = trace || cfg.Trace
	}
	if !set["dump"] {
		dump = dump || cfg.Dump
	}
	if !set["noline"] {
		noLine = noLine || cfg.NoLine
	}
}

// loadProgram compiles the source file or loads the bytecode image. Exactly
// one of them must be specified.
func loadProgram(src, img string) (vm.Program, error) {
	switch {
	case src != "" && img != "":
		return nil, errors.New("cannot use both a source file and -image")
	case img != "":
		return vm.LoadFile(img)
	case src == "":
		return nil, errors.New("no source file specified")
	}
	b, err := os.ReadFile(src)
	if err != nil {
		return nil, errors.Wrap(err, "read failed")
	}
	p, err := bf.Compile(string(b))
	if err != nil {
		return nil, errors.Wrap(err, src)
	}
	return p, nil
}

func atExit(i *vm.Instance, err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	if i != nil {
		if i.PC >= 0 && i.PC < len(i.Program()) {
			fmt.Fprintf(os.Stderr, "PC: %v (%v), Ptr: %v, Cell: %v\n", i.PC, i.Program()[i.PC], i.Ptr, i.Cell())
		} else {
			fmt.Fprintf(os.Stderr, "PC: %v, Ptr: %v, Cell: %v\n", i.PC, i.Ptr, i.Cell())
		}
	}
	os.Exit(1)
}

func main() {
	// check exit condition
	var err error
	var i *vm.Instance

	stdout := bufio.NewWriter(os.Stdout)

	// flush output, catch and log errors
	defer func() {
		if i != nil && dump {
			if derr := dumpVM(i, stdout); err == nil {
				err = derr
			}
		}
		stdout.Flush()
		atExit(i, err)
	}()

	var withFiles fileList

	flag.StringVar(&srcFileName, "file", "", "Load program source from file `filename`")
	flag.StringVar(&imgFileName, "image", "", "Load compiled program from bytecode image `filename`")
	flag.StringVar(&outFileName, "o", "", "Save compiled program to bytecode image `filename` and exit")
	flag.BoolVar(&disasm, "disasm", false, "print a disassembly of the program and exit")
	flag.Var(&withFiles, "with", "Add `filename` to the input list (can be specified multiple times)")
	flag.BoolVar(&dump, "dump", false, "dump VM state and tape upon exit")
	flag.BoolVar(&noLine, "noline", false, "disable line editing for terminal input")
	flag.StringVar(&prompt, "prompt", "", "input prompt `string` for terminal input")
	flag.StringVar(&history, "history", "", "line editing history `filename`")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	flag.BoolVar(&trace, "trace", false, "trace executed instructions to stderr")
	flag.StringVar(&cfgFileName, "config", "", "read settings from `filename` (default $HOME/"+configName+")")

	flag.Parse()

	cfgPath, mustExist := cfgFileName, cfgFileName != ""
	if !mustExist {
		cfgPath = defaultConfigPath()
	}
	cfg, err := loadConfig(cfgPath, mustExist)
	if err != nil {
		return
	}
	applyConfig(cfg)

	log := newLogger(debug, trace)
	if len(cfg.Undecoded) > 0 {
		log.Warn().Str("config", cfgPath).Strs("keys", cfg.Undecoded).Msg("unknown configuration keys")
	}

	if srcFileName == "" && flag.NArg() > 0 {
		srcFileName = flag.Arg(0)
	}
	prog, err := loadProgram(srcFileName, imgFileName)
	if err != nil {
		return
	}
	log.Debug().Int("instructions", len(prog)).Msg("program loaded")

	if outFileName != "" {
		err = vm.SaveFile(outFileName, prog)
		return
	}
	if disasm {
		err = asm.DisassembleAll(prog, stdout)
		return
	}

	var opts = []vm.Option{vm.Logger(log)}

	if !noLine && isTerminal(0) && isTerminal(1) {
		// stdin is a terminal, read lines with a line editor. The editor
		// needs to know about pending output to redraw it.
		var restore func()
		if restore, err = saveTerminal(0); err != nil {
			return
		}
		defer restore()
		ln, closeEditor := newLineEditor(history)
		defer closeEditor()
		out := &lineTracker{w: stdout}
		opts = append(opts,
			vm.Output(out),
			vm.Lines(&promptReader{ln: ln, prompt: prompt, out: out}))
		log.Debug().Msg("line editing enabled")
	} else {
		opts = append(opts,
			vm.Output(stdout),
			vm.Input(bufio.NewReader(os.Stdin)))
	}

	// append -with files to input stack in reverse order so that they load
	// in order of appearance on the command line.
	for n := len(withFiles) - 1; n >= 0; n-- {
		var f *os.File
		f, err = os.Open(withFiles[n])
		if err != nil {
			return
		}
		opts = append(opts, vm.Input(f))
	}

	i, err = vm.New(prog, opts...)
	if err != nil {
		return
	}
	if err = i.Run(); errors.Cause(err) == io.EOF {
		log.Debug().Int64("instructions", i.InstructionCount()).Msg("input exhausted")
		err = nil
	}
}
