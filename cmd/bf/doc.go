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

// The bf command line tool compiles and runs brainfuck programs with the
// packages github.com/danielpivonka/brainfuck-interp/lang/bf and
// github.com/danielpivonka/brainfuck-interp/vm.
//
// Usage:
//
//	bf [flags] [filename]
//
//	-config filename
//		  read settings from filename (default $HOME/.bf.toml)
//	-debug
//		  enable debug diagnostics
//	-disasm
//		  print a disassembly of the program and exit
//	-dump
//		  dump VM state and tape upon exit
//	-file filename
//		  Load program source from file filename
//	-history filename
//		  line editing history filename
//	-image filename
//		  Load compiled program from bytecode image filename
//	-noline
//		  disable line editing for terminal input
//	-o filename
//		  Save compiled program to bytecode image filename and exit
//	-prompt string
//		  input prompt string for terminal input
//	-trace
//		  trace executed instructions to stderr
//	-with filename
//		  Add filename to the input list (can be specified multiple times)
//
// The program source can be given either with -file or as the first
// argument.
//
// -debug: will print a full stacktrace should the VM crash, as well as the
// VM registers.
//
// -with: the specified files are fed to the program as input before stdin. If
// specified multiple times, files will be fed in order of appearance on the
// command line.
//
// -o and -image: a compiled program can be saved as a bytecode image and run
// later without compiling the source again:
//
//	bf -o hello.bfc hello.b
//	bf -image hello.bfc
//
// When both stdin and stdout are terminals, input lines are read with a line
// editor (unless -noline is set). The terminal state is restored on exit.
//
// Configuration file:
//
// Settings not given on the command line are read from a TOML file:
//
//	prompt = "> "
//	history = "~/.bf_history"
//	debug = false
//	trace = false
//	dump = false
//	noline = false
//
// Running out of input is a normal exit condition.
package main
