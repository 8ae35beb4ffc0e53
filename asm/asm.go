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

package asm

import (
	"fmt"
	"io"
	"strconv"

	"github.com/danielpivonka/brainfuck-interp/internal/bfi"
	"github.com/danielpivonka/brainfuck-interp/vm"
)

var opcodes = [...][]string{
	{"add", "+"},
	{"move", "mv"},
	{"out", "."},
	{"in", ","},
	{"jz", "["},
	{"jnz", "]"},
}

var opcodeIndex = make(map[string]vm.Opcode)

func init() {
	for op, names := range opcodes {
		for _, n := range names {
			opcodeIndex[n] = vm.Opcode(op)
		}
	}
}

// Assemble compiles assembly read from the supplied io.Reader and returns the
// resulting program and error if any.
//
// Then name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, can safely be cast to an ErrAsm value that
// will contain up to 10 entries.
//
// Assemble does not call vm.Validate: programs with unbalanced or misdirected
// jumps can be assembled on purpose.
func Assemble(name string, r io.Reader) (vm.Program, error) {
	p := newParser()
	return p.parse(name, r)
}

// Disassemble writes a disassembly of the instruction at position pc to the
// specified io.Writer and returns the position of the next instruction and
// any write error.
func Disassemble(p vm.Program, pc int, w io.Writer) (next int, err error) {
	ew := bfi.NewErrWriter(w)
	ins := p[pc]
	if int(ins.Op) < len(opcodes) {
		io.WriteString(ew, opcodes[ins.Op][0])
	} else {
		io.WriteString(ew, ins.Op.String())
	}
	if ins.Op.HasArg() {
		ew.Write([]byte{' '})
		io.WriteString(ew, strconv.Itoa(ins.Arg))
	}
	return pc + 1, ew.Err
}

// DisassembleAll writes a disassembly of all instructions in p to the
// specified io.Writer, one instruction per line, prefixed with its address.
// It will return any write error.
func DisassembleAll(p vm.Program, w io.Writer) error {
	ew := bfi.NewErrWriter(w)
	for pc := 0; pc < len(p); {
		fmt.Fprintf(ew, "% 6d\t", pc)
		pc, _ = Disassemble(p, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
