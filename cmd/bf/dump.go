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
	"io"
	"strconv"

	"github.com/danielpivonka/brainfuck-interp/internal/bfi"
	"github.com/danielpivonka/brainfuck-interp/vm"
)

// usedTape returns the tape up to the last non-zero cell or the cell pointer,
// whichever comes last.
func usedTape(i *vm.Instance) []byte {
	end := i.Ptr + 1
	for n := len(i.Tape) - 1; n >= end; n-- {
		if i.Tape[n] != 0 {
			end = n + 1
			break
		}
	}
	return i.Tape[:end]
}

// dumpVM dumps the VM registers and the used part of the tape to the
// specified io.Writer.
func dumpVM(i *vm.Instance, w io.Writer) error {
	ew := bfi.NewErrWriter(w)
	ew.WriteString("\npc: " + strconv.Itoa(i.PC) + "/" + strconv.Itoa(len(i.Program())))
	ew.WriteString("\nptr: " + strconv.Itoa(i.Ptr))
	ew.WriteString("\ninstructions: " + strconv.FormatInt(i.InstructionCount(), 10))
	ew.WriteString("\ntape: ")
	ew.WriteInts(usedTape(i))
	ew.Write([]byte{'\n'})
	return ew.Err
}
