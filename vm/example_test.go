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

package vm_test

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/danielpivonka/brainfuck-interp/asm"
	"github.com/danielpivonka/brainfuck-interp/vm"
	"github.com/pkg/errors"
)

// Shows how to load a program and run it with custom input.
func ExampleInstance_Run() {
	// upper-case every input byte: add -32, output, loop until input runs out.
	prog, err := asm.Assemble("upcase", strings.NewReader(`
		in
		:loop
		jz done
			add -32 out
			in
		jnz loop
		:done`))
	if err != nil {
		panic(err)
	}

	i, err := vm.New(prog,
		vm.Input(strings.NewReader("hello")),
		vm.Output(os.Stdout))
	if err != nil {
		panic(err)
	}

	// the program stops when the input is exhausted.
	err = i.Run()
	fmt.Println()
	fmt.Println(errors.Cause(err) == io.EOF, i.PC)

	// Output:
	// HELLO
	// true 4
}

func ExampleValidate() {
	fmt.Println(vm.Validate(vm.Program{
		{Op: vm.OpJumpIfZero, Arg: 2},
		{Op: vm.OpJumpIfNonZero, Arg: 0},
	}))
	fmt.Println(vm.Validate(vm.Program{
		{Op: vm.OpJumpIfZero, Arg: 1},
		{Op: vm.OpJumpIfNonZero, Arg: 0},
	}))

	// Output:
	// <nil>
	// jz @pc=0: target 1, expected 2
}
