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

package asm_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/danielpivonka/brainfuck-interp/asm"
)

func ExampleAssemble() {
	code := `
		( clear the current cell )
		:loop
		jz done
			add -1
		jnz loop
		:done
		move 1`
	p, err := asm.Assemble("clear", strings.NewReader(code))
	if err != nil {
		panic(err)
	}
	fmt.Println(p)

	_, err = asm.Assemble("errors", strings.NewReader("jz nowhere\nmove"))
	fmt.Println(err)

	// Output:
	// [jz 3 add -1 jnz 0 move 1]
	// errors:2:5: Missing argument for move
	// errors:1:4: Missing label definition for nowhere
}

func ExampleDisassembleAll() {
	p, _ := asm.Assemble("loop", strings.NewReader("in [ end out in ] 1 :end"))
	asm.DisassembleAll(p, os.Stdout)

	// Output:
	//      0	in
	//      1	jz 5
	//      2	out
	//      3	in
	//      4	jnz 1
}
