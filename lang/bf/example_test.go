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

package bf_test

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/danielpivonka/brainfuck-interp/asm"
	"github.com/danielpivonka/brainfuck-interp/lang/bf"
	"github.com/pkg/errors"
)

const hello = `++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++.`

func ExampleRun() {
	_, err := bf.Run(hello, nil, os.Stdout)
	fmt.Println(err)

	// Output:
	// Hello World!
	// <nil>
}

func ExampleRun_echo() {
	// copy input to output until input is exhausted
	i, err := bf.Run(",[.,]", strings.NewReader("AB"), os.Stdout)
	fmt.Println()
	fmt.Println(errors.Cause(err) == io.EOF, i.PC)

	// Output:
	// AB
	// true 3
}

func ExampleRun_syntaxError() {
	for _, src := range []string{"+.[", "+.]"} {
		i, err := bf.Run(src, nil, os.Stdout)
		fmt.Println(i == nil, err)
	}

	// Output:
	// true 1:3: unterminated loop
	// true 1:3: unmatched closing marker
}

func ExampleCompile() {
	p, err := bf.Compile("+[->+<]")
	if err != nil {
		panic(err)
	}
	asm.DisassembleAll(p, os.Stdout)

	// Output:
	//      0	add 1
	//      1	jz 7
	//      2	add -1
	//      3	move 1
	//      4	add 1
	//      5	move -1
	//      6	jnz 1
}
