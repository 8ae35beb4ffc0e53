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

// Package asm provides utility functions to assemble and disassemble VM
// bytecode.
//
// Supported assembler mnemonics:
//
//	Instructions with a check mark in the "arg" column expect an argument
//	in the following token.
//
//	opcode	asm	alias	arg	description
//	------	---	-----	---	---------------------------------------------------------
//	0	add	+	✓	add the argument to the current cell
//	1	move	mv	✓	add the argument to the cell pointer
//	2	out	.		write the current cell to the output
//	3	in	,		read one byte of input into the current cell
//	4	jz	[	✓	jump to the address in argument if the current cell is 0
//	5	jnz	]	✓	jump to the address in argument if the current cell is not 0
//
// Any delta assembles fine for add and move, but the VM only wraps around by a
// single step: a result further out of range causes a run time error.
//
// Comments:
//
// Comments are placed between parentheses, which must be surrounded by
// whitespace:
//
//	( this is a comment )
//
// Labels:
//
// Labels are defined by prefixing them with a colon and refer to the address
// of the next instruction. Jump arguments can be either a label name or an
// integer address:
//
//	:loop
//		jz end
//		add -1
//		jnz loop
//	:end
//
// Integers:
//
// Integer arguments are parsed with strconv.ParseInt with a base of 0, so
// hexadecimal (0x) or octal (0) prefixes are accepted.
package asm
