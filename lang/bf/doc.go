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

// Package bf compiles brainfuck source code to bytecode for package vm.
//
// Compilation runs in three passes: Lex maps source characters to tokens,
// Parse builds a tree where loops are nested blocks, and Lower flattens the
// tree into a vm.Program with resolved jump targets.
//
//	char	token		instruction
//	----	-----		-----------
//	+	Increment	add 1
//	-	Decrement	add -1
//	>	PointerUp	move 1
//	<	PointerDown	move -1
//	.	Output		out
//	,	Input		in
//	[	LoopOpen	jz (after matching jnz)
//	]	LoopClose	jnz (matching jz)
//
// All other characters are comments.
package bf
