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

// Package vm implements a bytecode virtual machine for brainfuck programs.
//
// The machine operates on a circular tape of 30000 byte cells. Both cell
// values and the cell pointer wrap around, but only by a single step: the
// compiler in package lang/bf only ever emits deltas of +1 or -1, and the VM
// treats any result further out of range as an internal error.
//
// Loops are compiled to a pair of conditional jumps. A jz at index i targets
// j+1 where j is the index of its matching jnz, and that jnz targets i. A
// taken jump sets the PC to its target, a jump not taken falls through to the
// next instruction. Use Validate to check a program built by other means.
//
// Output is flushed after every byte. Input is line buffered: when the input
// queue is empty, a full line is read from the input stack and queued. Lines
// containing extended (non ASCII) characters are silently discarded.
package vm
