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

package bf

import "github.com/danielpivonka/brainfuck-interp/vm"

// placeholder is the target of a jz until its matching jnz is emitted.
const placeholder = -1

type lowering struct {
	prog vm.Program
	open []int // indices of unpatched jz instructions
}

func (l *lowering) emit(op vm.Opcode, arg int) int {
	l.prog = append(l.prog, vm.Instruction{Op: op, Arg: arg})
	return len(l.prog) - 1
}

func (l *lowering) patch(pc, target int) {
	l.prog[pc].Arg = target
}

func (l *lowering) lower(stmts []Stmt) {
	for _, s := range stmts {
		switch s.Kind {
		case Increment:
			l.emit(vm.OpChangeValue, 1)
		case Decrement:
			l.emit(vm.OpChangeValue, -1)
		case PointerUp:
			l.emit(vm.OpMovePointer, 1)
		case PointerDown:
			l.emit(vm.OpMovePointer, -1)
		case Output:
			l.emit(vm.OpOutput, 0)
		case Input:
			l.emit(vm.OpInput, 0)
		case Block:
			l.open = append(l.open, l.emit(vm.OpJumpIfZero, placeholder))
			l.lower(s.Body)
			jz := l.open[len(l.open)-1]
			l.open = l.open[:len(l.open)-1]
			jnz := l.emit(vm.OpJumpIfNonZero, jz)
			l.patch(jz, jnz+1)
		}
	}
}

// Lower flattens a parse tree into a program. Each Block becomes a jz/jnz pair
// around its lowered body: the jz targets the instruction following the jnz,
// and the jnz targets the jz.
func Lower(stmts []Stmt) vm.Program {
	l := &lowering{}
	l.lower(stmts)
	return l.prog
}

// Compile lexes, parses and lowers src. The returned error, if any, is a
// *SyntaxError.
func Compile(src string) (vm.Program, error) {
	stmts, err := Parse(Lex(src))
	if err != nil {
		return nil, err
	}
	return Lower(stmts), nil
}
