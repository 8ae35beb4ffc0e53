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

package vm

import (
	"strconv"

	"github.com/pkg/errors"
)

// Opcode identifies the operation performed by an Instruction.
type Opcode uint8

// VM opcodes.
const (
	OpChangeValue Opcode = iota
	OpMovePointer
	OpOutput
	OpInput
	OpJumpIfZero
	OpJumpIfNonZero
)

var opcodes = [...]string{
	"add",
	"move",
	"out",
	"in",
	"jz",
	"jnz",
}

// String returns the assembler mnemonic for op.
func (op Opcode) String() string {
	if int(op) < len(opcodes) {
		return opcodes[op]
	}
	return "op(" + strconv.Itoa(int(op)) + ")"
}

// HasArg returns true if instructions with this opcode use their argument.
func (op Opcode) HasArg() bool {
	switch op {
	case OpOutput, OpInput:
		return false
	}
	return true
}

// IsJump returns true for the two conditional jumps.
func (op Opcode) IsJump() bool {
	return op == OpJumpIfZero || op == OpJumpIfNonZero
}

// Instruction is a single bytecode instruction. For OpChangeValue and
// OpMovePointer, Arg is a signed delta. For jumps, Arg is the absolute index
// of the instruction to execute next when the jump is taken.
type Instruction struct {
	Op  Opcode
	Arg int
}

func (ins Instruction) String() string {
	if !ins.Op.HasArg() {
		return ins.Op.String()
	}
	return ins.Op.String() + " " + strconv.Itoa(ins.Arg)
}

// Program is a flat sequence of instructions.
type Program []Instruction

// Validate checks that p only contains known opcodes and that every
// OpJumpIfZero at index i is paired with an OpJumpIfNonZero at index j > i
// such that the former targets j+1 and the latter targets i.
//
// Validate does not check deltas: these are enforced at run time.
func Validate(p Program) error {
	var open []int
	for pc, ins := range p {
		switch ins.Op {
		case OpChangeValue, OpMovePointer, OpOutput, OpInput:
		case OpJumpIfZero:
			open = append(open, pc)
		case OpJumpIfNonZero:
			if len(open) == 0 {
				return errors.Errorf("jnz @pc=%d: no matching jz", pc)
			}
			jz := open[len(open)-1]
			open = open[:len(open)-1]
			if ins.Arg != jz {
				return errors.Errorf("jnz @pc=%d: target %d, expected %d", pc, ins.Arg, jz)
			}
			if p[jz].Arg != pc+1 {
				return errors.Errorf("jz @pc=%d: target %d, expected %d", jz, p[jz].Arg, pc+1)
			}
		default:
			return errors.Errorf("invalid opcode %d @pc=%d", ins.Op, pc)
		}
	}
	if len(open) > 0 {
		return errors.Errorf("jz @pc=%d: no matching jnz", open[len(open)-1])
	}
	return nil
}
