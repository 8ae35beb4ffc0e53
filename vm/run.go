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

import "github.com/pkg/errors"

// Internal errors. The compiler only emits single step deltas, so these
// indicate a broken program, not a user error.
var (
	ErrValueRange   = errors.New("value changed out of single-step range")
	ErrPointerRange = errors.New("pointer moved out of single-step range")
)

func changeValue(v byte, delta int) byte {
	switch n := int(v) + delta; {
	case n == 256:
		return 0
	case n == -1:
		return 255
	case n >= 0 && n <= 255:
		return byte(n)
	}
	panic(errors.Wrapf(ErrValueRange, "%d%+d", v, delta))
}

func movePointer(p, delta int) int {
	switch n := p + delta; {
	case n == TapeSize:
		return 0
	case n == -1:
		return TapeSize - 1
	case n >= 0 && n < TapeSize:
		return n
	}
	panic(errors.Wrapf(ErrPointerRange, "%d%+d", p, delta))
}

// Run starts execution of the VM until the PC runs past the end of the
// program.
//
// If an error occurs, the PC will point to the instruction that triggered the
// error.
//
// If the input is exhausted while executing an input instruction, Run returns
// an error whose cause is io.EOF. This is a normal exit condition in most use
// cases.
func (i *Instance) Run() (err error) {
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case error:
				err = errors.Wrapf(e, "recovered error @pc=%d/%d, ptr=%d", i.PC, len(i.prog), i.Ptr)
			default:
				panic(e)
			}
		}
	}()
	i.insCount = 0
	for i.PC < len(i.prog) {
		ins := i.prog[i.PC]
		if i.trace {
			i.log.Trace().Int("pc", i.PC).Stringer("ins", ins).Int("ptr", i.Ptr).Uint8("cell", i.Tape[i.Ptr]).Msg("step")
		}
		switch ins.Op {
		case OpChangeValue:
			i.Tape[i.Ptr] = changeValue(i.Tape[i.Ptr], ins.Arg)
			i.PC++
		case OpMovePointer:
			i.Ptr = movePointer(i.Ptr, ins.Arg)
			i.PC++
		case OpOutput:
			if err = i.write(i.Tape[i.Ptr]); err != nil {
				return errors.Wrap(err, "output failed")
			}
			i.PC++
		case OpInput:
			var c byte
			if c, err = i.read(); err != nil {
				return errors.Wrap(err, "input failed")
			}
			i.Tape[i.Ptr] = c
			i.PC++
		case OpJumpIfZero:
			if i.Tape[i.Ptr] == 0 {
				i.PC = ins.Arg
			} else {
				i.PC++
			}
		case OpJumpIfNonZero:
			if i.Tape[i.Ptr] != 0 {
				i.PC = ins.Arg
			} else {
				i.PC++
			}
		default:
			panic(errors.Errorf("invalid opcode %d", ins.Op))
		}
		i.insCount++
	}
	return nil
}
