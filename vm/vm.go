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
	"io"

	"github.com/rs/zerolog"
)

// TapeSize is the number of cells on the tape.
const TapeSize = 30000

// Instance represents a VM instance.
type Instance struct {
	PC       int            // Program Counter
	Ptr      int            // Cell pointer
	Tape     [TapeSize]byte // Memory tape
	prog     Program
	insCount int64
	input    LineReader
	queue    []byte
	output   io.Writer
	obuf     [1]byte
	log      zerolog.Logger
	trace    bool
}

// Option is a functional option for New and SetOptions.
type Option func(*Instance) error

// Input pushes the given io.Reader on top of the input stack. Input is read
// one line at a time.
func Input(r io.Reader) Option {
	return func(i *Instance) error { i.PushInput(NewLineReader(r)); return nil }
}

// Lines pushes a custom LineReader on top of the input stack.
func Lines(lr LineReader) Option {
	return func(i *Instance) error { i.PushInput(lr); return nil }
}

// Output sets the output writer. If w implements
//
//	Flush() error
//
// it will be flushed after every single byte written.
func Output(w io.Writer) Option {
	return func(i *Instance) error {
		i.output = w
		return nil
	}
}

// Logger sets the logger used for diagnostics. Executed instructions are
// traced only if the logger's level is zerolog.TraceLevel.
func Logger(l zerolog.Logger) Option {
	return func(i *Instance) error {
		i.log = l
		i.trace = l.GetLevel() <= zerolog.TraceLevel && zerolog.GlobalLevel() <= zerolog.TraceLevel
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new VM instance that will run the given program.
//
// The tape is zeroed, and both the program counter and the cell pointer are
// set to 0. Without any Input option, the first executed input instruction
// will fail with io.EOF. Without an Output option, output is discarded.
//
// Options will be set by calling SetOptions.
func New(p Program, opts ...Option) (*Instance, error) {
	i := &Instance{
		prog: p,
		log:  zerolog.Nop(),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// Program returns the program loaded in the VM.
func (i *Instance) Program() Program {
	return i.prog
}

// Cell returns the value of the current cell.
func (i *Instance) Cell() byte {
	return i.Tape[i.Ptr]
}

// Pending returns a copy of the input bytes read but not consumed yet.
func (i *Instance) Pending() []byte {
	return append([]byte(nil), i.queue...)
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}
