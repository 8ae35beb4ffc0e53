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
	"bytes"
	"strings"
	"testing"

	"github.com/danielpivonka/brainfuck-interp/asm"
	"github.com/danielpivonka/brainfuck-interp/vm"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// C maps tape positions to cell values.
type C map[int]byte

func assemble(t *testing.T, name, code string) vm.Program {
	t.Helper()
	p, err := asm.Assemble(name, strings.NewReader(code))
	if err != nil {
		t.Fatalf("%s: %v", name, err)
	}
	return p
}

func setup(t *testing.T, name, code string, tape C, ptr int, opts ...vm.Option) *vm.Instance {
	t.Helper()
	i, err := vm.New(assemble(t, name, code), opts...)
	if err != nil {
		t.Fatal(err)
	}
	for k, v := range tape {
		i.Tape[k] = v
	}
	i.Ptr = ptr
	return i
}

func check(t *testing.T, testName string, i *vm.Instance, ptr int, tape C) bool {
	t.Helper()
	if err := i.Run(); err != nil {
		t.Errorf("%s: %+v", testName, err)
		return false
	}
	if i.PC != len(i.Program()) {
		t.Errorf("%s: Bad PC %d != %d", testName, i.PC, len(i.Program()))
		return false
	}
	if i.Ptr != ptr {
		t.Errorf("%s: Bad Ptr %d != %d", testName, i.Ptr, ptr)
		return false
	}
	for k, v := range i.Tape {
		if exp := tape[k]; exp != v {
			t.Errorf("%s: Tape error @%d: expected %d, got %d", testName, k, exp, v)
			return false
		}
	}
	return true
}

func disasm(p vm.Program) string {
	var b bytes.Buffer
	asm.DisassembleAll(p, &b)
	return b.String()
}

var tests = [...]struct {
	name   string
	code   string
	tape   C
	ptr    int
	expPtr int
	exp    C
}{
	{"nop", "", nil, 0, 0, nil},
	{"add", "add 1 add 1 add 1", nil, 0, 0, C{0: 3}},
	{"sub", "add -1", C{0: 3}, 0, 0, C{0: 2}},
	{"add 255", "add 1", C{0: 255}, 0, 0, nil},
	{"sub 0", "add -1", nil, 0, 0, C{0: 255}},
	{"add large in range", "add 5", C{0: 10}, 0, 0, C{0: 15}},
	{"move", "move 1 add 1 move 1 add 1 move -1", nil, 0, 1, C{1: 1, 2: 1}},
	{"move up wrap", "move 1 add 1", nil, vm.TapeSize - 1, 0, C{0: 1}},
	{"move down wrap", "move -1 add 1", nil, 0, vm.TapeSize - 1, C{vm.TapeSize - 1: 1}},
	{"jz taken", "jz end add 1 jnz 0 :end", nil, 0, 0, nil},
	{"loop", ":top jz end add -1 move 1 add 2 move -1 jnz top :end", C{0: 5}, 0, 0, C{1: 10}},
	{"nested", `
		jz e0
		:t0
			move 1 add 3
			jz e1
			:t1
				move 1 add 1 move -1 add -1
			jnz t1
			:e1
			move -1 add -1
		jnz t0
		:e0`, C{0: 2}, 0, 0, C{2: 6}},
}

func TestCore(t *testing.T) {
	for _, test := range tests {
		i := setup(t, test.name, test.code, test.tape, test.ptr)
		if !check(t, test.name, i, test.expPtr, test.exp) {
			t.Log(test.name + ":\n" + disasm(i.Program()))
		}
	}
}

func TestInstructionCount(t *testing.T) {
	i := setup(t, "count", ":top jz end add -1 jnz top :end", C{0: 5}, 0)
	if err := i.Run(); err != nil {
		t.Fatal(err)
	}
	if n := i.InstructionCount(); n != 15 {
		t.Fatalf("Expected 15 instructions, got %d", n)
	}
	i = setup(t, "count zero", ":top jz end add -1 jnz top :end", nil, 0)
	if err := i.Run(); err != nil {
		t.Fatal(err)
	}
	if n := i.InstructionCount(); n != 1 {
		t.Fatalf("Expected 1 instruction, got %d", n)
	}
}

func TestRangeErrors(t *testing.T) {
	for _, test := range []struct {
		name string
		code string
		tape C
		ptr  int
		err  error
	}{
		{"value up", "add 1 add 2", C{0: 254}, 0, vm.ErrValueRange},
		{"value down", "add -1 add -3", C{0: 1}, 0, vm.ErrValueRange},
		{"pointer up", "move 1 move 3", nil, vm.TapeSize - 3, vm.ErrPointerRange},
		{"pointer down", "move 1 move -3", nil, 0, vm.ErrPointerRange},
	} {
		i := setup(t, test.name, test.code, test.tape, test.ptr)
		err := i.Run()
		if errors.Cause(err) != test.err {
			t.Errorf("%s: expected %v, got %v", test.name, test.err, err)
			continue
		}
		// the PC must point to the faulty instruction
		if i.PC != 1 {
			t.Errorf("%s: Bad PC %d != 1", test.name, i.PC)
		}
	}
}

func TestInvalidOpcode(t *testing.T) {
	i, err := vm.New(vm.Program{{Op: 42}})
	if err != nil {
		t.Fatal(err)
	}
	if err = i.Run(); err == nil {
		t.Fatal("Expected error")
	}
	if !strings.Contains(err.Error(), "invalid opcode 42") {
		t.Fatalf("Unexpected error: %v", err)
	}
}

type flushCounter struct {
	bytes.Buffer
	writes  int
	flushes int
}

func (w *flushCounter) Write(p []byte) (int, error) {
	w.writes++
	return w.Buffer.Write(p)
}

func (w *flushCounter) Flush() error {
	w.flushes++
	return nil
}

func TestOutputFlush(t *testing.T) {
	var w flushCounter
	i := setup(t, "output", "add 1 add 1 out add 1 out out", nil, 0, vm.Output(&w))
	if err := i.Run(); err != nil {
		t.Fatal(err)
	}
	if got := w.Bytes(); !bytes.Equal(got, []byte{2, 3, 3}) {
		t.Fatalf("Expected output [2 3 3], got %v", got)
	}
	if w.writes != 3 || w.flushes != 3 {
		t.Fatalf("Expected 3 writes and 3 flushes, got %d and %d", w.writes, w.flushes)
	}
}

func TestNoOutput(t *testing.T) {
	i := setup(t, "no output", "add 1 out", nil, 0)
	if err := i.Run(); err != nil {
		t.Fatal(err)
	}
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestOutputError(t *testing.T) {
	i := setup(t, "output error", "add 1 out", nil, 0, vm.Output(failWriter{}))
	err := i.Run()
	if err == nil || err.Error() != "output failed: disk full" {
		t.Fatalf("Unexpected error: %v", err)
	}
	if i.PC != 1 {
		t.Fatalf("Bad PC %d != 1", i.PC)
	}
}

func TestTrace(t *testing.T) {
	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	defer zerolog.SetGlobalLevel(prev)

	var b bytes.Buffer
	i := setup(t, "trace", "add 1 move 1", nil, 0,
		vm.Logger(zerolog.New(&b).Level(zerolog.TraceLevel)))
	if err := i.Run(); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 trace lines, got %d:\n%s", len(lines), b.String())
	}
	if !strings.Contains(lines[1], `"pc":1`) || !strings.Contains(lines[1], `"ins":"move 1"`) || !strings.Contains(lines[1], `"cell":1`) {
		t.Fatalf("Unexpected trace line: %s", lines[1])
	}

	// no tracing above trace level
	b.Reset()
	i = setup(t, "no trace", "add 1 move 1", nil, 0,
		vm.Logger(zerolog.New(&b).Level(zerolog.DebugLevel)))
	if err := i.Run(); err != nil {
		t.Fatal(err)
	}
	if b.Len() != 0 {
		t.Fatalf("Unexpected trace output: %s", b.String())
	}
}
