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

import (
	"io"

	"github.com/danielpivonka/brainfuck-interp/vm"
)

// Run compiles src and runs it with input read from r and output written to
// w. Additional VM options are applied after the input and output ones.
//
// A syntax error is returned before anything is executed. Otherwise, the
// returned instance reflects the VM state at exit.
func Run(src string, r io.Reader, w io.Writer, opts ...vm.Option) (*vm.Instance, error) {
	p, err := Compile(src)
	if err != nil {
		return nil, err
	}
	var o []vm.Option
	if r != nil {
		o = append(o, vm.Input(r))
	}
	o = append(o, vm.Output(w))
	i, err := vm.New(p, append(o, opts...)...)
	if err != nil {
		return nil, err
	}
	return i, i.Run()
}
