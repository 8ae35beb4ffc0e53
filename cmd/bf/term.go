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

package main

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/peterh/liner"
	"github.com/pkg/errors"
)

const maxPartialLine = 256

// lineTracker is the VM output writer in interactive mode. It remembers the
// bytes written since the last newline so that the line editor can redraw
// them as part of its prompt.
type lineTracker struct {
	w       *bufio.Writer
	partial []byte
}

func (t *lineTracker) Write(p []byte) (int, error) {
	if k := bytes.LastIndexByte(p, '\n'); k >= 0 {
		t.partial = append(t.partial[:0], p[k+1:]...)
	} else {
		t.partial = append(t.partial, p...)
	}
	if len(t.partial) > maxPartialLine {
		t.partial = t.partial[len(t.partial)-maxPartialLine:]
	}
	return t.w.Write(p)
}

func (t *lineTracker) Flush() error {
	return t.w.Flush()
}

// Partial returns the output written since the last newline.
func (t *lineTracker) Partial() string {
	return string(t.partial)
}

// promptReader is a vm.LineReader reading lines with a line editor.
type promptReader struct {
	ln     *liner.State
	prompt string
	out    *lineTracker
}

func (r *promptReader) ReadLine() ([]byte, error) {
	// liner redraws the whole line, so the pending output must be part of
	// the prompt.
	prompt := r.out.Partial() + r.prompt
	if len(r.out.partial) > 0 {
		r.out.w.WriteByte('\r')
		r.out.w.Flush()
	}
	s, err := r.ln.Prompt(prompt)
	if err != nil {
		if err == io.EOF {
			return nil, err
		}
		return nil, errors.Wrap(err, "prompt failed")
	}
	// the line editor leaves the cursor on the next line.
	r.out.partial = r.out.partial[:0]
	if s != "" {
		r.ln.AppendHistory(s)
	}
	return []byte(s + "\n"), nil
}

// newLineEditor creates a line editor and loads history from histFile if not
// empty. The returned function closes the editor and saves history.
func newLineEditor(histFile string) (*liner.State, func()) {
	ln := liner.NewLiner()
	ln.SetCtrlCAborts(true)
	if histFile != "" {
		if f, err := os.Open(histFile); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
	}
	return ln, func() {
		if histFile != "" {
			if f, err := os.Create(histFile); err == nil {
				ln.WriteHistory(f)
				f.Close()
			}
		}
		ln.Close()
	}
}
