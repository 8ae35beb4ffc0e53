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
	"bufio"
	"io"
	"unicode/utf8"
)

type flusher interface {
	Flush() error
}

// LineReader is the interface that wraps the ReadLine method.
//
// ReadLine returns the next full line of input, including the trailing
// newline if any. When no more lines are available, it returns a nil line
// and io.EOF.
type LineReader interface {
	ReadLine() (line []byte, err error)
}

type lineReader struct {
	r *bufio.Reader
	c io.Closer
}

// NewLineReader returns a LineReader reading lines from r. If r implements
// io.Closer, it will be closed when the VM discards the reader at EOF.
func NewLineReader(r io.Reader) LineReader {
	lr := &lineReader{}
	if br, ok := r.(*bufio.Reader); ok {
		lr.r = br
	} else {
		lr.r = bufio.NewReader(r)
	}
	lr.c, _ = r.(io.Closer)
	return lr
}

func (r *lineReader) ReadLine() ([]byte, error) {
	line, err := r.r.ReadBytes('\n')
	if len(line) > 0 {
		// a last line without newline still counts; EOF is reported on the
		// next call.
		return line, nil
	}
	return nil, err
}

func (r *lineReader) Close() error {
	if r.c != nil {
		return r.c.Close()
	}
	return nil
}

type multiLineReader struct {
	readers []LineReader
}

func (mr *multiLineReader) ReadLine() (line []byte, err error) {
	for len(mr.readers) > 0 {
		line, err = mr.readers[0].ReadLine()
		if len(line) > 0 || err != io.EOF {
			if err == io.EOF {
				err = nil
			}
			return
		}
		// discard the reader and optionally close it
		if c, ok := mr.readers[0].(io.Closer); ok {
			c.Close()
		}
		mr.readers = mr.readers[1:]
	}
	return nil, io.EOF
}

func (mr *multiLineReader) pushReader(r LineReader) {
	mr.readers = append([]LineReader{r}, mr.readers...)
}

// PushInput sets r as the current input LineReader for the VM. When this
// reader reaches EOF, the previously pushed reader will be used.
func (i *Instance) PushInput(r LineReader) {
	// dont use a multi reader unless necessary
	switch in := i.input.(type) {
	case nil: // no input yet, single assign
		i.input = r
	case *multiLineReader:
		in.pushReader(r)
	default:
		i.input = &multiLineReader{[]LineReader{r, i.input}}
	}
}

func isSingleByte(line []byte) bool {
	for _, c := range line {
		if c >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// fill refills the input queue with the next acceptable line. Lines with
// extended characters are skipped.
func (i *Instance) fill() error {
	for len(i.queue) == 0 {
		if i.input == nil {
			return io.EOF
		}
		line, err := i.input.ReadLine()
		if err != nil {
			return err
		}
		if !isSingleByte(line) {
			i.log.Debug().Int("len", len(line)).Msg("discarding input line with extended characters")
			continue
		}
		i.queue = append(i.queue[:0], line...)
	}
	return nil
}

func (i *Instance) read() (byte, error) {
	if err := i.fill(); err != nil {
		return 0, err
	}
	c := i.queue[0]
	i.queue = i.queue[1:]
	return c, nil
}

func (i *Instance) write(c byte) error {
	if i.output == nil {
		return nil
	}
	i.obuf[0] = c
	if _, err := i.output.Write(i.obuf[:]); err != nil {
		return err
	}
	if f, ok := i.output.(flusher); ok {
		return f.Flush()
	}
	return nil
}
