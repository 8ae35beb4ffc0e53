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
	"encoding/binary"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
)

// Bytecode image layout, all integers little endian:
//
//	magic   [4]byte "BFVM"
//	version uint8
//	count   uint32
//	count × { op uint8, arg int32 }
const (
	imageMagic   = "BFVM"
	imageVersion = 1
	headerSize   = len(imageMagic) + 1 + 4
	recordSize   = 5
)

// Save writes p as a bytecode image to w.
func Save(w io.Writer, p Program) error {
	bw := bufio.NewWriter(w)
	var hdr [headerSize]byte
	copy(hdr[:], imageMagic)
	hdr[4] = imageVersion
	binary.LittleEndian.PutUint32(hdr[5:], uint32(len(p)))
	if _, err := bw.Write(hdr[:]); err != nil {
		return errors.Wrap(err, "write failed")
	}
	var b [recordSize]byte
	for pc, ins := range p {
		if ins.Arg < math.MinInt32 || ins.Arg > math.MaxInt32 {
			return errors.Errorf("argument %d @pc=%d too large", ins.Arg, pc)
		}
		b[0] = byte(ins.Op)
		binary.LittleEndian.PutUint32(b[1:], uint32(int32(ins.Arg)))
		if _, err := bw.Write(b[:]); err != nil {
			return errors.Wrap(err, "write failed")
		}
	}
	return errors.Wrap(bw.Flush(), "write failed")
}

// Load reads a bytecode image from r. The returned program has been checked
// with Validate.
func Load(r io.Reader) (Program, error) {
	br := bufio.NewReader(r)
	var hdr [headerSize]byte
	if _, err := io.ReadFull(br, hdr[:]); err != nil {
		return nil, errors.Wrap(err, "header read failed")
	}
	if string(hdr[:4]) != imageMagic {
		return nil, errors.New("not a bytecode image")
	}
	if hdr[4] != imageVersion {
		return nil, errors.Errorf("unsupported image version %d", hdr[4])
	}
	count := binary.LittleEndian.Uint32(hdr[5:])
	var p Program
	var b [recordSize]byte
	for n := uint32(0); n < count; n++ {
		if _, err := io.ReadFull(br, b[:]); err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return nil, errors.Wrapf(err, "read %d instructions, expected %d", n, count)
		}
		p = append(p, Instruction{
			Op:  Opcode(b[0]),
			Arg: int(int32(binary.LittleEndian.Uint32(b[1:]))),
		})
	}
	if err := Validate(p); err != nil {
		return nil, errors.Wrap(err, "invalid image")
	}
	return p, nil
}

// SaveFile saves p to the named file. The file is removed on error.
func SaveFile(fileName string, p Program) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "create failed")
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "close failed")
		}
		// delete file on error
		if err != nil {
			os.Remove(fileName)
		}
	}()
	return Save(f, p)
}

// LoadFile loads a bytecode image from the named file.
func LoadFile(fileName string) (Program, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}
	defer f.Close()
	p, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", fileName)
	}
	return p, nil
}
