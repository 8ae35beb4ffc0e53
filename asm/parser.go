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

package asm

import (
	"io"
	"sort"
	"strconv"
	"strings"
	"text/scanner"
	"unicode"

	"github.com/danielpivonka/brainfuck-interp/vm"
)

const maxErrors = 10

// ErrAsm is the error type returned by Assemble. Each entry records the
// position in the source and the error message.
type ErrAsm []struct {
	Pos scanner.Position
	Msg string
}

func (e ErrAsm) Error() string {
	var b strings.Builder
	for i, err := range e {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(err.Pos.String())
		b.WriteString(": ")
		b.WriteString(err.Msg)
	}
	return b.String()
}

func isIdentRune(ch rune, i int) bool {
	return unicode.IsLetter(ch) || unicode.IsSymbol(ch) || unicode.IsPunct(ch) || unicode.IsDigit(ch)
}

type labelSite struct {
	pos     scanner.Position
	address int
}

type label struct {
	labelSite
	uses []labelSite
}

type parser struct {
	p      vm.Program
	s      scanner.Scanner
	labels map[string]*label
	errs   ErrAsm
}

func newParser() *parser {
	p := new(parser)
	p.labels = make(map[string]*label)
	return p
}

func (p *parser) error(pos scanner.Position, msg string) {
	if len(p.errs) < maxErrors {
		p.errs = append(p.errs, struct {
			Pos scanner.Position
			Msg string
		}{pos, msg})
	}
}

func (p *parser) defLabel(name string, pos scanner.Position) {
	if len(name) == 0 {
		p.error(pos, "Empty label name")
		return
	}
	if l, ok := p.labels[name]; ok {
		if l.address != -1 {
			p.error(pos, "Label redefinition: "+name+", previous definition here: "+l.pos.String())
			return
		}
		l.address = len(p.p)
		l.pos = pos
		return
	}
	p.labels[name] = &label{labelSite{pos, len(p.p)}, nil}
}

func (p *parser) useLabel(name string, pos scanner.Position) {
	lbl := p.labels[name]
	if lbl == nil {
		// use current position as valid temp position
		lbl = &label{labelSite{pos, -1}, nil}
		p.labels[name] = lbl
	}
	lbl.uses = append(lbl.uses, labelSite{pos, len(p.p) - 1})
}

// skipComment skips tokens up to and including the one ending with ')'.
func (p *parser) skipComment(s string, pos scanner.Position) {
	for !strings.HasSuffix(s, ")") {
		if p.s.Scan() == scanner.EOF {
			p.error(pos, "Unterminated comment")
			return
		}
		s = p.s.TokenText()
	}
}

func (p *parser) parse(name string, r io.Reader) (vm.Program, error) {
	var (
		arg     bool // next token is an argument to p.p[len(p.p)-1]
		pending vm.Opcode
	)

	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		pos := s.Position
		if !pos.IsValid() {
			pos = s.Pos()
		}
		p.error(pos, msg)
	}
	p.s.IsIdentRune = isIdentRune
	p.s.Mode = scanner.ScanIdents
	p.s.Filename = name

	for tok := p.s.Scan(); tok != scanner.EOF && len(p.errs) < maxErrors; tok = p.s.Scan() {
		pos := p.s.Position
		s := p.s.TokenText()
		if tok != scanner.Ident {
			p.error(pos, "Unexpected character "+strconv.QuoteRune(tok))
			continue
		}
		if s[0] == '(' {
			p.skipComment(s, pos)
			continue
		}

		if arg {
			arg = false
			if n, err := strconv.ParseInt(s, 0, 32); err == nil {
				p.p[len(p.p)-1].Arg = int(n)
				continue
			}
			if pending.IsJump() && s[0] != ':' {
				p.useLabel(s, pos)
				continue
			}
			p.error(pos, "Invalid argument for "+pending.String()+": "+s)
			continue
		}

		if s[0] == ':' {
			p.defLabel(s[1:], pos)
			continue
		}
		op, ok := opcodeIndex[s]
		if !ok {
			p.error(pos, "Unknown opcode: "+s)
			continue
		}
		p.p = append(p.p, vm.Instruction{Op: op})
		if op.HasArg() {
			arg, pending = true, op
		}
	}
	if arg {
		p.error(p.s.Pos(), "Missing argument for "+pending.String())
	}

	// write labels
	names := make([]string, 0, len(p.labels))
	for n := range p.labels {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		l := p.labels[n]
		if l.address == -1 {
			p.error(l.uses[0].pos, "Missing label definition for "+n)
			continue
		}
		for _, u := range l.uses {
			p.p[u.address].Arg = l.address
		}
	}

	if len(p.errs) > 0 {
		return nil, p.errs
	}
	return p.p, nil
}
