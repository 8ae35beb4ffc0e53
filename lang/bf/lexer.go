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

import "strconv"

// Kind is the kind of a Token or Stmt.
type Kind uint8

// Token and statement kinds. Block is only used by statements, LoopOpen and
// LoopClose only by tokens.
const (
	Increment Kind = iota
	Decrement
	PointerUp
	PointerDown
	Output
	Input
	LoopOpen
	LoopClose
	Block
)

var kindNames = [...]string{
	"+",
	"-",
	">",
	"<",
	".",
	",",
	"[",
	"]",
	"[...]",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Pos is a position in program source. Line and Column start at 1, Column
// counts runes.
type Pos struct {
	Offset int
	Line   int
	Column int
}

func (p Pos) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// Token is a lexical token.
type Token struct {
	Kind Kind
	Pos  Pos
}

func kindOf(r rune) (Kind, bool) {
	switch r {
	case '+':
		return Increment, true
	case '-':
		return Decrement, true
	case '>':
		return PointerUp, true
	case '<':
		return PointerDown, true
	case '.':
		return Output, true
	case ',':
		return Input, true
	case '[':
		return LoopOpen, true
	case ']':
		return LoopClose, true
	}
	return 0, false
}

// Lex returns the tokens found in src. Any character that is not one of
// the eight operators is ignored.
func Lex(src string) []Token {
	var toks []Token
	line, col := 1, 0
	for off, r := range src {
		col++
		if k, ok := kindOf(r); ok {
			toks = append(toks, Token{k, Pos{off, line, col}})
		} else if r == '\n' {
			line++
			col = 0
		}
	}
	return toks
}
