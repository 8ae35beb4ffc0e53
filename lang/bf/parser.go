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

import "github.com/pkg/errors"

// Syntax errors. Parse returns them wrapped in a *SyntaxError; use
// errors.Cause to test for them.
var (
	ErrUnmatchedClose   = errors.New("unmatched closing marker")
	ErrUnterminatedLoop = errors.New("unterminated loop")
)

// SyntaxError records a syntax error and the position of the offending
// token. For ErrUnterminatedLoop, Pos is the position of the opening marker.
type SyntaxError struct {
	Pos Pos
	Err error
}

func (e *SyntaxError) Error() string {
	return e.Pos.String() + ": " + e.Err.Error()
}

// Cause implements the causer interface of github.com/pkg/errors.
func (e *SyntaxError) Cause() error { return e.Err }

// Unwrap returns the underlying error.
func (e *SyntaxError) Unwrap() error { return e.Err }

// Stmt is a node of the parse tree. Body is only set for Block statements.
type Stmt struct {
	Kind Kind
	Pos  Pos
	Body []Stmt
}

type parser struct {
	toks []Token
	pos  int
}

func (p *parser) next() (Token, bool) {
	if p.pos >= len(p.toks) {
		return Token{}, false
	}
	t := p.toks[p.pos]
	p.pos++
	return t, true
}

// block parses statements until the LoopClose matching open. If open is nil,
// it parses until the end of input.
func (p *parser) block(open *Token) ([]Stmt, error) {
	var body []Stmt
	for {
		t, ok := p.next()
		if !ok {
			if open != nil {
				return nil, &SyntaxError{open.Pos, ErrUnterminatedLoop}
			}
			return body, nil
		}
		switch t.Kind {
		case LoopOpen:
			sub, err := p.block(&t)
			if err != nil {
				return nil, err
			}
			body = append(body, Stmt{Kind: Block, Pos: t.Pos, Body: sub})
		case LoopClose:
			if open == nil {
				return nil, &SyntaxError{t.Pos, ErrUnmatchedClose}
			}
			return body, nil
		default:
			body = append(body, Stmt{Kind: t.Kind, Pos: t.Pos})
		}
	}
}

// Parse builds the parse tree for the given tokens. It either succeeds or
// returns a *SyntaxError and no statements.
func Parse(toks []Token) ([]Stmt, error) {
	p := &parser{toks: toks}
	return p.block(nil)
}
