// Copyright 2025 easymvp
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

package jsontok

import (
	"io"
	"strings"
)

// Tokenizer is the Token Iterator (spec §4.E/§4.F): the public, pull-based
// façade over the Input Adapter and the Scanner State Machine. A Tokenizer
// is single-use and not safe for concurrent calls.
type Tokenizer struct {
	a    *adapter
	opts options

	err  error
	done bool

	lastCheckpoint WideOffset

	stringActive bool
	stringGen    int
}

// New constructs a Tokenizer over stream. correct_cursor defaults to
// stream.Seekable() unless overridden by WithCorrectCursor. Construction
// fails with a ClassConfiguration error if correct-cursor mode is selected
// (explicitly or by default) against a stream that is both non-seekable
// and buffered, since in that combination ParkCursor could never succeed
// (spec §4.A).
func New(stream Stream, opts ...Option) (*Tokenizer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.correctCursorSet {
		o.correctCursor = stream.Seekable()
	}
	if o.correctCursor && !stream.Seekable() && !o.buffering.isUnbuffered() {
		return nil, newConfigurationError("jsontok: correct-cursor mode requires either a seekable stream or Unbuffered buffering")
	}

	a := newAdapter(stream, o.buffering)
	t := &Tokenizer{a: a, opts: o}
	t.lastCheckpoint = a.checkpoint()
	return t, nil
}

// Next scans and returns the next token, or io.EOF once the input is
// exhausted. Once Next returns a non-nil, non-io.EOF error, every
// subsequent call returns that same error (spec §4.E sticky-error
// semantics). Likewise once io.EOF has been returned, every subsequent
// call keeps returning io.EOF.
//
// If the previously returned token was a lazy (strings-as-files) string
// that was not fully drained, Next first discards the rest of it and
// invalidates the handle.
func (t *Tokenizer) Next() (Token, error) {
	if t.err != nil {
		return Token{}, t.err
	}
	if t.done {
		return Token{}, io.EOF
	}
	if t.stringActive {
		if err := t.discardActiveString(); err != nil {
			t.err = err
			return Token{}, err
		}
	}

	t.skipWhitespace()

	start := t.a.position()
	r, ok, err := t.a.peek()
	if err != nil {
		t.err = err
		return Token{}, err
	}
	if !ok {
		t.done = true
		return Token{}, io.EOF
	}

	var tok Token
	switch {
	case isOperatorRune(r):
		t.a.advance()
		tok = Token{Kind: KindOperator, Start: start, End: t.a.position(), operatorChar: byte(r)}
	case r == '"':
		t.a.advance()
		tok, err = t.scanString(start)
	case r == '-' || isDigit(r):
		tok, err = t.scanNumber(start)
	case r == 't' || r == 'f':
		tok, err = t.scanBool(start, r)
	case r == 'n':
		tok, err = t.scanNull(start)
	default:
		err = newInvalidJSON(start, "Invalid JSON character: '%c' at index %d", r, start.Char)
	}
	if err != nil {
		t.err = err
		return Token{}, err
	}

	if !(tok.Kind == KindString && tok.stringReader != nil) {
		t.lastCheckpoint = t.a.checkpoint()
	}
	return tok, nil
}

// ParkCursor rewinds the underlying Stream to the position right after the
// last character of the last emitted token, discarding any buffered
// readahead (spec §4.E "cursor parking"). It requires correct-cursor mode.
func (t *Tokenizer) ParkCursor() error {
	if !t.opts.correctCursor {
		return newConfigurationError("jsontok: ParkCursor requires correct-cursor mode")
	}
	return t.a.park(t.lastCheckpoint)
}

// Remainder returns every byte the adapter has physically read from the
// Stream but not yet consumed into an emitted token. It is the
// complement to correct-cursor mode: a caller that does not need the
// Stream itself repositioned can instead prepend Remainder to whatever it
// reads from the Stream next.
func (t *Tokenizer) Remainder() []byte {
	return t.a.remainder()
}

func (t *Tokenizer) skipWhitespace() {
	for {
		r, ok, err := t.a.peek()
		if err != nil || !ok {
			return
		}
		switch r {
		case ' ', '\t', '\r', '\n':
			t.a.advance()
		default:
			return
		}
	}
}

func isOperatorRune(r rune) bool {
	switch r {
	case '{', '}', '[', ']', ',', ':':
		return true
	}
	return false
}

// scanString implements the String alternative of Component B. The
// opening quote has already been consumed by Next's dispatch.
func (t *Tokenizer) scanString(start Position) (Token, error) {
	if t.opts.stringsAsFiles {
		t.stringGen++
		t.stringActive = true
		return Token{Kind: KindString, Start: start, End: start, stringReader: &StringReader{tok: t, gen: t.stringGen}}, nil
	}

	dec := &stringDecoder{a: t.a}
	var sb strings.Builder
	for {
		r, done, err := dec.next()
		if err != nil {
			return Token{}, err
		}
		if done {
			break
		}
		sb.WriteRune(r)
	}
	return Token{Kind: KindString, Start: start, End: t.a.position(), stringText: sb.String()}, nil
}

// discardActiveString consumes whatever remains of a lazy string that the
// caller did not fully drain, so the tokenizer can move on to the next
// token. It is also what invalidates any outstanding StringReader handle.
func (t *Tokenizer) discardActiveString() error {
	dec := &stringDecoder{a: t.a}
	for {
		_, done, err := dec.next()
		if err != nil {
			return err
		}
		if done {
			break
		}
	}
	t.stringActive = false
	t.lastCheckpoint = t.a.checkpoint()
	return nil
}

// finishActiveString is called by a StringReader once it has decoded its
// own closing quote, so the generation it was issued under is retired
// without requiring Next to redundantly re-decode anything.
func (t *Tokenizer) finishActiveString(gen int) {
	if t.stringGen == gen && t.stringActive {
		t.stringActive = false
		t.lastCheckpoint = t.a.checkpoint()
	}
}

func (t *Tokenizer) scanKeyword(start Position, word string, kind Kind, boolValue bool) (Token, error) {
	for i := 0; i < len(word); i++ {
		r, ok, err := t.a.peek()
		if err != nil {
			return Token{}, err
		}
		if !ok {
			return Token{}, newUnterminated(start, "Unterminated literal")
		}
		if byte(r) != word[i] {
			return Token{}, newInvalidJSON(t.a.position(), "Invalid JSON character: '%c' at index %d", r, t.a.position().Char)
		}
		t.a.advance()
	}
	return Token{Kind: kind, Start: start, End: t.a.position(), boolValue: boolValue}, nil
}

func (t *Tokenizer) scanBool(start Position, lead rune) (Token, error) {
	if lead == 't' {
		return t.scanKeyword(start, "true", KindBoolean, true)
	}
	return t.scanKeyword(start, "false", KindBoolean, false)
}

func (t *Tokenizer) scanNull(start Position) (Token, error) {
	return t.scanKeyword(start, "null", KindNull, false)
}
