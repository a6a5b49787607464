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
	"iter"
	"strings"
)

// StringReader is a lazy handle onto a JSON string token's content,
// returned instead of a materialized Go string when a Tokenizer is built
// with WithStringsAsFiles(true) (spec §4.D "strings_as_files").
//
// It decodes on demand from the same adapter the enclosing Tokenizer uses,
// so a large string never has to live in memory all at once. Once the
// reader has decoded the string's closing quote, further calls return "",
// nil. If the caller calls Next on the Tokenizer before draining the
// reader, Next discards whatever is left of the string, and any method
// called on the reader after that returns ErrInvalidatedHandle.
type StringReader struct {
	tok *Tokenizer
	gen int
	dec *stringDecoder
	eof bool
}

func (r *StringReader) checkValid() error {
	if r.eof {
		return nil
	}
	if r.tok.stringGen != r.gen || !r.tok.stringActive {
		return ErrInvalidatedHandle
	}
	return nil
}

func (r *StringReader) ensure() {
	if r.dec == nil {
		r.dec = &stringDecoder{a: r.tok.a}
	}
}

// Read decodes up to n characters of string content. A short read with a
// nil error means the string ended; subsequent calls return "", nil.
func (r *StringReader) Read(n int) (string, error) {
	if err := r.checkValid(); err != nil {
		return "", err
	}
	if r.eof || n <= 0 {
		return "", nil
	}
	r.ensure()
	var sb strings.Builder
	for i := 0; i < n; i++ {
		ch, done, err := r.dec.next()
		if err != nil {
			return sb.String(), err
		}
		if done {
			r.eof = true
			r.tok.finishActiveString(r.gen)
			break
		}
		sb.WriteRune(ch)
	}
	return sb.String(), nil
}

// ReadAll decodes and returns every remaining character of the string.
func (r *StringReader) ReadAll() (string, error) {
	if err := r.checkValid(); err != nil {
		return "", err
	}
	if r.eof {
		return "", nil
	}
	r.ensure()
	var sb strings.Builder
	for {
		ch, done, err := r.dec.next()
		if err != nil {
			return sb.String(), err
		}
		if done {
			r.eof = true
			r.tok.finishActiveString(r.gen)
			break
		}
		sb.WriteRune(ch)
	}
	return sb.String(), nil
}

// ReadLine decodes and returns the next line of string content, including
// its trailing '\n' if one is present, or the final partial line at the
// end of the string.
func (r *StringReader) ReadLine() (string, error) {
	if err := r.checkValid(); err != nil {
		return "", err
	}
	if r.eof {
		return "", nil
	}
	r.ensure()
	var sb strings.Builder
	for {
		ch, done, err := r.dec.next()
		if err != nil {
			return sb.String(), err
		}
		if done {
			r.eof = true
			r.tok.finishActiveString(r.gen)
			break
		}
		sb.WriteRune(ch)
		if ch == '\n' {
			break
		}
	}
	return sb.String(), nil
}

// Lines returns an iterator over the string's content split into lines,
// each including its trailing '\n' except possibly the last.
func (r *StringReader) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			line, err := r.ReadLine()
			if err != nil || line == "" {
				return
			}
			if !yield(line) {
				return
			}
		}
	}
}
