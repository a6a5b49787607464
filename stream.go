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
	"unicode/utf8"
)

// Whence selects the reference point for Stream.Seek, mirroring io.Seeker
// but expressed over WideOffset so text streams with opaque, possibly
// >2^64 cursors are never truncated.
type Whence int

const (
	SeekAbsolute Whence = iota
	SeekRelative
	SeekFromEnd
)

// SourceKind distinguishes a byte-oriented source, whose offsets are exact
// byte counts and whose bytes must be validated as UTF-8, from a
// text-oriented source, whose cursor is an opaque value handed back by the
// host and whose characters are assumed already decoded.
type SourceKind int

const (
	SourceBytes SourceKind = iota
	SourceText
)

// Stream is the input-stream contract the tokenizer consumes (spec §6).
// Implementations are single-owner: the tokenizer never calls a Stream
// from more than one goroutine.
type Stream interface {
	// Read returns up to n units (bytes for a byte stream, UTF-8 encoded
	// characters for a text stream). It may return fewer than n. An
	// empty, error-free return signals EOF.
	Read(n int) (units []byte, err error)
	// Seek repositions the stream and returns the new position. Only
	// required when the tokenizer is constructed with correct-cursor
	// enabled.
	Seek(offset WideOffset, whence Whence) (WideOffset, error)
	// Tell returns the current position.
	Tell() (WideOffset, error)
	// Seekable reports whether Seek is supported.
	Seekable() bool
	// Kind reports whether this is a byte or text source.
	Kind() SourceKind
}

// readerStream adapts an io.Reader (optionally an io.Seeker) into a byte
// Stream. This is the common case: files, network connections, in-memory
// buffers.
type readerStream struct {
	r      io.Reader
	seeker io.Seeker
	pos    int64
}

// NewReaderStream wraps r as a byte-oriented Stream. If r also implements
// io.Seeker, the resulting Stream is seekable and correct-cursor parking
// is available.
func NewReaderStream(r io.Reader) Stream {
	s, _ := r.(io.Seeker)
	return &readerStream{r: r, seeker: s}
}

func (s *readerStream) Read(n int) ([]byte, error) {
	if n <= 0 {
		n = 1
	}
	buf := make([]byte, n)
	read, err := s.r.Read(buf)
	s.pos += int64(read)
	if read > 0 {
		// A Read that returns n>0 alongside io.EOF must still be treated
		// as data available now; EOF is reported on the next call that
		// reads zero bytes, matching io.Reader's contract.
		if err == io.EOF {
			err = nil
		}
	}
	return buf[:read], err
}

func (s *readerStream) Seek(offset WideOffset, whence Whence) (WideOffset, error) {
	if s.seeker == nil {
		return WideOffset{}, newConfigurationError("jsontok: underlying stream is not seekable")
	}
	var w int
	switch whence {
	case SeekAbsolute:
		w = io.SeekStart
	case SeekRelative:
		w = io.SeekCurrent
	case SeekFromEnd:
		w = io.SeekEnd
	}
	np, err := s.seeker.Seek(offset.BigInt().Int64(), w)
	if err != nil {
		return WideOffset{}, err
	}
	s.pos = np
	return FromUint64(uint64(np)), nil
}

func (s *readerStream) Tell() (WideOffset, error) {
	return FromUint64(uint64(s.pos)), nil
}

func (s *readerStream) Seekable() bool {
	return s.seeker != nil
}

func (s *readerStream) Kind() SourceKind {
	return SourceBytes
}

// RuneSource supplies the already-decoded characters behind a text Stream.
// Implement this for hosts that expose their own text-mode file objects
// with independent, possibly non-numeric-looking cursor semantics (the
// motivating case from spec §4.A/§9: some text streams report positions
// that do not fit in 64 bits).
type RuneSource interface {
	// NextRune returns the next character, or io.EOF.
	NextRune() (rune, error)
	Seekable() bool
	// Seek repositions to a value previously returned by Tell.
	Seek(pos WideOffset) error
	Tell() (WideOffset, error)
}

// textStream adapts a RuneSource into a text Stream: Read(n) pulls up to n
// runes and re-encodes each to UTF-8. The adapter always asks a text
// Stream for exactly one rune per refill, whatever the Buffering option;
// textStream itself never batches beyond what's asked for since RuneSource
// has no bulk-read primitive.
type textStream struct {
	src RuneSource
}

// NewTextStream wraps a RuneSource as a Stream whose Kind is SourceText.
func NewTextStream(src RuneSource) Stream {
	return &textStream{src: src}
}

func (t *textStream) Read(n int) ([]byte, error) {
	if n <= 0 {
		n = 1
	}
	var buf []byte
	for i := 0; i < n; i++ {
		r, err := t.src.NextRune()
		if err != nil {
			if len(buf) > 0 {
				return buf, nil
			}
			if err == io.EOF {
				return buf, nil
			}
			return buf, err
		}
		var tmp [utf8.UTFMax]byte
		encoded := utf8.EncodeRune(tmp[:], r)
		buf = append(buf, tmp[:encoded]...)
	}
	return buf, nil
}

func (t *textStream) Seek(offset WideOffset, whence Whence) (WideOffset, error) {
	if whence != SeekAbsolute {
		return WideOffset{}, newConfigurationError("jsontok: text streams only support absolute seeks to a previously reported position")
	}
	if err := t.src.Seek(offset); err != nil {
		return WideOffset{}, err
	}
	return offset, nil
}

func (t *textStream) Tell() (WideOffset, error) {
	return t.src.Tell()
}

func (t *textStream) Seekable() bool {
	return t.src.Seekable()
}

func (t *textStream) Kind() SourceKind {
	return SourceText
}
