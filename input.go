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
	"fmt"
	"io"
	"unicode/utf8"
)

// adapter is the Input Adapter (spec §4.A): a uniform character-oriented
// view over a text or byte Stream, with one character of lookahead and
// cursor-parking support.
//
// The adapter keeps a single growable byte buffer (chunk) holding bytes
// that have been physically read from the Stream but not yet handed to
// the scanner. chunkBaseOffset is the Stream position corresponding to
// chunk[0]; every time chunk is drained to empty, chunkBaseOffset is
// re-synced from Stream.Tell() before the next refill, which is what
// makes park/resume and "caller moved the stream externally" work without
// special-casing: the adapter simply starts trusting wherever the Stream
// currently sits the next time its buffer runs dry.
type adapter struct {
	stream    Stream
	buffering Buffering

	chunk          []byte
	chunkPos       int
	chunkBaseOffset WideOffset

	hasPending     bool
	pendingRune    rune
	pendingSize    int
	posBeforePending WideOffset

	byteOffset uint64
	charIndex  uint64

	reachedEOF bool
}

func newAdapter(stream Stream, buffering Buffering) *adapter {
	base := ZeroOffset()
	if pos, err := stream.Tell(); err == nil {
		base = pos
	}
	return &adapter{
		stream:          stream,
		buffering:       buffering,
		chunkBaseOffset: base,
	}
}

// ensureBytes guarantees at least min unconsumed bytes are buffered, or
// returns io.EOF / an I/O error from the underlying Stream.
func (a *adapter) ensureBytes(min int) error {
	for len(a.chunk)-a.chunkPos < min {
		if a.chunkPos == len(a.chunk) {
			if base, err := a.stream.Tell(); err == nil {
				a.chunkBaseOffset = base
			}
			a.chunk = a.chunk[:0]
			a.chunkPos = 0
		}
		refillUnits := 1
		if a.stream.Kind() == SourceBytes {
			refillUnits = a.buffering.refillSize()
		}
		data, err := a.stream.Read(refillUnits)
		if len(data) == 0 {
			if err != nil && err != io.EOF {
				return newIOError(a.position(), err)
			}
			return io.EOF
		}
		a.chunk = append(a.chunk, data...)
	}
	return nil
}

// peekRawRune decodes, but does not consume, the next rune in the buffer.
// A multi-byte UTF-8 sequence split across a Stream refill is stitched
// back together here by asking for more bytes rather than erroring.
func (a *adapter) peekRawRune() (rune, int, error) {
	if err := a.ensureBytes(1); err != nil {
		return 0, 0, err
	}
	for !utf8.FullRune(a.chunk[a.chunkPos:]) {
		if err := a.ensureBytes(len(a.chunk) - a.chunkPos + 1); err != nil {
			if err == io.EOF && a.stream.Kind() == SourceBytes {
				return 0, 0, newEncodingError(a.position(), "malformed UTF-8: truncated multi-byte sequence at end of stream")
			}
			return 0, 0, err
		}
	}
	r, size := utf8.DecodeRune(a.chunk[a.chunkPos:])
	if r == utf8.RuneError && size <= 1 && a.stream.Kind() == SourceBytes {
		return 0, 0, newEncodingError(a.position(), fmt.Sprintf("invalid UTF-8 byte sequence at byte offset %d", a.byteOffset))
	}
	return r, size, nil
}

func (a *adapter) currentPosition() WideOffset {
	return a.chunkBaseOffset.Add(uint64(a.chunkPos))
}

func (a *adapter) fillPending() error {
	if a.hasPending {
		return nil
	}
	before := a.currentPosition()
	r, size, err := a.peekRawRune()
	if err != nil {
		return err
	}
	a.pendingRune = r
	a.pendingSize = size
	a.posBeforePending = before
	a.hasPending = true
	return nil
}

// peek returns the next character without consuming it. ok is false at
// clean end of input.
func (a *adapter) peek() (r rune, ok bool, err error) {
	if ferr := a.fillPending(); ferr != nil {
		if ferr == io.EOF {
			a.reachedEOF = true
			return 0, false, nil
		}
		return 0, false, ferr
	}
	return a.pendingRune, true, nil
}

// advance consumes and returns the character last returned by peek (or
// fetches one if peek was not called).
func (a *adapter) advance() (rune, error) {
	if err := a.fillPending(); err != nil {
		return 0, err
	}
	r := a.pendingRune
	a.chunkPos += a.pendingSize
	a.byteOffset += uint64(a.pendingSize)
	a.charIndex++
	a.hasPending = false

	if a.stream.Kind() == SourceText {
		// A text Stream's cursor is opaque and counted in characters, not
		// bytes: chunkBaseOffset + chunkPos is only meaningful while
		// chunkPos is 0, since chunkPos here measures the UTF-8 byte
		// length of the buffered rune, a unit the Stream's own Tell()
		// knows nothing about. A text-stream refill always fetches
		// exactly one rune (ensureBytes's refillUnits=1 for SourceText),
		// so the buffer is always fully drained the instant it's
		// consumed; resync chunkBaseOffset from the Stream's own Tell()
		// right now rather than deferring to the next ensureBytes call,
		// so checkpoint() never has to add a byte count to a character
		// count.
		a.chunk = a.chunk[:0]
		a.chunkPos = 0
		if pos, err := a.stream.Tell(); err == nil {
			a.chunkBaseOffset = pos
		}
		return r, nil
	}

	const compactThreshold = 4096
	if a.chunkPos > compactThreshold {
		a.chunkBaseOffset = a.chunkBaseOffset.Add(uint64(a.chunkPos))
		rest := make([]byte, len(a.chunk)-a.chunkPos)
		copy(rest, a.chunk[a.chunkPos:])
		a.chunk = rest
		a.chunkPos = 0
	}
	return r, nil
}

// position is the logical Position (byte offset, char index) as of the
// last character returned by advance.
func (a *adapter) position() Position {
	return Position{Byte: a.byteOffset, Char: a.charIndex}
}

// checkpoint is the Stream position right after the last character
// consumed by advance, excluding any outstanding one-character lookahead
// (spec §4.E: "the position right after the last emitted token's last
// lexical character"). This is what ParkCursor rewinds the Stream to.
func (a *adapter) checkpoint() WideOffset {
	if a.hasPending {
		return a.posBeforePending
	}
	return a.currentPosition()
}

// remainder is every byte/character that has been physically read from
// the Stream but not yet consumed via advance.
func (a *adapter) remainder() []byte {
	out := make([]byte, len(a.chunk)-a.chunkPos)
	copy(out, a.chunk[a.chunkPos:])
	return out
}

// park seeks the underlying Stream to pos and discards all buffered
// lookahead, so the next refill re-syncs chunkBaseOffset from wherever the
// Stream now sits (which may differ from pos if the caller subsequently
// moved it themselves — that is an explicit, supported case: see spec
// §4.E on staleness detection).
func (a *adapter) park(pos WideOffset) error {
	if !a.stream.Seekable() {
		return newConfigurationError("jsontok: ParkCursor requires a seekable stream")
	}
	if _, err := a.stream.Seek(pos, SeekAbsolute); err != nil {
		return newIOError(a.position(), err)
	}
	a.chunk = a.chunk[:0]
	a.chunkPos = 0
	a.hasPending = false
	a.reachedEOF = false
	return nil
}
