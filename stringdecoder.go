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

// stringDecoder decodes a single JSON string literal's content, one
// logical output character at a time, directly from the adapter. The
// opening quote must already have been consumed before it is constructed.
// This is Component D (spec §4.D); it backs both the eager, fully
// materialized String token and the lazy StringReader handle, so the two
// modes share exactly one escape/surrogate implementation.
type stringDecoder struct {
	a *adapter
}

// next decodes the next logical output character. done is true once the
// closing quote has been consumed, at which point r is meaningless.
func (d *stringDecoder) next() (r rune, done bool, err error) {
	ch, ok, err := d.a.peek()
	if err != nil {
		return 0, false, err
	}
	if !ok {
		return 0, false, newUnterminated(d.a.position(), "Unterminated string literal")
	}
	if ch == '"' {
		d.a.advance()
		return 0, true, nil
	}
	if ch != '\\' {
		d.a.advance()
		return ch, false, nil
	}

	d.a.advance() // consume '\\'
	ech, ok, err := d.a.peek()
	if err != nil {
		return 0, false, err
	}
	if !ok {
		return 0, false, newUnterminated(d.a.position(), "Unterminated unicode literal at end of file")
	}

	switch ech {
	case '"', '\\', '/':
		d.a.advance()
		return ech, false, nil
	case 'b':
		d.a.advance()
		return '\b', false, nil
	case 'f':
		d.a.advance()
		return '\f', false, nil
	case 'n':
		d.a.advance()
		return '\n', false, nil
	case 'r':
		d.a.advance()
		return '\r', false, nil
	case 't':
		d.a.advance()
		return '\t', false, nil
	case 'u':
		d.a.advance()
		cp, err := d.readHex4()
		if err != nil {
			return 0, false, err
		}
		switch {
		case cp >= 0xD800 && cp <= 0xDBFF:
			return d.readLowSurrogate(cp)
		case cp >= 0xDC00 && cp <= 0xDFFF:
			return 0, false, newInvalidEscape(d.a.position(), "invalid surrogate pair: lone low surrogate \\u%04X", cp)
		default:
			return rune(cp), false, nil
		}
	default:
		pos := d.a.position()
		d.a.advance()
		return 0, false, newInvalidEscape(pos, "Invalid character code: '%c' at index %d", ech, pos.Char)
	}
}

func (d *stringDecoder) readHex4() (int, error) {
	var v int
	for i := 0; i < 4; i++ {
		ch, ok, err := d.a.peek()
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, newUnterminated(d.a.position(), "Unterminated unicode literal at end of file")
		}
		digit, valid := hexDigit(ch)
		if !valid {
			return 0, newInvalidEscape(d.a.position(), "Invalid character code: '%c' at index %d", ch, d.a.position().Char)
		}
		d.a.advance()
		v = v*16 + digit
	}
	return v, nil
}

// readLowSurrogate is entered right after decoding a high surrogate code
// point; it expects exactly "\uXXXX" naming a low surrogate next and joins
// the pair per spec §4.D.
func (d *stringDecoder) readLowSurrogate(hi int) (rune, bool, error) {
	ch, ok, err := d.a.peek()
	if err != nil {
		return 0, false, err
	}
	if !ok || ch != '\\' {
		return 0, false, newInvalidEscape(d.a.position(), "unterminated surrogate pair: high surrogate \\u%04X not followed by a low surrogate escape", hi)
	}
	d.a.advance()
	ch2, ok2, err2 := d.a.peek()
	if err2 != nil {
		return 0, false, err2
	}
	if !ok2 || ch2 != 'u' {
		return 0, false, newInvalidEscape(d.a.position(), "invalid surrogate pair: expected a \\u escape after high surrogate \\u%04X", hi)
	}
	d.a.advance()
	lo, err := d.readHex4()
	if err != nil {
		return 0, false, err
	}
	if lo < 0xDC00 || lo > 0xDFFF {
		return 0, false, newInvalidEscape(d.a.position(), "invalid surrogate pair: \\u%04X is not a valid low surrogate following high surrogate \\u%04X", lo, hi)
	}
	combined := 0x10000 + ((hi - 0xD800) << 10) + (lo - 0xDC00)
	return rune(combined), false, nil
}

func hexDigit(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10, true
	}
	return 0, false
}
