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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanOneString(t *testing.T, src string) (string, error) {
	t.Helper()
	tok, err := New(NewReaderStream(strings.NewReader(src)))
	require.NoError(t, err)
	tk, err := tok.Next()
	if err != nil {
		return "", err
	}
	return tk.Text(), nil
}

func TestStringBasicEscapes(t *testing.T) {
	got, err := scanOneString(t, `"a\"b\\c\/d\be\ff\ng\rh\ti"`)
	require.NoError(t, err)
	assert.Equal(t, "a\"b\\c/d\be\ff\ng\rh\ti", got)
}

func TestStringPlainUnicodeEscape(t *testing.T) {
	got, err := scanOneString(t, "\"\\u00e9\"")
	require.NoError(t, err)
	assert.Equal(t, "é", got)
}

// Surrogate pair round-trip (spec §8): a valid high/low surrogate escape
// pair joins into the single code point they encode, distinct from an
// adjacent, unrelated \u escape that follows it.
func TestStringSurrogatePairJoins(t *testing.T) {
	got, err := scanOneString(t, `"\uD83C\uDFD4\uFE0F"`)
	require.NoError(t, err)
	assert.Equal(t, "\U0001F3D4️", got)
}

func TestStringLoneHighSurrogateErrors(t *testing.T) {
	_, err := scanOneString(t, `"\uD800"`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "surrogate")
}

func TestStringLoneLowSurrogateErrors(t *testing.T) {
	_, err := scanOneString(t, `"\uDC00"`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "surrogate")
}

func TestStringInvalidEscapeCharacter(t *testing.T) {
	_, err := scanOneString(t, `"\z"`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid character code: 'z'")
}

func TestStringUnterminatedAtEOF(t *testing.T) {
	_, err := scanOneString(t, `"abc`)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnterminated)
}

func TestStringUnterminatedUnicodeEscape(t *testing.T) {
	_, err := scanOneString(t, `"\u12`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unterminated unicode literal at end of file")
}

func TestStringEncodingErrorOnInvalidUTF8(t *testing.T) {
	var sb strings.Builder
	sb.WriteByte('"')
	sb.WriteByte(0xff)
	sb.WriteByte('"')
	_, err := scanOneString(t, sb.String())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEncoding)
}
