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

package replay_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamtok/jsontok"
	"github.com/streamtok/jsontok/internal/replay"
)

// TestGrammarTotality checks the universal property from the tokenizer's
// testable-properties contract: scanning a valid document to completion
// and re-rendering every emitted token reproduces a text that re-tokenizes
// to the exact same sequence of token kinds, i.e. no character
// of the source was silently dropped or misclassified.
func TestGrammarTotality(t *testing.T) {
	docs := []string{
		`[1, 2, 3]`,
		`{"a": "b", "c": [true, false, null]}`,
		`[-1, 3.5, 1e10, 10000000000000000000000000000000000000000000000000]`,
		`["escape\nme", "unicodeé"]`,
	}

	for _, src := range docs {
		t.Run(src, func(t *testing.T) {
			toks := scanAll(t, src)
			rendered, err := replay.Render(toks)
			require.NoError(t, err)

			again := scanAll(t, rendered)
			require.Len(t, again, len(toks))
			for i := range toks {
				assert.Equal(t, toks[i].Kind, again[i].Kind)
			}
		})
	}
}

func scanAll(t *testing.T, src string) []jsontok.Token {
	t.Helper()
	tok, err := jsontok.New(jsontok.NewReaderStream(strings.NewReader(src)))
	require.NoError(t, err)
	var toks []jsontok.Token
	for {
		tk, err := tok.Next()
		if err == io.EOF {
			return toks
		}
		require.NoError(t, err)
		toks = append(toks, tk)
	}
}
