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

package jsontok_test

import (
	"io"
	"strings"
	"testing"

	"github.com/streamtok/jsontok"
	"github.com/streamtok/jsontok/internal/replay"
)

// FuzzTokenize exercises the scanner against arbitrary input the way
// jibby's legacy build-tagged fuzz harness exercised its decoder: it never
// asserts validity against another implementation (the tokenizer, unlike
// jibby, doesn't enforce document-level grammar), only that the scanner
// never panics and that a document it fully accepts is self-consistent
// under replay.Render: re-tokenizing the rendered text yields the same
// sequence of token kinds as the original scan.
func FuzzTokenize(f *testing.F) {
	seeds := []string{
		``,
		`   `,
		`{`,
		`[`,
		`"`,
		`"\"`,
		`"\u"`,
		`"\uD800"`,
		`"𐀀"`,
		`0`,
		`01`,
		`-`,
		`-0`,
		`1.`,
		`1e`,
		`1e+`,
		`123456789012345678901234567890`,
		`true`,
		`tru`,
		`null`,
		`nul`,
		`[1, "a", true, null, {"k": [1,2,3]}]`,
		string([]byte{'"', 0xff, '"'}),
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, src string) {
		toks, ok := scanAll(t, src)
		if !ok {
			return
		}

		rendered, err := replay.Render(toks)
		if err != nil {
			t.Fatalf("replay.Render failed on an accepted document: %v", err)
		}

		again, ok := scanAll(t, rendered)
		if !ok {
			t.Fatalf("re-tokenizing the rendered form of an accepted document failed: %q", rendered)
		}
		if len(again) != len(toks) {
			t.Fatalf("token count changed across replay: got %d, want %d", len(again), len(toks))
		}
		for i := range toks {
			if again[i].Kind != toks[i].Kind {
				t.Fatalf("token %d kind changed across replay: got %v, want %v", i, again[i].Kind, toks[i].Kind)
			}
		}
	})
}

// scanAll scans src to completion, returning ok=false if the document was
// rejected (a TokenizeError, not a test failure in its own right).
func scanAll(t *testing.T, src string) ([]jsontok.Token, bool) {
	t.Helper()
	tok, err := jsontok.New(jsontok.NewReaderStream(strings.NewReader(src)))
	if err != nil {
		t.Fatalf("New returned a configuration error for a plain reader stream: %v", err)
	}
	var toks []jsontok.Token
	for {
		tk, err := tok.Next()
		if err == io.EOF {
			return toks, true
		}
		if err != nil {
			return nil, false
		}
		toks = append(toks, tk)
	}
}
