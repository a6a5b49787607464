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

// Package replay re-renders a token stream back into canonical JSON text.
// It exists only to let tests assert the scanner's grammar-totality
// property: that a full scan of a valid document, with every token
// re-rendered and separated by single spaces, reproduces a text that
// means exactly what the source meant, character class by character
// class. It is not a value-graph builder and is not part of the public
// API.
package replay

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/streamtok/jsontok"
)

// Render walks toks, switching on each Token's Kind the way a value
// builder would, and writes its canonical textual form. Operators are
// emitted verbatim; strings are re-escaped from their decoded value so
// the output never depends on the source's own escaping choices; numbers
// are emitted via their decoded Number's canonical String form.
func Render(toks []jsontok.Token) (string, error) {
	var sb strings.Builder
	for i, tok := range toks {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch tok.Kind {
		case jsontok.KindOperator:
			sb.WriteByte(tok.Operator())
		case jsontok.KindString:
			if tok.IsLazyString() {
				text, err := tok.Reader().ReadAll()
				if err != nil {
					return "", fmt.Errorf("replay: draining lazy string: %w", err)
				}
				sb.WriteString(quoteJSON(text))
			} else {
				sb.WriteString(quoteJSON(tok.Text()))
			}
		case jsontok.KindNumber:
			sb.WriteString(tok.NumberValue().String())
		case jsontok.KindBoolean:
			if tok.Bool() {
				sb.WriteString("true")
			} else {
				sb.WriteString("false")
			}
		case jsontok.KindNull:
			sb.WriteString("null")
		default:
			return "", fmt.Errorf("replay: unknown token kind %v", tok.Kind)
		}
	}
	return sb.String(), nil
}

// quoteJSON renders s as a JSON string literal.
func quoteJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
