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

import "math/big"

// Kind is the tag of a Token's union. The five numeric values are a wire
// contract: downstream callers rely on exactly these values, so the order
// of this block must never change.
type Kind int

const (
	KindOperator Kind = iota // 0: one of { } [ ] , :
	KindString               // 1: a JSON string, materialized or lazy
	KindNumber               // 2: a JSON number
	KindBoolean              // 3: true or false
	KindNull                 // 4: null
)

func (k Kind) String() string {
	switch k {
	case KindOperator:
		return "Operator"
	case KindString:
		return "String"
	case KindNumber:
		return "Number"
	case KindBoolean:
		return "Boolean"
	case KindNull:
		return "Null"
	default:
		return "Invalid"
	}
}

// NumberSort distinguishes which alternative of the Number union a token
// carries, per the promotion rules in spec §4.C.
type NumberSort int

const (
	// NumberInt is a machine-sized signed integer.
	NumberInt NumberSort = iota
	// NumberBig is an arbitrary-precision integer with no fractional part
	// and no exponent, too large for NumberInt.
	NumberBig
	// NumberFloat is a 64-bit float, used whenever a fractional part or
	// exponent is present.
	NumberFloat
)

// Number is the decoded value of a Number token.
type Number struct {
	Sort  NumberSort
	Int   int64
	Big   *big.Int
	Float float64
}

// String renders the number back to the shortest decimal text that
// round-trips: the literal digits for Int/Big, and Go's shortest
// float-to-string form for Float.
func (n Number) String() string {
	switch n.Sort {
	case NumberInt:
		return big.NewInt(n.Int).String()
	case NumberBig:
		return n.Big.String()
	default:
		return formatFloat(n.Float)
	}
}

// Token is the tagged union emitted by the tokenizer's public Next method:
// Operator | String | Number | Boolean | Null. Exactly one accessor group
// is meaningful, selected by Kind.
type Token struct {
	Kind  Kind
	Start Position
	End   Position

	operatorChar byte

	// String alternative. Exactly one of stringText/stringReader is set
	// once a String token has been produced, depending on whether
	// WithStringsAsFiles(true) was given.
	stringText   string
	stringReader *StringReader

	number Number

	boolValue bool
}

// Operator returns the operator byte for a KindOperator token: one of
// '{', '}', '[', ']', ',', ':'.
func (t Token) Operator() byte {
	return t.operatorChar
}

// Text returns the materialized string value of a KindString token. It
// panics if the token was produced with WithStringsAsFiles(true), where the value is
// only available via Reader.
func (t Token) Text() string {
	if t.stringReader != nil {
		panic("jsontok: Token.Text called on a lazy (strings-as-files) string token; use Token.Reader instead")
	}
	return t.stringText
}

// IsLazyString reports whether this String token's value must be read via
// Reader rather than Text.
func (t Token) IsLazyString() bool {
	return t.stringReader != nil
}

// Reader returns the lazy string reader handle for a KindString token
// produced under WithStringsAsFiles(true). It returns nil for materialized
// string tokens.
func (t Token) Reader() *StringReader {
	return t.stringReader
}

// NumberValue returns the decoded value of a KindNumber token.
func (t Token) NumberValue() Number {
	return t.number
}

// Bool returns the decoded value of a KindBoolean token.
func (t Token) Bool() bool {
	return t.boolValue
}
