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

// Position is a token's location in the source: the byte offset and the
// JSON source-character index consumed so far. Char counts source
// characters as written, so an escape sequence such as \n counts once for
// each of its characters.
type Position struct {
	Byte uint64
	Char uint64
}

// WideOffset is an underlying-stream cursor position. Byte sources report
// offsets that fit comfortably in a uint64, but some text streams (notably
// Python-style text-mode files on certain hosts) report opaque cursor
// values that do not. WideOffset carries arbitrary precision so the cursor
// controller never has to assume a position, or a difference of two
// positions, fits in a fixed-width integer.
type WideOffset struct {
	v *big.Int
}

// ZeroOffset is the WideOffset at the start of a stream.
func ZeroOffset() WideOffset {
	return WideOffset{v: big.NewInt(0)}
}

// FromUint64 builds a WideOffset from an exact byte count.
func FromUint64(n uint64) WideOffset {
	return WideOffset{v: new(big.Int).SetUint64(n)}
}

// FromBigInt builds a WideOffset from an arbitrary-precision value, as
// reported verbatim by a text stream's tell().
func FromBigInt(n *big.Int) WideOffset {
	return WideOffset{v: new(big.Int).Set(n)}
}

// Add returns o + n.
func (o WideOffset) Add(n uint64) WideOffset {
	return WideOffset{v: new(big.Int).Add(o.v, new(big.Int).SetUint64(n))}
}

// Equal reports whether the two offsets denote the same position.
func (o WideOffset) Equal(other WideOffset) bool {
	return o.v.Cmp(other.v) == 0
}

// Less reports whether o precedes other.
func (o WideOffset) Less(other WideOffset) bool {
	return o.v.Cmp(other.v) < 0
}

// BigInt exposes the raw arbitrary-precision value, e.g. to hand to a
// Stream's Seek implementation.
func (o WideOffset) BigInt() *big.Int {
	return new(big.Int).Set(o.v)
}

// String renders the offset in decimal, for error messages and logs.
func (o WideOffset) String() string {
	return o.v.String()
}
