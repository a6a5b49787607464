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
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The numeric values of Kind are a wire contract; this pins them so an
// accidental reordering of the const block fails loudly.
func TestKindWireValues(t *testing.T) {
	assert.Equal(t, Kind(0), KindOperator)
	assert.Equal(t, Kind(1), KindString)
	assert.Equal(t, Kind(2), KindNumber)
	assert.Equal(t, Kind(3), KindBoolean)
	assert.Equal(t, Kind(4), KindNull)
}

func TestTokenTextPanicsOnLazyString(t *testing.T) {
	tk := Token{Kind: KindString, stringReader: &StringReader{}}
	assert.Panics(t, func() { tk.Text() })
}

func TestNumberStringRendersEachSort(t *testing.T) {
	assert.Equal(t, "42", Number{Sort: NumberInt, Int: 42}.String())
	big20 := new(big.Int).Exp(big.NewInt(10), big.NewInt(20), nil)
	assert.Equal(t, "100000000000000000000", Number{Sort: NumberBig, Big: big20}.String())
	assert.Equal(t, "3.5", Number{Sort: NumberFloat, Float: 3.5}.String())
}
