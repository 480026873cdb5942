// Copyright 2020-2021 Dolthub, Inc.
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

package hornir

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFunctorOpArity(t *testing.T) {
	require := require.New(t)

	require.Equal(1, OpNeg.Arity())
	require.Equal(2, OpAdd.Arity())
	require.Equal(3, OpSubstr.Arity())
	require.Equal("+", OpAdd.Infix())
	require.Equal("", OpBAnd.Infix())
	require.Equal(SortNumber, OpAdd.ReturnSort())
	require.Equal(SortSymbol, OpCat.ArgSort(0))
}

func TestFunctorOpUnknownPanics(t *testing.T) {
	require.Panics(t, func() { FunctorOp(999).Name() })
}

func TestFunctorOpArgSortOutOfRangePanics(t *testing.T) {
	require.Panics(t, func() { OpAdd.ArgSort(5) })
}

func TestCmpOpDualIsInvolution(t *testing.T) {
	require := require.New(t)

	ops := []CmpOp{CmpEq, CmpNe, CmpLt, CmpLe, CmpGt, CmpGe}
	for _, op := range ops {
		require.Equal(op, op.Dual().Dual(), "Dual should be its own inverse for %s", op.Symbol())
	}
	require.Equal(CmpGt, CmpLt.Dual())
	require.Equal(CmpLe, CmpGe.Dual())
}

func TestAggregatorOpName(t *testing.T) {
	require := require.New(t)

	require.Equal("count", AggrCount.Name())
	require.Equal("sum", AggrSum.Name())
	require.Panics(func() { AggregatorOp(999).Name() })
}

func TestQualifiedNameString(t *testing.T) {
	require := require.New(t)

	qn := NewQualifiedName("pkg", "Relation")
	require.Equal("pkg.Relation", qn.String())
	require.Equal([]string{"pkg", "Relation"}, qn.Parts())
}

func TestQualifiedNamePrependAppendDoNotAliasOriginal(t *testing.T) {
	require := require.New(t)

	base := NewQualifiedName("b")
	withPrefix := base.Prepend("a")
	withSuffix := base.Append("c")

	require.Equal("a.b", withPrefix.String())
	require.Equal("b.c", withSuffix.String())
	require.Equal("b", base.String(), "Prepend/Append must not mutate the receiver")
}

func TestQualifiedNameEqual(t *testing.T) {
	require := require.New(t)

	require.True(NewQualifiedName("a", "b").Equal(NewQualifiedName("a", "b")))
	require.False(NewQualifiedName("a", "b").Equal(NewQualifiedName("a")))
	require.False(NewQualifiedName("a", "b").Equal(NewQualifiedName("a", "c")))
}
