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

package argument

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hornirlang/hornir"
)

type fakeResolver map[int]string

func (f fakeResolver) Resolve(id int) (string, bool) {
	s, ok := f[id]
	return s, ok
}

func print(t *testing.T, a hornir.Argument, syms hornir.SymbolResolver) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, a.Print(&buf, syms))
	return buf.String()
}

func TestCloneProducesFreshIdentity(t *testing.T) {
	require := require.New(t)

	v := NewVariable("X")
	clone := v.Clone()

	require.NotEqual(v.ID(), clone.ID())
	require.True(v.Equal(clone), "clone must be structurally equal to the original")
}

func TestVariablePrintAndEqual(t *testing.T) {
	require := require.New(t)

	x := NewVariable("X")
	require.Equal("X", print(t, x, nil))
	require.True(x.Equal(NewVariable("X")))
	require.False(x.Equal(NewVariable("Y")))
	require.False(x.Equal(NewUnnamedVariable()))
}

func TestUnnamedVariablePrint(t *testing.T) {
	require.Equal(t, "_", print(t, NewUnnamedVariable(), nil))
}

func TestCounterPrint(t *testing.T) {
	require.Equal(t, "$", print(t, NewCounter(), nil))
}

func TestStringConstantPrintResolvesSymbol(t *testing.T) {
	require := require.New(t)

	syms := fakeResolver{7: "hello"}
	s := NewStringConstant(7)

	require.Equal(`"hello"`, print(t, s, syms))
}

func TestStringConstantPrintUnknownSymbolErrors(t *testing.T) {
	s := NewStringConstant(99)
	var buf bytes.Buffer
	err := s.Print(&buf, fakeResolver{})
	require.Error(t, err)
}

func TestNumericConstantFromCoercesLooseTypes(t *testing.T) {
	require := require.New(t)

	n, err := NewNumericConstantFrom("42")
	require.NoError(err)
	require.Equal(int64(42), n.Value)

	_, err = NewNumericConstantFrom("not a number")
	require.Error(err)
}

func TestNilConstantPrintAndEqual(t *testing.T) {
	require := require.New(t)

	require.Equal("-", print(t, NewNilConstant(), nil))
	require.True(NewNilConstant().Equal(NewNilConstant()))
	require.False(NewNilConstant().Equal(NewVariable("X")))
}

func TestIntrinsicFunctorArityMismatchPanics(t *testing.T) {
	require.Panics(t, func() {
		NewIntrinsicFunctor(hornir.OpAdd, NewVariable("X"))
	})
}

func TestIntrinsicFunctorPrintInfix(t *testing.T) {
	f := NewIntrinsicFunctor(hornir.OpAdd, NewVariable("X"), NewVariable("Y"))
	require.Equal(t, "(X + Y)", print(t, f, nil))
}

func TestIntrinsicFunctorPrintPrefixWhenNoInfix(t *testing.T) {
	f := NewIntrinsicFunctor(hornir.OpBAnd, NewVariable("X"), NewVariable("Y"))
	require.Equal(t, "band(X,Y)", print(t, f, nil))
}

func TestUserFunctorPrint(t *testing.T) {
	f := NewUserFunctor("double", NewVariable("X"))
	require.Equal(t, "@double(X)", print(t, f, nil))
}

func TestRecordInitPrint(t *testing.T) {
	r := NewRecordInit(NewVariable("X"), NewNumericConstant(1))
	require.Equal(t, "[X,1]", print(t, r, nil))
}

func TestTypeCastPrint(t *testing.T) {
	c := NewTypeCast(NewVariable("X"), hornir.NewQualifiedName("Option"))
	require.Equal(t, "X as Option", print(t, c, nil))
}

func TestSubroutineArgNegativeIndexPanics(t *testing.T) {
	require.Panics(t, func() { NewSubroutineArg(-1) })
}

func TestSubroutineArgPrint(t *testing.T) {
	require.Equal(t, "arg(2)", print(t, NewSubroutineArg(2), nil))
}

func TestAggregatorPrintOmitsTargetForCount(t *testing.T) {
	a := NewAggregator(hornir.AggrCount, nil)
	require.Equal(t, "count : {  }", print(t, a, nil))
}

func TestAggregatorCloneDeepCopiesTargetAndBody(t *testing.T) {
	require := require.New(t)

	target := NewVariable("Total")
	a := NewAggregator(hornir.AggrSum, target)
	clone := a.Clone().(*Aggregator)

	require.True(a.Equal(clone))
	require.NotSame(target, clone.Target, "clone must not alias the original's Target")
}

func TestFunctorRewriteReplacesArgsInPlace(t *testing.T) {
	require := require.New(t)

	f := NewIntrinsicFunctor(hornir.OpAdd, NewVariable("X"), NewVariable("Y"))
	replacement := NewNumericConstant(1)

	node, ti, err := f.Rewrite(rewriteAllTo(replacement))
	require.NoError(err)
	require.Equal(hornir.NewTree, ti)

	rewritten := node.(*IntrinsicFunctor)
	require.Len(rewritten.Args, 2)
	require.True(rewritten.Args[0].Equal(replacement))
	require.True(rewritten.Args[1].Equal(replacement))
}

func TestLeafRewriteIsNoOp(t *testing.T) {
	require := require.New(t)

	v := NewVariable("X")
	node, ti, err := v.Rewrite(rewriteAllTo(NewNumericConstant(1)))
	require.NoError(err)
	require.Equal(hornir.SameTree, ti)
	require.Same(v, node)
}

// rewriteAllTo builds a hornir.Mapper that replaces every Argument slot it
// is handed directly (no recursion) with to, leaving Literals untouched.
func rewriteAllTo(to hornir.Argument) hornir.Mapper {
	return mapperFunc{arg: func(hornir.Argument) (hornir.Argument, hornir.TreeIdentity, error) {
		return to, hornir.NewTree, nil
	}}
}

type mapperFunc struct {
	arg func(hornir.Argument) (hornir.Argument, hornir.TreeIdentity, error)
}

func (m mapperFunc) MapArgument(a hornir.Argument) (hornir.Argument, hornir.TreeIdentity, error) {
	return m.arg(a)
}

func (m mapperFunc) MapLiteral(l hornir.Literal) (hornir.Literal, hornir.TreeIdentity, error) {
	return l, hornir.SameTree, nil
}
