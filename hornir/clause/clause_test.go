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

package clause

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hornirlang/hornir"
	"github.com/hornirlang/hornir/argument"
)

func print(t *testing.T, n hornir.Literal, syms hornir.SymbolResolver) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Print(&buf, syms))
	return buf.String()
}

func TestAtomPrint(t *testing.T) {
	a := NewAtom(hornir.NewQualifiedName("edge"), argument.NewVariable("X"), argument.NewVariable("Y"))
	require.Equal(t, "edge(X,Y)", print(t, a, nil))
}

func TestAtomCloneIsIndependent(t *testing.T) {
	require := require.New(t)

	a := NewAtom(hornir.NewQualifiedName("p"), argument.NewVariable("X"))
	clone := a.Clone().(*Atom)

	require.True(a.Equal(clone))
	require.NotEqual(a.ID(), clone.ID())
	require.NotSame(a.Args[0], clone.Args[0])
}

func TestNegationPrint(t *testing.T) {
	n := NewNegation(NewAtom(hornir.NewQualifiedName("p"), argument.NewVariable("X")))
	require.Equal(t, "!p(X)", print(t, n, nil))
}

func TestNegationRewritePoisonsOnNonAtom(t *testing.T) {
	n := NewNegation(NewAtom(hornir.NewQualifiedName("p"), argument.NewVariable("X")))
	bad := NewBinaryConstraint(hornir.CmpEq, argument.NewVariable("X"), argument.NewVariable("Y"))

	_, _, err := n.Rewrite(replaceLiteralWith(bad))
	require.Error(t, err)
}

func TestBinaryConstraintPrint(t *testing.T) {
	c := NewBinaryConstraint(hornir.CmpLe, argument.NewVariable("X"), argument.NewNumericConstant(3))
	require.Equal(t, "(X <= 3)", print(t, c, nil))
}

func TestClauseEqualIsOrderSignificant(t *testing.T) {
	require := require.New(t)

	edge := hornir.NewQualifiedName("edge")
	path := hornir.NewQualifiedName("path")
	x, y, z := argument.NewVariable("X"), argument.NewVariable("Y"), argument.NewVariable("Z")

	c1 := NewClause(NewAtom(path, x, y), NewAtom(edge, x, z), NewAtom(edge, z, y))
	c2 := NewClause(NewAtom(path, x, y), NewAtom(edge, x, z), NewAtom(edge, z, y))
	c3 := NewClause(NewAtom(path, x, y), NewAtom(edge, z, y), NewAtom(edge, x, z))

	require.True(c1.Equal(c2))
	require.False(c1.Equal(c3), "Equal is order-significant; use normalize for order-invariant comparison")
}

func TestClauseCloneIsDeepAndFreshlyIdentified(t *testing.T) {
	require := require.New(t)

	c := NewClause(NewAtom(hornir.NewQualifiedName("p"), argument.NewVariable("X")))
	clone := c.Clone()

	require.NotEqual(c.ID(), clone.ID())
	require.True(c.Equal(clone))
	require.NotSame(c.Head, clone.Head)
}

func TestClausePrintFact(t *testing.T) {
	c := NewClause(NewAtom(hornir.NewQualifiedName("p"), argument.NewNumericConstant(1)))
	var buf bytes.Buffer
	require.NoError(t, c.Print(&buf, nil))
	require.Equal(t, "p(1).", buf.String())
}

func TestClausePrintRule(t *testing.T) {
	edge := hornir.NewQualifiedName("edge")
	path := hornir.NewQualifiedName("path")
	x, y := argument.NewVariable("X"), argument.NewVariable("Y")

	c := NewClause(NewAtom(path, x, y), NewAtom(edge, x, y))
	var buf bytes.Buffer
	require.NoError(t, c.Print(&buf, nil))
	require.Equal(t, "path(X,Y) :- edge(X,Y).", buf.String())
}

func TestRewriteBodyReplacesHeadAndBody(t *testing.T) {
	require := require.New(t)

	p := hornir.NewQualifiedName("p")
	q := hornir.NewQualifiedName("q")
	c := NewClause(NewAtom(p, argument.NewVariable("X")), NewAtom(q, argument.NewVariable("X")))

	renamed := NewAtom(hornir.NewQualifiedName("renamed"), argument.NewVariable("X"))
	ti, err := c.RewriteBody(replaceAllAtomsWith(renamed))
	require.NoError(err)
	require.Equal(hornir.NewTree, ti)
	require.True(c.Head.Equal(renamed))
	require.True(c.Body[0].Equal(renamed))
}

// replaceLiteralWith returns a Mapper that replaces any Literal it is
// handed directly with to, with no recursion.
func replaceLiteralWith(to hornir.Literal) hornir.Mapper {
	return testMapper{lit: func(hornir.Literal) (hornir.Literal, hornir.TreeIdentity, error) {
		return to, hornir.NewTree, nil
	}}
}

// replaceAllAtomsWith replaces every Atom-shaped Literal slot with to,
// leaving other literal kinds untouched.
func replaceAllAtomsWith(to *Atom) hornir.Mapper {
	return testMapper{lit: func(l hornir.Literal) (hornir.Literal, hornir.TreeIdentity, error) {
		if _, ok := l.(*Atom); ok {
			return to, hornir.NewTree, nil
		}
		return l, hornir.SameTree, nil
	}}
}

type testMapper struct {
	lit func(hornir.Literal) (hornir.Literal, hornir.TreeIdentity, error)
}

func (m testMapper) MapArgument(a hornir.Argument) (hornir.Argument, hornir.TreeIdentity, error) {
	return a, hornir.SameTree, nil
}

func (m testMapper) MapLiteral(l hornir.Literal) (hornir.Literal, hornir.TreeIdentity, error) {
	return m.lit(l)
}
