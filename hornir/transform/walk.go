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

package transform

import (
	"github.com/hornirlang/hornir"
	"github.com/hornirlang/hornir/clause"
)

// recurser is a hornir.Mapper that recurses into every descendant,
// applying argFn/litFn either before (pre-order) or after (post-order)
// descending into a node's own children. Per the node contract, a node's
// Rewrite only ever touches its direct children -- full-tree recursion is
// the pass's responsibility, implemented here by recurser calling back
// into itself as the Mapper each Rewrite is given.
type recurser struct {
	argFn ArgumentFunc
	litFn LiteralFunc
	pre   bool
}

func combine(a, b hornir.TreeIdentity) hornir.TreeIdentity {
	if a == hornir.NewTree || b == hornir.NewTree {
		return hornir.NewTree
	}
	return hornir.SameTree
}

func (r recurser) MapArgument(a hornir.Argument) (hornir.Argument, hornir.TreeIdentity, error) {
	if r.pre {
		visited, ti1, err := r.argFn(a)
		if err != nil {
			return nil, hornir.SameTree, err
		}
		node, ti2, err := visited.Rewrite(r)
		if err != nil {
			return nil, hornir.SameTree, err
		}
		return node.(hornir.Argument), combine(ti1, ti2), nil
	}

	node, ti1, err := a.Rewrite(r)
	if err != nil {
		return nil, hornir.SameTree, err
	}
	descended := node.(hornir.Argument)
	visited, ti2, err := r.argFn(descended)
	if err != nil {
		return nil, hornir.SameTree, err
	}
	return visited, combine(ti1, ti2), nil
}

func (r recurser) MapLiteral(l hornir.Literal) (hornir.Literal, hornir.TreeIdentity, error) {
	if r.pre {
		visited, ti1, err := r.litFn(l)
		if err != nil {
			return nil, hornir.SameTree, err
		}
		node, ti2, err := visited.Rewrite(r)
		if err != nil {
			return nil, hornir.SameTree, err
		}
		return node.(hornir.Literal), combine(ti1, ti2), nil
	}

	node, ti1, err := l.Rewrite(r)
	if err != nil {
		return nil, hornir.SameTree, err
	}
	descended := node.(hornir.Literal)
	visited, ti2, err := r.litFn(descended)
	if err != nil {
		return nil, hornir.SameTree, err
	}
	return visited, combine(ti1, ti2), nil
}

// TransformArgumentUp applies fn to every Argument in the subtree rooted
// at a, post-order (children before parents).
func TransformArgumentUp(a hornir.Argument, fn ArgumentFunc) (hornir.Argument, hornir.TreeIdentity, error) {
	return recurser{argFn: fn, litFn: identityLit, pre: false}.MapArgument(a)
}

// TransformArgumentDown applies fn to every Argument in the subtree rooted
// at a, pre-order (parents before children).
func TransformArgumentDown(a hornir.Argument, fn ArgumentFunc) (hornir.Argument, hornir.TreeIdentity, error) {
	return recurser{argFn: fn, litFn: identityLit, pre: true}.MapArgument(a)
}

// TransformLiteralUp applies fn to every Literal in the subtree rooted at
// l (and every Argument beneath it, left unchanged), post-order.
func TransformLiteralUp(l hornir.Literal, fn LiteralFunc) (hornir.Literal, hornir.TreeIdentity, error) {
	return recurser{argFn: identityArg, litFn: fn, pre: false}.MapLiteral(l)
}

// TransformLiteralDown applies fn to every Literal in the subtree rooted
// at l, pre-order.
func TransformLiteralDown(l hornir.Literal, fn LiteralFunc) (hornir.Literal, hornir.TreeIdentity, error) {
	return recurser{argFn: identityArg, litFn: fn, pre: true}.MapLiteral(l)
}

// TransformClauseUp applies argFn to every Argument and litFn to every
// Literal reachable from c (including nested Aggregator scopes), in a
// single post-order pass over the whole clause.
func TransformClauseUp(c *clause.Clause, argFn ArgumentFunc, litFn LiteralFunc) (hornir.TreeIdentity, error) {
	r := recurser{argFn: argFn, litFn: litFn, pre: false}
	return c.RewriteBody(r)
}

// TransformClauseDown is TransformClauseUp's pre-order counterpart.
func TransformClauseDown(c *clause.Clause, argFn ArgumentFunc, litFn LiteralFunc) (hornir.TreeIdentity, error) {
	r := recurser{argFn: argFn, litFn: litFn, pre: true}
	return c.RewriteBody(r)
}
