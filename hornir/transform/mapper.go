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

// Package transform provides pass-level helpers over the hornir.Mapper
// protocol: single-slot function adapters and whole-subtree pre/post-order
// transforms, the way sql/transform and sql/visit layer convenience atop
// the teacher's sql.Node contract.
package transform

import "github.com/hornirlang/hornir"

// ArgumentFunc transforms a single Argument node.
type ArgumentFunc func(hornir.Argument) (hornir.Argument, hornir.TreeIdentity, error)

// LiteralFunc transforms a single Literal node.
type LiteralFunc func(hornir.Literal) (hornir.Literal, hornir.TreeIdentity, error)

// identityArg is the default ArgumentFunc: leaves the argument unchanged.
func identityArg(a hornir.Argument) (hornir.Argument, hornir.TreeIdentity, error) {
	return a, hornir.SameTree, nil
}

// identityLit is the default LiteralFunc: leaves the literal unchanged.
func identityLit(l hornir.Literal) (hornir.Literal, hornir.TreeIdentity, error) {
	return l, hornir.SameTree, nil
}

// Funcs adapts a pair of single-slot functions into a hornir.Mapper that
// applies each function directly to the slot it is handed, with no
// recursion. Useful when a pass already knows it is only ever invoked on
// direct children (e.g. by a node's own Rewrite method) and needs a Mapper
// value to pass in.
type Funcs struct {
	Argument ArgumentFunc
	Literal  LiteralFunc
}

var _ hornir.Mapper = Funcs{}

// MapArgument applies f.Argument, defaulting to the identity if unset.
func (f Funcs) MapArgument(a hornir.Argument) (hornir.Argument, hornir.TreeIdentity, error) {
	if f.Argument == nil {
		return identityArg(a)
	}
	return f.Argument(a)
}

// MapLiteral applies f.Literal, defaulting to the identity if unset.
func (f Funcs) MapLiteral(l hornir.Literal) (hornir.Literal, hornir.TreeIdentity, error) {
	if f.Literal == nil {
		return identityLit(l)
	}
	return f.Literal(l)
}
