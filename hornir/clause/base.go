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

// Package clause implements the Literal node variants (Atom, Negation,
// BinaryConstraint) and the Clause/Program container types built on top of
// the root hornir interfaces and the argument package.
package clause

import "github.com/hornirlang/hornir"

// base carries the identity and location every Literal variant shares.
type base struct {
	id  hornir.NodeID
	loc hornir.SrcLoc
}

func newBase() base {
	return base{id: hornir.NewNodeID()}
}

func (b base) ID() hornir.NodeID { return b.id }

func (b base) Loc() hornir.SrcLoc { return b.loc }

func (b *base) SetLoc(loc hornir.SrcLoc) { b.loc = loc }

func (base) literalNode() {}

// rewriteArgs applies m.MapArgument to each element of args in place,
// returning hornir.NewTree iff at least one element actually changed.
func rewriteArgs(args []hornir.Argument, m hornir.Mapper) (hornir.TreeIdentity, error) {
	changed := hornir.SameTree
	for i, a := range args {
		newArg, ti, err := m.MapArgument(a)
		if err != nil {
			return hornir.SameTree, err
		}
		if ti == hornir.NewTree {
			changed = hornir.NewTree
			args[i] = newArg
		}
	}
	return changed, nil
}
