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

import errors "gopkg.in/src-d/go-errors.v1"

var (
	// ErrArityMismatch is raised when a functor is constructed with a
	// number of arguments that does not match its op's fixed arity.
	ErrArityMismatch = errors.NewKind("arity mismatch for %s: expected %d argument(s), got %d")

	// ErrIncompatibleVariants describes a comparison between nodes of
	// different concrete variants. No Equal implementation raises it:
	// Equal returns false when the variants differ.
	ErrIncompatibleVariants = errors.NewKind("cannot compare incompatible node variants: %T and %T")

	// ErrChildIndexOutOfRange is raised (as a panic) by
	// argument.NewSubroutineArg when given a negative index.
	ErrChildIndexOutOfRange = errors.NewKind("child index %d out of range (node has %d children)")

	// ErrUnknownSymbol is raised by a SymbolTable when asked to resolve
	// an id it never interned.
	ErrUnknownSymbol = errors.NewKind("unknown interned symbol id %d")

	// ErrTreePoisoned is raised when a mapper returns an invalid subtree
	// mid-rewrite (a non-Atom for a slot that must hold an Atom); the
	// enclosing pass must treat the whole tree as poisoned and fail. A
	// panicking mapper is not recovered into this error.
	ErrTreePoisoned = errors.NewKind("tree poisoned during rewrite: %s")
)
