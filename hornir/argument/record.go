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
	"io"

	"github.com/hornirlang/hornir"
)

// RecordInit constructs an anonymous tuple value from an ordered argument
// list.
type RecordInit struct {
	base
	Args []hornir.Argument
}

var _ hornir.Argument = (*RecordInit)(nil)

// NewRecordInit builds a record constructor.
func NewRecordInit(args ...hornir.Argument) *RecordInit {
	return &RecordInit{base: newBase(), Args: args}
}

// Clone returns a deep, independently-owned copy.
func (r *RecordInit) Clone() hornir.Argument {
	args := make([]hornir.Argument, len(r.Args))
	for i, a := range r.Args {
		args[i] = a.Clone()
	}
	return &RecordInit{base: newBase(), Args: args}
}

// Equal reports structural equality, ignoring SrcLoc. Argument order is
// significant.
func (r *RecordInit) Equal(other hornir.Node) bool {
	o, ok := other.(*RecordInit)
	if !ok || len(o.Args) != len(r.Args) {
		return false
	}
	for i := range r.Args {
		if !r.Args[i].Equal(o.Args[i]) {
			return false
		}
	}
	return true
}

// Children returns the argument list, in declaration order.
func (r *RecordInit) Children() []hornir.Node {
	out := make([]hornir.Node, len(r.Args))
	for i, a := range r.Args {
		out[i] = a
	}
	return out
}

// Print emits "[a,b,...]".
func (r *RecordInit) Print(w io.Writer, syms hornir.SymbolResolver) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}
	for i, a := range r.Args {
		if i > 0 {
			if _, err := io.WriteString(w, ","); err != nil {
				return err
			}
		}
		if err := a.Print(w, syms); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "]")
	return err
}

// Rewrite replaces each argument slot via m, in place.
func (r *RecordInit) Rewrite(m hornir.Mapper) (hornir.Node, hornir.TreeIdentity, error) {
	ti, err := rewriteArgs(r.Args, m)
	return r, ti, err
}
