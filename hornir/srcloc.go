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

import "fmt"

// SrcLoc is a line/column span in a source file, attached to every AstNode
// for diagnostics. It carries value semantics and never participates in
// node equality.
type SrcLoc struct {
	File       string
	StartLine  int
	EndLine    int
	StartCol   int
	EndCol     int
}

// NoLoc is the zero-value location used by nodes built outside of parsing
// (tests, synthesized rewrites).
var NoLoc = SrcLoc{}

// String renders the location the way a compiler diagnostic would.
func (l SrcLoc) String() string {
	if l.File == "" {
		return "<unknown>"
	}
	if l.StartLine == l.EndLine {
		return fmt.Sprintf("%s:%d:%d-%d", l.File, l.StartLine, l.StartCol, l.EndCol)
	}
	return fmt.Sprintf("%s:%d:%d-%d:%d", l.File, l.StartLine, l.StartCol, l.EndLine, l.EndCol)
}
