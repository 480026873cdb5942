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

// Command hornirfmt builds a small fixed program, runs the analyzer
// registry over it, and prints both the program's surface syntax and its
// normalised form, followed by any accumulated diagnostics. It exists to
// exercise the hornir/argument, hornir/clause, hornir/normalize,
// hornir/analyzer and hornir/diagnostic packages end to end.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/hornirlang/hornir"
	"github.com/hornirlang/hornir/analyzer"
	"github.com/hornirlang/hornir/argument"
	"github.com/hornirlang/hornir/clause"
	"github.com/hornirlang/hornir/diagnostic"
	"github.com/hornirlang/hornir/normalize"
	"github.com/hornirlang/hornir/symtab"
)

func main() {
	verbose := flag.Bool("v", false, "log normalisation at debug level")
	flag.Parse()

	log := logrus.New()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if err := run(log); err != nil {
		fmt.Fprintln(os.Stderr, "hornirfmt:", err)
		os.Exit(1)
	}
}

// run builds path(X, Y) :- edge(X, Y). and path(X, Y) :- edge(X, Z), path(Z, Y).
// -- the textbook transitive-closure program -- and prints its normal form.
func run(log *logrus.Logger) error {
	syms := symtab.New()
	program := clause.NewProgram(syms)

	edge := hornir.NewQualifiedName("edge")
	path := hornir.NewQualifiedName("path")

	x := argument.NewVariable("X")
	y := argument.NewVariable("Y")
	z := argument.NewVariable("Z")

	base := clause.NewClause(
		clause.NewAtom(path, x, y),
		clause.NewAtom(edge, x, y),
	)
	recursive := clause.NewClause(
		clause.NewAtom(path, x, y),
		clause.NewAtom(edge, x, z),
		clause.NewAtom(path, z, y),
	)
	program.AddClause(base)
	program.AddClause(recursive)

	for _, c := range program.Clauses {
		if err := c.Print(os.Stdout, syms); err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout)
	}

	sink := diagnostic.NewSink(log)
	normaliser := normalize.New(syms, log, normalize.WithSink(sink))
	registry := analyzer.New(normaliser, analyzer.WithLogger(log))

	if err := registry.Run(context.Background(), program); err != nil {
		return err
	}
	if err := registry.Print(os.Stdout, program, syms); err != nil {
		return err
	}

	for _, d := range sink.Diagnostics() {
		fmt.Fprintln(os.Stderr, d.String())
	}
	return nil
}
