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

// Package analyzer runs the clause normaliser over a translation unit and
// caches results, keyed by clause identity, for later passes to consult.
package analyzer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
	errors "gopkg.in/src-d/go-errors.v1"

	"github.com/hornirlang/hornir"
	"github.com/hornirlang/hornir/clause"
	"github.com/hornirlang/hornir/normalize"
)

// ErrAlreadyRun is raised when Run is invoked a second time against the
// same Registry. Re-running an analysis over a translation unit is a
// programming error, not a recoverable condition.
var ErrAlreadyRun = errors.NewKind("analyzer: run already invoked for this translation unit")

// ErrUnknownClause is raised by Get when asked for a clause that was never
// passed to Run.
var ErrUnknownClause = errors.NewKind("analyzer: no normalised result for this clause")

// Registry runs the clause normaliser over a Program's clauses and caches
// one NormalisedClause per clause identity (pointer equality). It is
// scoped to a single translation unit: construct a fresh Registry per
// Program, and call Run exactly once.
type Registry struct {
	normaliser *normalize.Normaliser
	tracer     opentracing.Tracer
	log        *logrus.Entry

	mu      sync.Mutex
	results map[*clause.Clause]*normalize.NormalisedClause
	ran     bool
}

// Option configures a Registry at construction.
type Option func(*Registry)

// WithTracer sets the opentracing.Tracer used to emit a child span per
// clause during Run. The default is opentracing.NoopTracer, so tracing is
// opt-in and costs nothing unless a real tracer is supplied.
func WithTracer(tracer opentracing.Tracer) Option {
	return func(r *Registry) { r.tracer = tracer }
}

// WithLogger sets the *logrus.Logger the Registry logs through. The
// default is logrus.StandardLogger().
func WithLogger(logger *logrus.Logger) Option {
	return func(r *Registry) { r.log = logger.WithField("system", "analyzer") }
}

// New builds a Registry backed by normaliser.
func New(normaliser *normalize.Normaliser, opts ...Option) *Registry {
	r := &Registry{
		normaliser: normaliser,
		tracer:     opentracing.NoopTracer{},
		log:        logrus.StandardLogger().WithField("system", "analyzer"),
		results:    make(map[*clause.Clause]*normalize.NormalisedClause),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run normalises every clause in program.Clauses and caches the result
// under that clause's identity. Calling Run a second time on the same
// Registry is a programming error: it returns ErrAlreadyRun without
// touching the cache.
func (r *Registry) Run(ctx context.Context, program *clause.Program) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ran {
		err := ErrAlreadyRun.New()
		r.log.WithError(err).Error("double analysis run")
		return err
	}

	span, _ := opentracing.StartSpanFromContextWithTracer(ctx, r.tracer, "analyzer.run")
	defer span.Finish()

	for _, c := range program.Clauses {
		clauseSpan, _ := opentracing.StartSpanFromContextWithTracer(ctx, r.tracer, "normalize.clause")
		nc := r.normaliser.Normalise(c)
		clauseSpan.Finish()

		r.results[c] = nc
		r.log.WithFields(logrus.Fields{
			"clause_id": c.ID().String(),
			"elements":  len(nc.Elements()),
		}).Debug("ran normalise")
	}

	r.ran = true
	return nil
}

// Get returns the cached NormalisedClause for c, or ErrUnknownClause if c
// was never passed to Run.
func (r *Registry) Get(c *clause.Clause) (*normalize.NormalisedClause, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	nc, ok := r.results[c]
	if !ok {
		return nil, ErrUnknownClause.New()
	}
	return nc, nil
}

// Equivalent reports whether a and b normalised to the same canonical
// form, by comparing their cached NormalisedClause content hashes rather
// than their (distinct) clause identities. Both must have already been
// passed to Run.
func (r *Registry) Equivalent(a, b *clause.Clause) (bool, error) {
	na, err := r.Get(a)
	if err != nil {
		return false, err
	}
	nb, err := r.Get(b)
	if err != nil {
		return false, err
	}

	ha, err := na.Hash()
	if err != nil {
		return false, err
	}
	hb, err := nb.Hash()
	if err != nil {
		return false, err
	}
	return ha == hb, nil
}

// Print serialises every cached clause's normal form as
// "Normalise(<clause>) = {element, element, ...}", one line per clause,
// in the order program.Clauses lists them.
func (r *Registry) Print(w io.Writer, program *clause.Program, syms hornir.SymbolResolver) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range program.Clauses {
		nc, ok := r.results[c]
		if !ok {
			continue
		}
		var clauseText bytes.Buffer
		if err := c.Print(&clauseText, syms); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, "Normalise(%s) = {", clauseText.String()); err != nil {
			return err
		}
		for i, el := range nc.Elements() {
			if i > 0 {
				if _, err := io.WriteString(w, ", "); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, el.String()); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "}\n"); err != nil {
			return err
		}
	}
	return nil
}
