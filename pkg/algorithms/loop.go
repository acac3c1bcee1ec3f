/*
Copyright 2024 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package algorithms composes the core components into runnable
// metaheuristics. Loop is the generational skeleton shared by NSGA-II,
// MOCell and SMS-EMOA; SMPSO drives a swarm instead of a population.
package algorithms

import (
	"context"
	"fmt"

	"golang.org/x/exp/rand"
	"k8s.io/klog/v2"
	"k8s.io/utils/clock"

	"github.com/mihai-snyk/paretokit/pkg/archive"
	"github.com/mihai-snyk/paretokit/pkg/evaluation"
	"github.com/mihai-snyk/paretokit/pkg/framework"
	"github.com/mihai-snyk/paretokit/pkg/initialization"
	"github.com/mihai-snyk/paretokit/pkg/operators"
	"github.com/mihai-snyk/paretokit/pkg/replacement"
	"github.com/mihai-snyk/paretokit/pkg/selection"
	"github.com/mihai-snyk/paretokit/pkg/termination"
)

// State is the phase a Loop is in.
type State int

const (
	StateInit State = iota
	StateEvaluateInitial
	StateSelect
	StateVary
	StateEvaluateOffspring
	StateReplace
	StateDone
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "Init"
	case StateEvaluateInitial:
		return "EvaluateInitial"
	case StateSelect:
		return "Select"
	case StateVary:
		return "Vary"
	case StateEvaluateOffspring:
		return "EvaluateOffspring"
	case StateReplace:
		return "Replace"
	case StateDone:
		return "Done"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Observer is notified once after the initial population is evaluated and
// once per generation. Observers run on the loop goroutine and must not keep
// the population slice.
type Observer interface {
	Update(ctx context.Context, p framework.Progress)
}

// Loop runs evaluate, select, vary, evaluate, replace until Termination is
// met. All fields except Archive and Observers are required.
type Loop struct {
	Name           string
	Problem        framework.Problem
	PopulationSize int

	Initializer initialization.Initializer
	Evaluator   evaluation.Evaluator
	Selection   selection.Selection
	Variation   *operators.Variation
	Replacement replacement.Replacement
	Termination termination.Termination

	// Archive, when set, receives every evaluated solution and its contents
	// are the result of the run.
	Archive   archive.Archive
	Rng       *rand.Rand
	Observers []Observer
	// Clock measures Progress.Elapsed. Nil means the wall clock.
	Clock clock.PassiveClock

	state    State
	progress framework.Progress
}

// State returns the phase the loop is in. It is only meaningful from the
// goroutine running Run, for example inside an observer.
func (l *Loop) State() State {
	return l.state
}

// Progress returns the bookkeeping of the last completed generation.
func (l *Loop) Progress() framework.Progress {
	return l.progress
}

func (l *Loop) validate() error {
	switch {
	case l.Problem == nil:
		return framework.InvalidConfigf("loop needs a problem")
	case l.PopulationSize < 1:
		return framework.InvalidConfigf("population size must be at least 1, got %d", l.PopulationSize)
	case l.Initializer == nil, l.Evaluator == nil, l.Selection == nil, l.Variation == nil,
		l.Replacement == nil, l.Termination == nil:
		return framework.InvalidConfigf("loop is missing a component")
	case l.Rng == nil:
		return framework.ErrNilRandomSource
	}
	return nil
}

// Run executes the algorithm and returns the final population, or the
// archive contents when an archive is configured. If ctx is cancelled the
// run stops at the next generation boundary and returns the current result
// together with ctx.Err().
func (l *Loop) Run(ctx context.Context) ([]*framework.Solution, error) {
	if err := l.validate(); err != nil {
		return nil, err
	}
	logger := klog.FromContext(ctx).WithValues("algorithm", l.Name, "problem", l.Problem.Name())
	clk := passiveClock(l.Clock)
	startTime := clk.Now()

	l.state = StateInit
	population, err := l.Initializer.Initialize(ctx, l.Problem, l.PopulationSize, l.Rng)
	if err != nil {
		return nil, fmt.Errorf("initializing population: %w", err)
	}
	if len(population) == 0 {
		return nil, framework.ErrEmptyPopulation
	}
	logger.V(1).Info("Starting evolution",
		"populationSize", l.PopulationSize,
		"offspringSize", l.Variation.OffspringSize,
		"evaluator", fmt.Sprintf("%T", l.Evaluator),
	)

	l.state = StateEvaluateInitial
	if err := l.Evaluator.Evaluate(ctx, population, l.Problem); err != nil {
		return nil, err
	}
	l.offer(population)
	// Rank the initial population so that selection can read the attributes
	if population, err = l.Replacement.Replace(population, nil); err != nil {
		return nil, err
	}
	l.progress = framework.Progress{
		Evaluations: len(population),
		Elapsed:     clk.Since(startTime),
		Population:  l.result(population),
	}
	l.notify(ctx)

	for !l.Termination.IsMet(l.progress) {
		if err := ctx.Err(); err != nil {
			l.state = StateDone
			logger.V(1).Info("Evolution cancelled", "generation", l.progress.Generation)
			return l.result(population), err
		}

		l.state = StateSelect
		pool, err := l.Selection.Select(population, l.Variation.MatingPoolSize(), l.Rng)
		if err != nil {
			return nil, fmt.Errorf("selection: %w", err)
		}

		l.state = StateVary
		offspring, err := l.Variation.Apply(pool, l.Rng)
		if err != nil {
			return nil, fmt.Errorf("variation: %w", err)
		}

		l.state = StateEvaluateOffspring
		if err := l.Evaluator.Evaluate(ctx, offspring, l.Problem); err != nil {
			return nil, err
		}
		l.offer(offspring)

		l.state = StateReplace
		population, err = l.Replacement.Replace(population, offspring)
		if err != nil {
			return nil, fmt.Errorf("replacement: %w", err)
		}
		if len(population) == 0 || (l.Archive != nil && l.Archive.Size() == 0) {
			return nil, framework.ErrEmptyPopulation
		}

		l.progress.Generation++
		l.progress.Evaluations += len(offspring)
		l.progress.Elapsed = clk.Since(startTime)
		l.progress.Population = l.result(population)
		l.notify(ctx)
	}

	l.state = StateDone
	logger.V(1).Info("Evolution complete",
		"generations", l.progress.Generation,
		"evaluations", l.progress.Evaluations,
		"resultSize", len(l.progress.Population),
		"duration", l.progress.Elapsed,
	)
	return l.result(population), nil
}

func passiveClock(c clock.PassiveClock) clock.PassiveClock {
	if c == nil {
		return clock.RealClock{}
	}
	return c
}

func (l *Loop) offer(solutions []*framework.Solution) {
	if l.Archive == nil {
		return
	}
	for _, s := range solutions {
		l.Archive.Add(s)
	}
}

func (l *Loop) result(population []*framework.Solution) []*framework.Solution {
	if l.Archive != nil {
		return append([]*framework.Solution(nil), l.Archive.Solutions()...)
	}
	return population
}

func (l *Loop) notify(ctx context.Context) {
	for _, o := range l.Observers {
		o.Update(ctx, l.progress)
	}
}
