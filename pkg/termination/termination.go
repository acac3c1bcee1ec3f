// Package termination decides when a run stops. Conditions are checked once
// per generation, after replacement.
package termination

import (
	"time"

	"github.com/mihai-snyk/paretokit/pkg/dominance"
	"github.com/mihai-snyk/paretokit/pkg/framework"
	"github.com/mihai-snyk/paretokit/pkg/quality"
)

type Termination interface {
	IsMet(p framework.Progress) bool
}

// MaxEvaluations stops once the objective function has been called at
// least this many times. The last generation may overshoot.
type MaxEvaluations int

func (m MaxEvaluations) IsMet(p framework.Progress) bool {
	return p.Evaluations >= int(m)
}

// MaxGenerations stops after this many generations past the initial
// population.
type MaxGenerations int

func (m MaxGenerations) IsMet(p framework.Progress) bool {
	return p.Generation >= int(m)
}

// MaxDuration stops once the wall clock budget is spent. It is only polled
// between generations, so one slow generation can run past the budget.
type MaxDuration time.Duration

func (m MaxDuration) IsMet(p framework.Progress) bool {
	return p.Elapsed >= time.Duration(m)
}

// IndicatorThreshold stops once the non-dominated part of the population
// reaches Threshold on Indicator.
type IndicatorThreshold struct {
	Indicator quality.Indicator
	Threshold float64
}

func (t IndicatorThreshold) IsMet(p framework.Progress) bool {
	if len(p.Population) == 0 {
		return false
	}
	front := dominance.NonDominated(p.Population, dominance.Default())
	v := t.Indicator.Value(framework.ObjectiveValues(front))
	if t.Indicator.LowerIsBetter() {
		return v <= t.Threshold
	}
	return v >= t.Threshold
}

type anyOf []Termination

// Any is met as soon as one of conditions is met.
func Any(conditions ...Termination) Termination {
	return anyOf(conditions)
}

func (a anyOf) IsMet(p framework.Progress) bool {
	for _, c := range a {
		if c.IsMet(p) {
			return true
		}
	}
	return false
}

type allOf []Termination

// All is met when every condition is met. An empty All is never met.
func All(conditions ...Termination) Termination {
	return allOf(conditions)
}

func (a allOf) IsMet(p framework.Progress) bool {
	if len(a) == 0 {
		return false
	}
	for _, c := range a {
		if !c.IsMet(p) {
			return false
		}
	}
	return true
}
