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

package algorithms

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"k8s.io/klog/v2"
	"k8s.io/utils/clock"

	"github.com/mihai-snyk/paretokit/pkg/archive"
	"github.com/mihai-snyk/paretokit/pkg/density"
	"github.com/mihai-snyk/paretokit/pkg/dominance"
	"github.com/mihai-snyk/paretokit/pkg/evaluation"
	"github.com/mihai-snyk/paretokit/pkg/framework"
	"github.com/mihai-snyk/paretokit/pkg/initialization"
	"github.com/mihai-snyk/paretokit/pkg/operators"
	"github.com/mihai-snyk/paretokit/pkg/termination"
)

// SMPSO is a speed-constrained multi-objective particle swarm for real
// variables. Global guides are drawn from a crowding-distance archive of
// leaders by binary tournament; the leaders are the result of the run.
type SMPSO struct {
	Problem     framework.Problem
	Config      SMPSOConfig
	Evaluator   evaluation.Evaluator
	Initializer initialization.Initializer
	Termination termination.Termination
	Leaders     *archive.Bounded
	Rng         *rand.Rand
	Observers   []Observer
	Clock       clock.PassiveClock

	comparator dominance.Comparator
	crowding   density.CrowdingDistance
	turbulence *operators.Polynomial
	progress   framework.Progress
}

// NewSMPSO creates a swarm from a configuration that already carries its
// defaults.
func NewSMPSO(config SMPSOConfig, problem framework.Problem) (*SMPSO, error) {
	if err := ValidateSMPSOConfig(&config); err != nil {
		return nil, err
	}
	if problem == nil {
		return nil, framework.InvalidConfigf("algorithm needs a problem")
	}
	if _, ok := problem.CreateSolution(rand.New(rand.NewSource(0))).Variables.(*framework.RealVariables); !ok {
		return nil, framework.InvalidConfigf("SMPSO needs real variables")
	}
	leaders, err := archive.NewCrowdingDistanceArchive(config.ArchiveSize, nil)
	if err != nil {
		return nil, err
	}
	turbulence, err := operators.NewPolynomial(config.MutationProbability, config.MutationDistributionIndex)
	if err != nil {
		return nil, err
	}
	return &SMPSO{
		Problem:     problem,
		Config:      config,
		Evaluator:   newEvaluator(config.EvaluationConfig),
		Initializer: initialization.Random{},
		Termination: termination.MaxGenerations(config.MaxIterations),
		Leaders:     leaders,
		Rng:         rand.New(rand.NewSource(config.Seed)),
		comparator:  dominance.Default(),
		turbulence:  turbulence,
	}, nil
}

// Progress returns the bookkeeping of the last completed iteration.
func (p *SMPSO) Progress() framework.Progress {
	return p.progress
}

// Run flies the swarm until Termination is met and returns the leaders.
// Cancellation is observed between iterations.
func (p *SMPSO) Run(ctx context.Context) ([]*framework.Solution, error) {
	if p.Rng == nil {
		return nil, framework.ErrNilRandomSource
	}
	logger := klog.FromContext(ctx).WithValues("algorithm", "SMPSO", "problem", p.Problem.Name())
	clk := passiveClock(p.Clock)
	startTime := clk.Now()

	swarm, err := p.Initializer.Initialize(ctx, p.Problem, p.Config.SwarmSize, p.Rng)
	if err != nil {
		return nil, fmt.Errorf("initializing swarm: %w", err)
	}
	if err := p.Evaluator.Evaluate(ctx, swarm, p.Problem); err != nil {
		return nil, err
	}
	logger.V(1).Info("Starting swarm", "swarmSize", len(swarm), "archiveSize", p.Leaders.Capacity())

	velocity := make([][]float64, len(swarm))
	best := make([]*framework.Solution, len(swarm))
	for i, particle := range swarm {
		if particle.Reals() == nil {
			return nil, framework.InvalidConfigf("particle %d does not have real variables", i)
		}
		velocity[i] = make([]float64, particle.Variables.Len())
		best[i] = particle.Copy()
		p.Leaders.Add(particle)
	}

	p.progress = framework.Progress{
		Evaluations: len(swarm),
		Elapsed:     clk.Since(startTime),
		Population:  p.leaders(),
	}
	p.notify(ctx)

	for !p.Termination.IsMet(p.progress) {
		if err := ctx.Err(); err != nil {
			return p.leaders(), err
		}
		if p.Leaders.Size() == 0 {
			return nil, framework.ErrEmptyPopulation
		}

		p.crowding.Compute(p.Leaders.Solutions())
		for i, particle := range swarm {
			p.updateVelocity(particle, velocity[i], best[i], p.guide())
			p.updatePosition(particle, velocity[i])
		}
		for i := 0; i < len(swarm); i += 6 {
			p.turbulence.Apply(swarm[i], p.Rng)
		}

		if err := p.Evaluator.Evaluate(ctx, swarm, p.Problem); err != nil {
			return nil, err
		}
		for i, particle := range swarm {
			particle.Attributes().Clear()
			p.Leaders.Add(particle)
			best[i] = p.updateBest(best[i], particle)
		}

		p.progress.Generation++
		p.progress.Evaluations += len(swarm)
		p.progress.Elapsed = clk.Since(startTime)
		p.progress.Population = p.leaders()
		p.notify(ctx)
	}

	logger.V(1).Info("Swarm complete",
		"iterations", p.progress.Generation,
		"evaluations", p.progress.Evaluations,
		"leaders", p.Leaders.Size(),
		"duration", p.progress.Elapsed,
	)
	return p.leaders(), nil
}

// updateBest keeps the personal best unless the particle dominates it. When
// neither dominates, a coin flip decides.
func (p *SMPSO) updateBest(best, particle *framework.Solution) *framework.Solution {
	switch p.comparator.Compare(best, particle) {
	case -1:
		return best
	case 0:
		if p.Rng.Float64() < 0.5 {
			return best
		}
	}
	return particle.Copy()
}

// guide picks a leader by binary tournament on crowding distance.
func (p *SMPSO) guide() *framework.Solution {
	leaders := p.Leaders.Solutions()
	a := leaders[p.Rng.Intn(len(leaders))]
	b := leaders[p.Rng.Intn(len(leaders))]
	if density.Compare(p.crowding, b, a) < 0 {
		return b
	}
	return a
}

func (p *SMPSO) updateVelocity(particle *framework.Solution, v []float64, best, guide *framework.Solution) {
	x := particle.Reals()
	pb, gb := best.Reals().Values, guide.Reals().Values

	r1, r2 := p.Rng.Float64(), p.Rng.Float64()
	c1 := uniform(p.Rng, p.Config.C1Min, p.Config.C1Max)
	c2 := uniform(p.Rng, p.Config.C2Min, p.Config.C2Max)
	w := uniform(p.Rng, p.Config.WeightMin, p.Config.WeightMax)
	chi := constriction(c1, c2)

	for j := range v {
		limit := (x.Bounds[j].H - x.Bounds[j].L) / 2
		next := chi * (w*v[j] + c1*r1*(pb[j]-x.Values[j]) + c2*r2*(gb[j]-x.Values[j]))
		v[j] = math.Max(-limit, math.Min(limit, next))
	}
}

// updatePosition moves the particle and bounces it off the bounds.
func (p *SMPSO) updatePosition(particle *framework.Solution, v []float64) {
	x := particle.Reals()
	for j := range x.Values {
		x.Values[j] += v[j]
		switch b := x.Bounds[j]; {
		case x.Values[j] < b.L:
			x.Values[j] = b.L
			v[j] = -v[j]
		case x.Values[j] > b.H:
			x.Values[j] = b.H
			v[j] = -v[j]
		}
	}
}

// constriction is Clerc's constriction coefficient for c1+c2 > 4, and 1
// otherwise.
func constriction(c1, c2 float64) float64 {
	phi := c1 + c2
	if phi <= 4 {
		return 1
	}
	return 2 / math.Abs(2-phi-math.Sqrt(phi*phi-4*phi))
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func (p *SMPSO) leaders() []*framework.Solution {
	return append([]*framework.Solution(nil), p.Leaders.Solutions()...)
}

func (p *SMPSO) notify(ctx context.Context) {
	for _, o := range p.Observers {
		o.Update(ctx, p.progress)
	}
}
