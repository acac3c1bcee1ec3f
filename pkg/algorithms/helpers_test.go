package algorithms

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"golang.org/x/exp/rand"

	"github.com/mihai-snyk/paretokit/pkg/benchmarks"
	"github.com/mihai-snyk/paretokit/pkg/dominance"
	"github.com/mihai-snyk/paretokit/pkg/evaluation"
	"github.com/mihai-snyk/paretokit/pkg/framework"
	"github.com/mihai-snyk/paretokit/pkg/operators"
)

type unencoded struct{ framework.Problem }

func (unencoded) CreateSolution(*rand.Rand) *framework.Solution {
	return framework.NewSolution(nil, 2, 0)
}

func TestDefaultOperators(t *testing.T) {
	cfg := VariationConfig{CrossoverProbability: 0.9, MutationProbability: 0.1, CrossoverDistributionIndex: 20, MutationDistributionIndex: 20}

	tests := []struct {
		name          string
		problem       framework.Problem
		wantCrossover string
		wantMutation  string
	}{
		{
			name:          "real",
			problem:       benchmarks.NewZDT1(4),
			wantCrossover: "*operators.SBX",
			wantMutation:  "*operators.Polynomial",
		},
		{
			name:          "binary",
			problem:       benchmarks.NewOneZeroMax(8),
			wantCrossover: "*operators.PointCrossover",
			wantMutation:  "*operators.BitFlip",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, m, err := defaultOperators(tc.problem, cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := fmt.Sprintf("%T", c); got != tc.wantCrossover {
				t.Errorf("got crossover %s, want %s", got, tc.wantCrossover)
			}
			if got := fmt.Sprintf("%T", m); got != tc.wantMutation {
				t.Errorf("got mutation %s, want %s", got, tc.wantMutation)
			}
		})
	}

	if c, _, _ := defaultOperators(benchmarks.NewOneZeroMax(8), cfg); c.(*operators.PointCrossover).Points != 1 {
		t.Errorf("binary crossover should cut once")
	}
	if _, _, err := defaultOperators(unencoded{benchmarks.NewZDT1(2)}, cfg); !errors.Is(err, framework.ErrInvalidConfiguration) {
		t.Errorf("got error %v, want ErrInvalidConfiguration", err)
	}
	if _, _, err := defaultOperators(benchmarks.NewZDT1(2), VariationConfig{CrossoverProbability: 2}); !errors.Is(err, framework.ErrInvalidConfiguration) {
		t.Errorf("got error %v, want ErrInvalidConfiguration", err)
	}
}

func TestNewEvaluator(t *testing.T) {
	if _, ok := newEvaluator(EvaluationConfig{}).(evaluation.Sequential); !ok {
		t.Errorf("default evaluator should be sequential")
	}
	e, ok := newEvaluator(EvaluationConfig{ParallelExecution: true, Workers: 3}).(evaluation.Parallel)
	if !ok || e.Workers != 3 {
		t.Errorf("got %#v, want a parallel evaluator with 3 workers", e)
	}
}

func TestNewTermination(t *testing.T) {
	tests := []struct {
		name           string
		maxEvaluations int
		maxGenerations int
		progress       framework.Progress
		want           bool
	}{
		{name: "evaluations reached", maxEvaluations: 100, progress: framework.Progress{Evaluations: 100}, want: true},
		{name: "evaluations left", maxEvaluations: 100, progress: framework.Progress{Evaluations: 99, Generation: 1000}, want: false},
		{name: "generations reached", maxGenerations: 10, progress: framework.Progress{Generation: 10}, want: true},
		{name: "first budget wins", maxEvaluations: 100, maxGenerations: 10, progress: framework.Progress{Evaluations: 50, Generation: 10}, want: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := newTermination(tc.maxEvaluations, tc.maxGenerations).IsMet(tc.progress); got != tc.want {
				t.Errorf("IsMet(%+v) = %v, want %v", tc.progress, got, tc.want)
			}
		})
	}
}

func TestConstriction(t *testing.T) {
	tests := []struct {
		c1, c2 float64
		want   float64
	}{
		{c1: 1.5, c2: 1.5, want: 1},
		{c1: 2, c2: 2, want: 1},
		// phi = 5: 2 / |2 - 5 - sqrt(5)|
		{c1: 2.5, c2: 2.5, want: 2 / (3 + math.Sqrt(5))},
	}
	for _, tc := range tests {
		if got := constriction(tc.c1, tc.c2); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("constriction(%v, %v) = %v, want %v", tc.c1, tc.c2, got, tc.want)
		}
	}
}

func TestSMPSOBounce(t *testing.T) {
	swarm := &SMPSO{}
	bounds := []framework.Bounds{{L: 0, H: 1}, {L: 0, H: 1}, {L: 0, H: 1}}
	particle := framework.NewSolution(framework.NewRealVariables([]float64{0.9, 0.1, 0.5}, bounds), 2, 0)
	velocity := []float64{0.3, -0.4, 0.2}

	swarm.updatePosition(particle, velocity)

	want := []float64{1, 0, 0.7}
	for j, v := range particle.Reals().Values {
		if math.Abs(v-want[j]) > 1e-12 {
			t.Fatalf("got position %v, want %v", particle.Reals().Values, want)
		}
	}
	if velocity[0] != -0.3 || velocity[1] != 0.4 || velocity[2] != 0.2 {
		t.Errorf("got velocity %v, want the clamped components reversed", velocity)
	}
}

func TestSMPSOPersonalBest(t *testing.T) {
	point := func(f ...float64) *framework.Solution {
		s := framework.NewSolution(nil, len(f), 0)
		copy(s.Objectives, f)
		return s
	}
	swarm := &SMPSO{comparator: dominance.Default(), Rng: rand.New(rand.NewSource(21))}
	best := point(2, 2)

	if got := swarm.updateBest(best, point(3, 3)); got != best {
		t.Errorf("dominated position replaced the personal best")
	}
	if got := swarm.updateBest(best, point(1, 1)); got == best || got.Objectives[0] != 1 {
		t.Errorf("dominating position did not replace the personal best, got %v", got.Objectives)
	}

	var kept, moved int
	for i := 0; i < 200; i++ {
		if swarm.updateBest(best, point(1, 3)) == best {
			kept++
		} else {
			moved++
		}
	}
	if kept == 0 || moved == 0 {
		t.Errorf("non-dominated positions: kept %d times and moved %d times, want both", kept, moved)
	}
}
