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
	"golang.org/x/exp/rand"

	"github.com/mihai-snyk/paretokit/pkg/density"
	"github.com/mihai-snyk/paretokit/pkg/framework"
	"github.com/mihai-snyk/paretokit/pkg/initialization"
	"github.com/mihai-snyk/paretokit/pkg/operators"
	"github.com/mihai-snyk/paretokit/pkg/ranking"
	"github.com/mihai-snyk/paretokit/pkg/replacement"
	"github.com/mihai-snyk/paretokit/pkg/selection"
)

// NewNSGAII creates a new instance of NSGA-II with given parameters. The
// configuration must already carry its defaults. Operators are picked from
// the problem's encoding; any field of the returned Loop can be replaced
// before Run.
func NewNSGAII(config NSGA2Config, problem framework.Problem) (*Loop, error) {
	if err := ValidateNSGA2Config(&config); err != nil {
		return nil, err
	}
	crossover, mutation, err := defaultOperators(problem, config.VariationConfig)
	if err != nil {
		return nil, err
	}
	variation, err := operators.NewVariation(crossover, mutation, config.OffspringSize)
	if err != nil {
		return nil, err
	}
	crowding := density.CrowdingDistance{}
	tournament, err := selection.NewTournament(config.TournamentSize, selection.RankAndDensity{Estimator: crowding})
	if err != nil {
		return nil, err
	}
	survival, err := replacement.NewRankingAndDensity(config.PopulationSize, ranking.NewFastNonDominatedSort(nil), crowding)
	if err != nil {
		return nil, err
	}

	return &Loop{
		Name:           "NSGA-II",
		Problem:        problem,
		PopulationSize: config.PopulationSize,
		Initializer:    initialization.Random{},
		Evaluator:      newEvaluator(config.EvaluationConfig),
		Selection:      tournament,
		Variation:      variation,
		Replacement:    survival,
		Termination:    newTermination(config.MaxEvaluations, config.MaxGenerations),
		Rng:            rand.New(rand.NewSource(config.Seed)),
	}, nil
}
