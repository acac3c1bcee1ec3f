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

	"github.com/mihai-snyk/paretokit/pkg/archive"
	"github.com/mihai-snyk/paretokit/pkg/density"
	"github.com/mihai-snyk/paretokit/pkg/framework"
	"github.com/mihai-snyk/paretokit/pkg/initialization"
	"github.com/mihai-snyk/paretokit/pkg/operators"
	"github.com/mihai-snyk/paretokit/pkg/replacement"
	"github.com/mihai-snyk/paretokit/pkg/selection"
)

// NewMOCell creates a synchronous cellular algorithm: each cell mates with
// parents from its neighbourhood, its offspring competes with it, and a
// crowding-distance archive collects the result.
func NewMOCell(config MOCellConfig, problem framework.Problem) (*Loop, error) {
	if err := ValidateMOCellConfig(&config); err != nil {
		return nil, err
	}
	crossover, mutation, err := defaultOperators(problem, config.VariationConfig)
	if err != nil {
		return nil, err
	}
	variation, err := operators.NewVariation(crossover, mutation, config.PopulationSize)
	if err != nil {
		return nil, err
	}
	// keep the first child of every mating so that offspring i has both
	// parents from cell i's neighbourhood
	variation.KeepChildren = 1
	crowding := density.CrowdingDistance{}
	neighborhood, err := selection.NewNeighborhood(config.GridColumns, selection.NewBinaryTournament())
	if err != nil {
		return nil, err
	}
	neighborhood.ParentsPerCell = crossover.NumberOfParents()
	cells, err := replacement.NewCellular(nil, crowding)
	if err != nil {
		return nil, err
	}
	front, err := archive.NewCrowdingDistanceArchive(config.ArchiveSize, nil)
	if err != nil {
		return nil, err
	}

	return &Loop{
		Name:           "MOCell",
		Problem:        problem,
		PopulationSize: config.PopulationSize,
		Initializer:    initialization.Random{},
		Evaluator:      newEvaluator(config.EvaluationConfig),
		Selection:      neighborhood,
		Variation:      variation,
		Replacement:    cells,
		Termination:    newTermination(config.MaxEvaluations, config.MaxGenerations),
		Archive:        front,
		Rng:            rand.New(rand.NewSource(config.Seed)),
	}, nil
}
