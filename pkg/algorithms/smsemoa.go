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

	"github.com/mihai-snyk/paretokit/pkg/evaluation"
	"github.com/mihai-snyk/paretokit/pkg/framework"
	"github.com/mihai-snyk/paretokit/pkg/hypervolume"
	"github.com/mihai-snyk/paretokit/pkg/initialization"
	"github.com/mihai-snyk/paretokit/pkg/operators"
	"github.com/mihai-snyk/paretokit/pkg/replacement"
	"github.com/mihai-snyk/paretokit/pkg/selection"
)

// NewSMSEMOA creates the steady state SMS-EMOA: one offspring per
// generation, and the member of the last front with the smallest
// hypervolume contribution is removed.
func NewSMSEMOA(config SMSEMOAConfig, problem framework.Problem) (*Loop, error) {
	if err := ValidateSMSEMOAConfig(&config); err != nil {
		return nil, err
	}
	crossover, mutation, err := defaultOperators(problem, config.VariationConfig)
	if err != nil {
		return nil, err
	}
	variation, err := operators.NewVariation(crossover, mutation, 1)
	if err != nil {
		return nil, err
	}
	contribution := &hypervolume.ContributionEstimator{Offset: config.ReferenceOffset}
	survival, err := replacement.NewRemovalPolicy(config.PopulationSize, nil, contribution)
	if err != nil {
		return nil, err
	}

	return &Loop{
		Name:           "SMS-EMOA",
		Problem:        problem,
		PopulationSize: config.PopulationSize,
		Initializer:    initialization.Random{},
		Evaluator:      evaluation.Sequential{},
		Selection:      selection.Random{},
		Variation:      variation,
		Replacement:    survival,
		Termination:    newTermination(config.MaxEvaluations, 0),
		Rng:            rand.New(rand.NewSource(config.Seed)),
	}, nil
}
