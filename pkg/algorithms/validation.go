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
	"github.com/mihai-snyk/paretokit/pkg/framework"
)

func validateProbability(name string, p float64) error {
	if p < 0 || p > 1 {
		return framework.InvalidConfigf("%s must be between 0 and 1, got %v", name, p)
	}
	return nil
}

// ValidateVariationConfig validates the operator parameters
func ValidateVariationConfig(obj *VariationConfig) error {
	if err := validateProbability("crossover probability", obj.CrossoverProbability); err != nil {
		return err
	}
	if err := validateProbability("mutation probability", obj.MutationProbability); err != nil {
		return err
	}
	if obj.CrossoverDistributionIndex < 0 || obj.MutationDistributionIndex < 0 {
		return framework.InvalidConfigf("distribution indexes must be non-negative, got %v and %v",
			obj.CrossoverDistributionIndex, obj.MutationDistributionIndex)
	}
	return nil
}

func validateBudget(maxEvaluations, maxGenerations int) error {
	if maxEvaluations < 0 || maxGenerations < 0 {
		return framework.InvalidConfigf("budgets must be non-negative, got %d evaluations and %d generations",
			maxEvaluations, maxGenerations)
	}
	if maxEvaluations == 0 && maxGenerations == 0 {
		return framework.InvalidConfigf("either maxEvaluations or maxGenerations must be set")
	}
	return nil
}

func validateEvaluation(obj *EvaluationConfig) error {
	if obj.Workers < 0 {
		return framework.InvalidConfigf("workers must be non-negative, got %d", obj.Workers)
	}
	return nil
}

// ValidateNSGA2Config validates the NSGA-II parameters
func ValidateNSGA2Config(obj *NSGA2Config) error {
	if obj.PopulationSize < 2 {
		return framework.InvalidConfigf("population size must be at least 2, got %d", obj.PopulationSize)
	}
	if obj.OffspringSize < 1 {
		return framework.InvalidConfigf("offspring size must be at least 1, got %d", obj.OffspringSize)
	}
	if obj.TournamentSize < 1 {
		return framework.InvalidConfigf("tournament size must be at least 1, got %d", obj.TournamentSize)
	}
	if err := validateBudget(obj.MaxEvaluations, obj.MaxGenerations); err != nil {
		return err
	}
	if err := validateEvaluation(&obj.EvaluationConfig); err != nil {
		return err
	}
	return ValidateVariationConfig(&obj.VariationConfig)
}

// ValidateMOCellConfig validates the cellular algorithm parameters
func ValidateMOCellConfig(obj *MOCellConfig) error {
	if obj.PopulationSize < 2 {
		return framework.InvalidConfigf("population size must be at least 2, got %d", obj.PopulationSize)
	}
	if obj.GridColumns < 1 || obj.GridColumns > obj.PopulationSize {
		return framework.InvalidConfigf("grid columns must be between 1 and the population size, got %d", obj.GridColumns)
	}
	if obj.ArchiveSize < 1 {
		return framework.InvalidConfigf("archive size must be at least 1, got %d", obj.ArchiveSize)
	}
	if err := validateBudget(obj.MaxEvaluations, obj.MaxGenerations); err != nil {
		return err
	}
	if err := validateEvaluation(&obj.EvaluationConfig); err != nil {
		return err
	}
	return ValidateVariationConfig(&obj.VariationConfig)
}

// ValidateSMSEMOAConfig validates the SMS-EMOA parameters
func ValidateSMSEMOAConfig(obj *SMSEMOAConfig) error {
	if obj.PopulationSize < 2 {
		return framework.InvalidConfigf("population size must be at least 2, got %d", obj.PopulationSize)
	}
	if obj.MaxEvaluations < 1 {
		return framework.InvalidConfigf("maxEvaluations must be at least 1, got %d", obj.MaxEvaluations)
	}
	if obj.ReferenceOffset <= 0 {
		return framework.InvalidConfigf("reference offset must be positive, got %v", obj.ReferenceOffset)
	}
	return ValidateVariationConfig(&obj.VariationConfig)
}

// ValidateSMPSOConfig validates the SMPSO parameters
func ValidateSMPSOConfig(obj *SMPSOConfig) error {
	if obj.SwarmSize < 1 {
		return framework.InvalidConfigf("swarm size must be at least 1, got %d", obj.SwarmSize)
	}
	if obj.ArchiveSize < 1 {
		return framework.InvalidConfigf("archive size must be at least 1, got %d", obj.ArchiveSize)
	}
	if obj.MaxIterations < 1 {
		return framework.InvalidConfigf("maxIterations must be at least 1, got %d", obj.MaxIterations)
	}
	if obj.C1Min > obj.C1Max || obj.C2Min > obj.C2Max || obj.WeightMin > obj.WeightMax {
		return framework.InvalidConfigf("coefficient ranges must have min <= max")
	}
	if obj.C1Min < 0 || obj.C2Min < 0 || obj.WeightMin < 0 {
		return framework.InvalidConfigf("coefficients must be non-negative")
	}
	if err := validateProbability("mutation probability", obj.MutationProbability); err != nil {
		return err
	}
	if obj.MutationDistributionIndex < 0 {
		return framework.InvalidConfigf("distribution index must be non-negative, got %v", obj.MutationDistributionIndex)
	}
	return validateEvaluation(&obj.EvaluationConfig)
}
