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
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// VariationConfig holds the parameters of the default crossover and
// mutation. A zero MutationProbability means 1/n for n decision variables.
type VariationConfig struct {
	CrossoverProbability       float64 `json:"crossoverProbability,omitempty"`
	CrossoverDistributionIndex float64 `json:"crossoverDistributionIndex,omitempty"`
	MutationProbability        float64 `json:"mutationProbability,omitempty"`
	MutationDistributionIndex  float64 `json:"mutationDistributionIndex,omitempty"`
}

// EvaluationConfig selects the evaluator.
type EvaluationConfig struct {
	// ParallelExecution evaluates each batch on Workers goroutines. The
	// problem must be safe for concurrent use.
	ParallelExecution bool `json:"parallelExecution,omitempty"`
	// Workers defaults to the number of CPUs.
	Workers int `json:"workers,omitempty"`
}

// NSGA2Config holds configuration parameters for NSGA-II
type NSGA2Config struct {
	PopulationSize int `json:"populationSize,omitempty"`
	// OffspringSize defaults to PopulationSize.
	OffspringSize int `json:"offspringSize,omitempty"`
	// MaxEvaluations and MaxGenerations stop the run, whichever comes
	// first. At least one of them must be set.
	MaxEvaluations int    `json:"maxEvaluations,omitempty"`
	MaxGenerations int    `json:"maxGenerations,omitempty"`
	TournamentSize int    `json:"tournamentSize,omitempty"`
	Seed           uint64 `json:"seed,omitempty"`

	VariationConfig  `json:",inline"`
	EvaluationConfig `json:",inline"`
}

// MOCellConfig holds configuration parameters for the cellular algorithm.
// The population is laid out on a grid with GridColumns columns.
type MOCellConfig struct {
	PopulationSize int    `json:"populationSize,omitempty"`
	GridColumns    int    `json:"gridColumns,omitempty"`
	ArchiveSize    int    `json:"archiveSize,omitempty"`
	MaxEvaluations int    `json:"maxEvaluations,omitempty"`
	MaxGenerations int    `json:"maxGenerations,omitempty"`
	Seed           uint64 `json:"seed,omitempty"`

	VariationConfig  `json:",inline"`
	EvaluationConfig `json:",inline"`
}

// SMSEMOAConfig holds configuration parameters for SMS-EMOA. The reference
// point of the hypervolume contributions is the worst point of the last
// front plus ReferenceOffset.
type SMSEMOAConfig struct {
	PopulationSize  int     `json:"populationSize,omitempty"`
	MaxEvaluations  int     `json:"maxEvaluations,omitempty"`
	ReferenceOffset float64 `json:"referenceOffset,omitempty"`
	Seed            uint64  `json:"seed,omitempty"`

	VariationConfig `json:",inline"`
}

// SMPSOConfig holds configuration parameters for SMPSO.
type SMPSOConfig struct {
	SwarmSize     int    `json:"swarmSize,omitempty"`
	ArchiveSize   int    `json:"archiveSize,omitempty"`
	MaxIterations int    `json:"maxIterations,omitempty"`
	Seed          uint64 `json:"seed,omitempty"`

	// Acceleration coefficients are drawn uniformly from [Min, Max] on
	// every velocity update.
	C1Min float64 `json:"c1Min,omitempty"`
	C1Max float64 `json:"c1Max,omitempty"`
	C2Min float64 `json:"c2Min,omitempty"`
	C2Max float64 `json:"c2Max,omitempty"`
	// Inertia weight range.
	WeightMin float64 `json:"weightMin,omitempty"`
	WeightMax float64 `json:"weightMax,omitempty"`

	// Turbulence applied to every sixth particle.
	MutationProbability       float64 `json:"mutationProbability,omitempty"`
	MutationDistributionIndex float64 `json:"mutationDistributionIndex,omitempty"`

	EvaluationConfig `json:",inline"`
}

// ParseNSGA2Config decodes YAML or JSON, rejecting unknown fields, and
// applies defaults for a problem with numberOfVariables variables.
func ParseNSGA2Config(data []byte, numberOfVariables int) (*NSGA2Config, error) {
	cfg := &NSGA2Config{}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("decoding NSGA-II configuration: %w", err)
	}
	SetDefaults_NSGA2Config(cfg, numberOfVariables)
	if err := ValidateNSGA2Config(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadNSGA2Config reads a configuration file. See ParseNSGA2Config.
func LoadNSGA2Config(path string, numberOfVariables int) (*NSGA2Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseNSGA2Config(data, numberOfVariables)
}

// ParseMOCellConfig decodes YAML or JSON and applies defaults.
func ParseMOCellConfig(data []byte, numberOfVariables int) (*MOCellConfig, error) {
	cfg := &MOCellConfig{}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("decoding MOCell configuration: %w", err)
	}
	SetDefaults_MOCellConfig(cfg, numberOfVariables)
	if err := ValidateMOCellConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseSMSEMOAConfig decodes YAML or JSON and applies defaults.
func ParseSMSEMOAConfig(data []byte, numberOfVariables int) (*SMSEMOAConfig, error) {
	cfg := &SMSEMOAConfig{}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("decoding SMS-EMOA configuration: %w", err)
	}
	SetDefaults_SMSEMOAConfig(cfg, numberOfVariables)
	if err := ValidateSMSEMOAConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseSMPSOConfig decodes YAML or JSON and applies defaults.
func ParseSMPSOConfig(data []byte, numberOfVariables int) (*SMPSOConfig, error) {
	cfg := &SMPSOConfig{}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("decoding SMPSO configuration: %w", err)
	}
	SetDefaults_SMPSOConfig(cfg, numberOfVariables)
	if err := ValidateSMPSOConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
