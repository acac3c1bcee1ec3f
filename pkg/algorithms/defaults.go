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

func SetDefaults_VariationConfig(obj *VariationConfig, numberOfVariables int) {
	if obj.CrossoverProbability == 0 {
		obj.CrossoverProbability = 0.9
	}
	if obj.CrossoverDistributionIndex == 0 {
		obj.CrossoverDistributionIndex = 20
	}
	if obj.MutationProbability == 0 && numberOfVariables > 0 {
		obj.MutationProbability = 1.0 / float64(numberOfVariables)
	}
	if obj.MutationDistributionIndex == 0 {
		obj.MutationDistributionIndex = 20
	}
}

func SetDefaults_NSGA2Config(obj *NSGA2Config, numberOfVariables int) {
	if obj.PopulationSize == 0 {
		obj.PopulationSize = 100
	}
	if obj.OffspringSize == 0 {
		obj.OffspringSize = obj.PopulationSize
	}
	if obj.MaxEvaluations == 0 && obj.MaxGenerations == 0 {
		obj.MaxEvaluations = 25000
	}
	if obj.TournamentSize == 0 {
		obj.TournamentSize = 2
	}
	SetDefaults_VariationConfig(&obj.VariationConfig, numberOfVariables)
}

func SetDefaults_MOCellConfig(obj *MOCellConfig, numberOfVariables int) {
	if obj.PopulationSize == 0 {
		obj.PopulationSize = 100
	}
	if obj.GridColumns == 0 {
		obj.GridColumns = 10
	}
	if obj.ArchiveSize == 0 {
		obj.ArchiveSize = 100
	}
	if obj.MaxEvaluations == 0 && obj.MaxGenerations == 0 {
		obj.MaxEvaluations = 25000
	}
	SetDefaults_VariationConfig(&obj.VariationConfig, numberOfVariables)
}

func SetDefaults_SMSEMOAConfig(obj *SMSEMOAConfig, numberOfVariables int) {
	if obj.PopulationSize == 0 {
		obj.PopulationSize = 100
	}
	if obj.MaxEvaluations == 0 {
		obj.MaxEvaluations = 25000
	}
	if obj.ReferenceOffset == 0 {
		obj.ReferenceOffset = 1
	}
	SetDefaults_VariationConfig(&obj.VariationConfig, numberOfVariables)
}

func SetDefaults_SMPSOConfig(obj *SMPSOConfig, numberOfVariables int) {
	if obj.SwarmSize == 0 {
		obj.SwarmSize = 100
	}
	if obj.ArchiveSize == 0 {
		obj.ArchiveSize = 100
	}
	if obj.MaxIterations == 0 {
		obj.MaxIterations = 250
	}
	if obj.C1Min == 0 && obj.C1Max == 0 {
		obj.C1Min, obj.C1Max = 1.5, 2.5
	}
	if obj.C2Min == 0 && obj.C2Max == 0 {
		obj.C2Min, obj.C2Max = 1.5, 2.5
	}
	if obj.WeightMin == 0 && obj.WeightMax == 0 {
		obj.WeightMin, obj.WeightMax = 0.1, 0.1
	}
	if obj.MutationProbability == 0 && numberOfVariables > 0 {
		obj.MutationProbability = 1.0 / float64(numberOfVariables)
	}
	if obj.MutationDistributionIndex == 0 {
		obj.MutationDistributionIndex = 20
	}
}
