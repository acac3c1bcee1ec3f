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

package algorithms_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mihai-snyk/paretokit/pkg/algorithms"
	"github.com/mihai-snyk/paretokit/pkg/framework"
)

func TestParseNSGA2Config(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    *algorithms.NSGA2Config
		wantErr error
	}{
		{
			name: "defaults",
			data: "",
			want: &algorithms.NSGA2Config{
				PopulationSize: 100,
				OffspringSize:  100,
				MaxEvaluations: 25000,
				TournamentSize: 2,
				VariationConfig: algorithms.VariationConfig{
					CrossoverProbability:       0.9,
					CrossoverDistributionIndex: 20,
					MutationProbability:        0.25,
					MutationDistributionIndex:  20,
				},
			},
		},
		{
			name: "inline sections",
			data: `
populationSize: 50
maxGenerations: 200
seed: 7
crossoverProbability: 0.8
mutationDistributionIndex: 15
parallelExecution: true
workers: 2
`,
			want: &algorithms.NSGA2Config{
				PopulationSize: 50,
				OffspringSize:  50,
				MaxGenerations: 200,
				TournamentSize: 2,
				Seed:           7,
				VariationConfig: algorithms.VariationConfig{
					CrossoverProbability:       0.8,
					CrossoverDistributionIndex: 20,
					MutationProbability:        0.25,
					MutationDistributionIndex:  15,
				},
				EvaluationConfig: algorithms.EvaluationConfig{
					ParallelExecution: true,
					Workers:           2,
				},
			},
		},
		{
			name: "json",
			data: `{"populationSize": 10, "offspringSize": 4, "maxEvaluations": 1000, "tournamentSize": 3}`,
			want: &algorithms.NSGA2Config{
				PopulationSize: 10,
				OffspringSize:  4,
				MaxEvaluations: 1000,
				TournamentSize: 3,
				VariationConfig: algorithms.VariationConfig{
					CrossoverProbability:       0.9,
					CrossoverDistributionIndex: 20,
					MutationProbability:        0.25,
					MutationDistributionIndex:  20,
				},
			},
		},
		{
			name: "unknown field",
			data: "populationSize: 10\nelitism: true\n",
		},
		{
			name:    "population too small",
			data:    "populationSize: 1\n",
			wantErr: framework.ErrInvalidConfiguration,
		},
		{
			name:    "negative workers",
			data:    "workers: -1\n",
			wantErr: framework.ErrInvalidConfiguration,
		},
		{
			name:    "mutation probability above one",
			data:    "mutationProbability: 2\n",
			wantErr: framework.ErrInvalidConfiguration,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := algorithms.ParseNSGA2Config([]byte(tc.data), 4)
			if tc.want == nil {
				if err == nil {
					t.Fatalf("expected an error, got %+v", got)
				}
				if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
					t.Fatalf("got error %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadNSGA2Config(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nsga2.yaml")
	if err := os.WriteFile(path, []byte("populationSize: 24\nmaxGenerations: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := algorithms.LoadNSGA2Config(path, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PopulationSize != 24 || cfg.MaxGenerations != 5 || cfg.MutationProbability != 0.1 {
		t.Errorf("got %+v", cfg)
	}

	if _, err := algorithms.LoadNSGA2Config(filepath.Join(t.TempDir(), "missing.yaml"), 10); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: got error %v, want os.ErrNotExist", err)
	}
}

func TestParseMOCellConfig(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    *algorithms.MOCellConfig
		wantErr bool
	}{
		{
			name: "defaults",
			data: "",
			want: &algorithms.MOCellConfig{
				PopulationSize: 100,
				GridColumns:    10,
				ArchiveSize:    100,
				MaxEvaluations: 25000,
				VariationConfig: algorithms.VariationConfig{
					CrossoverProbability:       0.9,
					CrossoverDistributionIndex: 20,
					MutationProbability:        0.5,
					MutationDistributionIndex:  20,
				},
			},
		},
		{
			name:    "more columns than cells",
			data:    "populationSize: 16\ngridColumns: 20\n",
			wantErr: true,
		},
		{
			name:    "negative archive",
			data:    "archiveSize: -3\n",
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := algorithms.ParseMOCellConfig([]byte(tc.data), 2)
			if tc.wantErr {
				if !errors.Is(err, framework.ErrInvalidConfiguration) {
					t.Fatalf("got error %v, want ErrInvalidConfiguration", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseSMSEMOAConfig(t *testing.T) {
	got, err := algorithms.ParseSMSEMOAConfig([]byte("populationSize: 20\n"), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := &algorithms.SMSEMOAConfig{
		PopulationSize:  20,
		MaxEvaluations:  25000,
		ReferenceOffset: 1,
		VariationConfig: algorithms.VariationConfig{
			CrossoverProbability:       0.9,
			CrossoverDistributionIndex: 20,
			MutationProbability:        0.2,
			MutationDistributionIndex:  20,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}

	if _, err := algorithms.ParseSMSEMOAConfig([]byte("referenceOffset: -1\n"), 5); !errors.Is(err, framework.ErrInvalidConfiguration) {
		t.Errorf("negative offset: got error %v, want ErrInvalidConfiguration", err)
	}
}

func TestParseSMPSOConfig(t *testing.T) {
	got, err := algorithms.ParseSMPSOConfig([]byte("swarmSize: 40\nweightMax: 0.5\n"), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := &algorithms.SMPSOConfig{
		SwarmSize:                 40,
		ArchiveSize:               100,
		MaxIterations:             250,
		C1Min:                     1.5,
		C1Max:                     2.5,
		C2Min:                     1.5,
		C2Max:                     2.5,
		WeightMin:                 0,
		WeightMax:                 0.5,
		MutationProbability:       0.1,
		MutationDistributionIndex: 20,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}

	for _, data := range []string{"c1Min: 3\nc1Max: 2\n", "c2Min: -1\nc2Max: 1\n", "mutationProbability: 1.5\n", "archiveSize: -1\n"} {
		if _, err := algorithms.ParseSMPSOConfig([]byte(data), 10); !errors.Is(err, framework.ErrInvalidConfiguration) {
			t.Errorf("%q: got error %v, want ErrInvalidConfiguration", data, err)
		}
	}
}
