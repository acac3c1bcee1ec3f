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

// Package observer reports the progress of a run. Observers are attached to
// an algorithm and called once per generation.
package observer

import (
	"context"

	"k8s.io/klog/v2"

	"github.com/mihai-snyk/paretokit/pkg/framework"
)

// Logger logs progress with the logger carried by the context.
type Logger struct {
	// Every logs only generations that are a multiple of Every. Values
	// below 2 log every generation.
	Every int
}

func (l Logger) Update(ctx context.Context, p framework.Progress) {
	if l.Every > 1 && p.Generation%l.Every != 0 {
		return
	}
	logger := klog.FromContext(ctx)

	feasible := 0
	for _, s := range p.Population {
		if s.IsFeasible() {
			feasible++
		}
	}
	logger.V(2).Info("Generation complete",
		"generation", p.Generation,
		"evaluations", p.Evaluations,
		"populationSize", len(p.Population),
		"feasible", feasible,
		"elapsed", p.Elapsed,
	)

	if loggerV := logger.V(4); loggerV.Enabled() && len(p.Population) > 0 {
		ideal, nadir := framework.ObjectiveBounds(framework.ObjectiveValues(p.Population))
		loggerV.Info("Objective ranges", "generation", p.Generation, "ideal", ideal, "nadir", nadir)
	}
}
