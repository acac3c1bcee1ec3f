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

package observer

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/mihai-snyk/paretokit/pkg/dominance"
	"github.com/mihai-snyk/paretokit/pkg/framework"
	"github.com/mihai-snyk/paretokit/pkg/hypervolume"
)

const namespace = "paretokit"

// Metrics exports progress as prometheus metrics labelled with the
// algorithm name. A generation 0 update marks the start of a new run.
type Metrics struct {
	evaluations        prometheus.Counter
	generation         prometheus.Gauge
	frontSize          prometheus.Gauge
	hypervolume        prometheus.Gauge
	generationDuration prometheus.Histogram

	reference []float64

	mu              sync.Mutex
	lastEvaluations int
	lastElapsed     time.Duration
}

// NewMetrics registers the metrics of one algorithm with reg. When
// reference is not nil the hypervolume of the first front with respect to it
// is exported as well.
func NewMetrics(reg prometheus.Registerer, algorithm string, reference []float64) *Metrics {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"algorithm": algorithm}

	m := &Metrics{
		evaluations: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "evaluations_total",
			Help:        "Number of objective function evaluations.",
			ConstLabels: labels,
		}),
		generation: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "generation",
			Help:        "Last completed generation of the current run.",
			ConstLabels: labels,
		}),
		frontSize: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "front_size",
			Help:        "Number of non-dominated solutions in the current population.",
			ConstLabels: labels,
		}),
		generationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "generation_duration_seconds",
			Help:        "Wall clock time of one generation.",
			ConstLabels: labels,
			Buckets:     prometheus.ExponentialBuckets(0.0005, 4, 10),
		}),
	}
	if reference != nil {
		m.reference = append([]float64(nil), reference...)
		m.hypervolume = factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "hypervolume",
			Help:        "Hypervolume of the current first front.",
			ConstLabels: labels,
		})
	}
	return m
}

func (m *Metrics) Update(_ context.Context, p framework.Progress) {
	m.mu.Lock()
	if p.Generation == 0 {
		m.lastEvaluations, m.lastElapsed = 0, 0
	}
	evaluations := p.Evaluations - m.lastEvaluations
	elapsed := p.Elapsed - m.lastElapsed
	m.lastEvaluations, m.lastElapsed = p.Evaluations, p.Elapsed
	m.mu.Unlock()

	if evaluations > 0 {
		m.evaluations.Add(float64(evaluations))
	}
	if p.Generation > 0 {
		m.generationDuration.Observe(elapsed.Seconds())
	}
	m.generation.Set(float64(p.Generation))

	front := dominance.NonDominated(p.Population, dominance.Default())
	m.frontSize.Set(float64(len(front)))
	if m.hypervolume != nil && len(front) > 0 && len(front[0].Objectives) == len(m.reference) {
		m.hypervolume.Set(hypervolume.Volume(framework.ObjectiveValues(front), m.reference))
	}
}
