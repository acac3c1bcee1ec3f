package density

import (
	"math"
	"sort"

	"github.com/mihai-snyk/paretokit/pkg/framework"
)

// CrowdingDistance is the NSGA-II crowding distance. Larger is better.
type CrowdingDistance struct{}

// Compute calculates crowding distance for individuals in a front. The
// front itself is not reordered.
func (CrowdingDistance) Compute(front []*framework.Solution) {
	if len(front) <= 2 {
		for _, s := range front {
			s.Attributes().SetFloat(framework.AttrCrowdingDistance, math.Inf(1))
		}
		return
	}

	distance := make([]float64, len(front))
	order := make([]int, len(front))
	numObjectives := len(front[0].Objectives)

	for m := 0; m < numObjectives; m++ {
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(i, j int) bool {
			return front[order[i]].Objectives[m] < front[order[j]].Objectives[m]
		})

		first, last := order[0], order[len(order)-1]
		distance[first] = math.Inf(1)
		distance[last] = math.Inf(1)

		objectiveRange := front[last].Objectives[m] - front[first].Objectives[m]
		if objectiveRange == 0 {
			continue
		}

		for k := 1; k < len(order)-1; k++ {
			distance[order[k]] += (front[order[k+1]].Objectives[m] - front[order[k-1]].Objectives[m]) / objectiveRange
		}
	}

	for i, s := range front {
		s.Attributes().SetFloat(framework.AttrCrowdingDistance, distance[i])
	}
}

func (CrowdingDistance) Value(s *framework.Solution) float64 {
	return floatAttribute(s, framework.AttrCrowdingDistance)
}

func (CrowdingDistance) Sense() Sense {
	return LargerIsBetter
}
