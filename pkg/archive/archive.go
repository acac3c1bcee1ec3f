// Package archive keeps sets of mutually non-dominated solutions, optionally
// bounded in size. Archives copy solutions in and are not safe for
// concurrent use.
package archive

import (
	"github.com/mihai-snyk/paretokit/pkg/dominance"
	"github.com/mihai-snyk/paretokit/pkg/framework"
)

// Archive stores non-dominated solutions.
type Archive interface {
	// Add offers a solution. It returns false when the candidate was
	// rejected, in which case the archive is unchanged.
	Add(s *framework.Solution) bool
	Solutions() []*framework.Solution
	Size() int
}

// NonDominated is an unbounded archive. A candidate dominated by a member, or
// with the same objectives as a member, is rejected. Members dominated by an
// accepted candidate are removed.
type NonDominated struct {
	comparator dominance.Comparator
	members    []*framework.Solution
}

// NewNonDominated uses the constrained Pareto comparator when cmp is nil.
func NewNonDominated(cmp dominance.Comparator) *NonDominated {
	if cmp == nil {
		cmp = dominance.Default()
	}
	return &NonDominated{comparator: cmp}
}

func (a *NonDominated) Add(s *framework.Solution) bool {
	var beaten []int
	for i, m := range a.members {
		switch a.comparator.Compare(s, m) {
		case 1:
			return false
		case -1:
			beaten = append(beaten, i)
		default:
			if sameObjectives(s, m) {
				return false
			}
		}
	}

	if len(beaten) > 0 {
		kept := a.members[:0]
		next := 0
		for i, m := range a.members {
			if next < len(beaten) && beaten[next] == i {
				next++
				continue
			}
			kept = append(kept, m)
		}
		for i := len(kept); i < len(a.members); i++ {
			a.members[i] = nil
		}
		a.members = kept
	}

	c := s.Copy()
	c.Attributes().Clear()
	a.members = append(a.members, c)
	return true
}

// Solutions returns the members. The slice is owned by the archive and must
// not be modified.
func (a *NonDominated) Solutions() []*framework.Solution {
	return a.members
}

func (a *NonDominated) Size() int {
	return len(a.members)
}

func (a *NonDominated) remove(i int) {
	copy(a.members[i:], a.members[i+1:])
	a.members[len(a.members)-1] = nil
	a.members = a.members[:len(a.members)-1]
}

func sameObjectives(a, b *framework.Solution) bool {
	for i := range a.Objectives {
		if a.Objectives[i] != b.Objectives[i] {
			return false
		}
	}
	return true
}
