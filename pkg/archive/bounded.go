package archive

import (
	"github.com/mihai-snyk/paretokit/pkg/dominance"
	"github.com/mihai-snyk/paretokit/pkg/framework"
)

// EvictionPolicy picks the member to drop from an archive over capacity.
type EvictionPolicy interface {
	// Victim returns the index in members of the solution to evict.
	// members is never empty.
	Victim(members []*framework.Solution) int
}

// Bounded is a non-dominated archive holding at most Capacity solutions.
// Every policy recomputes its scores over the whole archive on each
// eviction.
type Bounded struct {
	archive  *NonDominated
	capacity int
	policy   EvictionPolicy
}

func NewBounded(capacity int, cmp dominance.Comparator, policy EvictionPolicy) (*Bounded, error) {
	if capacity < 1 {
		return nil, framework.InvalidConfigf("archive capacity must be at least 1, got %d", capacity)
	}
	if policy == nil {
		return nil, framework.InvalidConfigf("archive needs an eviction policy")
	}
	return &Bounded{
		archive:  NewNonDominated(cmp),
		capacity: capacity,
		policy:   policy,
	}, nil
}

// Add inserts a copy of s when it is not dominated, then evicts one member
// if the archive grew over capacity.
func (b *Bounded) Add(s *framework.Solution) bool {
	if !b.archive.Add(s) {
		return false
	}
	if b.archive.Size() > b.capacity {
		b.Prune()
	}
	return true
}

// Prune evicts one member chosen by the policy when the archive is over
// capacity. It is a no-op otherwise.
func (b *Bounded) Prune() {
	if b.archive.Size() == 0 || b.archive.Size() <= b.capacity {
		return
	}
	b.archive.remove(b.policy.Victim(b.archive.Solutions()))
}

func (b *Bounded) Solutions() []*framework.Solution {
	return b.archive.Solutions()
}

func (b *Bounded) Size() int {
	return b.archive.Size()
}

func (b *Bounded) Capacity() int {
	return b.capacity
}
