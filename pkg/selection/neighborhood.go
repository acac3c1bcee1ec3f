package selection

import (
	"golang.org/x/exp/rand"

	"github.com/mihai-snyk/paretokit/pkg/framework"
)

// Neighborhood places the population on a toroidal grid with Cols columns,
// filled row by row. Parents for the k-th pool slot come from a tournament
// among cell (k/ParentsPerCell) mod len(population) and its Moore
// neighbours, so every cell in turn mates locally.
type Neighborhood struct {
	Cols           int
	ParentsPerCell int
	Tournament     *Tournament
}

func NewNeighborhood(cols int, t *Tournament) (*Neighborhood, error) {
	if cols < 1 {
		return nil, framework.InvalidConfigf("grid needs at least one column, got %d", cols)
	}
	if t == nil {
		t = NewBinaryTournament()
	}
	return &Neighborhood{Cols: cols, ParentsPerCell: 2, Tournament: t}, nil
}

func (nb *Neighborhood) Select(population []*framework.Solution, n int, rng *rand.Rand) ([]*framework.Solution, error) {
	if err := check(population, rng); err != nil {
		return nil, err
	}
	per := nb.ParentsPerCell
	if per < 1 {
		per = 1
	}

	pool := make([]*framework.Solution, n)
	var candidates []*framework.Solution
	for k := range pool {
		if k%per == 0 {
			cell := (k / per) % len(population)
			candidates = candidates[:0]
			for _, i := range nb.Neighbors(cell, len(population)) {
				candidates = append(candidates, population[i])
			}
		}
		pool[k] = nb.Tournament.pick(candidates, rng)
	}
	return pool, nil
}

// Neighbors returns cell followed by its distinct Moore neighbours on a grid
// holding size cells. Positions past the last cell of a partial row are
// skipped.
func (nb *Neighborhood) Neighbors(cell, size int) []int {
	cols := nb.Cols
	if cols > size {
		cols = size
	}
	rows := (size + cols - 1) / cols
	r, c := cell/cols, cell%cols

	out := []int{cell}
	seen := map[int]bool{cell: true}
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			i := ((r+dr+rows)%rows)*cols + (c+dc+cols)%cols
			if i >= size || seen[i] {
				continue
			}
			seen[i] = true
			out = append(out, i)
		}
	}
	return out
}
