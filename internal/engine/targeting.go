package engine

import (
	"sort"

	"github.com/vovakirdan/maze-chase/internal/config"
	"github.com/vovakirdan/maze-chase/internal/core"
)

// Rand is the randomness the engine needs. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

type targetFunc func(g *Ghost, s *Session, h config.HeuristicsConfig) core.Point

// chaseTargets maps each personality to its chase-phase rule.
var chaseTargets = [...]targetFunc{
	Direct: func(_ *Ghost, s *Session, _ config.HeuristicsConfig) core.Point {
		return s.Player.Pos
	},
	Ambush: func(_ *Ghost, s *Session, h config.HeuristicsConfig) core.Point {
		return s.Player.Pos.Add(s.Player.Facing.Delta().Scale(h.AmbushLead))
	},
	Pincer: func(_ *Ghost, s *Session, h config.HeuristicsConfig) core.Point {
		pivot := s.Player.Pos.Add(s.Player.Facing.Delta().Scale(h.PincerLead))
		return pivot.Add(pivot.Sub(s.directGhost().Pos))
	},
	Shy: func(g *Ghost, s *Session, h config.HeuristicsConfig) core.Point {
		if g.Pos.Manhattan(s.Player.Pos) > h.ShyRadius {
			return s.Player.Pos
		}
		return g.Corner
	},
}

// computeTarget returns the tile g steers toward. The result may lie outside
// the maze; it is only used for distance comparison.
func computeTarget(g *Ghost, s *Session, h config.HeuristicsConfig) core.Point {
	if g.Vulnerable {
		return g.Pos.Add(g.Pos.Sub(s.Player.Pos).Scale(2))
	}
	if s.Schedule.Mode() == Scatter {
		return g.Corner
	}
	return chaseTargets[g.Personality](g, s, h)
}

type candidate struct {
	dir   Direction
	score int
}

// chooseDirection picks g's next heading toward target. Candidates are
// enumerated in searchOrder, reversing is excluded unless g is vulnerable,
// and the lowest penalized Manhattan distance wins with ties kept in
// enumeration order. A vulnerable ghost sometimes takes the runner-up. When
// every forward move is blocked the reverse is allowed.
func chooseDirection(g *Ghost, target core.Point, s *Session, h config.HeuristicsConfig, rng Rand) Direction {
	var cands []candidate
	reverse := g.Facing.Reverse()

	for _, d := range searchOrder {
		if !g.Vulnerable && d == reverse {
			continue
		}
		next, ok := ghostStep(s, g.Pos, d)
		if !ok {
			continue
		}
		cands = append(cands, candidate{
			dir:   d,
			score: next.Manhattan(target) + clusterPenalty(g, next, s, h),
		})
	}

	if len(cands) == 0 {
		if _, ok := ghostStep(s, g.Pos, reverse); ok {
			return reverse
		}
		return DirNone
	}

	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].score < cands[j].score
	})

	if g.Vulnerable && len(cands) > 1 && rng.Float64() < h.FleeMistakeChance {
		return cands[1].dir
	}
	return cands[0].dir
}

// clusterPenalty discourages stacking on or next to other roaming ghosts.
func clusterPenalty(g *Ghost, next core.Point, s *Session, h config.HeuristicsConfig) int {
	penalty := 0
	for i := range s.Ghosts {
		other := &s.Ghosts[i]
		if other == g || !other.Active() {
			continue
		}
		switch d := next.Chebyshev(other.Pos); {
		case d == 0:
			penalty += h.SameCellPenalty
		case d == 1:
			penalty += h.AdjacentPenalty
		}
	}
	return penalty
}
