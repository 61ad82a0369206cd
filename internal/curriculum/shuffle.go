package curriculum

import (
	"fmt"
	"hash/fnv"

	"github.com/alexanderramin/lexiplay/internal/domain"
)

// LCG is a 32-bit linear congruential generator (Numerical Recipes
// constants). The same seed always yields the same stream.
type LCG struct {
	state uint32
}

func NewLCG(seed uint32) *LCG {
	return &LCG{state: seed}
}

// Next returns the next value in [0, 1).
func (g *LCG) Next() float64 {
	g.state = g.state*1664525 + 1013904223
	return float64(g.state) / (1 << 32)
}

// Permutation returns a Fisher-Yates permutation of 0..n-1 driven by an LCG
// seeded with seed.
func Permutation(n int, seed uint32) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	g := NewLCG(seed)
	for i := n - 1; i > 0; i-- {
		j := int(g.Next() * float64(i+1))
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}

// ShuffleQuestions returns a reordered copy of qs. qs is not modified.
func ShuffleQuestions(qs []domain.CurriculumLevelQuestion, seed uint32) []domain.CurriculumLevelQuestion {
	out := make([]domain.CurriculumLevelQuestion, len(qs))
	for i, from := range Permutation(len(qs), seed) {
		out[i] = qs[from]
	}
	return out
}

// GetShuffledLevelQuestions returns the level's questions in the order given
// by seed.
func GetShuffledLevelQuestions(moduleID domain.ModuleID, level int, seed uint32) []domain.CurriculumLevelQuestion {
	return ShuffleQuestions(GenerateModuleLevel(moduleID, level).Questions, seed)
}

// DeterministicSeed is the base seed of a (module, level) pair.
func DeterministicSeed(moduleID domain.ModuleID, level int) uint32 {
	h := fnv.New32a()
	fmt.Fprintf(h, "%s:%d", moduleID, level)
	return h.Sum32()
}

// SessionQuestions returns the question order a session should present:
// shuffled by the session seed when the level allows reshuffling, canonical
// otherwise.
func SessionQuestions(s *domain.StoredLevelSessionState) []domain.CurriculumLevelQuestion {
	def := GenerateModuleLevel(s.ModuleID, s.LevelNumber)
	if !def.ReshuffleEnabled {
		return def.Questions
	}
	return ShuffleQuestions(def.Questions, s.Seed)
}
