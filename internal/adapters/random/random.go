package random

import (
	"context"
	"math/rand/v2"

	"github.com/L-alam/amongyall-sub001/internal/core/domain"
	"github.com/L-alam/amongyall-sub001/internal/core/ports"
)

type zoneGenerator struct{}

// NewZoneGenerator places goal zones uniformly over the scale.
func NewZoneGenerator() ports.GoalZoneGenerator {
	return zoneGenerator{}
}

func (zoneGenerator) Generate(scale domain.Scale) (domain.GoalZone, error) {
	if scale.MaxZoneStart() < 0 {
		return domain.GoalZone{}, domain.ErrInvalidScale
	}
	return domain.NewGoalZone(scale, rand.IntN(scale.MaxZoneStart()+1))
}

type pairPicker struct {
	pairs []domain.Pair
}

// NewPairPicker picks uniformly from a fixed list, falling back to
// domain.DefaultPair when the list is empty.
func NewPairPicker(pairs ...domain.Pair) ports.PairPicker {
	return pairPicker{pairs: pairs}
}

func (p pairPicker) RandomPair(ctx context.Context) (domain.Pair, error) {
	if len(p.pairs) == 0 {
		return domain.DefaultPair, nil
	}
	return p.pairs[rand.IntN(len(p.pairs))], nil
}
