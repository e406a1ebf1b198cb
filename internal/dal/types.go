package dal

import (
	"context"
	"fmt"

	"github.com/DoyleJ11/lol-draft-sim/internal/champion"
)

// ChampionSource loads the reference champion table. Drafts never write
// through it.
type ChampionSource interface {
	LoadChampions(ctx context.Context) ([]champion.Champion, error)
}

func LoadRegistry(ctx context.Context, src ChampionSource) (*champion.Registry, error) {
	champs, err := src.LoadChampions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load champions: %w", err)
	}
	return champion.NewRegistry(champs)
}
