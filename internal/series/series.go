// Package series plays consecutive drafts that share one SeriesLedger, so a
// champion banned or picked in a fearless game stays unavailable for the
// rest of the series.
package series

import (
	"context"
	"fmt"
	"slices"

	"github.com/DoyleJ11/lol-draft-sim/internal/champion"
	"github.com/DoyleJ11/lol-draft-sim/internal/engine"
	"go.uber.org/zap"
)

type Series struct {
	Code     string
	registry *champion.Registry
	ledger   *engine.SeriesLedger
	games    []engine.Result
	logger   *zap.Logger
}

func New(code string, reg *champion.Registry, logger *zap.Logger) *Series {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Series{
		Code:     code,
		registry: reg,
		ledger:   engine.NewSeriesLedger(),
		logger:   logger.With(zap.String("series", code)),
	}
}

// Play runs the next game. Registry, Ledger and Game in cfg are filled in by
// the series; the rest is passed through. A game the remaining pool cannot
// complete is refused before any input is requested.
func (s *Series) Play(ctx context.Context, cfg engine.Config) (engine.Result, error) {
	cfg.Registry = s.registry
	cfg.Ledger = s.ledger
	cfg.Game = len(s.games) + 1
	if cfg.Logger == nil {
		cfg.Logger = s.logger
	}

	session, err := engine.NewSession(cfg)
	if err != nil {
		return engine.Result{}, fmt.Errorf("game %d: %w", cfg.Game, err)
	}

	res, err := session.Run(ctx)
	if err != nil {
		return engine.Result{}, fmt.Errorf("game %d: %w", cfg.Game, err)
	}

	s.games = append(s.games, res)
	s.logger.Info("game finished",
		zap.Int("game", cfg.Game),
		zap.Int("excluded", s.ledger.Len()))
	return res, nil
}

func (s *Series) Ledger() *engine.SeriesLedger { return s.ledger }

func (s *Series) Games() []engine.Result { return slices.Clone(s.games) }
