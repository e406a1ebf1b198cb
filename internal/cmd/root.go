package cmd

import (
	"context"

	"github.com/DoyleJ11/lol-draft-sim/internal/champion"
	"github.com/DoyleJ11/lol-draft-sim/internal/config"
	"github.com/DoyleJ11/lol-draft-sim/internal/dal"
	"github.com/DoyleJ11/lol-draft-sim/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

type rootOptions struct {
	envFile  string
	logLevel string
}

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "draft",
		Short: "League of Legends champion draft simulator",
		Long: `draft plays the ban/pick phase before a match for two teams sharing
one champion pool. Fearless, tournament and random (ARAM style) drafts
are supported; fearless series carry bans and picks across games.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (overrides DRAFT_LOG_LEVEL)")

	root.AddCommand(newPlayCmd(opts), newChampionsCmd(opts))
	return root
}

// app is what every subcommand needs once configuration is resolved.
type app struct {
	cfg    config.Config
	logger *zap.Logger
}

func (o *rootOptions) load() (*app, error) {
	cfg, err := config.Load(o.envFile)
	if err != nil {
		return nil, err
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, logger: log}, nil
}

func (a *app) source() (dal.ChampionSource, func() error, error) {
	switch a.cfg.ChampionSource {
	case config.SourceFile:
		return dal.FileSource{Path: a.cfg.ChampionFile}, func() error { return nil }, nil
	case config.SourcePostgres:
		db, err := dal.OpenPostgres(a.cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		pg := dal.NewPostgresSource(db)
		return pg, pg.Close, nil
	default:
		return dal.EmbeddedSource{}, func() error { return nil }, nil
	}
}

func (a *app) registry(ctx context.Context) (*champion.Registry, error) {
	src, closeFn, err := a.source()
	if err != nil {
		return nil, err
	}
	defer closeFn()

	reg, err := dal.LoadRegistry(ctx, src)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("champion registry loaded",
		zap.String("source", a.cfg.ChampionSource),
		zap.Int("champions", reg.Len()))
	return reg, nil
}
