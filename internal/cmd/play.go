package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/DoyleJ11/lol-draft-sim/internal/console"
	"github.com/DoyleJ11/lol-draft-sim/internal/engine"
	"github.com/DoyleJ11/lol-draft-sim/internal/httpapi"
	"github.com/DoyleJ11/lol-draft-sim/internal/hub"
	"github.com/DoyleJ11/lol-draft-sim/internal/series"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type playOptions struct {
	mode     string
	games    int
	blue     string
	red      string
	spectate string
}

func newPlayCmd(root *rootOptions) *cobra.Command {
	opts := &playOptions{}
	c := &cobra.Command{
		Use:   "play",
		Short: "Play a draft series from standard input",
		Example: `  draft play
  draft play --mode tournament --blue T1 --red G2
  draft play --games 3 --spectate :8080`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			a, err := root.load()
			if err != nil {
				return err
			}
			defer a.logger.Sync() //nolint:errcheck
			return a.play(c, opts)
		},
	}
	f := c.Flags()
	f.StringVarP(&opts.mode, "mode", "m", string(engine.ModeFearless), "draft mode: fearless, tournament or random")
	f.IntVarP(&opts.games, "games", "n", 1, "games in the series")
	f.StringVar(&opts.blue, "blue", "", "blue side name (overrides DRAFT_BLUE_NAME)")
	f.StringVar(&opts.red, "red", "", "red side name (overrides DRAFT_RED_NAME)")
	f.StringVar(&opts.spectate, "spectate", "", "serve a read-only spectator feed on this address (overrides DRAFT_SPECTATE_ADDR)")
	return c
}

func (a *app) play(c *cobra.Command, opts *playOptions) error {
	mode, ok := engine.ParseMode(opts.mode)
	if !ok {
		return fmt.Errorf("unknown mode %q", opts.mode)
	}
	if opts.games < 1 {
		return fmt.Errorf("--games must be at least 1, got %d", opts.games)
	}
	blue := firstNonEmpty(opts.blue, a.cfg.BlueName)
	red := firstNonEmpty(opts.red, a.cfg.RedName)
	addr := firstNonEmpty(opts.spectate, a.cfg.SpectateAddr)

	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	reg, err := a.registry(ctx)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	announcers := engine.Announcers{console.NewPrinter(c.OutOrStdout())}
	code, err := hub.GenerateCode()
	if err != nil {
		return err
	}

	var srv *http.Server
	if addr != "" {
		h := hub.NewHub(gctx, a.logger)
		var lb engine.Announcer
		code, lb, err = h.Open()
		if err != nil {
			return err
		}
		announcers = append(announcers, lb)

		// Bind before the first prompt: the console reader cannot be
		// interrupted once it blocks on stdin.
		ln, err := net.Listen("tcp", addr)
		if err != nil {
			return fmt.Errorf("spectator feed: %w", err)
		}
		srv = &http.Server{
			Handler:           httpapi.SetupRoutes(h, reg, a.logger),
			ReadHeaderTimeout: 5 * time.Second,
		}
		g.Go(func() error {
			a.logger.Info("spectator feed listening",
				zap.String("addr", ln.Addr().String()),
				zap.String("lobby", code))
			if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		fmt.Fprintf(c.OutOrStdout(), "Spectators: ws://%s/ws?code=%s\n", ln.Addr(), code)
	}

	s := series.New(code, reg, a.logger)
	input := console.NewReader(c.InOrStdin(), c.OutOrStdout())

	g.Go(func() error {
		if srv != nil {
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = srv.Shutdown(shutdownCtx)
			}()
		}
		for i := 0; i < opts.games; i++ {
			_, err := s.Play(gctx, engine.Config{
				Mode:      mode,
				BlueName:  blue,
				RedName:   red,
				Input:     input,
				Announcer: announcers,
			})
			if errors.Is(err, engine.ErrPoolTooSmall) && i > 0 {
				fmt.Fprintf(c.OutOrStdout(), "\nSeries ended after %d games: %v\n", i, err)
				return nil
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
	return g.Wait()
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
