package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/DoyleJ11/lol-draft-sim/internal/champion"
	"github.com/DoyleJ11/lol-draft-sim/internal/dal"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newChampionsCmd(root *rootOptions) *cobra.Command {
	var role string
	c := &cobra.Command{
		Use:     "champions",
		Aliases: []string{"champs"},
		Short:   "List the champion pool",
		Args:    cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			a, err := root.load()
			if err != nil {
				return err
			}
			defer a.logger.Sync() //nolint:errcheck

			reg, err := a.registry(c.Context())
			if err != nil {
				return err
			}
			champs := reg.Champions()
			if role != "" {
				champs = reg.WithRole(role)
			}
			return printChampions(c, champs)
		},
	}
	c.Flags().StringVarP(&role, "role", "r", "", "only list champions that can play this role")
	c.AddCommand(newSeedCmd(root))
	return c
}

func newSeedCmd(root *rootOptions) *cobra.Command {
	var file string
	c := &cobra.Command{
		Use:   "seed",
		Short: "Create the champions table and upsert a pool into it",
		Long: `seed migrates the champions table at DATABASE_URL and upserts the
embedded pool, or the YAML file given with --file.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			a, err := root.load()
			if err != nil {
				return err
			}
			defer a.logger.Sync() //nolint:errcheck
			if a.cfg.DatabaseURL == "" {
				return errors.New("DATABASE_URL is required to seed")
			}

			var src dal.ChampionSource = dal.EmbeddedSource{}
			if file != "" {
				src = dal.FileSource{Path: file}
			}
			// Validate before touching the database.
			reg, err := dal.LoadRegistry(c.Context(), src)
			if err != nil {
				return err
			}

			db, err := dal.OpenPostgres(a.cfg.DatabaseURL)
			if err != nil {
				return err
			}
			pg := dal.NewPostgresSource(db)
			defer pg.Close()

			if err := pg.Migrate(c.Context()); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			if err := pg.Seed(c.Context(), reg.Champions()); err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			a.logger.Info("champions seeded", zap.Int("count", reg.Len()))
			fmt.Fprintf(c.OutOrStdout(), "Seeded %d champions\n", reg.Len())
			return nil
		},
	}
	c.Flags().StringVarP(&file, "file", "f", "", "YAML pool to seed instead of the embedded one")
	return c
}

func printChampions(c *cobra.Command, champs []champion.Champion) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("NAME", "ROLES")
	for _, ch := range champs {
		t.Row(ch.Name, strings.Join(ch.Roles, ", "))
	}
	_, err := fmt.Fprintln(c.OutOrStdout(), t.Render())
	return err
}
