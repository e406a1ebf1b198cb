package dal

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/DoyleJ11/lol-draft-sim/internal/champion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedSource(t *testing.T) {
	reg, err := LoadRegistry(context.Background(), EmbeddedSource{})
	require.NoError(t, err)
	assert.Equal(t, 32, reg.Len())
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pool.yaml")
	require.NoError(t, os.WriteFile(path, []byte("champions:\n  - {name: Zed, roles: [Mid]}\n  - {name: Lux, roles: [Support, Mage]}\n"), 0o600))

	reg, err := LoadRegistry(context.Background(), FileSource{Path: path})
	require.NoError(t, err)
	assert.Equal(t, []string{"Lux", "Zed"}, reg.Names())
}

func TestFileSourceErrors(t *testing.T) {
	_, err := LoadRegistry(context.Background(), FileSource{Path: filepath.Join(t.TempDir(), "nope.yaml")})
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "dup.yaml")
	require.NoError(t, os.WriteFile(path, []byte("champions:\n  - {name: Zed, roles: [Mid]}\n  - {name: zed, roles: [Mid]}\n"), 0o600))
	_, err = LoadRegistry(context.Background(), FileSource{Path: path})
	assert.ErrorIs(t, err, champion.ErrInvalidDataset)
}

func TestChampionRecordRoundTrip(t *testing.T) {
	c := champion.Champion{Name: "Thresh", Roles: []string{"Support", "Tank"}}
	r := recordOf(c)
	assert.Equal(t, "champions", r.TableName())
	assert.Equal(t, c, r.Champion())
}

// Runs against a real database only when DRAFT_TEST_DATABASE_URL is set.
func TestPostgresSource(t *testing.T) {
	dsn := os.Getenv("DRAFT_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("DRAFT_TEST_DATABASE_URL not set")
	}
	ctx := context.Background()

	db, err := OpenPostgres(dsn)
	require.NoError(t, err)
	src := NewPostgresSource(db)
	t.Cleanup(func() { _ = src.Close() })

	require.NoError(t, src.Migrate(ctx))
	champs, err := EmbeddedSource{}.LoadChampions(ctx)
	require.NoError(t, err)
	require.NoError(t, src.Seed(ctx, champs))
	// seeding twice is an upsert
	require.NoError(t, src.Seed(ctx, champs))

	reg, err := LoadRegistry(ctx, src)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, reg.Len(), 32)

	roles, err := reg.RolesOf("Thresh")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Support", "Tank", "Control"}, roles)
}
