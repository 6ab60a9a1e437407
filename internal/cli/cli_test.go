package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/fyyur/internal/cli"
	"github.com/iliyamo/fyyur/internal/database/databasetest"
	"github.com/iliyamo/fyyur/internal/repository"
	"github.com/iliyamo/fyyur/internal/service"
	"github.com/iliyamo/fyyur/internal/utils"
)

func readSeed(t *testing.T) cli.SeedFile {
	t.Helper()
	fh, err := os.Open(filepath.Join("testdata", "seed.yaml"))
	require.NoError(t, err)
	defer fh.Close()
	f, err := cli.ReadSeedFile(fh)
	require.NoError(t, err)
	return f
}

func TestReadSeedFile(t *testing.T) {
	f := readSeed(t)
	require.Len(t, f.Venues, 2)
	require.Len(t, f.Artists, 2)
	require.Len(t, f.Shows, 2)
	assert.Equal(t, "The Musical Hop", *f.Venues[0].Name)
	assert.Equal(t, []string{"Jazz", "Classical"}, *f.Artists[1].Genres)
	assert.True(t, *f.Venues[0].SeekingTalent)
	assert.Nil(t, f.Venues[1].Website)
}

func TestReadSeedFile_UnknownKey(t *testing.T) {
	_, err := cli.ReadSeedFile(strings.NewReader("venues:\n  - nme: typo\n"))
	require.Error(t, err)
}

func newDirectory(t *testing.T) *service.Directory {
	t.Helper()
	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})
	return service.NewDirectory(repository.NewStore(databasetest.Open(t)), service.WithLogger(log))
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	dir := newDirectory(t)

	st, err := cli.Seed(ctx, dir, readSeed(t))
	require.NoError(t, err)
	assert.Equal(t, cli.SeedStats{Venues: 2, Artists: 2, Shows: 2}, st)

	shows, err := dir.Shows(ctx)
	require.NoError(t, err)
	require.Len(t, shows, 2)
	assert.Equal(t, "Guns N Petals", shows[0].ArtistName)
	assert.Equal(t, "The Musical Hop", shows[0].VenueName)
}

func TestSeed_UnknownVenueStops(t *testing.T) {
	f := readSeed(t)
	f.Shows[1].Venue = "Nowhere"

	st, err := cli.Seed(context.Background(), newDirectory(t), f)
	require.ErrorContains(t, err, `show #2: unknown venue "Nowhere"`)
	assert.Equal(t, 1, st.Shows)
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := cli.NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func sqliteEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", filepath.Join(t.TempDir(), "cli.db"))
	t.Setenv("REDIS_ENABLED", "false")
	t.Setenv("EVENTS_ENABLED", "false")
}

func TestMigrateAndSeedCommands(t *testing.T) {
	sqliteEnv(t)

	out, err := run(t, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "schema up to date (sqlite)")

	out, err = run(t, "seed", "-f", filepath.Join("testdata", "seed.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "2 venues, 2 artists, 2 shows")
}

func TestSeedCommand_RequiresFile(t *testing.T) {
	sqliteEnv(t)
	_, err := run(t, "seed")
	require.Error(t, err)
}

func TestTokenCommand(t *testing.T) {
	sqliteEnv(t)

	t.Setenv("EDITOR_JWT_SECRET", "")
	_, err := run(t, "token")
	require.ErrorContains(t, err, "EDITOR_JWT_SECRET")

	t.Setenv("EDITOR_JWT_SECRET", "s3cret")
	out, err := run(t, "token", "--subject", "front-desk", "--ttl", "1h")
	require.NoError(t, err)

	claims, err := utils.ParseEditorToken("s3cret", strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "front-desk", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}
