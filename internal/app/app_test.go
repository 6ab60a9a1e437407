package app_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/fyyur/internal/app"
	"github.com/iliyamo/fyyur/internal/config"
	"github.com/iliyamo/fyyur/internal/database"
	"github.com/iliyamo/fyyur/internal/directory"
)

func TestNew_SQLiteWithMigrations(t *testing.T) {
	log, hook := test.NewNullLogger()
	cfg := config.Config{
		DB: config.DatabaseConfig{
			Driver:      database.SQLite,
			DSN:         filepath.Join(t.TempDir(), "app.db"),
			AutoMigrate: true,
		},
	}
	ctx := context.Background()

	a, err := app.New(ctx, cfg, log)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, a.Close()) })

	assert.Nil(t, a.Redis)
	require.NoError(t, a.Dir.Ping(ctx))

	v, err := a.Dir.CreateVenue(ctx, directory.VenueFields{Name: directory.Ptr("The Dueling Pianos Bar")})
	require.NoError(t, err)
	assert.NotZero(t, v.ID)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "directory ready", hook.Entries[0].Message)
}

func TestNew_UnknownDriver(t *testing.T) {
	log, _ := test.NewNullLogger()
	_, err := app.New(context.Background(), config.Config{DB: config.DatabaseConfig{Driver: "oracle"}}, log)
	require.Error(t, err)
}
