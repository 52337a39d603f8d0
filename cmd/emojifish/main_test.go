package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/kotaroooo0/emojifish"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	cases := []struct {
		command  string
		args     []string
		expected string
	}{
		{command: "search", args: []string{"snapstreak"}, expected: "🔥 fire 0.6\n"},
		{command: "aliases", args: []string{"lit"}, expected: "fire flame hot lit snapstreak\n"},
		{command: "tone", args: []string{"👋", "5"}, expected: "👋🏿\n"},
		{command: "name", args: []string{"🍕"}, expected: "pizza\n"},
		{command: "name", args: []string{"👋🏽"}, expected: "wave\n"},
		{command: "validate", args: []string{"dark"}, expected: "emoji: false\nname: true\ntone: true\n"},
	}
	for _, tt := range cases {
		t.Run(tt.command, func(t *testing.T) {
			var buf bytes.Buffer
			err := run(defaultConfig(), zerolog.Nop(), &buf, tt.command, tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestRunErrors(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, run(defaultConfig(), zerolog.Nop(), &buf, "tone", []string{"👋", "purple"}), emojifish.ErrInvalidTone)
	assert.ErrorIs(t, run(defaultConfig(), zerolog.Nop(), &buf, "search", nil), errUsage)
	assert.ErrorIs(t, run(defaultConfig(), zerolog.Nop(), &buf, "dance", nil), errUsage)
	assert.Error(t, run(defaultConfig(), zerolog.Nop(), &buf, "import", nil))

	err := run(defaultConfig(), zerolog.Nop(), &buf, "name", []string{"🦖"})
	assert.False(t, errors.Is(err, errUsage))
	assert.Error(t, err)
}

func TestRunImport(t *testing.T) {
	cfg := defaultConfig()
	cfg.Storage = storageRdb
	cfg.Database = emojifish.DBConfig{Driver: emojifish.DriverSQLite3, DB: filepath.Join(t.TempDir(), "emojifish.db")}

	require.NoError(t, run(cfg, zerolog.Nop(), &bytes.Buffer{}, "import", nil))

	var buf bytes.Buffer
	require.NoError(t, run(cfg, zerolog.Nop(), &buf, "search", []string{"snapstreak"}))
	assert.Equal(t, "🔥 fire 0.6\n", buf.String())
}

func TestNewStorageCloser(t *testing.T) {
	cfg := defaultConfig()
	cfg.Storage = storageRdb
	cfg.Database = emojifish.DBConfig{Driver: emojifish.DriverSQLite3, DB: filepath.Join(t.TempDir(), "emojifish.db")}

	storage, closeStorage, err := newStorage(cfg)
	require.NoError(t, err)
	rdb, ok := storage.(*emojifish.StorageRdbImpl)
	require.True(t, ok)
	require.NoError(t, rdb.DB.Ping())

	require.NoError(t, closeStorage())
	assert.Error(t, rdb.DB.Ping())

	_, closeStorage, err = newStorage(defaultConfig())
	require.NoError(t, err)
	assert.NoError(t, closeStorage())
}
