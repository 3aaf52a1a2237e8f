package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/arcade-classics/internal/mines"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.False(t, cfg.Development)
	assert.Equal(t, 30, cfg.TickRate)
	assert.Equal(t, "arcade.log", cfg.LogFile)
	assert.Equal(t, Minesweeper{Width: 10, Height: 10, MineCount: 9, Rule: "strict"}, cfg.Minesweeper)
	assert.Equal(t, 3*time.Minute, cfg.Memory.TimeLimit)
	assert.Equal(t, 10, cfg.Snake.InitialSpeed)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, lvl)

	p, err := cfg.Minesweeper.GameParams()
	require.NoError(t, err)
	assert.Equal(t, mines.GameParams{Width: 10, Height: 10, MineCount: 9}, p)
}

func TestLoadFlags(t *testing.T) {
	flags := NewFlagSet("test")
	require.NoError(t, flags.Parse([]string{"--tick-rate", "60", "--development", "--log-file", "x.log"}))

	cfg, err := Load(flags)
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.TickRate)
	assert.True(t, cfg.Development)
	assert.Equal(t, "x.log", cfg.LogFile)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, lvl)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("ARCADE_MINESWEEPER_MINE_COUNT", "20")
	t.Setenv("ARCADE_LOG_LEVEL", "warn")
	t.Setenv("DEVELOPMENT", "1")

	cfg, err := Load(NewFlagSet("test"))
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Minesweeper.MineCount)
	assert.True(t, cfg.Development)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, lvl)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arcade.yaml")
	err := os.WriteFile(path, []byte(`
tick_rate: 20
minesweeper:
  width: 16
  height: 16
  mine_count: 40
  rule: through-flags
memory:
  time_limit: 90s
`), 0o600)
	require.NoError(t, err)

	flags := NewFlagSet("test")
	require.NoError(t, flags.Parse([]string{"-c", path}))
	cfg, err := Load(flags)
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.TickRate)
	assert.Equal(t, 90*time.Second, cfg.Memory.TimeLimit)
	p, err := cfg.Minesweeper.GameParams()
	require.NoError(t, err)
	assert.Equal(t, mines.GameParams{Width: 16, Height: 16, MineCount: 40, Rule: mines.RuleThroughFlags}, p)

	assert.Equal(t, 1800, cfg.Ticks(cfg.Memory.TimeLimit))
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"tick rate", nil, []string{"--tick-rate", "0"}},
		{"log level", map[string]string{"ARCADE_LOG_LEVEL": "loud"}, nil},
		{"mine count", map[string]string{"ARCADE_MINESWEEPER_MINE_COUNT": "100"}, nil},
		{"rule", map[string]string{"ARCADE_MINESWEEPER_RULE": "sideways"}, nil},
		{"memory board", map[string]string{"ARCADE_MEMORY_WIDTH": "3", "ARCADE_MEMORY_HEIGHT": "3"}, nil},
		{"snake speed", map[string]string{"ARCADE_SNAKE_MAX_SPEED": "1"}, nil},
		{"missing file", nil, []string{"-c", "/nonexistent/arcade.yaml"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			for k, v := range test.env {
				t.Setenv(k, v)
			}
			flags := NewFlagSet("test")
			require.NoError(t, flags.Parse(test.args))
			_, err := Load(flags)
			assert.Error(t, err)
		})
	}
}

func TestTicks(t *testing.T) {
	cfg := Config{TickRate: 30}
	assert.Equal(t, 30, cfg.Ticks(time.Second))
	assert.Equal(t, 15, cfg.Ticks(500*time.Millisecond))
	assert.Equal(t, 5400, cfg.Ticks(3*time.Minute))
}
