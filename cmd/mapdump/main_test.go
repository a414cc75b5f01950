package main

import (
	"bytes"
	"strings"
	"testing"

	"dungeoncore/internal/config"
	"dungeoncore/internal/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSim(t *testing.T, seed string) *game.Simulation {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = seed
	sim, err := game.New(cfg, nil)
	require.NoError(t, err)
	return sim
}

func TestDumpPlainShape(t *testing.T) {
	sim := newSim(t, "dump")
	var buf bytes.Buffer
	dump(&buf, sim, true, false)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, sim.Map().Height)
	for i, line := range lines {
		assert.Equal(t, sim.Map().Width, len([]rune(line)), "row %d", i)
	}
	assert.Equal(t, 1, strings.Count(buf.String(), "@"))
}

func TestDumpTerrainOnly(t *testing.T) {
	sim := newSim(t, "dump")
	var buf bytes.Buffer
	dump(&buf, sim, false, false)

	assert.NotContains(t, buf.String(), "@")
	assert.Equal(t, "", strings.Trim(buf.String(), "#.\n"))

	p := sim.PlayerPos()
	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, '.', []rune(lines[p.Y])[p.X], "the player starts on floor")
}

func TestDumpIsStableForASeed(t *testing.T) {
	var a, b bytes.Buffer
	dump(&a, newSim(t, "stable"), true, false)
	dump(&b, newSim(t, "stable"), true, false)
	assert.Equal(t, a.String(), b.String())
}
