package main

import (
	"testing"

	"github.com/marisvali/tetris1/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedConfig(t *testing.T) {
	var c Config
	world.LoadYAML(&embeddedFiles, "data/config.yaml", &c)
	_, err := ParseGameState(c.StartState)
	require.NoError(t, err)
	_, err = world.ParseRotationPolicy(c.RotationPolicy)
	require.NoError(t, err)
	assert.NotEmpty(t, c.FallDelayFrames)
	for i := 1; i < len(c.FallDelayFrames); i++ {
		assert.LessOrEqual(t, c.FallDelayFrames[i], c.FallDelayFrames[i-1])
	}

	var l world.LayoutFile
	world.LoadYAML(&embeddedFiles, c.LayoutFile, &l)
	_, err = l.GetGrid()
	require.NoError(t, err)
}

func TestFallDelay(t *testing.T) {
	var c Config
	assert.Equal(t, int64(DefaultFallDelay), c.FallDelay(3))

	c.FallDelayFrames = []int64{20, 10, 0}
	assert.Equal(t, int64(20), c.FallDelay(0))
	assert.Equal(t, int64(10), c.FallDelay(1))
	assert.Equal(t, int64(1), c.FallDelay(2))
	assert.Equal(t, int64(1), c.FallDelay(50))
	assert.Equal(t, int64(20), c.FallDelay(-1))
}

func TestParseGameState(t *testing.T) {
	s, err := ParseGameState("Demo")
	require.NoError(t, err)
	assert.Equal(t, Demo, s)
	_, err = ParseGameState("HomeScreen")
	assert.Error(t, err)
}
