package prefabs

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

func TestYAMLColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.Color
		err  bool
	}{
		{in: `"#ff0000"`, want: color.NRGBA{R: 0xff, A: 0xff}},
		{in: `"#c0bab2c0"`, want: color.NRGBA{R: 0xc0, G: 0xba, B: 0xb2, A: 0xc0}},
		{in: `skyblue`, want: colornames.Skyblue},
		{in: `SkyBlue`, want: colornames.Skyblue},
		{in: `"#abc"`, err: true},
		{in: `"#gg0000"`, err: true},
		{in: `[1, 2]`, err: true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			var c YAMLColor
			err := yaml.Unmarshal([]byte(tc.in), &c)
			if tc.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, c.Color)
		})
	}
}

func TestYAMLColorOr(t *testing.T) {
	var unset *YAMLColor
	assert.Equal(t, colornames.White, unset.Or(colornames.White))
	assert.Equal(t, colornames.Red, (&YAMLColor{Color: colornames.Red}).Or(colornames.White))
}

func TestEmbeddedSpecs(t *testing.T) {
	tiles, err := LoadTilesSpec()
	require.NoError(t, err)
	assert.Equal(t, 32.0, tiles.TileSize)
	assert.Equal(t, 16, tiles.Water.Frames)
	assert.Equal(t, 27, tiles.Wall.Frames)
	assert.NotNil(t, tiles.Water.Placeholder)

	h, err := LoadHUDSpec()
	require.NoError(t, err)
	assert.Equal(t, colornames.Skyblue, h.TextColor.Color)
	assert.Equal(t, 24, h.Spacing)
}

func TestLoadScript(t *testing.T) {
	for _, name := range []string{"checker.tengo", "scripts/checker.tengo", "prefabs/scripts/checker.tengo"} {
		src, err := LoadScript(name)
		require.NoError(t, err, name)
		assert.Contains(t, string(src), "x + y")
	}
}

func TestFileKinds(t *testing.T) {
	assert.True(t, IsSpecFile("prefabs/tiles.yaml"))
	assert.True(t, IsSpecFile("HUD.YML"))
	assert.False(t, IsSpecFile("tiles.json"))
	assert.True(t, IsScriptFile("scripts/checker.tengo"))
	assert.False(t, IsScriptFile("checker.lua"))
}
