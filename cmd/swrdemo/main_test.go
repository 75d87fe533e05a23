package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/swr"
)

func TestScenesRender(t *testing.T) {
	for name := range scenes {
		t.Run(name, func(t *testing.T) {
			bm, err := render(name, 90, 60)
			require.NoError(t, err)
			assert.Positive(t, painted(bm))
		})
	}
}

func TestRenderUnknownScene(t *testing.T) {
	_, err := render("nope", 10, 10)
	assert.Error(t, err)
}

func TestZoom(t *testing.T) {
	bm, err := render("star", 20, 20)
	require.NoError(t, err)

	img := zoom(bm, 3)
	assert.Equal(t, 60, img.Bounds().Dx())
	r, g, b, a := bm.At(10, 10).RGBA()
	r2, g2, b2, a2 := img.At(31, 31).RGBA()
	assert.Equal(t, []uint32{r, g, b, a}, []uint32{r2, g2, b2, a2})
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("SWRDEMO_WIDTH", "40")
	t.Setenv("SWRDEMO_SCENE", "mesh")

	cfg, err := loadConfig([]string{"-height", "30", "-zoom", "0"})
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Width)
	assert.Equal(t, 30, cfg.Height)
	assert.Equal(t, 1, cfg.Zoom)
	assert.Equal(t, "mesh", cfg.Scene)
	assert.Equal(t, "swrdemo.png", cfg.Output)

	_, err = loadConfig([]string{"-scene", "teapot"})
	assert.ErrorContains(t, err, "unknown scene")

	_, err = loadConfig([]string{"-width", "0"})
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	t.Cleanup(func() { swr.SetLogger(nil) })
	out := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, run([]string{"-scene", "circles", "-width", "32", "-height", "32", "-zoom", "2", "-output", out}))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
}
