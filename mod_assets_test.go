package cottage

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func solidImage(w, h int, c color.Color) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func writeFaces(t *testing.T, sizes ...int) []string {
	t.Helper()
	dir := t.TempDir()
	var faces []string
	for i, size := range sizes {
		name := string(rune('a'+i)) + ".png"
		faces = append(faces, writePNG(t, dir, name, solidImage(size, size, color.NRGBA{R: 10, G: 20, B: 30, A: 255})))
	}
	return faces
}

func TestAssetServer_LoadTexture(t *testing.T) {
	server := NewAssetServer()
	path := writePNG(t, t.TempDir(), "grass.png", solidImage(2, 3, color.NRGBA{R: 1, G: 2, B: 3, A: 255}))

	id, err := server.LoadTexture(path)
	require.NoError(t, err)

	tex, ok := server.Texture(id)
	require.True(t, ok)
	assert.Equal(t, uint32(2), tex.Width)
	assert.Equal(t, uint32(3), tex.Height)
	assert.Equal(t, TextureFormatRGBA8Unorm, tex.Format)
	assert.Equal(t, path, tex.Source)
	require.Len(t, tex.Texels, 2*3*4)
	assert.Equal(t, []uint8{1, 2, 3, 255}, tex.Texels[:4])
}

func TestAssetServer_LoadTextureErrors(t *testing.T) {
	server := NewAssetServer()
	dir := t.TempDir()

	_, err := server.LoadTexture(filepath.Join(dir, "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	junk := filepath.Join(dir, "junk.png")
	require.NoError(t, os.WriteFile(junk, []byte("not an image"), 0o644))
	_, err = server.LoadTexture(junk)
	assert.ErrorContains(t, err, "decode")
}

func TestAssetServer_CreateTexture(t *testing.T) {
	server := NewAssetServer()
	id1 := server.CreateTexture(make([]uint8, 4), 1, 1, TextureFormatRGBA8Unorm)
	id2 := server.CreateTexture(make([]uint8, 4), 1, 1, TextureFormatRGBA8Unorm)

	assert.NotEqual(t, id1, id2)
	_, ok := server.Texture(id1)
	assert.True(t, ok)
	_, ok = server.Texture("nope")
	assert.False(t, ok)
}

func TestAssetServer_LoadCubeMap(t *testing.T) {
	server := NewAssetServer()

	id, err := server.LoadCubeMap(writeFaces(t, 4, 4, 4, 4, 4, 4))
	require.NoError(t, err)

	cube, ok := server.CubeMap(id)
	require.True(t, ok)
	assert.Equal(t, uint32(4), cube.Size)
	for _, face := range cube.Faces {
		assert.Len(t, face.Texels, 4*4*4)
	}
}

func TestAssetServer_LoadCubeMapErrors(t *testing.T) {
	server := NewAssetServer()

	_, err := server.LoadCubeMap(writeFaces(t, 4, 4, 4))
	assert.ErrorContains(t, err, "cube map needs 6 faces, got 3")

	_, err = server.LoadCubeMap(writeFaces(t, 4, 4, 4, 8, 4, 4))
	assert.ErrorContains(t, err, "expected 4")

	faces := writeFaces(t, 4, 4, 4, 4, 4, 4)
	faces[2] = writePNG(t, t.TempDir(), "wide.png", solidImage(4, 2, color.White))
	_, err = server.LoadCubeMap(faces)
	assert.ErrorContains(t, err, "not square")
}

func TestSkyboxSet_Active(t *testing.T) {
	assert.Equal(t, AssetId("day"), SkyboxSet{Day: "day", Night: "night"}.Active(false))
	assert.Equal(t, AssetId("night"), SkyboxSet{Day: "day", Night: "night"}.Active(true))
	assert.Equal(t, AssetId("day"), SkyboxSet{Day: "day"}.Active(true))
}

func TestSkyboxModule(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Skybox.Day = writeFaces(t, 2, 2, 2, 2, 2, 2)
	cfg.Skybox.Night = writeFaces(t, 2, 2, 2, 2, 2, 4)

	app := NewAppBuilder().
		UseModule(
			AssetServerModule{},
			SimulationModule{Config: cfg},
			SkyboxModule{Config: cfg.Skybox},
		).
		Build()

	sim := Resource[SimulationState](app)
	require.NotNil(t, sim)
	assert.NotEmpty(t, sim.Skybox.Day)
	assert.Empty(t, sim.Skybox.Night)

	_, ok := Resource[AssetServer](app).CubeMap(sim.Skybox.Day)
	assert.True(t, ok)
	assert.Equal(t, sim.Skybox.Day, sim.Skybox.Active(true))
}

func TestSkyboxModule_NeedsSimulation(t *testing.T) {
	assert.Panics(t, func() {
		NewAppBuilder().UseModule(AssetServerModule{}, SkyboxModule{}).Build()
	})
}
