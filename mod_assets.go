package cottage

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

type AssetId string

type TextureFormat uint32

const (
	TextureFormatRGBA8Unorm TextureFormat = 0x00000012
)

type TextureAsset struct {
	Texels []uint8
	Width  uint32
	Height uint32
	Format TextureFormat
	Source string
}

// CubeMapAsset holds six square faces in +X, -X, +Y, -Y, +Z, -Z order.
type CubeMapAsset struct {
	Faces [6]TextureAsset
	Size  uint32
}

type AssetServer struct {
	textures map[AssetId]TextureAsset
	cubeMaps map[AssetId]CubeMapAsset
}

func NewAssetServer() *AssetServer {
	return &AssetServer{
		textures: make(map[AssetId]TextureAsset),
		cubeMaps: make(map[AssetId]CubeMapAsset),
	}
}

type AssetServerModule struct{}

func (AssetServerModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(NewAssetServer())
}

func makeAssetId() AssetId {
	return AssetId(uuid.NewString())
}

func decodeTexture(filename string) (TextureAsset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return TextureAsset{}, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return TextureAsset{}, fmt.Errorf("decode %s: %w", filename, err)
	}

	bounds := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != 4*bounds.Dx() {
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}

	return TextureAsset{
		Texels: rgba.Pix,
		Width:  uint32(bounds.Dx()),
		Height: uint32(bounds.Dy()),
		Format: TextureFormatRGBA8Unorm,
		Source: filename,
	}, nil
}

func (server *AssetServer) CreateTexture(texels []uint8, width, height uint32, format TextureFormat) AssetId {
	id := makeAssetId()
	server.textures[id] = TextureAsset{
		Texels: texels,
		Width:  width,
		Height: height,
		Format: format,
	}
	return id
}

// LoadTexture decodes a PNG or JPEG file into RGBA texels.
func (server *AssetServer) LoadTexture(filename string) (AssetId, error) {
	tex, err := decodeTexture(filename)
	if err != nil {
		return "", fmt.Errorf("load texture: %w", err)
	}
	id := makeAssetId()
	server.textures[id] = tex
	return id, nil
}

func (server *AssetServer) Texture(id AssetId) (TextureAsset, bool) {
	tex, ok := server.textures[id]
	return tex, ok
}

// LoadCubeMap loads six faces. Every face must be square and of the same size.
func (server *AssetServer) LoadCubeMap(faces []string) (AssetId, error) {
	if len(faces) != 6 {
		return "", fmt.Errorf("cube map needs 6 faces, got %d", len(faces))
	}

	var cube CubeMapAsset
	for i, face := range faces {
		tex, err := decodeTexture(face)
		if err != nil {
			return "", fmt.Errorf("load cube map face %d: %w", i, err)
		}
		if tex.Width != tex.Height {
			return "", fmt.Errorf("cube map face %s is %dx%d, not square", face, tex.Width, tex.Height)
		}
		if i == 0 {
			cube.Size = tex.Width
		} else if tex.Width != cube.Size {
			return "", fmt.Errorf("cube map face %s is %d wide, expected %d", face, tex.Width, cube.Size)
		}
		cube.Faces[i] = tex
	}

	id := makeAssetId()
	server.cubeMaps[id] = cube
	return id, nil
}

func (server *AssetServer) CubeMap(id AssetId) (CubeMapAsset, bool) {
	cube, ok := server.cubeMaps[id]
	return cube, ok
}

// SkyboxSet is the pair of cube maps the sky switches between.
type SkyboxSet struct {
	Day   AssetId
	Night AssetId
}

// Active falls back to the day sky when no night sky was loaded.
func (s SkyboxSet) Active(night bool) AssetId {
	if night && s.Night != "" {
		return s.Night
	}
	return s.Day
}

// SkyboxModule loads the day and night skies into the AssetServer and hands
// them to the SimulationState. A sky that fails to load is reported and left
// empty; the scene still runs without it.
type SkyboxModule struct {
	Config SkyboxConfig
}

func (m SkyboxModule) Install(app *App, cmd *Commands) {
	server := Resource[AssetServer](app)
	sim := Resource[SimulationState](app)
	if server == nil || sim == nil {
		panic("SkyboxModule needs AssetServerModule and SimulationModule installed first")
	}

	load := func(name string, faces []string) AssetId {
		if len(faces) == 0 {
			return ""
		}
		id, err := server.LoadCubeMap(faces)
		if err != nil {
			app.Logger().Warnf("Skipping %s sky: %v", name, err)
			return ""
		}
		app.Logger().Infof("Loaded %s sky", name)
		return id
	}

	sim.Skybox = SkyboxSet{
		Day:   load("day", m.Config.Day),
		Night: load("night", m.Config.Night),
	}
}
