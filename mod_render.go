package cottage

import (
	"github.com/go-gl/mathgl/mgl32"
)

type PolygonMode int

const (
	PolygonFill PolygonMode = iota
	PolygonLine
	PolygonPoint
)

type RenderPass int

const (
	PassDepth RenderPass = iota
	PassScene
	PassSkybox
)

func (p RenderPass) String() string {
	switch p {
	case PassDepth:
		return "depth"
	case PassScene:
		return "scene"
	case PassSkybox:
		return "skybox"
	}
	return "unknown"
}

// RenderSettings are the switches the keyboard flips.
type RenderSettings struct {
	Shadows     bool
	Fog         bool
	SpotLight   bool
	PolygonMode PolygonMode
}

type DrawItem struct {
	Mesh  string
	Model mgl32.Mat4
	// Transparent meshes are blended after the opaque ones.
	Transparent bool
	// CastsShadow puts the mesh into the depth pass.
	CastsShadow bool
}

// FrameUniforms is everything a renderer needs for one frame. It is rebuilt
// from the simulation state every tick and never written by the renderer.
type FrameUniforms struct {
	View             mgl32.Mat4
	Projection       mgl32.Mat4
	SkyboxProjection mgl32.Mat4
	LightSpace       mgl32.Mat4

	Sun      DirectionalLight
	Torch    SpotLight
	Night    bool
	Skybox   AssetId
	Draws    []DrawItem
	Passes   []RenderPass
	Settings RenderSettings
}

// ShadowCasters returns the draws of the depth pass.
func (f *FrameUniforms) ShadowCasters() []DrawItem {
	var res []DrawItem
	for _, d := range f.Draws {
		if d.CastsShadow {
			res = append(res, d)
		}
	}
	return res
}

type RenderModule struct {
	Width  int
	Height int
}

func (m RenderModule) Install(app *App, cmd *Commands) {
	width, height := m.Width, m.Height
	if width <= 0 || height <= 0 {
		width, height = 1920, 1080
	}
	aspect := float32(width) / float32(height)
	cmd.AddResources(&FrameUniforms{
		Projection:       mgl32.Perspective(mgl32.DegToRad(45), aspect, 0.01, 50),
		SkyboxProjection: mgl32.Perspective(mgl32.DegToRad(45), aspect, 0.1, 1000),
	})
	app.UseSystem(
		System(frameUniformsSystem).
			InStage(PreRender),
	)
}

func frameUniformsSystem(sim *SimulationState, frame *FrameUniforms) {
	pose := sim.Controller.Pose()
	view := sim.Controller.ViewTransform()

	frame.View = view
	frame.Sun = DirectionalLight{
		Type:      LightTypeDirectional,
		Direction: sim.DayNight.LightDir(),
		Color:     sim.DayNight.LightColor(),
	}
	frame.LightSpace = LightSpaceMatrix(frame.Sun.Direction)
	frame.Torch = TorchFor(pose, sim.Render.SpotLight)
	frame.Night = sim.DayNight.Night
	frame.Skybox = sim.Skybox.Active(frame.Night)
	frame.Settings = sim.Render

	frame.Passes = frame.Passes[:0]
	if sim.Render.Shadows {
		frame.Passes = append(frame.Passes, PassDepth)
	}
	frame.Passes = append(frame.Passes, PassScene, PassSkybox)

	frame.Draws = sceneDraws(frame.Draws[:0], sim, view)
}

func sceneDraws(draws []DrawItem, sim *SimulationState, view mgl32.Mat4) []DrawItem {
	draws = append(draws,
		DrawItem{Mesh: "terrain", Model: mgl32.Scale3D(2, 2, 2), CastsShadow: true},
		DrawItem{Mesh: "clover", Model: mgl32.Scale3D(2, 1, 2)},
		DrawItem{Mesh: "tree", Model: mgl32.Scale3D(2, 2, 2), CastsShadow: true, Transparent: true},
		DrawItem{
			Mesh: "target",
			Model: mgl32.Translate3D(sim.Archery.Target.Position().Elem()).
				Mul4(mgl32.Scale3D(0.3, 0.3, 0.3)),
			CastsShadow: true,
		},
		DrawItem{
			Mesh: "cottage",
			Model: mgl32.Translate3D(-3, 0, 3).
				Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(180))).
				Mul4(mgl32.Scale3D(0.7, 0.7, 0.7)),
			CastsShadow: true,
		},
		DrawItem{Mesh: "grass", Model: mgl32.Scale3D(2, 2, 2), Transparent: true},
	)

	if !sim.Actor.ItemAcquired {
		return append(draws, DrawItem{
			Mesh: "bow",
			Model: mgl32.HomogRotate3DX(mgl32.DegToRad(90)).
				Mul4(mgl32.Translate3D(-2.6, 3.9, -0.27)),
		})
	}
	if !sim.Archery.BowShown {
		return draws
	}

	// Held items are placed in view space.
	camera := view.Inv()
	draws = append(draws, DrawItem{
		Mesh: "bow",
		Model: camera.
			Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(-90))).
			Mul4(mgl32.Translate3D(-0.2, -0.2, -0.2)),
	})

	arrow := sim.Archery.Arrow
	if arrow.InFlight {
		return append(draws, DrawItem{
			Mesh:  "arrow",
			Model: mgl32.Translate3D(arrow.Position.Elem()).Mul4(mgl32.HomogRotate3DX(arrow.Tilt)),
		})
	}
	return append(draws, DrawItem{
		Mesh: "arrow",
		Model: camera.
			Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(180))).
			Mul4(mgl32.Translate3D(-0.05, -0.02, 0.1)),
	})
}
