package cottage

import (
	"errors"
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/mathgl/mgl32"
)

type GpuState struct {
	surface       *wgpu.Surface
	adapter       *wgpu.Adapter
	device        *wgpu.Device
	queue         *wgpu.Queue
	surfaceConfig *wgpu.SurfaceConfiguration

	frameBuffer *wgpu.Buffer
	skies       map[AssetId]*wgpu.TextureView
}

func createGpuState(s *WindowState) (*GpuState, error) {
	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	surface := instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(s.windowGlfw))
	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: surface,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return nil, fmt.Errorf("request adapter: %w", err)
	}
	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Main Device",
	})
	if err != nil {
		return nil, fmt.Errorf("request device: %w", err)
	}

	caps := surface.GetCapabilities(adapter)
	if len(caps.Formats) == 0 || len(caps.AlphaModes) == 0 {
		return nil, errors.New("surface reports no formats")
	}
	surfaceConfig := wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      caps.Formats[0],
		Width:       uint32(s.WindowWidth),
		Height:      uint32(s.WindowHeight),
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   caps.AlphaModes[0],
	}
	surface.Configure(adapter, device, &surfaceConfig)

	frameBuffer, err := device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Frame Uniforms",
		Size:  uint64(len(frameBytes(frameBlock{}))),
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create frame buffer: %w", err)
	}

	return &GpuState{
		surface:       surface,
		adapter:       adapter,
		device:        device,
		queue:         device.GetQueue(),
		surfaceConfig: &surfaceConfig,
		frameBuffer:   frameBuffer,
		skies:         make(map[AssetId]*wgpu.TextureView),
	}, nil
}

func (gs *GpuState) Release() {
	for _, view := range gs.skies {
		if view != nil {
			view.Release()
		}
	}
	gs.frameBuffer.Release()
	gs.queue.Release()
	gs.device.Release()
	gs.adapter.Release()
	gs.surface.Release()
}

// frameBlock is FrameUniforms laid out for the WGSL uniform buffer. Every
// member is 16-byte aligned.
type frameBlock struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
	LightSpace mgl32.Mat4
	SunDir     mgl32.Vec4
	SunColor   mgl32.Vec4
	TorchPos   mgl32.Vec4
	TorchDir   mgl32.Vec4
	// Shadows, fog, torch and night, as 0 or 1.
	Flags [4]uint32
	// LightType of the sun and the torch.
	Types [4]uint32
}

func b2u(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

func packFrame(frame *FrameUniforms) frameBlock {
	return frameBlock{
		View:       frame.View,
		Projection: frame.Projection,
		LightSpace: frame.LightSpace,
		SunDir:     frame.Sun.Direction.Vec4(0),
		SunColor:   frame.Sun.Color.Vec4(1),
		TorchPos:   frame.Torch.Position.Vec4(1),
		TorchDir:   frame.Torch.Direction.Vec4(0),
		Flags: [4]uint32{
			b2u(frame.Settings.Shadows),
			b2u(frame.Settings.Fog),
			b2u(frame.Torch.Enabled),
			b2u(frame.Night),
		},
		Types: [4]uint32{uint32(frame.Sun.Type), uint32(frame.Torch.Type)},
	}
}

func frameBytes(block frameBlock) []byte {
	return wgpu.ToBytes([]frameBlock{block})
}

// skyClearColor fills the screen where no skybox was loaded.
func skyClearColor(night bool) wgpu.Color {
	if night {
		return wgpu.Color{R: 0.01, G: 0.01, B: 0.03, A: 1}
	}
	return wgpu.Color{R: 0.53, G: 0.73, B: 0.92, A: 1}
}

func uploadCubeMap(gs *GpuState, cube CubeMapAsset) (*wgpu.TextureView, error) {
	extent := wgpu.Extent3D{
		Width:              cube.Size,
		Height:             cube.Size,
		DepthOrArrayLayers: 6,
	}
	texture, err := gs.device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         "Skybox",
		Size:          extent,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatRGBA8Unorm,
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create skybox texture: %w", err)
	}
	defer texture.Release()

	faceExtent := wgpu.Extent3D{Width: cube.Size, Height: cube.Size, DepthOrArrayLayers: 1}
	for i, face := range cube.Faces {
		dst := texture.AsImageCopy()
		dst.Origin.Z = uint32(i)
		err := gs.queue.WriteTexture(dst, face.Texels, &wgpu.TextureDataLayout{
			BytesPerRow:  face.Width * 4,
			RowsPerImage: face.Height,
		}, &faceExtent)
		if err != nil {
			return nil, fmt.Errorf("write skybox face %d: %w", i, err)
		}
	}

	view, err := texture.CreateView(&wgpu.TextureViewDescriptor{
		Label:           "Skybox View",
		Format:          wgpu.TextureFormatRGBA8Unorm,
		Dimension:       wgpu.TextureViewDimensionCube,
		MipLevelCount:   1,
		ArrayLayerCount: 6,
		Aspect:          wgpu.TextureAspectAll,
	})
	if err != nil {
		return nil, fmt.Errorf("create skybox view: %w", err)
	}
	return view, nil
}

// GpuModule presents frames to the window surface. Without a window it does
// nothing, so headless runs never touch the GPU.
type GpuModule struct{}

func (m GpuModule) Install(app *App, cmd *Commands) {
	ws := Resource[WindowState](app)
	if ws == nil {
		app.Logger().Infof("No window, GPU output disabled")
		return
	}

	gs, err := createGpuState(ws)
	if err != nil {
		app.Logger().Errorf("GPU init: %v", err)
		panic(err)
	}
	cmd.AddResources(gs)

	app.UseSystem(
		System(gpuFrameSystem).
			InStage(Render),
	)
}

func (gs *GpuState) skyView(server *AssetServer, id AssetId, logger Logger) *wgpu.TextureView {
	if id == "" {
		return nil
	}
	if view, ok := gs.skies[id]; ok {
		return view
	}

	// A failed upload is remembered as nil and not retried.
	gs.skies[id] = nil
	cube, ok := server.CubeMap(id)
	if !ok {
		logger.Warnf("Sky %s is not loaded", id)
		return nil
	}
	view, err := uploadCubeMap(gs, cube)
	if err != nil {
		logger.Warnf("Uploading sky: %v", err)
		return nil
	}
	gs.skies[id] = view
	return view
}

func gpuFrameSystem(gs *GpuState, frame *FrameUniforms, server *AssetServer, cmd *Commands) {
	if err := gs.queue.WriteBuffer(gs.frameBuffer, 0, frameBytes(packFrame(frame))); err != nil {
		cmd.Logger().Errorf("Writing frame uniforms: %v", err)
		return
	}
	gs.skyView(server, frame.Skybox, cmd.Logger())

	nextTexture, err := gs.surface.GetCurrentTexture()
	if err != nil {
		cmd.Logger().Warnf("Skipping frame: %v", err)
		return
	}
	view, err := nextTexture.CreateView(nil)
	if err != nil {
		cmd.Logger().Errorf("Surface view: %v", err)
		return
	}
	defer view.Release()

	encoder, err := gs.device.CreateCommandEncoder(nil)
	if err != nil {
		cmd.Logger().Errorf("Command encoder: %v", err)
		return
	}
	defer encoder.Release()

	renderPass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: skyClearColor(frame.Night),
			},
		},
	})
	defer renderPass.Release()
	if err := renderPass.End(); err != nil {
		cmd.Logger().Errorf("Render pass: %v", err)
		return
	}

	cmdBuffer, err := encoder.Finish(nil)
	if err != nil {
		cmd.Logger().Errorf("Finish frame: %v", err)
		return
	}
	defer cmdBuffer.Release()

	gs.queue.Submit(cmdBuffer)
	gs.surface.Present()
}
