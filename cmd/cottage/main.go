package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gekko3d/cottage"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	headless := flag.Bool("headless", false, "run without a window, at a fixed 60 Hz step")
	ticks := flag.Uint64("ticks", 0, "stop after this many ticks (0 runs until closed)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	cfg, err := cottage.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *debug {
		cfg.Log.Debug = true
	}
	if *headless && *ticks == 0 {
		fmt.Fprintln(os.Stderr, "-headless needs -ticks")
		os.Exit(2)
	}

	builder := cottage.NewAppBuilder().
		UseModule(cottage.LoggingModule{Config: cfg.Log})

	if *headless {
		builder.UseModule(
			cottage.TimeModule{Fixed: time.Second / 60},
			cottage.InputModule{},
		)
	} else {
		builder.UseModule(
			cottage.PlatformWindowModule{Width: cfg.Window.Width, Height: cfg.Window.Height, Title: cfg.Window.Title},
			cottage.TimeModule{},
			cottage.InputModule{Window: true},
		)
	}

	app := builder.UseModule(
		cottage.AssetServerModule{},
		cottage.SimulationModule{Config: cfg},
		cottage.SkyboxModule{Config: cfg.Skybox},
		cottage.PlayerModule{},
		cottage.ArcheryModule{},
		cottage.DayNightModule{},
		cottage.ControlsModule{},
		cottage.RenderModule{Width: cfg.Window.Width, Height: cfg.Window.Height},
		cottage.GpuModule{},
		cottage.TickLimitModule{Ticks: *ticks},
	).Build()

	if ws := cottage.Resource[cottage.WindowState](app); ws != nil {
		defer ws.Destroy()
	}
	if gs := cottage.Resource[cottage.GpuState](app); gs != nil {
		defer gs.Release()
	}

	app.Run()
}
