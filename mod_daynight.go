package cottage

type DayNightModule struct{}

func (m DayNightModule) Install(app *App, cmd *Commands) {
	app.UseSystem(
		System(dayNightControlSystem).
			InStage(Update),
	)
	app.UseSystem(
		System(dayNightSystem).
			InStage(PostUpdate),
	)
}

func dayNightControlSystem(input *Input, sim *SimulationState) {
	dn := sim.DayNight
	if input.JustPressed[KeyN] {
		dn.SetNight(true)
	}
	if input.JustPressed[KeyM] {
		dn.SetNight(false)
	}
	if input.JustPressed[KeyKP1] {
		dn.Start()
	}
	if input.JustPressed[KeyKP2] {
		dn.Stop()
	}
}

func dayNightSystem(sim *SimulationState, cmd *Commands) {
	if sim.DayNight.Tick() {
		if sim.DayNight.Night {
			cmd.Logger().Infof("Night falls")
		} else {
			cmd.Logger().Infof("Day breaks")
		}
	}
}

// ControlsModule maps the display toggles to RenderSettings.
type ControlsModule struct{}

func (m ControlsModule) Install(app *App, cmd *Commands) {
	app.UseSystem(
		System(renderControlSystem).
			InStage(Update),
	)
}

func renderControlSystem(input *Input, sim *SimulationState) {
	r := &sim.Render
	switch {
	case input.JustPressed[KeyO]:
		r.Shadows = true
	case input.JustPressed[KeyP]:
		r.Shadows = false
	}
	switch {
	case input.JustPressed[KeyK]:
		r.Fog = true
	case input.JustPressed[KeyL]:
		r.Fog = false
	}
	switch {
	case input.JustPressed[KeyKPMultiply]:
		r.SpotLight = true
	case input.JustPressed[KeyKPDivide]:
		r.SpotLight = false
	}
	switch {
	case input.JustPressed[KeyKP7]:
		r.PolygonMode = PolygonLine
	case input.JustPressed[KeyKP8]:
		r.PolygonMode = PolygonPoint
	case input.JustPressed[KeyKP9]:
		r.PolygonMode = PolygonFill
	}
}
