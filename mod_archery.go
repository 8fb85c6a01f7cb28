package cottage

type ArcheryModule struct{}

func (m ArcheryModule) Install(app *App, cmd *Commands) {
	app.UseSystem(
		System(bowControlSystem).
			InStage(Update),
	)
	app.UseSystem(
		System(arrowFlightSystem).
			InStage(PostUpdate),
	)
}

func bowControlSystem(input *Input, sim *SimulationState, cmd *Commands) {
	archery := sim.Archery

	if input.JustPressed[KeyKPAdd] {
		if !archery.ShowBow(sim.Actor.ItemAcquired) {
			cmd.Logger().Debugf("No bow to show yet")
		}
	}
	if input.JustPressed[KeyKPSubtract] && sim.Actor.ItemAcquired {
		archery.HideBow()
	}

	if input.JustPressed[MouseButtonLeft] {
		pose := sim.Controller.Pose()
		if archery.Shoot(pose.Position, pose.Front) {
			cmd.Logger().Debugf("Arrow away, vertical speed %f", archery.Arrow.VertVelocity)
		}
	}
}

func arrowFlightSystem(sim *SimulationState, time *Time, cmd *Commands) {
	switch sim.Archery.Step(time.DeltaSeconds()) {
	case ArrowHit:
		cmd.Logger().Infof("Target hit (%d so far), moving to slot %d", sim.Archery.Hits, sim.Archery.Target.Slot)
	case ArrowLanded:
		cmd.Logger().Debugf("Arrow landed")
	}
}
