package cottage

// TickLimitModule stops the app after a fixed number of ticks. Zero means no
// limit.
type TickLimitModule struct {
	Ticks uint64
}

type tickBudget struct {
	left uint64
}

func (mod TickLimitModule) Install(app *App, cmd *Commands) {
	if mod.Ticks == 0 {
		return
	}
	cmd.AddResources(&tickBudget{left: mod.Ticks})
	app.UseSystem(
		System(tickBudgetSystem).
			InStage(Finale),
	)
}

func tickBudgetSystem(budget *tickBudget, cmd *Commands) {
	if budget.left > 0 {
		budget.left--
	}
	if budget.left == 0 {
		cmd.Logger().Debugf("Tick budget spent")
		cmd.Quit()
	}
}
