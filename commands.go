package ringscene

type Commands struct {
	app *App
}

func (cmd *Commands) AddResources(resources ...any) *Commands {
	cmd.app.addResources(resources...)
	return cmd
}

func (cmd *Commands) UseSystem(system systemScheduleBuilder) *Commands {
	cmd.app.UseSystem(system)
	return cmd
}

func (cmd *Commands) OnDispose(fn func()) *Commands {
	cmd.app.OnDispose(fn)
	return cmd
}

// Stop disposes the app. The current frame finishes; no further frames run.
func (cmd *Commands) Stop() {
	cmd.app.Dispose()
}

func (cmd *Commands) Logger() Logger {
	return cmd.app.Logger()
}
