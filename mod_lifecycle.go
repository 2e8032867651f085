package ringscene

// FrameLimit stops the app once Remaining frames have run.
type FrameLimit struct {
	Remaining uint64
}

// FrameLimitModule disposes the app after a fixed number of frames. Zero
// frames means no limit and installs nothing.
type FrameLimitModule struct {
	Frames uint64
}

func (mod FrameLimitModule) Install(app *App, cmd *Commands) {
	if mod.Frames == 0 {
		return
	}
	cmd.AddResources(&FrameLimit{Remaining: mod.Frames})
	app.UseSystem(System(frameLimitSystem).InStage(PostUpdate))
}

func frameLimitSystem(limit *FrameLimit, cmd *Commands) {
	if limit.Remaining == 0 {
		return
	}
	limit.Remaining--
	if limit.Remaining == 0 {
		cmd.Logger().Infof("frame limit reached, stopping")
		cmd.Stop()
	}
}
