package ringscene

import (
	"fmt"
	"reflect"
	"runtime"
)

type systemFn any

type scheduledSystem struct {
	fn   reflect.Value
	name string
	args []reflect.Value // resolved on first call
}

// App runs every installed system once per frame, stage by stage. It is
// driven by a FrameScheduler and is not safe for concurrent use.
type App struct {
	stages    []Stage
	systems   map[string][]*scheduledSystem
	resources map[reflect.Type]any

	scheduler FrameScheduler
	handle    FrameHandle
	step      func()
	disposers []func()
	disposed  bool
	frames    uint64
}

func NewApp() *App {
	app := &App{
		systems:   make(map[string][]*scheduledSystem),
		resources: make(map[reflect.Type]any),
	}
	for _, stage := range defaultStages {
		app.stages = append(app.stages, stage)
		app.systems[stage.Name] = nil
	}
	app.step = app.Step
	return app
}

func (app *App) Commands() *Commands {
	return &Commands{
		app: app,
	}
}

// Frames is the number of completed Step calls.
func (app *App) Frames() uint64 { return app.frames }

// Disposed reports whether Dispose has run.
func (app *App) Disposed() bool { return app.disposed }

// Step runs one frame. Calling it more than once per displayed frame speeds
// the scene up proportionally; there is no clock correction.
func (app *App) Step() {
	if app.disposed {
		return
	}
	for _, stage := range app.stages {
		for _, system := range app.systems[stage.Name] {
			app.callSystem(system)
		}
	}
	app.frames++
}

// Attach registers Step as a frame callback on s. An app can be attached to
// one scheduler at a time.
func (app *App) Attach(s FrameScheduler) {
	if app.scheduler != nil {
		panic("app is already attached to a frame scheduler")
	}
	app.scheduler = s
	app.handle = s.RegisterFrameCallback(app.step)
}

// OnDispose queues fn to run when the app is disposed. Hooks run in reverse
// registration order.
func (app *App) OnDispose(fn func()) {
	app.disposers = append(app.disposers, fn)
}

// Dispose stops frame delivery and runs dispose hooks. Safe to call more than
// once, including from inside a system.
func (app *App) Dispose() {
	if app.disposed {
		return
	}
	app.disposed = true
	if app.scheduler != nil {
		app.scheduler.CancelFrameCallback(app.handle)
		app.scheduler = nil
	}
	for i := len(app.disposers) - 1; i >= 0; i-- {
		app.disposers[i]()
	}
	app.disposers = nil
}

func (app *App) addResources(resources ...any) *App {
	for _, resource := range resources {
		resourceType := reflect.TypeOf(resource)
		if resourceType.Kind() != reflect.Pointer {
			panic(fmt.Sprintf("resource %s must be a pointer", resourceType))
		}
		if _, ok := app.resources[resourceType.Elem()]; ok {
			panic(fmt.Sprintf("%s is already in resources", resourceType))
		}

		app.resources[resourceType.Elem()] = resource
	}
	return app
}

// Resource looks up a resource previously added by a module.
func Resource[T any](app *App) (*T, bool) {
	r, ok := app.resources[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		return nil, false
	}
	return r.(*T), true
}

var typeOfCommands = reflect.TypeOf(Commands{})

func (app *App) callSystem(system *scheduledSystem) {
	if system.args == nil {
		system.args = app.resolveSystemArgs(system)
	}
	system.fn.Call(system.args)
}

func (app *App) resolveSystemArgs(system *scheduledSystem) []reflect.Value {
	systemType := system.fn.Type()
	args := make([]reflect.Value, systemType.NumIn())

	for i := 0; i < systemType.NumIn(); i++ {
		argType := systemType.In(i)
		if argType.Kind() != reflect.Pointer {
			panic(fmt.Sprintf("system %s: argument %d (%s) must be a pointer", system.name, i, argType))
		}
		underlyingType := argType.Elem()

		if underlyingType == typeOfCommands {
			args[i] = reflect.ValueOf(app.Commands())
		} else if resource, ok := app.resources[underlyingType]; ok {
			args[i] = reflect.ValueOf(resource)
		} else {
			msg := fmt.Sprintf("Unable to resolve System dependency.\nSystem: %s\nSystem type: %s\nDependency: %s",
				system.name,
				fmt.Sprint(systemType),
				fmt.Sprint(argType),
			)
			panic(msg)
		}
	}
	return args
}

func systemName(fn reflect.Value) string {
	if f := runtime.FuncForPC(fn.Pointer()); f != nil {
		return f.Name()
	}
	return fn.Type().String()
}
