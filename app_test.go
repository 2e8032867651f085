package ringscene

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockResource1 struct {
	name  string
	calls []string
}
type MockResource2 struct {
	name string
}

func NewMockResource1(name string) *MockResource1 {
	return &MockResource1{name: name}
}
func NewMockResource2(name string) *MockResource2 {
	return &MockResource2{name: name}
}

func TestApp_addResources(t *testing.T) {
	app := NewApp()

	resource1 := NewMockResource1("Resource1")
	app.addResources(resource1)

	assert.Contains(t, app.resources, reflect.TypeOf(resource1).Elem(), "Resource1 should be in resources map.")

	// Expect panic when trying to add the same type of resource again
	require.PanicsWithValue(t, fmt.Sprintf("%s is already in resources", reflect.TypeOf(resource1)), func() {
		app.addResources(resource1)
	})

	resource2 := NewMockResource2("Resource2")
	app.addResources(resource2)
	assert.Contains(t, app.resources, reflect.TypeOf(resource2).Elem(), "Resource2 should be in resources map.")

	got, ok := Resource[MockResource2](app)
	require.True(t, ok)
	assert.Same(t, resource2, got)
}

func TestApp_addResourcesRejectsValues(t *testing.T) {
	app := NewApp()
	assert.Panics(t, func() { app.addResources(MockResource2{}) })
}

func TestApp_StepRunsStagesInOrder(t *testing.T) {
	app := NewApp()
	res := NewMockResource1("order")
	app.addResources(res)

	app.UseSystem(System(func(r *MockResource1) { r.calls = append(r.calls, "render") }).InStage(Render))
	app.UseSystem(System(func(r *MockResource1) { r.calls = append(r.calls, "post") }).InStage(PostUpdate))
	app.UseSystem(System(func(r *MockResource1) { r.calls = append(r.calls, "update") }))
	app.UseSystem(System(func(r *MockResource1) { r.calls = append(r.calls, "pre") }).InStage(PreUpdate))

	app.Step()

	assert.Equal(t, []string{"pre", "update", "post", "render"}, res.calls)
	assert.Equal(t, uint64(1), app.Frames())
}

func TestApp_UseStage(t *testing.T) {
	app := NewApp()
	physics := Stage{Name: "Physics"}
	app.UseStage(physics, AfterStage(Update))

	res := NewMockResource1("stage")
	app.addResources(res)
	app.UseSystem(System(func(r *MockResource1) { r.calls = append(r.calls, "physics") }).InStage(physics))
	app.UseSystem(System(func(r *MockResource1) { r.calls = append(r.calls, "post") }).InStage(PostUpdate))
	app.UseSystem(System(func(r *MockResource1) { r.calls = append(r.calls, "update") }))

	app.Step()
	assert.Equal(t, []string{"update", "physics", "post"}, res.calls)

	assert.PanicsWithValue(t, "Stage Missing not found", func() {
		app.UseStage(Stage{Name: "Other"}, BeforeStage(Stage{Name: "Missing"}))
	})
	assert.PanicsWithValue(t, "Stage Nowhere doesn't exist", func() {
		app.UseSystem(System(func() {}).InStage(Stage{Name: "Nowhere"}))
	})
}

func TestApp_UnresolvedSystemDependencyPanics(t *testing.T) {
	app := NewApp()
	app.UseSystem(System(func(r *MockResource2) {}))

	assert.Panics(t, app.Step)
}

func TestApp_CommandsInjected(t *testing.T) {
	app := NewApp()
	var got *Commands
	app.UseSystem(System(func(cmd *Commands) { got = cmd }))

	app.Step()

	require.NotNil(t, got)
	assert.Same(t, app, got.app)
}

func TestApp_AttachAndDispose(t *testing.T) {
	app := NewApp()
	res := NewMockResource1("frames")
	app.addResources(res)
	app.UseSystem(System(func(r *MockResource1) { r.calls = append(r.calls, "tick") }))

	disposed := []string{}
	app.OnDispose(func() { disposed = append(disposed, "first") })
	app.OnDispose(func() { disposed = append(disposed, "second") })

	loop := NewFrameLoop()
	app.Attach(loop)
	assert.Panics(t, func() { app.Attach(loop) })

	loop.Step()
	loop.Step()
	assert.Len(t, res.calls, 2)

	app.Dispose()
	app.Dispose()
	assert.True(t, app.Disposed())
	assert.Equal(t, []string{"second", "first"}, disposed)
	assert.Equal(t, 0, loop.Len())

	loop.Step()
	app.Step()
	assert.Len(t, res.calls, 2)
}

func TestApp_LoggerDefaultsToNop(t *testing.T) {
	var nilApp *App
	assert.NotNil(t, nilApp.Logger())
	assert.NotNil(t, NewApp().Logger())
}
