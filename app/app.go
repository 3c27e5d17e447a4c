// Package app provides the minimal application kernel the quickresponse
// plugin builds against: a plugin registration protocol, typed singleton
// resources, and startup/update schedules.
package app

import (
	"fmt"
	"reflect"
	"sync/atomic"
)

// Schedule identifies when a system runs.
type Schedule uint8

const (
	// Startup systems run exactly once, before the first update.
	Startup Schedule = iota
	// Update systems run every frame.
	Update
)

// System is a unit of work scheduled on an App.
type System func(*App)

// Plugin configures an App at build time.
type Plugin interface {
	Build(*App)
}

// App holds the plugin registry, resources, and schedules.
// All mutation happens on the thread that constructs the application;
// the kernel performs no locking of its own.
type App struct {
	resources map[reflect.Type]any
	plugins   map[reflect.Type]Plugin
	systems   map[Schedule][]System
	runner    func(*App)

	startupDone bool
	exiting     atomic.Bool
}

// New creates an empty application.
func New() *App {
	return &App{
		resources: make(map[reflect.Type]any),
		plugins:   make(map[reflect.Type]Plugin),
		systems:   make(map[Schedule][]System),
	}
}

// AddPlugins builds each plugin against the app, in order.
// Adding a second plugin of a type that is already registered panics;
// callers that may race with user-installed plugins should check
// PluginAdded first.
func (a *App) AddPlugins(plugins ...Plugin) *App {
	for _, p := range plugins {
		t := reflect.TypeOf(p)
		if _, dup := a.plugins[t]; dup {
			panic(fmt.Sprintf("app: plugin %s added twice", t))
		}
		a.plugins[t] = p
		p.Build(a)
	}
	return a
}

// AddSystems appends systems to the given schedule.
func (a *App) AddSystems(schedule Schedule, systems ...System) *App {
	a.systems[schedule] = append(a.systems[schedule], systems...)
	return a
}

// SetRunner installs the blocking loop used by Run. Typically called by
// the windowing plugin.
func (a *App) SetRunner(runner func(*App)) {
	a.runner = runner
}

// Update runs the Startup schedule on the first call, then the Update
// schedule. Systems run in registration order.
func (a *App) Update() {
	if !a.startupDone {
		a.startupDone = true
		for _, s := range a.systems[Startup] {
			s(a)
		}
	}
	for _, s := range a.systems[Update] {
		s(a)
	}
}

// Run hands control to the installed runner. Without a runner the app
// performs a single update and returns.
func (a *App) Run() {
	if a.runner != nil {
		a.runner(a)
		return
	}
	a.Update()
}

// Exit asks the runner to stop after the current frame.
func (a *App) Exit() {
	a.exiting.Store(true)
}

// Exiting reports whether Exit has been called.
func (a *App) Exiting() bool {
	return a.exiting.Load()
}

// InsertResource stores value as the app's singleton of its type,
// replacing any previous value.
func InsertResource[T any](a *App, value T) {
	a.resources[reflect.TypeOf(value)] = value
}

// Resource returns the app's singleton of type T.
func Resource[T any](a *App) (T, bool) {
	var zero T
	v, ok := a.resources[reflect.TypeOf(zero)]
	if !ok {
		return zero, false
	}
	return v.(T), true
}

// HasResource reports whether a singleton of type T is stored.
func HasResource[T any](a *App) bool {
	var zero T
	_, ok := a.resources[reflect.TypeOf(zero)]
	return ok
}

// PluginAdded reports whether a plugin of type P has been installed.
func PluginAdded[P Plugin](a *App) bool {
	var zero P
	_, ok := a.plugins[reflect.TypeOf(zero)]
	return ok
}
