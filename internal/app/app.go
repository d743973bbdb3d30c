// Package app wires the catalog, the viewer, the 3D stage, the portal UI and the
// developer console into one frame loop.
package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"space-lab/internal/catalog"
	"space-lab/internal/commands"
	"space-lab/internal/config"
	"space-lab/internal/debug"
	"space-lab/internal/fonts"
	"space-lab/internal/geometry"
	"space-lab/internal/graphics"
	"space-lab/internal/logger"
	"space-lab/internal/primitives"
	"space-lab/internal/scene"
	"space-lab/internal/terminal"
	"space-lab/internal/ui"
	"space-lab/internal/viewer"
)

// Background is the window clear color (slate-50).
var Background = rl.NewColor(248, 250, 252, 255)

// App is the running lab.
type App struct {
	cfg     *config.Config
	log     *logger.Logger
	catalog *catalog.Catalog

	viewer *viewer.Viewer
	meshes *primitives.Registry
	stage  *scene.Scene
	engine *ui.Engine
	portal *ui.Portal

	reg   *commands.Registry
	term  *terminal.Terminal
	debug *debug.Debug

	// Reused per frame by labView.
	models []ui.ModelEntry
	tiles  []ui.TileView
	rows   []ui.SpecRow
}

// New builds the app over a validated catalog. Nothing here touches the GPU, so
// the window can be opened later by Run.
func New(cfg *config.Config, log *logger.Logger, c *catalog.Catalog) *App {
	shapes := geometry.NewCache()
	v := viewer.New(c, viewer.Options{Breakpoint: cfg.Viewer.Breakpoint, Meshes: shapes})
	meshes := primitives.NewRegistry(shapes)
	stage := scene.New(v, meshes)
	stage.SetGridVisible(cfg.Debug.Grid)
	engine := ui.New()

	a := &App{
		cfg:     cfg,
		log:     log,
		catalog: c,
		viewer:  v,
		meshes:  meshes,
		stage:   stage,
		engine:  engine,
		portal:  ui.NewPortal(engine, c),
		reg:     commands.NewRegistry(),
		debug:   debug.New(cfg.Debug.ShowFPS, cfg.Debug.ShowMemAlloc),
	}
	a.term = terminal.New(log, a.reg)
	a.registerCommands()
	return a
}

// Run opens the window and blocks until it is closed.
func (a *App) Run() {
	w := graphics.Window{
		Width:  a.cfg.Window.Width,
		Height: a.cfg.Window.Height,
		Title:  a.cfg.Window.Title,
		FPS:    a.cfg.Window.FPS,
	}
	a.log.WithField("models", len(a.catalog.Models)).Info("opening lab")
	graphics.Run(w, Background, a.setup, a.update, a.draw, a.teardown)
}

func (a *App) setup() {
	dirs := fonts.BaseDirs(a.cfg.Fonts.Dir)
	if path, err := fonts.FindFirst(dirs, fonts.UIFamilies); err == nil {
		if err := a.engine.LoadFont(path); err != nil {
			a.log.WithError(err).Warn("ui font")
		} else {
			a.log.WithField("font", path).Debug("ui font loaded")
		}
	} else {
		a.log.WithField("dir", a.cfg.Fonts.Dir).Info("no ui font found, using default")
	}
	if path, err := fonts.FindFirst(dirs, fonts.MonoFamilies); err == nil {
		if err := a.engine.LoadMonoFont(path); err != nil {
			a.log.WithError(err).Warn("mono font")
		}
	}
	a.term.SetFont(a.engine.Font())
	a.debug.SetFont(a.engine.Font())
}

func (a *App) teardown() {
	a.stage.Unload()
	a.meshes.Unload()
	a.engine.Unload()
}

// layout rebuilds the portal for the current window. When the stage width flips
// the viewer's narrowness the layout is rebuilt once more so the grid and the
// inspector width agree with it in the same frame.
func (a *App) layout() {
	w, h := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
	narrow := a.viewer.Narrow()
	a.portal.Layout(w, h, a.labView())
	if a.portal.Tab != ui.TabLab {
		return
	}
	a.stage.SetBounds(a.portal.Stage())
	if a.viewer.Narrow() != narrow {
		a.portal.Layout(w, h, a.labView())
		a.stage.SetBounds(a.portal.Stage())
	}
}

func (a *App) update() {
	a.term.Update()
	a.layout()

	mouse := rl.GetMousePosition()
	open := a.term.IsOpen()
	if !open {
		if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
			if action := a.portal.Hit(mouse); action != "" {
				a.dispatch(action)
			}
		}
		if wheel := rl.GetMouseWheelMove(); wheel != 0 && !a.overLiveStage(mouse) {
			a.portal.Scroll(wheel)
		}
	}
	a.stage.Update(open || a.portal.Tab != ui.TabLab || a.portal.Blocks(mouse))
	a.viewer.Advance(rl.GetFrameTime(), float32(rl.GetTime()))
}

// overLiveStage reports whether pt is over the interactive 3D view, which takes
// the wheel for zoom.
func (a *App) overLiveStage(pt rl.Vector2) bool {
	if a.portal.Tab != ui.TabLab || a.viewer.ShowGrid() {
		return false
	}
	return rl.CheckCollisionPointRec(pt, a.portal.Stage()) && !a.portal.Blocks(pt)
}

func (a *App) draw() {
	a.portal.Draw(a.stage.Draw)
	a.term.Draw()
	a.debug.Draw(ui.NavHeight)
}
