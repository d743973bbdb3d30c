package app

import (
	"flag"
	"strings"

	"github.com/pkg/errors"

	"space-lab/internal/ui"
)

// registerCommands installs the developer console commands.
func (a *App) registerCommands() {
	a.reg.Register("help", "list commands", nil, func([]string) error {
		for _, line := range a.reg.Help() {
			a.log.Log(line)
		}
		return nil
	})

	a.reg.Register("models", "list model ids", nil, func([]string) error {
		for _, m := range a.catalog.Models {
			a.log.Log(m.ID + "  " + m.Name)
		}
		return nil
	})

	a.reg.Register("model", "<id>  show a model in the lab", nil, func(args []string) error {
		id, err := oneArg(args, "model id")
		if err != nil {
			return err
		}
		if err := a.viewer.SetModel(id); err != nil {
			return err
		}
		a.portal.SetTab(ui.TabLab)
		return nil
	})

	a.reg.Register("toggle", "assemble or dismantle the model", nil, func([]string) error {
		a.viewer.Toggle()
		a.log.Log("state: " + a.viewer.State().String())
		return nil
	})

	a.reg.Register("select", "<part id>  inspect a part", nil, func(args []string) error {
		id, err := oneArg(args, "part id")
		if err != nil {
			return err
		}
		return a.viewer.PickID(id)
	})

	a.reg.Register("dismiss", "close the inspector", nil, func([]string) error {
		a.viewer.Dismiss()
		return nil
	})

	a.reg.Register("tab", "course|lab  switch page", nil, func(args []string) error {
		name, err := oneArg(args, "tab name")
		if err != nil {
			return err
		}
		switch strings.ToLower(name) {
		case "course":
			a.portal.SetTab(ui.TabCourse)
		case "lab":
			a.portal.SetTab(ui.TabLab)
		default:
			return errors.Errorf("unknown tab %q (course or lab)", name)
		}
		return nil
	})

	a.registerSwitch("fps", "frame rate overlay", a.debug.SetShowFPS)
	a.registerSwitch("memalloc", "heap size overlay", a.debug.SetShowMemAlloc)
	a.registerSwitch("grid", "floor grid", a.stage.SetGridVisible)
}

// registerSwitch adds an on/off command: "cmd name" turns it on, "cmd name -on=false" off.
func (a *App) registerSwitch(name, what string, set func(bool)) {
	var on bool
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.BoolVar(&on, "on", true, "show the "+what)
	a.reg.Register(name, "[-on=false]  "+what, fs, func([]string) error {
		set(on)
		on = true
		return nil
	})
}

func oneArg(args []string, what string) (string, error) {
	if len(args) != 1 {
		return "", errors.Errorf("want one %s, got %d arguments", what, len(args))
	}
	return args[0], nil
}
