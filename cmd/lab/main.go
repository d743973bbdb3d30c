package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"space-lab/internal/app"
	"space-lab/internal/catalog"
	"space-lab/internal/config"
	"space-lab/internal/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := config.New()

	root := &cobra.Command{
		Use:           "lab",
		Short:         "Space Lab training portal and 3D model viewer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.LoadDotEnv(".env")
		},
	}
	f := root.PersistentFlags()
	f.String("config", "", "config file (default lab.yaml in . or ./config)")
	f.String("catalog", "", "catalog YAML (default: built-in catalog)")
	f.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	_ = v.BindPFlag("catalog.path", f.Lookup("catalog"))
	_ = v.BindPFlag("log.level", f.Lookup("log-level"))

	run := &cobra.Command{
		Use:   "run",
		Short: "Open the lab window",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLab(cmd, v)
		},
	}
	rf := run.Flags()
	rf.Int("width", 1280, "window width")
	rf.Int("height", 800, "window height")
	rf.Bool("fps", false, "show the frame rate overlay")
	_ = v.BindPFlag("window.width", rf.Lookup("width"))
	_ = v.BindPFlag("window.height", rf.Lookup("height"))
	_ = v.BindPFlag("debug.show_fps", rf.Lookup("fps"))

	validate := &cobra.Command{
		Use:   "validate",
		Short: "Check the catalog and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd, v)
			if err != nil {
				return err
			}
			defer log.Close()
			c, err := catalog.Load(cfg.Catalog.Path)
			if err != nil {
				log.WithError(err).Error("catalog is invalid")
				return err
			}
			log.WithFields(logrus.Fields{
				"models":  len(c.Models),
				"courses": len(c.Courses),
			}).Info("catalog ok")
			return nil
		},
	}

	root.AddCommand(run, validate)
	// Bare "lab" opens the window.
	root.RunE = run.RunE
	root.Flags().AddFlagSet(rf)
	return root
}

// setup loads configuration and opens the logger.
func setup(cmd *cobra.Command, v *viper.Viper) (*config.Config, *logger.Logger, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		v.SetConfigFile(path)
	}
	cfg, err := config.Load(v)
	if err != nil {
		logrus.WithError(err).Error("configuration")
		return nil, nil, err
	}
	log, err := logger.New(logger.Options{Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		logrus.WithError(err).Error("logger")
		return nil, nil, err
	}
	return cfg, log, nil
}

// runLab validates the catalog before any window opens; an invalid catalog exits non-zero.
func runLab(cmd *cobra.Command, v *viper.Viper) error {
	cfg, log, err := setup(cmd, v)
	if err != nil {
		return err
	}
	defer log.Close()

	c, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		log.WithError(err).Error("catalog is invalid, not opening the lab")
		return err
	}
	app.New(cfg, log, c).Run()
	log.Info("lab closed")
	return nil
}
