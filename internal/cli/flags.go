package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/gorewood/commitstamp/internal/config"
	"github.com/gorewood/commitstamp/internal/output"
)

// stampFlags holds the flags shared by both programs.
type stampFlags struct {
	json       bool
	verbose    bool
	color      string
	gitTimeout time.Duration
	configPath string
}

func (f *stampFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.json, "json", false, "Output in JSON format")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Show the stamped values and whether the file was written")
	cmd.Flags().StringVar(&f.color, "color", output.ColorAuto, "Color output: auto, always, never")
	cmd.Flags().DurationVar(&f.gitTimeout, "git-timeout", config.DefaultGitTimeout, "Timeout for each git invocation (0 disables)")
	cmd.Flags().StringVar(&f.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/commitstamp/config.yaml)")
}

// resolveConfig loads the config file and applies explicitly set flags on top.
func (f *stampFlags) resolveConfig(cmd *cobra.Command) (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if f.configPath != "" {
		cfg, err = config.LoadRequired(f.configPath)
	} else {
		cfg, err = config.Load(config.DefaultPath())
	}
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("color") {
		if !output.ValidColorMode(f.color) {
			return cfg, output.NewUserError("invalid --color value " + f.color + ": must be auto, always or never")
		}
		cfg.Color = f.color
	}
	if cmd.Flags().Changed("git-timeout") {
		if f.gitTimeout < 0 {
			return cfg, output.NewUserError("--git-timeout must not be negative")
		}
		cfg.Git.Timeout = f.gitTimeout
	}
	return cfg, nil
}
