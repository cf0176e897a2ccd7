package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hfrick/leaveplan/config"
	"github.com/hfrick/leaveplan/infra/logger"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "leaveplan",
	Short: "Annual leave planner",
	Long:  "leaveplan spends a fixed budget of paid days off across a year to maximise the value of the resulting time off.",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(cfg.Logging.Level)
	return cfg, nil
}
