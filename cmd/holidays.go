package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hfrick/leaveplan/app"
	"github.com/hfrick/leaveplan/core/model"
)

var holidaysCmd = &cobra.Command{
	Use:   "holidays",
	Short: "List the public holidays of the configured location",
	RunE:  listHolidays,
}

func init() {
	rootCmd.AddCommand(holidaysCmd)
}

func listHolidays(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer svc.Close()
	hols, err := svc.LoadHolidays()
	if err != nil {
		return err
	}
	for _, h := range hols {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %-9s  %s\n", h.Date.Format(model.DateFormat), h.Weekday, h.Name)
	}
	return nil
}
