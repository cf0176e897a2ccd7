package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hfrick/leaveplan/app"
	"github.com/hfrick/leaveplan/infra/logger"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previously computed plans",
	RunE:  listHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of records")
	rootCmd.AddCommand(historyCmd)
}

func listHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("history-command").Errorf("service close: %v", err)
		}
	}()

	recs, err := svc.History(historyLimit)
	if err != nil {
		return err
	}
	for _, r := range recs {
		status := "ok"
		if r.Infeasible != "" {
			status = "infeasible: " + r.Infeasible
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  budget=%d cost=%d utility=%.2f  %s\n",
			r.CreatedAt.Format(time.RFC3339), r.PlanID, r.Budget, r.TotalCost, r.TotalUtility, status)
		if len(r.Periods) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "    %s\n", strings.Join(r.Periods, ", "))
		}
	}
	return nil
}
