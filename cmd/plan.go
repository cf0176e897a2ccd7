package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hfrick/leaveplan/app"
	"github.com/hfrick/leaveplan/infra/logger"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute the optimal leave plan and render the calendar",
	RunE:  runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logg := logger.New("plan-command")

	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logg.Errorf("service close: %v", err)
		}
	}()
	res, err := svc.Plan(ctx)
	if err != nil {
		return fmt.Errorf("plan: %w", err)
	}
	if res.Infeasible != "" {
		logg.Warnf("constraint %s cannot be satisfied; showing best unconstrained plan", res.Infeasible)
	}

	cal, err := svc.RenderCalendar(res)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), cal)

	fmt.Fprintf(cmd.OutOrStdout(), "\nSelected periods (%d):\n", len(res.Plan.Periods))
	for _, p := range res.Plan.Periods {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s  (%d days)\n", p, p.Duration())
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Budget spent: %d of %d  Total utility: %.2f\n",
		res.Plan.TotalCost, cfg.Planner.Budget, res.Plan.TotalUtility)
	fmt.Fprintf(cmd.OutOrStdout(), "Longest period: %d days  Free days spanned: %d\n",
		res.Summary.LongestPeriod, res.Summary.FreeDaysSpanned)
	return nil
}
