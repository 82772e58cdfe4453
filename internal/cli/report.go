package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"trading-journal/internal/insights"
	"trading-journal/internal/models"
	"trading-journal/internal/stats"
)

// addReportCommands adds the analytics commands.
func addReportCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newStatsCmd(app))
	rootCmd.AddCommand(newMonthlyCmd(app))
	rootCmd.AddCommand(newEquityCmd(app))
	rootCmd.AddCommand(newInsightsCmd(app))
}

// loadTrades fetches the selected account's full trade history for analytics.
func (app *App) loadTrades(ctx context.Context, cmd *cobra.Command) ([]models.Trade, error) {
	if err := app.requireStore(); err != nil {
		return nil, err
	}
	return app.Store.GetTrades(ctx, app.tradeFilter(cmd))
}

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show performance statistics",
		Long: `Show the full performance summary for the selected account, with
per-session and per-setup breakdowns.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			trades, err := app.loadTrades(ctx, cmd)
			if err != nil {
				output.Error("Failed to fetch trades: %v", err)
				return err
			}

			summary := stats.Compute(trades)
			sessions := stats.SessionBreakdown(trades)
			setups := stats.SetupBreakdown(trades)

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"summary":  summary,
					"sessions": sessions,
					"setups":   setups,
				})
			}

			output.Bold("Performance Summary")
			output.Printf("  Trades:           %d (%dW / %dL / %dBE)\n",
				summary.TotalTrades, summary.Wins, summary.Losses, summary.BreakEvens)
			output.Printf("  Win Rate:         %s\n", FormatPercent(summary.WinRate))
			output.Printf("  Total Profit:     %s\n", FormatCurrency(summary.TotalProfit))
			output.Printf("  Total Loss:       %s\n", FormatCurrency(summary.TotalLoss))
			output.Printf("  Avg R:            %s\n", output.FormatSignedR(summary.AvgR))
			output.Printf("  Expectancy:       %s\n", output.FormatSignedR(summary.Expectancy))
			output.Printf("  Profit Factor:    %s\n", FormatProfitFactor(summary.ProfitFactor))
			output.Printf("  Max Win Streak:   %d\n", summary.MaxConsecutiveWins)
			output.Printf("  Max Loss Streak:  %d\n", summary.MaxConsecutiveLosses)
			output.Printf("  Max Drawdown:     %.2fR\n", summary.MaxDrawdown)
			output.Printf("  Best Session:     %s\n", summary.BestSession)
			output.Printf("  Worst Session:    %s\n", summary.WorstSession)
			output.Printf("  Best Setup:       %s\n", summary.BestSetup)
			output.Printf("  Worst Setup:      %s\n", summary.WorstSetup)

			if len(sessions) > 0 {
				output.Println()
				output.Bold("By Session")
				table := NewTable(output, "Session", "Trades", "Win Rate", "Avg R", "Total R")
				for _, b := range sessions {
					table.AddRow(
						string(b.Session),
						itoa(b.Trades),
						FormatPercent(b.WinRate),
						output.FormatSignedR(b.AvgR),
						output.FormatSignedR(b.TotalR),
					)
				}
				table.Render()
			}

			if len(setups) > 0 {
				output.Println()
				output.Bold("By Setup")
				table := NewTable(output, "Setup", "Trades", "Win Rate", "Avg R", "Total R")
				for _, b := range setups {
					table.AddRow(
						TruncateString(b.Setup, 20),
						itoa(b.Trades),
						FormatPercent(b.WinRate),
						output.FormatSignedR(b.AvgR),
						output.FormatSignedR(b.TotalR),
					)
				}
				table.Render()
			}
			return nil
		},
	}
}

func newMonthlyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "monthly",
		Short: "Show monthly performance",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			trades, err := app.loadTrades(ctx, cmd)
			if err != nil {
				output.Error("Failed to fetch trades: %v", err)
				return err
			}

			months := stats.MonthlyRollup(trades)

			if output.IsJSON() {
				return output.JSON(months)
			}

			if len(months) == 0 {
				output.Info("No trades recorded. Log one with 'tj log'.")
				return nil
			}

			table := NewTable(output, "Month", "Trades", "Wins", "Win Rate", "Net R")
			for _, m := range months {
				table.AddRow(
					FormatMonth(m.Month),
					itoa(m.Trades),
					itoa(m.Wins),
					FormatPercent(m.WinRate),
					output.FormatSignedR(m.Profit),
				)
			}
			table.Render()
			return nil
		},
	}
}

func newEquityCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "equity",
		Short: "Show the equity curve",
		Long: `Show the running account balance over the trade history, starting from
the account's starting balance.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			trades, err := app.loadTrades(ctx, cmd)
			if err != nil {
				output.Error("Failed to fetch trades: %v", err)
				return err
			}

			curve := stats.EquityCurve(trades, app.startingBalance(ctx, cmd))

			if output.IsJSON() {
				return output.JSON(curve)
			}

			table := NewTable(output, "Date", "Equity", "Balance")
			for _, p := range curve {
				label := FormatDate(p.Time)
				if p.Start {
					label = "Start"
				}
				table.AddRow(label, output.FormatPnL(p.Equity), FormatCurrency(p.Balance))
			}
			table.Render()
			return nil
		},
	}
}

func newInsightsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Show performance insights",
		Long:  "Show rule-based observations about your recent trading behaviour.",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			trades, err := app.loadTrades(ctx, cmd)
			if err != nil {
				output.Error("Failed to fetch trades: %v", err)
				return err
			}

			messages := insights.Generate(trades, stats.Compute(trades))

			if output.IsJSON() {
				return output.JSON(messages)
			}

			output.Bold("Insights")
			for _, msg := range messages {
				output.Printf("  • %s\n", msg)
			}
			return nil
		},
	}
}
