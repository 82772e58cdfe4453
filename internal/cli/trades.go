package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"trading-journal/internal/errors"
	"trading-journal/internal/logging"
	"trading-journal/internal/models"
	"trading-journal/internal/store"
)

// addTradeCommands adds trade logging and listing commands.
func addTradeCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newLogCmd(app))
	rootCmd.AddCommand(newTradesCmd(app))
	rootCmd.AddCommand(newRemoveCmd(app))
}

func newLogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record a trade",
		Long: `Record a closed trade with its context metadata.

Outcome, r-multiple and the risk/reward amounts are taken as given; derive
them from your entry, stop and exit before logging.`,
		Example: `  tj log --symbol EURUSD --direction Buy --outcome Win --r 2.0 \
    --entry 1.0850 --stop 1.0830 --exit 1.0890 \
    --risk 100 --reward 200 --risk-pct 1.0 \
    --session London --setup "Breakout" --emotion Calm --discipline 4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.requireStore(); err != nil {
				output.Error("%v", err)
				return err
			}
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			trade, err := tradeFromFlags(cmd, app.accountID(cmd))
			if err != nil {
				output.Error("%v", err)
				return err
			}

			if err := app.Store.SaveTrade(ctx, trade); err != nil {
				output.Error("Failed to save trade: %v", err)
				return err
			}

			logging.LogTradeRecorded(logging.WithAccount(app.Logger, trade.AccountID),
				trade.ID, trade.Symbol, string(trade.Outcome), trade.RMultiple)

			if output.IsJSON() {
				return output.JSON(trade)
			}
			output.Success("✓ Trade %s recorded: %s %s %s (%s)",
				trade.ID, trade.Symbol, trade.Direction, FormatR(trade.RMultiple), trade.Outcome)
			return nil
		},
	}

	cmd.Flags().String("date", "", "trade date (YYYY-MM-DD, default: today)")
	cmd.Flags().String("symbol", "", "instrument symbol (required)")
	cmd.Flags().String("direction", "Buy", "trade direction (Buy, Sell)")
	cmd.Flags().Float64("entry", 0, "entry price")
	cmd.Flags().Float64("stop", 0, "stop-loss price")
	cmd.Flags().Float64("target", 0, "take-profit price (0 when no target)")
	cmd.Flags().Float64("exit", 0, "exit price")
	cmd.Flags().String("outcome", "", "trade outcome (Win, Loss, BreakEven) (required)")
	cmd.Flags().Float64("r", 0, "realized r-multiple, signed")
	cmd.Flags().Float64("risk-pct", 1, "percent of balance risked")
	cmd.Flags().Float64("risk", 0, "risk amount in currency")
	cmd.Flags().Float64("reward", 0, "reward amount in currency")
	cmd.Flags().String("session", "NY", "trading session (Asian, London, NY, Pre-NY, Post-NY)")
	cmd.Flags().String("setup", "", "setup tag, free-form")
	cmd.Flags().String("emotion", "Calm", "emotional state (Calm, Fear, Greed, Impulsive, Overconfident, Disciplined)")
	cmd.Flags().Int("discipline", 3, "discipline rating 1-5")
	cmd.Flags().String("notes", "", "free-text notes")
	cmd.Flags().String("screenshot", "", "screenshot reference")
	cmd.MarkFlagRequired("symbol")
	cmd.MarkFlagRequired("outcome")

	return cmd
}

func tradeFromFlags(cmd *cobra.Command, accountID string) (*models.Trade, error) {
	dateStr, _ := cmd.Flags().GetString("date")
	symbol, _ := cmd.Flags().GetString("symbol")
	direction, _ := cmd.Flags().GetString("direction")
	entry, _ := cmd.Flags().GetFloat64("entry")
	stop, _ := cmd.Flags().GetFloat64("stop")
	target, _ := cmd.Flags().GetFloat64("target")
	exit, _ := cmd.Flags().GetFloat64("exit")
	outcome, _ := cmd.Flags().GetString("outcome")
	rMultiple, _ := cmd.Flags().GetFloat64("r")
	riskPct, _ := cmd.Flags().GetFloat64("risk-pct")
	risk, _ := cmd.Flags().GetFloat64("risk")
	reward, _ := cmd.Flags().GetFloat64("reward")
	session, _ := cmd.Flags().GetString("session")
	setup, _ := cmd.Flags().GetString("setup")
	emotion, _ := cmd.Flags().GetString("emotion")
	discipline, _ := cmd.Flags().GetInt("discipline")
	notes, _ := cmd.Flags().GetString("notes")
	screenshot, _ := cmd.Flags().GetString("screenshot")

	date := time.Now()
	if dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, errors.NewValidationError("date", dateStr, "expected YYYY-MM-DD")
		}
		date = parsed
	}

	if !models.ValidDirection(models.Direction(direction)) {
		return nil, errors.NewValidationError("direction", direction, "must be Buy or Sell")
	}
	if !models.ValidOutcome(models.Outcome(outcome)) {
		return nil, errors.NewValidationError("outcome", outcome, "must be Win, Loss or BreakEven")
	}
	if !models.ValidSession(models.Session(session)) {
		return nil, errors.NewValidationError("session", session, "must be Asian, London, NY, Pre-NY or Post-NY")
	}
	if !models.ValidEmotion(models.Emotion(emotion)) {
		return nil, errors.NewValidationError("emotion", emotion, "unknown emotion")
	}
	if discipline < 1 || discipline > 5 {
		return nil, errors.NewValidationError("discipline", discipline, "must be between 1 and 5")
	}

	return &models.Trade{
		ID:           newID(),
		AccountID:    accountID,
		Date:         date,
		Symbol:       symbol,
		Direction:    models.Direction(direction),
		EntryPrice:   entry,
		StopLoss:     stop,
		TakeProfit:   target,
		ExitPrice:    exit,
		Outcome:      models.Outcome(outcome),
		RMultiple:    rMultiple,
		RiskPercent:  riskPct,
		RiskAmount:   risk,
		RewardAmount: reward,
		Session:      models.Session(session),
		Setup:        setup,
		Emotion:      models.Emotion(emotion),
		Discipline:   discipline,
		Notes:        notes,
		Screenshot:   screenshot,
	}, nil
}

func newTradesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trades",
		Short: "List recorded trades",
		Example: `  tj trades
  tj trades --symbol EURUSD --limit 20
  tj trades --session London --setup Breakout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.requireStore(); err != nil {
				output.Error("%v", err)
				return err
			}
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			symbol, _ := cmd.Flags().GetString("symbol")
			session, _ := cmd.Flags().GetString("session")
			setup, _ := cmd.Flags().GetString("setup")
			limit, _ := cmd.Flags().GetInt("limit")

			filter := store.TradeFilter{
				AccountID: app.accountID(cmd),
				Symbol:    symbol,
				Session:   models.Session(session),
				Setup:     setup,
				Limit:     limit,
			}

			trades, err := app.Store.GetTrades(ctx, filter)
			if err != nil {
				output.Error("Failed to fetch trades: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(trades)
			}

			if len(trades) == 0 {
				output.Info("No trades recorded. Log one with 'tj log'.")
				return nil
			}

			table := NewTable(output, "ID", "Date", "Symbol", "Dir", "Outcome", "R", "Session", "Setup", "Emotion")
			for _, t := range trades {
				table.AddRow(
					t.ID,
					FormatDate(t.Date),
					t.Symbol,
					string(t.Direction),
					string(t.Outcome),
					output.FormatSignedR(t.RMultiple),
					string(t.Session),
					TruncateString(t.Setup, 15),
					string(t.Emotion),
				)
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().String("symbol", "", "filter by symbol")
	cmd.Flags().String("session", "", "filter by session")
	cmd.Flags().String("setup", "", "filter by setup tag")
	cmd.Flags().Int("limit", 50, "maximum number of trades")

	return cmd
}

func newRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <trade-id>",
		Short: "Remove a trade",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.requireStore(); err != nil {
				output.Error("%v", err)
				return err
			}
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := app.Store.DeleteTrade(ctx, args[0]); err != nil {
				output.Error("Failed to remove trade: %v", err)
				return err
			}
			output.Success("✓ Trade %s removed", args[0])
			return nil
		},
	}
}
