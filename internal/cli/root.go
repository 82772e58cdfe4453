package cli

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"trading-journal/internal/config"
	"trading-journal/internal/errors"
	"trading-journal/internal/logging"
	"trading-journal/internal/models"
	"trading-journal/internal/store"
)

// Version information
const (
	Version = "0.1.0"
)

// App holds the application dependencies and the active account selection.
// There is no package-level mutable state; everything presentation code
// needs travels through this struct.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
	Store  store.DataStore
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	dataStore, err := store.NewSQLiteStore(cfg.Journal.DatabasePath)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to initialize store, journal commands will be unavailable")
	} else {
		app.Store = dataStore
		logger.Debug().Str("path", cfg.Journal.DatabasePath).Msg("SQLite store initialized")
	}

	rootCmd := &cobra.Command{
		Use:   "tj",
		Short: "Trading Journal - log trades and analyze your performance",
		Long: `Trading Journal is a CLI for logging discretionary trades and deriving
performance analytics from them.

Log trades with session, setup and emotion context, then review win rate,
expectancy, drawdown, equity curve and rule-based insights.

Use 'tj help <command>' for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("account", "", "account ID to operate on (default: configured default account)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(app))
	addAccountCommands(rootCmd, app)
	addTradeCommands(rootCmd, app)
	addReportCommands(rootCmd, app)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"version": Version})
			} else {
				output.Printf("Trading Journal v%s\n", Version)
			}
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and manage application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(app.Config)
			}
			output.Bold("Journal Configuration")
			output.Printf("  Default Account:  %s\n", app.Config.Journal.DefaultAccount)
			output.Printf("  Starting Balance: %s\n", FormatCurrency(app.Config.Journal.StartingBalance))
			output.Printf("  Database Path:    %s\n", app.Config.Journal.DatabasePath)
			output.Println()
			output.Bold("UI")
			output.Printf("  Color:            %v\n", app.Config.UI.ColorEnabled)
			output.Printf("  Date Format:      %s\n", app.Config.UI.DateFormat)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"path": config.DefaultConfigDir()})
			} else {
				output.Println(config.DefaultConfigDir())
			}
		},
	})

	return cmd
}

// requireStore guards commands that need the database. Store stays nil when
// initialization fails at startup, so every journal command checks before use.
func (app *App) requireStore() error {
	if app.Store == nil {
		return errors.Wrap(errors.ErrDatabaseError, "store unavailable")
	}
	return nil
}

// accountID resolves the account selection for a command: the --account flag
// if set, the configured default otherwise.
func (app *App) accountID(cmd *cobra.Command) string {
	if id, _ := cmd.Flags().GetString("account"); id != "" {
		return id
	}
	return app.Config.Journal.DefaultAccount
}

// activeAccount loads the selected account. A missing selection or an
// unresolvable ID is reported; callers that can degrade to the configured
// starting-balance fallback should use startingBalance instead.
func (app *App) activeAccount(ctx context.Context, cmd *cobra.Command) (*models.Account, error) {
	id := app.accountID(cmd)
	if id == "" {
		return nil, errors.ErrNoActiveAccount
	}
	return app.Store.GetAccount(ctx, id)
}

// startingBalance resolves the balance an equity curve starts from: the
// selected account's starting balance when it resolves, the configured
// fallback otherwise.
func (app *App) startingBalance(ctx context.Context, cmd *cobra.Command) float64 {
	if acct, err := app.activeAccount(ctx, cmd); err == nil {
		return acct.StartingBalance
	}
	return app.Config.Journal.StartingBalance
}

// tradeFilter builds the store filter for the selected account.
func (app *App) tradeFilter(cmd *cobra.Command) store.TradeFilter {
	return store.TradeFilter{AccountID: app.accountID(cmd)}
}
