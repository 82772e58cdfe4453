package cli

import (
	"context"
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"

	"trading-journal/internal/models"
)

// newID returns a new ULID string for trade and account identifiers.
func newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}

// addAccountCommands adds account management commands.
func addAccountCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account management",
		Long:  "Create, list and remove trading accounts.",
	}

	cmd.AddCommand(newAccountAddCmd(app))
	cmd.AddCommand(newAccountListCmd(app))
	cmd.AddCommand(newAccountRemoveCmd(app))

	rootCmd.AddCommand(cmd)
}

func newAccountAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a new account",
		Example: `  tj account add "Main FTMO"
  tj account add Personal --balance 25000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.requireStore(); err != nil {
				output.Error("%v", err)
				return err
			}
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			balance, _ := cmd.Flags().GetFloat64("balance")

			account := &models.Account{
				ID:              newID(),
				Name:            args[0],
				StartingBalance: balance,
				CreatedAt:       time.Now(),
			}
			if err := app.Store.SaveAccount(ctx, account); err != nil {
				output.Error("Failed to save account: %v", err)
				return err
			}

			app.Logger.Info().Str("account_id", account.ID).Str("name", account.Name).Msg("Account created")

			if output.IsJSON() {
				return output.JSON(account)
			}
			output.Success("✓ Account %q created (%s)", account.Name, account.ID)
			output.Dim("Set journal.default_account = %q in config.toml to make it the default.", account.ID)
			return nil
		},
	}

	cmd.Flags().Float64("balance", 10000, "starting balance")

	return cmd
}

func newAccountListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.requireStore(); err != nil {
				output.Error("%v", err)
				return err
			}
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			accounts, err := app.Store.GetAccounts(ctx)
			if err != nil {
				output.Error("Failed to fetch accounts: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(accounts)
			}

			if len(accounts) == 0 {
				output.Info("No accounts yet. Create one with 'tj account add <name>'.")
				return nil
			}

			table := NewTable(output, "ID", "Name", "Starting Balance", "Created")
			for _, a := range accounts {
				name := a.Name
				if a.ID == app.Config.Journal.DefaultAccount {
					name += " (default)"
				}
				table.AddRow(a.ID, name, FormatCurrency(a.StartingBalance), FormatDate(a.CreatedAt))
			}
			table.Render()
			return nil
		},
	}
}

func newAccountRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <account-id>",
		Short: "Remove an account",
		Long: `Remove an account. Trades logged against it are kept; analytics tolerate
the orphaned account reference.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.requireStore(); err != nil {
				output.Error("%v", err)
				return err
			}
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := app.Store.DeleteAccount(ctx, args[0]); err != nil {
				output.Error("Failed to remove account: %v", err)
				return err
			}
			output.Success("✓ Account %s removed", args[0])
			return nil
		},
	}
}
